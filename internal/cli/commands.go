package cli

import (
	"fmt"

	"github.com/johnolven/asis-coder/internal/version"
	"github.com/johnolven/asis-coder/pkg/installer"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newShimCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shim",
		Short: MsgShimShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := opts.load()
			if err != nil {
				return err
			}
			layout, err := installer.NewLayout(root, cfg.Scripts)
			if err != nil {
				return err
			}
			content, err := installer.RenderShim(cfg.Package.Name, cfg.Package.Command, layout)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := opts.load()
			if err != nil {
				return err
			}
			out, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
