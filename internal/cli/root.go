package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/johnolven/asis-coder/internal/version"
	"github.com/johnolven/asis-coder/pkg/config"
	"github.com/johnolven/asis-coder/pkg/errors"
	"github.com/johnolven/asis-coder/pkg/installer"
	"github.com/johnolven/asis-coder/pkg/logging"
	"github.com/johnolven/asis-coder/pkg/platform"
	"github.com/johnolven/asis-coder/pkg/runner"
	"github.com/johnolven/asis-coder/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ExitError carries a non-zero exit code whose cause was already reported.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

type rootOptions struct {
	verbosity  int
	root       string
	configFile string
	timeout    string
	platform   string
	dryRun     bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "asis-install",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.root, "root", "", MsgFlagRoot)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&opts.timeout, "timeout", "", MsgFlagTimeout)
	flags.StringVar(&opts.platform, "platform", "", MsgFlagPlatform)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	_ = flags.MarkHidden("platform")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newShimCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return installer.ExitSuccess
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	ui.NewConsole(stdout, stderr).Errorf("Error", MsgCLIError, err)
	return installer.ExitFailure
}

func runInstall(cmd *cobra.Command, opts *rootOptions) error {
	console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
	abort := func(o installer.Options, err error) error {
		o.Console = console
		return &ExitError{Code: installer.Abort(cmd.Context(), o, err)}
	}

	detector := platform.NewDetector()
	if opts.platform != "" {
		p, err := platform.Parse(opts.platform)
		if err != nil {
			return abort(installer.Options{}, err)
		}
		detector = platform.StaticDetector{Platform: p}
	}

	root, cfg, err := opts.load()
	if err != nil {
		return abort(installer.Options{Root: root, Detector: detector}, err)
	}

	r := runner.NewExecRunner(cfg.Setup.Timeout)
	r.Stdin = cmd.InOrStdin()
	r.Stdout = cmd.OutOrStdout()
	r.Stderr = cmd.ErrOrStderr()

	b, err := installer.New(installer.Options{
		Root:     root,
		Config:   cfg,
		Detector: detector,
		Runner:   r,
		Console:  console,
		DryRun:   opts.dryRun,
	})
	if err != nil {
		return abort(installer.Options{Root: root, Config: cfg, Detector: detector}, err)
	}

	if code := b.Execute(cmd.Context()); code != installer.ExitSuccess {
		return &ExitError{Code: code}
	}
	return nil
}

// load resolves the package root and the configuration for it. The root
// is returned even when the configuration fails to load.
func (o *rootOptions) load() (string, *config.Config, error) {
	root, err := o.packageRoot()
	if err != nil {
		return "", nil, err
	}

	loadOpts := config.LoadOptions{Root: root, File: o.configFile}
	if o.timeout != "" {
		loadOpts.Overrides = map[string]interface{}{"setup.timeout": o.timeout}
	}
	cfg, err := config.Load(loadOpts)
	if err != nil {
		return root, nil, err
	}
	return root, cfg, nil
}

func (o *rootOptions) packageRoot() (string, error) {
	if o.root != "" {
		root, err := filepath.Abs(o.root)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrRootResolve, "failed to resolve %s", o.root)
		}
		return root, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRootResolve, "failed to locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
