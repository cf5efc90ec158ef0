package installer

import (
	"context"

	"github.com/johnolven/asis-coder/pkg/errors"
	"github.com/johnolven/asis-coder/pkg/filesystem"
	"github.com/johnolven/asis-coder/pkg/runner"
)

// RootEnvVar tells the setup script where the package lives.
const RootEnvVar = "ASIS_CODER_ROOT"

// installUnix makes the scripts executable and hands over to install.sh.
func (b *Bootstrap) installUnix(ctx context.Context, l Layout, res *Result) error {
	if !filesystem.Exists(b.fs, l.SetupScript) {
		return missingFile(errors.ErrSetupScriptNotFound, l.SetupScript)
	}

	if b.dryRun {
		if !filesystem.Exists(b.fs, l.LibDir) {
			b.console.Printf("Muted", MsgDryRunMkdir, l.LibDir)
		}
		b.console.Printf("Muted", MsgDryRunChmod, l.SetupScript, l.MainScript)
		b.console.Printf("Muted", MsgDryRunSetup, l.SetupScript, l.Root)
		return nil
	}

	if !filesystem.Exists(b.fs, l.LibDir) {
		if err := b.fs.MkdirAll(l.LibDir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", l.LibDir)
		}
		b.logger.Debug().Str("dir", l.LibDir).Msg("Created lib directory")
	}

	for _, script := range []string{l.SetupScript, l.MainScript} {
		if err := filesystem.MakeExecutable(b.fs, script); err != nil {
			return errors.Wrapf(err, errors.ErrPermission, "failed to make %s executable", script)
		}
	}

	err := b.runner.Run(ctx, runner.Command{
		Path: l.SetupScript,
		Dir:  l.Root,
		Env:  map[string]string{RootEnvVar: l.Root},
	})
	if err != nil {
		return err
	}
	res.SetupRan = true
	return nil
}
