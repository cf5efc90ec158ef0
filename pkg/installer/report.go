package installer

import (
	"github.com/johnolven/asis-coder/pkg/errors"
	"github.com/johnolven/asis-coder/pkg/platform"
)

func (b *Bootstrap) reportSuccess(res *Result) {
	if res.DryRun {
		b.console.Println("Muted", MsgDryRunComplete)
		return
	}

	cmd := b.cfg.Package.Command
	b.console.Printf("Success", MsgSuccess, b.cfg.Package.Name)
	b.console.Blank()
	b.console.Println("Header", MsgUsageHeader)
	b.console.Printf("Command", MsgUsageSetup, cmd)
	b.console.Printf("Command", MsgUsageInteract, cmd)
	b.console.Printf("Command", MsgUsageQuery, cmd)
	b.console.Blank()
}

// reportFailure prints the failure. A missing script is reported on its
// own; anything else gets the error banner and manual install steps.
func (b *Bootstrap) reportFailure(p platform.Platform, err error) {
	b.logger.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Installation failed")

	if errors.IsErrorCode(err, errors.ErrMainScriptNotFound) || errors.IsErrorCode(err, errors.ErrSetupScriptNotFound) {
		name, _ := errors.GetErrorDetails(err)["file"].(string)
		b.console.Errorf("Error", MsgFileNotFound, name)
		return
	}

	b.console.Errorf("Error", MsgInstallFailed, err.Error())
	b.console.Blank()
	b.console.Println("Header", MsgManualHeader)
	b.console.Printf("Command", MsgManualClone, b.cfg.Package.Repository)
	b.console.Printf("Command", MsgManualCd, b.cfg.Package.Directory)
	if p.IsWindows() {
		b.console.Printf("Muted", MsgManualWindows, b.cfg.Scripts.Setup)
	} else {
		b.console.Printf("Command", MsgManualUnix, b.cfg.Scripts.Setup)
	}
}
