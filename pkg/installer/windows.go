package installer

import (
	"context"
	"path/filepath"

	"github.com/johnolven/asis-coder/pkg/errors"
	"github.com/johnolven/asis-coder/pkg/shim"
)

// installWindows writes the bash forwarding shim. Nothing is executed.
func (b *Bootstrap) installWindows(_ context.Context, l Layout, res *Result) error {
	b.console.Println("Warning", MsgWindowsAdvice)
	b.console.Println("", MsgAdviceGitBash)
	b.console.Println("", MsgAdviceWSL)
	b.console.Println("", MsgAdvicePwsh)
	b.console.Blank()
	b.console.Println("Info", MsgCreatingShim)

	content, err := RenderShim(b.cfg.Package.Name, b.cfg.Package.Command, l)
	if err != nil {
		return err
	}

	if b.dryRun {
		b.console.Printf("Muted", MsgDryRunShim, l.Shim)
		return nil
	}

	if err := b.fs.WriteFile(l.Shim, []byte(content), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", l.Shim)
	}
	res.ShimWritten = true
	b.console.Printf("Success", MsgShimCreated, filepath.Base(l.Shim))
	return nil
}

// RenderShim returns the shim content for the layout's main script.
func RenderShim(product, command string, l Layout) (string, error) {
	return shim.Render(shim.Params{
		Product:    product,
		Command:    command,
		ScriptPath: l.MainScript,
	})
}
