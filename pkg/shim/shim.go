// Package shim renders the batch file that lets Windows users run the
// bash entry point as a native command.
package shim

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"github.com/johnolven/asis-coder/pkg/errors"
)

//go:embed shim.bat.tmpl
var shimTemplate string

var tmpl = template.Must(template.New("shim").Parse(shimTemplate))

// Params are the inputs of the shim template.
type Params struct {
	// Product is shown in the REM header.
	Product string
	// Command is the name users type, shown in the remediation hint.
	Command string
	// ScriptPath is the main script path. It is normalized before rendering.
	ScriptPath string
}

// NormalizePath converts every backslash to a forward slash. The shim runs
// the script through bash, which does not accept native Windows separators.
// This is independent of the host OS, unlike filepath.ToSlash.
func NormalizePath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// Render returns the shim content for p. It performs no I/O.
func Render(p Params) (string, error) {
	if p.ScriptPath == "" {
		return "", errors.New(errors.ErrInvalidInput, "shim requires a script path")
	}
	if strings.ContainsRune(p.ScriptPath, '"') {
		return "", errors.Newf(errors.ErrInvalidInput, "script path cannot contain quotes: %s", p.ScriptPath)
	}
	p.ScriptPath = NormalizePath(p.ScriptPath)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render shim")
	}
	return buf.String(), nil
}
