// Package ui writes the installer's human-readable console output.
//
// Status lines go to stdout and error banners to stderr. Each stream has
// its own style set so colors only appear on streams attached to a
// terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/johnolven/asis-coder/pkg/ui/styles"
)

// Console prints styled lines to an output and an error stream.
type Console struct {
	out       io.Writer
	err       io.Writer
	outStyles *styles.Set
	errStyles *styles.Set
}

// NewConsole creates a console over the given streams.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{
		out:       out,
		err:       errOut,
		outStyles: styles.New(out),
		errStyles: styles.New(errOut),
	}
}

// Stdio returns a console over the process's standard streams.
func Stdio() *Console {
	return NewConsole(os.Stdout, os.Stderr)
}

// Println writes one styled line to the output stream. An empty style name
// writes the text as is.
func (c *Console) Println(style, text string) {
	_, _ = fmt.Fprintln(c.out, renderLines(c.outStyles, style, text))
}

// Printf formats and writes one styled line to the output stream.
func (c *Console) Printf(style, format string, args ...interface{}) {
	c.Println(style, fmt.Sprintf(format, args...))
}

// Blank writes an empty line to the output stream.
func (c *Console) Blank() {
	_, _ = fmt.Fprintln(c.out)
}

// Errorf formats and writes one styled line to the error stream.
func (c *Console) Errorf(style, format string, args ...interface{}) {
	_, _ = fmt.Fprintln(c.err, renderLines(c.errStyles, style, fmt.Sprintf(format, args...)))
}

// renderLines styles each line on its own. Rendering a multi-line block in
// one call pads every line to the widest one.
func renderLines(set *styles.Set, style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = set.Render(style, line)
	}
	return strings.Join(lines, "\n")
}
