// Package styles defines the visual styling for the installer's console
// output.
//
// Styles use semantic names and adaptive colors defined in the embedded
// styles.yaml. A Set binds them to one output writer so color support is
// decided per stream; when the writer is not a terminal, or NO_COLOR is
// set, text is rendered without escape codes.
package styles

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var defaults Config

func init() {
	cfg, err := Parse(embeddedStyles)
	if err != nil {
		// Unstyled output is still correct output.
		cfg = &Config{}
	}
	defaults = *cfg
}

// Parse decodes a styles document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}
	return &cfg, nil
}

// Set is a collection of styles bound to one writer.
type Set struct {
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
}

// New builds the default styles for w.
func New(w io.Writer) *Set {
	return NewFromConfig(w, defaults)
}

// NewFromConfig builds the styles described by cfg for w.
func NewFromConfig(w io.Writer, cfg Config) *Set {
	r := lipgloss.NewRenderer(w)
	if termenv.EnvNoColor() {
		r.SetColorProfile(termenv.Ascii)
	}

	s := &Set{renderer: r, styles: make(map[string]lipgloss.Style, len(cfg.Styles))}
	for name, def := range cfg.Styles {
		s.styles[name] = buildStyle(r, cfg.Colors, def)
	}
	return s
}

// Has reports whether a style with that name is defined.
func (s *Set) Has(name string) bool {
	_, ok := s.styles[name]
	return ok
}

// Render applies the named style. Unknown names render text unchanged.
func (s *Set) Render(name, text string) string {
	style, ok := s.styles[name]
	if !ok {
		return text
	}
	return style.Render(text)
}

func buildStyle(r *lipgloss.Renderer, colors map[string]ColorDef, def StyleDef) lipgloss.Style {
	style := r.NewStyle()
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if c, ok := colors[def.Foreground]; ok {
		style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
	}
	return style
}
