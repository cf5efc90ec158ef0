package installer

import (
	"path/filepath"

	"github.com/johnolven/asis-coder/pkg/config"
	"github.com/johnolven/asis-coder/pkg/errors"
)

// Layout holds the paths the installer works with. It is computed once
// from the package root and never changes during a run.
type Layout struct {
	Root        string
	MainScript  string
	SetupScript string
	LibDir      string
	Shim        string
}

// NewLayout resolves root to an absolute path and derives the script paths.
func NewLayout(root string, scripts config.ScriptsConfig) (Layout, error) {
	if root == "" {
		return Layout{}, errors.New(errors.ErrRootResolve, "package root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return Layout{}, errors.Wrapf(err, errors.ErrRootResolve, "failed to resolve package root %s", root)
	}

	return Layout{
		Root:        abs,
		MainScript:  filepath.Join(abs, scripts.Main),
		SetupScript: filepath.Join(abs, scripts.Setup),
		LibDir:      filepath.Join(abs, scripts.LibDir),
		Shim:        filepath.Join(abs, scripts.Shim),
	}, nil
}
