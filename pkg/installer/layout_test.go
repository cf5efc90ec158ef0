package installer

import (
	"path/filepath"
	"testing"

	"github.com/johnolven/asis-coder/pkg/config"
	"github.com/johnolven/asis-coder/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	scripts := config.ScriptsConfig{Main: "coder.sh", Setup: "install.sh", LibDir: "lib", Shim: "coder.bat"}

	t.Run("absolute root", func(t *testing.T) {
		root := t.TempDir()
		l, err := NewLayout(root, scripts)
		require.NoError(t, err)

		assert.Equal(t, root, l.Root)
		assert.Equal(t, filepath.Join(root, "coder.sh"), l.MainScript)
		assert.Equal(t, filepath.Join(root, "install.sh"), l.SetupScript)
		assert.Equal(t, filepath.Join(root, "lib"), l.LibDir)
		assert.Equal(t, filepath.Join(root, "coder.bat"), l.Shim)
	})

	t.Run("relative root is made absolute", func(t *testing.T) {
		l, err := NewLayout("pkg", scripts)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(l.Root))
	})

	t.Run("empty root", func(t *testing.T) {
		_, err := NewLayout("", scripts)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRootResolve))
	})
}
