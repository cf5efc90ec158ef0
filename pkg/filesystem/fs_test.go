package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	script := filepath.Join(tmpDir, "coder.sh")

	require.NoError(t, fsys.WriteFile(script, []byte("#!/bin/sh\n"), 0644))
	assert.True(t, Exists(fsys, script))
	content, err := os.ReadFile(script)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n", string(content))

	lib := filepath.Join(tmpDir, "lib", "nested")
	require.NoError(t, fsys.MkdirAll(lib, 0755))
	info, err := fsys.Stat(lib)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, MakeExecutable(fsys, script))
	info, err = os.Stat(script)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestMakeExecutable(t *testing.T) {
	t.Run("adds execute bits and keeps the rest", func(t *testing.T) {
		fsys := NewAferoFS(afero.NewMemMapFs())
		require.NoError(t, fsys.WriteFile("/pkg/install.sh", []byte("x"), 0600))

		require.NoError(t, MakeExecutable(fsys, "/pkg/install.sh"))

		info, err := fsys.Stat("/pkg/install.sh")
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0711), info.Mode().Perm())
	})

	t.Run("is idempotent", func(t *testing.T) {
		fsys := NewAferoFS(afero.NewMemMapFs())
		require.NoError(t, fsys.WriteFile("/pkg/coder.sh", []byte("x"), 0755))

		require.NoError(t, MakeExecutable(fsys, "/pkg/coder.sh"))
		require.NoError(t, MakeExecutable(fsys, "/pkg/coder.sh"))

		info, err := fsys.Stat("/pkg/coder.sh")
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	})

	t.Run("missing file", func(t *testing.T) {
		fsys := NewAferoFS(afero.NewMemMapFs())
		assert.Error(t, MakeExecutable(fsys, "/pkg/missing.sh"))
	})

	t.Run("directory", func(t *testing.T) {
		fsys := NewAferoFS(afero.NewMemMapFs())
		require.NoError(t, fsys.MkdirAll("/pkg/lib", 0755))
		assert.Error(t, MakeExecutable(fsys, "/pkg/lib"))
	})
}
