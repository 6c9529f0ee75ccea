// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir) and afero MemMapFs
// PURPOSE: Both FS implementations behave the same for the operations the store uses

package filesystem_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/savedata/pkg/filesystem"
	"github.com/arthur-debert/savedata/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func implementations(t *testing.T) map[string]struct {
	fs   types.FS
	root string
} {
	t.Helper()
	return map[string]struct {
		fs   types.FS
		root string
	}{
		"os":    {fs: filesystem.NewOS(), root: t.TempDir()},
		"afero": {fs: filesystem.NewMemory(), root: "/root"},
	}
}

func TestFS_WriteReadRoundTrip(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(impl.root, "a", "b")
			require.NoError(t, impl.fs.MkdirAll(dir, 0755))
			require.NoError(t, impl.fs.MkdirAll(dir, 0755), "MkdirAll must be idempotent")

			path := filepath.Join(dir, "doc.json")
			require.NoError(t, impl.fs.WriteFile(path, []byte(`{"x":1}`), 0644))

			data, err := impl.fs.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, `{"x":1}`, string(data))

			info, err := impl.fs.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, int64(7), info.Size())
		})
	}
}

func TestFS_ReadDirRemove(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, impl.fs.MkdirAll(filepath.Join(impl.root, "sub"), 0755))
			require.NoError(t, impl.fs.WriteFile(filepath.Join(impl.root, "one.json"), []byte("1"), 0644))

			entries, err := impl.fs.ReadDir(impl.root)
			require.NoError(t, err)
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			assert.ElementsMatch(t, []string{"one.json", "sub"}, names)

			removed := filepath.Join(impl.root, "one.json")
			require.NoError(t, impl.fs.Remove(removed))
			_, err = impl.fs.Stat(removed)
			assert.ErrorIs(t, err, fs.ErrNotExist)

			err = impl.fs.Remove(removed)
			assert.ErrorIs(t, err, fs.ErrNotExist)
		})
	}
}

func TestFS_ReadFileOnDirectoryFails(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, impl.fs.MkdirAll(impl.root, 0755))
			_, err := impl.fs.ReadFile(impl.root)
			assert.Error(t, err)
		})
	}
}
