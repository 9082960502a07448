package tree

import (
	"testing"

	"github.com/jmgilman/go/fstree/fs/billy"
	"github.com/jmgilman/go/fstree/fs/core"
	"github.com/stretchr/testify/require"
)

// memTree returns an in-memory filesystem holding files under root.
// Keys ending in "/" create empty directories.
func memTree(t *testing.T, root string, files map[string]string) *billy.FS {
	t.Helper()
	fsys := billy.NewMemory()
	writeTree(t, fsys, root, files)
	return fsys
}

func writeTree(t *testing.T, fsys core.FS, root string, files map[string]string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(root, 0o755))
	for name, content := range files {
		p := root + "/" + name
		if name[len(name)-1] == '/' {
			require.NoError(t, fsys.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, fsys.WriteFile(p, []byte(content), 0o644))
	}
}

// listTree returns every path below root with file contents, "<dir>" for
// directories.
func listTree(t *testing.T, fsys core.FS, root string) map[string]string {
	t.Helper()
	got := map[string]string{}
	err := Walk(fsys, root, SkipOther, func(e Entry) error {
		if e.Rel == "." {
			return nil
		}
		if e.Kind == KindDir {
			got[e.Rel] = "<dir>"
			return nil
		}
		data, err := fsys.ReadFile(e.Path)
		if err != nil {
			return err
		}
		got[e.Rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return got
}
