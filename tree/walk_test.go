package tree

import (
	"errors"
	"io/fs"
	"testing"

	fserrors "github.com/jmgilman/go/fstree/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_Order(t *testing.T) {
	fsys := memTree(t, "root", map[string]string{
		"b.txt":       "b",
		"a.txt":       "a",
		"sub/z.txt":   "z",
		"sub/c/d.txt": "d",
		"empty/":      "",
	})

	var rels []string
	var kinds []Kind
	err := Walk(fsys, "root", SkipOther, func(e Entry) error {
		rels = append(rels, e.Rel)
		kinds = append(kinds, e.Kind)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		".",
		"a.txt",
		"b.txt",
		"empty",
		"sub",
		"sub/c",
		"sub/c/d.txt",
		"sub/z.txt",
	}, rels)
	assert.Equal(t, []Kind{
		KindDir, KindFile, KindFile, KindDir, KindDir, KindDir, KindFile, KindFile,
	}, kinds)
}

func TestWalk_Paths(t *testing.T) {
	fsys := memTree(t, "root", map[string]string{"sub/a.txt": "a"})

	var paths []string
	err := Walk(fsys, "root", SkipOther, func(e Entry) error {
		paths = append(paths, e.Path)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "root/sub", "root/sub/a.txt"}, paths)
}

func TestWalk_FileRoot(t *testing.T) {
	fsys := memTree(t, "root", map[string]string{"a.txt": "hello"})

	var entries []Entry
	err := Walk(fsys, "root/a.txt", SkipOther, func(e Entry) error {
		entries = append(entries, e)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".", entries[0].Rel)
	assert.Equal(t, KindFile, entries[0].Kind)
	assert.Equal(t, int64(5), entries[0].Info.Size())
}

func TestWalk_SkipDir(t *testing.T) {
	fsys := memTree(t, "root", map[string]string{
		"a/1.txt": "1",
		"b/2.txt": "2",
		"c.txt":   "c",
	})

	var rels []string
	err := Walk(fsys, "root", SkipOther, func(e Entry) error {
		rels = append(rels, e.Rel)
		if e.Rel == "a" || e.Rel == "c.txt" {
			return SkipDir
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".", "a", "b", "b/2.txt", "c.txt"}, rels)
}

func TestWalk_CallbackError(t *testing.T) {
	fsys := memTree(t, "root", map[string]string{"a.txt": "a", "b.txt": "b"})
	stop := errors.New("stop")

	var rels []string
	err := Walk(fsys, "root", SkipOther, func(e Entry) error {
		rels = append(rels, e.Rel)
		if e.Rel == "a.txt" {
			return stop
		}
		return nil
	})
	assert.Same(t, stop, err)
	assert.Equal(t, []string{".", "a.txt"}, rels)
}

func TestWalk_MissingRoot(t *testing.T) {
	fsys := memTree(t, "root", nil)

	err := Walk(fsys, "nowhere", SkipOther, func(Entry) error { return nil })
	require.Error(t, err)
	assert.Equal(t, fserrors.CodeNotFound, fserrors.GetCode(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "nowhere", fserrors.GetContext(err)["path"])
}

func TestWalk_Symlinks(t *testing.T) {
	fsys := memTree(t, "root", map[string]string{
		"a.txt":        "a",
		"target/b.txt": "b",
	})
	require.NoError(t, fsys.Symlink("target", "root/link"))

	t.Run("skipped by default", func(t *testing.T) {
		var rels []string
		err := Walk(fsys, "root", SkipOther, func(e Entry) error {
			rels = append(rels, e.Rel)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{".", "a.txt", "target", "target/b.txt"}, rels)
	})

	t.Run("rejected", func(t *testing.T) {
		err := Walk(fsys, "root", RejectOther, func(Entry) error { return nil })
		require.Error(t, err)
		assert.Equal(t, fserrors.CodeUnsupported, fserrors.GetCode(err))
		assert.Equal(t, "root/link", fserrors.GetContext(err)["path"])
	})

	t.Run("root link resolved", func(t *testing.T) {
		require.NoError(t, fsys.Symlink("root/target/b.txt", "filelink"))

		var entries []Entry
		err := Walk(fsys, "filelink", RejectOther, func(e Entry) error {
			entries = append(entries, e)
			return nil
		})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, KindFile, entries[0].Kind)
	})
}

func TestKind(t *testing.T) {
	tests := []struct {
		mode fs.FileMode
		want Kind
		name string
	}{
		{0o644, KindFile, "file"},
		{fs.ModeDir | 0o755, KindDir, "dir"},
		{fs.ModeSymlink | 0o777, KindOther, "other"},
		{fs.ModeNamedPipe, KindOther, "other"},
		{fs.ModeSocket, KindOther, "other"},
		{fs.ModeDevice, KindOther, "other"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := KindOf(tt.mode)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}
}
