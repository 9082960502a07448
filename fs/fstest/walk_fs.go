package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fstree/fs/core"
)

// TestWalkFS tests directory tree traversal with Walk.
// Walks must be pre-order and lexical.
func TestWalkFS(t *testing.T, filesystem core.FS, config Config) {
	if err := filesystem.MkdirAll("walkroot/subdir1", 0o755); err != nil {
		t.Fatalf("MkdirAll(walkroot/subdir1): setup failed: %v", err)
	}
	if err := filesystem.MkdirAll("walkroot/subdir2", 0o755); err != nil {
		t.Fatalf("MkdirAll(walkroot/subdir2): setup failed: %v", err)
	}
	if err := filesystem.MkdirAll("walkroot/empty", 0o755); err != nil {
		t.Fatalf("MkdirAll(walkroot/empty): setup failed: %v", err)
	}
	files := []string{"walkroot/root.txt", "walkroot/subdir1/file1.txt", "walkroot/subdir2/file2.txt"}
	for _, name := range files {
		if err := filesystem.WriteFile(name, []byte(name), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}
	}

	collect := func(t *testing.T, root string, skip string) []string {
		t.Helper()
		var visited []string
		err := filesystem.Walk(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			if d.IsDir() && path == skip {
				return fs.SkipDir
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(%q): got error %v, want nil", root, err)
		}
		return visited
	}

	run(t, config, "WalkFS", "LexicalOrder", func(t *testing.T) {
		want := []string{
			"walkroot",
			"walkroot/empty",
			"walkroot/root.txt",
			"walkroot/subdir1",
			"walkroot/subdir1/file1.txt",
			"walkroot/subdir2",
			"walkroot/subdir2/file2.txt",
		}
		assertPaths(t, "walkroot", collect(t, "walkroot", ""), want)
	})

	run(t, config, "WalkFS", "SkipDir", func(t *testing.T) {
		want := []string{
			"walkroot",
			"walkroot/empty",
			"walkroot/root.txt",
			"walkroot/subdir1",
			"walkroot/subdir2",
			"walkroot/subdir2/file2.txt",
		}
		assertPaths(t, "walkroot", collect(t, "walkroot", "walkroot/subdir1"), want)
	})

	run(t, config, "WalkFS", "FileRoot", func(t *testing.T) {
		assertPaths(t, "walkroot/root.txt", collect(t, "walkroot/root.txt", ""), []string{"walkroot/root.txt"})
	})

	run(t, config, "WalkFS", "MissingRoot", func(t *testing.T) {
		err := filesystem.Walk("nowhere", func(_ string, _ fs.DirEntry, err error) error {
			return err
		})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Walk(%q): got error %v, want fs.ErrNotExist", "nowhere", err)
		}
	})

	run(t, config, "WalkFS", "CallbackError", func(t *testing.T) {
		stop := errors.New("stop")
		calls := 0
		err := filesystem.Walk("walkroot", func(_ string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			calls++
			if calls == 2 {
				return stop
			}
			return nil
		})
		if !errors.Is(err, stop) {
			t.Errorf("Walk(walkroot): got error %v, want %v", err, stop)
		}
		if calls != 2 {
			t.Errorf("Walk(walkroot): callback ran %d times after abort, want 2", calls)
		}
	})
}

func assertPaths(t *testing.T, root string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("Walk(%q): visited %d paths, want %d. Visited: %v", root, len(got), len(want), got)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Walk(%q): path[%d] = %q, want %q", root, i, got[i], want[i])
		}
	}
}
