package fstest

import (
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fstree/fs/core"
)

// TestSymlinkFS tests symbolic link support when the filesystem implements
// core.SymlinkFS. Walk must report links without following them.
func TestSymlinkFS(t *testing.T, filesystem core.FS, config Config) {
	sfs, ok := filesystem.(core.SymlinkFS)
	if !ok {
		t.Skip("filesystem does not implement core.SymlinkFS")
		return
	}

	if err := filesystem.MkdirAll("linkroot/target", 0o755); err != nil {
		t.Fatalf("MkdirAll(linkroot/target): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("linkroot/target/file.txt", []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile(linkroot/target/file.txt): setup failed: %v", err)
	}
	if err := sfs.Symlink("target", "linkroot/link"); err != nil {
		t.Fatalf("Symlink(target, linkroot/link): setup failed: %v", err)
	}

	run(t, config, "SymlinkFS", "Lstat", func(t *testing.T) {
		info, err := sfs.Lstat("linkroot/link")
		if err != nil {
			t.Fatalf("Lstat(%q): got error %v, want nil", "linkroot/link", err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Lstat(%q): mode %v, want symlink", "linkroot/link", info.Mode())
		}
	})

	run(t, config, "SymlinkFS", "StatFollows", func(t *testing.T) {
		info, err := filesystem.Stat("linkroot/link")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "linkroot/link", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", "linkroot/link")
		}
	})

	run(t, config, "SymlinkFS", "Readlink", func(t *testing.T) {
		target, err := sfs.Readlink("linkroot/link")
		if err != nil {
			t.Fatalf("Readlink(%q): got error %v, want nil", "linkroot/link", err)
		}
		if target != "target" {
			t.Errorf("Readlink(%q): got %q, want %q", "linkroot/link", target, "target")
		}
	})

	run(t, config, "SymlinkFS", "WalkDoesNotFollow", func(t *testing.T) {
		var visited []string
		err := filesystem.Walk("linkroot", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			if path == "linkroot/link" && d.Type()&fs.ModeSymlink == 0 {
				t.Errorf("Walk: %q type %v, want symlink", path, d.Type())
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(linkroot): got error %v, want nil", err)
		}
		want := []string{"linkroot", "linkroot/link", "linkroot/target", "linkroot/target/file.txt"}
		assertPaths(t, "linkroot", visited, want)
	})
}
