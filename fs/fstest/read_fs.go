package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fstree/fs/core"
)

// TestReadFS tests read-only operations: Open, Stat, ReadDir, ReadFile, Exists.
func TestReadFS(t *testing.T, filesystem core.FS, config Config) {
	testContent := []byte("test file content")

	if err := filesystem.MkdirAll("testdir/nested", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir/nested): setup failed: %v", err)
	}
	for _, name := range []string{"testdir/testfile.txt", "testdir/b.txt", "testdir/a.txt"} {
		if err := filesystem.WriteFile(name, testContent, 0o644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}
	}

	run(t, config, "ReadFS", "Open", func(t *testing.T) {
		f, err := filesystem.Open("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Open(%q): got error %v, want nil", "testdir/testfile.txt", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				t.Errorf("Close(): got error %v", closeErr)
			}
		}()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(): got error %v, want nil", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("Read(): got %q, want %q", data, testContent)
		}
	})

	run(t, config, "ReadFS", "StatFile", func(t *testing.T) {
		info, err := filesystem.Stat("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "testdir/testfile.txt", err)
		}
		if info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = true, want false", "testdir/testfile.txt")
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("Stat(%q): Size() = %d, want %d", "testdir/testfile.txt", info.Size(), len(testContent))
		}
	})

	run(t, config, "ReadFS", "StatDir", func(t *testing.T) {
		info, err := filesystem.Stat("testdir")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "testdir", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", "testdir")
		}
	})

	run(t, config, "ReadFS", "ReadDirSorted", func(t *testing.T) {
		entries, err := filesystem.ReadDir("testdir")
		if err != nil {
			t.Fatalf("ReadDir(%q): got error %v, want nil", "testdir", err)
		}
		want := []string{"a.txt", "b.txt", "nested", "testfile.txt"}
		if len(entries) != len(want) {
			t.Fatalf("ReadDir(%q): got %d entries, want %d", "testdir", len(entries), len(want))
		}
		for i, name := range want {
			if entries[i].Name() != name {
				t.Errorf("ReadDir(%q): entry[%d] = %q, want %q", "testdir", i, entries[i].Name(), name)
			}
		}
		if !entries[2].IsDir() {
			t.Errorf("ReadDir(%q): %q IsDir() = false, want true", "testdir", "nested")
		}
	})

	run(t, config, "ReadFS", "ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", "testdir/testfile.txt", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("ReadFile(%q): got %q, want %q", "testdir/testfile.txt", data, testContent)
		}
	})

	run(t, config, "ReadFS", "OpenNotExist", func(t *testing.T) {
		_, err := filesystem.Open("nonexistent")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", "nonexistent", err)
		}
	})

	run(t, config, "ReadFS", "Exists", func(t *testing.T) {
		for path, want := range map[string]bool{
			"testdir/testfile.txt": true,
			"testdir":              true,
			"nonexistent":          false,
		} {
			got, err := filesystem.Exists(path)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", path, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%q): got %v, want %v", path, got, want)
			}
		}
	})
}
