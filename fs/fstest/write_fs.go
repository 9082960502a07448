package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/fstree/fs/core"
)

// TestWriteFS tests write operations: Create, OpenFile, WriteFile, Mkdir, MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS, config Config) {
	run(t, config, "WriteFS", "Create", func(t *testing.T) {
		f, err := filesystem.Create("created.txt")
		if err != nil {
			t.Fatalf("Create(%q): got error %v, want nil", "created.txt", err)
		}
		if _, err := f.Write([]byte("hello")); err != nil {
			t.Fatalf("Write(): got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v, want nil", err)
		}
		if f.Name() != "created.txt" {
			t.Errorf("Name(): got %q, want %q", f.Name(), "created.txt")
		}

		data, err := filesystem.ReadFile("created.txt")
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", "created.txt", err)
		}
		if string(data) != "hello" {
			t.Errorf("ReadFile(%q): got %q, want %q", "created.txt", data, "hello")
		}
	})

	run(t, config, "WriteFS", "WriteFileTruncates", func(t *testing.T) {
		if err := filesystem.WriteFile("trunc.txt", []byte("longer content"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): got error %v, want nil", "trunc.txt", err)
		}
		if err := filesystem.WriteFile("trunc.txt", []byte("short"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): got error %v, want nil", "trunc.txt", err)
		}
		data, err := filesystem.ReadFile("trunc.txt")
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", "trunc.txt", err)
		}
		if !bytes.Equal(data, []byte("short")) {
			t.Errorf("ReadFile(%q): got %q, want %q", "trunc.txt", data, "short")
		}
	})

	run(t, config, "WriteFS", "OpenFileExclusive", func(t *testing.T) {
		f, err := filesystem.OpenFile("excl.txt", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(%q, O_EXCL): got error %v, want nil", "excl.txt", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v, want nil", err)
		}

		_, err = filesystem.OpenFile("excl.txt", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("OpenFile(%q, O_EXCL) on existing file: got error %v, want fs.ErrExist", "excl.txt", err)
		}
	})

	run(t, config, "WriteFS", "Mkdir", func(t *testing.T) {
		if err := filesystem.Mkdir("newdir", 0o755); err != nil {
			t.Fatalf("Mkdir(%q): got error %v, want nil", "newdir", err)
		}
		info, err := filesystem.Stat("newdir")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "newdir", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", "newdir")
		}

		if err := filesystem.Mkdir("newdir", 0o755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(%q) twice: got error %v, want fs.ErrExist", "newdir", err)
		}
	})

	run(t, config, "WriteFS", "MkdirNoParent", func(t *testing.T) {
		if err := filesystem.Mkdir("missing/child", 0o755); err == nil {
			t.Errorf("Mkdir(%q): got nil error, want error for missing parent", "missing/child")
		}
	})

	run(t, config, "WriteFS", "MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v, want nil", "a/b/c", err)
		}
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Errorf("MkdirAll(%q) twice: got error %v, want nil", "a/b/c", err)
		}
		for _, dir := range []string{"a", "a/b", "a/b/c"} {
			info, err := filesystem.Stat(dir)
			if err != nil {
				t.Errorf("Stat(%q): got error %v, want nil", dir, err)
				continue
			}
			if !info.IsDir() {
				t.Errorf("Stat(%q): IsDir() = false, want true", dir)
			}
		}
	})
}
