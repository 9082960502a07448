package tree

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"

	fserrors "github.com/jmgilman/go/fstree/errors"
	"github.com/jmgilman/go/fstree/fs/core"
)

// Kind classifies a filesystem entry.
type Kind int

const (
	// KindFile is a regular file.
	KindFile Kind = iota
	// KindDir is a directory.
	KindDir
	// KindOther is anything else: symbolic links, sockets, devices, pipes.
	KindOther
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "other"
	}
}

// KindOf classifies a file mode.
func KindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	default:
		return KindOther
	}
}

// EntryPolicy decides what happens to KindOther entries during a walk.
type EntryPolicy int

const (
	// SkipOther silently skips entries that are neither files nor directories.
	SkipOther EntryPolicy = iota
	// RejectOther aborts the walk with a CodeUnsupported error.
	RejectOther
)

// Entry is a single visited filesystem entry.
type Entry struct {
	// Path is the entry's path on its filesystem, built from the walk root.
	Path string

	// Rel is the slash-separated path relative to the walk root, "." for the
	// root itself.
	Rel string

	// Kind classifies the entry.
	Kind Kind

	// Info describes the entry.
	Info fs.FileInfo
}

// WalkFunc is called for every entry visited by Walk. Returning SkipDir from
// a directory skips its contents and is ignored for files. Any other error
// aborts the walk and is returned unchanged by Walk.
type WalkFunc func(entry Entry) error

// SkipDir is used as a return value from a WalkFunc to skip a directory.
var SkipDir = fs.SkipDir

// Walk visits root and every entry below it depth-first, calling fn for each
// file and directory. Parents are visited before their children and siblings
// in byte-wise name order.
//
// The root is classified with Stat, so a root symbolic link is resolved.
// Descendants are classified with Lstat when fsys implements core.SymlinkFS,
// and are never followed. KindOther entries are handled according to policy.
func Walk(fsys core.FS, root string, policy EntryPolicy, fn WalkFunc) error {
	info, err := fsys.Stat(root)
	if err != nil {
		return wrapFSError(err, "failed to stat source", root)
	}

	w := &walker{fsys: fsys, policy: policy, fn: fn}
	if sfs, ok := fsys.(core.SymlinkFS); ok {
		w.lstat = sfs.Lstat
	}

	return w.visit(Entry{Path: root, Rel: ".", Kind: KindOf(info.Mode()), Info: info})
}

type walker struct {
	fsys   core.FS
	lstat  func(string) (fs.FileInfo, error)
	policy EntryPolicy
	fn     WalkFunc
}

func (w *walker) visit(entry Entry) error {
	if entry.Kind == KindOther {
		if w.policy == RejectOther {
			return fserrors.WrapWithContext(core.ErrUnsupported, fserrors.CodeUnsupported,
				"unsupported entry type", map[string]interface{}{
					"path": entry.Path,
					"mode": entry.Info.Mode().String(),
				})
		}
		return nil
	}

	if err := w.fn(entry); err != nil {
		if errors.Is(err, fs.SkipDir) {
			return nil
		}
		return err
	}

	if entry.Kind != KindDir {
		return nil
	}

	children, err := w.fsys.ReadDir(entry.Path)
	if err != nil {
		return wrapFSError(err, "failed to read directory", entry.Path)
	}

	for _, child := range children {
		childEntry, err := w.entry(entry, child)
		if err != nil {
			return err
		}
		if err := w.visit(childEntry); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) entry(parent Entry, d fs.DirEntry) (Entry, error) {
	p := filepath.Join(parent.Path, d.Name())
	rel := d.Name()
	if parent.Rel != "." {
		rel = path.Join(parent.Rel, d.Name())
	}

	var (
		info fs.FileInfo
		err  error
	)
	if w.lstat != nil {
		info, err = w.lstat(p)
	} else {
		info, err = d.Info()
	}
	if err != nil {
		return Entry{}, wrapFSError(err, "failed to stat entry", p)
	}

	return Entry{Path: p, Rel: rel, Kind: KindOf(info.Mode()), Info: info}, nil
}
