package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/fstree/fs/core"
)

// FS adapts a billy.Filesystem to core.FS and core.SymlinkFS.
type FS struct {
	bfs billy.Filesystem
	typ core.FSType
	// root is the absolute host directory of a scoped local filesystem.
	root string
	// host is set for an unscoped local filesystem: names are host paths,
	// relative names resolve against the working directory and every volume
	// is served by its own osfs.
	host    bool
	mu      sync.Mutex
	volumes map[string]billy.Filesystem
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot scopes a local filesystem to dir. All names passed to the
// returned FS are then interpreted relative to dir.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem.
func NewLocal(opts ...Option) *FS {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.root != "" {
		root := cfg.root
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
		return &FS{bfs: osfs.New(root), typ: core.FSTypeLocal, root: root}
	}

	f := &FS{typ: core.FSTypeLocal, host: true, volumes: map[string]billy.Filesystem{}}
	f.bfs = f.volume(workingVolume())
	return f
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(_ ...Option) *FS {
	return &FS{bfs: memfs.New(), typ: core.FSTypeMemory}
}

// Unwrap returns the underlying billy.Filesystem. For an unscoped local
// filesystem this is the volume holding the working directory.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the filesystem type.
func (f *FS) Type() core.FSType {
	return f.typ
}

// HostPath returns the absolute host path of name. Memory filesystems have
// none.
func (f *FS) HostPath(name string) (string, error) {
	switch {
	case f.host:
		if abs, err := filepath.Abs(name); err == nil {
			return abs, nil
		}
		return filepath.Clean(name), nil
	case f.root != "":
		return filepath.Join(f.root, filepath.Clean(string(filepath.Separator)+filepath.FromSlash(name))), nil
	default:
		return "", &fs.PathError{Op: "hostpath", Path: name, Err: core.ErrUnsupported}
	}
}

// workingVolume returns the volume holding the working directory, which is
// empty on platforms without volumes.
func workingVolume() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.VolumeName(wd)
}

// volume returns the filesystem rooted at the given volume, creating it on
// first use.
func (f *FS) volume(vol string) billy.Filesystem {
	f.mu.Lock()
	defer f.mu.Unlock()

	bfs, ok := f.volumes[vol]
	if !ok {
		bfs = osfs.New(vol + string(filepath.Separator))
		f.volumes[vol] = bfs
	}
	return bfs
}

// resolve returns the billy filesystem serving name and the clean,
// slash-separated path it is known by there. Host names keep their volume:
// D:\src is served from D:\ and \\server\share\dir from \\server\share\.
func (f *FS) resolve(name string) (billy.Filesystem, string) {
	if !f.host {
		return f.bfs, filepath.ToSlash(filepath.Clean(name))
	}
	if abs, err := filepath.Abs(name); err == nil {
		name = abs
	}
	vol := filepath.VolumeName(name)
	rest := filepath.ToSlash(filepath.Clean(strings.TrimPrefix(name, vol)))
	return f.volume(vol), rest
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }
func (d *dirEntry) String() string             { return fs.FormatDirEntry(d) }

// ReadFS

// Open opens the named file for reading.
func (f *FS) Open(name string) (fs.File, error) {
	bfs, p := f.resolve(name)
	file, err := bfs.Open(p)
	if err != nil {
		return nil, err
	}
	return &File{file: file, fs: bfs, path: p, name: f.display(name, p)}, nil
}

// Stat returns file metadata for the named file, following symbolic links.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	bfs, p := f.resolve(name)
	return bfs.Stat(p)
}

// ReadDir reads the named directory and returns its entries sorted by
// filename.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	bfs, p := f.resolve(name)
	infos, err := bfs.ReadDir(p)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	bfs, p := f.resolve(name)
	file, err := bfs.Open(p)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return io.ReadAll(file)
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteFS

// Create creates or truncates the named file for writing.
func (f *FS) Create(name string) (core.File, error) {
	bfs, p := f.resolve(name)
	file, err := bfs.Create(p)
	if err != nil {
		return nil, err
	}
	return &File{file: file, fs: bfs, path: p, name: f.display(name, p)}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (f *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	bfs, p := f.resolve(name)
	file, err := bfs.OpenFile(p, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: file, fs: bfs, path: p, name: f.display(name, p)}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	bfs, p := f.resolve(name)
	file, err := bfs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Mkdir creates a new directory. Unlike MkdirAll, it fails if the directory
// exists or its parent does not.
func (f *FS) Mkdir(name string, perm fs.FileMode) error {
	bfs, p := f.resolve(name)
	if _, err := bfs.Stat(p); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := path.Dir(p)
	if parent != "." && parent != "/" {
		if _, err := bfs.Stat(parent); err != nil {
			return err
		}
	}
	return bfs.MkdirAll(p, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (f *FS) MkdirAll(name string, perm fs.FileMode) error {
	bfs, p := f.resolve(name)
	return bfs.MkdirAll(p, perm)
}

// WalkFS

// Walk walks the file tree rooted at root in lexical order, calling walkFn
// for each file or directory in the tree, including root. Symbolic links
// are reported, not followed. Paths passed to walkFn are root joined with
// the slash-separated path below it.
func (f *FS) Walk(root string, walkFn fs.WalkDirFunc) error {
	info, err := f.Lstat(root)
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = f.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (f *FS) walk(name string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(name, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := f.ReadDir(name)
	if err != nil {
		err = walkFn(name, d, err)
		if err != nil {
			return err
		}
	}

	for _, entry := range entries {
		if err := f.walk(f.join(name, entry.Name()), entry, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// join appends a child to a name. Host names keep their native separators
// so volumes survive; other names are slash-separated.
func (f *FS) join(name, child string) string {
	if f.host {
		return filepath.Join(name, child)
	}
	return path.Join(filepath.ToSlash(name), child)
}

// display returns the name reported by files opened as name.
func (f *FS) display(name, p string) string {
	if f.host {
		return filepath.Clean(name)
	}
	return p
}

// SymlinkFS

// Lstat returns file info without following symbolic links.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	bfs, p := f.resolve(name)
	return bfs.Lstat(p)
}

// Symlink creates a symbolic link named newname pointing to oldname.
// oldname is stored as-is.
func (f *FS) Symlink(oldname, newname string) error {
	bfs, p := f.resolve(newname)
	return bfs.Symlink(oldname, p)
}

// Readlink returns the destination of the named symbolic link.
func (f *FS) Readlink(name string) (string, error) {
	bfs, p := f.resolve(name)
	return bfs.Readlink(p)
}

// ManageFS

// Remove removes the named file or empty directory.
func (f *FS) Remove(name string) error {
	bfs, p := f.resolve(name)
	return bfs.Remove(p)
}

// Rename renames (moves) oldpath to newpath. Both must be on the same
// volume.
func (f *FS) Rename(oldpath, newpath string) error {
	from, op := f.resolve(oldpath)
	to, np := f.resolve(newpath)
	if from != to {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: core.ErrUnsupported}
	}
	return from.Rename(op, np)
}

// Compile-time interface checks.
var (
	_ core.FS        = (*FS)(nil)
	_ core.SymlinkFS = (*FS)(nil)
	_ core.ManageFS  = (*FS)(nil)
	_ core.HostFS    = (*FS)(nil)
)
