package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the primary filesystem interface combining all core operations.
// FS embeds fs.FS for stdlib compatibility.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	WalkFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	// The returned file should be closed when no longer needed.
	Open(name string) (fs.File, error)

	// Stat returns file metadata, following symbolic links.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries sorted by
	// filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	// The returned file must be closed when no longer needed.
	Create(name string) (File, error)

	// OpenFile opens a file with the specified flags and permissions.
	// If the file is created, the permission mode perm is used (before umask).
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if necessary
	// and truncating it otherwise.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a new directory. It fails with ErrExist if the
	// directory already exists.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any necessary parents.
	// If path is already a directory, MkdirAll does nothing and returns nil.
	MkdirAll(path string, perm fs.FileMode) error
}

// WalkFS defines directory tree traversal operations.
type WalkFS interface {
	// Walk walks the file tree rooted at root in lexical order, calling
	// walkFn for each file or directory, including root.
	// Walk does not follow symbolic links.
	Walk(root string, walkFn fs.WalkDirFunc) error
}

// File represents an open file handle.
// File extends fs.File with write operations.
type File interface {
	fs.File
	io.Writer

	// Name returns the name of the file as provided to Open or Create.
	Name() string
}

// SymlinkFS defines symbolic link operations.
//
// Use type assertion to check if a filesystem supports them:
//
//	if sfs, ok := filesystem.(SymlinkFS); ok {
//	    err := sfs.Symlink("target", "linkname")
//	}
type SymlinkFS interface {
	// Lstat returns file info without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)

	// Symlink creates a symbolic link named newname pointing to oldname.
	Symlink(oldname, newname string) error

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)
}

// ManageFS defines file management operations.
//
// Use type assertion to check if a filesystem supports them:
//
//	if mfs, ok := filesystem.(ManageFS); ok {
//	    err := mfs.Rename("staged.zip", "final.zip")
//	}
type ManageFS interface {
	// Remove removes the named file or empty directory.
	Remove(name string) error

	// Rename renames (moves) oldpath to newpath, replacing newpath if it
	// already exists and is not a directory.
	Rename(oldpath, newpath string) error
}

// HostFS is implemented by filesystems backed by the host operating system.
//
// HostPath returns the absolute host path a name refers to, suitable for
// handing to external processes or for comparing names across two
// filesystems. Filesystems that can not map a name to the host return an
// error wrapping ErrUnsupported.
type HostFS interface {
	HostPath(name string) (string, error)
}
