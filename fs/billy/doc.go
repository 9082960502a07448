// Package billy provides go-billy-backed implementations of the core.FS
// interface.
//
// It wraps go-billy's osfs (local) and memfs (in-memory) filesystems in one
// thin adapter, so tree operations can run against the real disk in
// production and against memory in tests.
//
// Usage:
//
//	// Local filesystem; relative paths resolve against the working directory
//	fs := billy.NewLocal()
//
//	// Local filesystem scoped to a directory
//	fs := billy.NewLocal(billy.WithRoot("/srv/data"))
//
//	// In-memory filesystem
//	fs := billy.NewMemory()
//	err := fs.WriteFile("src/a.txt", []byte("hello"), 0o644)
//
// Both providers implement core.SymlinkFS and core.ManageFS.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines. File
// handles are not.
package billy
