// Package core defines the filesystem abstraction used by the tree
// operations.
//
// The contracts here let copy and fingerprint code run unchanged against the
// local disk or an in-memory filesystem. Concrete providers live in separate
// packages (see fs/billy).
//
// # Interface Hierarchy
//
// The main FS interface is composed of three sub-interfaces:
//
//   - ReadFS: Read-only operations (Open, Stat, ReadDir, ReadFile, Exists)
//   - WriteFS: Write operations (Create, OpenFile, WriteFile, Mkdir, MkdirAll)
//   - WalkFS: Directory traversal (Walk)
//
// SymlinkFS, ManageFS and HostFS are optional. Providers that can tell a link from
// its target implement SymlinkFS, and traversal code type-asserts for it:
//
//	if sfs, ok := filesystem.(core.SymlinkFS); ok {
//	    info, err := sfs.Lstat(name)
//	}
//
// HostFS is implemented by providers backed by the operating system. It maps
// names to absolute host paths for code that hands paths to other processes.
//
// # Stdlib Compatibility
//
// FS embeds fs.FS, so stdlib helpers such as fs.WalkDir and fs.ReadFile
// accept any provider.
package core
