// Package tree implements three stateless operations over a directory tree:
// recursive copy, archive creation through a platform archiver, and content
// fingerprinting.
//
// Copy duplicates a file or directory tree:
//
//	err := tree.Copy("assets", "dist/assets")
//
// Archive compresses a path with tar.exe on Windows and zip elsewhere:
//
//	err := tree.Archive(ctx, "dist", "dist.zip")
//	var missing *tree.ToolUnavailableError
//	if errors.As(err, &missing) {
//	    fmt.Fprintf(os.Stderr, "Unable to find %q.\n", missing.Tool)
//	}
//
// Hash returns a deterministic fingerprint of a file or directory:
//
//	fp, err := tree.Hash("dist")
//	fmt.Println(fp) // 32 upper-case hex characters
//
// Copy and Hash visit entries depth-first, parents before children and
// siblings in byte-wise name order. Only file bytes feed a fingerprint, so
// renaming or re-nesting files without reordering them leaves it unchanged.
// Symbolic links and special files below the root are skipped unless
// WithEntryPolicy(RejectOther) is given.
//
// All operations default to the local filesystem. WithFS, WithSourceFS and
// WithDestinationFS substitute any core.FS, such as billy.NewMemory().
//
// Errors carry codes from the errors package; use errors.GetCode to inspect
// them.
package tree
