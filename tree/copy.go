package tree

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	fserrors "github.com/jmgilman/go/fstree/errors"
	"github.com/jmgilman/go/fstree/fs/core"
)

// Copier recursively duplicates directory trees.
type Copier struct {
	opts *options
}

// NewCopier creates a Copier with the given options.
func NewCopier(opts ...Option) *Copier {
	return &Copier{opts: newOptions(opts...)}
}

// Copy duplicates source into destination using a Copier built from opts.
func Copy(source, destination string, opts ...Option) error {
	return NewCopier(opts...).Copy(source, destination)
}

// Copy duplicates the file or directory at source into destination.
//
// Directories are created with mode 0755 along with any missing ancestors.
// Files are written with their source permission bits, truncating any file
// already at the target. A source that is a single file is copied to
// destination itself. Entries already in destination but absent from source
// are left alone.
//
// The copy stops at the first failure and does not roll back.
func (c *Copier) Copy(source, destination string) error {
	if source == "" || destination == "" {
		return fserrors.New(fserrors.CodeInvalidInput, "source and destination must not be empty")
	}
	if c.overlaps(source, destination) {
		return fserrors.WithContextMap(
			fserrors.New(fserrors.CodeInvalidInput, "destination is inside source"),
			map[string]interface{}{
				"source":      source,
				"destination": destination,
			})
	}

	log := c.opts.logger.With("source", source, "destination", destination)

	var files, dirs int
	err := Walk(c.opts.srcFS, source, c.opts.policy, func(e Entry) error {
		target := destination
		if e.Rel != "." {
			target = filepath.Join(destination, filepath.FromSlash(e.Rel))
		}

		switch e.Kind {
		case KindDir:
			log.Debug("creating directory", "path", e.Rel)
			if err := c.opts.dstFS.MkdirAll(target, 0o755); err != nil {
				return wrapFSError(err, "failed to create directory", target)
			}
			dirs++
		case KindFile:
			log.Debug("copying file", "path", e.Rel, "size", e.Info.Size())
			if e.Rel == "." {
				if err := c.ensureParent(target); err != nil {
					return err
				}
			}
			if err := c.copyFile(e.Path, target, e.Info.Mode().Perm()); err != nil {
				return err
			}
			files++
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("copied tree", "files", files, "dirs", dirs)
	return nil
}

func (c *Copier) ensureParent(target string) error {
	parent := filepath.Dir(target)
	if parent == "." || parent == string(filepath.Separator) {
		return nil
	}
	if err := c.opts.dstFS.MkdirAll(parent, 0o755); err != nil {
		return wrapFSError(err, "failed to create directory", parent)
	}
	return nil
}

func (c *Copier) copyFile(src, dst string, perm fs.FileMode) (err error) {
	in, err := c.opts.srcFS.Open(src)
	if err != nil {
		return wrapFSError(err, "failed to open file", src)
	}
	defer func() { _ = in.Close() }()

	out, err := c.opts.dstFS.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return wrapFSError(err, "failed to create file", dst)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = wrapFSError(cerr, "failed to close file", dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return wrapFSError(err, "failed to copy file", dst)
	}
	return nil
}

// overlaps reports whether destination is source or lies below it. Names on
// the same filesystem are compared directly; names on two host-backed
// filesystems are compared by the host paths they refer to.
func (c *Copier) overlaps(source, destination string) bool {
	if c.opts.srcFS == c.opts.dstFS {
		return within(source, destination)
	}

	src, ok := c.opts.srcFS.(core.HostFS)
	if !ok {
		return false
	}
	dst, ok := c.opts.dstFS.(core.HostFS)
	if !ok {
		return false
	}
	hostSrc, err := src.HostPath(source)
	if err != nil {
		return false
	}
	hostDst, err := dst.HostPath(destination)
	if err != nil {
		return false
	}
	return within(hostSrc, hostDst)
}

// within reports whether p is root or lies below it.
func within(root, p string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(p)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
