package tree

import (
	"crypto/md5" //nolint:gosec // fingerprint, not a security boundary
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"io/fs"
	"path"
	"strings"

	fserrors "github.com/jmgilman/go/fstree/errors"
)

// FingerprintLen is the number of hex characters in a Fingerprint.
const FingerprintLen = 32

// Fingerprint is the upper-case hex fingerprint of a file or directory tree.
type Fingerprint string

// String returns the fingerprint as a string.
func (f Fingerprint) String() string {
	return string(f)
}

// Algorithm names the digest behind a Fingerprint.
type Algorithm string

const (
	// AlgorithmMD5 is the default digest.
	AlgorithmMD5 Algorithm = "md5"
	// AlgorithmSHA256 truncates a SHA-256 digest to FingerprintLen characters.
	AlgorithmSHA256 Algorithm = "sha256"
)

// ParseAlgorithm converts a case-insensitive algorithm name. An empty name
// selects AlgorithmMD5.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(name)) {
	case "", AlgorithmMD5:
		return AlgorithmMD5, nil
	case AlgorithmSHA256:
		return AlgorithmSHA256, nil
	default:
		return "", fserrors.Newf(fserrors.CodeInvalidInput, "unknown hash algorithm %q", name)
	}
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case AlgorithmMD5:
		return md5.New(), nil //nolint:gosec // fingerprint, not a security boundary
	case AlgorithmSHA256:
		return sha256.New(), nil
	default:
		return nil, fserrors.Newf(fserrors.CodeInvalidInput, "unknown hash algorithm %q", string(a))
	}
}

// Hasher fingerprints file and directory trees.
type Hasher struct {
	opts *options
}

// NewHasher creates a Hasher with the given options.
func NewHasher(opts ...Option) *Hasher {
	return &Hasher{opts: newOptions(opts...)}
}

// Hash fingerprints source using a Hasher built from opts.
func Hash(source string, opts ...Option) (Fingerprint, error) {
	return NewHasher(opts...).Hash(source)
}

// Hash returns the fingerprint of the file or directory at source.
//
// A single digest is fed the full contents of every regular file in walk
// order. Directory names, file names and depth contribute nothing, so an
// empty directory hashes like empty input.
func (h *Hasher) Hash(source string) (Fingerprint, error) {
	digest, err := h.opts.algorithm.newHash()
	if err != nil {
		return "", err
	}

	log := h.opts.logger.With("source", source)

	var files int
	err = Walk(h.opts.srcFS, source, h.opts.policy, func(e Entry) error {
		if e.Kind != KindFile {
			return nil
		}
		log.Debug("hashing file", "path", e.Rel, "size", e.Info.Size())
		files++
		return feed(digest, h.opts.srcFS, e.Path)
	})
	if err != nil {
		return "", err
	}

	fp := finalize(digest)
	log.Info("hashed tree", "files", files, "fingerprint", fp)
	return fp, nil
}

// HashFS returns the fingerprint of root within fsys, applying the same
// rules as Hash. It accepts any io/fs tree, such as embed.FS or
// testing/fstest.MapFS.
func (h *Hasher) HashFS(fsys fs.FS, root string) (Fingerprint, error) {
	digest, err := h.opts.algorithm.newHash()
	if err != nil {
		return "", err
	}

	err = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return wrapFSError(err, "failed to read entry", p)
		}

		switch KindOf(d.Type()) {
		case KindDir:
			return nil
		case KindFile:
			return feed(digest, fsys, p)
		default:
			if h.opts.policy == RejectOther {
				return fserrors.WithContext(
					fserrors.New(fserrors.CodeUnsupported, "unsupported entry type"),
					"path", path.Clean(p))
			}
			return nil
		}
	})
	if err != nil {
		return "", err
	}

	return finalize(digest), nil
}

func feed(digest hash.Hash, fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return wrapFSError(err, "failed to open file", name)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(digest, f); err != nil {
		return wrapFSError(err, "failed to read file", name)
	}
	return nil
}

func finalize(digest hash.Hash) Fingerprint {
	sum := hex.EncodeToString(digest.Sum(nil))
	return Fingerprint(strings.ToUpper(sum[:FingerprintLen]))
}
