package tree

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/jmgilman/go/fstree/exec"
	"github.com/jmgilman/go/fstree/fs/billy"
	"github.com/jmgilman/go/fstree/fs/core"
)

// Option configures Copy, Archive and Hash.
type Option func(*options)

type options struct {
	srcFS     core.FS
	dstFS     core.FS
	logger    *slog.Logger
	policy    EntryPolicy
	algorithm Algorithm
	executor  exec.Executor
	platform  string
	tool      string
	workDir   string
	toolOut   io.Writer
	toolErr   io.Writer
}

func newOptions(opts ...Option) *options {
	local := billy.NewLocal()
	o := &options{
		srcFS:     local,
		dstFS:     local,
		logger:    slog.New(slog.DiscardHandler),
		policy:    SkipOther,
		algorithm: AlgorithmMD5,
		platform:  runtime.GOOS,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.executor == nil {
		o.executor = exec.New()
	}

	return o
}

// WithFS sets the filesystem for both reading and writing.
func WithFS(fsys core.FS) Option {
	return func(o *options) {
		o.srcFS = fsys
		o.dstFS = fsys
	}
}

// WithSourceFS sets the filesystem the source tree is read from.
func WithSourceFS(fsys core.FS) Option {
	return func(o *options) {
		o.srcFS = fsys
	}
}

// WithDestinationFS sets the filesystem copies and archives are written to.
func WithDestinationFS(fsys core.FS) Option {
	return func(o *options) {
		o.dstFS = fsys
	}
}

// WithLogger sets the logger. Entries are logged at debug level and
// completed operations at info level. Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEntryPolicy sets how entries that are neither regular files nor
// directories are handled. The default is SkipOther.
func WithEntryPolicy(policy EntryPolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithAlgorithm sets the digest used by Hash. The default is AlgorithmMD5.
func WithAlgorithm(algorithm Algorithm) Option {
	return func(o *options) {
		o.algorithm = algorithm
	}
}

// WithExecutor sets the executor used to locate and run the archiving tool.
func WithExecutor(executor exec.Executor) Option {
	return func(o *options) {
		o.executor = executor
	}
}

// WithPlatform overrides the operating system used to pick the archiving
// strategy. Values follow runtime.GOOS.
func WithPlatform(goos string) Option {
	return func(o *options) {
		o.platform = goos
	}
}

// WithTool overrides the archiving tool name or path. The argument layout
// still follows the platform.
func WithTool(tool string) Option {
	return func(o *options) {
		o.tool = tool
	}
}

// WithWorkDir runs the archiving tool in dir. Archive sources are then
// resolved against dir by the tool; destinations are unaffected.
func WithWorkDir(dir string) Option {
	return func(o *options) {
		o.workDir = dir
	}
}

// WithToolOutput streams the archiving tool's standard output and standard
// error to stdout and stderr while it runs. Either may be nil.
func WithToolOutput(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.toolOut = stdout
		o.toolErr = stderr
	}
}
