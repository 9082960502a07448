package tree

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/google/uuid"
	fserrors "github.com/jmgilman/go/fstree/errors"
	"github.com/jmgilman/go/fstree/exec"
	"github.com/jmgilman/go/fstree/fs/core"
)

// stagingPrefix marks in-progress archives next to their destination.
const stagingPrefix = ".fstree-"

// strategy describes how one platform's archiving tool is invoked.
type strategy struct {
	tool string
	// ext is appended to destinations that have no extension, mirroring
	// tools that would otherwise add one themselves.
	ext  string
	args func(dest, src string) []string
}

var (
	tarStrategy = strategy{
		tool: "tar.exe",
		args: func(dest, src string) []string {
			return []string{"-a", "-c", "-f", dest, src}
		},
	}
	zipStrategy = strategy{
		tool: "zip",
		ext:  ".zip",
		args: func(dest, src string) []string {
			return []string{"-r", dest, src}
		},
	}
)

func strategyFor(goos string) strategy {
	if goos == "windows" {
		return tarStrategy
	}
	return zipStrategy
}

// ToolFor returns the archiving tool used on the given platform.
func ToolFor(goos string) string {
	return strategyFor(goos).tool
}

// Archiver creates archives by invoking a platform archiving tool.
type Archiver struct {
	opts *options
}

// NewArchiver creates an Archiver with the given options.
func NewArchiver(opts ...Option) *Archiver {
	return &Archiver{opts: newOptions(opts...)}
}

// Archive compresses source into destination using an Archiver built from
// opts.
func Archive(ctx context.Context, source, destination string, opts ...Option) error {
	return NewArchiver(opts...).Archive(ctx, source, destination)
}

// Archive compresses the file or directory at source into an archive at
// destination.
//
// On Windows it runs "tar.exe -a -c -f <dest> <source>", elsewhere
// "zip -r <dest> <source>". The tool is located before anything is run or
// written; if it is missing a *ToolUnavailableError is returned. A tool that
// exits non-zero yields a *ExternalToolError.
//
// source is handed to the tool unchanged and so is resolved by the tool
// against its working directory (see WithWorkDir). destination is a name on
// the destination filesystem, which must map names to host paths.
//
// The tool writes to a staging file next to destination which is renamed
// into place on success and removed on failure, so destination is either
// replaced by a complete archive or left untouched. An existing archive is
// replaced, not updated. With zip, a destination without an extension gets
// ".zip" appended.
//
// Canceling ctx kills the tool.
func (a *Archiver) Archive(ctx context.Context, source, destination string) error {
	if source == "" || destination == "" {
		return fserrors.New(fserrors.CodeInvalidInput, "source and destination must not be empty")
	}

	st := strategyFor(a.opts.platform)
	tool := st.tool
	if a.opts.tool != "" {
		tool = a.opts.tool
	}

	log := a.opts.logger.With("tool", tool, "source", source)

	toolPath, err := exec.NewWrapper(a.opts.executor.Clone(), tool).LookPath("")
	if err != nil {
		log.Debug("archiving tool not found", "error", err)
		return &ToolUnavailableError{Tool: tool}
	}

	mfs, ok := a.opts.dstFS.(core.ManageFS)
	if !ok {
		return fserrors.New(fserrors.CodeUnsupported, "archive requires a local destination filesystem")
	}
	hfs, ok := a.opts.dstFS.(core.HostFS)
	if !ok {
		return fserrors.New(fserrors.CodeUnsupported, "archive requires a local destination filesystem")
	}

	if st.ext != "" && filepath.Ext(destination) == "" {
		destination += st.ext
	}
	staging := stagingPath(destination)
	log = log.With("destination", destination)

	// The tool sees host paths while Rename and Remove go through dstFS.
	hostStaging, err := hfs.HostPath(staging)
	if err != nil {
		return fserrors.WithContextMap(
			fserrors.Wrap(err, fserrors.CodeUnsupported, "archive requires a local destination filesystem"),
			map[string]interface{}{"destination": destination})
	}

	args := st.args(hostStaging, source)
	log.Debug("running archiving tool", "path", toolPath, "args", args, "dir", a.opts.workDir)

	runner := exec.NewWrapper(a.opts.executor.Clone(), toolPath).WithContext(ctx)
	if a.opts.workDir != "" {
		runner = runner.WithDir(a.opts.workDir)
	}
	if a.opts.toolOut != nil || a.opts.toolErr != nil {
		runner = runner.WithOutput(a.opts.toolOut, a.opts.toolErr)
	}
	result, err := runner.Run(args...)
	if err != nil {
		_ = mfs.Remove(staging)

		if ctxErr := ctx.Err(); ctxErr != nil {
			return fserrors.Wrap(ctxErr, fserrors.CodeExecutionFailed, "archive interrupted")
		}

		toolErr := &ExternalToolError{Tool: tool, ExitCode: -1, Err: err}
		var execErr *exec.ExecError
		if errors.As(err, &execErr) {
			toolErr.ExitCode = execErr.ExitCode
			toolErr.Stderr = execErr.Stderr
		}
		log.Debug("archiving tool failed", "exit_code", toolErr.ExitCode, "stderr", toolErr.Stderr)
		return toolErr
	}
	if result != nil && result.Stdout != "" {
		log.Debug("archiving tool output", "output", result.Stdout)
	}

	if err := mfs.Rename(staging, destination); err != nil {
		_ = mfs.Remove(staging)
		return wrapFSError(err, "failed to move archive into place", destination)
	}

	log.Info("created archive")
	return nil
}

// stagingPath returns a unique sibling of destination that keeps its
// extension.
func stagingPath(destination string) string {
	dir, base := filepath.Split(destination)
	return filepath.Join(dir, stagingPrefix+uuid.NewString()+"-"+base)
}
