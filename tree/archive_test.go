package tree

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"
	"testing"

	fserrors "github.com/jmgilman/go/fstree/errors"
	"github.com/jmgilman/go/fstree/exec"
	"github.com/jmgilman/go/fstree/exec/mocks"
	"github.com/jmgilman/go/fstree/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeArchiver returns an executor mock that resolves every tool to
// /usr/bin/<tool> and runs by writing "archive of <src>" to the output path
// found at argv[destIdx].
func fakeArchiver(t *testing.T, destIdx int) *mocks.ExecutorMock {
	t.Helper()
	var mock *mocks.ExecutorMock
	mock = &mocks.ExecutorMock{
		CloneFunc: func() exec.Executor { return mock },
		WithContextFunc: func(context.Context) exec.Executor {
			return mock
		},
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/" + file, nil
		},
		RunFunc: func(args ...string) (*exec.Result, error) {
			dest := args[destIdx]
			src := args[len(args)-1]
			if err := os.WriteFile(dest, []byte("archive of "+src), 0o644); err != nil {
				return nil, err
			}
			return &exec.Result{}, nil
		},
	}
	return mock
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestArchive_Strategies(t *testing.T) {
	tests := []struct {
		platform string
		destIdx  int
		tool     string
		flags    []string
	}{
		{platform: "windows", destIdx: 4, tool: "tar.exe", flags: []string{"-a", "-c", "-f"}},
		{platform: "linux", destIdx: 2, tool: "zip", flags: []string{"-r"}},
		{platform: "darwin", destIdx: 2, tool: "zip", flags: []string{"-r"}},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			dir := t.TempDir()
			dest := filepath.Join(dir, "out.zip")
			mock := fakeArchiver(t, tt.destIdx)

			err := Archive(context.Background(), "src", dest, WithExecutor(mock), WithPlatform(tt.platform))
			require.NoError(t, err)

			require.Len(t, mock.LookPathCalls(), 1)
			assert.Equal(t, tt.tool, mock.LookPathCalls()[0].File)
			assert.Equal(t, tt.tool, ToolFor(tt.platform))

			require.Len(t, mock.RunCalls(), 1)
			args := mock.RunCalls()[0].Args
			assert.Equal(t, "/usr/bin/"+tt.tool, args[0])
			assert.Equal(t, tt.flags, args[1:tt.destIdx])
			assert.Equal(t, "src", args[len(args)-1])

			staging := args[tt.destIdx]
			assert.Equal(t, dir, filepath.Dir(staging))
			assert.True(t, strings.HasPrefix(filepath.Base(staging), stagingPrefix))
			assert.True(t, strings.HasSuffix(staging, "-out.zip"))

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			assert.Equal(t, "archive of src", string(data))
			assert.Equal(t, []string{"out.zip"}, dirEntries(t, dir))
		})
	}
}

func TestArchive_ToolUnavailable(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.zip")

	mock := fakeArchiver(t, 2)
	mock.LookPathFunc = func(file string) (string, error) {
		return "", &osexec.Error{Name: file, Err: exec.ErrNotFound}
	}

	err := Archive(context.Background(), "src", dest, WithExecutor(mock), WithPlatform("linux"))
	require.Error(t, err)

	var missing *ToolUnavailableError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "zip", missing.Tool)
	assert.Equal(t, fserrors.CodeToolUnavailable, fserrors.GetCode(err))
	assert.Equal(t, `unable to find "zip"`, err.Error())

	assert.Empty(t, mock.RunCalls())
	assert.NoFileExists(t, dest)
	assert.Empty(t, dirEntries(t, dir))
}

func TestArchive_ToolFailure(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.zip")
	require.NoError(t, os.WriteFile(dest, []byte("previous"), 0o644))

	mock := fakeArchiver(t, 2)
	mock.RunFunc = func(args ...string) (*exec.Result, error) {
		require.NoError(t, os.WriteFile(args[2], []byte("partial"), 0o644))
		return &exec.Result{ExitCode: 12, Stderr: "zip error: Nothing to do!"}, &exec.ExecError{
			Args:     args,
			ExitCode: 12,
			Stderr:   "zip error: Nothing to do!",
			Err:      errors.New("exit status 12"),
		}
	}

	err := Archive(context.Background(), "src", dest, WithExecutor(mock), WithPlatform("linux"))
	require.Error(t, err)

	var toolErr *ExternalToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, "zip", toolErr.Tool)
	assert.Equal(t, 12, toolErr.ExitCode)
	assert.Equal(t, "zip error: Nothing to do!", toolErr.Stderr)
	assert.Equal(t, fserrors.CodeExecutionFailed, fserrors.GetCode(err))

	var execErr *exec.ExecError
	assert.True(t, errors.As(err, &execErr))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
	assert.Equal(t, []string{"out.zip"}, dirEntries(t, dir))
}

func TestArchive_Canceled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	mock := fakeArchiver(t, 2)
	mock.RunFunc = func(args ...string) (*exec.Result, error) {
		cancel()
		return nil, &exec.ExecError{Args: args, ExitCode: -1, Err: errors.New("signal: killed")}
	}

	err := Archive(ctx, "src", filepath.Join(dir, "out.zip"), WithExecutor(mock), WithPlatform("linux"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, fserrors.CodeExecutionFailed, fserrors.GetCode(err))

	require.Len(t, mock.WithContextCalls(), 1)
	assert.Equal(t, ctx, mock.WithContextCalls()[0].Ctx)
	assert.Empty(t, dirEntries(t, dir))
}

func TestArchive_ToolOverride(t *testing.T) {
	dir := t.TempDir()
	mock := fakeArchiver(t, 2)

	err := Archive(context.Background(), "src", filepath.Join(dir, "out.zip"),
		WithExecutor(mock), WithPlatform("linux"), WithTool("/opt/zip/bin/zip"))
	require.NoError(t, err)

	assert.Equal(t, "/opt/zip/bin/zip", mock.LookPathCalls()[0].File)
}

func TestArchive_ZipAddsExtension(t *testing.T) {
	dir := t.TempDir()
	mock := fakeArchiver(t, 2)

	err := Archive(context.Background(), "src", filepath.Join(dir, "bundle"),
		WithExecutor(mock), WithPlatform("linux"))
	require.NoError(t, err)

	assert.Equal(t, []string{"bundle.zip"}, dirEntries(t, dir))
}

func TestArchive_InvalidInput(t *testing.T) {
	mock := fakeArchiver(t, 2)

	err := Archive(context.Background(), "", "out.zip", WithExecutor(mock))
	assert.Equal(t, fserrors.CodeInvalidInput, fserrors.GetCode(err))

	err = Archive(context.Background(), "src", "out.zip", WithExecutor(mock),
		WithDestinationFS(billy.NewMemory()))
	assert.Equal(t, fserrors.CodeUnsupported, fserrors.GetCode(err))
	assert.Empty(t, mock.RunCalls())
}

func TestArchive_Zip(t *testing.T) {
	if _, err := osexec.LookPath("zip"); err != nil {
		t.Skip("zip not installed")
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "b.txt"), []byte("world"), 0o644))

	dest := filepath.Join(dir, "out.zip")
	require.NoError(t, Archive(context.Background(), src, dest, WithPlatform("linux")))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data[:2]))

	assert.ElementsMatch(t, []string{"a.txt", "sub/b.txt"}, zipFiles(t, dest))

	// A second run replaces the archive rather than updating it, so entries
	// removed from the source do not linger.
	require.NoError(t, os.Remove(filepath.Join(src, "sub", "b.txt")))
	require.NoError(t, Archive(context.Background(), src, dest, WithPlatform("linux")))
	assert.ElementsMatch(t, []string{"out.zip", "src"}, dirEntries(t, dir))
	assert.ElementsMatch(t, []string{"a.txt"}, zipFiles(t, dest))
}

// zipFiles lists the regular files in a zip archive relative to the archived
// directory.
func zipFiles(t *testing.T, name string) []string {
	t.Helper()
	r, err := zip.OpenReader(name)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	var files []string
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		_, rel, _ := strings.Cut(f.Name, "src/")
		files = append(files, rel)
	}
	return files
}

func TestArchive_ScopedDestination(t *testing.T) {
	dir := t.TempDir()
	cwd := t.TempDir()
	t.Chdir(cwd)

	mock := fakeArchiver(t, 2)
	err := Archive(context.Background(), "src", "out.zip",
		WithExecutor(mock), WithPlatform("linux"),
		WithDestinationFS(billy.NewLocal(billy.WithRoot(dir))))
	require.NoError(t, err)

	staging := mock.RunCalls()[0].Args[2]
	assert.True(t, filepath.IsAbs(staging))
	assert.Equal(t, dir, filepath.Dir(staging))

	data, err := os.ReadFile(filepath.Join(dir, "out.zip"))
	require.NoError(t, err)
	assert.Equal(t, "archive of src", string(data))
	assert.Equal(t, []string{"out.zip"}, dirEntries(t, dir))
	assert.Empty(t, dirEntries(t, cwd))
}

func TestArchive_RelativeDestination(t *testing.T) {
	cwd := t.TempDir()
	t.Chdir(cwd)

	mock := fakeArchiver(t, 2)
	require.NoError(t, Archive(context.Background(), "src", "out.zip", WithExecutor(mock), WithPlatform("linux")))

	staging := mock.RunCalls()[0].Args[2]
	assert.True(t, filepath.IsAbs(staging))
	assert.Equal(t, []string{"out.zip"}, dirEntries(t, cwd))
}

func TestArchive_WorkDirAndOutput(t *testing.T) {
	dir := t.TempDir()
	work := t.TempDir()
	var stdout, stderr strings.Builder

	mock := fakeArchiver(t, 2)
	mock.WithDirFunc = func(string) exec.Executor { return mock }
	mock.WithOutputFunc = func(io.Writer, io.Writer) exec.Executor { return mock }

	err := Archive(context.Background(), "src", filepath.Join(dir, "out.zip"),
		WithExecutor(mock), WithPlatform("linux"),
		WithWorkDir(work), WithToolOutput(&stdout, &stderr))
	require.NoError(t, err)

	require.Len(t, mock.WithDirCalls(), 1)
	assert.Equal(t, work, mock.WithDirCalls()[0].Dir)
	require.Len(t, mock.WithOutputCalls(), 1)
	assert.Same(t, &stdout, mock.WithOutputCalls()[0].Stdout)
	assert.Same(t, &stderr, mock.WithOutputCalls()[0].Stderr)
	assert.Equal(t, "src", mock.RunCalls()[0].Args[3])
	assert.Equal(t, []string{"out.zip"}, dirEntries(t, dir))
}

func TestArchive_ZipWorkDir(t *testing.T) {
	if _, err := osexec.LookPath("zip"); err != nil {
		t.Skip("zip not installed")
	}

	work := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(work, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "src", "a.txt"), []byte("hello"), 0o644))

	var stdout strings.Builder
	dest := filepath.Join(t.TempDir(), "out.zip")
	require.NoError(t, Archive(context.Background(), "src", dest,
		WithPlatform("linux"), WithWorkDir(work), WithToolOutput(&stdout, nil)))

	assert.Equal(t, []string{"a.txt"}, zipFiles(t, dest))
	assert.Contains(t, stdout.String(), "adding: src/a.txt")
}
