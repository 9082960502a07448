package exec

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	exec := New()
	if exec == nil {
		t.Fatal("New() returned nil")
	}
}

func TestBasicExecution(t *testing.T) {
	exec := New()
	result, err := exec.Run("echo", "hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "hello world") {
		t.Errorf("expected stdout to contain 'hello world', got: %s", result.Stdout)
	}

	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got: %d", result.ExitCode)
	}
}

func TestArgumentsAreNotShellParsed(t *testing.T) {
	exec := New()
	result, err := exec.Run("echo", "a b; echo injected $HOME")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimSpace(result.Stdout) != "a b; echo injected $HOME" {
		t.Errorf("expected argument to be passed verbatim, got: %q", result.Stdout)
	}
}

func TestRunNoArgs(t *testing.T) {
	exec := New()
	_, err := exec.Run()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound in chain, got: %v", err)
	}
}

func TestCommandFailure(t *testing.T) {
	exec := New()
	result, err := exec.Run("sh", "-c", "echo oops >&2; exit 3")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	execErr, ok := err.(*ExecError)
	if !ok {
		t.Fatalf("expected ExecError, got: %T", err)
	}

	if execErr.ExitCode != 3 {
		t.Errorf("expected exit code 3, got: %d", execErr.ExitCode)
	}

	if !strings.Contains(execErr.Stderr, "oops") {
		t.Errorf("expected stderr to contain 'oops', got: %s", execErr.Stderr)
	}

	if result == nil {
		t.Fatal("expected result even with error")
	}
}

func TestLookPath(t *testing.T) {
	exec := New()
	path, err := exec.LookPath("sh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == "" {
		t.Error("expected non-empty path")
	}

	_, err = exec.LookPath("definitely-not-a-real-tool-fstree")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestWithLookPath(t *testing.T) {
	exec := New(WithLookPath(func(file string) (string, error) {
		return "/opt/bin/" + file, nil
	}))

	path, err := exec.LookPath("zip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/opt/bin/zip" {
		t.Errorf("expected /opt/bin/zip, got: %s", path)
	}
}

func TestWithDir(t *testing.T) {
	dir := t.TempDir()
	exec := New()
	result, err := exec.WithDir(dir).Run("pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, dir) {
		t.Errorf("expected stdout to contain %q, got: %s", dir, result.Stdout)
	}
}

func TestOptionDir(t *testing.T) {
	dir := t.TempDir()
	exec := New(WithDir(dir))

	result, err := exec.Run("pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Stdout, dir) {
		t.Errorf("expected stdout to contain %q, got: %s", dir, result.Stdout)
	}
}

func TestWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	exec := New()
	_, err := exec.WithContext(ctx).Run("sleep", "1")
	if err == nil {
		t.Fatal("expected context cancellation error, got nil")
	}
}

func TestWithOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exec := New()
	result, err := exec.WithOutput(&stdout, &stderr).Run("sh", "-c", "echo out && echo err >&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "out") {
		t.Errorf("expected captured stdout to contain 'out', got: %s", result.Stdout)
	}
	if !strings.Contains(stdout.String(), "out") {
		t.Errorf("expected streamed stdout to contain 'out', got: %s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "err") {
		t.Errorf("expected streamed stderr to contain 'err', got: %s", stderr.String())
	}
	if strings.Contains(stdout.String(), "err") {
		t.Errorf("expected stderr to stay out of stdout, got: %s", stdout.String())
	}
}

func TestWithOutputSharedWriter(t *testing.T) {
	var both bytes.Buffer
	exec := New()
	_, err := exec.WithOutput(&both, &both).Run("sh", "-c", "echo out && echo err >&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(both.String(), "out") || !strings.Contains(both.String(), "err") {
		t.Errorf("expected shared writer to receive both streams, got: %s", both.String())
	}
}

func TestSeparateOutput(t *testing.T) {
	exec := New()
	result, err := exec.Run("sh", "-c", "echo stdout && echo stderr >&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "stdout") || strings.Contains(result.Stdout, "stderr") {
		t.Errorf("expected stdout to hold only 'stdout', got: %s", result.Stdout)
	}

	if !strings.Contains(result.Stderr, "stderr") {
		t.Errorf("expected stderr to contain 'stderr', got: %s", result.Stderr)
	}
}

func TestErrorMessage(t *testing.T) {
	exec := New()
	_, err := exec.Run("sh", "-c", "echo 'zip error: nothing to do' >&2; exit 12")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	msg := err.Error()
	for _, want := range []string{"sh", "exit code 12", "zip error: nothing to do"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error %q to contain %q", msg, want)
		}
	}
}

func TestClone(t *testing.T) {
	dir := t.TempDir()
	original := New()
	clone := original.Clone()

	clone.WithDir(dir)

	result, err := original.Run("pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(result.Stdout) == dir {
		t.Errorf("expected clone settings not to leak into original, got: %s", result.Stdout)
	}

	result, err = clone.Run("pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Stdout, dir) {
		t.Errorf("expected clone to run in %q, got: %s", dir, result.Stdout)
	}
}
