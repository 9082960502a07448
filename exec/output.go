package exec

import (
	"bytes"
	"io"
	"sync"
)

// capture collects both output streams of one run. os/exec drains stdout
// and stderr on separate goroutines, so every write goes through mu; this
// also keeps chunks whole when one writer is passed for both streams.
type capture struct {
	mu     sync.Mutex
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// stream returns a writer that appends to buf and, when tee is set, copies
// each chunk to tee.
func (c *capture) stream(buf *bytes.Buffer, tee io.Writer) io.Writer {
	return &streamWriter{capture: c, buf: buf, tee: tee}
}

type streamWriter struct {
	capture *capture
	buf     *bytes.Buffer
	tee     io.Writer
}

func (w *streamWriter) Write(p []byte) (int, error) {
	w.capture.mu.Lock()
	defer w.capture.mu.Unlock()

	w.buf.Write(p)
	if w.tee == nil {
		return len(p), nil
	}
	n, err := w.tee.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return n, err
	}
	return len(p), nil
}
