package cli

import (
	"bytes"
	"io"
	"sync"
)

// holdWriter passes writes through to w until Hold is called; from then on
// output is buffered until Release. Keeps log lines from tearing the TUI.
type holdWriter struct {
	mu   sync.Mutex
	w    io.Writer
	held bool
	buf  bytes.Buffer
}

func newHoldWriter(w io.Writer) *holdWriter {
	return &holdWriter{w: w}
}

func (h *holdWriter) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.held {
		return h.buf.Write(p)
	}
	return h.w.Write(p)
}

// Hold starts buffering.
func (h *holdWriter) Hold() {
	h.mu.Lock()
	h.held = true
	h.mu.Unlock()
}

// Release flushes buffered output and resumes pass-through.
func (h *holdWriter) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.held = false
	if h.buf.Len() == 0 {
		return nil
	}
	_, err := h.buf.WriteTo(h.w)
	return err
}
