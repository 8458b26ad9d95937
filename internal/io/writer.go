package io

import (
	"bufio"
	stdio "io"
	"sync"
)

// LineWriter writes one line per call and flushes it immediately, so output
// interleaves correctly with prompts
type LineWriter struct {
	w  *bufio.Writer
	mu sync.Mutex
}

// NewLineWriter creates a line writer over w
func NewLineWriter(w stdio.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(w)}
}

// WriteLine writes line followed by a newline
func (lw *LineWriter) WriteLine(line string) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if _, err := lw.w.WriteString(line); err != nil {
		return err
	}
	if err := lw.w.WriteByte('\n'); err != nil {
		return err
	}
	return lw.w.Flush()
}
