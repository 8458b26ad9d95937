package io

import (
	"bufio"
	"errors"
	"fmt"
	stdio "io"
	"strings"

	"github.com/peterh/liner"
)

// ErrInterrupted is returned by a terminal reader when the user aborts a
// prompt with Ctrl+C
var ErrInterrupted = errors.New("input interrupted")

// LineReadCloser is a line reader that owns an underlying resource
type LineReadCloser interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// StreamReader reads lines from any stream. Prompts go to a separate writer,
// or nowhere when that writer is nil.
type StreamReader struct {
	in     *bufio.Reader
	prompt stdio.Writer
}

// NewStreamReader creates a line reader over r that echoes prompts to prompt
func NewStreamReader(r stdio.Reader, prompt stdio.Writer) *StreamReader {
	return &StreamReader{
		in:     bufio.NewReader(r),
		prompt: prompt,
	}
}

// ReadLine writes prompt and returns the next line without its line ending.
// A final line without a newline is returned normally; io.EOF is returned
// only when no text is left.
func (sr *StreamReader) ReadLine(prompt string) (string, error) {
	if sr.prompt != nil && prompt != "" {
		if _, err := fmt.Fprint(sr.prompt, prompt); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	line, err := sr.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, stdio.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Close is a no-op; the stream belongs to the caller
func (sr *StreamReader) Close() error { return nil }

// TerminalReader reads lines from an interactive terminal with line editing
// and an in-memory history for the session
type TerminalReader struct {
	state *liner.State
}

// NewTerminalReader takes over the controlling terminal. Close must be
// called to restore the terminal mode.
func NewTerminalReader() *TerminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &TerminalReader{state: state}
}

// ReadLine prompts on the terminal and returns the edited line
func (tr *TerminalReader) ReadLine(prompt string) (string, error) {
	line, err := tr.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrInterrupted
		}
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		tr.state.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal
func (tr *TerminalReader) Close() error {
	return tr.state.Close()
}
