// Package io provides the console collaborators of the portugol interpreter:
// line readers for ler and a line sink for escrever.
package io

import (
	"os"
	"sync/atomic"
)

// ConsoleStats provides console I/O statistics
type ConsoleStats struct {
	LinesRead    uint64
	LinesWritten uint64
	ErrorCount   uint64
}

// ConsoleOptions configures NewConsole
type ConsoleOptions struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File

	// NoPrompt suppresses the prompts printed by ler
	NoPrompt bool
	// Interactive forces or disables the line editor. When nil it is used
	// only if stdin and stdout are both terminals.
	Interactive *bool
}

// Console joins a line reader and a line writer and counts their traffic
type Console struct {
	reader      LineReadCloser
	writer      *LineWriter
	noPrompt    bool
	interactive bool
	stats       ConsoleStats
}

// NewConsole builds the console for the given streams. Unset streams default
// to the process's standard streams.
func NewConsole(opts ConsoleOptions) *Console {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	interactive := IsTerminal(opts.Stdin.Fd()) && IsTerminal(opts.Stdout.Fd())
	if opts.Interactive != nil {
		interactive = *opts.Interactive
	}

	c := &Console{
		writer:      NewLineWriter(opts.Stdout),
		noPrompt:    opts.NoPrompt,
		interactive: interactive,
	}

	if interactive {
		c.reader = NewTerminalReader()
	} else {
		c.reader = NewStreamReader(opts.Stdin, opts.Stdout)
	}

	return c
}

// NewStreamConsole builds a console from an existing reader and writer
func NewStreamConsole(in LineReadCloser, out *LineWriter, noPrompt bool) *Console {
	return &Console{reader: in, writer: out, noPrompt: noPrompt}
}

// Interactive reports whether the console uses the terminal line editor
func (c *Console) Interactive() bool { return c.interactive }

// ReadLine reads one line of input
func (c *Console) ReadLine(prompt string) (string, error) {
	if c.noPrompt {
		prompt = ""
	}

	line, err := c.reader.ReadLine(prompt)
	if err != nil {
		atomic.AddUint64(&c.stats.ErrorCount, 1)
		return "", err
	}

	atomic.AddUint64(&c.stats.LinesRead, 1)
	return line, nil
}

// WriteLine writes one line of output
func (c *Console) WriteLine(line string) error {
	if err := c.writer.WriteLine(line); err != nil {
		atomic.AddUint64(&c.stats.ErrorCount, 1)
		return err
	}

	atomic.AddUint64(&c.stats.LinesWritten, 1)
	return nil
}

// Stats returns a snapshot of the console statistics
func (c *Console) Stats() ConsoleStats {
	return ConsoleStats{
		LinesRead:    atomic.LoadUint64(&c.stats.LinesRead),
		LinesWritten: atomic.LoadUint64(&c.stats.LinesWritten),
		ErrorCount:   atomic.LoadUint64(&c.stats.ErrorCount),
	}
}

// Close releases the reader
func (c *Console) Close() error {
	return c.reader.Close()
}
