package runtime

import "io"

//go:generate mockgen -destination=mock_console_test.go -package=runtime . LineReader,LineWriter

// LineReader supplies one line of user input per call. The prompt names the
// variable being read; implementations decide whether to display it. At end
// of input ReadLine returns io.EOF.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// LineWriter receives one complete output line per call, without the
// trailing newline.
type LineWriter interface {
	WriteLine(line string) error
}

// Tracer receives debug traces of statement execution.
type Tracer interface {
	Debug(format string, args ...interface{})
}

// eofReader is the reader used when none is configured
type eofReader struct{}

func (eofReader) ReadLine(string) (string, error) { return "", io.EOF }

// discardWriter is the writer used when none is configured
type discardWriter struct{}

func (discardWriter) WriteLine(string) error { return nil }

type nopTracer struct{}

func (nopTracer) Debug(string, ...interface{}) {}
