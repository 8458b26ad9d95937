package runtime

import "github.com/portugol-lang/portugol/internal/resolver"

// DefaultOutputLabel prefixes every line produced by escrever
const DefaultOutputLabel = "Saída:"

// DefaultPromptFormat builds the prompt shown by ler; %s is the variable name
const DefaultPromptFormat = "Digite o valor de %s: "

// Option configures an Interpreter
type Option func(*Interpreter)

// WithReader sets the input provider used by ler
func WithReader(r LineReader) Option {
	return func(in *Interpreter) {
		if r != nil {
			in.reader = r
		}
	}
}

// WithWriter sets the output sink used by escrever
func WithWriter(w LineWriter) Option {
	return func(in *Interpreter) {
		if w != nil {
			in.writer = w
		}
	}
}

// WithOutputLabel replaces the label printed before escrever output. An
// empty label prints the values alone.
func WithOutputLabel(label string) Option {
	return func(in *Interpreter) {
		in.label = label
	}
}

// WithPromptFormat replaces the ler prompt. The format receives the variable
// name as its only argument.
func WithPromptFormat(format string) Option {
	return func(in *Interpreter) {
		in.promptFormat = format
	}
}

// WithMaxSteps bounds the total number of loop iterations. Zero means no
// limit.
func WithMaxSteps(n int) Option {
	return func(in *Interpreter) {
		in.maxSteps = n
	}
}

// WithDiagnosticHandler receives non-fatal diagnostics raised while the
// program's declarations are processed
func WithDiagnosticHandler(h resolver.DiagnosticHandler) Option {
	return func(in *Interpreter) {
		in.diagnostics = h
	}
}

// WithTracer enables a trace of every executed statement
func WithTracer(t Tracer) Option {
	return func(in *Interpreter) {
		if t != nil {
			in.tracer = t
			in.tracing = true
		}
	}
}
