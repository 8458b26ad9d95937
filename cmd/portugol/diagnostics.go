package main

import (
	"fmt"
	"io"
	"os"

	"github.com/portugol-lang/portugol/internal/ast"
	"github.com/portugol-lang/portugol/internal/errors"
	"github.com/portugol-lang/portugol/internal/parser"
	"github.com/portugol-lang/portugol/internal/position"
)

// unit is one source file read from disk, parsed, and ready to report on
type unit struct {
	path    string
	source  *position.SourceFile
	program *ast.Program
	lexErrs []*errors.LexicalError
	synErr  error
}

// load reads and parses path. Only I/O failures are returned as errors;
// lexical and syntax errors are recorded on the unit.
func load(path string) (*unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	src := string(data)
	program, lexErrs, synErr := parser.ParseSource(src, path)

	return &unit{
		path:    path,
		source:  position.NewSourceFile(path, src),
		program: program,
		lexErrs: lexErrs,
		synErr:  synErr,
	}, nil
}

// render writes err followed by the source excerpt it points at
func render(w io.Writer, source *position.SourceFile, err error) {
	fmt.Fprintf(w, "%s\n", err)
	if pos, ok := errors.PosOf(err); ok {
		fmt.Fprint(w, source.Highlight(pos))
	}
}
