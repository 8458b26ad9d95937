package main

import (
	stderrors "errors"
	"flag"
	"fmt"

	"github.com/portugol-lang/portugol/internal/ast"
	"github.com/portugol-lang/portugol/internal/cli"
	"github.com/portugol-lang/portugol/internal/lexer"
)

// singleFile parses the flags of a command that takes exactly one file
func (a *app) singleFile(name string, args []string) (string, int, bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = a.commandUsage(name)

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return "", cli.ExitOK, false
		}
		return "", cli.ExitUsage, false
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(a.stderr, "usage: portugol %s <file.por>\n", name)
		return "", cli.ExitUsage, false
	}
	return fs.Arg(0), cli.ExitOK, true
}

func (a *app) cmdTokens(args []string) int {
	path, code, ok := a.singleFile("tokens", args)
	if !ok {
		return code
	}

	u, err := load(path)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return cli.ExitError
	}

	tokens, _ := lexer.Tokenize(u.source.Content, path)
	for _, tok := range tokens {
		literal := tok.Literal
		if tok.Type == lexer.TokenEOF {
			literal = ""
		}
		fmt.Fprintf(a.stdout, "%4d:%-4d %-12s %s\n", tok.Pos.Line, tok.Pos.Column, tok.Type, literal)
	}

	for _, lexErr := range u.lexErrs {
		render(a.stderr, u.source, lexErr)
	}
	if len(u.lexErrs) > 0 {
		return cli.ExitError
	}
	return cli.ExitOK
}

func (a *app) cmdAST(args []string) int {
	path, code, ok := a.singleFile("ast", args)
	if !ok {
		return code
	}

	u, err := load(path)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return cli.ExitError
	}

	for _, lexErr := range u.lexErrs {
		render(a.stderr, u.source, lexErr)
	}
	if u.synErr != nil {
		render(a.stderr, u.source, u.synErr)
		return cli.ExitError
	}

	if err := ast.Print(a.stdout, u.program); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return cli.ExitError
	}
	return cli.ExitOK
}
