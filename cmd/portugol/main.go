// Package main provides the portugol command line tool. It runs, checks, and
// inspects programs written in the portugol teaching language.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/portugol-lang/portugol/internal/cli"
)

const toolName = "portugol"

// app carries the standard streams so commands can be exercised in tests
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(a.dispatch(os.Args[1:]))
}

// dispatch routes a subcommand and returns the process exit code
func (a *app) dispatch(args []string) int {
	if len(args) == 0 {
		a.usage()
		return cli.ExitUsage
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "help", "-h", "--help":
		a.usage()
		return cli.ExitOK
	case "version", "-v", "--version":
		jsonOutput := false
		for _, arg := range rest {
			if arg == "--json" || arg == "-j" {
				jsonOutput = true
				break
			}
		}
		cli.PrintVersion(a.stdout, toolName, jsonOutput)
		return cli.ExitOK
	case "run":
		return a.cmdRun(rest)
	case "check":
		return a.cmdCheck(rest)
	case "tokens":
		return a.cmdTokens(rest)
	case "ast":
		return a.cmdAST(rest)
	default:
		fmt.Fprintf(a.stderr, "unknown subcommand: %s\n", sub)
		a.usage()
		return cli.ExitUsage
	}
}

var commands = []cli.CommandInfo{
	{
		Name:        "run",
		Usage:       "portugol run [OPTIONS] <file.por>",
		Description: "Run a program",
		Examples: []string{
			"portugol run examples/maior.por",
			"echo 5 | portugol run --no-prompt examples/fatorial.por",
			"portugol run --watch --dump-memory examples/maior.por",
		},
		Flags: []cli.FlagInfo{
			{Name: "config", Usage: "JSON configuration file"},
			{Name: "watch", Usage: "run again whenever the file is saved"},
			{Name: "dump-ast", Usage: "print the syntax tree before running"},
			{Name: "dump-symbols", Usage: "print the symbol table after running"},
			{Name: "dump-memory", Usage: "print the variable store after running"},
			{Name: "no-prompt", Usage: "do not print input prompts"},
			{Name: "max-steps", Usage: "maximum number of loop iterations (0 = unlimited)"},
			{Name: "timeout", Usage: "stop the program after this duration"},
			{Name: "verbose", Usage: "log progress information"},
			{Name: "debug", Usage: "trace every executed statement"},
		},
	},
	{
		Name:        "check",
		Usage:       "portugol check <file.por>...",
		Description: "Check programs for lexical, syntax, and declaration errors",
		Examples:    []string{"portugol check examples/*.por"},
	},
	{
		Name:        "tokens",
		Usage:       "portugol tokens <file.por>",
		Description: "Print the token stream of a program",
	},
	{
		Name:        "ast",
		Usage:       "portugol ast <file.por>",
		Description: "Print the syntax tree of a program",
	},
	{
		Name:        "version",
		Usage:       "portugol version [--json]",
		Description: "Show version information",
	},
}

func (a *app) usage() {
	cli.PrintUsage(a.stderr, toolName, commands)
}

func (a *app) commandUsage(name string) func() {
	return func() {
		for _, cmd := range commands {
			if cmd.Name == name {
				cli.PrintCommandUsage(a.stderr, toolName, cmd)
				return
			}
		}
	}
}
