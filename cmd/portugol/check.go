package main

import (
	"bytes"
	stderrors "errors"
	"flag"
	"fmt"
	goruntime "runtime"

	"golang.org/x/sync/errgroup"

	"github.com/portugol-lang/portugol/internal/cli"
	"github.com/portugol-lang/portugol/internal/resolver"
)

// checkResult is the report of one file
type checkResult struct {
	ok     bool
	report bytes.Buffer
}

func (a *app) cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = a.commandUsage("check")
	jobs := fs.Int("jobs", goruntime.NumCPU(), "number of files checked in parallel")

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return cli.ExitOK
		}
		return cli.ExitUsage
	}
	if err := cli.ValidateArgs(fs.Args(), 1, "portugol check <file.por>..."); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return cli.ExitUsage
	}

	files := fs.Args()
	results := make([]*checkResult, len(files))

	var g errgroup.Group
	if *jobs > 0 {
		g.SetLimit(*jobs)
	}
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = checkFile(path)
			return nil
		})
	}
	_ = g.Wait()

	code := cli.ExitOK
	for i, res := range results {
		if res.ok {
			fmt.Fprintf(a.stdout, "ok %s\n", files[i])
		} else {
			code = cli.ExitError
		}
		a.stderr.Write(res.report.Bytes())
	}
	return code
}

// checkFile lexes, parses, and declares one file. Lexical and syntax errors
// fail the check; duplicate declarations are reported as warnings.
func checkFile(path string) *checkResult {
	res := &checkResult{}

	u, err := load(path)
	if err != nil {
		fmt.Fprintf(&res.report, "%s: %v\n", path, err)
		return res
	}

	for _, lexErr := range u.lexErrs {
		render(&res.report, u.source, lexErr)
	}
	if u.synErr != nil {
		render(&res.report, u.source, u.synErr)
		return res
	}

	resolver.Declare(u.program, func(err error) {
		fmt.Fprint(&res.report, "warning: ")
		render(&res.report, u.source, err)
	})

	res.ok = len(u.lexErrs) == 0
	return res
}
