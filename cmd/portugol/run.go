package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/portugol-lang/portugol/internal/ast"
	"github.com/portugol-lang/portugol/internal/cli"
	"github.com/portugol-lang/portugol/internal/errors"
	pio "github.com/portugol-lang/portugol/internal/io"
	"github.com/portugol-lang/portugol/internal/runtime"
	"github.com/portugol-lang/portugol/internal/watch"
)

// runOptions are the merged flag and config settings of portugol run
type runOptions struct {
	config      *cli.Config
	dumpAST     bool
	dumpSymbols bool
	dumpMemory  bool
	timeout     time.Duration
}

func (a *app) cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = a.commandUsage("run")

	var (
		configPath  = fs.String("config", "", "JSON configuration file")
		watchFile   = fs.Bool("watch", false, "run again whenever the file is saved")
		dumpAST     = fs.Bool("dump-ast", false, "print the syntax tree before running")
		dumpSymbols = fs.Bool("dump-symbols", false, "print the symbol table after running")
		dumpMemory  = fs.Bool("dump-memory", false, "print the variable store after running")
		noPrompt    = fs.Bool("no-prompt", false, "do not print input prompts")
		maxSteps    = fs.Int("max-steps", -1, "maximum number of loop iterations (0 = unlimited)")
		timeout     = fs.Duration("timeout", 0, "stop the program after this duration (e.g. 5s)")
		verbose     = fs.Bool("verbose", false, "log progress information")
		debug       = fs.Bool("debug", false, "trace every executed statement")
	)

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return cli.ExitOK
		}
		return cli.ExitUsage
	}
	if err := cli.ValidateArgs(fs.Args(), 1, "portugol run [OPTIONS] <file.por>"); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return cli.ExitUsage
	}
	path := fs.Arg(0)

	config, err := cli.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return cli.ExitError
	}
	config.Verbose = config.Verbose || *verbose
	config.Debug = config.Debug || *debug
	if *noPrompt {
		config.Prompt = false
	}
	if *maxSteps >= 0 {
		config.MaxSteps = *maxSteps
	}

	logger := cli.NewLogger(config.Verbose, config.Debug)
	logger.Out = a.stderr

	opts := runOptions{
		config:      config,
		dumpAST:     *dumpAST,
		dumpSymbols: *dumpSymbols,
		dumpMemory:  *dumpMemory,
		timeout:     *timeout,
	}

	console := a.console(!config.Prompt)
	defer console.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = a.execute(ctx, path, opts, console, logger)
	if !*watchFile {
		if err != nil {
			return cli.ExitError
		}
		return cli.ExitOK
	}

	logger.Info("watching %s for changes", path)
	werr := watch.File(ctx, watch.New(250*time.Millisecond), path, watch.DefaultDebounce, func() {
		logger.Info("%s changed, running again", path)
		_ = a.execute(ctx, path, opts, console, logger)
	})
	if werr != nil && !stderrors.Is(werr, context.Canceled) {
		logger.Error("%v", werr)
		return cli.ExitError
	}
	return cli.ExitOK
}

// console connects the program to the terminal when both standard streams
// are terminals and to plain streams otherwise
func (a *app) console(noPrompt bool) *pio.Console {
	stdin, inOK := a.stdin.(*os.File)
	stdout, outOK := a.stdout.(*os.File)
	if inOK && outOK {
		return pio.NewConsole(pio.ConsoleOptions{Stdin: stdin, Stdout: stdout, NoPrompt: noPrompt})
	}

	return pio.NewStreamConsole(pio.NewStreamReader(a.stdin, a.stdout), pio.NewLineWriter(a.stdout), noPrompt)
}

// execute runs one program file and reports its diagnostics. The returned
// error is nil only when the program ran to completion.
func (a *app) execute(ctx context.Context, path string, opts runOptions, console *pio.Console, logger *cli.Logger) error {
	started := time.Now()

	u, err := load(path)
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	for _, lexErr := range u.lexErrs {
		logger.Warn("%v", lexErr)
	}
	if u.synErr != nil {
		render(a.stderr, u.source, u.synErr)
		return u.synErr
	}
	logger.Info("parsed %s: %d declarations, %d statements", path, len(u.program.Decls), len(u.program.Body.Statements))

	if opts.dumpAST {
		if err := ast.Print(a.stdout, u.program); err != nil {
			return err
		}
	}

	runOpts := []runtime.Option{
		runtime.WithReader(console),
		runtime.WithWriter(console),
		runtime.WithOutputLabel(opts.config.OutputLabel),
		runtime.WithMaxSteps(opts.config.MaxSteps),
		runtime.WithDiagnosticHandler(func(err error) {
			logger.Warn("%v", err)
		}),
	}
	if opts.config.Debug {
		runOpts = append(runOpts, runtime.WithTracer(logger))
	}
	in := runtime.New(u.program, runOpts...)

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	runErr := in.Run(ctx)
	if runErr != nil {
		a.reportRunError(u, runErr, logger)
	}

	if opts.dumpSymbols {
		in.Symbols().Dump(a.stdout, in.Memory())
	}
	if opts.dumpMemory {
		in.Memory().Dump(a.stdout)
	}

	stats := console.Stats()
	logger.Info("finished %s in %s (%d lines read, %d written, %d loop iterations)",
		path, time.Since(started).Round(time.Microsecond), stats.LinesRead, stats.LinesWritten, in.Steps())

	return runErr
}

func (a *app) reportRunError(u *unit, err error, logger *cli.Logger) {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		logger.Error("%s: time limit reached", u.path)
	case stderrors.Is(err, context.Canceled):
		logger.Error("%s: interrupted", u.path)
	case stderrors.Is(err, pio.ErrInterrupted):
		logger.Error("%s: input interrupted", u.path)
	default:
		if _, ok := errors.KindOf(err); ok {
			render(a.stderr, u.source, err)
			return
		}
		logger.Error("%v", err)
	}
}
