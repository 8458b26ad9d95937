// Package runtime executes portugol programs.
//
// An Interpreter walks the AST directly. Each statement is type checked right
// before it runs, so a program may perform input and output before failing
// on a later statement.
package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/portugol-lang/portugol/internal/ast"
	"github.com/portugol-lang/portugol/internal/errors"
	"github.com/portugol-lang/portugol/internal/resolver"
	"github.com/portugol-lang/portugol/internal/typechecker"
	"github.com/portugol-lang/portugol/internal/types"
)

// Interpreter runs one program. It owns the program's symbol table and store
// and is not safe for concurrent use.
type Interpreter struct {
	program *ast.Program
	table   *resolver.SymbolTable
	store   *resolver.Store
	checker *typechecker.TypeInferenceEngine

	reader       LineReader
	writer       LineWriter
	tracer       Tracer
	tracing      bool
	diagnostics  resolver.DiagnosticHandler
	label        string
	promptFormat string

	maxSteps int
	steps    int
	declared bool
	ctx      context.Context
}

// New creates an interpreter for program
func New(program *ast.Program, opts ...Option) *Interpreter {
	in := &Interpreter{
		program:      program,
		table:        resolver.NewSymbolTable(),
		store:        resolver.NewStore(),
		reader:       eofReader{},
		writer:       discardWriter{},
		tracer:       nopTracer{},
		label:        DefaultOutputLabel,
		promptFormat: DefaultPromptFormat,
		ctx:          context.Background(),
	}
	in.checker = typechecker.NewTypeInferenceEngine(in.table)

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Declare runs the declaration phase. Duplicate declarations go to the
// diagnostic handler and do not stop the program. Run calls Declare itself;
// calling it again has no effect.
func (in *Interpreter) Declare() {
	if in.declared {
		return
	}
	in.declared = true

	n := resolver.NewResolver(in.table, in.store, in.diagnostics).Declare(in.program)
	in.tracer.Debug("declared %d variables (%d duplicates)", in.table.Len(), n)
}

// Run declares the program's variables and executes its body. The first
// fatal error stops execution and is returned. Cancelling ctx stops the
// program before its next statement or loop iteration.
func (in *Interpreter) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	in.ctx = ctx

	in.Declare()
	in.tracer.Debug("running programa %s", in.program.Name.Name)

	return in.execute(in.program.Body)
}

// Symbols returns the symbol table
func (in *Interpreter) Symbols() *resolver.SymbolTable { return in.table }

// Memory returns the variable store
func (in *Interpreter) Memory() *resolver.Store { return in.store }

// Steps returns the number of loop iterations executed so far
func (in *Interpreter) Steps() int { return in.steps }

func (in *Interpreter) execute(stmt ast.Stmt) error {
	if err := in.ctx.Err(); err != nil {
		return err
	}
	if in.tracing {
		in.tracer.Debug("%s: %s", stmt.Pos(), stmt)
	}
	return stmt.Accept(in)
}

// ====== Statements ======

func (in *Interpreter) VisitBlock(b *ast.Block) error {
	for _, stmt := range b.Statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) VisitAssign(a *ast.Assign) error {
	sym, ok := in.table.Lookup(a.Target.Name)
	if !ok {
		return &errors.UndeclaredVariable{Name: a.Target.Name, Position: a.Target.Position}
	}

	inferred, err := in.checker.InferExpression(a.Value)
	if err != nil {
		return err
	}

	value, err := in.evaluate(a.Value)
	if err != nil {
		return err
	}

	if inferred != sym.Type {
		// A logico variable also accepts the integers 0 and 1.
		if n, isInt := value.AsInt(); isInt && sym.Type == types.Boolean && (n == 0 || n == 1) {
			in.store.Set(sym.Name, types.Bool(n == 1))
			return nil
		}
		return &errors.TypeMismatch{
			Context:  "assignment",
			Name:     sym.Name,
			Expected: sym.Type.String(),
			Actual:   inferred.String(),
			Message:  fmt.Sprintf("cannot assign %s to '%s' of type %s", inferred, sym.Name, sym.Type),
			Position: a.Position,
		}
	}

	in.store.Set(sym.Name, value)
	return nil
}

func (in *Interpreter) VisitRead(r *ast.Read) error {
	for _, target := range r.Targets {
		sym, ok := in.table.Lookup(target.Name)
		if !ok {
			return &errors.UndeclaredVariable{Name: target.Name, Position: target.Position}
		}

		line, err := in.reader.ReadLine(fmt.Sprintf(in.promptFormat, sym.Name))
		if err != nil {
			return fmt.Errorf("%s: reading '%s': %w", target.Position, sym.Name, err)
		}

		value, ok := types.Parse(sym.Type, line)
		if !ok {
			return &errors.InvalidLiteral{
				Name:     sym.Name,
				Type:     sym.Type.String(),
				Input:    line,
				Position: target.Position,
			}
		}

		in.store.Set(sym.Name, value)
	}
	return nil
}

func (in *Interpreter) VisitWrite(w *ast.Write) error {
	parts := make([]string, 0, len(w.Args)+1)
	if in.label != "" {
		parts = append(parts, in.label)
	}

	for _, arg := range w.Args {
		value, err := in.evaluate(arg)
		if err != nil {
			return err
		}
		parts = append(parts, value.String())
	}

	return in.writer.WriteLine(strings.Join(parts, " "))
}

func (in *Interpreter) VisitIf(s *ast.If) error {
	holds, err := in.condition(s.Cond, "se")
	if err != nil {
		return err
	}

	if holds {
		return in.execute(s.Then)
	}
	if s.Else != nil {
		return in.execute(s.Else)
	}
	return nil
}

func (in *Interpreter) VisitWhile(s *ast.While) error {
	for {
		holds, err := in.condition(s.Cond, "enquanto")
		if err != nil {
			return err
		}
		if !holds {
			return nil
		}

		if err := in.step(s); err != nil {
			return err
		}
		if err := in.execute(s.Body); err != nil {
			return err
		}
	}
}

// condition type checks and evaluates the condition of keyword's statement
func (in *Interpreter) condition(cond ast.Expr, keyword string) (bool, error) {
	if err := in.checker.InferCondition(cond, keyword); err != nil {
		return false, err
	}

	value, err := in.evaluate(cond)
	if err != nil {
		return false, err
	}

	holds, ok := value.AsBool()
	if !ok {
		return false, &errors.TypeMismatch{
			Context:  keyword,
			Expected: types.Boolean.String(),
			Actual:   value.Kind().String(),
			Message:  fmt.Sprintf("condition of '%s' must be logical, got %s", keyword, value.Kind()),
			Position: cond.Pos(),
		}
	}
	return holds, nil
}

// step accounts for one loop iteration against the context and the step
// budget
func (in *Interpreter) step(loop *ast.While) error {
	if err := in.ctx.Err(); err != nil {
		return err
	}

	in.steps++
	if in.maxSteps > 0 && in.steps > in.maxSteps {
		return &errors.StepLimitExceeded{Limit: in.maxSteps, Position: loop.Position}
	}
	return nil
}
