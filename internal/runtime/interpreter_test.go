package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/portugol-lang/portugol/internal/ast"
	"github.com/portugol-lang/portugol/internal/errors"
	"github.com/portugol-lang/portugol/internal/parser"
	"github.com/portugol-lang/portugol/internal/types"
)

// lines is a LineWriter that records output and a LineReader that replays
// scripted input
type lines struct {
	input   []string
	prompts []string
	output  []string
}

func (l *lines) ReadLine(prompt string) (string, error) {
	l.prompts = append(l.prompts, prompt)
	if len(l.input) == 0 {
		return "", io.EOF
	}
	next := l.input[0]
	l.input = l.input[1:]
	return next, nil
}

func (l *lines) WriteLine(line string) error {
	l.output = append(l.output, line)
	return nil
}

const header = "programa teste;\nvar x, y: inteiro;\nok: logico;\n"

func compile(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, lexErrs, err := parser.ParseSource(src, "teste.por")
	if len(lexErrs) > 0 {
		t.Fatalf("lexical errors: %v", lexErrs)
	}
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return program
}

// run executes body inside the standard header with the given input lines
func run(t *testing.T, body string, input ...string) (*Interpreter, *lines, error) {
	t.Helper()
	console := &lines{input: input}
	in := New(compile(t, header+"inicio\n"+body+"\nfim."),
		WithReader(console), WithWriter(console))
	err := in.Run(context.Background())
	return in, console, err
}

func expectOutput(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d output lines %q, got %d: %q", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i+1, want[i], got[i])
		}
	}
}

func expectKind(t *testing.T, err error, kind errors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if got, _ := errors.KindOf(err); got != kind {
		t.Fatalf("expected %s error, got %s: %v", kind, got, err)
	}
}

func TestScenarios(t *testing.T) {
	t.Run("sum", func(t *testing.T) {
		_, console, err := run(t, "x := 3 + 4;\nescrever(x);")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expectOutput(t, console.output, []string{"Saída: 7"})
	})

	t.Run("comparison renders canonical true", func(t *testing.T) {
		_, console, err := run(t, "ok := 5 = 5;\nescrever(ok);")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expectOutput(t, console.output, []string{"Saída: verdadeiro"})
	})

	t.Run("integer condition", func(t *testing.T) {
		_, console, err := run(t, "se 3 entao escrever(1) senao escrever(0);")
		expectKind(t, err, errors.KindTypeMismatch)
		expectOutput(t, console.output, nil)
	})

	t.Run("invalid integer input", func(t *testing.T) {
		_, _, err := run(t, "ler(x);", "abc")
		expectKind(t, err, errors.KindInvalidLiteral)
		var lit *errors.InvalidLiteral
		if !stderrors.As(err, &lit) || lit.Name != "x" || lit.Input != "abc" || lit.Type != "inteiro" {
			t.Errorf("unexpected diagnostic %+v", lit)
		}
	})

	t.Run("comment runs to end of line", func(t *testing.T) {
		_, console, err := run(t, "x := 1; { this is ignored\nescrever(x);")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expectOutput(t, console.output, []string{"Saída: 1"})
	})
}

func TestFloorDivision(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		{"(-7) / 2", "-4"},
		{"-7 / 2", "-4"},
		{"7 / 2", "3"},
		{"7 / (-2)", "-4"},
		{"(-7) / (-2)", "3"},
		{"-8 / 2", "-4"},
		{"0 / 5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, console, err := run(t, fmt.Sprintf("x := %s;\nescrever(x);", tt.expr))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			expectOutput(t, console.output, []string{"Saída: " + tt.expected})
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	_, console, err := run(t, "escrever(1);\nx := 1 / (y - y);\nescrever(2);")
	expectKind(t, err, errors.KindDivisionByZero)
	if pos, _ := errors.PosOf(err); pos.Line != 6 {
		t.Errorf("expected error on line 6, got %s", pos)
	}
	expectOutput(t, console.output, []string{"Saída: 1"})
}

func TestBooleanRelaxation(t *testing.T) {
	in, console, err := run(t, "ok := 1;\nescrever(ok);\nok := 0;\nescrever(ok);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectOutput(t, console.output, []string{"Saída: verdadeiro", "Saída: falso"})

	v, _ := in.Memory().Get("ok")
	if v.Kind() != types.Boolean {
		t.Errorf("relaxed value should be stored as logico, got %s", v.Kind())
	}

	_, _, err = run(t, "ok := 2;")
	expectKind(t, err, errors.KindTypeMismatch)

	_, _, err = run(t, "ok := 3 - 2;\nse ok entao escrever(1);")
	if err != nil {
		t.Errorf("computed 1 should be accepted too: %v", err)
	}
}

func TestAssignmentMismatch(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind errors.Kind
	}{
		{"boolean into integer", "x := 1 < 2;", errors.KindTypeMismatch},
		{"string into integer", `x := "abc";`, errors.KindTypeMismatch},
		{"undeclared target", "z := 1;", errors.KindUndeclaredVariable},
		{"undeclared operand", "x := z + 1;", errors.KindUndeclaredVariable},
		{"arithmetic on boolean", "x := ok + 1;", errors.KindTypeMismatch},
		{"mixed comparison", "ok := x = ok;", errors.KindTypeMismatch},
		{"string operand", `ok := "a" = "a";`, errors.KindTypeMismatch},
		{"negated boolean", "x := -ok;", errors.KindTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.body)
			expectKind(t, err, tt.kind)
			if !errors.IsFatal(err) {
				t.Errorf("%s should be fatal", tt.kind)
			}
		})
	}
}

func TestTypeMismatchCarriesContext(t *testing.T) {
	_, _, err := run(t, "x := 1 < 2;")
	var mismatch *errors.TypeMismatch
	if !stderrors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
	if mismatch.Name != "x" || mismatch.Expected != "inteiro" || mismatch.Actual != "logico" {
		t.Errorf("unexpected mismatch %+v", mismatch)
	}
	if mismatch.Position.Line != 5 {
		t.Errorf("expected line 5, got %d", mismatch.Position.Line)
	}
}

func TestRead(t *testing.T) {
	in, console, err := run(t, "ler(x, ok);\nler[(y)];\nescrever(x, ok, y);", " -12 ", "TRUE", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectOutput(t, console.output, []string{"Saída: -12 verdadeiro 5"})
	expectOutput(t, console.prompts, []string{
		"Digite o valor de x: ",
		"Digite o valor de ok: ",
		"Digite o valor de y: ",
	})

	if v, _ := in.Memory().Get("ok"); v.String() != "verdadeiro" {
		t.Errorf("ok = %s", v)
	}
}

func TestReadBooleanVocabulary(t *testing.T) {
	for input, expected := range map[string]string{
		"verdadeiro": "verdadeiro",
		"Verdadeiro": "verdadeiro",
		"true":       "verdadeiro",
		"falso":      "falso",
		"FALSE":      "falso",
	} {
		_, console, err := run(t, "ler(ok);\nescrever(ok);", input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", input, err)
		}
		expectOutput(t, console.output, []string{"Saída: " + expected})
	}

	_, _, err := run(t, "ler(ok);", "sim")
	expectKind(t, err, errors.KindInvalidLiteral)
}

func TestReadUndeclaredIsFatal(t *testing.T) {
	_, console, err := run(t, "ler(z);\nescrever(1);", "1")
	expectKind(t, err, errors.KindUndeclaredVariable)
	if len(console.prompts) != 0 {
		t.Errorf("no prompt expected for an undeclared variable, got %q", console.prompts)
	}
	expectOutput(t, console.output, nil)
}

func TestReadEndOfInput(t *testing.T) {
	_, _, err := run(t, "ler(x);")
	if !stderrors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	_, console, err := run(t, `x := 3;
escrever("menor", x, 'e', x * 2 < 7);
escrever[("só texto")];`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectOutput(t, console.output, []string{
		"Saída: menor 3 e verdadeiro",
		"Saída: só texto",
	})
}

func TestControlFlow(t *testing.T) {
	_, console, err := run(t, `x := 3;
enquanto x > 0 faca
inicio
	se x = 2 entao escrever("dois") senao escrever(x);
	x := x - 1;
fim;
se x < 0 entao escrever("nunca");`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectOutput(t, console.output, []string{"Saída: 3", "Saída: dois", "Saída: 1"})
}

func TestUntakenBranchIsNotChecked(t *testing.T) {
	_, console, err := run(t, "se 1 > 2 entao x := ok;\nenquanto falsoNunca < 0 faca x := 1;")
	expectKind(t, err, errors.KindUndeclaredVariable)
	if len(console.output) != 0 {
		t.Errorf("unexpected output %q", console.output)
	}

	_, _, err = run(t, "se 1 > 2 entao x := ok;")
	if err != nil {
		t.Errorf("type error in an untaken branch must not be reported: %v", err)
	}
}

func TestWhileConditionMustBeLogical(t *testing.T) {
	_, _, err := run(t, "enquanto x faca x := x + 1;")
	expectKind(t, err, errors.KindTypeMismatch)
}

func TestBooleanOrdering(t *testing.T) {
	_, console, err := run(t, "ok := (1 > 2) < (2 > 1);\nescrever(ok);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectOutput(t, console.output, []string{"Saída: verdadeiro"})
}

func TestDuplicateDeclaration(t *testing.T) {
	src := "programa d;\nvar x: inteiro;\nx: logico;\ninicio\nx := 5;\nescrever(x);\nfim."

	var diagnostics []error
	console := &lines{}
	in := New(compile(t, src),
		WithWriter(console),
		WithDiagnosticHandler(func(err error) { diagnostics = append(diagnostics, err) }))

	if err := in.Run(context.Background()); err != nil {
		t.Fatalf("duplicate declaration must not abort: %v", err)
	}
	if len(diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diagnostics)
	}
	if kind, _ := errors.KindOf(diagnostics[0]); kind != errors.KindDuplicateDeclaration {
		t.Fatalf("expected DuplicateDeclaration, got %v", diagnostics[0])
	}
	if typ, _ := in.Symbols().TypeOf("x"); typ != types.Integer {
		t.Errorf("first declaration must win, got %s", typ)
	}
	expectOutput(t, console.output, []string{"Saída: 5"})
}

func TestDeterminism(t *testing.T) {
	body := "ler(x);\nenquanto x > 0 faca inicio escrever(x, x / 2); x := x - 3; fim;"

	_, first, err := run(t, body, "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, second, err := run(t, body, "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectOutput(t, second.output, first.output)
}

func TestIndependentInterpreters(t *testing.T) {
	program := compile(t, header+"inicio\nx := x + 1;\nescrever(x);\nfim.")

	for i := 0; i < 2; i++ {
		console := &lines{}
		if err := New(program, WithWriter(console)).Run(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		expectOutput(t, console.output, []string{"Saída: 1"})
	}
}

func TestOutputLabel(t *testing.T) {
	console := &lines{}
	in := New(compile(t, header+"inicio\nescrever(1, 2);\nfim."),
		WithWriter(console), WithOutputLabel(""))
	if err := in.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectOutput(t, console.output, []string{"1 2"})
}

func TestMaxSteps(t *testing.T) {
	program := compile(t, header+"inicio\nenquanto 1 = 1 faca x := x + 1;\nfim.")
	in := New(program, WithMaxSteps(100))

	err := in.Run(context.Background())
	expectKind(t, err, errors.KindStepLimitExceeded)
	if in.Steps() != 101 {
		t.Errorf("expected to stop on step 101, got %d", in.Steps())
	}
	if v, _ := in.Memory().Get("x"); v.String() != "100" {
		t.Errorf("expected 100 completed iterations, got x = %s", v)
	}
}

func TestCancellation(t *testing.T) {
	program := compile(t, header+"inicio\nenquanto 1 = 1 faca x := x + 1;\nfim.")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(program).Run(ctx)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestConsoleInteraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := NewMockLineReader(ctrl)
	writer := NewMockLineWriter(ctrl)

	gomock.InOrder(
		reader.EXPECT().ReadLine("Digite o valor de x: ").Return("4", nil),
		reader.EXPECT().ReadLine("Digite o valor de y: ").Return("6", nil),
		writer.EXPECT().WriteLine("Saída: soma 10").Return(nil),
	)

	program := compile(t, header+"inicio\nler(x, y);\nescrever(\"soma\", x + y);\nfim.")
	if err := New(program, WithReader(reader), WithWriter(writer)).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWriterErrorStopsProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := NewMockLineWriter(ctrl)
	broken := stderrors.New("broken pipe")

	writer.EXPECT().WriteLine("Saída: 1").Return(broken).Times(1)

	program := compile(t, header+"inicio\nescrever(1);\nescrever(2);\nfim.")
	err := New(program, WithWriter(writer)).Run(context.Background())
	if !stderrors.Is(err, broken) {
		t.Errorf("expected writer error, got %v", err)
	}
}

func TestCustomPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := NewMockLineReader(ctrl)
	reader.EXPECT().ReadLine("x? ").Return("1", nil)

	program := compile(t, header+"inicio\nler(x);\nfim.")
	in := New(program, WithReader(reader), WithPromptFormat("%s? "))
	if err := in.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
