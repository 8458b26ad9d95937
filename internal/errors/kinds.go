package errors

import (
	"fmt"

	"github.com/portugol-lang/portugol/internal/position"
)

// EndOfInput is the Found value of a SyntaxError raised at end of file
const EndOfInput = "fim de arquivo"

// LexicalError reports an illegal character. Scanning resumes after it.
type LexicalError struct {
	Char     rune
	Position position.Position
	Message  string
}

func (e *LexicalError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s%s", prefix(e.Position), e.Message)
	}
	return fmt.Sprintf("%sillegal character %q on line %d", prefix(e.Position), e.Char, e.Position.Line)
}

func (e *LexicalError) Kind() Kind             { return KindLexical }
func (e *LexicalError) Pos() position.Position { return e.Position }

// SyntaxError reports the first token the parser could not accept
type SyntaxError struct {
	Found    string
	Expected string
	Position position.Position
}

func (e *SyntaxError) Error() string {
	found := fmt.Sprintf("token %q", e.Found)
	if e.Found == EndOfInput {
		found = "unexpected end of input"
	}
	if e.Expected != "" {
		return fmt.Sprintf("%ssyntax error on line %d: %s, expected %s", prefix(e.Position), e.Position.Line, found, e.Expected)
	}
	return fmt.Sprintf("%ssyntax error on line %d: %s", prefix(e.Position), e.Position.Line, found)
}

func (e *SyntaxError) Kind() Kind             { return KindSyntax }
func (e *SyntaxError) Pos() position.Position { return e.Position }

// DuplicateDeclaration reports a name declared more than once. The first
// declaration stays in effect.
type DuplicateDeclaration struct {
	Name     string
	Existing string // declared type of the binding that was kept
	Position position.Position
}

func (e *DuplicateDeclaration) Error() string {
	return fmt.Sprintf("%svariable '%s' already declared as %s", prefix(e.Position), e.Name, e.Existing)
}

func (e *DuplicateDeclaration) Kind() Kind             { return KindDuplicateDeclaration }
func (e *DuplicateDeclaration) Pos() position.Position { return e.Position }

// UndeclaredVariable reports a reference to a name missing from the symbol table
type UndeclaredVariable struct {
	Name     string
	Position position.Position
}

func (e *UndeclaredVariable) Error() string {
	return fmt.Sprintf("%svariable '%s' not declared", prefix(e.Position), e.Name)
}

func (e *UndeclaredVariable) Kind() Kind             { return KindUndeclaredVariable }
func (e *UndeclaredVariable) Pos() position.Position { return e.Position }

// TypeMismatch covers incompatible assignments, non-logical conditions,
// incompatible comparison operands, and non-integer arithmetic operands.
type TypeMismatch struct {
	Context  string // operator, statement keyword, or "assignment"
	Name     string // target variable, when there is one
	Expected string
	Actual   string
	Message  string
	Position position.Position
}

func (e *TypeMismatch) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("%s expects %s, got %s", e.Context, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%stype mismatch: %s", prefix(e.Position), msg)
}

func (e *TypeMismatch) Kind() Kind             { return KindTypeMismatch }
func (e *TypeMismatch) Pos() position.Position { return e.Position }

// InvalidLiteral reports input text that does not parse as the declared type
type InvalidLiteral struct {
	Name     string
	Type     string
	Input    string
	Position position.Position
}

func (e *InvalidLiteral) Error() string {
	return fmt.Sprintf("%sinvalid value %q for type '%s' in '%s'", prefix(e.Position), e.Input, e.Type, e.Name)
}

func (e *InvalidLiteral) Kind() Kind             { return KindInvalidLiteral }
func (e *InvalidLiteral) Pos() position.Position { return e.Position }

// DivisionByZero reports an integer division with a zero divisor
type DivisionByZero struct {
	Position position.Position
}

func (e *DivisionByZero) Error() string {
	return fmt.Sprintf("%sdivision by zero", prefix(e.Position))
}

func (e *DivisionByZero) Kind() Kind             { return KindDivisionByZero }
func (e *DivisionByZero) Pos() position.Position { return e.Position }

// StepLimitExceeded reports a program that ran past its configured step budget
type StepLimitExceeded struct {
	Limit    int
	Position position.Position
}

func (e *StepLimitExceeded) Error() string {
	return fmt.Sprintf("%sstep limit of %d exceeded", prefix(e.Position), e.Limit)
}

func (e *StepLimitExceeded) Kind() Kind             { return KindStepLimitExceeded }
func (e *StepLimitExceeded) Pos() position.Position { return e.Position }
