// Package errors provides the diagnostic error kinds reported by the
// portugol lexer, parser, resolver, and evaluator. Each kind is its own type
// so callers can continue past recoverable kinds and abort on fatal ones.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/portugol-lang/portugol/internal/position"
)

// Kind identifies the category of a diagnostic
type Kind int

const (
	KindLexical Kind = iota
	KindSyntax
	KindDuplicateDeclaration
	KindUndeclaredVariable
	KindTypeMismatch
	KindInvalidLiteral
	KindDivisionByZero
	KindStepLimitExceeded
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "LexicalError"
	case KindSyntax:
		return "SyntaxError"
	case KindDuplicateDeclaration:
		return "DuplicateDeclaration"
	case KindUndeclaredVariable:
		return "UndeclaredVariable"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindInvalidLiteral:
		return "InvalidLiteral"
	case KindDivisionByZero:
		return "DivisionByZero"
	case KindStepLimitExceeded:
		return "StepLimitExceeded"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Fatal reports whether a diagnostic of this kind aborts the current pass
func (k Kind) Fatal() bool {
	return k != KindLexical && k != KindDuplicateDeclaration
}

// Diagnostic is implemented by every error kind in this package
type Diagnostic interface {
	error
	Kind() Kind
	Pos() position.Position
}

// KindOf returns the kind of the first Diagnostic in err's chain
func KindOf(err error) (Kind, bool) {
	var d Diagnostic
	if stderrors.As(err, &d) {
		return d.Kind(), true
	}
	return 0, false
}

// IsFatal reports whether err should abort execution. Errors that are not
// diagnostics (I/O failures, cancellation) are always fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if k, ok := KindOf(err); ok {
		return k.Fatal()
	}
	return true
}

// PosOf returns the source position carried by err, if any
func PosOf(err error) (position.Position, bool) {
	var d Diagnostic
	if stderrors.As(err, &d) && d.Pos().IsValid() {
		return d.Pos(), true
	}
	return position.Position{}, false
}

func prefix(pos position.Position) string {
	if !pos.IsValid() {
		return ""
	}
	return pos.String() + ": "
}
