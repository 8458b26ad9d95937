// Package typechecker infers the static types of portugol expressions.
//
// Inference is lazy: the interpreter asks for the type of an expression right
// before it executes the statement that holds it, so type errors surface in
// execution order.
package typechecker

import (
	"fmt"

	"github.com/portugol-lang/portugol/internal/ast"
	"github.com/portugol-lang/portugol/internal/errors"
	"github.com/portugol-lang/portugol/internal/types"
)

// Scope resolves variable names to their declared types
type Scope interface {
	TypeOf(name string) (types.Type, bool)
}

// TypeInferenceEngine computes expression types against a scope
type TypeInferenceEngine struct {
	scope Scope
}

// NewTypeInferenceEngine creates an inference engine over scope
func NewTypeInferenceEngine(scope Scope) *TypeInferenceEngine {
	return &TypeInferenceEngine{scope: scope}
}

// Infer is shorthand for NewTypeInferenceEngine(scope).InferExpression(expr)
func Infer(expr ast.Expr, scope Scope) (types.Type, error) {
	return NewTypeInferenceEngine(scope).InferExpression(expr)
}

// InferExpression infers the type of an expression. Operands are inferred
// left to right and the first error wins.
func (tie *TypeInferenceEngine) InferExpression(expr ast.Expr) (types.Type, error) {
	return ast.VisitExpr[types.Type](expr, tie)
}

// InferCondition infers the condition of a se or enquanto statement and
// requires it to be logico
func (tie *TypeInferenceEngine) InferCondition(expr ast.Expr, keyword string) error {
	typ, err := tie.InferExpression(expr)
	if err != nil {
		return err
	}
	if typ != types.Boolean {
		return &errors.TypeMismatch{
			Context:  keyword,
			Expected: types.Boolean.String(),
			Actual:   typ.String(),
			Message:  fmt.Sprintf("condition of '%s' must be logical, got %s", keyword, typ),
			Position: expr.Pos(),
		}
	}
	return nil
}

func (tie *TypeInferenceEngine) VisitBinaryExpr(e *ast.BinaryExpr) (types.Type, error) {
	left, err := tie.InferExpression(e.Left)
	if err != nil {
		return types.Invalid, err
	}
	right, err := tie.InferExpression(e.Right)
	if err != nil {
		return types.Invalid, err
	}

	if left == types.String || right == types.String {
		return types.Invalid, &errors.TypeMismatch{
			Context:  string(e.Op),
			Expected: "inteiro or logico",
			Actual:   types.String.String(),
			Message:  fmt.Sprintf("operator '%s' cannot be applied to a string literal", e.Op),
			Position: e.Position,
		}
	}

	if e.Op.IsRelational() {
		if left != right {
			return types.Invalid, &errors.TypeMismatch{
				Context:  string(e.Op),
				Expected: left.String(),
				Actual:   right.String(),
				Message:  fmt.Sprintf("cannot compare %s with %s using '%s'", left, right, e.Op),
				Position: e.Position,
			}
		}
		return types.Boolean, nil
	}

	for _, operand := range []types.Type{left, right} {
		if operand != types.Integer {
			return types.Invalid, &errors.TypeMismatch{
				Context:  string(e.Op),
				Expected: types.Integer.String(),
				Actual:   operand.String(),
				Message:  fmt.Sprintf("operator '%s' requires inteiro operands, got %s", e.Op, operand),
				Position: e.Position,
			}
		}
	}
	return types.Integer, nil
}

func (tie *TypeInferenceEngine) VisitUnaryExpr(e *ast.UnaryExpr) (types.Type, error) {
	operand, err := tie.InferExpression(e.Operand)
	if err != nil {
		return types.Invalid, err
	}
	if operand != types.Integer {
		return types.Invalid, &errors.TypeMismatch{
			Context:  "unary " + string(e.Op),
			Expected: types.Integer.String(),
			Actual:   operand.String(),
			Message:  fmt.Sprintf("unary '%s' requires an inteiro operand, got %s", e.Op, operand),
			Position: e.Position,
		}
	}
	return types.Integer, nil
}

func (tie *TypeInferenceEngine) VisitIntLiteral(*ast.IntLiteral) (types.Type, error) {
	return types.Integer, nil
}

func (tie *TypeInferenceEngine) VisitStringLiteral(*ast.StringLiteral) (types.Type, error) {
	return types.String, nil
}

func (tie *TypeInferenceEngine) VisitVarRef(e *ast.VarRef) (types.Type, error) {
	typ, found := tie.scope.TypeOf(e.Name)
	if !found {
		return types.Invalid, &errors.UndeclaredVariable{Name: e.Name, Position: e.Position}
	}
	return typ, nil
}
