package runtime

import (
	"fmt"

	"github.com/portugol-lang/portugol/internal/ast"
	"github.com/portugol-lang/portugol/internal/errors"
	"github.com/portugol-lang/portugol/internal/types"
)

// evaluator computes expression values against the interpreter's store.
// Operand kinds are checked again at run time, independently of inference.
type evaluator struct {
	in *Interpreter
}

func (in *Interpreter) evaluate(expr ast.Expr) (types.Value, error) {
	return ast.VisitExpr[types.Value](expr, evaluator{in: in})
}

func (ev evaluator) VisitBinaryExpr(e *ast.BinaryExpr) (types.Value, error) {
	left, err := ev.in.evaluate(e.Left)
	if err != nil {
		return types.Value{}, err
	}
	right, err := ev.in.evaluate(e.Right)
	if err != nil {
		return types.Value{}, err
	}

	if e.Op.IsRelational() {
		return compare(e, left, right)
	}
	return arithmetic(e, left, right)
}

func (ev evaluator) VisitUnaryExpr(e *ast.UnaryExpr) (types.Value, error) {
	operand, err := ev.in.evaluate(e.Operand)
	if err != nil {
		return types.Value{}, err
	}

	n, ok := operand.AsInt()
	if !ok {
		return types.Value{}, &errors.TypeMismatch{
			Context:  "unary " + string(e.Op),
			Expected: types.Integer.String(),
			Actual:   operand.Kind().String(),
			Message:  fmt.Sprintf("unary '%s' requires an inteiro operand, got %s", e.Op, operand.Kind()),
			Position: e.Position,
		}
	}
	return types.Int(-n), nil
}

func (ev evaluator) VisitIntLiteral(e *ast.IntLiteral) (types.Value, error) {
	return types.Int(e.Value), nil
}

func (ev evaluator) VisitStringLiteral(e *ast.StringLiteral) (types.Value, error) {
	return types.Str(e.Value), nil
}

func (ev evaluator) VisitVarRef(e *ast.VarRef) (types.Value, error) {
	if _, ok := ev.in.table.Lookup(e.Name); !ok {
		return types.Value{}, &errors.UndeclaredVariable{Name: e.Name, Position: e.Position}
	}
	v, _ := ev.in.store.Get(e.Name)
	return v, nil
}

// arithmetic applies + - * / to two integers. Division rounds toward
// negative infinity.
func arithmetic(e *ast.BinaryExpr, left, right types.Value) (types.Value, error) {
	a, okA := left.AsInt()
	b, okB := right.AsInt()
	if !okA || !okB {
		actual := left.Kind()
		if okA {
			actual = right.Kind()
		}
		return types.Value{}, &errors.TypeMismatch{
			Context:  string(e.Op),
			Expected: types.Integer.String(),
			Actual:   actual.String(),
			Message:  fmt.Sprintf("operator '%s' requires inteiro operands, got %s", e.Op, actual),
			Position: e.Position,
		}
	}

	switch e.Op {
	case ast.OpAdd:
		return types.Int(a + b), nil
	case ast.OpSub:
		return types.Int(a - b), nil
	case ast.OpMul:
		return types.Int(a * b), nil
	case ast.OpDiv:
		if b == 0 {
			return types.Value{}, &errors.DivisionByZero{Position: e.Position}
		}
		return types.Int(floorDiv(a, b)), nil
	}

	return types.Value{}, fmt.Errorf("%s: unknown operator '%s'", e.Position, e.Op)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// compare applies a relational operator to two values of the same kind
func compare(e *ast.BinaryExpr, left, right types.Value) (types.Value, error) {
	cmp, ok := types.Compare(left, right)
	if !ok {
		return types.Value{}, &errors.TypeMismatch{
			Context:  string(e.Op),
			Expected: left.Kind().String(),
			Actual:   right.Kind().String(),
			Message:  fmt.Sprintf("cannot compare %s with %s using '%s'", left.Kind(), right.Kind(), e.Op),
			Position: e.Position,
		}
	}

	var result bool
	switch e.Op {
	case ast.OpLt:
		result = cmp < 0
	case ast.OpLe:
		result = cmp <= 0
	case ast.OpGt:
		result = cmp > 0
	case ast.OpGe:
		result = cmp >= 0
	case ast.OpEq:
		result = cmp == 0
	case ast.OpNe:
		result = cmp != 0
	default:
		return types.Value{}, fmt.Errorf("%s: unknown operator '%s'", e.Position, e.Op)
	}
	return types.Bool(result), nil
}
