package ast

import "fmt"

// StmtVisitor is implemented by every pass that executes or inspects
// statements. Each statement node dispatches to exactly one method.
type StmtVisitor interface {
	VisitBlock(node *Block) error
	VisitAssign(node *Assign) error
	VisitRead(node *Read) error
	VisitWrite(node *Write) error
	VisitIf(node *If) error
	VisitWhile(node *While) error
}

// ExprVisitor computes a result of type R for each expression kind
type ExprVisitor[R any] interface {
	VisitBinaryExpr(node *BinaryExpr) (R, error)
	VisitUnaryExpr(node *UnaryExpr) (R, error)
	VisitIntLiteral(node *IntLiteral) (R, error)
	VisitStringLiteral(node *StringLiteral) (R, error)
	VisitVarRef(node *VarRef) (R, error)
}

// VisitExpr dispatches expr to the matching method of v
func VisitExpr[R any](expr Expr, v ExprVisitor[R]) (R, error) {
	switch n := expr.(type) {
	case *BinaryExpr:
		return v.VisitBinaryExpr(n)
	case *UnaryExpr:
		return v.VisitUnaryExpr(n)
	case *IntLiteral:
		return v.VisitIntLiteral(n)
	case *StringLiteral:
		return v.VisitStringLiteral(n)
	case *VarRef:
		return v.VisitVarRef(n)
	}
	panic(fmt.Sprintf("ast: unhandled expression %T", expr))
}
