// Package ast defines the abstract syntax tree of a portugol program.
//
// The node set is closed: statements implement Stmt and are dispatched
// through StmtVisitor, expressions implement Expr and are dispatched through
// ExprVisitor. Adding a node kind means adding a visitor method, which stops
// every pass that has not handled it from compiling.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/portugol-lang/portugol/internal/position"
	"github.com/portugol-lang/portugol/internal/types"
)

// Node is the base interface for all AST nodes
type Node interface {
	Pos() position.Position
	String() string
}

// Stmt is implemented by statement nodes
type Stmt interface {
	Node
	Accept(v StmtVisitor) error
}

// Expr is implemented by expression nodes
type Expr interface {
	Node
	exprNode()
}

// Ident is a variable name together with where it was written
type Ident struct {
	Name     string
	Position position.Position
}

func (i Ident) Pos() position.Position { return i.Position }
func (i Ident) String() string         { return i.Name }

// ===== Program Structure =====

// Program is the root of the AST
type Program struct {
	Name     Ident
	Decls    []*VarDecl
	Body     *Block
	Position position.Position
}

func (p *Program) Pos() position.Position { return p.Position }
func (p *Program) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "programa %s;\n", p.Name.Name)
	for _, d := range p.Decls {
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	b.WriteString(p.Body.String())
	b.WriteString(".")
	return b.String()
}

// VarDecl binds a group of names to one declared type
type VarDecl struct {
	Names    []Ident
	Type     types.Type
	Position position.Position
}

func (d *VarDecl) Pos() position.Position { return d.Position }
func (d *VarDecl) String() string {
	return fmt.Sprintf("var %s: %s;", joinIdents(d.Names), d.Type)
}

// ===== Statements =====

// Block is an inicio ... fim sequence of statements
type Block struct {
	Statements []Stmt
	Position   position.Position
}

func (b *Block) Pos() position.Position     { return b.Position }
func (b *Block) Accept(v StmtVisitor) error { return v.VisitBlock(b) }
func (b *Block) String() string {
	parts := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		parts[i] = s.String() + ";"
	}
	return "inicio " + strings.Join(parts, " ") + " fim"
}

// Assign stores the value of an expression in a variable
type Assign struct {
	Target   Ident
	Value    Expr
	Position position.Position
}

func (a *Assign) Pos() position.Position     { return a.Position }
func (a *Assign) Accept(v StmtVisitor) error { return v.VisitAssign(a) }
func (a *Assign) String() string             { return fmt.Sprintf("%s := %s", a.Target.Name, a.Value) }

// Read reads one input line per target variable, in order
type Read struct {
	Targets   []Ident
	Bracketed bool // written as ler[(...)]
	Position  position.Position
}

func (r *Read) Pos() position.Position     { return r.Position }
func (r *Read) Accept(v StmtVisitor) error { return v.VisitRead(r) }
func (r *Read) String() string {
	if r.Bracketed {
		return fmt.Sprintf("ler[(%s)]", joinIdents(r.Targets))
	}
	return fmt.Sprintf("ler(%s)", joinIdents(r.Targets))
}

// Write emits one output line holding its evaluated arguments
type Write struct {
	Args      []Expr
	Bracketed bool // written as escrever[(...)]
	Position  position.Position
}

func (w *Write) Pos() position.Position     { return w.Position }
func (w *Write) Accept(v StmtVisitor) error { return v.VisitWrite(w) }
func (w *Write) String() string {
	parts := make([]string, len(w.Args))
	for i, a := range w.Args {
		parts[i] = a.String()
	}
	if w.Bracketed {
		return fmt.Sprintf("escrever[(%s)]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("escrever(%s)", strings.Join(parts, ", "))
}

// If runs Then when Cond holds and Else, when present, otherwise
type If struct {
	Cond     Expr
	Then     Stmt
	Else     Stmt // nil without senao
	Position position.Position
}

func (s *If) Pos() position.Position     { return s.Position }
func (s *If) Accept(v StmtVisitor) error { return v.VisitIf(s) }
func (s *If) String() string {
	if s.Else != nil {
		return fmt.Sprintf("se %s entao %s senao %s", s.Cond, s.Then, s.Else)
	}
	return fmt.Sprintf("se %s entao %s", s.Cond, s.Then)
}

// While runs Body for as long as Cond holds
type While struct {
	Cond     Expr
	Body     Stmt
	Position position.Position
}

func (s *While) Pos() position.Position     { return s.Position }
func (s *While) Accept(v StmtVisitor) error { return v.VisitWhile(s) }
func (s *While) String() string             { return fmt.Sprintf("enquanto %s faca %s", s.Cond, s.Body) }

// ===== Expressions =====

// Operator is the source spelling of an operator
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
	OpLt  Operator = "<"
	OpLe  Operator = "<="
	OpGt  Operator = ">"
	OpGe  Operator = ">="
	OpEq  Operator = "="
	OpNe  Operator = "<>"
	OpNeg Operator = "-"
)

// IsArithmetic reports whether op is + - * /
func (op Operator) IsArithmetic() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// IsRelational reports whether op is one of the six comparison operators
func (op Operator) IsRelational() bool {
	switch op {
	case OpLt, OpLe, OpGt, OpGe, OpEq, OpNe:
		return true
	}
	return false
}

// BinaryExpr applies an arithmetic or relational operator. Position is the
// position of the operator token.
type BinaryExpr struct {
	Op       Operator
	Left     Expr
	Right    Expr
	Position position.Position
}

func (e *BinaryExpr) Pos() position.Position { return e.Position }
func (e *BinaryExpr) String() string         { return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right) }
func (*BinaryExpr) exprNode()                {}

// UnaryExpr is arithmetic negation
type UnaryExpr struct {
	Op       Operator
	Operand  Expr
	Position position.Position
}

func (e *UnaryExpr) Pos() position.Position { return e.Position }
func (e *UnaryExpr) String() string         { return fmt.Sprintf("(%s%s)", e.Op, e.Operand) }
func (*UnaryExpr) exprNode()                {}

// IntLiteral is a non-negative integer constant
type IntLiteral struct {
	Value    int64
	Position position.Position
}

func (e *IntLiteral) Pos() position.Position { return e.Position }
func (e *IntLiteral) String() string         { return strconv.FormatInt(e.Value, 10) }
func (*IntLiteral) exprNode()                {}

// StringLiteral holds the text between the quotes, escapes unresolved
type StringLiteral struct {
	Value    string
	Position position.Position
}

func (e *StringLiteral) Pos() position.Position { return e.Position }
func (e *StringLiteral) String() string         { return fmt.Sprintf("%q", e.Value) }
func (*StringLiteral) exprNode()                {}

// VarRef reads a variable
type VarRef struct {
	Name     string
	Position position.Position
}

func (e *VarRef) Pos() position.Position { return e.Position }
func (e *VarRef) String() string         { return e.Name }
func (*VarRef) exprNode()                {}

func joinIdents(ids []Ident) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name
	}
	return strings.Join(names, ", ")
}
