package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes an indented structural dump of node to w
func Print(w io.Writer, node Node) error {
	p := &printer{w: w}
	p.node(node, 0)
	return p.err
}

// Sprint returns the structural dump of node as a string
func Sprint(node Node) string {
	var b strings.Builder
	_ = Print(&b, node)
	return b.String()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(indent int, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", indent), fmt.Sprintf(format, args...))
}

func (p *printer) node(node Node, indent int) {
	switch n := node.(type) {
	case *Program:
		p.line(indent, "Program %s", n.Name.Name)
		p.line(indent+1, "Decls:")
		for _, d := range n.Decls {
			p.line(indent+2, "%s: %s", joinIdents(d.Names), d.Type)
		}
		p.line(indent+1, "Body:")
		p.node(n.Body, indent+2)
	case *Block:
		p.line(indent, "Block")
		for _, s := range n.Statements {
			p.node(s, indent+1)
		}
	case *Assign:
		p.line(indent, "Assign(%s)", n.Target.Name)
		p.node(n.Value, indent+1)
	case *Read:
		p.line(indent, "Read [%s]", joinIdents(n.Targets))
	case *Write:
		p.line(indent, "Write")
		for _, a := range n.Args {
			p.node(a, indent+1)
		}
	case *If:
		p.line(indent, "If")
		p.line(indent+1, "Cond:")
		p.node(n.Cond, indent+2)
		p.line(indent+1, "Then:")
		p.node(n.Then, indent+2)
		if n.Else != nil {
			p.line(indent+1, "Else:")
			p.node(n.Else, indent+2)
		}
	case *While:
		p.line(indent, "While")
		p.line(indent+1, "Cond:")
		p.node(n.Cond, indent+2)
		p.line(indent+1, "Body:")
		p.node(n.Body, indent+2)
	case *BinaryExpr:
		p.line(indent, "Binary(%s)", n.Op)
		p.node(n.Left, indent+1)
		p.node(n.Right, indent+1)
	case *UnaryExpr:
		p.line(indent, "Unary(%s)", n.Op)
		p.node(n.Operand, indent+1)
	case *VarRef:
		p.line(indent, "VarRef(%s)", n.Name)
	case *IntLiteral:
		p.line(indent, "Int(%d)", n.Value)
	case *StringLiteral:
		p.line(indent, "String(%q)", n.Value)
	default:
		p.line(indent, "%T", node)
	}
}
