// Package types defines the portugol type lattice and runtime values.
package types

import "fmt"

// Type is the static type of an expression or declared variable
type Type int

const (
	Invalid Type = iota
	Integer      // inteiro
	Boolean      // logico
	String       // cadeia, only meaningful inside escrever argument lists
)

// String returns the source spelling of the type
func (t Type) String() string {
	switch t {
	case Integer:
		return "inteiro"
	case Boolean:
		return "logico"
	case String:
		return "cadeia"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Declarable reports whether variables may be declared with this type
func (t Type) Declarable() bool {
	return t == Integer || t == Boolean
}

// Zero returns the value a freshly declared variable of type t holds
func (t Type) Zero() Value {
	switch t {
	case Boolean:
		return Bool(false)
	case String:
		return Str("")
	default:
		return Int(0)
	}
}
