package types

import (
	"strconv"
	"strings"
)

// Canonical boolean tokens, shared by input parsing and output rendering
const (
	TrueToken  = "verdadeiro"
	FalseToken = "falso"
)

// Value is a runtime value: an integer, a boolean, or a string passed
// through to escrever.
type Value struct {
	kind Type
	i    int64
	b    bool
	s    string
}

// Int returns an integer value
func Int(v int64) Value { return Value{kind: Integer, i: v} }

// Bool returns a boolean value
func Bool(v bool) Value { return Value{kind: Boolean, b: v} }

// Str returns a string value
func Str(v string) Value { return Value{kind: String, s: v} }

// Kind returns the runtime kind of v
func (v Value) Kind() Type { return v.kind }

// AsInt returns the integer payload; ok is false for other kinds
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == Integer }

// AsBool returns the boolean payload; ok is false for other kinds
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == Boolean }

// AsString returns the string payload; ok is false for other kinds
func (v Value) AsString() (string, bool) { return v.s, v.kind == String }

// String renders v the way escrever prints it. Booleans use the canonical
// tokens accepted on input.
func (v Value) String() string {
	switch v.kind {
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Boolean:
		if v.b {
			return TrueToken
		}
		return FalseToken
	case String:
		return v.s
	default:
		return "<invalid>"
	}
}

// Compare orders two values of the same kind, returning -1, 0, or +1.
// Booleans order falso before verdadeiro. ok is false when the kinds differ
// or are not comparable.
func Compare(a, b Value) (cmp int, ok bool) {
	if a.kind != b.kind {
		return 0, false
	}
	switch a.kind {
	case Integer:
		switch {
		case a.i < b.i:
			return -1, true
		case a.i > b.i:
			return 1, true
		}
		return 0, true
	case Boolean:
		switch {
		case a.b == b.b:
			return 0, true
		case !a.b:
			return -1, true
		}
		return 1, true
	}
	return 0, false
}

// ParseBool parses the canonical boolean vocabulary, case-insensitively:
// verdadeiro/true and falso/false.
func ParseBool(text string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case TrueToken, "true":
		return true, true
	case FalseToken, "false":
		return false, true
	}
	return false, false
}

// ParseInt parses a signed decimal integer, ignoring surrounding blanks
func ParseInt(text string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Parse converts a line of input into a value of type t
func Parse(t Type, text string) (Value, bool) {
	switch t {
	case Integer:
		n, ok := ParseInt(text)
		return Int(n), ok
	case Boolean:
		b, ok := ParseBool(text)
		return Bool(b), ok
	}
	return Value{}, false
}
