// Symbol table and variable store for portugol programs.
// Both keep insertion order so dumps list variables in declaration order.

package resolver

import (
	"fmt"
	"io"

	"github.com/portugol-lang/portugol/internal/errors"
	"github.com/portugol-lang/portugol/internal/position"
	"github.com/portugol-lang/portugol/internal/types"
)

// Symbol represents a declared variable.
type Symbol struct {
	Name    string
	Type    types.Type
	DeclPos position.Position
}

// SymbolTable maps variable names to their declared types.
type SymbolTable struct {
	symbols map[string]*Symbol
	order   []string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
	}
}

// Define declares name with the given type. A name that is already declared
// keeps its first binding and a *errors.DuplicateDeclaration is returned.
func (st *SymbolTable) Define(name string, typ types.Type, pos position.Position) (*Symbol, error) {
	if existing, ok := st.symbols[name]; ok {
		return existing, &errors.DuplicateDeclaration{
			Name:     name,
			Existing: existing.Type.String(),
			Position: pos,
		}
	}

	sym := &Symbol{Name: name, Type: typ, DeclPos: pos}
	st.symbols[name] = sym
	st.order = append(st.order, name)

	return sym, nil
}

// Lookup finds a symbol by name.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// TypeOf returns the declared type of name.
func (st *SymbolTable) TypeOf(name string) (types.Type, bool) {
	if sym, ok := st.symbols[name]; ok {
		return sym.Type, true
	}
	return types.Invalid, false
}

// Symbols returns all symbols in declaration order.
func (st *SymbolTable) Symbols() []*Symbol {
	result := make([]*Symbol, 0, len(st.order))
	for _, name := range st.order {
		result = append(result, st.symbols[name])
	}
	return result
}

// Len returns the number of declared variables.
func (st *SymbolTable) Len() int {
	return len(st.order)
}

// Dump writes every symbol with its declared type and current value.
func (st *SymbolTable) Dump(w io.Writer, store *Store) error {
	if _, err := fmt.Fprintln(w, "Tabela de Símbolos:"); err != nil {
		return err
	}

	for _, sym := range st.Symbols() {
		value := "não inicializada"
		if store != nil {
			if v, ok := store.Get(sym.Name); ok {
				value = v.String()
			}
		}
		if _, err := fmt.Fprintf(w, "%s: %s = %s\n", sym.Name, sym.Type, value); err != nil {
			return err
		}
	}

	return nil
}

// Store holds the current value of every declared variable.
type Store struct {
	values map[string]types.Value
	order  []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		values: make(map[string]types.Value),
	}
}

// Init sets the initial value of name unless it already has one.
func (s *Store) Init(name string, v types.Value) {
	if _, ok := s.values[name]; ok {
		return
	}
	s.values[name] = v
	s.order = append(s.order, name)
}

// Get returns the current value of name.
func (s *Store) Get(name string) (types.Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Set replaces the value of name.
func (s *Store) Set(name string, v types.Value) {
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = v
}

// Dump writes every stored value in insertion order.
func (s *Store) Dump(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Memória:"); err != nil {
		return err
	}

	for _, name := range s.order {
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, s.values[name]); err != nil {
			return err
		}
	}

	return nil
}
