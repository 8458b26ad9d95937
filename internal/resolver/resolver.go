// Declaration phase for portugol programs.

package resolver

import (
	"github.com/portugol-lang/portugol/internal/ast"
)

// DiagnosticHandler receives non-fatal diagnostics such as duplicate
// declarations.
type DiagnosticHandler func(err error)

// Resolver enters the declarations of a program into a symbol table and
// initializes their storage.
type Resolver struct {
	table   *SymbolTable
	store   *Store
	handler DiagnosticHandler
}

// NewResolver creates a resolver writing into table and store. A nil handler
// discards diagnostics.
func NewResolver(table *SymbolTable, store *Store, handler DiagnosticHandler) *Resolver {
	if handler == nil {
		handler = func(error) {}
	}
	return &Resolver{
		table:   table,
		store:   store,
		handler: handler,
	}
}

// Declare processes every declaration group in source order. Each new name is
// bound to its type and initialized to the type's zero value. Re-declared
// names are reported to the handler and keep their first binding and value.
// It returns the number of duplicates found.
func (r *Resolver) Declare(program *ast.Program) int {
	duplicates := 0

	for _, decl := range program.Decls {
		for _, id := range decl.Names {
			if _, err := r.table.Define(id.Name, decl.Type, id.Position); err != nil {
				duplicates++
				r.handler(err)
				continue
			}
			r.store.Init(id.Name, decl.Type.Zero())
		}
	}

	return duplicates
}

// Declare runs the declaration phase of program on a fresh symbol table and
// store.
func Declare(program *ast.Program, handler DiagnosticHandler) (*SymbolTable, *Store) {
	table := NewSymbolTable()
	store := NewStore()
	NewResolver(table, store, handler).Declare(program)
	return table, store
}
