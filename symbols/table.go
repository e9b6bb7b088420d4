package symbols

import (
	"errors"
	"fmt"
)

// ErrEmptyTable reports an operation on a table whose scope stack is empty.
// Correct traversal logic never triggers it; it signals a resolver bug,
// not a problem with the input program.
var ErrEmptyTable = errors.New("symbol table has no open scope")

// ErrDuplicateDecl reports a second declaration of a name in one scope.
var ErrDuplicateDecl = errors.New("multiply declared identifier")

// Table is an ordered stack of scopes, each mapping a name to its Symbol.
// A new table starts with a single scope; the bottom scope of the global
// table holds all top-level declarations and is never popped during a
// resolution pass.
type Table struct {
	scopes []map[string]Symbol
}

func NewTable() *Table {
	return &Table{scopes: []map[string]Symbol{{}}}
}

// AddScope pushes an empty scope.
func (t *Table) AddScope() {
	t.scopes = append(t.scopes, map[string]Symbol{})
}

// RemoveScope pops the top scope. Returns ErrEmptyTable if the stack is
// already empty.
func (t *Table) RemoveScope() error {
	if len(t.scopes) == 0 {
		return ErrEmptyTable
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
	return nil
}

// AddDecl binds name to sym in the current top scope. Shadowing an outer
// scope is legal; a duplicate within the top scope returns
// ErrDuplicateDecl.
func (t *Table) AddDecl(name string, sym Symbol) error {
	if len(t.scopes) == 0 {
		return ErrEmptyTable
	}
	top := t.scopes[len(t.scopes)-1]
	if _, exists := top[name]; exists {
		return fmt.Errorf("%q: %w", name, ErrDuplicateDecl)
	}
	top[name] = sym
	return nil
}

// LookupLocal searches the top scope only.
func (t *Table) LookupLocal(name string) (Symbol, bool) {
	if len(t.scopes) == 0 {
		return nil, false
	}
	sym, ok := t.scopes[len(t.scopes)-1][name]
	return sym, ok
}

// LookupGlobal searches from the innermost scope outward and returns the
// first match, giving inner declarations shadowing precedence.
func (t *Table) LookupGlobal(name string) (Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Depth returns the number of open scopes.
func (t *Table) Depth() int {
	return len(t.scopes)
}
