package compiler

import (
	"github.com/minic-lang/core-compiler/diagnostics"
	"github.com/minic-lang/core-compiler/symbols"
)

// Context holds the state produced while checking one compilation unit.
type Context struct {
	Diagnostics *diagnostics.DiagnosticEngine

	// Table is the global symbol table, populated by name resolution.
	// Its bottom scope holds every top-level declaration.
	Table *symbols.Table
}

// NewContext creates a fresh compilation context.
func NewContext() *Context {
	return &Context{
		Diagnostics: diagnostics.NewDiagnosticEngine(),
	}
}
