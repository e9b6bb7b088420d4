// Package sema implements name resolution for MiniC programs.
//
// A single depth-first pass over the AST builds the scoped symbol table,
// binds every identifier occurrence to its declaration, and reports
// semantic errors through the diagnostics engine. All user-facing errors
// are recovered locally so one pass surfaces the complete error set; only
// scope-stack invariant violations abort the pass, through the error
// returned by Resolve.
package sema

import (
	"github.com/minic-lang/core-compiler/ast"
	"github.com/minic-lang/core-compiler/diagnostics"
	"github.com/minic-lang/core-compiler/symbols"
)

// Fixed semantic error messages.
const (
	MsgUndeclaredID   = "Undeclared identifier"
	MsgMultiplyDecl   = "Multiply declared identifier"
	MsgNonFnVoid      = "Non-function declared void"
	MsgBadStructType  = "Invalid name of struct type"
	MsgDotNonStruct   = "Dot-access of a non-struct type"
	MsgBadStructField = "Invalid struct field name"
)

// Resolver performs the name-resolution pass for one compilation unit.
type Resolver struct {
	file     string
	table    *symbols.Table
	diags    *diagnostics.DiagnosticEngine
	internal error
}

// NewResolver creates a resolver reporting into diags. The file name is
// attached to every diagnostic.
func NewResolver(file string, diags *diagnostics.DiagnosticEngine) *Resolver {
	return &Resolver{
		file:  file,
		table: symbols.NewTable(),
		diags: diags,
	}
}

// Table returns the global symbol table. After Resolve it holds all
// top-level declarations in its bottom scope.
func (r *Resolver) Table() *symbols.Table {
	return r.table
}

// Resolve walks the program and annotates it. The returned error is
// non-nil only for internal scope-stack invariant violations; semantic
// errors in the input are reported to the diagnostics engine instead.
func (r *Resolver) Resolve(p *ast.Program) error {
	for _, d := range p.Decls {
		r.decl(d, r.table)
	}
	return r.internal
}

func (r *Resolver) errorAt(line, col int, msg string) {
	r.diags.ErrorAt(r.file, line, col, msg)
}

// fatal records a scope-stack invariant violation. The first one wins;
// it indicates a resolver bug, never bad input.
func (r *Resolver) fatal(err error) {
	if r.internal == nil {
		r.internal = err
	}
}

func (r *Resolver) popScope(table *symbols.Table) {
	if err := table.RemoveScope(); err != nil {
		r.fatal(err)
	}
}
