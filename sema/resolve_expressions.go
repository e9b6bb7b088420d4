package sema

import (
	"github.com/minic-lang/core-compiler/ast"
	"github.com/minic-lang/core-compiler/symbols"
)

func (r *Resolver) exp(e ast.Exp, table *symbols.Table) {
	switch e := e.(type) {
	case *ast.Ident:
		r.ident(e, table)
	case *ast.DotAccess:
		r.dotAccess(e, table)
	case *ast.AssignExp:
		r.exp(e.Lhs, table)
		r.exp(e.Rhs, table)
	case *ast.CallExp:
		// The callee resolves like any identifier; arity and argument
		// types are the type checker's problem.
		r.ident(e.Id, table)
		for _, a := range e.Args {
			r.exp(a, table)
		}
	case *ast.UnaryExp:
		r.exp(e.X, table)
	case *ast.BinaryExp:
		r.exp(e.X, table)
		r.exp(e.Y, table)
	}
	// Literals bind nothing.
}

func (r *Resolver) ident(id *ast.Ident, table *symbols.Table) {
	sym, ok := table.LookupGlobal(id.Name)
	if !ok {
		r.errorAt(id.Line, id.Column, MsgUndeclaredID)
		return
	}
	id.Sym = sym
}

// dotAccess resolves a left-associative field-access chain. Each step
// narrows the lookup table to the left side's struct definition: in
// "o.i.v" the name "o" resolves in the lexical scopes, "i" only in
// Outer's member table, "v" only in Inner's. The resolved field symbol is
// returned so an enclosing dot-access can keep narrowing; nil means the
// chain is broken and has already been diagnosed.
func (r *Resolver) dotAccess(e *ast.DotAccess, table *symbols.Table) symbols.Symbol {
	var locSym symbols.Symbol

	switch loc := e.Loc.(type) {
	case *ast.Ident:
		r.ident(loc, table)
		locSym = loc.Sym
		if locSym == nil {
			// Undeclared identifier, already reported; abort the chain.
			return nil
		}
	case *ast.DotAccess:
		locSym = r.dotAccess(loc, table)
		if locSym == nil {
			return nil
		}
	default:
		line, col := e.Loc.Pos()
		r.errorAt(line, col, MsgDotNonStruct)
		return nil
	}

	inst, ok := locSym.(*symbols.StructSymbol)
	if !ok {
		line, col := e.Loc.Pos()
		r.errorAt(line, col, MsgDotNonStruct)
		return nil
	}

	field, ok := inst.Def().Fields().LookupGlobal(e.Id.Name)
	if !ok {
		r.errorAt(e.Id.Line, e.Id.Column, MsgBadStructField)
		return nil
	}
	e.Id.Sym = field
	return field
}
