package sema

import (
	"errors"

	"github.com/minic-lang/core-compiler/ast"
	"github.com/minic-lang/core-compiler/symbols"
)

func (r *Resolver) decl(d ast.Decl, table *symbols.Table) {
	switch d := d.(type) {
	case *ast.VarDecl:
		r.varDecl(d, table, table)
	case *ast.FnDecl:
		r.fnDecl(d, table)
	case *ast.StructDecl:
		r.structDecl(d, table)
	}
}

// varDecl registers a variable declaration. typeScope is where struct type
// names are looked up; declScope is where the new binding lands. The two
// differ only for struct fields, whose types come from the enclosing scope
// while the binding goes into the member table.
func (r *Resolver) varDecl(d *ast.VarDecl, typeScope, declScope *symbols.Table) {
	r.declareVar(d.Type, d.Id, typeScope, declScope)
}

// formalDecl registers one parameter in the current (just-pushed) scope.
func (r *Resolver) formalDecl(d *ast.FormalDecl, table *symbols.Table) {
	r.declareVar(d.Type, d.Id, table, table)
}

func (r *Resolver) declareVar(typ *ast.TypeSpec, id *ast.Ident, typeScope, declScope *symbols.Table) {
	var sym symbols.Symbol

	switch typ.Kind {
	case ast.VoidType:
		r.errorAt(id.Line, id.Column, MsgNonFnVoid)
		sym = symbols.NewVarSymbol(typ.Name())
	case ast.StructType:
		if def := r.structDef(typ, typeScope); def != nil {
			sym = symbols.NewStructSymbol(def)
		}
	default:
		sym = symbols.NewVarSymbol(typ.Name())
	}

	// Unknown struct type: skip binding entirely, the type error was
	// already reported.
	if sym != nil {
		r.addDecl(declScope, id, sym)
	}

	// Best-effort self-annotation so later phases see a consistent
	// binding even after a duplicate declaration.
	r.bind(id, declScope)
}

// structDef resolves a struct type reference to its definition. A missing
// name or a non-struct binding reports "Invalid name of struct type" at
// the tag's position and yields nil.
func (r *Resolver) structDef(typ *ast.TypeSpec, table *symbols.Table) *symbols.StructDefSymbol {
	tag := typ.Id
	sym, ok := table.LookupGlobal(tag.Name)
	if !ok {
		r.errorAt(tag.Line, tag.Column, MsgBadStructType)
		return nil
	}
	def, ok := sym.(*symbols.StructDefSymbol)
	if !ok {
		r.errorAt(tag.Line, tag.Column, MsgBadStructType)
		return nil
	}
	return def
}

// fnDecl registers the function in the enclosing scope, then resolves its
// formals and body inside one fresh scope. The function symbol is added
// before the scope is pushed, so functions never shadow themselves via
// their own parameters.
func (r *Resolver) fnDecl(d *ast.FnDecl, table *symbols.Table) {
	if d.ReturnType.Kind == ast.StructType {
		r.structDef(d.ReturnType, table)
	}

	paramTypes := make([]string, len(d.Formals))
	for i, f := range d.Formals {
		paramTypes[i] = f.Type.Name()
	}
	r.addDecl(table, d.Id, symbols.NewFnSymbol(d.ReturnType.Name(), paramTypes))
	r.bind(d.Id, table)

	table.AddScope()
	for _, f := range d.Formals {
		r.formalDecl(f, table)
	}
	for _, v := range d.Body.Decls {
		r.varDecl(v, table, table)
	}
	for _, s := range d.Body.Stmts {
		r.stmt(s, table)
	}
	r.popScope(table)
}

// structDecl resolves the field list into a brand-new member table, then
// registers the definition under the struct's tag name in the enclosing
// scope. Fields never see the enclosing scope by name and the enclosing
// scope never sees fields.
func (r *Resolver) structDecl(d *ast.StructDecl, table *symbols.Table) {
	members := symbols.NewTable()
	for _, f := range d.Fields {
		r.varDecl(f, table, members)
	}
	r.addDecl(table, d.Id, symbols.NewStructDefSymbol(d.Id.Name, members))
	r.bind(d.Id, table)
}

// addDecl inserts the binding and maps table failures onto the error
// policy: duplicates are user errors reported at the declaring identifier,
// an empty scope stack is an internal invariant violation.
func (r *Resolver) addDecl(table *symbols.Table, id *ast.Ident, sym symbols.Symbol) {
	err := table.AddDecl(id.Name, sym)
	switch {
	case err == nil:
	case errors.Is(err, symbols.ErrDuplicateDecl):
		r.errorAt(id.Line, id.Column, MsgMultiplyDecl)
	default:
		r.fatal(err)
	}
}

// bind annotates id with its visible binding without reporting; used at
// declaration sites where a failed lookup has already been diagnosed.
func (r *Resolver) bind(id *ast.Ident, table *symbols.Table) {
	if sym, ok := table.LookupGlobal(id.Name); ok {
		id.Sym = sym
	}
}
