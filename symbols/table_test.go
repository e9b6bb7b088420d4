package symbols

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestNewTableHasOneScope(t *testing.T) {
	tbl := NewTable()
	be.Equal(t, tbl.Depth(), 1)
}

func TestAddDeclAndLookup(t *testing.T) {
	tbl := NewTable()
	err := tbl.AddDecl("x", NewVarSymbol("int"))
	be.Err(t, err, nil)

	sym, ok := tbl.LookupLocal("x")
	be.True(t, ok)
	be.Equal(t, sym.Type(), "int")

	sym, ok = tbl.LookupGlobal("x")
	be.True(t, ok)
	be.Equal(t, sym.Type(), "int")
}

func TestDuplicateDeclInSameScope(t *testing.T) {
	tbl := NewTable()
	be.Err(t, tbl.AddDecl("x", NewVarSymbol("int")), nil)

	err := tbl.AddDecl("x", NewVarSymbol("bool"))
	be.Err(t, err, ErrDuplicateDecl)

	// The first binding survives.
	sym, ok := tbl.LookupLocal("x")
	be.True(t, ok)
	be.Equal(t, sym.Type(), "int")
}

func TestShadowingAcrossScopes(t *testing.T) {
	tbl := NewTable()
	be.Err(t, tbl.AddDecl("x", NewVarSymbol("int")), nil)

	tbl.AddScope()
	be.Err(t, tbl.AddDecl("x", NewVarSymbol("bool")), nil)

	// Inner declaration wins globally; local lookup sees only the top scope.
	sym, ok := tbl.LookupGlobal("x")
	be.True(t, ok)
	be.Equal(t, sym.Type(), "bool")

	sym, ok = tbl.LookupLocal("x")
	be.True(t, ok)
	be.Equal(t, sym.Type(), "bool")

	be.Err(t, tbl.RemoveScope(), nil)

	sym, ok = tbl.LookupGlobal("x")
	be.True(t, ok)
	be.Equal(t, sym.Type(), "int")
}

func TestLookupLocalIgnoresOuterScopes(t *testing.T) {
	tbl := NewTable()
	be.Err(t, tbl.AddDecl("x", NewVarSymbol("int")), nil)

	tbl.AddScope()
	_, ok := tbl.LookupLocal("x")
	be.True(t, !ok)

	_, ok = tbl.LookupGlobal("x")
	be.True(t, ok)
}

func TestLookupMissing(t *testing.T) {
	tbl := NewTable()
	_, ok := tbl.LookupLocal("nope")
	be.True(t, !ok)
	_, ok = tbl.LookupGlobal("nope")
	be.True(t, !ok)
}

func TestRemoveScopeOnEmptyTable(t *testing.T) {
	tbl := NewTable()
	be.Err(t, tbl.RemoveScope(), nil)
	be.Equal(t, tbl.Depth(), 0)

	be.Err(t, tbl.RemoveScope(), ErrEmptyTable)
	be.Err(t, tbl.AddDecl("x", NewVarSymbol("int")), ErrEmptyTable)

	_, ok := tbl.LookupLocal("x")
	be.True(t, !ok)
	_, ok = tbl.LookupGlobal("x")
	be.True(t, !ok)
}

func TestScopeDepthTracksPushPop(t *testing.T) {
	tbl := NewTable()
	tbl.AddScope()
	tbl.AddScope()
	be.Equal(t, tbl.Depth(), 3)

	be.Err(t, tbl.RemoveScope(), nil)
	be.Err(t, tbl.RemoveScope(), nil)
	be.Equal(t, tbl.Depth(), 1)
}

func TestPoppedBindingsAreGone(t *testing.T) {
	tbl := NewTable()
	tbl.AddScope()
	be.Err(t, tbl.AddDecl("tmp", NewVarSymbol("int")), nil)
	be.Err(t, tbl.RemoveScope(), nil)

	_, ok := tbl.LookupGlobal("tmp")
	be.True(t, !ok)
}

func TestFnSymbolString(t *testing.T) {
	fn := NewFnSymbol("bool", []string{"int", "int"})
	be.Equal(t, fn.String(), "int,int->bool")
	be.Equal(t, fn.ReturnType(), "bool")

	noArgs := NewFnSymbol("void", nil)
	be.Equal(t, noArgs.String(), "->void")
}

func TestStructSymbols(t *testing.T) {
	fields := NewTable()
	be.Err(t, fields.AddDecl("v", NewVarSymbol("int")), nil)
	def := NewStructDefSymbol("Pair", fields)
	be.Equal(t, def.Type(), "Pair")

	inst := NewStructSymbol(def)
	be.Equal(t, inst.Type(), "Pair")
	be.Equal(t, inst.Def(), def)

	sym, ok := inst.Def().Fields().LookupGlobal("v")
	be.True(t, ok)
	be.Equal(t, sym.Type(), "int")
}
