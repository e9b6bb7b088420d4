// Package symbols defines the semantic symbols bound during name
// resolution and the scoped symbol table that holds them.
package symbols

import (
	"fmt"
	"strings"
)

// Symbol describes one declared name. Type returns the semantic type name
// recorded for the declaration: "int", "bool", a struct tag name, or
// "void" for an illegally void-typed variable.
type Symbol interface {
	Type() string
	fmt.Stringer
}

// VarSymbol is a variable or parameter of a plain (non-struct) type.
type VarSymbol struct {
	typ string
}

func NewVarSymbol(typ string) *VarSymbol {
	return &VarSymbol{typ: typ}
}

func (s *VarSymbol) Type() string   { return s.typ }
func (s *VarSymbol) String() string { return s.typ }

// FnSymbol is a declared function. Identity is the name binding alone;
// the language has no overloading.
type FnSymbol struct {
	returnType string
	paramTypes []string
}

func NewFnSymbol(returnType string, paramTypes []string) *FnSymbol {
	return &FnSymbol{returnType: returnType, paramTypes: paramTypes}
}

func (s *FnSymbol) Type() string         { return s.returnType }
func (s *FnSymbol) ReturnType() string   { return s.returnType }
func (s *FnSymbol) ParamTypes() []string { return s.paramTypes }

func (s *FnSymbol) String() string {
	return strings.Join(s.paramTypes, ",") + "->" + s.returnType
}

// StructDefSymbol is a struct type definition. It owns the member table
// holding the struct's field declarations; the table has exactly one scope
// and is never chained to the lexical scope stack.
type StructDefSymbol struct {
	name   string
	fields *Table
}

func NewStructDefSymbol(name string, fields *Table) *StructDefSymbol {
	return &StructDefSymbol{name: name, fields: fields}
}

func (s *StructDefSymbol) Type() string   { return s.name }
func (s *StructDefSymbol) Fields() *Table { return s.fields }
func (s *StructDefSymbol) String() string { return s.name }

// StructSymbol is a variable declared with a struct type. It keeps a
// non-owning reference to the definition that gives the variable its shape.
type StructSymbol struct {
	def *StructDefSymbol
}

func NewStructSymbol(def *StructDefSymbol) *StructSymbol {
	return &StructSymbol{def: def}
}

func (s *StructSymbol) Type() string         { return s.def.Type() }
func (s *StructSymbol) Def() *StructDefSymbol { return s.def }
func (s *StructSymbol) String() string        { return s.def.Type() }
