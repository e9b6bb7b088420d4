package ast

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/minic-lang/core-compiler/symbols"
)

func unparsed(n Node) string {
	var sb strings.Builder
	n.Unparse(&sb, 0)
	return sb.String()
}

func TestIdentUnparse(t *testing.T) {
	plain := &Ident{Name: "x"}
	be.Equal(t, unparsed(plain), "x")

	bound := &Ident{Name: "x", Sym: symbols.NewVarSymbol("int")}
	be.Equal(t, unparsed(bound), "x(int)")
}

func TestCallExpAnnotatesSignature(t *testing.T) {
	call := &CallExp{
		Id: &Ident{
			Name: "add",
			Sym:  symbols.NewFnSymbol("int", []string{"int", "int"}),
		},
		Args: []Exp{
			&IntLit{Value: 1},
			&Ident{Name: "y", Sym: symbols.NewVarSymbol("int")},
		},
	}
	be.Equal(t, unparsed(call), "add(int,int->int)(1, y(int))")
}

func TestAssignStmtDropsOuterParens(t *testing.T) {
	assign := &AssignExp{
		Lhs: &Ident{Name: "x"},
		Rhs: &IntLit{Value: 3},
	}
	be.Equal(t, unparsed(&AssignStmt{Assign: assign}), "x = 3;\n")

	// As a subexpression the same node is parenthesized.
	be.Equal(t, unparsed(assign), "(x = 3)")
}

func TestDotAccessUnparse(t *testing.T) {
	dot := &DotAccess{
		Loc: &DotAccess{
			Loc: &Ident{Name: "o"},
			Id:  &Ident{Name: "i"},
		},
		Id: &Ident{Name: "v"},
	}
	be.Equal(t, unparsed(dot), "((o).i).v")
}

func TestBinaryAndUnaryUnparse(t *testing.T) {
	e := &BinaryExp{
		Op: "+",
		X:  &IntLit{Value: 1},
		Y:  &UnaryExp{Op: "-", X: &IntLit{Value: 2}},
	}
	be.Equal(t, unparsed(e), "(1 + (-2))")
}

func TestTypeSpecName(t *testing.T) {
	be.Equal(t, (&TypeSpec{Kind: IntType}).Name(), "int")
	be.Equal(t, (&TypeSpec{Kind: BoolType}).Name(), "bool")
	be.Equal(t, (&TypeSpec{Kind: VoidType}).Name(), "void")
	st := &TypeSpec{Kind: StructType, Id: &Ident{Name: "Point"}}
	be.Equal(t, st.Name(), "Point")
	be.Equal(t, unparsed(st), "struct Point")
}
