package parser

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/minic-lang/core-compiler/ast"
	"github.com/minic-lang/core-compiler/diagnostics"
	"github.com/minic-lang/core-compiler/lexer"
)

func parse(t *testing.T, src string) (*ast.Program, *diagnostics.DiagnosticEngine) {
	t.Helper()
	diags := diagnostics.NewDiagnosticEngine()
	p := New(lexer.New(src), "test.mc", diags)
	return p.ParseProgram(), diags
}

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, diags := parse(t, src)
	for _, d := range diags.All() {
		t.Logf("unexpected diagnostic: %s", d)
	}
	be.Equal(t, diags.ErrorCount(), 0)
	return prog
}

func TestParseVarDecls(t *testing.T) {
	prog := parseOK(t, `
int x;
bool flag;
struct Point p;
`)
	be.Equal(t, len(prog.Decls), 3)

	v, ok := prog.Decls[0].(*ast.VarDecl)
	be.True(t, ok)
	be.Equal(t, v.Id.Name, "x")
	be.Equal(t, v.Type.Name(), "int")

	v = prog.Decls[2].(*ast.VarDecl)
	be.Equal(t, v.Type.Kind, ast.StructType)
	be.Equal(t, v.Type.Name(), "Point")
	be.Equal(t, v.Id.Name, "p")
}

func TestParseStructDecl(t *testing.T) {
	prog := parseOK(t, `
struct Point {
    int x;
    int y;
};
`)
	be.Equal(t, len(prog.Decls), 1)
	s, ok := prog.Decls[0].(*ast.StructDecl)
	be.True(t, ok)
	be.Equal(t, s.Id.Name, "Point")
	be.Equal(t, len(s.Fields), 2)
	be.Equal(t, s.Fields[0].Id.Name, "x")
	be.Equal(t, s.Fields[1].Id.Name, "y")
}

func TestParseFnDecl(t *testing.T) {
	prog := parseOK(t, `
int add(int a, int b) {
    int sum;
    sum = a + b;
    return sum;
}
`)
	be.Equal(t, len(prog.Decls), 1)
	fn, ok := prog.Decls[0].(*ast.FnDecl)
	be.True(t, ok)
	be.Equal(t, fn.Id.Name, "add")
	be.Equal(t, fn.ReturnType.Name(), "int")
	be.Equal(t, len(fn.Formals), 2)
	be.Equal(t, fn.Formals[0].Id.Name, "a")
	be.Equal(t, len(fn.Body.Decls), 1)
	be.Equal(t, len(fn.Body.Stmts), 2)

	_, ok = fn.Body.Stmts[0].(*ast.AssignStmt)
	be.True(t, ok)
	ret, ok := fn.Body.Stmts[1].(*ast.ReturnStmt)
	be.True(t, ok)
	be.True(t, ret.Exp != nil)
}

func TestParseStatements(t *testing.T) {
	prog := parseOK(t, `
void main() {
    int i;
    cin >> i;
    cout << i + 1;
    i++;
    i--;
    if (i < 10) {
        i = 0;
    }
    if (i == 0) {
        i = 1;
    } else {
        i = 2;
    }
    while (i > 0) {
        i--;
    }
    main();
    return;
}
`)
	fn := prog.Decls[0].(*ast.FnDecl)
	stmts := fn.Body.Stmts
	be.Equal(t, len(stmts), 9)

	_, ok := stmts[0].(*ast.ReadStmt)
	be.True(t, ok)
	_, ok = stmts[1].(*ast.WriteStmt)
	be.True(t, ok)
	_, ok = stmts[2].(*ast.PostIncStmt)
	be.True(t, ok)
	_, ok = stmts[3].(*ast.PostDecStmt)
	be.True(t, ok)
	_, ok = stmts[4].(*ast.IfStmt)
	be.True(t, ok)
	ifElse, ok := stmts[5].(*ast.IfElseStmt)
	be.True(t, ok)
	be.Equal(t, len(ifElse.ThenStmts), 1)
	be.Equal(t, len(ifElse.ElseStmts), 1)
	_, ok = stmts[6].(*ast.WhileStmt)
	be.True(t, ok)
	_, ok = stmts[7].(*ast.CallStmt)
	be.True(t, ok)
	ret, ok := stmts[8].(*ast.ReturnStmt)
	be.True(t, ok)
	be.True(t, ret.Exp == nil)
}

func TestExpressionPrecedence(t *testing.T) {
	prog := parseOK(t, `
void main() {
    int x;
    x = 1 + 2 * 3;
}
`)
	fn := prog.Decls[0].(*ast.FnDecl)
	assign := fn.Body.Stmts[0].(*ast.AssignStmt).Assign

	add, ok := assign.Rhs.(*ast.BinaryExp)
	be.True(t, ok)
	be.Equal(t, add.Op, "+")

	mul, ok := add.Y.(*ast.BinaryExp)
	be.True(t, ok)
	be.Equal(t, mul.Op, "*")
}

func TestAssignIsRightAssociative(t *testing.T) {
	prog := parseOK(t, `
void main() {
    int a;
    int b;
    a = b = 1;
}
`)
	fn := prog.Decls[0].(*ast.FnDecl)
	outer := fn.Body.Stmts[0].(*ast.AssignStmt).Assign

	inner, ok := outer.Rhs.(*ast.AssignExp)
	be.True(t, ok)
	_, ok = inner.Rhs.(*ast.IntLit)
	be.True(t, ok)
}

func TestParseDotChain(t *testing.T) {
	prog := parseOK(t, `
void main() {
    struct Outer o;
    o.inner.v = 1;
}
`)
	fn := prog.Decls[0].(*ast.FnDecl)
	assign := fn.Body.Stmts[0].(*ast.AssignStmt).Assign

	outer, ok := assign.Lhs.(*ast.DotAccess)
	be.True(t, ok)
	be.Equal(t, outer.Id.Name, "v")

	inner, ok := outer.Loc.(*ast.DotAccess)
	be.True(t, ok)
	be.Equal(t, inner.Id.Name, "inner")

	base, ok := inner.Loc.(*ast.Ident)
	be.True(t, ok)
	be.Equal(t, base.Name, "o")
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, diags := parse(t, "int x")
	be.True(t, diags.HasErrors())

	d := diags.All()[0]
	be.Equal(t, d.File, "test.mc")
	be.Equal(t, d.Line, 1)
}

func TestRecoveryFindsMultipleErrors(t *testing.T) {
	_, diags := parse(t, `
void main() {
    x = ;
    y = ;
}
`)
	be.True(t, diags.ErrorCount() >= 2)
}

func TestRecoveryKeepsGoodDecls(t *testing.T) {
	prog, diags := parse(t, `
int x
int y;
`)
	be.True(t, diags.HasErrors())

	// The second declaration still parses after resynchronization.
	found := false
	for _, d := range prog.Decls {
		if v, ok := d.(*ast.VarDecl); ok && v.Id.Name == "y" {
			found = true
		}
	}
	be.True(t, found)
}
