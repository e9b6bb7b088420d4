package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/minic-lang/core-compiler/symbols"
)

// The unparse methods pretty-print a program. Identifier uses that carry a
// resolved symbol are annotated "name(type)"; unresolved identifiers print
// plain, so unparsing is safe on trees with semantic errors.

func doIndent(w io.Writer, indent int) {
	if indent > 0 {
		io.WriteString(w, strings.Repeat(" ", indent))
	}
}

func (p *Program) Unparse(w io.Writer, indent int) {
	for _, d := range p.Decls {
		d.Unparse(w, indent)
	}
}

func (t *TypeSpec) Unparse(w io.Writer, indent int) {
	if t.Kind == StructType {
		io.WriteString(w, "struct "+t.Id.Name)
		return
	}
	io.WriteString(w, t.Name())
}

func (d *VarDecl) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	d.Type.Unparse(w, 0)
	io.WriteString(w, " "+d.Id.Name+";\n")
}

func (d *FnDecl) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	d.ReturnType.Unparse(w, 0)
	io.WriteString(w, " "+d.Id.Name+"(")
	for i, f := range d.Formals {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		f.Unparse(w, 0)
	}
	io.WriteString(w, ") {\n")
	d.Body.Unparse(w, indent+4)
	doIndent(w, indent)
	io.WriteString(w, "}\n\n")
}

func (d *FormalDecl) Unparse(w io.Writer, indent int) {
	d.Type.Unparse(w, 0)
	io.WriteString(w, " "+d.Id.Name)
}

func (d *StructDecl) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	io.WriteString(w, "struct "+d.Id.Name+" {\n")
	for _, f := range d.Fields {
		f.Unparse(w, indent+4)
	}
	doIndent(w, indent)
	io.WriteString(w, "};\n\n")
}

func (b *FnBody) Unparse(w io.Writer, indent int) {
	for _, d := range b.Decls {
		d.Unparse(w, indent)
	}
	for _, s := range b.Stmts {
		s.Unparse(w, indent)
	}
}

func (s *AssignStmt) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	s.Assign.Unparse(w, -1) // no parentheses at statement level
	io.WriteString(w, ";\n")
}

func (s *PostIncStmt) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	s.Loc.Unparse(w, 0)
	io.WriteString(w, "++;\n")
}

func (s *PostDecStmt) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	s.Loc.Unparse(w, 0)
	io.WriteString(w, "--;\n")
}

func (s *ReadStmt) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	io.WriteString(w, "cin >> ")
	s.Loc.Unparse(w, 0)
	io.WriteString(w, ";\n")
}

func (s *WriteStmt) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	io.WriteString(w, "cout << ")
	s.Exp.Unparse(w, 0)
	io.WriteString(w, ";\n")
}

func unparseBlock(w io.Writer, indent int, decls []*VarDecl, stmts []Stmt) {
	for _, d := range decls {
		d.Unparse(w, indent)
	}
	for _, s := range stmts {
		s.Unparse(w, indent)
	}
}

func (s *IfStmt) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	io.WriteString(w, "if (")
	s.Cond.Unparse(w, 0)
	io.WriteString(w, ") {\n")
	unparseBlock(w, indent+4, s.Decls, s.Stmts)
	doIndent(w, indent)
	io.WriteString(w, "}\n")
}

func (s *IfElseStmt) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	io.WriteString(w, "if (")
	s.Cond.Unparse(w, 0)
	io.WriteString(w, ") {\n")
	unparseBlock(w, indent+4, s.ThenDecls, s.ThenStmts)
	doIndent(w, indent)
	io.WriteString(w, "}\n")
	doIndent(w, indent)
	io.WriteString(w, "else {\n")
	unparseBlock(w, indent+4, s.ElseDecls, s.ElseStmts)
	doIndent(w, indent)
	io.WriteString(w, "}\n")
}

func (s *WhileStmt) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	io.WriteString(w, "while (")
	s.Cond.Unparse(w, 0)
	io.WriteString(w, ") {\n")
	unparseBlock(w, indent+4, s.Decls, s.Stmts)
	doIndent(w, indent)
	io.WriteString(w, "}\n")
}

func (s *CallStmt) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	s.Call.Unparse(w, 0)
	io.WriteString(w, ";\n")
}

func (s *ReturnStmt) Unparse(w io.Writer, indent int) {
	doIndent(w, indent)
	io.WriteString(w, "return")
	if s.Exp != nil {
		io.WriteString(w, " ")
		s.Exp.Unparse(w, 0)
	}
	io.WriteString(w, ";\n")
}

func (e *IntLit) Unparse(w io.Writer, indent int) {
	fmt.Fprintf(w, "%d", e.Value)
}

func (e *StrLit) Unparse(w io.Writer, indent int) {
	fmt.Fprintf(w, "%q", e.Value)
}

func (e *TrueLit) Unparse(w io.Writer, indent int) {
	io.WriteString(w, "true")
}

func (e *FalseLit) Unparse(w io.Writer, indent int) {
	io.WriteString(w, "false")
}

func (e *Ident) Unparse(w io.Writer, indent int) {
	io.WriteString(w, e.Name)
	if e.Sym != nil {
		io.WriteString(w, "("+e.Sym.Type()+")")
	}
}

func (e *DotAccess) Unparse(w io.Writer, indent int) {
	io.WriteString(w, "(")
	e.Loc.Unparse(w, 0)
	io.WriteString(w, ").")
	e.Id.Unparse(w, 0)
}

func (e *AssignExp) Unparse(w io.Writer, indent int) {
	if indent != -1 {
		io.WriteString(w, "(")
	}
	e.Lhs.Unparse(w, 0)
	io.WriteString(w, " = ")
	e.Rhs.Unparse(w, 0)
	if indent != -1 {
		io.WriteString(w, ")")
	}
}

func (e *CallExp) Unparse(w io.Writer, indent int) {
	io.WriteString(w, e.Id.Name)
	if fn, ok := e.Id.Sym.(*symbols.FnSymbol); ok {
		io.WriteString(w, "("+fn.String()+")")
	}
	io.WriteString(w, "(")
	for i, a := range e.Args {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		a.Unparse(w, 0)
	}
	io.WriteString(w, ")")
}

func (e *UnaryExp) Unparse(w io.Writer, indent int) {
	io.WriteString(w, "("+e.Op)
	e.X.Unparse(w, 0)
	io.WriteString(w, ")")
}

func (e *BinaryExp) Unparse(w io.Writer, indent int) {
	io.WriteString(w, "(")
	e.X.Unparse(w, 0)
	io.WriteString(w, " "+e.Op+" ")
	e.Y.Unparse(w, 0)
	io.WriteString(w, ")")
}
