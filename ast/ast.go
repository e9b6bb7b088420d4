// Package ast defines the abstract syntax tree for MiniC programs.
//
// The node set is closed: a program is a list of declarations;
// declarations are variables, functions, and struct definitions;
// statements cover assignment, increment/decrement, read/write,
// if/if-else/while, calls, and return; expressions cover literals,
// identifiers, dot access, assignment, calls, and unary/binary operators.
// Identifier nodes carry a nullable back-reference to the symbol they
// resolve to, set once during name resolution and read-only afterward.
package ast

import (
	"io"

	"github.com/minic-lang/core-compiler/symbols"
)

// Node is implemented by every AST node.
type Node interface {
	Unparse(w io.Writer, indent int)
}

// Program is the root of the tree: the top-level declaration list.
type Program struct {
	Decls []Decl
}

// Decl is a top-level or struct-member declaration.
type Decl interface {
	Node
	declNode()
}

// TypeKind discriminates the type specifier variants.
type TypeKind int

const (
	IntType TypeKind = iota
	BoolType
	VoidType
	StructType
)

// TypeSpec is a type annotation on a declaration. Id is set only for
// struct types and names the struct's tag.
type TypeSpec struct {
	Kind TypeKind
	Id   *Ident // struct tag, nil unless Kind == StructType
}

// Name returns the semantic type name: "int", "bool", "void", or the
// struct tag name.
func (t *TypeSpec) Name() string {
	switch t.Kind {
	case IntType:
		return "int"
	case BoolType:
		return "bool"
	case VoidType:
		return "void"
	default:
		return t.Id.Name
	}
}

// VarDecl declares a variable (or struct field).
type VarDecl struct {
	Type *TypeSpec
	Id   *Ident
}

// FnDecl declares a function with its formals and body.
type FnDecl struct {
	ReturnType *TypeSpec
	Id         *Ident
	Formals    []*FormalDecl
	Body       *FnBody
}

// FormalDecl declares one function parameter.
type FormalDecl struct {
	Type *TypeSpec
	Id   *Ident
}

// StructDecl defines a struct type and its fields.
type StructDecl struct {
	Id     *Ident
	Fields []*VarDecl
}

// FnBody is a function body: local declarations followed by statements,
// sharing a single scope.
type FnBody struct {
	Decls []*VarDecl
	Stmts []Stmt
}

func (*VarDecl) declNode()    {}
func (*FnDecl) declNode()     {}
func (*StructDecl) declNode() {}

// Stmt is a statement.
type Stmt interface {
	Node
	stmtNode()
}

type AssignStmt struct {
	Assign *AssignExp
}

type PostIncStmt struct {
	Loc Exp
}

type PostDecStmt struct {
	Loc Exp
}

// ReadStmt is "cin >> loc;".
type ReadStmt struct {
	Loc Exp
}

// WriteStmt is "cout << exp;".
type WriteStmt struct {
	Exp Exp
}

type IfStmt struct {
	Cond  Exp
	Decls []*VarDecl
	Stmts []Stmt
}

type IfElseStmt struct {
	Cond      Exp
	ThenDecls []*VarDecl
	ThenStmts []Stmt
	ElseDecls []*VarDecl
	ElseStmts []Stmt
}

type WhileStmt struct {
	Cond  Exp
	Decls []*VarDecl
	Stmts []Stmt
}

type CallStmt struct {
	Call *CallExp
}

type ReturnStmt struct {
	Exp Exp // possibly nil
}

func (*AssignStmt) stmtNode()  {}
func (*PostIncStmt) stmtNode() {}
func (*PostDecStmt) stmtNode() {}
func (*ReadStmt) stmtNode()    {}
func (*WriteStmt) stmtNode()   {}
func (*IfStmt) stmtNode()      {}
func (*IfElseStmt) stmtNode()  {}
func (*WhileStmt) stmtNode()   {}
func (*CallStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode()  {}

// Exp is an expression. Pos returns the 1-based source position used for
// diagnostics about the expression.
type Exp interface {
	Node
	Pos() (line, col int)
}

type IntLit struct {
	Line   int
	Column int
	Value  int
}

type StrLit struct {
	Line   int
	Column int
	Value  string
}

type TrueLit struct {
	Line   int
	Column int
}

type FalseLit struct {
	Line   int
	Column int
}

// Ident is an identifier occurrence. Sym is the non-owning link to the
// declaration it resolves to; it stays nil when resolution fails.
type Ident struct {
	Line   int
	Column int
	Name   string
	Sym    symbols.Symbol
}

// DotAccess is "loc.field".
type DotAccess struct {
	Loc Exp
	Id  *Ident
}

type AssignExp struct {
	Lhs Exp
	Rhs Exp
}

type CallExp struct {
	Id   *Ident
	Args []Exp
}

type UnaryExp struct {
	Op string // "-" or "!"
	X  Exp
}

type BinaryExp struct {
	Op string // "+" "-" "*" "/" "&&" "||" "==" "!=" "<" ">" "<=" ">="
	X  Exp
	Y  Exp
}

func (e *IntLit) Pos() (int, int)    { return e.Line, e.Column }
func (e *StrLit) Pos() (int, int)    { return e.Line, e.Column }
func (e *TrueLit) Pos() (int, int)   { return e.Line, e.Column }
func (e *FalseLit) Pos() (int, int)  { return e.Line, e.Column }
func (e *Ident) Pos() (int, int)     { return e.Line, e.Column }
func (e *DotAccess) Pos() (int, int) { return e.Id.Line, e.Id.Column }
func (e *AssignExp) Pos() (int, int) { return e.Lhs.Pos() }
func (e *CallExp) Pos() (int, int)   { return e.Id.Line, e.Id.Column }
func (e *UnaryExp) Pos() (int, int)  { return e.X.Pos() }
func (e *BinaryExp) Pos() (int, int) { return e.X.Pos() }
