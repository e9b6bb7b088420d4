package sema

import (
	"github.com/minic-lang/core-compiler/ast"
	"github.com/minic-lang/core-compiler/symbols"
)

func (r *Resolver) stmt(s ast.Stmt, table *symbols.Table) {
	switch s := s.(type) {
	case *ast.AssignStmt:
		r.exp(s.Assign, table)
	case *ast.PostIncStmt:
		r.exp(s.Loc, table)
	case *ast.PostDecStmt:
		r.exp(s.Loc, table)
	case *ast.ReadStmt:
		r.exp(s.Loc, table)
	case *ast.WriteStmt:
		r.exp(s.Exp, table)
	case *ast.IfStmt:
		r.exp(s.Cond, table)
		r.block(s.Decls, s.Stmts, table)
	case *ast.IfElseStmt:
		// Each branch gets its own scope, pushed and popped in sequence.
		r.exp(s.Cond, table)
		r.block(s.ThenDecls, s.ThenStmts, table)
		r.block(s.ElseDecls, s.ElseStmts, table)
	case *ast.WhileStmt:
		r.exp(s.Cond, table)
		r.block(s.Decls, s.Stmts, table)
	case *ast.CallStmt:
		r.exp(s.Call, table)
	case *ast.ReturnStmt:
		if s.Exp != nil {
			r.exp(s.Exp, table)
		}
	}
}

// block resolves one branch body inside a fresh scope, popped before
// control returns to the statement's siblings.
func (r *Resolver) block(decls []*ast.VarDecl, stmts []ast.Stmt, table *symbols.Table) {
	table.AddScope()
	for _, d := range decls {
		r.varDecl(d, table, table)
	}
	for _, s := range stmts {
		r.stmt(s, table)
	}
	r.popScope(table)
}
