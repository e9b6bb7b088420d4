// Package parser implements a recursive-descent parser for MiniC.
//
// Syntax errors are reported through the diagnostics engine with
// panic-mode recovery: a failed production skips to the next statement or
// declaration boundary so one parse surfaces multiple errors.
package parser

import (
	"fmt"
	"strconv"

	"github.com/minic-lang/core-compiler/ast"
	"github.com/minic-lang/core-compiler/diagnostics"
	"github.com/minic-lang/core-compiler/lexer"
	"github.com/minic-lang/core-compiler/token"
)

type Parser struct {
	l     *lexer.Lexer
	file  string
	diags *diagnostics.DiagnosticEngine

	cur  token.Token
	peek token.Token
}

func New(l *lexer.Lexer, file string, diags *diagnostics.DiagnosticEngine) *Parser {
	p := &Parser{l: l, file: file, diags: diags}
	// Prime cur and peek.
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errorAt(tok token.Token, msg string) {
	p.diags.ErrorAt(p.file, tok.Line, tok.Column, msg)
}

// eat consumes the expected token type, reporting a syntax error and
// leaving the token in place on mismatch.
func (p *Parser) eat(t token.Type) bool {
	if p.cur.Type != t {
		p.errorAt(p.cur, fmt.Sprintf("expected %s, found %q", t, p.cur.Literal))
		return false
	}
	p.next()
	return true
}

// ParseProgram parses the top-level declaration list. The returned tree
// contains every declaration that parsed cleanly; syntax errors are in
// the diagnostics engine.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.cur.Type != token.EOF {
		if d := p.parseDecl(); d != nil {
			prog.Decls = append(prog.Decls, d)
		} else {
			p.syncDecl()
		}
	}
	return prog
}

// syncDecl skips to a plausible start of the next top-level declaration.
func (p *Parser) syncDecl() {
	for p.cur.Type != token.EOF {
		if p.cur.Type == token.Semicolon || p.cur.Type == token.RBrace {
			p.next()
			return
		}
		if p.cur.Type.IsTypeKeyword() {
			return
		}
		p.next()
	}
}

// syncStmt skips past the next ';' or stops at the closing '}'.
func (p *Parser) syncStmt() {
	for p.cur.Type != token.EOF && p.cur.Type != token.RBrace {
		if p.cur.Type == token.Semicolon {
			p.next()
			return
		}
		p.next()
	}
}

func (p *Parser) parseDecl() ast.Decl {
	if !p.cur.Type.IsTypeKeyword() {
		p.errorAt(p.cur, fmt.Sprintf("expected declaration, found %q", p.cur.Literal))
		return nil
	}

	if p.cur.Type == token.Struct {
		p.next()
		id, ok := p.parseIdent()
		if !ok {
			return nil
		}
		if p.cur.Type == token.LBrace {
			return p.parseStructDeclRest(id)
		}
		return p.parseVarOrFn(&ast.TypeSpec{Kind: ast.StructType, Id: id})
	}

	return p.parseVarOrFn(p.parseBasicType())
}

// parseBasicType consumes int/bool/void; the caller guarantees cur is one
// of those.
func (p *Parser) parseBasicType() *ast.TypeSpec {
	var kind ast.TypeKind
	switch p.cur.Type {
	case token.Int:
		kind = ast.IntType
	case token.Bool:
		kind = ast.BoolType
	case token.Void:
		kind = ast.VoidType
	}
	p.next()
	return &ast.TypeSpec{Kind: kind}
}

func (p *Parser) parseType() (*ast.TypeSpec, bool) {
	switch p.cur.Type {
	case token.Int, token.Bool, token.Void:
		return p.parseBasicType(), true
	case token.Struct:
		p.next()
		id, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		return &ast.TypeSpec{Kind: ast.StructType, Id: id}, true
	default:
		p.errorAt(p.cur, fmt.Sprintf("expected type, found %q", p.cur.Literal))
		return nil, false
	}
}

func (p *Parser) parseIdent() (*ast.Ident, bool) {
	if p.cur.Type != token.Ident {
		p.errorAt(p.cur, fmt.Sprintf("expected identifier, found %q", p.cur.Literal))
		return nil, false
	}
	id := &ast.Ident{Line: p.cur.Line, Column: p.cur.Column, Name: p.cur.Literal}
	p.next()
	return id, true
}

func (p *Parser) parseVarOrFn(typ *ast.TypeSpec) ast.Decl {
	id, ok := p.parseIdent()
	if !ok {
		return nil
	}
	switch p.cur.Type {
	case token.Semicolon:
		p.next()
		return &ast.VarDecl{Type: typ, Id: id}
	case token.LParen:
		return p.parseFnDeclRest(typ, id)
	default:
		p.errorAt(p.cur, fmt.Sprintf("expected ';' or '(' after %q", id.Name))
		return nil
	}
}

func (p *Parser) parseStructDeclRest(id *ast.Ident) ast.Decl {
	p.next() // consume '{'
	var fields []*ast.VarDecl
	for p.cur.Type != token.RBrace && p.cur.Type != token.EOF {
		f := p.parseVarDecl()
		if f == nil {
			p.syncStmt()
			continue
		}
		fields = append(fields, f)
	}
	if !p.eat(token.RBrace) {
		return nil
	}
	p.eat(token.Semicolon)
	return &ast.StructDecl{Id: id, Fields: fields}
}

func (p *Parser) parseVarDecl() *ast.VarDecl {
	typ, ok := p.parseType()
	if !ok {
		return nil
	}
	id, ok := p.parseIdent()
	if !ok {
		return nil
	}
	if !p.eat(token.Semicolon) {
		return nil
	}
	return &ast.VarDecl{Type: typ, Id: id}
}

func (p *Parser) parseFnDeclRest(ret *ast.TypeSpec, id *ast.Ident) ast.Decl {
	p.next() // consume '('
	var formals []*ast.FormalDecl
	if p.cur.Type != token.RParen {
		for {
			typ, ok := p.parseType()
			if !ok {
				return nil
			}
			fid, ok := p.parseIdent()
			if !ok {
				return nil
			}
			formals = append(formals, &ast.FormalDecl{Type: typ, Id: fid})
			if p.cur.Type != token.Comma {
				break
			}
			p.next()
		}
	}
	if !p.eat(token.RParen) {
		return nil
	}
	if !p.eat(token.LBrace) {
		return nil
	}
	decls, stmts := p.parseBlockBody()
	if !p.eat(token.RBrace) {
		return nil
	}
	return &ast.FnDecl{
		ReturnType: ret,
		Id:         id,
		Formals:    formals,
		Body:       &ast.FnBody{Decls: decls, Stmts: stmts},
	}
}

// parseBlockBody parses a "declarations then statements" body, the shape
// shared by function bodies and if/else/while branches.
func (p *Parser) parseBlockBody() ([]*ast.VarDecl, []ast.Stmt) {
	var decls []*ast.VarDecl
	var stmts []ast.Stmt

	for p.cur.Type.IsTypeKeyword() {
		d := p.parseVarDecl()
		if d == nil {
			p.syncStmt()
			continue
		}
		decls = append(decls, d)
	}
	for p.cur.Type != token.RBrace && p.cur.Type != token.EOF {
		s := p.parseStmt()
		if s == nil {
			p.syncStmt()
			continue
		}
		stmts = append(stmts, s)
	}
	return decls, stmts
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Type {
	case token.Cin:
		p.next()
		if !p.eat(token.ReadOp) {
			return nil
		}
		loc := p.parseLoc()
		if loc == nil || !p.eat(token.Semicolon) {
			return nil
		}
		return &ast.ReadStmt{Loc: loc}
	case token.Cout:
		p.next()
		if !p.eat(token.WriteOp) {
			return nil
		}
		e := p.parseExp()
		if e == nil || !p.eat(token.Semicolon) {
			return nil
		}
		return &ast.WriteStmt{Exp: e}
	case token.If:
		return p.parseIfStmt()
	case token.While:
		return p.parseWhileStmt()
	case token.Return:
		p.next()
		var e ast.Exp
		if p.cur.Type != token.Semicolon {
			e = p.parseExp()
			if e == nil {
				return nil
			}
		}
		if !p.eat(token.Semicolon) {
			return nil
		}
		return &ast.ReturnStmt{Exp: e}
	case token.Ident:
		return p.parseSimpleStmt()
	default:
		p.errorAt(p.cur, fmt.Sprintf("expected statement, found %q", p.cur.Literal))
		return nil
	}
}

// parseSimpleStmt handles the statements that start with an identifier:
// calls, assignments, and post-increment/decrement.
func (p *Parser) parseSimpleStmt() ast.Stmt {
	if p.peek.Type == token.LParen {
		call := p.parseCallExp()
		if call == nil || !p.eat(token.Semicolon) {
			return nil
		}
		return &ast.CallStmt{Call: call}
	}

	loc := p.parseLoc()
	if loc == nil {
		return nil
	}
	switch p.cur.Type {
	case token.Assign:
		p.next()
		rhs := p.parseExp()
		if rhs == nil || !p.eat(token.Semicolon) {
			return nil
		}
		return &ast.AssignStmt{Assign: &ast.AssignExp{Lhs: loc, Rhs: rhs}}
	case token.PlusPlus:
		p.next()
		if !p.eat(token.Semicolon) {
			return nil
		}
		return &ast.PostIncStmt{Loc: loc}
	case token.MinusMin:
		p.next()
		if !p.eat(token.Semicolon) {
			return nil
		}
		return &ast.PostDecStmt{Loc: loc}
	default:
		p.errorAt(p.cur, fmt.Sprintf("expected '=', '++' or '--', found %q", p.cur.Literal))
		return nil
	}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	p.next() // consume 'if'
	if !p.eat(token.LParen) {
		return nil
	}
	cond := p.parseExp()
	if cond == nil || !p.eat(token.RParen) || !p.eat(token.LBrace) {
		return nil
	}
	thenDecls, thenStmts := p.parseBlockBody()
	if !p.eat(token.RBrace) {
		return nil
	}

	if p.cur.Type != token.Else {
		return &ast.IfStmt{Cond: cond, Decls: thenDecls, Stmts: thenStmts}
	}
	p.next() // consume 'else'
	if !p.eat(token.LBrace) {
		return nil
	}
	elseDecls, elseStmts := p.parseBlockBody()
	if !p.eat(token.RBrace) {
		return nil
	}
	return &ast.IfElseStmt{
		Cond:      cond,
		ThenDecls: thenDecls,
		ThenStmts: thenStmts,
		ElseDecls: elseDecls,
		ElseStmts: elseStmts,
	}
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	p.next() // consume 'while'
	if !p.eat(token.LParen) {
		return nil
	}
	cond := p.parseExp()
	if cond == nil || !p.eat(token.RParen) || !p.eat(token.LBrace) {
		return nil
	}
	decls, stmts := p.parseBlockBody()
	if !p.eat(token.RBrace) {
		return nil
	}
	return &ast.WhileStmt{Cond: cond, Decls: decls, Stmts: stmts}
}

// Expression grammar, lowest precedence first:
// assign, ||, &&, equality, relational, additive, multiplicative, unary.

func (p *Parser) parseExp() ast.Exp {
	return p.parseAssignExp()
}

func (p *Parser) parseAssignExp() ast.Exp {
	lhs := p.parseOr()
	if lhs == nil || p.cur.Type != token.Assign {
		return lhs
	}
	p.next()
	rhs := p.parseAssignExp() // right-associative
	if rhs == nil {
		return nil
	}
	return &ast.AssignExp{Lhs: lhs, Rhs: rhs}
}

func (p *Parser) parseBinary(next func() ast.Exp, ops map[token.Type]string) ast.Exp {
	left := next()
	if left == nil {
		return nil
	}
	for {
		op, ok := ops[p.cur.Type]
		if !ok {
			return left
		}
		p.next()
		right := next()
		if right == nil {
			return nil
		}
		left = &ast.BinaryExp{Op: op, X: left, Y: right}
	}
}

func (p *Parser) parseOr() ast.Exp {
	return p.parseBinary(p.parseAnd, map[token.Type]string{token.Or: "||"})
}

func (p *Parser) parseAnd() ast.Exp {
	return p.parseBinary(p.parseEquality, map[token.Type]string{token.And: "&&"})
}

func (p *Parser) parseEquality() ast.Exp {
	return p.parseBinary(p.parseRelational, map[token.Type]string{
		token.Eq:    "==",
		token.NotEq: "!=",
	})
}

func (p *Parser) parseRelational() ast.Exp {
	return p.parseBinary(p.parseAdditive, map[token.Type]string{
		token.Less:    "<",
		token.Greater: ">",
		token.LessEq:  "<=",
		token.GreatEq: ">=",
	})
}

func (p *Parser) parseAdditive() ast.Exp {
	return p.parseBinary(p.parseMultiplicative, map[token.Type]string{
		token.Plus:  "+",
		token.Minus: "-",
	})
}

func (p *Parser) parseMultiplicative() ast.Exp {
	return p.parseBinary(p.parseUnary, map[token.Type]string{
		token.Star:  "*",
		token.Slash: "/",
	})
}

func (p *Parser) parseUnary() ast.Exp {
	switch p.cur.Type {
	case token.Minus:
		p.next()
		x := p.parseUnary()
		if x == nil {
			return nil
		}
		return &ast.UnaryExp{Op: "-", X: x}
	case token.Not:
		p.next()
		x := p.parseUnary()
		if x == nil {
			return nil
		}
		return &ast.UnaryExp{Op: "!", X: x}
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() ast.Exp {
	switch p.cur.Type {
	case token.IntLit:
		v, err := strconv.Atoi(p.cur.Literal)
		if err != nil {
			p.errorAt(p.cur, "integer literal out of range")
			p.next()
			return nil
		}
		e := &ast.IntLit{Line: p.cur.Line, Column: p.cur.Column, Value: v}
		p.next()
		return e
	case token.StrLit:
		e := &ast.StrLit{Line: p.cur.Line, Column: p.cur.Column, Value: p.cur.Literal}
		p.next()
		return e
	case token.True:
		e := &ast.TrueLit{Line: p.cur.Line, Column: p.cur.Column}
		p.next()
		return e
	case token.False:
		e := &ast.FalseLit{Line: p.cur.Line, Column: p.cur.Column}
		p.next()
		return e
	case token.LParen:
		p.next()
		e := p.parseExp()
		if e == nil || !p.eat(token.RParen) {
			return nil
		}
		return e
	case token.Ident:
		if p.peek.Type == token.LParen {
			call := p.parseCallExp()
			if call == nil {
				return nil
			}
			return call
		}
		return p.parseLoc()
	default:
		p.errorAt(p.cur, fmt.Sprintf("expected expression, found %q", p.cur.Literal))
		return nil
	}
}

// parseLoc parses an identifier followed by any chain of field accesses.
func (p *Parser) parseLoc() ast.Exp {
	id, ok := p.parseIdent()
	if !ok {
		return nil
	}
	var e ast.Exp = id
	for p.cur.Type == token.Dot {
		p.next()
		field, ok := p.parseIdent()
		if !ok {
			return nil
		}
		e = &ast.DotAccess{Loc: e, Id: field}
	}
	return e
}

func (p *Parser) parseCallExp() *ast.CallExp {
	id, ok := p.parseIdent()
	if !ok {
		return nil
	}
	if !p.eat(token.LParen) {
		return nil
	}
	var args []ast.Exp
	if p.cur.Type != token.RParen {
		for {
			a := p.parseExp()
			if a == nil {
				return nil
			}
			args = append(args, a)
			if p.cur.Type != token.Comma {
				break
			}
			p.next()
		}
	}
	if !p.eat(token.RParen) {
		return nil
	}
	return &ast.CallExp{Id: id, Args: args}
}
