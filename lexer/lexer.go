// Package lexer implements the MiniC scanner.
package lexer

import "github.com/minic-lang/core-compiler/token"

type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// readChar advances the lexer and tracks line/column numbers.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else if l.ch != 0 {
		l.column++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	startLine := l.line
	startCol := l.column

	switch l.ch {
	case '/':
		if l.peekChar() == '/' {
			l.readLineComment()
			return l.NextToken()
		}
		return l.single(token.Slash, startLine, startCol)
	case '(':
		return l.single(token.LParen, startLine, startCol)
	case ')':
		return l.single(token.RParen, startLine, startCol)
	case '{':
		return l.single(token.LBrace, startLine, startCol)
	case '}':
		return l.single(token.RBrace, startLine, startCol)
	case ';':
		return l.single(token.Semicolon, startLine, startCol)
	case ',':
		return l.single(token.Comma, startLine, startCol)
	case '.':
		return l.single(token.Dot, startLine, startCol)
	case '*':
		return l.single(token.Star, startLine, startCol)
	case '+':
		if l.peekChar() == '+' {
			return l.double(token.PlusPlus, startLine, startCol)
		}
		return l.single(token.Plus, startLine, startCol)
	case '-':
		if l.peekChar() == '-' {
			return l.double(token.MinusMin, startLine, startCol)
		}
		return l.single(token.Minus, startLine, startCol)
	case '=':
		if l.peekChar() == '=' {
			return l.double(token.Eq, startLine, startCol)
		}
		return l.single(token.Assign, startLine, startCol)
	case '!':
		if l.peekChar() == '=' {
			return l.double(token.NotEq, startLine, startCol)
		}
		return l.single(token.Not, startLine, startCol)
	case '<':
		if l.peekChar() == '<' {
			return l.double(token.WriteOp, startLine, startCol)
		}
		if l.peekChar() == '=' {
			return l.double(token.LessEq, startLine, startCol)
		}
		return l.single(token.Less, startLine, startCol)
	case '>':
		if l.peekChar() == '>' {
			return l.double(token.ReadOp, startLine, startCol)
		}
		if l.peekChar() == '=' {
			return l.double(token.GreatEq, startLine, startCol)
		}
		return l.single(token.Greater, startLine, startCol)
	case '&':
		if l.peekChar() == '&' {
			return l.double(token.And, startLine, startCol)
		}
		return l.single(token.Illegal, startLine, startCol)
	case '|':
		if l.peekChar() == '|' {
			return l.double(token.Or, startLine, startCol)
		}
		return l.single(token.Illegal, startLine, startCol)
	case '"':
		return l.readString(startLine, startCol)
	case 0:
		return token.Token{Type: token.EOF, Literal: "", Line: startLine, Column: startCol}
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(ident), Literal: ident, Line: startLine, Column: startCol}
		}
		if isDigit(l.ch) {
			return l.readInteger(startLine, startCol)
		}
		return l.single(token.Illegal, startLine, startCol)
	}
}

func (l *Lexer) single(t token.Type, line, col int) token.Token {
	tok := token.Token{Type: t, Literal: string(l.ch), Line: line, Column: col}
	l.readChar()
	return tok
}

func (l *Lexer) double(t token.Type, line, col int) token.Token {
	lit := string(l.ch) + string(l.peekChar())
	l.readChar()
	l.readChar()
	return token.Token{Type: t, Literal: lit, Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\n' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readString(startLine, startCol int) token.Token {
	start := l.position + 1 // skip opening quote
	l.readChar()

	for l.ch != '"' && l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}

	lit := l.input[start:l.position]
	if l.ch != '"' {
		// unterminated string literal
		return token.Token{Type: token.Illegal, Literal: lit, Line: startLine, Column: startCol}
	}
	l.readChar() // consume closing quote
	return token.Token{Type: token.StrLit, Literal: lit, Line: startLine, Column: startCol}
}

func (l *Lexer) readInteger(startLine, startCol int) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.IntLit, Literal: l.input[start:l.position], Line: startLine, Column: startCol}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
