// Package token defines the lexical tokens of the MiniC language.
package token

type Type string

const (
	// Punctuation
	LParen    Type = "LPAREN"    // (
	RParen    Type = "RPAREN"    // )
	LBrace    Type = "LBRACE"    // {
	RBrace    Type = "RBRACE"    // }
	Semicolon Type = "SEMICOLON" // ;
	Comma     Type = "COMMA"     // ,
	Dot       Type = "DOT"       // .

	// Operators
	Assign   Type = "ASSIGN"   // =
	Plus     Type = "PLUS"     // +
	Minus    Type = "MINUS"    // -
	Star     Type = "STAR"     // *
	Slash    Type = "SLASH"    // /
	Not      Type = "NOT"      // !
	PlusPlus Type = "PLUSPLUS" // ++
	MinusMin Type = "MINUSMIN" // --
	ReadOp   Type = "READOP"   // >>
	WriteOp  Type = "WRITEOP"  // <<
	And      Type = "AND"      // &&
	Or       Type = "OR"       // ||
	Eq       Type = "EQ"       // ==
	NotEq    Type = "NOTEQ"    // !=
	Less     Type = "LESS"     // <
	Greater  Type = "GREATER"  // >
	LessEq   Type = "LESSEQ"   // <=
	GreatEq  Type = "GREATEQ"  // >=

	// Keywords
	Int    Type = "INT"
	Bool   Type = "BOOL"
	Void   Type = "VOID"
	Struct Type = "STRUCT"
	If     Type = "IF"
	Else   Type = "ELSE"
	While  Type = "WHILE"
	Return Type = "RETURN"
	True   Type = "TRUE"
	False  Type = "FALSE"
	Cin    Type = "CIN"
	Cout   Type = "COUT"

	// Literals & identifiers
	IntLit Type = "INTLIT"
	StrLit Type = "STRLIT"
	Ident  Type = "IDENT"

	// Special
	EOF     Type = "EOF"
	Illegal Type = "ILLEGAL"
)

// Token is one lexical unit with its 1-based source position.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]Type{
	"int":    Int,
	"bool":   Bool,
	"void":   Void,
	"struct": Struct,
	"if":     If,
	"else":   Else,
	"while":  While,
	"return": Return,
	"true":   True,
	"false":  False,
	"cin":    Cin,
	"cout":   Cout,
}

// LookupIdent returns the keyword type for ident, or Ident if it is a
// user-defined name.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return Ident
}

// IsTypeKeyword reports whether t starts a type specifier.
func (t Type) IsTypeKeyword() bool {
	return t == Int || t == Bool || t == Void || t == Struct
}
