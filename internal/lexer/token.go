package lexer

import (
	"fmt"

	"github.com/portugol-lang/portugol/internal/position"
)

// TokenType represents the type of a token
type TokenType int

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

const (
	TokenEOF TokenType = iota

	// literals
	TokenIdentifier
	TokenInteger
	TokenString

	// keywords
	TokenPrograma
	TokenVar
	TokenInteiro
	TokenLogico
	TokenInicio
	TokenFim
	TokenLer
	TokenEscrever
	TokenSe
	TokenSenao
	TokenEntao
	TokenEnquanto
	TokenFaca

	// operators
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenAssign
	TokenEq
	TokenNe
	TokenLt
	TokenLe
	TokenGt
	TokenGe

	// punctuation
	TokenComma
	TokenSemicolon
	TokenColon
	TokenDot
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
)

// Token represents a lexical token with position information
type Token struct {
	Type    TokenType
	Literal string
	Pos     position.Position
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q, Line: %d, Column: %d}",
		t.Type, t.Literal, t.Pos.Line, t.Pos.Column)
}

// IsKeyword reports whether the token is a reserved word
func (t Token) IsKeyword() bool {
	return t.Type >= TokenPrograma && t.Type <= TokenFaca
}

// IsRelational reports whether the token is one of the six comparison operators
func (t Token) IsRelational() bool {
	return t.Type >= TokenEq && t.Type <= TokenGe
}

var tokenNames = map[TokenType]string{
	TokenEOF: "EOF",

	TokenIdentifier: "ID",
	TokenInteger:    "NUM",
	TokenString:     "STR",

	TokenPrograma: "PROGRAMA",
	TokenVar:      "VAR",
	TokenInteiro:  "INTEIRO",
	TokenLogico:   "LOGICO",
	TokenInicio:   "INICIO",
	TokenFim:      "FIM",
	TokenLer:      "LER",
	TokenEscrever: "ESCREVER",
	TokenSe:       "SE",
	TokenSenao:    "SENAO",
	TokenEntao:    "ENTAO",
	TokenEnquanto: "ENQUANTO",
	TokenFaca:     "FACA",

	TokenPlus:   "MAIS",
	TokenMinus:  "MENOS",
	TokenMul:    "MULT",
	TokenDiv:    "DIV",
	TokenAssign: "ATRIB",
	TokenEq:     "EQ",
	TokenNe:     "NEQ",
	TokenLt:     "LT",
	TokenLe:     "LE",
	TokenGt:     "GT",
	TokenGe:     "GE",

	TokenComma:     "VIRG",
	TokenSemicolon: "PONTOEVIRG",
	TokenColon:     "DOISPONTOS",
	TokenDot:       "PONTO",
	TokenLParen:    "LPAREN",
	TokenRParen:    "RPAREN",
	TokenLBracket:  "LBRACK",
	TokenRBracket:  "RBRACK",
}

// keywords maps reserved words to their token types
var keywords = map[string]TokenType{
	"programa": TokenPrograma,
	"var":      TokenVar,
	"inteiro":  TokenInteiro,
	"logico":   TokenLogico,
	"inicio":   TokenInicio,
	"fim":      TokenFim,
	"ler":      TokenLer,
	"escrever": TokenEscrever,
	"se":       TokenSe,
	"senao":    TokenSenao,
	"entao":    TokenEntao,
	"enquanto": TokenEnquanto,
	"faca":     TokenFaca,
}

// lookupIdent checks if identifier is keyword
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}

// Keywords returns the reserved words in declaration order of their token types
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for tt := TokenPrograma; tt <= TokenFaca; tt++ {
		for word, kw := range keywords {
			if kw == tt {
				words = append(words, word)
			}
		}
	}
	return words
}
