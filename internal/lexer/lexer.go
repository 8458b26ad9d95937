// Package lexer implements the portugol lexical analyzer.
//
// The lexer turns source text into tokens. Illegal characters are recorded as
// recoverable LexicalErrors and scanning continues with the next character,
// so one stray symbol never hides the rest of the file from the parser.
package lexer

import (
	"unicode/utf8"

	"github.com/portugol-lang/portugol/internal/errors"
	"github.com/portugol-lang/portugol/internal/position"
)

// Lexer represents the lexical analyzer
type Lexer struct {
	input        string
	filename     string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number

	errors []*errors.LexicalError
}

// New creates a new lexer instance
func New(input string) *Lexer {
	return NewWithFilename(input, "")
}

// NewWithFilename creates a new lexer instance with filename for error reporting
func NewWithFilename(input, filename string) *Lexer {
	l := &Lexer{
		input:    input,
		filename: filename,
		line:     1,
	}
	l.readChar()
	return l
}

// Tokenize scans the whole input and returns every token up to and including
// EOF, together with the lexical errors reported along the way.
func Tokenize(input, filename string) ([]Token, []*errors.LexicalError) {
	l := NewWithFilename(input, filename)
	tokens := make([]Token, 0, len(input)/3)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return tokens, l.Errors()
}

// Errors returns the lexical errors accumulated so far
func (l *Lexer) Errors() []*errors.LexicalError {
	return l.errors
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents "EOF"
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) currentPosition() position.Position {
	return position.Position{Filename: l.filename, Line: l.line, Column: l.column}
}

// skipIgnored skips blanks, newlines, and comments. A comment starts at '{'
// and runs to the end of the line; it has no closing delimiter.
func (l *Lexer) skipIgnored() {
	for !l.atEOF() {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '{':
			for !l.atEOF() && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

// NextToken scans the input and returns the next token
func (l *Lexer) NextToken() Token {
	for {
		l.skipIgnored()

		pos := l.currentPosition()
		if l.atEOF() {
			return Token{Type: TokenEOF, Pos: pos}
		}

		if tok, ok := l.scanToken(pos); ok {
			return tok
		}
	}
}

// scanToken scans one token starting at the current character. It returns
// false after reporting an illegal character, leaving the lexer positioned
// on the character that follows it.
func (l *Lexer) scanToken(pos position.Position) (Token, bool) {
	var tok Token

	switch l.ch {
	case ':':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(TokenAssign, ":=", pos)
		} else {
			tok = newToken(TokenColon, ":", pos)
		}
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok = newToken(TokenLe, "<=", pos)
		case '>':
			l.readChar()
			tok = newToken(TokenNe, "<>", pos)
		default:
			tok = newToken(TokenLt, "<", pos)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(TokenGe, ">=", pos)
		} else {
			tok = newToken(TokenGt, ">", pos)
		}
	case '=':
		tok = newToken(TokenEq, "=", pos)
	case '+':
		tok = newToken(TokenPlus, "+", pos)
	case '-':
		tok = newToken(TokenMinus, "-", pos)
	case '*':
		tok = newToken(TokenMul, "*", pos)
	case '/':
		tok = newToken(TokenDiv, "/", pos)
	case ',':
		tok = newToken(TokenComma, ",", pos)
	case ';':
		tok = newToken(TokenSemicolon, ";", pos)
	case '.':
		tok = newToken(TokenDot, ".", pos)
	case '(':
		tok = newToken(TokenLParen, "(", pos)
	case ')':
		tok = newToken(TokenRParen, ")", pos)
	case '[':
		tok = newToken(TokenLBracket, "[", pos)
	case ']':
		tok = newToken(TokenRBracket, "]", pos)
	case '"', '\'':
		return l.readString(pos)
	default:
		if isLetter(l.ch) || l.ch == '_' {
			ident := l.readIdentifier()
			return newToken(lookupIdent(ident), ident, pos), true
		}
		if isDigit(l.ch) {
			return newToken(TokenInteger, l.readNumber(), pos), true
		}
		l.illegal(pos)
		return Token{}, false
	}

	l.readChar()
	return tok, true
}

// readIdentifier reads [A-Za-z_][A-Za-z0-9_]*
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a maximal run of decimal digits
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString reads a single- or double-quoted literal. A backslash escapes
// the following character; escapes are kept verbatim in the literal. An
// unterminated string reports its opening quote as illegal and scanning
// resumes right after it.
func (l *Lexer) readString(pos position.Position) (Token, bool) {
	quote := l.ch
	end := -1
	for i := l.readPosition; i < len(l.input); i++ {
		if l.input[i] == '\\' {
			i++
			continue
		}
		if l.input[i] == quote {
			end = i
			break
		}
	}
	if end < 0 {
		l.illegal(pos)
		return Token{}, false
	}

	literal := l.input[l.readPosition:end]
	for l.position < end {
		l.readChar()
	}
	l.readChar() // closing quote
	return newToken(TokenString, literal, pos), true
}

// illegal records the character under the cursor as a lexical error and
// skips it, including any UTF-8 continuation bytes.
func (l *Lexer) illegal(pos position.Position) {
	r, size := utf8.DecodeRuneInString(l.input[l.position:])
	l.errors = append(l.errors, &errors.LexicalError{Char: r, Position: pos})
	for i := 0; i < size; i++ {
		l.readChar()
	}
}

func newToken(tokenType TokenType, literal string, pos position.Position) Token {
	return Token{Type: tokenType, Literal: literal, Pos: pos}
}

// isLetter checks if character is ASCII letter
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if character is ASCII digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
