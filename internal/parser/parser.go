// Package parser implements the portugol recursive descent parser.
//
// Statements are parsed by recursive descent and expressions by precedence
// climbing (Pratt). Parsing stops at the first syntax error: no recovery is
// attempted and no partial tree is returned.
package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/portugol-lang/portugol/internal/ast"
	"github.com/portugol-lang/portugol/internal/errors"
	"github.com/portugol-lang/portugol/internal/lexer"
	"github.com/portugol-lang/portugol/internal/position"
	"github.com/portugol-lang/portugol/internal/types"
)

// Parser represents the recursive descent parser
type Parser struct {
	tokens   []lexer.Token
	pos      int
	current  lexer.Token
	filename string
}

// bailout carries the first syntax error up to Parse
type bailout struct {
	err *errors.SyntaxError
}

// NewParser creates a parser over a token sequence produced by the lexer.
// The sequence must end with an EOF token; one is appended if it does not.
func NewParser(tokens []lexer.Token, filename string) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TokenEOF {
		var eofPos position.Position
		if len(tokens) > 0 {
			eofPos = tokens[len(tokens)-1].Pos
		}
		tokens = append(tokens, lexer.Token{Type: lexer.TokenEOF, Pos: eofPos})
	}
	p := &Parser{tokens: tokens, filename: filename}
	p.current = p.tokens[0]
	return p
}

// ParseSource lexes and parses src. Lexical errors are returned separately
// because they do not stop the parse.
func ParseSource(src, filename string) (*ast.Program, []*errors.LexicalError, error) {
	tokens, lexErrs := lexer.Tokenize(src, filename)
	program, err := NewParser(tokens, filename).Parse()
	return program, lexErrs, err
}

// Parse parses the token sequence into a Program. On failure the returned
// error is a *errors.SyntaxError and the program is nil.
func (p *Parser) Parse() (program *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			program, err = nil, b.err
		}
	}()

	return p.parseProgram(), nil
}

// nextToken advances the parser to the next token
func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.current = p.tokens[p.pos]
}

// currentTokenIs checks if the current token is of the given type
func (p *Parser) currentTokenIs(tokenType lexer.TokenType) bool {
	return p.current.Type == tokenType
}

// expect consumes the current token if it has the given type and fails
// otherwise
func (p *Parser) expect(tokenType lexer.TokenType, what string) lexer.Token {
	if !p.currentTokenIs(tokenType) {
		p.fail(what)
	}
	tok := p.current
	p.nextToken()
	return tok
}

// fail aborts the parse at the current token
func (p *Parser) fail(expected string) {
	found := p.current.Literal
	if p.currentTokenIs(lexer.TokenEOF) {
		found = errors.EndOfInput
	}
	panic(bailout{&errors.SyntaxError{
		Found:    found,
		Expected: expected,
		Position: p.current.Pos,
	}})
}

// ====== Grammar Rules ======

// parseProgram parses
//
//	programa ID ; DeclList inicio StmtList fim .
func (p *Parser) parseProgram() *ast.Program {
	start := p.expect(lexer.TokenPrograma, "'programa'")
	name := p.expect(lexer.TokenIdentifier, "program name")
	p.expect(lexer.TokenSemicolon, "';'")

	decls := p.parseDeclarations()
	body := p.parseBlock()

	p.expect(lexer.TokenDot, "'.'")
	p.expect(lexer.TokenEOF, "end of input")

	return &ast.Program{
		Name:     ast.Ident{Name: name.Literal, Position: name.Pos},
		Decls:    decls,
		Body:     body,
		Position: start.Pos,
	}
}

// parseDeclarations parses zero or more declaration groups. The first group
// is introduced by var; later groups may repeat var or omit it.
func (p *Parser) parseDeclarations() []*ast.VarDecl {
	var decls []*ast.VarDecl
	if !p.currentTokenIs(lexer.TokenVar) {
		return decls
	}

	for p.currentTokenIs(lexer.TokenVar) || p.currentTokenIs(lexer.TokenIdentifier) {
		start := p.current.Pos
		if p.currentTokenIs(lexer.TokenVar) {
			p.nextToken()
		}
		names := p.parseIdentList()
		p.expect(lexer.TokenColon, "':'")
		typ := p.parseType()
		p.expect(lexer.TokenSemicolon, "';'")

		decls = append(decls, &ast.VarDecl{Names: names, Type: typ, Position: start})
	}

	return decls
}

// parseType parses inteiro | logico
func (p *Parser) parseType() types.Type {
	switch p.current.Type {
	case lexer.TokenInteiro:
		p.nextToken()
		return types.Integer
	case lexer.TokenLogico:
		p.nextToken()
		return types.Boolean
	}
	p.fail("type 'inteiro' or 'logico'")
	return types.Invalid
}

// parseIdentList parses ID (, ID)*
func (p *Parser) parseIdentList() []ast.Ident {
	first := p.expect(lexer.TokenIdentifier, "identifier")
	ids := []ast.Ident{{Name: first.Literal, Position: first.Pos}}

	for p.currentTokenIs(lexer.TokenComma) {
		p.nextToken()
		id := p.expect(lexer.TokenIdentifier, "identifier")
		ids = append(ids, ast.Ident{Name: id.Literal, Position: id.Pos})
	}

	return ids
}

// parseBlock parses inicio StmtList fim
func (p *Parser) parseBlock() *ast.Block {
	start := p.expect(lexer.TokenInicio, "'inicio'")

	statements := make([]ast.Stmt, 0)
	for {
		statements = append(statements, p.parseStatement())
		p.expect(lexer.TokenSemicolon, "';'")
		if p.currentTokenIs(lexer.TokenFim) {
			break
		}
	}
	p.nextToken() // fim

	return &ast.Block{Statements: statements, Position: start.Pos}
}

// parseStatement parses a statement
func (p *Parser) parseStatement() ast.Stmt {
	switch p.current.Type {
	case lexer.TokenIdentifier:
		return p.parseAssign()
	case lexer.TokenLer:
		return p.parseRead()
	case lexer.TokenEscrever:
		return p.parseWrite()
	case lexer.TokenInicio:
		return p.parseBlock()
	case lexer.TokenSe:
		return p.parseIf()
	case lexer.TokenEnquanto:
		return p.parseWhile()
	}
	p.fail("statement")
	return nil
}

// parseAssign parses ID := Expr
func (p *Parser) parseAssign() *ast.Assign {
	target := p.expect(lexer.TokenIdentifier, "identifier")
	p.expect(lexer.TokenAssign, "':='")
	value := p.parseExpression(LOWEST)

	return &ast.Assign{
		Target:   ast.Ident{Name: target.Literal, Position: target.Pos},
		Value:    value,
		Position: target.Pos,
	}
}

// parseRead parses ler ( IdList ) | ler [ ( IdList ) ]
func (p *Parser) parseRead() *ast.Read {
	start := p.expect(lexer.TokenLer, "'ler'")
	bracketed := p.openArgs()
	targets := p.parseIdentList()
	p.closeArgs(bracketed)

	return &ast.Read{Targets: targets, Bracketed: bracketed, Position: start.Pos}
}

// parseWrite parses escrever ( ArgList ) | escrever [ ( ArgList ) ]. Each
// argument is a string literal or an expression, in any order.
func (p *Parser) parseWrite() *ast.Write {
	start := p.expect(lexer.TokenEscrever, "'escrever'")
	bracketed := p.openArgs()

	args := []ast.Expr{p.parseExpression(LOWEST)}
	for p.currentTokenIs(lexer.TokenComma) {
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}
	p.closeArgs(bracketed)

	return &ast.Write{Args: args, Bracketed: bracketed, Position: start.Pos}
}

// openArgs consumes "(" or "[(" and reports whether the bracket form was used
func (p *Parser) openArgs() bool {
	bracketed := false
	if p.currentTokenIs(lexer.TokenLBracket) {
		bracketed = true
		p.nextToken()
	}
	p.expect(lexer.TokenLParen, "'('")
	return bracketed
}

func (p *Parser) closeArgs(bracketed bool) {
	p.expect(lexer.TokenRParen, "')'")
	if bracketed {
		p.expect(lexer.TokenRBracket, "']'")
	}
}

// parseIf parses se Cond entao Stmt [senao Stmt]
func (p *Parser) parseIf() *ast.If {
	start := p.expect(lexer.TokenSe, "'se'")
	cond := p.parseCondition()
	p.expect(lexer.TokenEntao, "'entao'")
	then := p.parseStatement()

	var elseStmt ast.Stmt
	if p.currentTokenIs(lexer.TokenSenao) {
		p.nextToken()
		elseStmt = p.parseStatement()
	}

	return &ast.If{Cond: cond, Then: then, Else: elseStmt, Position: start.Pos}
}

// parseWhile parses enquanto Cond faca Stmt
func (p *Parser) parseWhile() *ast.While {
	start := p.expect(lexer.TokenEnquanto, "'enquanto'")
	cond := p.parseCondition()
	p.expect(lexer.TokenFaca, "'faca'")
	body := p.parseStatement()

	return &ast.While{Cond: cond, Body: body, Position: start.Pos}
}

// parseCondition parses the condition of se and enquanto. It shares the
// operand grammar with ordinary expressions; whether the result is logico is
// decided when the statement executes.
func (p *Parser) parseCondition() ast.Expr {
	return p.parseExpression(LOWEST)
}

// ====== Expression Parsing (Pratt Parser) ======

// Precedence levels for operators, loosest first
type Precedence int

const (
	_ Precedence = iota
	LOWEST
	RELATIONAL // < <= > >= = <> (non-associative)
	SUM        // + -
	PRODUCT    // * /
	PREFIX     // -X (right associative)
)

// precedences maps binary operator tokens to their precedence levels
var precedences = map[lexer.TokenType]Precedence{
	lexer.TokenEq: RELATIONAL,
	lexer.TokenNe: RELATIONAL,
	lexer.TokenLt: RELATIONAL,
	lexer.TokenLe: RELATIONAL,
	lexer.TokenGt: RELATIONAL,
	lexer.TokenGe: RELATIONAL,

	lexer.TokenPlus:  SUM,
	lexer.TokenMinus: SUM,

	lexer.TokenMul: PRODUCT,
	lexer.TokenDiv: PRODUCT,
}

// currentPrecedence returns the precedence of the current token
func (p *Parser) currentPrecedence() Precedence {
	if prec, ok := precedences[p.current.Type]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression parses an expression whose operators all bind tighter
// than precedence
func (p *Parser) parseExpression(precedence Precedence) ast.Expr {
	left := p.parsePrefixExpression()

	for precedence < p.currentPrecedence() {
		left = p.parseBinaryExpression(left)
	}

	return left
}

// parsePrefixExpression parses operands and unary minus
func (p *Parser) parsePrefixExpression() ast.Expr {
	tok := p.current

	switch tok.Type {
	case lexer.TokenIdentifier:
		p.nextToken()
		return &ast.VarRef{Name: tok.Literal, Position: tok.Pos}
	case lexer.TokenInteger:
		return p.parseIntegerLiteral()
	case lexer.TokenString:
		p.nextToken()
		return &ast.StringLiteral{Value: tok.Literal, Position: tok.Pos}
	case lexer.TokenMinus:
		p.nextToken()
		operand := p.parseExpression(PREFIX)
		return &ast.UnaryExpr{Op: ast.OpNeg, Operand: operand, Position: tok.Pos}
	case lexer.TokenLParen:
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		p.expect(lexer.TokenRParen, "')'")
		return expr
	}

	p.fail("expression")
	return nil
}

// parseIntegerLiteral parses an integer literal
func (p *Parser) parseIntegerLiteral() ast.Expr {
	tok := p.current
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.fail(fmt.Sprintf("integer literal no larger than %d", int64(math.MaxInt64)))
	}
	p.nextToken()
	return &ast.IntLiteral{Value: value, Position: tok.Pos}
}

// parseBinaryExpression parses the operator under the cursor and its right
// operand. Arithmetic operators are left associative; relational operators
// are non-associative, so a second comparison at the same level is an error.
func (p *Parser) parseBinaryExpression(left ast.Expr) ast.Expr {
	tok := p.current
	precedence := p.currentPrecedence()
	p.nextToken()

	right := p.parseExpression(precedence)
	expr := &ast.BinaryExpr{
		Op:       ast.Operator(tok.Literal),
		Left:     left,
		Right:    right,
		Position: tok.Pos,
	}

	if precedence == RELATIONAL && p.current.IsRelational() {
		p.fail("end of comparison (relational operators do not chain)")
	}

	return expr
}
