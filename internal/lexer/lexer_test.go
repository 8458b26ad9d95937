package lexer

import "testing"

func TestBasicTokens(t *testing.T) {
	input := `programa soma;
var x, y: inteiro;
inicio
	x := 3 + 4;
	escrever("total:", x);
fim.`

	tests := []struct {
		expectedType  TokenType
		expectedValue string
	}{
		{TokenPrograma, "programa"},
		{TokenIdentifier, "soma"},
		{TokenSemicolon, ";"},
		{TokenVar, "var"},
		{TokenIdentifier, "x"},
		{TokenComma, ","},
		{TokenIdentifier, "y"},
		{TokenColon, ":"},
		{TokenInteiro, "inteiro"},
		{TokenSemicolon, ";"},
		{TokenInicio, "inicio"},
		{TokenIdentifier, "x"},
		{TokenAssign, ":="},
		{TokenInteger, "3"},
		{TokenPlus, "+"},
		{TokenInteger, "4"},
		{TokenSemicolon, ";"},
		{TokenEscrever, "escrever"},
		{TokenLParen, "("},
		{TokenString, "total:"},
		{TokenComma, ","},
		{TokenIdentifier, "x"},
		{TokenRParen, ")"},
		{TokenSemicolon, ";"},
		{TokenFim, "fim"},
		{TokenDot, "."},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedValue {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Literal)
		}
	}

	if len(l.Errors()) != 0 {
		t.Fatalf("unexpected lexical errors: %v", l.Errors())
	}
}

func TestKeywords(t *testing.T) {
	input := `programa var inteiro logico inicio fim ler escrever se senao entao enquanto faca`

	expected := []TokenType{
		TokenPrograma, TokenVar, TokenInteiro, TokenLogico, TokenInicio, TokenFim,
		TokenLer, TokenEscrever, TokenSe, TokenSenao, TokenEntao, TokenEnquanto, TokenFaca,
		TokenEOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, want, tok.Type)
		}
		if want != TokenEOF && !tok.IsKeyword() {
			t.Fatalf("tests[%d] - %q should be a keyword", i, tok.Literal)
		}
	}

	if got := len(Keywords()); got != 13 {
		t.Fatalf("expected 13 reserved words, got %d", got)
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	tokens, _ := Tokenize("Programa INICIO fim_ fimx", "")
	for i, tok := range tokens[:4] {
		if tok.Type != TokenIdentifier {
			t.Errorf("tokens[%d] - %q should be an identifier, got %s", i, tok.Literal, tok.Type)
		}
	}
}

func TestOperatorsAreGreedy(t *testing.T) {
	tokens, errs := Tokenize(":= : <= < >= > <> = <<>", "")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	expected := []TokenType{
		TokenAssign, TokenColon, TokenLe, TokenLt, TokenGe, TokenGt, TokenNe, TokenEq,
		TokenLt, TokenNe, TokenEOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, want := range expected {
		if tokens[i].Type != want {
			t.Errorf("tokens[%d] - expected=%s, got=%s", i, want, tokens[i].Type)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"ola"`, "ola"},
		{`'ola'`, "ola"},
		{`"diz \"oi\""`, `diz \"oi\"`},
		{`'it\'s'`, `it\'s`},
		{`"aspas 'simples'"`, "aspas 'simples'"},
		{`''`, ""},
	}

	for i, tt := range tests {
		tokens, errs := Tokenize(tt.input, "")
		if len(errs) != 0 {
			t.Fatalf("tests[%d] - unexpected errors: %v", i, errs)
		}
		if tokens[0].Type != TokenString {
			t.Fatalf("tests[%d] - tokentype wrong. got=%s", i, tokens[0].Type)
		}
		if tokens[0].Literal != tt.expected {
			t.Errorf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expected, tokens[0].Literal)
		}
	}
}

func TestIntegersAreMaximalDigitRuns(t *testing.T) {
	tokens, _ := Tokenize("007 42abc", "")

	expected := []Token{
		{Type: TokenInteger, Literal: "007"},
		{Type: TokenInteger, Literal: "42"},
		{Type: TokenIdentifier, Literal: "abc"},
	}
	for i, want := range expected {
		if tokens[i].Type != want.Type || tokens[i].Literal != want.Literal {
			t.Errorf("tokens[%d] - expected=%s %q, got=%s %q",
				i, want.Type, want.Literal, tokens[i].Type, tokens[i].Literal)
		}
	}
}

func TestCommentRunsToEndOfLineOnly(t *testing.T) {
	input := "x := 1; { isto e ignorado\ny := 2; { nao precisa fechar }\nz"

	tokens, errs := Tokenize(input, "")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	var idents []string
	for _, tok := range tokens {
		if tok.Type == TokenIdentifier {
			idents = append(idents, tok.Literal)
		}
	}
	if len(idents) != 3 || idents[0] != "x" || idents[1] != "y" || idents[2] != "z" {
		t.Fatalf("expected identifiers x y z, got %v", idents)
	}

	last := tokens[len(tokens)-2]
	if last.Literal != "z" || last.Pos.Line != 3 {
		t.Fatalf("expected z on line 3, got %v", last)
	}
}

func TestIllegalCharactersAreRecoverable(t *testing.T) {
	input := "x := 1 $ 2;\ny @:= 3;"

	tokens, errs := Tokenize(input, "prog.por")
	if len(errs) != 2 {
		t.Fatalf("expected 2 lexical errors, got %d: %v", len(errs), errs)
	}

	if errs[0].Char != '$' || errs[0].Position.Line != 1 || errs[0].Position.Column != 8 {
		t.Errorf("first error wrong: %+v", errs[0])
	}
	if errs[1].Char != '@' || errs[1].Position.Line != 2 {
		t.Errorf("second error wrong: %+v", errs[1])
	}

	expected := []TokenType{
		TokenIdentifier, TokenAssign, TokenInteger, TokenInteger, TokenSemicolon,
		TokenIdentifier, TokenAssign, TokenInteger, TokenSemicolon, TokenEOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, want := range expected {
		if tokens[i].Type != want {
			t.Errorf("tokens[%d] - expected=%s, got=%s", i, want, tokens[i].Type)
		}
	}
}

func TestMultiByteIllegalCharacter(t *testing.T) {
	tokens, errs := Tokenize("ação", "")
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs[0].Char != 'ç' || errs[1].Char != 'ã' {
		t.Errorf("expected decoded runes, got %q %q", errs[0].Char, errs[1].Char)
	}
	if tokens[0].Literal != "a" || tokens[1].Literal != "o" {
		t.Errorf("unexpected tokens %v", tokens)
	}
}

func TestUnterminatedString(t *testing.T) {
	tokens, errs := Tokenize(`escrever("abc);`, "")
	if len(errs) != 1 || errs[0].Char != '"' {
		t.Fatalf("expected one error for the opening quote, got %v", errs)
	}
	if tokens[2].Type != TokenIdentifier || tokens[2].Literal != "abc" {
		t.Fatalf("expected scanning to resume after the quote, got %v", tokens[2])
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	tokens, _ := Tokenize("a\n  b\n\n\tc", "")

	expected := []struct{ line, column int }{{1, 1}, {2, 3}, {4, 2}}
	for i, want := range expected {
		if tokens[i].Pos.Line != want.line || tokens[i].Pos.Column != want.column {
			t.Errorf("tokens[%d] - expected %d:%d, got %d:%d",
				i, want.line, want.column, tokens[i].Pos.Line, tokens[i].Pos.Column)
		}
	}
}

func TestTokenizeIsRestartable(t *testing.T) {
	src := "se a < b entao escrever(a);"
	first, _ := Tokenize(src, "")
	second, _ := Tokenize(src, "")
	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("tokens[%d] differ: %v vs %v", i, first[i], second[i])
		}
	}
}
