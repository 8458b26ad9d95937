package position

import (
	"strings"
	"testing"
)

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos      Position
		expected string
	}{
		{Position{Filename: "/tmp/prog.por", Line: 3, Column: 7}, "prog.por:3:7"},
		{Position{Filename: "prog.por", Line: 3}, "prog.por:3"},
		{Position{Line: 12, Column: 1}, "12:1"},
		{Position{Line: 5}, "5"},
	}

	for i, tt := range tests {
		if got := tt.pos.String(); got != tt.expected {
			t.Errorf("tests[%d] - expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

func TestSpanValidity(t *testing.T) {
	start := Position{Line: 2, Column: 4}
	end := Position{Line: 2, Column: 9}

	if !(Span{Start: start, End: end}).IsValid() {
		t.Fatal("expected forward span to be valid")
	}
	if (Span{Start: end, End: start}).IsValid() {
		t.Fatal("expected reversed span to be invalid")
	}
}

func TestSourceFileLines(t *testing.T) {
	sf := NewSourceFile("a.por", "programa a;\r\ninicio\nfim.")

	if got := sf.GetLine(1); got != "programa a;" {
		t.Fatalf("expected carriage return to be trimmed, got %q", got)
	}
	if got := sf.GetLine(3); got != "fim." {
		t.Fatalf("expected third line, got %q", got)
	}
	if got := sf.GetLine(4); got != "" {
		t.Fatalf("expected empty string past the end, got %q", got)
	}
}

func TestHighlight(t *testing.T) {
	sf := NewSourceFile("a.por", "x := 1;\ny := x $ 2;\n")

	out := sf.Highlight(Position{Line: 2, Column: 8})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "   1 | x := 1;") {
		t.Errorf("unexpected context line %q", lines[0])
	}
	if lines[2] != "     |        ^" {
		t.Errorf("caret misplaced: %q", lines[2])
	}

	if got := sf.Highlight(Position{Line: 40}); got != "" {
		t.Errorf("expected no output for out-of-range line, got %q", got)
	}
}
