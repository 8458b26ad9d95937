package position

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Highlight renders the source line holding pos with a caret under the
// offending column, preceded by one line of context.
//
//	   3 | x := 1;
//	   4 | y := x $ 2;
//	     |        ^
func (sf *SourceFile) Highlight(pos Position) string {
	if sf == nil || !pos.IsValid() || pos.Line > len(sf.Lines) {
		return ""
	}

	var result strings.Builder

	startLine := max(1, pos.Line-1)
	for lineNum := startLine; lineNum <= pos.Line; lineNum++ {
		result.WriteString(fmt.Sprintf("%4d | %s\n", lineNum, sf.GetLine(lineNum)))
	}

	if pos.Column > 0 {
		line := sf.GetLine(pos.Line)
		result.WriteString("     | ")
		result.WriteString(caretPadding(line, pos.Column))
		result.WriteString("^\n")
	}

	return result.String()
}

// caretPadding reproduces the leading whitespace of line up to column so the
// caret stays aligned when the line is indented with tabs.
func caretPadding(line string, column int) string {
	var pad strings.Builder
	col := 1
	for _, r := range line {
		if col >= column {
			break
		}
		if r == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteByte(' ')
		}
		col++
	}
	if rest := column - 1 - utf8.RuneCountInString(line); rest > 0 {
		pad.WriteString(strings.Repeat(" ", rest))
	}
	return pad.String()
}
