package formula

import (
	"strings"
	"unicode"
)

type statement struct {
	target string
	expr   string
	line   int
	column int
	// position of the first rune after "="
	exprLine   int
	exprColumn int
}

type bracket struct {
	r      rune
	line   int
	column int
}

var _keywords = map[string]bool{
	"let": true, "in": true, "not": true, "and": true, "or": true,
	"true": true, "false": true, "nil": true, "matches": true,
	"contains": true, "startsWith": true, "endsWith": true,
	"if": true, "else": true,
}

var _closing = map[rune]rune{')': '(', ']': '[', '}': '{'}

// parse splits a formula into assignments. A statement ends at a newline
// unless a bracket is still open.
func parse(source string) ([]statement, error) {
	src := stripComments([]rune(source))

	var (
		statements []statement
		line       = 1
		column     = 1
		i          int
	)
	advance := func() {
		if src[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
		i++
	}

	for i < len(src) {
		if unicode.IsSpace(src[i]) {
			advance()
			continue
		}

		stmt := statement{line: line, column: column}
		start := i
		for i < len(src) && isIdentRune(src[i], i == start) {
			advance()
		}
		stmt.target = string(src[start:i])
		if stmt.target == "" {
			return nil, newError(ErrSyntax, line, column, "expected a name to assign, got %q", string(src[i]))
		}
		if _keywords[stmt.target] {
			return nil, newError(ErrSyntax, stmt.line, stmt.column, "cannot assign to keyword %q", stmt.target)
		}

		for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
			advance()
		}
		if i >= len(src) || src[i] != '=' || (i+1 < len(src) && src[i+1] == '=') {
			return nil, newError(ErrSyntax, line, column, "expected \"=\" after %q", stmt.target)
		}
		advance()

		stmt.exprLine, stmt.exprColumn = line, column
		exprStart := i

		var (
			stack []bracket
			quote *bracket
		)
	scan:
		for i < len(src) {
			r := src[i]
			if quote != nil {
				switch {
				case r == '\\' && quote.r != '`' && i+1 < len(src):
					advance()
				case r == quote.r:
					quote = nil
				case r == '\n' && quote.r != '`':
					return nil, newError(ErrSyntax, quote.line, quote.column, "unterminated string")
				}
				advance()
				continue
			}

			switch r {
			case '\n':
				if len(stack) == 0 {
					break scan
				}
			case '"', '\'', '`':
				quote = &bracket{r: r, line: line, column: column}
			case '(', '[', '{':
				stack = append(stack, bracket{r: r, line: line, column: column})
			case ')', ']', '}':
				if len(stack) == 0 || stack[len(stack)-1].r != _closing[r] {
					return nil, newError(ErrSyntax, line, column, "unexpected %q", string(r))
				}
				stack = stack[:len(stack)-1]
			}
			advance()
		}

		if quote != nil {
			return nil, newError(ErrSyntax, quote.line, quote.column, "unterminated string")
		}
		if len(stack) > 0 {
			open := stack[len(stack)-1]
			return nil, newError(ErrSyntax, open.line, open.column, "unclosed %q", string(open.r))
		}

		stmt.expr = string(src[exprStart:i])
		if strings.TrimSpace(stmt.expr) == "" {
			return nil, newError(ErrSyntax, stmt.exprLine, stmt.exprColumn, "missing expression after \"=\"")
		}
		statements = append(statements, stmt)
	}

	return statements, nil
}

// stripComments blanks "//" comments so positions stay unchanged.
func stripComments(src []rune) []rune {
	out := make([]rune, len(src))
	copy(out, src)

	var quote rune
	for i := 0; i < len(out); i++ {
		r := out[i]
		if quote != 0 {
			switch {
			case r == '\\' && quote != '`':
				i++
			case r == quote, r == '\n' && quote != '`':
				quote = 0
			}
			continue
		}
		switch {
		case r == '"' || r == '\'' || r == '`':
			quote = r
		case r == '/' && i+1 < len(out) && out[i+1] == '/':
			for ; i < len(out) && out[i] != '\n'; i++ {
				out[i] = ' '
			}
			i--
		}
	}
	return out
}

func isIdentRune(r rune, first bool) bool {
	if r == '_' || unicode.IsLetter(r) {
		return true
	}
	return !first && unicode.IsDigit(r)
}
