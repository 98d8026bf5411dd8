package parser

import (
	"fmt"
	"unicode/utf8"
)

type tokenType uint8

const (
	tokEOF tokenType = iota
	tokName
	tokNumber
	tokLambda // \ or λ
	tokDot
	tokLParen
	tokRParen
	tokPlus
	tokMinus
	tokStar
	tokSlash
)

type token struct {
	typ tokenType
	val string
	pos int
}

// SyntaxError reports malformed input text. Pos is a byte offset into
// the source. The evaluator core never sees a term that failed here.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

type grammar uint8

const (
	pure     grammar = iota // identifiers and binders only
	extended                // plus numeric literals and arithmetic
)

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// lex tokenizes src. Identifiers match [A-Za-z][A-Za-z0-9]*. A decimal
// literal's fractional part requires a digit after the dot, so the
// abstraction dot in "\x.1" never lexes into a number. Under the pure
// grammar, digits and arithmetic operators are syntax errors.
func lex(src string, g grammar) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '\\':
			toks = append(toks, token{tokLambda, `\`, i})
			i++
		case c == '.':
			toks = append(toks, token{tokDot, ".", i})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case isLetter(c):
			j := i + 1
			for j < len(src) && (isLetter(src[j]) || isDigit(src[j])) {
				j++
			}
			toks = append(toks, token{tokName, src[i:j], i})
			i = j
		case isDigit(c):
			if g == pure {
				return nil, &SyntaxError{i, fmt.Sprintf("unexpected character %q", c)}
			}
			j := i + 1
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			if j+1 < len(src) && src[j] == '.' && isDigit(src[j+1]) {
				j += 2
				for j < len(src) && isDigit(src[j]) {
					j++
				}
			}
			toks = append(toks, token{tokNumber, src[i:j], i})
			i = j
		case c == '+' || c == '-' || c == '*' || c == '/':
			if g == pure {
				return nil, &SyntaxError{i, fmt.Sprintf("unexpected character %q", c)}
			}
			var typ tokenType
			switch c {
			case '+':
				typ = tokPlus
			case '-':
				typ = tokMinus
			case '*':
				typ = tokStar
			case '/':
				typ = tokSlash
			}
			toks = append(toks, token{typ, string(c), i})
			i++
		default:
			r, size := utf8.DecodeRuneInString(src[i:])
			if r == 'λ' {
				toks = append(toks, token{tokLambda, "λ", i})
				i += size
				continue
			}
			return nil, &SyntaxError{i, fmt.Sprintf("unexpected character %q", r)}
		}
	}
	toks = append(toks, token{tokEOF, "EOF", len(src)})
	return toks, nil
}
