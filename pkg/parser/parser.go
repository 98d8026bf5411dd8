// Package parser turns expression strings into lambda.Term trees.
//
// Two grammars are exposed. The extended grammar (Parse) is the lambda
// calculus plus decimal literals and four-function arithmetic:
// application is juxtaposition, left-associative, and binds tighter
// than arithmetic; unary minus binds tighter than * and /, which bind
// tighter than the left-associative + and -; an abstraction body
// extends as far right as the syntax allows. The plain grammar
// (ParsePure) omits the numeric and arithmetic productions entirely.
package parser

import (
	"fmt"
	"strconv"

	"github.com/GabeGiancarlo/CPSC-354/pkg/lambda"
)

type parser struct {
	toks []token
	pos  int
	g    grammar
}

// Parse parses src under the extended grammar.
func Parse(src string) (lambda.Term, error) {
	return parse(src, extended)
}

// ParsePure parses src under the plain grammar.
func ParsePure(src string) (lambda.Term, error) {
	return parse(src, pure)
}

func parse(src string, g grammar) (lambda.Term, error) {
	toks, err := lex(src, g)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, g: g}
	t, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.typ != tokEOF {
		return nil, &SyntaxError{tok.pos, fmt.Sprintf("unexpected %q after expression", tok.val)}
	}
	return t, nil
}

func (p *parser) current() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(typ tokenType, what string) (token, error) {
	tok := p.current()
	if tok.typ != typ {
		return tok, &SyntaxError{tok.pos, fmt.Sprintf("expected %s, got %q", what, tok.val)}
	}
	return p.advance(), nil
}

func (p *parser) parseExpr() (lambda.Term, error) {
	if p.g == pure {
		return p.parseApp()
	}
	return p.parseAddSub()
}

func (p *parser) parseAddSub() (lambda.Term, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for {
		var kind lambda.BinKind
		switch p.current().typ {
		case tokPlus:
			kind = lambda.Plus
		case tokMinus:
			kind = lambda.Minus
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		left = lambda.BinOp{Kind: kind, Left: left, Right: right}
	}
}

func (p *parser) parseMulDiv() (lambda.Term, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var kind lambda.BinKind
		switch p.current().typ {
		case tokStar:
			kind = lambda.Times
		case tokSlash:
			kind = lambda.Div
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = lambda.BinOp{Kind: kind, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (lambda.Term, error) {
	if p.current().typ == tokMinus {
		p.advance()
		op, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return lambda.Neg{Operand: op}, nil
	}
	return p.parseApp()
}

func (p *parser) parseApp() (lambda.Term, error) {
	t, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.startsAtom() {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		t = lambda.App{Fn: t, Arg: arg}
	}
	return t, nil
}

func (p *parser) startsAtom() bool {
	switch p.current().typ {
	case tokName, tokNumber, tokLambda, tokLParen:
		return true
	}
	return false
}

func (p *parser) parseAtom() (lambda.Term, error) {
	tok := p.advance()
	switch tok.typ {
	case tokName:
		return lambda.Var(tok.val), nil
	case tokNumber:
		v, err := strconv.ParseFloat(tok.val, 64)
		if err != nil {
			return nil, &SyntaxError{tok.pos, fmt.Sprintf("bad numeric literal %q", tok.val)}
		}
		return lambda.Num(v), nil
	case tokLambda:
		name, err := p.expect(tokName, "identifier")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokDot, `"."`); err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return lambda.Abs{Param: name.val, Body: body}, nil
	case tokLParen:
		t, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, &SyntaxError{tok.pos, fmt.Sprintf("unexpected %q", tok.val)}
}
