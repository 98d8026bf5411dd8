// Package calc is the plain four-function calculator: no variable
// binding, no substitution, just recursive-descent arithmetic over
// float64, plus right-associative ^ and log(x, base).
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SyntaxError reports malformed calculator input. Pos is a byte offset
// into the source.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

type scanner struct {
	src string
	pos int
}

// Eval parses and evaluates src. Grammar: + and - are left-associative
// over * and /, ^ is right-associative and binds tighter than unary
// minus, log(x, base) is a builtin, parentheses group.
func Eval(src string) (float64, error) {
	s := &scanner{src: src}
	v, err := s.addSub()
	if err != nil {
		return 0, err
	}
	s.skipSpace()
	if s.pos < len(s.src) {
		return 0, &SyntaxError{s.pos, fmt.Sprintf("unexpected %q after expression", s.src[s.pos])}
	}
	return v, nil
}

// Format prints whole results as integers and everything else as the
// shortest float.
func Format(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
	}
}

func (s *scanner) peek() byte {
	s.skipSpace()
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) eat(c byte) bool {
	if s.peek() == c {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) addSub() (float64, error) {
	v, err := s.mulDiv()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case s.eat('+'):
			w, err := s.mulDiv()
			if err != nil {
				return 0, err
			}
			v += w
		case s.eat('-'):
			w, err := s.mulDiv()
			if err != nil {
				return 0, err
			}
			v -= w
		default:
			return v, nil
		}
	}
}

func (s *scanner) mulDiv() (float64, error) {
	v, err := s.unary()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case s.eat('*'):
			w, err := s.unary()
			if err != nil {
				return 0, err
			}
			v *= w
		case s.eat('/'):
			w, err := s.unary()
			if err != nil {
				return 0, err
			}
			v /= w
		default:
			return v, nil
		}
	}
}

func (s *scanner) unary() (float64, error) {
	if s.eat('-') {
		v, err := s.unary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return s.power()
}

func (s *scanner) power() (float64, error) {
	v, err := s.atom()
	if err != nil {
		return 0, err
	}
	if s.eat('^') {
		// Right-associative; the exponent may carry a unary minus.
		w, err := s.unary()
		if err != nil {
			return 0, err
		}
		return math.Pow(v, w), nil
	}
	return v, nil
}

func (s *scanner) atom() (float64, error) {
	c := s.peek()
	switch {
	case c == '(':
		s.pos++
		v, err := s.addSub()
		if err != nil {
			return 0, err
		}
		if !s.eat(')') {
			return 0, &SyntaxError{s.pos, `expected ")"`}
		}
		return v, nil
	case c >= '0' && c <= '9':
		return s.number()
	case c >= 'a' && c <= 'z':
		return s.call()
	case c == 0:
		return 0, &SyntaxError{s.pos, "unexpected end of input"}
	}
	return 0, &SyntaxError{s.pos, fmt.Sprintf("unexpected %q", c)}
}

func (s *scanner) number() (float64, error) {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
			s.pos++
		}
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return 0, &SyntaxError{start, fmt.Sprintf("bad numeric literal %q", s.src[start:s.pos])}
	}
	return v, nil
}

func (s *scanner) call() (float64, error) {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] >= 'a' && s.src[s.pos] <= 'z' {
		s.pos++
	}
	name := s.src[start:s.pos]
	if !strings.EqualFold(name, "log") {
		return 0, &SyntaxError{start, fmt.Sprintf("unknown function %q", name)}
	}
	if !s.eat('(') {
		return 0, &SyntaxError{s.pos, `expected "(" after log`}
	}
	x, err := s.addSub()
	if err != nil {
		return 0, err
	}
	if !s.eat(',') {
		return 0, &SyntaxError{s.pos, `expected "," in log(x, base)`}
	}
	base, err := s.addSub()
	if err != nil {
		return 0, err
	}
	if !s.eat(')') {
		return 0, &SyntaxError{s.pos, `expected ")"`}
	}
	return math.Log(x) / math.Log(base), nil
}
