package syntax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidExpression = errors.New("invalid expression")

// ParseExpr parses a whole expression.
//
//	expr := integer | identifier | '!' expr | '(' expr op expr ')'
func ParseExpr(src string) (Expr, error) {
	p := &exprParser{
		src: src,
	}
	expr, pos, err := p.parseUnit(p.skipSpace(0))
	if err != nil {
		return nil, err
	}
	if pos = p.skipSpace(pos); pos != len(src) {
		return nil, p.errorf(pos, "unexpected %q", src[pos:])
	}
	return expr, nil
}

type exprParser struct {
	src string
}

func (p *exprParser) errorf(pos int, format string, args ...any) error {
	return fmt.Errorf("%w: %s at column %d in %q",
		ErrInvalidExpression,
		fmt.Sprintf(format, args...),
		pos+1,
		p.src,
	)
}

func (p *exprParser) skipSpace(pos int) int {
	for pos < len(p.src) && isSpace(p.src[pos]) {
		pos++
	}
	return pos
}

// parseUnit parses one operand starting at pos and returns the position after it.
func (p *exprParser) parseUnit(pos int) (Expr, int, error) {
	if pos >= len(p.src) {
		return nil, pos, p.errorf(pos, "empty operand")
	}

	c := p.src[pos]
	switch {

	case c == '!':
		x, end, err := p.parseUnit(p.skipSpace(pos + 1))
		if err != nil {
			return nil, end, err
		}
		return Not{
			X: x,
		}, end, nil

	case c == '(':
		return p.parseBinary(pos)

	case c == '-' || isDigit(c):
		return p.parseLiteral(pos)

	case isLetter(c):
		end := pos
		for end < len(p.src) && isLetter(p.src[end]) {
			end++
		}
		name := p.src[pos:end]
		if name == string(OpAnd) || name == string(OpOr) {
			return nil, pos, p.errorf(pos, "operator %s used as operand", name)
		}
		return Var{
			Name: name,
		}, end, nil

	}

	return nil, pos, p.errorf(pos, "unexpected %q", c)
}

func (p *exprParser) parseLiteral(pos int) (Expr, int, error) {
	end := pos
	if p.src[end] == '-' {
		end++
	}
	digitsStart := end
	for end < len(p.src) && isDigit(p.src[end]) {
		end++
	}
	if end == digitsStart {
		return nil, pos, p.errorf(pos, "malformed number")
	}
	if end < len(p.src) && isLetter(p.src[end]) {
		return nil, pos, p.errorf(end, "malformed number")
	}
	value, err := strconv.ParseInt(p.src[pos:end], 10, 64)
	if err != nil {
		return nil, pos, p.errorf(pos, "%v", err)
	}
	return Literal{
		Value: value,
	}, end, nil
}

// parseBinary parses a bracketed binary form; pos points at the opening bracket.
func (p *exprParser) parseBinary(pos int) (Expr, int, error) {
	closing, err := p.matchParen(pos)
	if err != nil {
		return nil, pos, err
	}

	x, next, err := p.parseUnit(p.skipSpace(pos + 1))
	if err != nil {
		return nil, next, err
	}
	if next >= closing {
		return nil, next, p.errorf(next, "missing operator")
	}

	op, next, err := p.parseOp(p.skipSpace(next))
	if err != nil {
		return nil, next, err
	}

	next = p.skipSpace(next)
	if next >= closing {
		return nil, next, p.errorf(next, "empty operand")
	}
	y, next, err := p.parseUnit(next)
	if err != nil {
		return nil, next, err
	}

	if next = p.skipSpace(next); next != closing {
		return nil, next, p.errorf(next, "unexpected %q", p.src[next:closing])
	}

	return Binary{
		Op: op,
		X:  x,
		Y:  y,
	}, closing + 1, nil
}

func (p *exprParser) parseOp(pos int) (BinaryOp, int, error) {
	rest := p.src[pos:]
	for _, op := range binaryOps {
		if !strings.HasPrefix(rest, string(op)) {
			continue
		}
		end := pos + len(op)
		if isLetter(op[0]) && end < len(p.src) && isLetter(p.src[end]) {
			continue
		}
		return op, end, nil
	}
	return "", pos, p.errorf(pos, "unknown operator")
}

// matchParen returns the position of the bracket closing the one at pos.
func (p *exprParser) matchParen(pos int) (int, error) {
	depth := 0
	for i := pos; i < len(p.src); i++ {
		switch p.src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, p.errorf(pos, "unbalanced brackets")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}
