package syntax

import (
	"fmt"
	"regexp"
	"strings"
)

// Stmt is one classified source line. The set of variants is closed.
type Stmt interface {
	stmt()
}

type Assign struct {
	Name  string
	Value Expr
}

type Print struct {
	Value Expr
}

type If struct {
	Cond Expr
}

type While struct {
	Cond Expr
}

type Halt struct{}

type Bell struct{}

// Comment also stands for blank lines.
type Comment struct {
	Text string
}

type End struct{}

var (
	_ Stmt = Assign{}
	_ Stmt = Print{}
	_ Stmt = If{}
	_ Stmt = While{}
	_ Stmt = Halt{}
	_ Stmt = Bell{}
	_ Stmt = Comment{}
	_ Stmt = End{}
)

func (Assign) stmt()  {}
func (Print) stmt()   {}
func (If) stmt()      {}
func (While) stmt()   {}
func (Halt) stmt()    {}
func (Bell) stmt()    {}
func (Comment) stmt() {}
func (End) stmt()     {}

var (
	assignPattern  = regexp.MustCompile(`^([a-z]+)\s*=\s*(.*)$`)
	keywordPattern = regexp.MustCompile(`^(print|if|while)\b\s*(.*)$`)
)

// ParseLine classifies one source line.
func ParseLine(line string) (Stmt, error) {
	line = strings.TrimSpace(line)

	switch line {
	case "":
		return Comment{}, nil
	case "halt":
		return Halt{}, nil
	case "bell":
		return Bell{}, nil
	case "end":
		return End{}, nil
	}

	if text, ok := strings.CutPrefix(line, "#"); ok {
		return Comment{
			Text: strings.TrimSpace(text),
		}, nil
	}

	if match := assignPattern.FindStringSubmatch(line); match != nil {
		value, err := ParseExpr(match[2])
		if err != nil {
			return nil, err
		}
		return Assign{
			Name:  match[1],
			Value: value,
		}, nil
	}

	if match := keywordPattern.FindStringSubmatch(line); match != nil {
		expr, err := ParseExpr(match[2])
		if err != nil {
			return nil, err
		}
		switch match[1] {
		case "print":
			return Print{
				Value: expr,
			}, nil
		case "if":
			return If{
				Cond: expr,
			}, nil
		case "while":
			return While{
				Cond: expr,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: unrecognized statement %q", ErrInvalidExpression, line)
}
