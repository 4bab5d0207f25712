package syntax

import (
	"strconv"
)

// Expr is a parsed expression. The set of variants is closed.
type Expr interface {
	String() string
	expr()
}

type Literal struct {
	Value int64
}

type Var struct {
	Name string
}

// Not is true iff its operand is exactly zero.
type Not struct {
	X Expr
}

type Binary struct {
	Op BinaryOp
	X  Expr
	Y  Expr
}

var (
	_ Expr = Literal{}
	_ Expr = Var{}
	_ Expr = Not{}
	_ Expr = Binary{}
)

func (Literal) expr() {}
func (Var) expr()     {}
func (Not) expr()     {}
func (Binary) expr()  {}

func (l Literal) String() string {
	return strconv.FormatInt(l.Value, 10)
}

func (v Var) String() string {
	return v.Name
}

func (n Not) String() string {
	return "!" + n.X.String()
}

func (b Binary) String() string {
	return "(" + b.X.String() + " " + string(b.Op) + " " + b.Y.String() + ")"
}

type BinaryOp string

const (
	OpAdd BinaryOp = "+"
	OpSub BinaryOp = "-"
	OpMul BinaryOp = "*"
	OpDiv BinaryOp = "/"
	OpMod BinaryOp = "%"
	OpEq  BinaryOp = "=="
	OpGt  BinaryOp = ">"
	OpLt  BinaryOp = "<"
	OpAnd BinaryOp = "and"
	OpOr  BinaryOp = "or"
)

// longest first
var binaryOps = []BinaryOp{
	OpEq,
	OpAnd,
	OpOr,
	OpAdd,
	OpSub,
	OpMul,
	OpDiv,
	OpMod,
	OpGt,
	OpLt,
}
