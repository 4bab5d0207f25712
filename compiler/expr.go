package compiler

import (
	"fmt"

	"github.com/reusee/babbage/cards"
	"github.com/reusee/babbage/stores"
	"github.com/reusee/babbage/syntax"
)

// compileExpr emits cards leaving the value of expr in column out. Every
// temp it acquires is released before it returns.
func (c *compiler) compileExpr(expr syntax.Expr, out int) (err error) {
	switch e := expr.(type) {

	case syntax.Literal:
		c.emit(cards.Num{
			Slot:  out,
			Value: e.Value,
		})
		return nil

	case syntax.Var:
		slot, err := c.lookup(e.Name)
		if err != nil {
			return err
		}
		return c.compileMove(slot, out)

	case syntax.Not:
		return c.compileNot(e, out)

	case syntax.Binary:
		return c.compileBinary(e, out)

	}

	return fmt.Errorf("%w: unsupported expression type %T", syntax.ErrInvalidExpression, expr)
}

// compileMove copies a column by adding zero, the engine has no move card.
func (c *compiler) compileMove(from int, out int) (err error) {
	temps := c.stores.Temps()
	defer c.releaseTemps(temps, &err)

	zero, err := temps.New()
	if err != nil {
		return err
	}
	c.emit(
		cards.Num{Slot: zero, Value: 0},
		cards.ArithOp{Op: cards.OpAdd},
		cards.Load{Slot: from},
		cards.Load{Slot: zero},
		cards.Store{Slot: out},
	)
	return nil
}

// operand returns a column holding the value of expr. Variables are used in
// place; anything else is evaluated into a temp owned by temps.
func (c *compiler) operand(expr syntax.Expr, temps *stores.Temps) (int, error) {
	if v, ok := expr.(syntax.Var); ok {
		return c.lookup(v.Name)
	}
	slot, err := temps.New()
	if err != nil {
		return 0, err
	}
	if err := c.compileExpr(expr, slot); err != nil {
		return 0, err
	}
	return slot, nil
}

// emitLeverSelect stores onLever into out when the run-up lever is raised,
// and the otherwise value when it is not.
func (c *compiler) emitLeverSelect(out int, onLever int64, otherwise int64) {
	c.emit(
		cards.Cond{Direction: cards.Forward, LeverDependent: true, Distance: 2},
		cards.Num{Slot: out, Value: otherwise},
		cards.Cond{Direction: cards.Forward, Distance: 1},
		cards.Num{Slot: out, Value: onLever},
	)
}

// compileNot divides the operand by itself; only zero raises the lever.
func (c *compiler) compileNot(e syntax.Not, out int) (err error) {
	temps := c.stores.Temps()
	defer c.releaseTemps(temps, &err)

	x, err := c.operand(e.X, temps)
	if err != nil {
		return err
	}
	c.emit(
		cards.ArithOp{Op: cards.OpDiv},
		cards.Load{Slot: x},
		cards.Load{Slot: x},
	)
	c.emitLeverSelect(out, 1, 0)
	return nil
}

func (c *compiler) compileBinary(e syntax.Binary, out int) (err error) {

	// forms defined by rewriting
	switch e.Op {

	case syntax.OpLt:
		return c.compileExpr(syntax.Binary{
			Op: syntax.OpGt,
			X:  e.Y,
			Y:  e.X,
		}, out)

	case syntax.OpOr:
		// only meaningful for operands in {0, 1}
		return c.compileExpr(syntax.Not{
			X: syntax.Binary{
				Op: syntax.OpEq,
				X: syntax.Binary{
					Op: syntax.OpAdd,
					X:  e.X,
					Y:  e.Y,
				},
				Y: syntax.Literal{Value: 0},
			},
		}, out)

	case syntax.OpAnd:
		// only meaningful for operands in {0, 1}
		return c.compileExpr(syntax.Binary{
			Op: syntax.OpEq,
			X: syntax.Binary{
				Op: syntax.OpMul,
				X:  e.X,
				Y:  e.Y,
			},
			Y: syntax.Literal{Value: 1},
		}, out)

	}

	temps := c.stores.Temps()
	defer c.releaseTemps(temps, &err)

	x, err := c.operand(e.X, temps)
	if err != nil {
		return err
	}
	y, err := c.operand(e.Y, temps)
	if err != nil {
		return err
	}

	switch e.Op {

	case syntax.OpAdd, syntax.OpSub, syntax.OpMul:
		c.emit(
			cards.ArithOp{Op: cards.Operation(e.Op[0])},
			cards.Load{Slot: x},
			cards.Load{Slot: y},
			cards.Store{Slot: out},
		)

	case syntax.OpDiv, syntax.OpMod:
		c.emit(
			cards.ArithOp{Op: cards.OpDiv},
			cards.Load{Slot: x},
			cards.Load{Slot: y},
			cards.Store{Slot: out, Prime: e.Op == syntax.OpDiv},
		)

	case syntax.OpEq:
		// x / (x - y) divides by zero exactly when x == y
		diff, err := temps.New()
		if err != nil {
			return err
		}
		c.emit(
			cards.ArithOp{Op: cards.OpSub},
			cards.Load{Slot: x},
			cards.Load{Slot: y},
			cards.Store{Slot: diff},
			cards.ArithOp{Op: cards.OpDiv},
			cards.Load{Slot: x},
			cards.Load{Slot: diff},
		)
		c.emitLeverSelect(out, 1, 0)

	case syntax.OpGt:
		// The lever rises when x - y differs in sign from x. Unreliable when
		// x == y or when x is negative.
		diff, err := temps.New()
		if err != nil {
			return err
		}
		c.emit(
			cards.ArithOp{Op: cards.OpSub},
			cards.Load{Slot: x},
			cards.Load{Slot: y},
			cards.Store{Slot: diff},
		)
		c.emitLeverSelect(out, 0, 1)

	default:
		return fmt.Errorf("%w: unknown operator %s", syntax.ErrInvalidExpression, e.Op)

	}

	return nil
}
