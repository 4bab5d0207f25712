package compiler

import (
	"fmt"

	"github.com/reusee/babbage/cards"
	"github.com/reusee/babbage/stores"
	"github.com/reusee/babbage/syntax"
)

// Cards emitted by a while loop besides its condition and body: the dividend
// number card, the division and its two loads, and the two skips.
const loopOverhead = 6

// compileLines compiles lines from pos until the end line closing the
// innermost open block, or the end of input. It returns the number of lines
// consumed, including the end line.
func (c *compiler) compileLines(pos int) (int, error) {
	start := pos
	for pos < len(c.lines) {
		lineNum := pos + 1
		text := c.lines[pos]
		pos++

		c.logger.DebugContext(c.ctx, "line",
			"num", lineNum,
			"text", text,
		)

		stmt, err := syntax.ParseLine(text)
		if err != nil {
			return 0, c.lineError(lineNum, err)
		}

		switch s := stmt.(type) {

		case syntax.End:
			if len(c.blocks) == 0 {
				return 0, c.lineError(lineNum, fmt.Errorf("%w: end without if or while", ErrUnterminatedBlock))
			}
			c.blocks = c.blocks[:len(c.blocks)-1]
			return pos - start, nil

		case syntax.If:
			n, err := c.compileIf(s, lineNum, pos)
			if err != nil {
				return 0, err
			}
			pos += n

		case syntax.While:
			n, err := c.compileWhile(s, lineNum, pos)
			if err != nil {
				return 0, err
			}
			pos += n

		default:
			if err := c.compileSimple(stmt); err != nil {
				return 0, c.lineError(lineNum, err)
			}

		}

		if c.options.CheckInvariants && len(c.blocks) == 0 {
			if err := c.checkNoTemps(); err != nil {
				return 0, c.lineError(lineNum, err)
			}
		}
	}

	if len(c.blocks) > 0 {
		open := c.blocks[len(c.blocks)-1]
		return 0, c.lineError(open, fmt.Errorf("%w: missing end", ErrUnterminatedBlock))
	}
	return pos - start, nil
}

func (c *compiler) lineError(lineNum int, err error) error {
	if _, ok := err.(LineError); ok {
		return err
	}
	var text string
	if lineNum > 0 && lineNum <= len(c.lines) {
		text = c.lines[lineNum-1]
	}
	return LineError{
		Err:  err,
		Name: c.name,
		Line: lineNum,
		Text: text,
	}
}

func (c *compiler) compileSimple(stmt syntax.Stmt) error {
	switch s := stmt.(type) {

	case syntax.Comment:
		return nil

	case syntax.Halt:
		c.emit(cards.Halt{})
		return nil

	case syntax.Bell:
		c.emit(cards.Bell{})
		return nil

	case syntax.Assign:
		if _, err := c.lookup(s.Name); err != nil && references(s.Value, s.Name) {
			// a first assignment cannot read the variable it defines
			return err
		}
		slot, err := c.variable(s.Name)
		if err != nil {
			return err
		}
		return c.compileExpr(s.Value, slot)

	case syntax.Print:
		return c.compilePrint(s)

	}

	return fmt.Errorf("unsupported statement type: %T", stmt)
}

func references(expr syntax.Expr, name string) bool {
	switch e := expr.(type) {
	case syntax.Var:
		return e.Name == name
	case syntax.Not:
		return references(e.X, name)
	case syntax.Binary:
		return references(e.X, name) || references(e.Y, name)
	}
	return false
}

// compilePrint moves the value onto the egress axis by adding zero, then prints it.
func (c *compiler) compilePrint(s syntax.Print) (err error) {
	temps := c.stores.Temps()
	defer c.releaseTemps(temps, &err)

	value, err := c.operand(s.Value, temps)
	if err != nil {
		return err
	}
	zero, err := temps.New()
	if err != nil {
		return err
	}
	c.emit(
		cards.Num{Slot: zero, Value: 0},
		cards.ArithOp{Op: cards.OpAdd},
		cards.Load{Slot: value},
		cards.Load{Slot: zero},
		cards.Print{},
	)
	return nil
}

// compileTest evaluates cond and divides the dividend by it, raising the
// lever when cond is zero. It returns the number of cards evaluating cond.
// The temps stay live until the block guarded by the test is compiled, so no
// variable of the block shares their columns.
func (c *compiler) compileTest(cond syntax.Expr, temps *stores.Temps) (int, error) {
	condSlot, err := temps.New()
	if err != nil {
		return 0, err
	}
	start := c.currentIP()
	if err := c.compileExpr(cond, condSlot); err != nil {
		return 0, err
	}
	condLen := c.currentIP() - start
	dividend, err := temps.New()
	if err != nil {
		return 0, err
	}
	c.emit(
		cards.Num{Slot: dividend, Value: c.options.Dividend},
		cards.ArithOp{Op: cards.OpDiv},
		cards.Load{Slot: dividend},
		cards.Load{Slot: condSlot},
	)
	return condLen, nil
}

// compileIf skips the block when the condition is zero.
func (c *compiler) compileIf(s syntax.If, lineNum int, pos int) (n int, err error) {
	temps := c.stores.Temps()
	defer c.releaseTemps(temps, &err)

	if _, err := c.compileTest(s.Cond, temps); err != nil {
		return 0, c.lineError(lineNum, err)
	}
	skip := c.emitSkip()

	c.blocks = append(c.blocks, lineNum)
	n, err = c.compileLines(pos)
	if err != nil {
		return 0, err
	}
	c.patchSkip(skip)

	return n, nil
}

// compileWhile re-evaluates the condition before every pass: the body ends
// with an unconditional backward skip to the first card of the condition.
func (c *compiler) compileWhile(s syntax.While, lineNum int, pos int) (n int, err error) {
	if err := c.bindLoopVariables(pos); err != nil {
		return 0, err
	}

	temps := c.stores.Temps()
	defer c.releaseTemps(temps, &err)

	condLen, err := c.compileTest(s.Cond, temps)
	if err != nil {
		return 0, c.lineError(lineNum, err)
	}
	skip := c.emitSkip()

	c.blocks = append(c.blocks, lineNum)
	n, err = c.compileLines(pos)
	if err != nil {
		return 0, err
	}
	bodyLen := c.currentIP() - skip - 1

	c.emit(cards.Cond{
		Direction: cards.Backward,
		Distance:  bodyLen + condLen + loopOverhead,
	})
	c.patchSkip(skip)

	return n, nil
}

// bindLoopVariables binds every variable first assigned in the loop body
// starting at pos, before any temp of the loop is acquired. Cards of the loop
// run again on every pass, so a body variable must not take a column that a
// temp of the same loop writes.
func (c *compiler) bindLoopVariables(pos int) error {
	depth := 0
	for i := pos; i < len(c.lines); i++ {
		stmt, err := syntax.ParseLine(c.lines[i])
		if err != nil {
			// reported when the line is compiled
			continue
		}
		switch s := stmt.(type) {
		case syntax.If, syntax.While:
			depth++
		case syntax.End:
			if depth == 0 {
				return nil
			}
			depth--
		case syntax.Assign:
			if stores.IsKeyword(s.Name) {
				continue
			}
			if _, err := c.stores.Lookup(s.Name); err == nil {
				continue
			}
			slot, err := c.stores.Allocate(s.Name)
			if err != nil {
				return c.lineError(i+1, err)
			}
			c.pending[s.Name] = true
			c.logger.DebugContext(c.ctx, "bind loop variable",
				"variable", s.Name,
				"slot", slot,
			)
		}
	}
	return nil
}
