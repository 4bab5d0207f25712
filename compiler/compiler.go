package compiler

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/babbage/cards"
	"github.com/reusee/babbage/logs"
	"github.com/reusee/babbage/stores"
)

// compiler holds the state of one compilation. Nothing in it is shared
// between compilations.
type compiler struct {
	ctx     context.Context
	logger  logs.Logger
	options Options
	name    string
	lines   []string
	stores  *stores.Allocator
	code    cards.Program
	// source line numbers of the open if/while blocks, innermost last
	blocks []int
	// variables bound ahead of a loop but not assigned yet
	pending map[string]bool
}

func newCompiler(
	ctx context.Context,
	logger logs.Logger,
	options Options,
	name string,
	source string,
) *compiler {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.TrimSuffix(source, "\n")
	var lines []string
	if source != "" {
		lines = strings.Split(source, "\n")
	}
	return &compiler{
		ctx:     ctx,
		logger:  logger,
		options: options,
		name:    name,
		lines:   lines,
		stores:  stores.New(),
		pending: make(map[string]bool),
	}
}

func (c *compiler) emit(cs ...cards.Card) {
	c.code = append(c.code, cs...)
}

func (c *compiler) currentIP() int {
	return len(c.code)
}

// emitSkip emits a lever-dependent forward skip to be patched once its target is known.
func (c *compiler) emitSkip() int {
	ip := c.currentIP()
	c.emit(cards.Cond{
		Direction:      cards.Forward,
		LeverDependent: true,
	})
	return ip
}

// patchSkip points the skip at ip to the current end of the deck.
func (c *compiler) patchSkip(ip int) {
	cond := c.code[ip].(cards.Cond)
	cond.Distance = c.currentIP() - ip - 1
	c.code[ip] = cond
}

// lookup resolves a variable read. Names bound ahead of their first
// assignment are still undefined.
func (c *compiler) lookup(name string) (int, error) {
	if c.pending[name] {
		return 0, fmt.Errorf("%w: %s", stores.ErrUndefinedVariable, name)
	}
	return c.stores.Lookup(name)
}

// variable resolves an assignment target, binding it on first use.
func (c *compiler) variable(name string) (slot int, err error) {
	slot, err = c.stores.Lookup(name)
	if err == nil {
		delete(c.pending, name)
		return slot, nil
	}
	slot, err = c.stores.Allocate(name)
	if err != nil {
		return 0, err
	}
	c.logger.DebugContext(c.ctx, "allocate",
		"variable", name,
		"slot", slot,
	)
	return slot, nil
}

// releaseTemps is deferred by every routine acquiring temps.
func (c *compiler) releaseTemps(temps *stores.Temps, err *error) {
	if e := temps.Release(); e != nil && *err == nil {
		*err = e
	}
}

// checkNoTemps verifies that statement lowering returned every scratch column.
func (c *compiler) checkNoTemps() error {
	for name, slot := range c.stores.Symbols() {
		if stores.IsTempName(name) {
			return fmt.Errorf("temp %s still holds column %d", name, slot)
		}
	}
	return nil
}
