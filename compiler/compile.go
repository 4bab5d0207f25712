package compiler

import (
	"context"
	"io"

	"github.com/reusee/babbage/cards"
	"github.com/reusee/babbage/logs"
)

type Options struct {
	// Dividend is divided by if/while conditions, it must not be zero
	Dividend int64
	// Header emits a comment card naming the source first
	Header bool
	// CheckInvariants verifies after every top level statement that all
	// temps were released
	CheckInvariants bool
}

type Result struct {
	Program cards.Program
	// Symbols maps every variable to its column
	Symbols map[string]int
}

// Compile translates a whole source. Each call uses its own allocator, so
// concurrent calls do not interfere. On error no program is returned.
type Compile func(ctx context.Context, name string, source io.Reader) (*Result, error)

func New(logger logs.Logger, options Options) Compile {
	if options.Dividend == 0 {
		options.Dividend = 1
	}

	return func(ctx context.Context, name string, source io.Reader) (_ *Result, err error) {
		defer func() {
			if err != nil {
				logger.ErrorContext(ctx, "compile failed",
					"name", name,
					"error", err,
				)
				err = logs.WrapSpan(ctx, err)
			}
		}()

		content, err := io.ReadAll(source)
		if err != nil {
			return nil, err
		}

		c := newCompiler(ctx, logger, options, name, string(content))
		if options.Header {
			c.emit(cards.Comment{
				Text: name,
			})
		}
		if _, err := c.compileLines(0); err != nil {
			return nil, err
		}

		logger.DebugContext(ctx, "compiled",
			"name", name,
			"lines", len(c.lines),
			"cards", c.code.Len(),
			"variables", c.stores.Live(),
		)

		return &Result{
			Program: c.code,
			Symbols: c.stores.Symbols(),
		}, nil
	}
}
