package compiler

import (
	"context"
	"io"

	"github.com/reusee/babbage/babbageconfigs"
	"github.com/reusee/babbage/logs"
	"github.com/reusee/babbage/modes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs babbageconfigs.Module
}

func (Module) Compile(
	logger logs.Logger,
	newSpan logs.NewSpan,
	dividend babbageconfigs.Dividend,
	header babbageconfigs.Header,
	mode modes.Mode,
) Compile {
	compile := New(logger, Options{
		Dividend:        int64(dividend),
		Header:          bool(header),
		CheckInvariants: mode == modes.ModeDevelopment,
	})
	return func(ctx context.Context, name string, source io.Reader) (*Result, error) {
		ctx, _ = newSpan(ctx, "compile "+name)
		return compile(ctx, name, source)
	}
}
