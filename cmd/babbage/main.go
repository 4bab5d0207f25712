package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/babbage/babbageconfigs"
	"github.com/reusee/babbage/cmds"
	"github.com/reusee/babbage/compiler"
	"github.com/reusee/babbage/debugs"
	"github.com/reusee/babbage/logs"
	"github.com/reusee/babbage/modes"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"golang.org/x/term"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var tapFlag = cmds.Switch("-tap", "open a starlark session over the compiled program")

type Module struct {
	dscope.Module
	Compiler compiler.Module
	Debugs   debugs.Module
}

func main() {
	positionals, err := cmds.Execute(os.Args[1:])
	if err != nil {
		exit(err)
	}

	var input io.Reader = os.Stdin
	name := "<stdin>"
	fromFile := false
	if len(positionals) > 0 {
		f, err := os.Open(positionals[0])
		if err != nil {
			exit(wrap(err))
		}
		defer f.Close()
		input = f
		name = positionals[0]
		fromFile = true
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logLevel babbageconfigs.LogLevel,
		logger logs.Logger,
		compile compiler.Compile,
		tap debugs.Tap,
	) {
		if err := logs.SetLevel(string(logLevel)); err != nil {
			exit(err)
		}

		ctx := context.Background()
		res, err := compile(ctx, name, input)
		if err != nil {
			exit(err)
		}

		if _, err := res.Program.WriteTo(os.Stdout); err != nil {
			exit(wrap(err))
		}

		if *tapFlag {
			if !fromFile || !term.IsTerminal(int(os.Stdin.Fd())) {
				logger.WarnContext(ctx, "tap needs a source file and an interactive terminal")
				return
			}
			tap(ctx, name, map[string]any{
				"cards":   res.Program.Lines(),
				"symbols": res.Symbols,
				"lookup": func(name string) int {
					slot, ok := res.Symbols[name]
					if !ok {
						return -1
					}
					return slot
				},
				"theory": compiler.Theory,
			})
		}
	})
}

func exit(err error) {
	w := logs.NewPrefixWriter(os.Stderr, logs.Prefix)
	fmt.Fprintln(w, err)
	os.Exit(1)
}
