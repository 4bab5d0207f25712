package cmds

import (
	"io"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) ([]string, error) {
	return GlobalExecutor.Execute(args)
}

func PrintUsage(w io.Writer) {
	GlobalExecutor.PrintUsage(w)
}

func init() {
	Define("-h", Func(func() {
		PrintUsage(os.Stdout)
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("-help", "--help"))
}

// Var defines a flag taking one argument and returns where it is stored.
func Var[T any](name string, desc string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))
	return &value
}

// Switch defines name to set and !name to clear.
func Switch(name string, desc string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}
