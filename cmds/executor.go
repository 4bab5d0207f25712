package cmds

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/babbage/vars"
)

type Executor struct {
	commands map[string]*Command
	names    []string
}

func NewExecutor() *Executor {
	return &Executor{
		commands: make(map[string]*Command),
	}
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
	p.names = append(p.names, name)
}

// Execute runs the commands named in args. Arguments that do not start with
// a dash and are not consumed by a command are returned as positionals.
func (p *Executor) Execute(args []string) (positionals []string, err error) {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		if name == "--" {
			return append(positionals, args...), nil
		}

		command, ok := p.commands[name]
		if !ok {
			if strings.HasPrefix(name, "-") {
				return nil, fmt.Errorf("unknown flag: %s", name)
			}
			positionals = append(positionals, name)
			continue
		}

		fnType := command.Func.Type()
		var callArgs []reflect.Value
		for i := range fnType.NumIn() {
			if len(args) == 0 {
				return nil, fmt.Errorf("%s: expecting argument, got nothing", name)
			}
			value, err := parseArg(fnType.In(i), args[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			args = args[1:]
			callArgs = append(callArgs, value)
		}
		rets := command.Func.Call(callArgs)
		if len(rets) > 0 && !rets[0].IsNil() {
			return nil, fmt.Errorf("%s: %w", name, rets[0].Interface().(error))
		}
	}
	return positionals, nil
}

func (p *Executor) PrintUsage(w io.Writer) {
	names := slices.Clone(p.names)
	slices.Sort(names)
	for _, name := range names {
		command := p.commands[name]
		line := name
		for i := range command.Func.Type().NumIn() {
			line += " <" + command.Func.Type().In(i).Kind().String() + ">"
		}
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		fmt.Fprintf(w, "  %-24s %s\n", line, command.Description)
	}
}

func parseArg(t reflect.Type, str string) (ret reflect.Value, err error) {
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return ret, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}
