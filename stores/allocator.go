package stores

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Size is the number of store columns of the engine.
const Size = 1000

var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrResourceExhausted = errors.New("store exhausted")
	ErrReservedName      = errors.New("reserved name")
)

// Keywords cannot be used as variable names.
var Keywords = []string{
	"print",
	"halt",
	"bell",
	"and",
	"or",
	"while",
	"if",
	"end",
}

func IsKeyword(name string) bool {
	return slices.Contains(Keywords, name)
}

// Allocator binds names to store columns. One Allocator serves exactly one
// compilation; it is not safe for concurrent use.
type Allocator struct {
	symbols map[string]int
	used    [Size]bool
	tempSeq int
}

func New() *Allocator {
	return &Allocator{
		symbols: make(map[string]int),
	}
}

// Allocate reserves the lowest free column for name.
func (a *Allocator) Allocate(name string) (int, error) {
	if IsKeyword(name) {
		return 0, fmt.Errorf("%w: %s", ErrReservedName, name)
	}
	if _, ok := a.symbols[name]; ok {
		return 0, fmt.Errorf("%s already allocated", name)
	}
	for slot := range Size {
		if a.used[slot] {
			continue
		}
		a.used[slot] = true
		a.symbols[name] = slot
		return slot, nil
	}
	return 0, fmt.Errorf("%w: no free column for %s", ErrResourceExhausted, name)
}

func (a *Allocator) Release(name string) error {
	slot, ok := a.symbols[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
	}
	delete(a.symbols, name)
	a.used[slot] = false
	return nil
}

func (a *Allocator) Lookup(name string) (int, error) {
	slot, ok := a.symbols[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
	}
	return slot, nil
}

const tempPrefix = "$tmp"

// IsTempName reports whether name was produced by FreshTempName.
func IsTempName(name string) bool {
	return strings.HasPrefix(name, tempPrefix)
}

// FreshTempName returns a name not bound at the time of the call. Temp names
// contain a character identifiers cannot, so they never shadow variables.
func (a *Allocator) FreshTempName() string {
	for {
		a.tempSeq++
		name := tempPrefix + strconv.Itoa(a.tempSeq)
		if _, ok := a.symbols[name]; !ok {
			return name
		}
	}
}

func (a *Allocator) Live() int {
	return len(a.symbols)
}

func (a *Allocator) Symbols() map[string]int {
	return maps.Clone(a.symbols)
}
