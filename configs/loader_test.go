package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
str?: string
num?: int
list?: [...int]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderPriority(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	if str := First[string](loader, "str"); str != "bar" {
		t.Fatalf("got %v", str)
	}
	if num := First[int](loader, "num"); num != 42 {
		t.Fatalf("got %v", num)
	}
	if num := First[int](loader, "missing"); num != 0 {
		t.Fatalf("got %v", num)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/nope.cue",
	}, testSchema)
	var str string
	if err := loader.AssignFirst("str", &str); err == nil {
		t.Fatal("should error")
	}
}
