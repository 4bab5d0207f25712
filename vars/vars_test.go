package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero[int64](0, 0, 7, 1); got != 7 {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero[int64](); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero("", "a"); got != "a" {
		t.Fatalf("got %v", got)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Y":     true,
		"yes":   true,
		"false": false,
		"n":     false,
		"1":     false,
		"":      false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%q: got %v", str, got)
		}
	}
}
