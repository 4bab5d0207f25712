package logs

import (
	"bytes"
	"testing"
)

func TestPrefixWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewPrefixWriter(buf, Prefix)

	for _, chunk := range []string{
		"first line\nsecond ",
		"line\n",
		"",
		"third\n\n",
	} {
		n, err := w.Write([]byte(chunk))
		if err != nil {
			t.Fatal(err)
		}
		if n != len(chunk) {
			t.Fatalf("got %d", n)
		}
	}

	expected := "[LOG] first line\n[LOG] second line\n[LOG] third\n[LOG] \n"
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}
}
