package cards

import (
	"errors"
	"strings"
	"testing"
)

func TestEncoding(t *testing.T) {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{"comment", Comment{Text: "hello"}, ". hello"},
		{"halt", Halt{}, "H"},
		{"bell", Bell{}, "B"},
		{"print", Print{}, "P"},
		{"add", ArithOp{Op: OpAdd}, "+"},
		{"sub", ArithOp{Op: OpSub}, "-"},
		{"mul", ArithOp{Op: OpMul}, "*"},
		{"div", ArithOp{Op: OpDiv}, "/"},
		{"forward lever", Cond{Direction: Forward, LeverDependent: true, Distance: 3}, "CF?3"},
		{"forward always", Cond{Direction: Forward, Distance: 1}, "CF+1"},
		{"backward lever", Cond{Direction: Backward, LeverDependent: true, Distance: 0}, "CB?0"},
		{"backward always", Cond{Direction: Backward, Distance: 12}, "CB+12"},
		{"num", Num{Slot: 7, Value: 42}, "N7 42"},
		{"negative num", Num{Slot: 0, Value: -3}, "N0 -3"},
		{"load", Load{Slot: 999}, "L999"},
		{"store", Store{Slot: 3}, "S3"},
		{"store prime", Store{Slot: 3, Prime: true}, "S3'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.card.String(); got != tc.expected {
				t.Fatalf("got %q, want %q", got, tc.expected)
			}
			card, err := Parse(tc.expected)
			if err != nil {
				t.Fatal(err)
			}
			if card != tc.card {
				t.Fatalf("got %#v, want %#v", card, tc.card)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, line := range []string{
		"",
		"X",
		"HH",
		"++",
		"C",
		"CX+1",
		"CF!1",
		"CF+",
		"CF+-1",
		"N1",
		"N1 x",
		"Nx 1",
		"L",
		"L-1",
		"S'",
		"Sx",
	} {
		_, err := Parse(line)
		if !errors.Is(err, ErrInvalidCard) {
			t.Fatalf("%q: got %v", line, err)
		}
	}
}

func TestProgramWriteTo(t *testing.T) {
	program := Program{
		Num{Slot: 0, Value: 5},
		ArithOp{Op: OpAdd},
		Load{Slot: 0},
		Load{Slot: 1},
		Print{},
	}
	if program.Len() != 5 {
		t.Fatalf("got %d", program.Len())
	}

	buf := new(strings.Builder)
	n, err := program.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	expected := "N0 5\n+\nL0\nL1\nP\n"
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}
	if n != int64(len(expected)) {
		t.Fatalf("got %d", n)
	}

	decoded, err := ParseProgram(strings.NewReader(expected + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(decoded.Lines(), "\n") != strings.Join(program.Lines(), "\n") {
		t.Fatalf("got %v", decoded.Lines())
	}
}

type shortWriter struct {
	limit int
	buf   strings.Builder
}

var errShortWrite = errors.New("short write")

func (s *shortWriter) Write(data []byte) (int, error) {
	if len(data) > s.limit {
		s.buf.Write(data[:s.limit])
		n := s.limit
		s.limit = 0
		return n, errShortWrite
	}
	s.limit -= len(data)
	return s.buf.Write(data)
}

func TestProgramWriteToFailure(t *testing.T) {
	program := Program{
		Num{Slot: 0, Value: 5},
		Print{},
		Halt{},
	}
	w := &shortWriter{limit: 7}
	n, err := program.WriteTo(w)
	if !errors.Is(err, errShortWrite) {
		t.Fatalf("got %v", err)
	}
	if n != 7 {
		t.Fatalf("got %d", n)
	}
	if w.buf.String() != "N0 5\nP\n" {
		t.Fatalf("got %q", w.buf.String())
	}
}

func TestParseProgramReportsLine(t *testing.T) {
	_, err := ParseProgram(strings.NewReader("H\nB\nQ\n"))
	if !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("got %v", err)
	}
}
