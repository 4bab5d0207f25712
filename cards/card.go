package cards

import (
	"fmt"
	"strconv"
)

// Card is one instruction of the engine. The set of variants is closed.
type Card interface {
	fmt.Stringer
	card()
}

type Comment struct {
	Text string
}

type Halt struct{}

type Bell struct{}

type Print struct{}

// ArithOp selects the operation of the mill for the following loads.
type ArithOp struct {
	Op Operation
}

// Cond skips Distance cards in Direction. When LeverDependent is set the
// skip only happens if the run-up lever was raised.
type Cond struct {
	Direction      Direction
	LeverDependent bool
	Distance       int
}

// Num places Value into the store column Slot.
type Num struct {
	Slot  int
	Value int64
}

// Load transfers a store column onto the next ingress axis.
type Load struct {
	Slot int
}

// Store transfers the egress axis into a store column. Prime selects the
// primed egress, which carries the quotient of a division.
type Store struct {
	Slot  int
	Prime bool
}

var (
	_ Card = Comment{}
	_ Card = Halt{}
	_ Card = Bell{}
	_ Card = Print{}
	_ Card = ArithOp{}
	_ Card = Cond{}
	_ Card = Num{}
	_ Card = Load{}
	_ Card = Store{}
)

func (Comment) card() {}
func (Halt) card()    {}
func (Bell) card()    {}
func (Print) card()   {}
func (ArithOp) card() {}
func (Cond) card()    {}
func (Num) card()     {}
func (Load) card()    {}
func (Store) card()   {}

func (c Comment) String() string {
	return ". " + c.Text
}

func (Halt) String() string {
	return "H"
}

func (Bell) String() string {
	return "B"
}

func (Print) String() string {
	return "P"
}

func (a ArithOp) String() string {
	return string(a.Op)
}

func (c Cond) String() string {
	mode := "+"
	if c.LeverDependent {
		mode = "?"
	}
	return "C" + string(c.Direction) + mode + strconv.Itoa(c.Distance)
}

func (n Num) String() string {
	return "N" + strconv.Itoa(n.Slot) + " " + strconv.FormatInt(n.Value, 10)
}

func (l Load) String() string {
	return "L" + strconv.Itoa(l.Slot)
}

func (s Store) String() string {
	if s.Prime {
		return "S" + strconv.Itoa(s.Slot) + "'"
	}
	return "S" + strconv.Itoa(s.Slot)
}
