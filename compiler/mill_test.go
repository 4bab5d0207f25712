package compiler

import (
	"bytes"
	"testing"

	"github.com/reusee/babbage/cards"
	"github.com/reusee/babbage/stores"
)

// mill runs decks the way the engine does, for checking compiled programs.
type mill struct {
	store   [stores.Size]int64
	op      cards.Operation
	ingress []int64
	egress  int64
	primed  int64
	lever   bool
	printed []int64
	bells   int
	halted  bool
}

const maxSteps = 1_000_000

// runDeck serializes program and runs the decoded deck.
func runDeck(t *testing.T, program cards.Program) *mill {
	t.Helper()

	buf := new(bytes.Buffer)
	if _, err := program.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	deck, err := cards.ParseProgram(buf)
	if err != nil {
		t.Fatal(err)
	}
	if deck.Len() != program.Len() {
		t.Fatalf("got %d cards, want %d", deck.Len(), program.Len())
	}

	m := new(mill)
	pc := 0
	for steps := 0; pc < len(deck); steps++ {
		if steps > maxSteps {
			t.Fatalf("deck does not terminate")
		}

		card := deck[pc]
		pc++

		switch card := card.(type) {

		case cards.Comment:

		case cards.Halt:
			m.halted = true
			return m

		case cards.Bell:
			m.bells++

		case cards.Num:
			m.store[card.Slot] = card.Value

		case cards.ArithOp:
			m.op = card.Op
			m.ingress = m.ingress[:0]

		case cards.Load:
			m.ingress = append(m.ingress, m.store[card.Slot])
			if len(m.ingress) == 2 {
				m.run(t)
			}

		case cards.Store:
			if card.Prime {
				m.store[card.Slot] = m.primed
			} else {
				m.store[card.Slot] = m.egress
			}

		case cards.Print:
			m.printed = append(m.printed, m.egress)

		case cards.Cond:
			if card.LeverDependent {
				raised := m.lever
				m.lever = false
				if !raised {
					continue
				}
			}
			if card.Direction == cards.Forward {
				pc += card.Distance
			} else {
				pc -= card.Distance
			}
			if pc < 0 || pc > len(deck) {
				t.Fatalf("skip out of deck: %v", card)
			}

		default:
			t.Fatalf("unknown card %T", card)
		}
	}

	return m
}

func (m *mill) run(t *testing.T) {
	a, b := m.ingress[0], m.ingress[1]
	m.ingress = m.ingress[:0]

	switch m.op {

	case cards.OpAdd, cards.OpSub:
		r := a + b
		if m.op == cards.OpSub {
			r = a - b
		}
		m.lever = (r < 0) != (a < 0)
		m.egress = r
		m.primed = r

	case cards.OpMul:
		m.lever = false
		m.egress = a * b
		m.primed = a * b

	case cards.OpDiv:
		if b == 0 {
			m.lever = true
			m.egress = 0
			m.primed = 0
			return
		}
		m.lever = false
		m.primed = a / b
		m.egress = a % b

	default:
		t.Fatalf("no operation selected")
	}
}
