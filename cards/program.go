package cards

import (
	"bufio"
	"io"
)

// Program is an ordered card deck. Order is execution order; every card is
// one unit of skip distance regardless of its text.
type Program []Card

func (p Program) Len() int {
	return len(p)
}

func (p Program) Lines() []string {
	ret := make([]string, 0, len(p))
	for _, card := range p {
		ret = append(ret, card.String())
	}
	return ret
}

// WriteTo writes one card per line. n counts the bytes that reached w, also
// when writing fails.
func (p Program) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	var accepted int64
	written := func() int64 {
		return accepted - int64(bw.Buffered())
	}
	for _, card := range p {
		m, err := bw.WriteString(card.String())
		accepted += int64(m)
		if err != nil {
			return written(), err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return written(), err
		}
		accepted++
	}
	if err := bw.Flush(); err != nil {
		return written(), err
	}
	return accepted, nil
}
