package logs

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// Writer receives diagnostics. Card output never goes here.
type Writer io.Writer

const Prefix = "[LOG] "

func (Module) Writer() Writer {
	return NewPrefixWriter(os.Stderr, Prefix)
}

// PrefixWriter starts every line written through it with a fixed prefix.
type PrefixWriter struct {
	mu          sync.Mutex
	w           io.Writer
	prefix      []byte
	atLineStart bool
}

func NewPrefixWriter(w io.Writer, prefix string) *PrefixWriter {
	return &PrefixWriter{
		w:           w,
		prefix:      []byte(prefix),
		atLineStart: true,
	}
}

func (p *PrefixWriter) Write(data []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := len(data)
	var buf bytes.Buffer
	for len(data) > 0 {
		if p.atLineStart {
			buf.Write(p.prefix)
			p.atLineStart = false
		}
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			buf.Write(data)
			break
		}
		buf.Write(data[:idx+1])
		data = data[idx+1:]
		p.atLineStart = true
	}

	if _, err := p.w.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return total, nil
}
