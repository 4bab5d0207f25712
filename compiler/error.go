package compiler

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnterminatedBlock = errors.New("unterminated block")

// LineError attaches the offending source line to a compile error.
type LineError struct {
	Err  error
	Name string
	Line int
	Text string
}

func (l LineError) Error() string {
	var sb strings.Builder
	name := l.Name
	if name == "" {
		name = "<input>"
	}
	fmt.Fprintf(&sb, "%s at %s:%d", l.Err.Error(), name, l.Line)
	if text := strings.TrimSpace(l.Text); text != "" {
		sb.WriteString("\n\t")
		sb.WriteString(text)
	}
	return sb.String()
}

func (l LineError) Unwrap() error {
	return l.Err
}
