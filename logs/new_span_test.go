package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	level.Set(slog.LevelDebug)
	defer level.Set(slog.LevelInfo)

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx, "outer")
		_, span2 := newSpan(ctx1, "inner")

		var lines []string
		for line := range strings.SplitSeq(buf.String(), "\n") {
			if strings.Contains(line, "new span") {
				lines = append(lines, line)
			}
		}
		if len(lines) != 2 {
			t.Fatalf("got %q", buf.String())
		}
		if !strings.Contains(lines[0], "logs.span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(span2)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}

		sentinel := errors.New("boom")
		err := WrapSpan(ctx1, sentinel)
		if !errors.Is(err, sentinel) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), string(span1)) {
			t.Fatalf("got %v", err)
		}
		if WrapSpan(ctx, nil) != nil {
			t.Fatal()
		}
	})
}
