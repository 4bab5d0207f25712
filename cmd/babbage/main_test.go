package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const runMainEnv = "BABBAGE_RUN_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) != "" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runBabbage runs the test binary as the command line tool.
func runBabbage(t *testing.T, stdin string, args ...string) (stdout string, stderr string, code int) {
	t.Helper()
	cmd := exec.CommandContext(t.Context(), os.Args[0], args...)
	cmd.Env = append(os.Environ(), runMainEnv+"=1")
	cmd.Dir = t.TempDir()
	cmd.Stdin = strings.NewReader(stdin)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		t.Fatal(err)
	}
	return outBuf.String(), errBuf.String(), code
}

const expectedDeck = "N0 5\nN1 0\n+\nL0\nL1\nP\n"

func TestCompileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "five.bab")
	if err := os.WriteFile(path, []byte("x = 5\nprint x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	stdout, stderr, code := runBabbage(t, "", path)
	if code != 0 {
		t.Fatalf("got exit code %d\n%s", code, stderr)
	}
	if stdout != expectedDeck {
		t.Fatalf("got %q", stdout)
	}
}

func TestCompileStdin(t *testing.T) {
	stdout, stderr, code := runBabbage(t, "x = 5\nprint x\n")
	if code != 0 {
		t.Fatalf("got exit code %d\n%s", code, stderr)
	}
	if stdout != expectedDeck {
		t.Fatalf("got %q", stdout)
	}
}

func TestCompileError(t *testing.T) {
	stdout, stderr, code := runBabbage(t, "x = 1\nprint y\n")
	if code != 1 {
		t.Fatalf("got exit code %d", code)
	}
	if stdout != "" {
		t.Fatalf("partial output %q", stdout)
	}
	if !strings.Contains(stderr, "undefined variable") {
		t.Fatalf("got %q", stderr)
	}
	for _, line := range strings.Split(strings.TrimSuffix(stderr, "\n"), "\n") {
		if !strings.HasPrefix(line, "[LOG] ") {
			t.Fatalf("unprefixed diagnostic line %q", line)
		}
	}
}

func TestMissingFile(t *testing.T) {
	_, stderr, code := runBabbage(t, "", filepath.Join(t.TempDir(), "missing.bab"))
	if code != 1 {
		t.Fatalf("got exit code %d", code)
	}
	if !strings.HasPrefix(stderr, "[LOG] ") {
		t.Fatalf("got %q", stderr)
	}
}
