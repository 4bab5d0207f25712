package cards

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInvalidCard = errors.New("invalid card")

// Parse decodes one canonical card line.
func Parse(line string) (Card, error) {
	if line == "" {
		return nil, fmt.Errorf("%w: empty line", ErrInvalidCard)
	}

	switch line[0] {

	case '.':
		return Comment{
			Text: strings.TrimPrefix(strings.TrimPrefix(line, "."), " "),
		}, nil

	case 'H':
		if line != "H" {
			break
		}
		return Halt{}, nil

	case 'B':
		if line != "B" {
			break
		}
		return Bell{}, nil

	case 'P':
		if line != "P" {
			break
		}
		return Print{}, nil

	case '+', '-', '*', '/':
		if len(line) != 1 {
			break
		}
		return ArithOp{
			Op: Operation(line[0]),
		}, nil

	case 'C':
		if len(line) < 4 {
			break
		}
		dir := Direction(line[1])
		if dir != Forward && dir != Backward {
			break
		}
		var dependent bool
		switch line[2] {
		case '?':
			dependent = true
		case '+':
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidCard, line)
		}
		distance, err := parseUint(line[3:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidCard, line, err)
		}
		return Cond{
			Direction:      dir,
			LeverDependent: dependent,
			Distance:       distance,
		}, nil

	case 'N':
		slotStr, valueStr, ok := strings.Cut(line[1:], " ")
		if !ok {
			break
		}
		slot, err := parseUint(slotStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidCard, line, err)
		}
		value, err := strconv.ParseInt(strings.TrimSpace(valueStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidCard, line, err)
		}
		return Num{
			Slot:  slot,
			Value: value,
		}, nil

	case 'L':
		slot, err := parseUint(line[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidCard, line, err)
		}
		return Load{
			Slot: slot,
		}, nil

	case 'S':
		rest, prime := strings.CutSuffix(line[1:], "'")
		slot, err := parseUint(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidCard, line, err)
		}
		return Store{
			Slot:  slot,
			Prime: prime,
		}, nil

	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidCard, line)
}

func parseUint(str string) (int, error) {
	if str == "" || str[0] == '-' || str[0] == '+' {
		return 0, fmt.Errorf("not an unsigned integer: %q", str)
	}
	return strconv.Atoi(str)
}

// ParseProgram decodes a deck, one card per line. Blank lines are skipped.
func ParseProgram(r io.Reader) (Program, error) {
	var ret Program
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		card, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		ret = append(ret, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}
