package cards

type Operation byte

const (
	OpAdd Operation = '+'
	OpSub Operation = '-'
	OpMul Operation = '*'
	OpDiv Operation = '/'
)

func (o Operation) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

type Direction byte

const (
	Forward  Direction = 'F'
	Backward Direction = 'B'
)
