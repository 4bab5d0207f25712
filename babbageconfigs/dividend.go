package babbageconfigs

import (
	"github.com/reusee/babbage/cmds"
	"github.com/reusee/babbage/configs"
	"github.com/reusee/babbage/vars"
)

// Dividend is divided by a condition value so that the lever rises exactly
// when the condition is zero. Any nonzero value works.
type Dividend int64

const DefaultDividend = 1

var dividendFlag = cmds.Var[int64]("-dividend", "nonzero constant divided by if/while conditions")

func (Module) Dividend(
	loader configs.Loader,
) Dividend {
	return Dividend(vars.FirstNonZero(
		*dividendFlag,
		configs.First[int64](loader, "dividend"),
		DefaultDividend,
	))
}
