package babbageconfigs

import (
	"github.com/reusee/babbage/cmds"
	"github.com/reusee/babbage/configs"
)

// Header enables a leading comment card naming the source.
type Header bool

var headerFlag = cmds.Switch("-header", "start the deck with a comment card naming the source")

func (Module) Header(
	loader configs.Loader,
) Header {
	return Header(*headerFlag || configs.First[bool](loader, "header"))
}
