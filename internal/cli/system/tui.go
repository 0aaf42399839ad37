package system

import (
	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	return tui.Run(ctx.Store, ctx.Config)
}
