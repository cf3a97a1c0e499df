package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" help:"Record a table session interactively"`
	Settle  SettleCmd        `cmd:"" help:"Settle saved session files into one transfer plan"`
	History HistoryCmd       `cmd:"" help:"Review saved session files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bonusly-poker"),
		kong.Description("Track Bonusly poker games and settle up afterwards"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
