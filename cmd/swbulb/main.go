package main

import (
	"github.com/alecthomas/kong"

	"github.com/vitaminmoo/swbulb-tool/internal/cli"
)

func main() {
	var c cli.CLI
	ctx := kong.Parse(&c,
		kong.Name("swbulb"),
		kong.Description("SwitchBot Colour Bulb - BLE Command Tool"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&c))
}
