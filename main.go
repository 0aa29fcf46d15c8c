package main

import (
	"log/slog"
	"os"

	"vaulticon/catalog"
	"vaulticon/parallel"

	"github.com/alecthomas/kong"
)

var cli struct {
	Generate catalog.CLICmd `cmd:"" default:"withargs" help:"Render the padlock icon set"`
	Workers  int            `help:"Concurrent renders, 0 means one per CPU" default:"1"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("vaulticon"),
		kong.Description("Generates the SecretVault application icon at every catalog size."))

	pool := parallel.Start(cli.Workers)
	if err := kctx.Run(pool); err != nil {
		slog.Error("icon generation failed", "error", err)
		os.Exit(1)
	}
}
