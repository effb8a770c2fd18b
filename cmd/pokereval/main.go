package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
	NoColor  bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate poker hands of 2 to 9 cards"`
	Compare CompareCmd       `cmd:"" help:"Rank hands against each other and show the winners"`
	Deal    DealCmd          `cmd:"" help:"Shuffle a deck, deal hands and show the winners"`
	Equity  EquityCmd        `cmd:"" help:"Estimate showdown equity by Monte Carlo simulation"`
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("pokereval"),
		kong.Description("Poker hand evaluation, dealing and equity estimation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": "pokereval.hcl",
		},
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kongOptions()...)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(sigCtx, cli.Globals, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	if err := ctx.Run(app); err != nil {
		app.logger.Error("Command failed", "command", ctx.Command(), "error", err)
		stop()
		os.Exit(1)
	}
}
