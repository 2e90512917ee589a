package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"advisor.hcl" help:"Path to HCL config file"`
	Debug   bool             `help:"Enable debug logging"`
	JSON    bool             `help:"Structured JSON log output"`

	Advise AdviseCmd `cmd:"" help:"Recommend fold/call/raise for a decision round"`
	Equity EquityCmd `cmd:"" help:"Estimate win probability for a hand"`
}

func main() {
	// A local .env can carry HOLDEM_ADVISOR_* overrides; absence is fine.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-advisor"),
		kong.Description("Monte Carlo equity and pot-odds advisor for flop-style poker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
