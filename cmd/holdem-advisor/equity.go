package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-advisor/internal/config"
	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/equity"
)

// EquityCmd estimates a hand's win probability without the decision layer.
type EquityCmd struct {
	Hole       string `required:"" help:"Hole cards, e.g. 'AC AD'"`
	Board      string `short:"b" help:"Community cards"`
	Opponents  int    `short:"o" default:"1" help:"Number of opponents"`
	Iterations int    `short:"i" help:"Monte Carlo iterations (overrides config)"`
	Seed       *int64 `help:"Random seed for reproducible results"`
}

func (cmd *EquityCmd) Run(cli *CLI) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "equity"})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(config.Path(cli.Config))
	if err != nil {
		return err
	}

	hole, err := deck.ParseCards(cmd.Hole)
	if err != nil {
		return fmt.Errorf("parsing hole cards: %w", err)
	}
	board, err := deck.ParseCards(cmd.Board)
	if err != nil {
		return fmt.Errorf("parsing board cards: %w", err)
	}

	iterations := cfg.Simulation.Iterations
	if cmd.Iterations > 0 {
		iterations = cmd.Iterations
	}

	sim := equity.New(
		equity.WithWorkers(cfg.Simulation.Workers),
		equity.WithLogger(setupLogger(cli.Debug, cli.JSON)))

	result, err := sim.Estimate(context.Background(), equity.Request{
		Hole:      hole,
		Board:     board,
		Opponents: cmd.Opponents,
		Trials:    iterations,
	}, seededRand(cmd.Seed, cfg.Simulation.Seed))
	if err != nil {
		return err
	}

	logger.Debug("simulation complete", "wins", result.Wins, "trials", result.Trials)

	fmt.Printf("%s %s\n", labelStyle.Render("hand"), cardStyle.Render(formatCards(hole)))
	if len(board) > 0 {
		fmt.Printf("%s %s\n", labelStyle.Render("board"), cardStyle.Render(formatCards(board)))
	}
	low, high := result.ConfidenceInterval95()
	fmt.Printf("%s %.1f%% (95%% CI %.1f%%-%.1f%%) vs %d opponent(s)\n",
		labelStyle.Render("win"), result.Equity*100, low*100, high*100, cmd.Opponents)
	fmt.Printf("%d iterations in %v\n", result.Trials, result.Elapsed.Truncate(time.Millisecond))

	return nil
}
