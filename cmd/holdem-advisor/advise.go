package main

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/config"
	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/equity"
	"github.com/lox/holdem-advisor/internal/randutil"
)

var (
	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	foldStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))
)

// AdviseCmd recommends an action for one decision round.
type AdviseCmd struct {
	Hole       string        `required:"" help:"Hole cards, e.g. 'AC KD'"`
	Board      string        `short:"b" help:"Community cards, e.g. '2H 7S TD'"`
	Opponents  int           `short:"o" default:"1" help:"Number of opponents"`
	CallAmount float64       `name:"call" default:"0" help:"Amount needed to call"`
	Pot        float64       `default:"0" help:"Current pot size"`
	Blind      float64       `default:"0" help:"Big blind amount"`
	Cash       float64       `default:"0" help:"Remaining bankroll"`
	Iterations int           `short:"i" help:"Monte Carlo iterations (overrides config)"`
	Seed       *int64        `help:"Random seed for reproducible results"`
	Budget     time.Duration `help:"Abort the simulation after this long"`
}

func (cmd *AdviseCmd) Run(cli *CLI) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "advise"})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	engineLog := setupLogger(cli.Debug, cli.JSON)

	cfg, err := config.Load(config.Path(cli.Config))
	if err != nil {
		return err
	}

	round, err := parseRound(cmd)
	if err != nil {
		return err
	}

	iterations := cfg.Simulation.Iterations
	if cmd.Iterations > 0 {
		iterations = cmd.Iterations
	}
	rng := seededRand(cmd.Seed, cfg.Simulation.Seed)

	simOpts := []equity.Option{
		equity.WithWorkers(cfg.Simulation.Workers),
		equity.WithLogger(engineLog),
	}
	if cmd.Budget > 0 {
		simOpts = append(simOpts, equity.WithTimeBudget(cmd.Budget))
	}

	engine := advisor.New(equity.New(simOpts...),
		advisor.WithPolicy(policyFromConfig(cfg)),
		advisor.WithIterations(iterations),
		advisor.WithRand(rng),
		advisor.WithLogger(engineLog))

	decision, err := engine.Decide(context.Background(), round)
	if err != nil {
		return err
	}

	logger.Debug("decision made", "round_id", decision.RoundID, "action", decision.Action)

	style := actionStyle
	if decision.Action == advisor.Fold {
		style = foldStyle
	}

	fmt.Printf("%s %s\n", labelStyle.Render("hand"), cardStyle.Render(formatCards(round.Hole)))
	if len(round.Board) > 0 {
		fmt.Printf("%s %s\n", labelStyle.Render("board"), cardStyle.Render(formatCards(round.Board)))
	}
	fmt.Printf("%s %.1f%%  %s %.1f%%  %s %.2f\n",
		labelStyle.Render("equity"), decision.Equity*100,
		labelStyle.Render("pot odds"), decision.PotOdds*100,
		labelStyle.Render("rate of return"), decision.RateOfReturn)
	fmt.Println(style.Render(decision.Action.String()))

	return nil
}

func parseRound(cmd *AdviseCmd) (*advisor.Round, error) {
	hole, err := deck.ParseCards(cmd.Hole)
	if err != nil {
		return nil, fmt.Errorf("parsing hole cards: %w", err)
	}
	board, err := deck.ParseCards(cmd.Board)
	if err != nil {
		return nil, fmt.Errorf("parsing board cards: %w", err)
	}

	return &advisor.Round{
		Hole:      hole,
		Board:     board,
		Opponents: cmd.Opponents,
		Call:      cmd.CallAmount,
		Pot:       cmd.Pot,
		Blind:     cmd.Blind,
		Cash:      cmd.Cash,
	}, nil
}

func policyFromConfig(cfg *config.Config) advisor.Policy {
	return advisor.Policy{
		PreflopBonus:    cfg.Policy.PreflopBonus,
		BankrollBlinds:  cfg.Policy.BankrollBlinds,
		ThinValueCutoff: cfg.Policy.ThinValueCutoff,
		BreakevenCutoff: cfg.Policy.BreakevenCutoff,
		StrongCutoff:    cfg.Policy.StrongCutoff,
	}
}

func seededRand(flag *int64, configSeed int64) *rand.Rand {
	switch {
	case flag != nil:
		return randutil.New(*flag)
	case configSeed != 0:
		return randutil.New(configSeed)
	default:
		return randutil.NewNondeterministic()
	}
}

func formatCards(cards []deck.Card) string {
	out := ""
	for i, card := range cards {
		if i > 0 {
			out += " "
		}
		out += card.String()
	}
	return out
}
