// Package advisor turns an equity estimate into a recommended action. It
// layers a randomized decision policy over the simulator's win rate so that
// play is not purely deterministic: the occasional bluff raise and slow-play
// call come from explicit probability thresholds, not from noise.
package advisor

import (
	"context"
	rand "math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-advisor/internal/equity"
	"github.com/lox/holdem-advisor/internal/randutil"
)

// Action is the terminal recommendation for a round.
type Action int

const (
	Fold Action = iota
	Call
	Raise
)

// String returns the literal action string consumed by the front end.
func (a Action) String() string {
	switch a {
	case Fold:
		return "FOLD"
	case Call:
		return "CALL"
	case Raise:
		return "RAISE"
	default:
		return "UNKNOWN"
	}
}

// Policy holds the decision thresholds. The defaults are the contract; they
// are exposed through configuration rather than tuned in code.
type Policy struct {
	// PreflopBonus is added to equity when no board cards are known,
	// reflecting the higher variance of pre-flop estimates.
	PreflopBonus float64

	// BankrollBlinds is the guard multiple: with fewer than this many
	// blinds left after calling and equity below one half, fold.
	BankrollBlinds float64

	// Rate-of-return cut points between the policy's four regimes.
	ThinValueCutoff float64
	BreakevenCutoff float64
	StrongCutoff    float64
}

// DefaultPolicy returns the contractual thresholds.
func DefaultPolicy() Policy {
	return Policy{
		PreflopBonus:    0.2,
		BankrollBlinds:  4,
		ThinValueCutoff: 0.8,
		BreakevenCutoff: 1.0,
		StrongCutoff:    1.3,
	}
}

// Bluff and slow-play draw thresholds. These are contractual constants of
// the randomized policy, not tunables.
const (
	bluffRaiseDraw    = 0.95 // weak hands raise anyway above this draw
	thinFoldDraw      = 0.80 // thin-value hands fold below this draw when facing a bet
	thinCallDraw      = 0.85 // ...then call below this, raise above
	breakevenCallDraw = 0.60 // profitable hands call below this, raise above
	strongCallDraw    = 0.30 // strong hands mostly raise; call below this
)

// uniformSource supplies the policy's uniform draws. *rand.Rand satisfies
// it; tests can script exact sequences to reach every branch.
type uniformSource interface {
	Float64() float64
}

// Decision is the outcome of one advised round.
type Decision struct {
	RoundID      string
	Action       Action
	Equity       float64
	PotOdds      float64
	RateOfReturn float64
	Simulation   equity.Result
}

// Engine combines the simulator's equity estimate with pot odds and the
// bankroll guard to recommend an action.
type Engine struct {
	sim        *equity.Simulator
	policy     Policy
	iterations int
	rng        *rand.Rand
	draw       uniformSource
	logger     zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy overrides the default decision thresholds.
func WithPolicy(p Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithIterations sets the trial count used per decision.
func WithIterations(n int) Option {
	return func(e *Engine) { e.iterations = n }
}

// WithRand injects the random source used to seed simulations and, unless
// WithDraw overrides it, to draw the policy's uniform value.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
		if e.draw == nil {
			e.draw = rng
		}
	}
}

// WithDraw injects the policy's uniform draw source separately from the
// simulation rng, so tests can script the policy deterministically.
func WithDraw(src uniformSource) Option {
	return func(e *Engine) { e.draw = src }
}

// WithLogger sets the structured logger for decision diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

const defaultIterations = 100000

// New creates an Engine around a simulator.
func New(sim *equity.Simulator, opts ...Option) *Engine {
	e := &Engine{
		sim:        sim,
		policy:     DefaultPolicy(),
		iterations: defaultIterations,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = randutil.NewNondeterministic()
	}
	if e.draw == nil {
		e.draw = e.rng
	}
	return e
}

// Decide runs a fresh equity estimation for the round and applies the
// decision policy. Given a valid round it always terminates in one of the
// three actions; the only failures are input validation and simulation
// setup.
func (e *Engine) Decide(ctx context.Context, round *Round) (Decision, error) {
	if err := round.Validate(); err != nil {
		return Decision{}, err
	}

	decision := Decision{RoundID: uuid.NewString()}
	logger := e.logger.With().Str("round_id", decision.RoundID).Logger()

	result, err := e.sim.Estimate(ctx, equity.Request{
		Hole:      round.Hole,
		Board:     round.Board,
		Opponents: round.Opponents,
		Trials:    e.iterations,
	}, e.rng)
	if err != nil {
		return Decision{}, err
	}
	decision.Simulation = result

	decision.Equity = result.Equity
	if len(round.Board) == 0 {
		decision.Equity += e.policy.PreflopBonus
	}

	// With no wagering signal the pot odds are a neutral coin flip.
	decision.PotOdds = 0.5
	if round.Call != 0 {
		decision.PotOdds = round.Call / (round.Call + round.Pot)
	}
	decision.RateOfReturn = decision.Equity / decision.PotOdds

	u := e.draw.Float64()
	decision.Action = e.choose(round, decision, u)

	logger.Debug().
		Float64("equity", decision.Equity).
		Float64("pot_odds", decision.PotOdds).
		Float64("rate_of_return", decision.RateOfReturn).
		Float64("draw", u).
		Stringer("action", decision.Action).
		Msg("round decided")

	return decision, nil
}

// choose applies the bankroll guard and the randomized rate-of-return
// branches.
func (e *Engine) choose(round *Round, d Decision, u float64) Action {
	// The guard overrides everything: short-stacked with a losing hand,
	// protect the remaining bankroll.
	if round.Cash-round.Call < e.policy.BankrollBlinds*round.Blind && d.Equity < 0.5 {
		return Fold
	}

	switch {
	case d.RateOfReturn < e.policy.ThinValueCutoff:
		if u >= bluffRaiseDraw || round.Call == 0 {
			return Raise
		}
		return Fold
	case d.RateOfReturn < e.policy.BreakevenCutoff:
		if u < thinFoldDraw && round.Call > 0 {
			return Fold
		}
		if u < thinCallDraw {
			return Call
		}
		return Raise
	case d.RateOfReturn < e.policy.StrongCutoff:
		if u < breakevenCallDraw {
			return Call
		}
		return Raise
	default:
		if u < strongCallDraw {
			return Call
		}
		return Raise
	}
}
