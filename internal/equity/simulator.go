// Package equity estimates a player's winning probability by Monte Carlo
// simulation: repeated randomized deals consistent with the known hole and
// board cards, scored against randomly dealt opponents.
package equity

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/evaluator"
	"github.com/lox/holdem-advisor/internal/randutil"
)

// TiesWinForSubject records the trial scoring rule: the subject wins a trial
// when its hand category is greater than or equal to the best opponent
// category. Comparison is by category only, without tie-break data, and an
// exact category tie counts as a subject win. This overestimates equity
// slightly and is kept as a deliberate accuracy trade-off; changing it
// changes results materially.
const TiesWinForSubject = true

var (
	// ErrInvalidArgument is returned for unusable trial or opponent counts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValidation is returned when the known cards are inconsistent.
	ErrValidation = errors.New("validation error")
)

// Request describes one equity estimation.
type Request struct {
	// Hole holds the subject's private cards: none or exactly two.
	Hole []deck.Card

	// Board holds the known community cards, up to five.
	Board []deck.Card

	// Opponents is the number of randomly dealt opposing hands.
	Opponents int

	// Trials is the number of simulated deals. Must be positive.
	Trials int
}

// Result is the aggregated outcome of a simulation batch.
type Result struct {
	Wins    int
	Trials  int
	Equity  float64
	Elapsed time.Duration
}

// Simulator runs equity estimations. Trials are pure functions of the known
// cards and a random draw, so batches fan out across a worker pool with only
// the win count reduced at the end.
type Simulator struct {
	logger  zerolog.Logger
	clock   quartz.Clock
	workers int
	budget  time.Duration
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the structured logger used for batch-level diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Simulator) { s.logger = logger }
}

// WithClock injects the clock used for timing and the time budget.
func WithClock(clock quartz.Clock) Option {
	return func(s *Simulator) { s.clock = clock }
}

// WithWorkers sets the worker count; values < 1 mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Simulator) { s.workers = n }
}

// WithTimeBudget bounds a single estimation. Exceeding the budget aborts the
// batch between trials; partial counts are discarded, never reported.
func WithTimeBudget(d time.Duration) Option {
	return func(s *Simulator) { s.budget = d }
}

// New creates a Simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		logger: zerolog.Nop(),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Estimate runs req.Trials randomized deals and returns the fraction won by
// the subject. The rng seeds one independent generator per worker, so a
// seeded rng gives reproducible results for a fixed worker count. Equity is
// recomputed fresh on every call; nothing is cached across requests.
func (s *Simulator) Estimate(ctx context.Context, req Request, rng *rand.Rand) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}

	known := make([]deck.Card, 0, len(req.Hole)+len(req.Board))
	known = append(known, req.Hole...)
	known = append(known, req.Board...)

	base := deck.New(known...)
	needed := (5 - len(req.Board)) + 2*req.Opponents
	if base.Remaining() < needed {
		return Result{}, fmt.Errorf("%w: need %d cards, %d available",
			deck.ErrInsufficientCards, needed, base.Remaining())
	}

	workers := s.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > req.Trials {
		workers = req.Trials
	}

	start := s.clock.Now()
	var deadline time.Time
	if s.budget > 0 {
		deadline = start.Add(s.budget)
	}

	s.logger.Debug().
		Int("trials", req.Trials).
		Int("opponents", req.Opponents).
		Int("workers", workers).
		Msg("estimating equity")

	g, ctx := errgroup.WithContext(ctx)
	wins := make([]int, workers)

	perWorker := req.Trials / workers
	remainder := req.Trials % workers

	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}

		slot := w
		seed := int64(rng.Uint64())
		g.Go(func() error {
			n, err := s.runTrials(ctx, req, trials, randutil.New(seed), deadline)
			if err != nil {
				return err
			}
			wins[slot] = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Partial counts are discarded; a cancelled batch reports nothing.
		return Result{}, err
	}

	total := 0
	for _, n := range wins {
		total += n
	}

	result := Result{
		Wins:    total,
		Trials:  req.Trials,
		Equity:  float64(total) / float64(req.Trials),
		Elapsed: s.clock.Since(start),
	}

	s.logger.Debug().
		Int("wins", result.Wins).
		Float64("equity", result.Equity).
		Dur("elapsed", result.Elapsed).
		Msg("equity estimated")

	return result, nil
}

// runTrials executes one worker's share of the batch sequentially.
func (s *Simulator) runTrials(ctx context.Context, req Request, trials int, rng *rand.Rand, deadline time.Time) (int, error) {
	known := make([]deck.Card, 0, len(req.Hole)+len(req.Board))
	known = append(known, req.Hole...)
	known = append(known, req.Board...)

	base := deck.New(known...)
	cards, err := base.DealN(base.Remaining())
	if err != nil {
		return 0, err
	}

	board := make([]deck.Card, 5)
	subject := make([]deck.Card, 0, 7)
	opponent := make([]deck.Card, 0, 7)

	wins := 0
	for i := 0; i < trials; i++ {
		// Cancellation is honoured between trials so the accumulator is
		// never left half-updated.
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		if !deadline.IsZero() && s.clock.Now().After(deadline) {
			return 0, fmt.Errorf("equity: time budget exhausted: %w", context.DeadlineExceeded)
		}

		// Uniform permutation of the unseen cards; a single shuffle per
		// trial is statistically sufficient.
		for j := len(cards) - 1; j > 0; j-- {
			k := rng.IntN(j + 1)
			cards[j], cards[k] = cards[k], cards[j]
		}

		next := 0
		copy(board, req.Board)
		for j := len(req.Board); j < 5; j++ {
			board[j] = cards[next]
			next++
		}

		subject = append(subject[:0], req.Hole...)
		subject = append(subject, board...)
		subjectHand, err := evaluator.Evaluate(subject)
		if err != nil {
			return 0, err
		}

		// Opponents draw from the same shuffled run-out, so no card
		// repeats within a trial.
		won := true
		for o := 0; o < req.Opponents; o++ {
			opponent = append(opponent[:0], cards[next], cards[next+1])
			next += 2
			opponent = append(opponent, board...)
			opponentHand, err := evaluator.Evaluate(opponent)
			if err != nil {
				return 0, err
			}
			if opponentHand.Category > subjectHand.Category {
				won = false
				break
			}
		}
		if won {
			wins++
		}
	}

	return wins, nil
}

func validate(req Request) error {
	if req.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidArgument, req.Trials)
	}
	if req.Opponents < 0 {
		return fmt.Errorf("%w: opponents must be non-negative, got %d", ErrInvalidArgument, req.Opponents)
	}
	if len(req.Hole) != 0 && len(req.Hole) != 2 {
		return fmt.Errorf("%w: hole cards must number 0 or 2, got %d", ErrValidation, len(req.Hole))
	}
	if len(req.Board) > 5 {
		return fmt.Errorf("%w: board holds at most 5 cards, got %d", ErrValidation, len(req.Board))
	}

	seen := make(map[deck.Card]bool, len(req.Hole)+len(req.Board))
	for _, c := range req.Hole {
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s", ErrValidation, c.Code())
		}
		seen[c] = true
	}
	for _, c := range req.Board {
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s", ErrValidation, c.Code())
		}
		seen[c] = true
	}

	return nil
}
