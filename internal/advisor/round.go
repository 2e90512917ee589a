package advisor

import (
	"fmt"

	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/equity"
)

// Round is the caller-owned context for one decision: the known cards, the
// table's wagering state and the subject's bankroll. It is set up before a
// decision and reset between rounds; nothing about it is process-wide, so
// rounds can be simulated concurrently.
type Round struct {
	Hole      []deck.Card
	Board     []deck.Card
	Opponents int

	// Wagering inputs, in currency-agnostic units.
	Call  float64
	Pot   float64
	Blind float64
	Cash  float64
}

// Validate checks the round's inputs before simulation setup.
func (r *Round) Validate() error {
	if r.Opponents < 0 {
		return fmt.Errorf("%w: opponents must be non-negative, got %d", equity.ErrInvalidArgument, r.Opponents)
	}
	if r.Call < 0 || r.Pot < 0 || r.Blind < 0 || r.Cash < 0 {
		return fmt.Errorf("%w: monetary inputs must be non-negative", equity.ErrValidation)
	}
	if len(r.Hole) != 0 && len(r.Hole) != 2 {
		return fmt.Errorf("%w: hole cards must number 0 or 2, got %d", equity.ErrValidation, len(r.Hole))
	}
	if len(r.Board) > 5 {
		return fmt.Errorf("%w: board holds at most 5 cards, got %d", equity.ErrValidation, len(r.Board))
	}

	seen := make(map[deck.Card]bool, len(r.Hole)+len(r.Board))
	for _, c := range append(append([]deck.Card{}, r.Hole...), r.Board...) {
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s across known sets", equity.ErrValidation, c.Code())
		}
		seen[c] = true
	}

	return nil
}

// Reset clears the round for the next hand. The hole and board collections
// are re-allocated independently; they must never share a backing array, or
// appending to one would leak cards into the other.
func (r *Round) Reset() {
	r.Hole = make([]deck.Card, 0, 2)
	r.Board = make([]deck.Card, 0, 5)
	r.Call = 0
}
