package evaluator

import (
	"testing"

	poker "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/randutil"
)

// toOracle converts our card representation to the paulhankin/poker one,
// which numbers ranks 1..13 with the ace low at 1.
func toOracle(t *testing.T, c deck.Card) poker.Card {
	t.Helper()

	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	case deck.Spades:
		s = poker.Spade
	}

	r := poker.Rank(int(c.Rank) + 2)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}

	card, err := poker.MakeCard(s, r)
	require.NoError(t, err)
	return card
}

func oracleScore(t *testing.T, cards []deck.Card) int16 {
	t.Helper()
	var a5 [5]poker.Card
	for i, c := range cards {
		a5[i] = toOracle(t, c)
	}
	return poker.Eval5(&a5)
}

// TestEvaluateAgainstOracle cross-checks the total order on random five-card
// hands against an independent evaluator. Five-card hands avoid the
// documented multiset simplifications (double trips, three pairs) that only
// arise with seven cards, so the orders must agree exactly.
func TestEvaluateAgainstOracle(t *testing.T) {
	rng := randutil.New(7)

	// Establish the oracle's score direction from a known ordering.
	quads := deck.MustParseCards("2C 2D 2H 2S 3C")
	junk := deck.MustParseCards("2C 3D 5H 8S KC")
	direction := 1
	if oracleScore(t, quads) < oracleScore(t, junk) {
		direction = -1
	}

	sample := func() []deck.Card {
		d := deck.New()
		d.Shuffle(rng)
		cards, err := d.DealN(5)
		require.NoError(t, err)
		return cards
	}

	prev := sample()
	prevHand, err := Evaluate(prev)
	require.NoError(t, err)
	prevScore := int(oracleScore(t, prev)) * direction

	for i := 0; i < 2000; i++ {
		cur := sample()
		curHand, err := Evaluate(cur)
		require.NoError(t, err)
		curScore := int(oracleScore(t, cur)) * direction

		cmp := curHand.Compare(prevHand)
		switch {
		case curScore > prevScore:
			require.Equal(t, 1, cmp, "oracle ranks %v above %v", cur, prev)
		case curScore < prevScore:
			require.Equal(t, -1, cmp, "oracle ranks %v below %v", cur, prev)
		default:
			require.Equal(t, 0, cmp, "oracle ties %v with %v", cur, prev)
		}

		prev, prevHand, prevScore = cur, curHand, curScore
	}
}
