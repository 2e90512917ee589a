// Package evaluator classifies poker hands. Given any five or more cards it
// finds the best five-card category and enough tie-break information to
// establish a total order over hands.
package evaluator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/holdem-advisor/internal/deck"
)

// ErrInvalidArgument is returned for inputs the evaluator cannot classify.
var ErrInvalidArgument = errors.New("invalid argument")

// Category enumerates poker hand categories from weakest to strongest.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Hand is the result of evaluating a set of cards: the best five-card
// category plus category-specific tie-break ranks, most significant first.
type Hand struct {
	Category Category
	Tiebreak []deck.Rank
}

// Compare orders two evaluated hands: 1 if h is stronger, -1 if o is
// stronger, 0 on an exact tie. Category decides first, then the tie-break
// ranks in order of significance.
func (h Hand) Compare(o Hand) int {
	if h.Category != o.Category {
		if h.Category > o.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(h.Tiebreak) && i < len(o.Tiebreak); i++ {
		if h.Tiebreak[i] != o.Tiebreak[i] {
			if h.Tiebreak[i] > o.Tiebreak[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// String returns a short description such as "Full House (T over 4)"
func (h Hand) String() string {
	switch h.Category {
	case FullHouse:
		return fmt.Sprintf("%s (%s over %s)", h.Category, h.Tiebreak[0], h.Tiebreak[1])
	case Straight, StraightFlush:
		return fmt.Sprintf("%s (%s high)", h.Category, h.Tiebreak[0])
	default:
		if len(h.Tiebreak) > 0 {
			return fmt.Sprintf("%s (%s)", h.Category, h.Tiebreak[0])
		}
		return h.Category.String()
	}
}

// Evaluate classifies an unordered collection of at least five cards.
// Categories are detected on the rank multiset (straights and flushes also
// consult suit groupings) and the strongest matching category wins.
func Evaluate(cards []deck.Card) (Hand, error) {
	if len(cards) < 5 {
		return Hand{}, fmt.Errorf("%w: need at least 5 cards, got %d", ErrInvalidArgument, len(cards))
	}

	var counts [13]int
	for _, c := range cards {
		counts[c.Rank]++
	}

	flushRanks := flushWindow(cards)

	// Precedence is highest category first; the first match wins.
	if flushRanks != nil {
		if high, ok := straightHigh(flushRanks); ok {
			return Hand{Category: StraightFlush, Tiebreak: []deck.Rank{high}}, nil
		}
	}
	if quad, ok := rankWithCount(counts, 4); ok {
		return Hand{Category: FourOfAKind, Tiebreak: []deck.Rank{quad, topKicker(counts, quad)}}, nil
	}
	if trip, ok := rankWithCount(counts, 3); ok {
		if pair, ok := pairBelow(counts, trip); ok {
			return Hand{Category: FullHouse, Tiebreak: []deck.Rank{trip, pair}}, nil
		}
	}
	if flushRanks != nil {
		return Hand{Category: Flush, Tiebreak: topN(flushRanks, 5)}, nil
	}
	if high, ok := straightHigh(distinctRanks(counts)); ok {
		return Hand{Category: Straight, Tiebreak: []deck.Rank{high}}, nil
	}
	if trip, ok := rankWithCount(counts, 3); ok {
		return Hand{Category: ThreeOfAKind, Tiebreak: append([]deck.Rank{trip}, kickers(counts, 2, trip)...)}, nil
	}
	if high, low, ok := twoPairRanks(counts); ok {
		return Hand{Category: TwoPair, Tiebreak: []deck.Rank{high, low, topKicker(counts, high, low)}}, nil
	}
	if pair, ok := rankWithCount(counts, 2); ok {
		return Hand{Category: Pair, Tiebreak: append([]deck.Rank{pair}, kickers(counts, 3, pair)...)}, nil
	}

	return Hand{Category: HighCard, Tiebreak: kickers(counts, 5)}, nil
}

// rankWithCount returns the highest rank occurring exactly n times.
func rankWithCount(counts [13]int, n int) (deck.Rank, bool) {
	for r := deck.Ace; r >= deck.Two; r-- {
		if counts[r] == n {
			return r, true
		}
	}
	return 0, false
}

// twoPairRanks finds two distinct pair ranks: the first pair scanning from
// the bottom and the first scanning from the top. If both searches land on
// the same rank there is no second pair.
func twoPairRanks(counts [13]int) (high, low deck.Rank, ok bool) {
	lowFound := false
	for r := deck.Two; r <= deck.Ace; r++ {
		if counts[r] == 2 {
			low = r
			lowFound = true
			break
		}
	}
	if !lowFound {
		return 0, 0, false
	}
	for r := deck.Ace; r >= deck.Two; r-- {
		if counts[r] == 2 {
			high = r
			break
		}
	}
	if high == low {
		return 0, 0, false
	}
	return high, low, true
}

// pairBelow returns the highest rank other than trip that forms a pair,
// for full house detection. Per the rank-multiset rules a pair is a rank
// occurring exactly twice.
func pairBelow(counts [13]int, trip deck.Rank) (deck.Rank, bool) {
	for r := deck.Ace; r >= deck.Two; r-- {
		if r != trip && counts[r] == 2 {
			return r, true
		}
	}
	return 0, false
}

// straightHigh scans every window of five consecutive entries in the
// ascending distinct ranks. A window qualifies when its five distinct ranks
// span exactly four. The wheel A-2-3-4-5 counts as a five-high straight
// (high card value Five). Returns the highest qualifying window's top rank.
func straightHigh(distinct []deck.Rank) (deck.Rank, bool) {
	best := deck.Rank(-1)
	for i := 0; i+5 <= len(distinct); i++ {
		if distinct[i+4]-distinct[i] == 4 {
			best = distinct[i+4]
		}
	}
	if best >= 0 {
		return best, true
	}

	// Wheel: ace plays low below the deuce.
	wheel := []deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five, deck.Ace}
	present := func(want deck.Rank) bool {
		for _, r := range distinct {
			if r == want {
				return true
			}
		}
		return false
	}
	for _, r := range wheel {
		if !present(r) {
			return 0, false
		}
	}
	return deck.Five, true
}

// flushWindow groups cards by suit and returns the ranks of the flush suit,
// sorted ascending, or nil when no suit holds five cards. A straight check
// restricted to these ranks detects the straight flush.
func flushWindow(cards []deck.Card) []deck.Rank {
	var bySuit [4][]deck.Rank
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], c.Rank)
	}
	for _, ranks := range bySuit {
		if len(ranks) >= 5 {
			sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
			return ranks
		}
	}
	return nil
}

// distinctRanks returns the distinct ranks present, ascending.
func distinctRanks(counts [13]int) []deck.Rank {
	ranks := make([]deck.Rank, 0, 13)
	for r := deck.Two; r <= deck.Ace; r++ {
		if counts[r] > 0 {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// topN returns the n highest ranks from an ascending slice, descending.
func topN(ascending []deck.Rank, n int) []deck.Rank {
	out := make([]deck.Rank, 0, n)
	for i := len(ascending) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, ascending[i])
	}
	return out
}

// topKicker returns the highest rank present that is not excluded.
func topKicker(counts [13]int, exclude ...deck.Rank) deck.Rank {
	for r := deck.Ace; r >= deck.Two; r-- {
		if counts[r] > 0 && !contains(exclude, r) {
			return r
		}
	}
	return 0
}

// kickers returns the n highest ranks present, descending, skipping excluded
// ranks. Duplicated ranks contribute once; kickers break ties between hands
// of the same made category.
func kickers(counts [13]int, n int, exclude ...deck.Rank) []deck.Rank {
	out := make([]deck.Rank, 0, n)
	for r := deck.Ace; r >= deck.Two && len(out) < n; r-- {
		if counts[r] > 0 && !contains(exclude, r) {
			out = append(out, r)
		}
	}
	return out
}

func contains(ranks []deck.Rank, want deck.Rank) bool {
	for _, r := range ranks {
		if r == want {
			return true
		}
	}
	return false
}
