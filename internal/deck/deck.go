package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrInsufficientCards is returned when a deal would exhaust the deck.
var ErrInsufficientCards = errors.New("insufficient cards")

// Deck holds the remaining unseen cards of a 52-card universe.
// It does not own a random source; shuffling takes the caller's rng so
// simulations stay reproducible under an injected seed.
type Deck struct {
	cards []Card
}

// New creates a deck containing every card of the 52-card universe that is
// not in the excluded set. Excluded cards are the ones already known to the
// caller (hole cards, board cards).
func New(excluded ...Card) *Deck {
	skip := make(map[Card]bool, len(excluded))
	for _, card := range excluded {
		skip[card] = true
	}

	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Rank: rank, Suit: suit}
			if !skip[card] {
				d.cards = append(d.cards, card)
			}
		}
	}

	return d
}

// Shuffle applies a uniform Fisher-Yates permutation using the supplied rng.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, fmt.Errorf("%w: deck is empty", ErrInsufficientCards)
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// DealN deals exactly n cards, or fails without dealing any if the deck is
// too small. A short deal is never returned silently.
func (d *Deck) DealN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: need %d cards, %d remaining", ErrInsufficientCards, n, len(d.cards))
	}

	cards := make([]Card, n)
	for i := range cards {
		card, err := d.Deal()
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}

	return cards, nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
