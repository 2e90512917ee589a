package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is returned when a card code cannot be decoded.
var ErrParse = errors.New("parse error")

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the long-form name of a suit
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Rank represents a card rank. Two is 0, Ace is 12.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return string(rune('2' + r))
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Name returns the long-form name of a rank
func (r Rank) Name() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return [...]string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}[r]
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Code returns the canonical two-character code (e.g., "AS").
// Codes are unique across the 52-card universe and round-trip through ParseCard.
func (c Card) Code() string {
	return c.Rank.String() + [4]string{"C", "D", "H", "S"}[c.Suit]
}

// Description returns the long-form description (e.g., "Ace of Spades")
func (c Card) Description() string {
	return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit.Name())
}

// IsRed returns true if the card is red (Hearts or Diamonds)
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

// ParseCard decodes a two-character card code such as "AS" or "TD".
// The first character is the rank (2-9, T, J, Q, K, A), the second the suit
// (C, D, H, S). Anything else is rejected with ErrParse; there is no silent
// fallback value.
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w: card code %q must be exactly 2 characters", ErrParse, code)
	}

	rank, err := parseRank(code[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(code[1])
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards decodes a run of card codes, either space separated ("AC KD")
// or packed ("ACKD"). Duplicate cards within the input are rejected.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return nil, nil
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string %q has odd length %d", ErrParse, s, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	seen := make(map[Card]bool, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		if seen[card] {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrParse, card.Code())
		}
		seen[card] = true
		cards = append(cards, card)
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '2'), nil
	case 'T':
		return Ten, nil
	case 'J':
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	case 'A':
		return Ace, nil
	default:
		return 0, fmt.Errorf("%w: invalid rank character %q", ErrParse, string(c))
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'C':
		return Clubs, nil
	case 'D':
		return Diamonds, nil
	case 'H':
		return Hearts, nil
	case 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("%w: invalid suit character %q", ErrParse, string(c))
	}
}
