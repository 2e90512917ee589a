package deck

import (
	"errors"
	"testing"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "AS", expected: Card{Rank: Ace, Suit: Spades}},
		{name: "ten of diamonds", input: "TD", expected: Card{Rank: Ten, Suit: Diamonds}},
		{name: "deuce of clubs", input: "2C", expected: Card{Rank: Two, Suit: Clubs}},
		{name: "nine of hearts", input: "9H", expected: Card{Rank: Nine, Suit: Hearts}},
		{name: "invalid rank", input: "1S", wantErr: true},
		{name: "invalid suit", input: "AX", wantErr: true},
		{name: "lowercase rejected", input: "as", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "ASD", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCard(%q) expected error, got %v", tt.input, card)
				}
				if !errors.Is(err, ErrParse) {
					t.Errorf("ParseCard(%q) error %v is not ErrParse", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if card != tt.expected {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, card, tt.expected)
			}
		})
	}
}

// Every valid code must decode to a distinct card, and the code must
// round-trip through Card.Code.
func TestParseCardInjective(t *testing.T) {
	seen := make(map[Card]string)
	for _, r := range "23456789TJQKA" {
		for _, s := range "CDHS" {
			code := string(r) + string(s)
			card, err := ParseCard(code)
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", code, err)
			}
			if prev, dup := seen[card]; dup {
				t.Errorf("codes %q and %q decode to the same card %v", prev, code, card)
			}
			seen[card] = code
			if card.Code() != code {
				t.Errorf("Card.Code() = %q, want %q", card.Code(), code)
			}
		}
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 distinct cards, got %d", len(seen))
	}
}

func TestParseCardRejectsAllOtherCodes(t *testing.T) {
	valid := make(map[string]bool)
	for _, r := range "23456789TJQKA" {
		for _, s := range "CDHS" {
			valid[string(r)+string(s)] = true
		}
	}

	// Sweep the printable ASCII range; only the 52 enumerated codes may parse.
	for a := byte(' '); a <= '~'; a++ {
		for b := byte(' '); b <= '~'; b++ {
			code := string([]byte{a, b})
			_, err := ParseCard(code)
			if valid[code] {
				if err != nil {
					t.Errorf("ParseCard(%q) unexpected error: %v", code, err)
				}
			} else if err == nil {
				t.Errorf("ParseCard(%q) should have been rejected", code)
			}
		}
	}
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "space separated", input: "AC KD", want: 2},
		{name: "packed", input: "ACKD", want: 2},
		{name: "board", input: "2H 7S TD QC AS", want: 5},
		{name: "empty", input: "", want: 0},
		{name: "odd length", input: "ACK", wantErr: true},
		{name: "duplicate", input: "AC AC", wantErr: true},
		{name: "bad code", input: "AC XX", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ParseCards(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCards(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCards(%q) unexpected error: %v", tt.input, err)
			}
			if len(cards) != tt.want {
				t.Errorf("ParseCards(%q) returned %d cards, want %d", tt.input, len(cards), tt.want)
			}
		})
	}
}

func TestCardDescription(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"AS", "Ace of Spades"},
		{"TD", "Ten of Diamonds"},
		{"2C", "Two of Clubs"},
		{"9H", "Nine of Hearts"},
		{"KD", "King of Diamonds"},
	}

	for _, tt := range tests {
		card, err := ParseCard(tt.code)
		if err != nil {
			t.Fatalf("ParseCard(%q) unexpected error: %v", tt.code, err)
		}
		if card.Description() != tt.want {
			t.Errorf("Description(%s) = %q, want %q", tt.code, card.Description(), tt.want)
		}
	}
}
