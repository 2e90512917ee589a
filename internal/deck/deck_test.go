package deck

import (
	"errors"
	"testing"

	"github.com/lox/holdem-advisor/internal/randutil"
)

func TestNewFullDeck(t *testing.T) {
	d := New()
	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}

	seen := make(map[Card]bool)
	for d.Remaining() > 0 {
		card, err := d.Deal()
		if err != nil {
			t.Fatalf("unexpected deal error: %v", err)
		}
		if seen[card] {
			t.Errorf("duplicate card dealt: %v", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 distinct cards, got %d", len(seen))
	}
}

func TestNewExcludesKnownCards(t *testing.T) {
	known := MustParseCards("AC AD 2H 7S TD")
	d := New(known...)
	if d.Remaining() != 47 {
		t.Fatalf("expected 47 cards, got %d", d.Remaining())
	}

	for d.Remaining() > 0 {
		card, err := d.Deal()
		if err != nil {
			t.Fatalf("unexpected deal error: %v", err)
		}
		for _, k := range known {
			if card == k {
				t.Errorf("excluded card %v was dealt", card)
			}
		}
	}
}

func TestDealNExhaustion(t *testing.T) {
	d := New()
	if _, err := d.DealN(52); err != nil {
		t.Fatalf("dealing the whole deck should succeed: %v", err)
	}
	if _, err := d.DealN(1); !errors.Is(err, ErrInsufficientCards) {
		t.Errorf("expected ErrInsufficientCards, got %v", err)
	}

	d = New()
	if _, err := d.DealN(53); !errors.Is(err, ErrInsufficientCards) {
		t.Errorf("expected ErrInsufficientCards for oversized deal, got %v", err)
	}
	// A failed DealN must not consume cards.
	if d.Remaining() != 52 {
		t.Errorf("failed deal consumed cards: %d remaining", d.Remaining())
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	deal := func() []Card {
		d := New()
		d.Shuffle(randutil.New(42))
		cards, err := d.DealN(52)
		if err != nil {
			t.Fatalf("unexpected deal error: %v", err)
		}
		return cards
	}

	first := deal()
	second := deal()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different permutations at index %d", i)
		}
	}

	d := New()
	d.Shuffle(randutil.New(43))
	other, err := d.DealN(52)
	if err != nil {
		t.Fatalf("unexpected deal error: %v", err)
	}
	same := true
	for i := range first {
		if first[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical permutations")
	}
}
