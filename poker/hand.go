package poker

import (
	"fmt"
)

// Hand size limits.
const (
	MinHandSize = 2
	MaxHandSize = 9
)

// Hand is an immutable set of 2 to 9 distinct cards.
// The zero Hand is empty and is not a valid argument to Evaluate.
type Hand struct {
	cards []Card
	set   CardSet
}

// NewHand builds a Hand from cards. It fails with ErrInvalidHandSize when the
// count is outside [MinHandSize, MaxHandSize] and ErrDuplicateCard when a card
// repeats.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) < MinHandSize || len(cards) > MaxHandSize {
		return Hand{}, fmt.Errorf("%w: %d cards (must be %d-%d)", ErrInvalidHandSize, len(cards), MinHandSize, MaxHandSize)
	}

	var set CardSet
	for _, c := range cards {
		if !c.Valid() {
			return Hand{}, fmt.Errorf("%w: card value %#x", ErrInvalidNotation, uint64(c))
		}
		if set.Contains(c) {
			return Hand{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		set.Add(c)
	}

	owned := make([]Card, len(cards))
	copy(owned, cards)
	return Hand{cards: owned, set: set}, nil
}

// ParseHand builds a Hand from space-separated notation such as "As Ks Qs Js Ts".
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Cards returns a copy of the cards in construction order.
func (h Hand) Cards() []Card {
	cards := make([]Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h.cards)
}

// Contains reports whether the hand holds c.
func (h Hand) Contains(c Card) bool {
	return h.set.Contains(c)
}

// Set returns the hand as a CardSet.
func (h Hand) Set() CardSet {
	return h.set
}

// Equal reports whether both hands hold the same cards, in any order.
func (h Hand) Equal(other Hand) bool {
	return h.set == other.set
}

// String returns the hand notation, e.g. "As Ks Qs Js Ts".
func (h Hand) String() string {
	return FormatCards(h.cards)
}
