package poker

import (
	"fmt"
	"math/rand"
	"time"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = NumRanks * NumSuits

// Rand is the random source a Deck shuffles with. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Deck represents a standard 52-card deck.
// A Deck is owned by one caller at a time; it does no locking.
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   Rand
}

// NewDeck creates a full deck in canonical order (clubs, diamonds, hearts,
// spades; two through ace within each suit). A nil rng gets a private
// time-seeded source.
func NewDeck(rng Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset restores all 52 cards in canonical order.
func (d *Deck) Reset() {
	d.next = 0
	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
}

// Shuffle shuffles the undealt cards using Fisher-Yates.
// Cards already dealt stay out of the deck.
func (d *Deck) Shuffle() {
	rest := d.cards[d.next:]
	for i := len(rest) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		rest[i], rest[j] = rest[j], rest[i]
	}
}

// Deal removes and returns the next n cards.
// The deck is left untouched when fewer than n cards remain.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}
	if n > d.Remaining() {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrInsufficientCards, n, d.Remaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealOne deals a single card from the deck
func (d *Deck) DealOne() (Card, error) {
	if d.Remaining() == 0 {
		return 0, fmt.Errorf("%w: deck is empty", ErrInsufficientCards)
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// DealHand deals n cards and builds a Hand from them.
func (d *Deck) DealHand(n int) (Hand, error) {
	if n < MinHandSize || n > MaxHandSize {
		return Hand{}, fmt.Errorf("%w: %d cards (must be %d-%d)", ErrInvalidHandSize, n, MinHandSize, MaxHandSize)
	}
	cards, err := d.Deal(n)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return DeckSize - d.next
}

// Cards returns a copy of the undealt cards in deck order.
func (d *Deck) Cards() []Card {
	cards := make([]Card, d.Remaining())
	copy(cards, d.cards[d.next:])
	return cards
}
