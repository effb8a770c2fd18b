package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Rank is a card face value. Two is 0 and Ace is 12.
type Rank uint8

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

// NumRanks is the number of distinct ranks.
const NumRanks = 13

const rankChars = "23456789TJQKA"

// String returns the notation symbol for the rank ("2".."9", "T", "J", "Q", "K", "A").
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return rankChars[r : r+1]
}

// Name returns the English name of the rank, e.g. "Queen".
func (r Rank) Name() string {
	switch r {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
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

// Plural returns the plural name of the rank, e.g. "Sixes".
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// Suit is a card family. Suits have no strength order.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of distinct suits.
const NumSuits = 4

const suitChars = "cdhs"

// String returns the notation symbol for the suit ("c", "d", "h", "s").
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return suitChars[s : s+1]
}

// Card is a single playing card encoded as one bit at position suit*13+rank.
// The zero Card is not a valid card.
type Card uint64

// NewCard creates a card from a rank and a suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(1) << (uint(suit)*NumRanks + uint(rank))
}

// index returns the bit position of the card (0-51).
func (c Card) index() int {
	return bits.TrailingZeros64(uint64(c))
}

// Valid reports whether c is exactly one of the 52 cards.
func (c Card) Valid() bool {
	return c != 0 && c&(c-1) == 0 && c.index() < NumRanks*NumSuits
}

// Rank returns the rank of the card.
func (c Card) Rank() Rank {
	return Rank(c.index() % NumRanks)
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return Suit(c.index() / NumRanks)
}

// String returns the two-character notation, e.g. "As" or "2c".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// ParseCard parses two-character card notation such as "As", "Td" or "2c".
// Rank and suit letters are accepted in either case.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q must be 2 characters", ErrInvalidNotation, s)
	}

	rank, ok := parseRank(s[0])
	if !ok {
		return 0, fmt.Errorf("%w: unknown rank '%c' in %q", ErrInvalidNotation, s[0], s)
	}

	suit, ok := parseSuit(s[1])
	if !ok {
		return 0, fmt.Errorf("%w: unknown suit '%c' in %q", ErrInvalidNotation, s[1], s)
	}

	return NewCard(rank, suit), nil
}

// MustParseCard parses a card and panics on error (for tests and literals)
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card '%s': %v", s, err))
	}
	return c
}

// ParseCards parses whitespace-separated card notation, e.g. "As Ks Qs".
// An empty string yields an empty slice.
func ParseCards(s string) ([]Card, error) {
	tokens := strings.Fields(s)
	cards := make([]Card, 0, len(tokens))
	for i, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards renders cards as space-separated notation.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseRank(b byte) (Rank, bool) {
	switch b {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	case '9':
		return Nine, true
	case '8':
		return Eight, true
	case '7':
		return Seven, true
	case '6':
		return Six, true
	case '5':
		return Five, true
	case '4':
		return Four, true
	case '3':
		return Three, true
	case '2':
		return Two, true
	default:
		return 0, false
	}
}

func parseSuit(b byte) (Suit, bool) {
	switch b {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 'c', 'C':
		return Clubs, true
	default:
		return 0, false
	}
}

// CardSet is a set of cards stored as a 52-bit bitset.
type CardSet uint64

// NewCardSet creates a CardSet from cards. Duplicates collapse.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs.Add(c)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(c Card) {
	*cs |= CardSet(c)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(c Card) bool {
	return cs&CardSet(c) != 0
}

// Count returns the number of cards in the set
func (cs CardSet) Count() int {
	return bits.OnesCount64(uint64(cs))
}

// SuitMask returns a 13-bit mask of the ranks held in one suit.
func (cs CardSet) SuitMask(s Suit) uint16 {
	return uint16((uint64(cs) >> (uint(s) * NumRanks)) & 0x1FFF)
}

// RankMask returns a 13-bit mask of every rank present in any suit.
func (cs CardSet) RankMask() uint16 {
	return cs.SuitMask(Clubs) | cs.SuitMask(Diamonds) | cs.SuitMask(Hearts) | cs.SuitMask(Spades)
}

// Cards returns the cards in the set in canonical deck order.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Count())
	for m := uint64(cs); m != 0; m &= m - 1 {
		cards = append(cards, Card(m&-m))
	}
	return cards
}
