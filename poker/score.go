package poker

import "fmt"

// Category enumerates the categories of poker hands ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumCategories is the number of hand categories.
const NumCategories = 9

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
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

// Score is the comparable strength of a hand. Higher values are stronger.
//
// Layout: category<<20 followed by five 4-bit tie-break slots, most
// significant first. A slot holds rank+2 (2..14), 1 for an ace playing low
// in the wheel, or 0 when the hand has no card for it.
type Score uint32

const (
	categoryShift = 20
	slotBits      = 4
	tieBreakSlots = 5
	slotMask      = 1<<slotBits - 1
	lowAceSlot    = 1
)

// MaxScore is the score of a royal flush.
const MaxScore = Score(uint32(StraightFlush)<<categoryShift | 0xEDCBA)

func newScore(cat Category, slots ...uint8) Score {
	s := uint32(cat) << categoryShift
	for i, v := range slots {
		if i == tieBreakSlots {
			break
		}
		s |= uint32(v&slotMask) << (slotBits * (tieBreakSlots - 1 - i))
	}
	return Score(s)
}

// straightScore packs the five consecutive ranks ending at high.
func straightScore(cat Category, high uint8) Score {
	return newScore(cat, high, high-1, high-2, high-3, high-4)
}

// slot converts a rank index to its tie-break slot value (0 for none).
func slot(rank int) uint8 {
	if rank < 0 {
		return 0
	}
	return uint8(rank) + 2
}

// Category returns the hand category encoded in the score.
func (s Score) Category() Category {
	return Category(s >> categoryShift)
}

// Ranks returns the decisive ranks in tie-break order. An ace playing low in
// the wheel is reported as Ace.
func (s Score) Ranks() []Rank {
	ranks := make([]Rank, 0, tieBreakSlots)
	for i := 0; i < tieBreakSlots; i++ {
		v := uint8(s>>(slotBits*(tieBreakSlots-1-i))) & slotMask
		if v == 0 {
			break
		}
		if v == lowAceSlot {
			ranks = append(ranks, Ace)
			continue
		}
		ranks = append(ranks, Rank(v-2))
	}
	return ranks
}

// Compare returns 1 if s is stronger, -1 if other is stronger, 0 for a tie.
func (s Score) Compare(other Score) int {
	switch {
	case s > other:
		return 1
	case s < other:
		return -1
	default:
		return 0
	}
}

// String describes the hand, e.g. "Full House, Threes over Twos".
func (s Score) String() string {
	ranks := s.Ranks()
	if len(ranks) == 0 {
		return s.Category().String()
	}

	switch s.Category() {
	case StraightFlush:
		if ranks[0] == Ace {
			return "Royal Flush"
		}
		return fmt.Sprintf("Straight Flush, %s high", ranks[0].Name())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s%s", ranks[0].Plural(), kickerSuffix(ranks[1:]))
	case FullHouse:
		return fmt.Sprintf("Full House, %s over %s", ranks[0].Plural(), ranks[1].Plural())
	case Flush:
		return fmt.Sprintf("Flush, %s high", ranks[0].Name())
	case Straight:
		return fmt.Sprintf("Straight, %s high", ranks[0].Name())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s%s", ranks[0].Plural(), kickerSuffix(ranks[1:]))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s%s", ranks[0].Plural(), ranks[1].Plural(), kickerSuffix(ranks[2:]))
	case OnePair:
		return fmt.Sprintf("One Pair, %s%s", ranks[0].Plural(), kickerSuffix(ranks[1:]))
	default:
		return fmt.Sprintf("High Card, %s high", ranks[0].Name())
	}
}

func kickerSuffix(kickers []Rank) string {
	if len(kickers) == 0 {
		return ""
	}
	return fmt.Sprintf(" with %s kicker", kickers[0].Name())
}
