package poker

import (
	"math/bits"
)

// Evaluate scores the best poker hand that can be made from h.
// Hands with fewer than five cards can only make High Card, One Pair,
// Two Pair or Three of a Kind.
func Evaluate(h Hand) Score {
	return EvaluateSet(h.set)
}

// EvaluateSet scores a set of 2 to 9 cards. Sets outside that range are
// scored the same way but have no meaning in comparisons.
func EvaluateSet(cs CardSet) Score {
	var suitMasks [NumSuits]uint16
	var counts [NumRanks]uint8
	var rankMask uint16
	for s := range suitMasks {
		mask := cs.SuitMask(Suit(s))
		suitMasks[s] = mask
		rankMask |= mask
		for m := mask; m != 0; m &= m - 1 {
			counts[bits.TrailingZeros16(m)]++
		}
	}

	// Straights, flushes and the full boat all need five cards.
	full := cs.Count() >= 5

	// Check every suit: a 9-card hand may hold a straight flush in a suit
	// whose top five ranks are not the best flush.
	var flushMask uint16
	if full {
		var sfHigh uint8
		for _, mask := range suitMasks {
			if bits.OnesCount16(mask) < 5 {
				continue
			}
			if high := straightTable[mask]; high > sfHigh {
				sfHigh = high
			}
			if top := topRanks(mask, 5); top > flushMask {
				flushMask = top
			}
		}
		if sfHigh > 0 {
			return straightScore(StraightFlush, sfHigh)
		}
	}

	var quadsMask, tripsMask, pairsMask uint16
	for r, n := range counts {
		switch {
		case n == 4:
			quadsMask |= 1 << r
		case n == 3:
			tripsMask |= 1 << r
		case n == 2:
			pairsMask |= 1 << r
		}
	}

	if full && quadsMask != 0 {
		quad := highestRank(quadsMask)
		kicker := highestRank(rankMask &^ (1 << quad))
		return newScore(FourOfAKind, slot(quad), slot(kicker))
	}

	if full && tripsMask != 0 {
		trip := highestRank(tripsMask)
		// A second set of trips can fill the pair.
		if pair := highestRank((tripsMask | pairsMask) &^ (1 << trip)); pair >= 0 {
			return newScore(FullHouse, slot(trip), slot(pair))
		}
	}

	if flushMask != 0 {
		return newScore(Flush, slotsFromMask(flushMask)...)
	}

	if full {
		if high := straightTable[rankMask]; high > 0 {
			return straightScore(Straight, high)
		}
	}

	// Quads only reach here in a four-card hand, where they play as trips
	// with the fourth card as kicker.
	if trip := highestRank(tripsMask | quadsMask); trip >= 0 {
		rest := counts
		rest[trip] -= 3
		return newScore(ThreeOfAKind, append([]uint8{slot(trip)}, kickers(rest, 2)...)...)
	}

	if pair1 := highestRank(pairsMask); pair1 >= 0 {
		rest := counts
		rest[pair1] -= 2
		if pair2 := highestRank(pairsMask &^ (1 << pair1)); pair2 >= 0 {
			rest[pair2] -= 2
			// A third pair competes for the kicker like any other card.
			return newScore(TwoPair, append([]uint8{slot(pair1), slot(pair2)}, kickers(rest, 1)...)...)
		}
		return newScore(OnePair, append([]uint8{slot(pair1)}, kickers(rest, 3)...)...)
	}

	return newScore(HighCard, kickers(counts, 5)...)
}

// highestRank returns the highest rank present in the bitmask (or -1 when empty).
func highestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// kickers returns the slot values of the n highest remaining cards, counting
// repeated ranks once per card.
func kickers(counts [NumRanks]uint8, n int) []uint8 {
	out := make([]uint8, 0, n)
	for r := int(Ace); r >= 0 && len(out) < n; r-- {
		for c := counts[r]; c > 0 && len(out) < n; c-- {
			out = append(out, slot(r))
		}
	}
	return out
}

// topRanks keeps the n highest bits of mask.
func topRanks(mask uint16, n int) uint16 {
	for bits.OnesCount16(mask) > n {
		mask &= mask - 1
	}
	return mask
}

// slotsFromMask lists the ranks in mask from high to low as slot values.
func slotsFromMask(mask uint16) []uint8 {
	out := make([]uint8, 0, bits.OnesCount16(mask))
	for mask != 0 {
		r := highestRank(mask)
		out = append(out, slot(r))
		mask &^= 1 << r
	}
	return out
}

// straightTable maps a 13-bit rank mask to the slot value of the highest
// card of the best straight it contains: 5 for the wheel, 0 for none.
var straightTable = func() [1 << NumRanks]uint8 {
	var table [1 << NumRanks]uint8
	for mask := range len(table) {
		table[mask] = straightHighMask(uint16(mask))
	}
	return table
}()

// straightHighMask finds the best straight in a rank mask with a bitwise
// cascade, falling back to the ace-low wheel.
func straightHighMask(mask uint16) uint8 {
	const wheelMask = 0x100F // Ace + 2-3-4-5

	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := highestRank(seq)
		return slot(low + 4)
	}
	if mask&wheelMask == wheelMask {
		return 5
	}
	return 0
}

// Result is a full evaluation of a hand.
type Result struct {
	Score    Score
	Category Category
	// Best holds the cards that make up the scored combination, grouped the
	// way the hand is read (e.g. trips before the pair of a full house).
	Best []Card
}

// String returns the hand description followed by the best cards.
func (r Result) String() string {
	return r.Score.String() + " [" + FormatCards(r.Best) + "]"
}

// cardsPerRank gives how many cards each tie-break rank contributes.
var cardsPerRank = [NumCategories][]int{
	HighCard:      {1, 1, 1, 1, 1},
	OnePair:       {2, 1, 1, 1},
	TwoPair:       {2, 2, 1},
	ThreeOfAKind:  {3, 1, 1},
	Straight:      {1, 1, 1, 1, 1},
	Flush:         {1, 1, 1, 1, 1},
	FullHouse:     {3, 2},
	FourOfAKind:   {4, 1},
	StraightFlush: {1, 1, 1, 1, 1},
}

// Analyze evaluates h and picks out the cards that form the scored hand.
func Analyze(h Hand) Result {
	score := Evaluate(h)
	return Result{
		Score:    score,
		Category: score.Category(),
		Best:     bestCards(h.set, score),
	}
}

func bestCards(cs CardSet, score Score) []Card {
	cat := score.Category()
	ranks := score.Ranks()

	pool := cs
	if cat == Flush || cat == StraightFlush {
		pool = flushPool(cs, ranks)
	}

	shape := cardsPerRank[cat]
	best := make([]Card, 0, 5)
	for i, r := range ranks {
		if i >= len(shape) {
			break
		}
		want := shape[i]
		for s := int(Spades); s >= int(Clubs) && want > 0; s-- {
			c := NewCard(r, Suit(s))
			if pool.Contains(c) {
				best = append(best, c)
				pool &^= CardSet(c)
				want--
			}
		}
	}
	return best
}

// flushPool restricts cs to the suit holding every one of ranks.
func flushPool(cs CardSet, ranks []Rank) CardSet {
	var need uint16
	for _, r := range ranks {
		need |= 1 << r
	}
	for s := Clubs; s <= Spades; s++ {
		if mask := cs.SuitMask(s); mask&need == need {
			return CardSet(uint64(mask) << (uint(s) * NumRanks))
		}
	}
	return cs
}
