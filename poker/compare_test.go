package poker

import (
	"math/rand"
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"flush beats straight", "2h 5h 7h 9h Jh", "Ts Jd Qc Kh As", 1},
		{"kicker decides", "As Ad Kc 4h 3s", "Ac Ah Qd 4c 3h", 1},
		{"lower two pair", "Ts Td 2c 2h 9s", "Js Jd 2d 2s 3c", -1},
		{"identical ranks tie", "As Kd Qh Jc 9s", "Ad Ks Qc Jh 9h", 0},
		{"wheel loses", "As 2d 3c 4h 5s", "2s 3d 4c 5h 6s", -1},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Compare(MustParseHand(tc.a), MustParseHand(tc.b))
			require.Equal(t, tc.want, got)
			require.Equal(t, -tc.want, Compare(MustParseHand(tc.b), MustParseHand(tc.a)))
		})
	}
}

func TestWinners(t *testing.T) {
	t.Parallel()
	board := "2c 7d 9h Ts Kc"
	hands := []Hand{
		MustParseHand("As Qd " + board),
		MustParseHand("Ah Qc " + board),
		MustParseHand("Kd 3s " + board),
		MustParseHand("8s 4d " + board),
	}

	require.Equal(t, []int{2}, Winners(hands...))
	require.Equal(t, []int{0, 1}, Winners(hands[0], hands[1], hands[3]))
	require.Nil(t, Winners())
}

// toOracle converts a card to github.com/paulhankin/poker, where aces are 1
// and two through king are 2..13.
func toOracle(t testing.TB, c Card) ph.Card {
	t.Helper()
	rank := ph.Rank(c.Rank() + 2)
	if c.Rank() == Ace {
		rank = 1
	}
	oc, err := ph.MakeCard(ph.Suit(c.Suit()), rank)
	require.NoError(t, err)
	return oc
}

func oracleScore(t testing.TB, h Hand) int16 {
	t.Helper()
	var cards [7]ph.Card
	for i, c := range h.Cards() {
		cards[i] = toOracle(t, c)
	}
	return ph.Eval7(&cards)
}

// Random seven-card hands must order the same way under both evaluators.
func TestEvaluateMatchesReferenceOrdering(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2024))

	const n = 400
	hands := make([]Hand, n)
	ours := make([]Score, n)
	theirs := make([]int16, n)
	for i := range hands {
		deck := NewDeck(rng)
		deck.Shuffle()
		h, err := deck.DealHand(7)
		require.NoError(t, err)
		hands[i] = h
		ours[i] = Evaluate(h)
		theirs[i] = oracleScore(t, h)
	}

	for i := 1; i < n; i++ {
		a, b := i-1, i
		want := 0
		switch {
		case theirs[a] > theirs[b]:
			want = 1
		case theirs[a] < theirs[b]:
			want = -1
		}
		require.Equalf(t, want, ours[a].Compare(ours[b]), "%s (%s) vs %s (%s)", hands[a], ours[a], hands[b], ours[b])
	}
}
