package poker

import (
	"errors"
	"math/bits"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(King, Diamonds)},
		{name: "ten of clubs", input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{name: "lower case rank", input: "qs", wantCard: NewCard(Queen, Spades)},
		{name: "upper case suit", input: "9S", wantCard: NewCard(Nine, Spades)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "numeric ten", input: "10s", wantErr: true},
		{name: "one is not a rank", input: "1c", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidNotation) {
					t.Fatalf("ParseCard(%q) error = %v, want ErrInvalidNotation", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tc.input, err)
			}
			if card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	cards := make(map[string]bool)

	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(rank, suit)
			if !card.Valid() {
				t.Errorf("Card %s should be valid", card)
			}
			str := card.String()

			if cards[str] {
				t.Errorf("Duplicate card: %s", str)
			}
			cards[str] = true

			parsed, err := ParseCard(str)
			if err != nil {
				t.Errorf("Failed to parse %s: %v", str, err)
			}
			if parsed != card {
				t.Errorf("Round-trip failed for %s", str)
			}
		}
	}

	if len(cards) != DeckSize {
		t.Errorf("Expected 52 unique cards, got %d", len(cards))
	}
}

func TestCardValid(t *testing.T) {
	t.Parallel()
	if Card(0).Valid() {
		t.Error("Zero card should be invalid")
	}
	if (NewCard(Ace, Spades) | NewCard(King, Spades)).Valid() {
		t.Error("Two bits should not be a valid card")
	}
	if Card(1 << 52).Valid() {
		t.Error("Bit 52 is outside the deck")
	}
	if Card(0).String() != "??" {
		t.Errorf("Invalid card should render as ??, got %s", Card(0).String())
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("As  Kh\tQd")
	if err != nil {
		t.Fatalf("ParseCards failed: %v", err)
	}
	want := []Card{NewCard(Ace, Spades), NewCard(King, Hearts), NewCard(Queen, Diamonds)}
	if len(cards) != len(want) {
		t.Fatalf("Expected %d cards, got %d", len(want), len(cards))
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("card %d = %s, want %s", i, cards[i], want[i])
		}
	}

	empty, err := ParseCards("")
	if err != nil || len(empty) != 0 {
		t.Errorf("Empty string should give no cards, got %v, %v", empty, err)
	}

	if _, err := ParseCards("As Kx"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("Expected ErrInvalidNotation, got %v", err)
	}
	if _, err := ParseCards("AsKs"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("Concatenated tokens should be rejected, got %v", err)
	}
}

func TestMustParseCardPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCard() should panic on invalid input")
		}
	}()
	MustParseCard("invalid")
}

func TestCardSetBitset(t *testing.T) {
	t.Parallel()
	aceSpades := MustParseCard("As")
	aceHearts := MustParseCard("Ah")
	twoClubs := MustParseCard("2c")

	if bits.OnesCount64(uint64(aceSpades)) != 1 {
		t.Error("Card should be a single bit")
	}
	if aceSpades&aceHearts != 0 || aceSpades&twoClubs != 0 || aceHearts&twoClubs != 0 {
		t.Error("Different cards should not share bits")
	}

	set := NewCardSet(aceSpades, aceHearts, twoClubs, aceSpades)
	if set.Count() != 3 {
		t.Errorf("Set should have 3 cards, got %d", set.Count())
	}
	if !set.Contains(aceHearts) || set.Contains(MustParseCard("Kd")) {
		t.Error("Contains reported the wrong membership")
	}
	if got := FormatCards(set.Cards()); got != "2c Ah As" {
		t.Errorf("Cards() should be in deck order, got %q", got)
	}
}

func TestGetSuitMask(t *testing.T) {
	t.Parallel()
	var set CardSet
	for rank := Two; rank <= Ace; rank++ {
		set.Add(NewCard(rank, Spades))
	}

	if mask := set.SuitMask(Spades); mask != 0x1FFF {
		t.Errorf("Expected all spades, got mask %016b", mask)
	}
	if set.SuitMask(Hearts) != 0 {
		t.Error("Hearts should be empty")
	}

	set.Add(MustParseCard("2h"))
	if set.RankMask() != 0x1FFF {
		t.Errorf("Rank mask should cover every rank, got %016b", set.RankMask())
	}
}

func TestRankNames(t *testing.T) {
	t.Parallel()
	if Six.Plural() != "Sixes" {
		t.Errorf("Six plural = %s", Six.Plural())
	}
	if Queen.Plural() != "Queens" {
		t.Errorf("Queen plural = %s", Queen.Plural())
	}
	if Ten.String() != "T" || Hearts.String() != "h" {
		t.Errorf("Unexpected symbols %s %s", Ten, Hearts)
	}
}

func BenchmarkCardString(b *testing.B) {
	card := NewCard(Ace, Spades)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = card.String()
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}
