package poker

import "errors"

var (
	// ErrInvalidNotation is returned when a card token is not a recognized rank+suit pair.
	ErrInvalidNotation = errors.New("invalid card notation")

	// ErrDuplicateCard is returned when the same card is supplied more than once.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrInvalidHandSize is returned when a hand has fewer than MinHandSize or
	// more than MaxHandSize cards.
	ErrInvalidHandSize = errors.New("invalid hand size")

	// ErrInsufficientCards is returned when a deal asks for more cards than remain.
	ErrInsufficientCards = errors.New("insufficient cards in deck")
)
