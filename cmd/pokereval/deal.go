package main

import (
	"fmt"
	"time"

	"github.com/lox/pokereval/internal/rng"
	"github.com/lox/pokereval/poker"
)

// DealCmd deals a table from a freshly shuffled deck.
type DealCmd struct {
	Players int    `short:"n" help:"Number of hands to deal (overrides config)"`
	Cards   int    `short:"k" help:"Cards per hand, 2 to 9 (overrides config)"`
	Seed    *int64 `help:"Random seed for a reproducible deal"`
	Secure  bool   `help:"Shuffle with the operating system's secure random source"`
}

// generator picks the shuffle source: --secure, then --seed, then the
// configured seed, then the clock.
func (cmd *DealCmd) generator(app *App) (rng.Generator, string) {
	switch {
	case cmd.Secure:
		return rng.Crypto{}, "crypto"
	case cmd.Seed != nil:
		return rng.NewSeeded(*cmd.Seed), fmt.Sprintf("seed %d", *cmd.Seed)
	case app.config.Equity.Seed != 0:
		return rng.NewSeeded(app.config.Equity.Seed), fmt.Sprintf("seed %d", app.config.Equity.Seed)
	default:
		seed := time.Now().UnixNano()
		return rng.NewSeeded(seed), fmt.Sprintf("seed %d", seed)
	}
}

func (cmd *DealCmd) Run(app *App) error {
	players := app.config.Deal.Players
	if cmd.Players > 0 {
		players = cmd.Players
	}
	size := app.config.Deal.Cards
	if cmd.Cards > 0 {
		size = cmd.Cards
	}
	if size < poker.MinHandSize || size > poker.MaxHandSize {
		return fmt.Errorf("%w: cannot deal %d-card hands", poker.ErrInvalidHandSize, size)
	}

	gen, source := cmd.generator(app)
	deck := poker.NewDeck(gen)
	deck.Shuffle()

	hands := make([]poker.Hand, 0, players)
	for i := 0; i < players; i++ {
		h, err := deck.DealHand(size)
		if err != nil {
			return fmt.Errorf("dealing hand %d of %d: %w", i+1, players, err)
		}
		hands = append(hands, h)
	}

	app.logger.Info("Dealt hands", "players", players, "cards", size, "source", source, "remaining", deck.Remaining())
	app.printShowdown(hands)
	return nil
}
