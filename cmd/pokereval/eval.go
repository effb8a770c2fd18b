package main

import (
	"errors"
	"fmt"

	"github.com/lox/pokereval/poker"
)

// EvalCmd scores each hand on its own.
type EvalCmd struct {
	Hands []string `arg:"" name:"hand" help:"Hands in card notation, quoted (e.g. 'As Kd Qh Jc Ts')"`
	Score bool     `short:"s" help:"Also print the raw numeric score"`
}

func (cmd *EvalCmd) Run(app *App) error {
	hands, err := parseHands(cmd.Hands)
	if err != nil {
		return err
	}

	w := app.table()
	for _, h := range hands {
		res := poker.Analyze(h)
		fmt.Fprintf(w, "%s\t%s\t%s",
			app.styles.hand.Render(h.String()),
			app.styles.category.Render(res.Score.String()),
			poker.FormatCards(res.Best))
		if cmd.Score {
			fmt.Fprintf(w, "\t%#07x", uint32(res.Score))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// CompareCmd ranks hands against each other.
type CompareCmd struct {
	Hands []string `arg:"" name:"hand" help:"Two or more hands in card notation, quoted"`
}

func (cmd *CompareCmd) Run(app *App) error {
	if len(cmd.Hands) < 2 {
		return errors.New("compare needs at least two hands")
	}
	hands, err := parseHands(cmd.Hands)
	if err != nil {
		return err
	}

	app.printShowdown(hands)
	app.logger.Debug("Compared hands", "hands", len(hands), "winners", poker.Winners(hands...))
	return nil
}
