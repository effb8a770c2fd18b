package main

import (
	"fmt"
	"time"

	"github.com/lox/pokereval/internal/equity"
	"github.com/lox/pokereval/poker"
)

// EquityCmd estimates each player's share of the pot at showdown.
type EquityCmd struct {
	Holes      []string `arg:"" name:"hole" help:"Player hole cards in card notation, quoted (e.g. 'As Kd')"`
	Board      string   `short:"b" help:"Community cards already dealt (e.g. 'Td 7s 8h')"`
	Iterations int      `short:"i" help:"Number of Monte Carlo iterations (overrides config)"`
	Workers    int      `short:"w" help:"Worker goroutines (overrides config)"`
	Seed       *int64   `help:"Random seed for reproducible results"`
	Categories bool     `short:"p" help:"Show how often each player makes each hand category"`
}

func (cmd *EquityCmd) Run(app *App) error {
	holes := make([][]poker.Card, 0, len(cmd.Holes))
	for i, s := range cmd.Holes {
		cards, err := poker.ParseCards(s)
		if err != nil {
			return fmt.Errorf("player %d: %w", i+1, err)
		}
		holes = append(holes, cards)
	}

	board, err := poker.ParseCards(cmd.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	iterations := app.config.Equity.Iterations
	if cmd.Iterations > 0 {
		iterations = cmd.Iterations
	}
	workers := app.config.Equity.Workers
	if cmd.Workers > 0 {
		workers = cmd.Workers
	}
	seed := app.config.Equity.Seed
	if cmd.Seed != nil {
		seed = *cmd.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	estimator := equity.New(
		equity.WithLogger(app.logger.WithPrefix("equity")),
		equity.WithWorkers(workers),
	)
	res, err := estimator.Estimate(app.ctx, holes, board, iterations, seed)
	if err != nil {
		return err
	}

	app.printEquity(res, board, cmd.Categories)
	return nil
}

func (a *App) printEquity(res *equity.Result, board []poker.Card, categories bool) {
	if len(board) > 0 {
		fmt.Fprintf(a.out, "%s\n%s\n\n", a.styles.header.Render("board"), poker.FormatCards(board))
	}

	w := a.table()
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		a.styles.header.Render("hand"),
		a.styles.header.Render("win"),
		a.styles.header.Render("tie"),
		a.styles.header.Render("equity"))
	for _, p := range res.Players {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\n",
			a.styles.hand.Render(poker.FormatCards(p.Hole)),
			a.styles.win.Render(fmt.Sprintf("%.1f%%", p.WinRate()*100)),
			a.styles.tie.Render(fmt.Sprintf("%.1f%%", p.TieRate()*100)),
			fmt.Sprintf("%.1f%%", p.Equity()*100),
			a.styles.muted.Render(fmt.Sprintf("±%.1f", 1.96*p.StdError()*100)))
	}
	w.Flush()

	if categories {
		fmt.Fprintln(a.out)
		a.printCategories(res)
	}

	fmt.Fprintf(a.out, "\n%d iterations in %v\n", res.Iterations, res.Elapsed.Truncate(time.Millisecond))
}

// printCategories shows, strongest first, how often each player ends with
// each category.
func (a *App) printCategories(res *equity.Result) {
	w := a.table()
	fmt.Fprintf(w, "%s", a.styles.category.Render("hand"))
	for _, p := range res.Players {
		fmt.Fprintf(w, "\t%s", a.styles.hand.Render(poker.FormatCards(p.Hole)))
	}
	fmt.Fprintln(w)

	for c := poker.StraightFlush; ; c-- {
		seen := false
		for _, p := range res.Players {
			if p.Categories[c] > 0 {
				seen = true
			}
		}
		if seen {
			fmt.Fprintf(w, "%s", a.styles.category.Render(c.String()))
			for _, p := range res.Players {
				if n := p.Categories[c]; n > 0 {
					fmt.Fprintf(w, "\t%.1f%%", float64(n)/float64(res.Iterations)*100)
				} else {
					fmt.Fprintf(w, "\t%s", a.styles.muted.Render("."))
				}
			}
			fmt.Fprintln(w)
		}
		if c == poker.HighCard {
			break
		}
	}
	w.Flush()
}
