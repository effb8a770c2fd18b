package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pokereval/internal/config"
	"github.com/lox/pokereval/poker"
)

// App carries what every command needs once flags and config are resolved.
type App struct {
	ctx    context.Context
	config *config.Config
	logger *log.Logger
	out    io.Writer
	styles styles
}

type styles struct {
	header   lipgloss.Style
	hand     lipgloss.Style
	category lipgloss.Style
	win      lipgloss.Style
	tie      lipgloss.Style
	muted    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		win:      r.NewStyle().Foreground(lipgloss.Color("10")),
		tie:      r.NewStyle().Foreground(lipgloss.Color("11")),
		muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// newApp loads the config file, applies flag overrides and sets up output.
func newApp(ctx context.Context, g Globals, out, errOut io.Writer) (*App, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.NoColor {
		color := false
		cfg.Color = &color
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.Level()
	logger := log.NewWithOptions(errOut, log.Options{
		Level:  level,
		Prefix: "pokereval",
	})

	renderer := lipgloss.NewRenderer(out)
	if !cfg.ColorEnabled() {
		renderer.SetColorProfile(termenv.Ascii)
		logger.SetColorProfile(termenv.Ascii)
	}

	logger.Debug("Configuration loaded",
		"file", g.Config,
		"log_level", cfg.LogLevel,
		"color", cfg.ColorEnabled())

	return &App{
		ctx:    ctx,
		config: cfg,
		logger: logger,
		out:    out,
		styles: newStyles(renderer),
	}, nil
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
}

// parseHands parses each argument as a hand, naming the failing argument.
func parseHands(args []string) ([]poker.Hand, error) {
	hands := make([]poker.Hand, 0, len(args))
	for i, arg := range args {
		h, err := poker.ParseHand(arg)
		if err != nil {
			return nil, fmt.Errorf("hand %d %q: %w", i+1, arg, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// printShowdown writes one row per hand and marks the winners.
func (a *App) printShowdown(hands []poker.Hand) {
	winners := make(map[int]bool)
	best := poker.Winners(hands...)
	for _, i := range best {
		winners[i] = true
	}

	w := a.table()
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		a.styles.header.Render("#"),
		a.styles.header.Render("hand"),
		a.styles.header.Render("best"),
		a.styles.header.Render("result"))
	for i, h := range hands {
		res := poker.Analyze(h)
		outcome := a.styles.muted.Render("-")
		if winners[i] {
			if len(best) > 1 {
				outcome = a.styles.tie.Render("split")
			} else {
				outcome = a.styles.win.Render("wins")
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s  %s\n",
			i+1,
			a.styles.hand.Render(h.String()),
			poker.FormatCards(res.Best),
			a.styles.category.Render(res.Score.String()),
			outcome)
	}
	w.Flush()
}
