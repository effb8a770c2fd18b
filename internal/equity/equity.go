// Package equity estimates showdown win and tie rates by Monte Carlo
// simulation over the unseen cards.
package equity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokereval/internal/rng"
	"github.com/lox/pokereval/poker"
)

const (
	boardSize  = 5
	maxWorkers = 8
	// Workers check for cancellation every this many iterations.
	cancelCheckInterval = 1024
)

var (
	ErrTooFewPlayers = errors.New("at least two players are required")
	ErrBoardTooLarge = errors.New("board cannot have more than 5 cards")
)

// PlayerResult holds the showdown tallies for one player.
type PlayerResult struct {
	Hole       []poker.Card
	Wins       int
	Ties       int
	Categories map[poker.Category]int

	iterations int
}

// WinRate is the share of iterations the player won outright.
func (p PlayerResult) WinRate() float64 {
	if p.iterations == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.iterations)
}

// TieRate is the share of iterations the player split.
func (p PlayerResult) TieRate() float64 {
	if p.iterations == 0 {
		return 0
	}
	return float64(p.Ties) / float64(p.iterations)
}

// Equity counts a win as one and a tie as half.
func (p PlayerResult) Equity() float64 {
	if p.iterations == 0 {
		return 0
	}
	return (float64(p.Wins) + float64(p.Ties)/2.0) / float64(p.iterations)
}

// StdError returns the standard error of Equity. Each iteration scores 1 for
// a win, 0.5 for a tie and 0 otherwise.
func (p PlayerResult) StdError() float64 {
	n := float64(p.iterations)
	if n < 2 {
		return 0
	}
	mean := p.Equity()
	sumSq := float64(p.Wins) + float64(p.Ties)/4.0
	variance := (sumSq - n*mean*mean) / (n - 1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance / n)
}

// ConfidenceInterval95 returns the 95% confidence interval for Equity.
func (p PlayerResult) ConfidenceInterval95() (float64, float64) {
	mean := p.Equity()
	margin := 1.96 * p.StdError()
	return mean - margin, mean + margin
}

// Result is the outcome of one estimate.
type Result struct {
	Players    []PlayerResult
	Iterations int
	Workers    int
	Elapsed    time.Duration
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithLogger sets the logger used for run summaries.
func WithLogger(logger *log.Logger) Option {
	return func(e *Estimator) {
		e.logger = logger
	}
}

// WithClock replaces the clock used to time runs.
func WithClock(clock quartz.Clock) Option {
	return func(e *Estimator) {
		e.clock = clock
	}
}

// WithWorkers fixes the number of workers. Zero picks NumCPU capped at 8.
func WithWorkers(n int) Option {
	return func(e *Estimator) {
		e.workers = n
	}
}

// Estimator runs equity simulations. It is safe for concurrent use.
type Estimator struct {
	logger  *log.Logger
	clock   quartz.Clock
	workers int
}

// New creates an Estimator.
func New(opts ...Option) *Estimator {
	e := &Estimator{
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// workerCount picks the pool size, never more workers than iterations.
func (e *Estimator) workerCount(iterations int) int {
	workers := e.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > maxWorkers {
			workers = maxWorkers
		}
	}
	if workers > iterations {
		workers = iterations
	}
	return workers
}

// tally is one worker's share of the results.
type tally struct {
	wins       []int
	ties       []int
	categories [][poker.NumCategories]int
}

func newTally(players int) *tally {
	return &tally{
		wins:       make([]int, players),
		ties:       make([]int, players),
		categories: make([][poker.NumCategories]int, players),
	}
}

// Estimate deals the rest of the board iterations times and scores every
// player's hole cards plus the board at showdown. The same seed and worker
// count reproduce the same result.
func (e *Estimator) Estimate(ctx context.Context, holes [][]poker.Card, board []poker.Card, iterations int, seed int64) (*Result, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	used, err := validate(holes, board)
	if err != nil {
		return nil, err
	}

	start := e.clock.Now()

	holeSets := make([]poker.CardSet, len(holes))
	for i, hole := range holes {
		holeSets[i] = poker.NewCardSet(hole...)
	}
	boardSet := poker.NewCardSet(board...)
	available := unusedCards(used)
	need := boardSize - len(board)

	workers := e.workerCount(iterations)
	perWorker := iterations / workers
	remainder := iterations % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *tally, workers)
	master := rng.NewSeeded(seed)

	for w := 0; w < workers; w++ {
		workerIterations := perWorker
		if w < remainder {
			workerIterations++
		}
		workerSeed := master.Int64()

		g.Go(func() error {
			t, err := runWorker(ctx, holeSets, boardSet, available, need, workerIterations, rng.NewSeeded(workerSeed))
			if err != nil {
				return err
			}
			results <- t
			return nil
		})
	}

	err = g.Wait()
	close(results)
	if err != nil {
		return nil, err
	}

	total := newTally(len(holes))
	for t := range results {
		for p := range holes {
			total.wins[p] += t.wins[p]
			total.ties[p] += t.ties[p]
			for c, n := range t.categories[p] {
				total.categories[p][c] += n
			}
		}
	}

	res := &Result{
		Players:    make([]PlayerResult, len(holes)),
		Iterations: iterations,
		Workers:    workers,
		Elapsed:    e.clock.Now().Sub(start),
	}
	for p, hole := range holes {
		categories := make(map[poker.Category]int)
		for c, n := range total.categories[p] {
			if n > 0 {
				categories[poker.Category(c)] = n
			}
		}
		res.Players[p] = PlayerResult{
			Hole:       append([]poker.Card(nil), hole...),
			Wins:       total.wins[p],
			Ties:       total.ties[p],
			Categories: categories,
			iterations: iterations,
		}
	}

	e.logger.Debug("Equity estimate complete",
		"players", len(holes),
		"board", poker.FormatCards(board),
		"iterations", iterations,
		"workers", workers,
		"elapsed", res.Elapsed)

	return res, nil
}

// runWorker simulates iterations showdowns, completing the board with a
// partial Fisher-Yates shuffle of the unused cards.
func runWorker(ctx context.Context, holes []poker.CardSet, board poker.CardSet, available []poker.Card,
	need, iterations int, r rng.Generator) (*tally, error) {

	t := newTally(len(holes))
	deck := append([]poker.Card(nil), available...)
	scores := make([]poker.Score, len(holes))

	for i := 0; i < iterations; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		runout := board
		for k := 0; k < need; k++ {
			j := k + r.Intn(len(deck)-k)
			deck[k], deck[j] = deck[j], deck[k]
			runout.Add(deck[k])
		}

		best := poker.Score(0)
		winners := 0
		for p, hole := range holes {
			scores[p] = poker.EvaluateSet(hole | runout)
			t.categories[p][scores[p].Category()]++
			switch {
			case scores[p] > best:
				best = scores[p]
				winners = 1
			case scores[p] == best:
				winners++
			}
		}

		for p := range holes {
			if scores[p] != best {
				continue
			}
			if winners == 1 {
				t.wins[p]++
			} else {
				t.ties[p]++
			}
		}
	}

	return t, nil
}

// validate checks the table and returns every card in play.
func validate(holes [][]poker.Card, board []poker.Card) (poker.CardSet, error) {
	if len(holes) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewPlayers, len(holes))
	}
	if len(board) > boardSize {
		return 0, fmt.Errorf("%w: got %d", ErrBoardTooLarge, len(board))
	}

	var used poker.CardSet
	add := func(c poker.Card, where string) error {
		if !c.Valid() {
			return fmt.Errorf("%s: %w", where, poker.ErrInvalidNotation)
		}
		if used.Contains(c) {
			return fmt.Errorf("%s: %w: %s", where, poker.ErrDuplicateCard, c)
		}
		used.Add(c)
		return nil
	}

	for _, c := range board {
		if err := add(c, "board"); err != nil {
			return 0, err
		}
	}
	for i, hole := range holes {
		if size := len(hole) + boardSize; size < poker.MinHandSize || size > poker.MaxHandSize {
			return 0, fmt.Errorf("player %d: %w: %d hole cards", i+1, poker.ErrInvalidHandSize, len(hole))
		}
		for _, c := range hole {
			if err := add(c, fmt.Sprintf("player %d", i+1)); err != nil {
				return 0, err
			}
		}
	}

	if poker.DeckSize-used.Count() < boardSize-len(board) {
		return 0, poker.ErrInsufficientCards
	}
	return used, nil
}

func unusedCards(used poker.CardSet) []poker.Card {
	all := poker.CardSet(1)<<poker.DeckSize - 1
	return (all &^ used).Cards()
}
