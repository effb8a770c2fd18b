package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokereval/poker"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	g := Globals{
		Config:   filepath.Join(t.TempDir(), "missing.hcl"),
		LogLevel: "debug",
		NoColor:  true,
	}
	app, err := newApp(context.Background(), g, &out, &errOut)
	require.NoError(t, err)
	return app, &out, &errOut
}

func int64Ptr(v int64) *int64 { return &v }

func TestEvalCmd(t *testing.T) {
	app, out, _ := newTestApp(t)

	cmd := &EvalCmd{Hands: []string{"2h 2d 3h 3c 3d", "Ts Js Qs Ks As", "As Ad"}, Score: true}
	require.NoError(t, cmd.Run(app))

	assert.Contains(t, out.String(), "Full House, Threes over Twos")
	assert.Contains(t, out.String(), "Royal Flush")
	assert.Contains(t, out.String(), "One Pair, Aces")
	assert.Contains(t, out.String(), "0x8edcba")
}

func TestEvalCmdRejectsBadHands(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := (&EvalCmd{Hands: []string{"As As"}}).Run(app)
	require.ErrorIs(t, err, poker.ErrDuplicateCard)
	assert.Contains(t, err.Error(), "hand 1")

	err = (&EvalCmd{Hands: []string{"As"}}).Run(app)
	require.ErrorIs(t, err, poker.ErrInvalidHandSize)

	err = (&EvalCmd{Hands: []string{"As Kd", "Ax Kd"}}).Run(app)
	require.ErrorIs(t, err, poker.ErrInvalidNotation)
	assert.Contains(t, err.Error(), "hand 2")
}

func TestCompareCmd(t *testing.T) {
	app, out, _ := newTestApp(t)

	cmd := &CompareCmd{Hands: []string{"As Kd Qh Jc 9s", "Ad Ks Qc Jh 9h", "7c 2d"}}
	require.NoError(t, cmd.Run(app))
	assert.Contains(t, out.String(), "split")
	assert.NotContains(t, out.String(), "wins")

	out.Reset()
	cmd = &CompareCmd{Hands: []string{"As Ad", "Ks Kd Kh"}}
	require.NoError(t, cmd.Run(app))
	assert.Contains(t, out.String(), "wins")
	assert.Contains(t, out.String(), "Three of a Kind, Kings")

	require.Error(t, (&CompareCmd{Hands: []string{"As Ad"}}).Run(app))
}

func TestDealCmdIsReproducibleWithSeed(t *testing.T) {
	app, out, errOut := newTestApp(t)

	cmd := &DealCmd{Players: 3, Cards: 7, Seed: int64Ptr(42)}
	require.NoError(t, cmd.Run(app))
	first := out.String()

	out.Reset()
	require.NoError(t, cmd.Run(app))
	assert.Equal(t, first, out.String())
	assert.Contains(t, errOut.String(), "Dealt hands")
	assert.Contains(t, errOut.String(), "remaining=31")
}

func TestDealCmdSecure(t *testing.T) {
	app, out, _ := newTestApp(t)

	require.NoError(t, (&DealCmd{Players: 2, Cards: 5, Secure: true}).Run(app))
	assert.Contains(t, out.String(), "best")
}

func TestDealCmdErrors(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := (&DealCmd{Players: 6, Cards: 9, Seed: int64Ptr(1)}).Run(app)
	require.ErrorIs(t, err, poker.ErrInsufficientCards)

	err = (&DealCmd{Players: 2, Cards: 10}).Run(app)
	require.ErrorIs(t, err, poker.ErrInvalidHandSize)
}

func TestEquityCmd(t *testing.T) {
	app, out, _ := newTestApp(t)

	cmd := &EquityCmd{
		Holes:      []string{"As Qd", "Kd 3s"},
		Board:      "2c 7d 9h Ts Kc",
		Iterations: 200,
		Workers:    2,
		Seed:       int64Ptr(5),
		Categories: true,
	}
	require.NoError(t, cmd.Run(app))

	assert.Contains(t, out.String(), "board")
	assert.Contains(t, out.String(), "100.0%")
	assert.Contains(t, out.String(), "One Pair")
	assert.Contains(t, out.String(), "200 iterations")
}

func TestEquityCmdErrors(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := (&EquityCmd{Holes: []string{"As Ad", "As Kd"}, Iterations: 10}).Run(app)
	require.ErrorIs(t, err, poker.ErrDuplicateCard)

	err = (&EquityCmd{Holes: []string{"As Ad", "Kc Kd"}, Board: "2c 3x", Iterations: 10}).Run(app)
	require.ErrorIs(t, err, poker.ErrInvalidNotation)
}

func TestNewAppRejectsBadLogLevel(t *testing.T) {
	g := Globals{Config: filepath.Join(t.TempDir(), "missing.hcl"), LogLevel: "chatty"}
	_, err := newApp(context.Background(), g, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func parseArgs(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	var stdout, stderr bytes.Buffer
	parser, err := kong.New(&cli, append(kongOptions(),
		kong.Writers(&stdout, &stderr),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)...)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestCommandLineParsing(t *testing.T) {
	cli, ctx := parseArgs(t, "--no-color", "equity", "As Ad", "Kc Kd", "--board", "2c 7d 9h", "-i", "500")
	assert.Contains(t, ctx.Command(), "equity")
	assert.True(t, cli.NoColor)
	assert.Equal(t, "pokereval.hcl", cli.Config)
	assert.Equal(t, []string{"As Ad", "Kc Kd"}, cli.Equity.Holes)
	assert.Equal(t, "2c 7d 9h", cli.Equity.Board)
	assert.Equal(t, 500, cli.Equity.Iterations)
	assert.Nil(t, cli.Equity.Seed)

	cli, ctx = parseArgs(t, "deal", "--seed", "7", "-n", "4", "--log-level", "warn")
	assert.Contains(t, ctx.Command(), "deal")
	require.NotNil(t, cli.Deal.Seed)
	assert.Equal(t, int64(7), *cli.Deal.Seed)
	assert.Equal(t, 4, cli.Deal.Players)
	assert.Equal(t, "warn", cli.LogLevel)
}
