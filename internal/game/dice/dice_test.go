package dice_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dystoria/internal/game/dice"
)

// fixedSource returns values from a fixed script, cycling when exhausted.
type fixedSource struct {
	vals []int
	i    int
}

func (f *fixedSource) Intn(n int) int {
	v := f.vals[f.i%len(f.vals)] % n
	f.i++
	return v
}

// TestRollResult_Total verifies the postcondition: Total() == sum(Dice) + Modifier.
func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{
		Expression: "2d6+3",
		Dice:       []int{4, 5},
		Modifier:   3,
	}
	assert.Equal(t, 12, r.Total(), "Total() must equal sum(Dice)+Modifier")
}

// TestRollResult_String verifies the audit string format.
func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{
		Expression: "1d11+4",
		Dice:       []int{7},
		Modifier:   4,
	}
	assert.Equal(t, "1d11+4 → [7] +4 = 11", r.String())
}

func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}, Modifier: 0}
	assert.Panics(t, func() { _ = r.String() })
}

func TestParse_Forms(t *testing.T) {
	cases := []struct {
		in                string
		count, sides, mod int
	}{
		{"d20", 1, 20, 0},
		{"2d6", 2, 6, 0},
		{"1d11+4", 1, 11, 4},
		{"4d8-2", 4, 8, -2},
		{"1D6", 1, 6, 0},
	}
	for _, tc := range cases {
		e, err := dice.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.count, e.Count, tc.in)
		assert.Equal(t, tc.sides, e.Sides, tc.in)
		assert.Equal(t, tc.mod, e.Modifier, tc.in)
		assert.Equal(t, tc.in, e.Raw)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "20", "0d6", "xd6", "1d1", "1dx", "1d6+x"} {
		_, err := dice.Parse(in)
		assert.Error(t, err, "expected error for %q", in)
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("bogus") })
	assert.NotPanics(t, func() { dice.MustParse("1d11+4") })
}

func TestExpression_Bounds(t *testing.T) {
	e := dice.MustParse("1d11+4")
	assert.Equal(t, 5, e.Min())
	assert.Equal(t, 15, e.Max())
}

func TestRoll_UsesSource(t *testing.T) {
	src := &fixedSource{vals: []int{0, 10}}
	r := dice.Roll(dice.MustParse("2d11+4"), src)
	assert.Equal(t, []int{1, 11}, r.Dice)
	assert.Equal(t, 16, r.Total())
}

// TestProperty_Roll_WithinBounds verifies every roll lies in [Min, Max].
func TestProperty_Roll_WithinBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 5).Draw(rt, "count")
		sides := rapid.IntRange(2, 20).Draw(rt, "sides")
		mod := rapid.IntRange(-10, 10).Draw(rt, "mod")
		expr := dice.MustParse(fmt.Sprintf("%dd%d%+d", count, sides, mod))
		seed := rapid.Int64().Draw(rt, "seed")
		total := dice.Roll(expr, dice.NewSeededSource(seed)).Total()
		assert.GreaterOrEqual(rt, total, expr.Min())
		assert.LessOrEqual(rt, total, expr.Max())
	})
}

// TestProperty_Between_Inclusive verifies Between stays within [lo, hi].
func TestProperty_Between_Inclusive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(-50, 50).Draw(rt, "lo")
		hi := rapid.IntRange(lo, lo+50).Draw(rt, "hi")
		v := dice.Between(dice.NewSeededSource(rapid.Int64().Draw(rt, "seed")), lo, hi)
		assert.GreaterOrEqual(rt, v, lo)
		assert.LessOrEqual(rt, v, hi)
	})
}

func TestBetween_HitsBothEnds(t *testing.T) {
	assert.Equal(t, 15, dice.Between(&fixedSource{vals: []int{0}}, 15, 25))
	assert.Equal(t, 25, dice.Between(&fixedSource{vals: []int{10}}, 15, 25))
	assert.Equal(t, 7, dice.Between(&fixedSource{vals: []int{3}}, 7, 7))
}

func TestBetween_PanicsWhenInverted(t *testing.T) {
	assert.Panics(t, func() { dice.Between(dice.NewCryptoSource(), 5, 4) })
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(7)
	b := dice.NewSeededSource(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Panics(t, func() { a.Intn(-1) })
}

func TestNewSource_ZeroSeedIsCrypto(t *testing.T) {
	src := dice.NewSource(0)
	v := src.Intn(3)
	assert.True(t, v >= 0 && v < 3)
}

func TestRoller_LogsRolls(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(&fixedSource{vals: []int{6}}, zap.New(core))

	res := r.Roll(dice.MustParse("1d11+4"))
	assert.Equal(t, 11, res.Total())

	_ = r.Intn(4)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "dice roll", entries[0].Message)
	assert.True(t, strings.Contains(entries[1].Message, "random draw"))
	assert.Equal(t, int64(11), entries[0].ContextMap()["total"])
}
