package attribute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dystoria/internal/game/attribute"
)

func TestHealth_ReduceScenario(t *testing.T) {
	h := attribute.NewHealth(100, attribute.DefaultHealthCap)
	assert.Equal(t, 100, h.Value())
	h.Reduce(30)
	assert.Equal(t, 70, h.Value())
	h.Reduce(90)
	assert.Equal(t, 0, h.Value(), "health must floor at zero, not -20")
	assert.True(t, h.Depleted())
}

func TestHealth_AddClampsAtCap(t *testing.T) {
	h := attribute.NewHealth(90, 100)
	h.Add(5)
	assert.Equal(t, 95, h.Value())
	h.Add(50)
	assert.Equal(t, 100, h.Value())
	assert.Equal(t, "100/100", h.String())
}

func TestNewHealth_ClampsToCap(t *testing.T) {
	h := attribute.NewHealth(150, 120)
	assert.Equal(t, 120, h.Value())
	assert.Equal(t, 120, h.Cap())
}

func TestNewHealth_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { attribute.NewHealth(-1, 100) })
	assert.Panics(t, func() { attribute.NewHealth(10, -1) })
}

func TestProperty_Health_Reduce(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.IntRange(0, 500).Draw(rt, "start")
		amount := rapid.IntRange(0, 1000).Draw(rt, "amount")
		h := attribute.NewHealth(start, 500)
		h.Reduce(amount)
		assert.Equal(rt, max(0, start-amount), h.Value())
		assert.GreaterOrEqual(rt, h.Value(), 0)
	})
}

func TestProperty_Health_StaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		limit := rapid.IntRange(0, 300).Draw(rt, "limit")
		h := attribute.NewHealth(rapid.IntRange(0, 300).Draw(rt, "start"), limit)
		ops := rapid.SliceOf(rapid.IntRange(-200, 200)).Draw(rt, "ops")
		for _, op := range ops {
			if op < 0 {
				h.Reduce(-op)
			} else {
				h.Add(op)
			}
			if h.Value() < 0 || h.Value() > limit {
				rt.Fatalf("health %d out of [0, %d]", h.Value(), limit)
			}
		}
	})
}

func TestStealth_ModifyScenario(t *testing.T) {
	s := attribute.NewStealth(50)
	assert.Equal(t, 50, s.Value())
	s.Modify(-20)
	assert.Equal(t, 30, s.Value())
	s.Modify(-50)
	assert.Equal(t, 0, s.Value(), "visibility must floor at zero, not -20")
}

func TestStealth_Exposed(t *testing.T) {
	s := attribute.NewStealth(59)
	assert.False(t, s.Exposed(60))
	s.Modify(1)
	assert.True(t, s.Exposed(60))
	s.Modify(500)
	assert.Equal(t, 560, s.Value(), "visibility has no upper bound")
}

func TestNewStealth_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { attribute.NewStealth(-5) })
}

func TestProperty_Stealth_Modify(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.IntRange(0, 200).Draw(rt, "start")
		delta := rapid.IntRange(-300, 300).Draw(rt, "delta")
		s := attribute.NewStealth(start)
		s.Modify(delta)
		assert.Equal(rt, max(0, start+delta), s.Value())
	})
}

func TestHunger_ReduceAndIncrease(t *testing.T) {
	h := attribute.NewHunger(100)
	assert.True(t, h.Starving())
	h.Reduce(20)
	assert.Equal(t, 80, h.Value())
	h.Increase(50)
	assert.Equal(t, 100, h.Value(), "hunger caps at 100")
	h.Reduce(500)
	assert.Equal(t, 0, h.Value())
	assert.Equal(t, "0/100", h.String())
}

func TestNewHunger_Clamps(t *testing.T) {
	assert.Equal(t, 100, attribute.NewHunger(250).Value())
	assert.Equal(t, 0, attribute.NewHunger(-3).Value())
}

func TestProperty_Hunger_StaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := attribute.NewHunger(rapid.IntRange(-50, 150).Draw(rt, "start"))
		ops := rapid.SliceOf(rapid.IntRange(-150, 150)).Draw(rt, "ops")
		for _, op := range ops {
			if op < 0 {
				h.Reduce(-op)
			} else {
				h.Increase(op)
			}
			if h.Value() < 0 || h.Value() > attribute.MaxHunger {
				rt.Fatalf("hunger %d out of [0, %d]", h.Value(), attribute.MaxHunger)
			}
		}
	})
}
