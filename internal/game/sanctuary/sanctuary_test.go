package sanctuary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dystoria/internal/game/actor"
	"github.com/cory-johannsen/dystoria/internal/game/dice"
	"github.com/cory-johannsen/dystoria/internal/game/inventory"
	"github.com/cory-johannsen/dystoria/internal/game/npc"
	"github.com/cory-johannsen/dystoria/internal/game/sanctuary"
)

type fixedSource struct{ v int }

func (f fixedSource) Intn(n int) int { return f.v % n }

func enemy(name string) *npc.Enemy {
	return npc.NewEnemy(&npc.Template{Name: name, MaxHealth: 40, Damage: 5})
}

func TestNew_CopiesStock(t *testing.T) {
	bows := []*inventory.Bow{inventory.NewBow("Elven Bow", 15, 25)}
	s := sanctuary.New("Shadow Grove", bows, nil, nil, []*npc.Enemy{enemy("Orc")})
	bows[0] = nil

	assert.Equal(t, "Shadow Grove", s.Name())
	require.Len(t, s.Bows(), 1)
	assert.NotNil(t, s.Bows()[0])
	assert.Empty(t, s.Quivers())
	assert.Empty(t, s.Provisions())
	assert.Len(t, s.Enemies(), 1)
}

func TestRandomEnemy_EmptyPool(t *testing.T) {
	s := sanctuary.New("Empty", nil, nil, nil, nil)
	e, ok := s.RandomEnemy(fixedSource{})
	assert.False(t, ok)
	assert.Nil(t, e)
	assert.True(t, s.Cleared())
}

func TestRandomEnemy_UsesSource(t *testing.T) {
	a, b := enemy("Orc"), enemy("Goblin")
	s := sanctuary.New("Grove", nil, nil, nil, []*npc.Enemy{a, b})

	got, ok := s.RandomEnemy(fixedSource{1})
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestRemoveEnemy(t *testing.T) {
	a, b := enemy("Orc"), enemy("Goblin")
	s := sanctuary.New("Grove", nil, nil, nil, []*npc.Enemy{a, b})

	assert.True(t, s.RemoveEnemy(a))
	assert.False(t, s.RemoveEnemy(a))
	assert.Equal(t, []*npc.Enemy{b}, s.Enemies())
	assert.False(t, s.Cleared())

	assert.True(t, s.RemoveEnemy(b))
	assert.True(t, s.Cleared())
}

func TestTake(t *testing.T) {
	bow := inventory.NewBow("Elven Bow", 15, 25)
	quiver := inventory.NewQuiver("Basic Quiver", 10)
	ration := inventory.NewProvision("Trail Ration", 25)
	s := sanctuary.New("Grove", []*inventory.Bow{bow}, []*inventory.Quiver{quiver}, []*inventory.Provision{ration}, nil)

	assert.True(t, s.Take(quiver))
	assert.False(t, s.Take(quiver))
	assert.Empty(t, s.Quivers())
	assert.Len(t, s.Bows(), 1)

	assert.True(t, s.Take(bow))
	assert.True(t, s.Take(ration))
	assert.Empty(t, s.Bows())
	assert.Empty(t, s.Provisions())
}

func TestAddResident(t *testing.T) {
	s := sanctuary.New("Grove", nil, nil, nil, nil)
	m := actor.NewMage("Morgana")
	s.AddResident(m)
	s.AddResident(m)
	assert.Equal(t, []*actor.Mage{m}, s.Residents())
}

func TestDefault(t *testing.T) {
	s := sanctuary.Default(dice.NewSeededSource(7), 8)
	assert.Equal(t, sanctuary.DefaultName, s.Name())

	require.Len(t, s.Bows(), 1)
	bow := s.Bows()[0]
	assert.Equal(t, "Enchanted Longbow", bow.Name())
	assert.Equal(t, 20, bow.MinDamage())
	assert.Equal(t, 40, bow.MaxDamage())
	assert.Equal(t, 8, bow.Shots())

	require.Len(t, s.Quivers(), 1)
	assert.Equal(t, 15, s.Quivers()[0].Quantity())
	assert.Len(t, s.Provisions(), 1)
	assert.Len(t, s.Enemies(), 3)
}

// TestProperty_RemoveEnemy_DrainsPool verifies that removing whatever
// RandomEnemy returns clears any pool in exactly len(pool) steps.
func TestProperty_RemoveEnemy_DrainsPool(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(rt, "n")
		pool := make([]*npc.Enemy, n)
		for i := range pool {
			pool[i] = enemy("Sentinel")
		}
		s := sanctuary.New("Grove", nil, nil, nil, pool)
		src := dice.NewSeededSource(rapid.Int64().Draw(rt, "seed"))

		steps := 0
		for {
			e, ok := s.RandomEnemy(src)
			if !ok {
				break
			}
			if !s.RemoveEnemy(e) {
				rt.Fatalf("RandomEnemy returned an enemy not in the pool")
			}
			steps++
		}
		assert.Equal(rt, n, steps)
		assert.True(rt, s.Cleared())
	})
}
