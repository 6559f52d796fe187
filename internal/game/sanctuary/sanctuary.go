// Package sanctuary models the safe havens a champion starts from: each owns
// a stock of equipment, a pool of hostile enemies and its resident mages.
package sanctuary

import (
	"github.com/cory-johannsen/dystoria/internal/game/actor"
	"github.com/cory-johannsen/dystoria/internal/game/dice"
	"github.com/cory-johannsen/dystoria/internal/game/inventory"
	"github.com/cory-johannsen/dystoria/internal/game/npc"
)

// DefaultName is the name of the sanctuary used when no sanctuary data loads.
const DefaultName = "Dystoria Safe Haven"

// Sanctuary is a location with equipment stock and an enemy pool.
// Stock slices are never shared with callers.
type Sanctuary struct {
	name       string
	bows       []*inventory.Bow
	quivers    []*inventory.Quiver
	provisions []*inventory.Provision
	enemies    []*npc.Enemy
	residents  []*actor.Mage
}

// New returns a sanctuary stocked with copies of the given slices.
func New(name string, bows []*inventory.Bow, quivers []*inventory.Quiver, provisions []*inventory.Provision, enemies []*npc.Enemy) *Sanctuary {
	return &Sanctuary{
		name:       name,
		bows:       append([]*inventory.Bow(nil), bows...),
		quivers:    append([]*inventory.Quiver(nil), quivers...),
		provisions: append([]*inventory.Provision(nil), provisions...),
		enemies:    append([]*npc.Enemy(nil), enemies...),
	}
}

// Default builds the fallback sanctuary: an Enchanted Longbow primed with
// startingShots, a 15-arrow quiver, a trail ration and three random enemies.
//
// Precondition: src must be non-nil; startingShots >= 0.
func Default(src dice.Source, startingShots int) *Sanctuary {
	bow := (&inventory.BowDef{Name: "Enchanted Longbow", MinDamage: 20, MaxDamage: 40}).NewBow(startingShots)
	quiver := inventory.NewQuiver("Basic Mystic Quiver", 15)
	ration := inventory.NewProvision("Trail Ration", 25)
	enemies := make([]*npc.Enemy, 0, 3)
	for range 3 {
		enemies = append(enemies, npc.NewEnemy(npc.RandomTemplate(src)))
	}
	return New(DefaultName, []*inventory.Bow{bow}, []*inventory.Quiver{quiver}, []*inventory.Provision{ration}, enemies)
}

func (s *Sanctuary) Name() string { return s.name }

// Bows returns the bows stocked in the sanctuary.
func (s *Sanctuary) Bows() []*inventory.Bow { return append([]*inventory.Bow(nil), s.bows...) }

// Quivers returns the quivers stocked in the sanctuary.
func (s *Sanctuary) Quivers() []*inventory.Quiver {
	return append([]*inventory.Quiver(nil), s.quivers...)
}

// Provisions returns the food stocked in the sanctuary.
func (s *Sanctuary) Provisions() []*inventory.Provision {
	return append([]*inventory.Provision(nil), s.provisions...)
}

// Enemies returns the enemies still at large.
func (s *Sanctuary) Enemies() []*npc.Enemy { return append([]*npc.Enemy(nil), s.enemies...) }

// Residents returns the mages sheltering in the sanctuary.
func (s *Sanctuary) Residents() []*actor.Mage { return append([]*actor.Mage(nil), s.residents...) }

// AddResident shelters m in the sanctuary. Adding the same mage twice is a no-op.
//
// Precondition: m must be non-nil.
func (s *Sanctuary) AddResident(m *actor.Mage) {
	for _, r := range s.residents {
		if r == m {
			return
		}
	}
	s.residents = append(s.residents, m)
}

// Take removes a stocked bow, quiver or provision so it can be carried away.
//
// Postcondition: Returns true if it was in stock.
func (s *Sanctuary) Take(it inventory.Item) bool {
	switch v := it.(type) {
	case *inventory.Bow:
		return take(&s.bows, v)
	case *inventory.Quiver:
		return take(&s.quivers, v)
	case *inventory.Provision:
		return take(&s.provisions, v)
	}
	return false
}

func take[T comparable](stock *[]T, it T) bool {
	for i, cur := range *stock {
		if cur == it {
			*stock = append((*stock)[:i], (*stock)[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveEnemy drops e from the enemy pool.
//
// Postcondition: Returns true if e was in the pool.
func (s *Sanctuary) RemoveEnemy(e *npc.Enemy) bool {
	return take(&s.enemies, e)
}

// RandomEnemy picks a uniformly random enemy from the pool.
//
// Precondition: src must be non-nil.
// Postcondition: Returns ok=false iff the pool is empty.
func (s *Sanctuary) RandomEnemy(src dice.Source) (*npc.Enemy, bool) {
	if len(s.enemies) == 0 {
		return nil, false
	}
	return s.enemies[src.Intn(len(s.enemies))], true
}

// Cleared reports whether every enemy has been removed.
func (s *Sanctuary) Cleared() bool { return len(s.enemies) == 0 }
