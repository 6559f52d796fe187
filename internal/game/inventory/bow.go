package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/dystoria/internal/game/dice"
)

// BowDef defines the static properties of a spellcaster bow loaded from content.
type BowDef struct {
	Name      string
	MinDamage int
	MaxDamage int
}

// Validate checks that the BowDef satisfies its invariants.
//
// Postcondition: returns nil iff Name is non-empty and 0 <= MinDamage <= MaxDamage.
func (d *BowDef) Validate() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if d.MinDamage < 0 {
		errs = append(errs, errors.New("MinDamage must be >= 0"))
	}
	if d.MaxDamage < d.MinDamage {
		errs = append(errs, fmt.Errorf("MaxDamage %d must be >= MinDamage %d", d.MaxDamage, d.MinDamage))
	}
	if len(errs) > 0 {
		return fmt.Errorf("bow validation failed: %v", errs)
	}
	return nil
}

// NewBow builds a bow instance from the definition, primed with shots.
//
// Precondition: d is valid; shots >= 0.
// Postcondition: Shots() == shots.
func (d *BowDef) NewBow(shots int) *Bow {
	b := NewBow(d.Name, d.MinDamage, d.MaxDamage)
	if shots < 0 {
		panic(fmt.Sprintf("inventory: BowDef.NewBow: shots must be >= 0, got %d", shots))
	}
	b.shots = shots
	return b
}

// Bow is a ranged weapon with a damage range and a finite number of shots.
// Invariant: 0 <= minDamage <= maxDamage; shots >= 0.
type Bow struct {
	id        string
	name      string
	minDamage int
	maxDamage int
	shots     int
}

// NewBow returns an unloaded bow.
//
// Precondition: 0 <= minDamage <= maxDamage (panics otherwise).
// Postcondition: Shots() == 0.
func NewBow(name string, minDamage, maxDamage int) *Bow {
	if minDamage < 0 || maxDamage < minDamage {
		panic(fmt.Sprintf("inventory: NewBow: invalid damage range [%d, %d]", minDamage, maxDamage))
	}
	return &Bow{
		id:        newID(),
		name:      name,
		minDamage: minDamage,
		maxDamage: maxDamage,
	}
}

func (b *Bow) ID() string { return b.id }
func (b *Bow) Name() string { return b.name }
func (b *Bow) MinDamage() int { return b.minDamage }
func (b *Bow) MaxDamage() int { return b.maxDamage }

// Shots returns the number of remaining shots.
func (b *Bow) Shots() int { return b.shots }

// Empty reports whether the bow has no shots left.
func (b *Bow) Empty() bool { return b.shots <= 0 }

// Load moves every arrow in q into the bow. Shots are added to any already
// loaded, so reloading early never wastes arrows.
//
// Precondition: q must be non-nil.
// Postcondition: Shots() == old + n; q.Quantity() == 0; returns n.
func (b *Bow) Load(q *Quiver) int {
	n := q.RemoveAll()
	b.shots += n
	return n
}

// Damage fires one shot and rolls its damage.
//
// Precondition: src must be non-nil.
// Postcondition: returns 0 with Shots() unchanged when the bow is empty;
// otherwise Shots() decreases by exactly 1 and the result is in
// [MinDamage(), MaxDamage()].
func (b *Bow) Damage(src dice.Source) int {
	if b.shots <= 0 {
		return 0
	}
	b.shots--
	return dice.Between(src, b.minDamage, b.maxDamage)
}

// String returns a short description of the bow.
func (b *Bow) String() string {
	return fmt.Sprintf("%s (%d-%d dmg, %d shots)", b.name, b.minDamage, b.maxDamage, b.shots)
}
