package inventory

import (
	"errors"
	"fmt"
)

// QuiverDef defines the static properties of a mystic quiver loaded from content.
type QuiverDef struct {
	Name     string
	Quantity int
}

// Validate checks that the QuiverDef satisfies its invariants.
//
// Postcondition: returns nil iff Name is non-empty and Quantity >= 0.
func (d *QuiverDef) Validate() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if d.Quantity < 0 {
		errs = append(errs, errors.New("Quantity must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("quiver validation failed: %v", errs)
	}
	return nil
}

// NewQuiver builds a full quiver instance from the definition.
func (d *QuiverDef) NewQuiver() *Quiver {
	return NewQuiver(d.Name, d.Quantity)
}

// Quiver holds arrows that can be loaded into a Bow.
// Invariant: quantity >= 0.
type Quiver struct {
	id       string
	name     string
	quantity int
}

// NewQuiver returns a quiver holding quantity arrows.
//
// Precondition: quantity >= 0 (panics otherwise).
func NewQuiver(name string, quantity int) *Quiver {
	if quantity < 0 {
		panic(fmt.Sprintf("inventory: NewQuiver: quantity must be >= 0, got %d", quantity))
	}
	return &Quiver{id: newID(), name: name, quantity: quantity}
}

func (q *Quiver) ID() string { return q.id }
func (q *Quiver) Name() string { return q.name }

// Quantity returns the number of arrows left.
func (q *Quiver) Quantity() int { return q.quantity }

// Empty reports whether the quiver holds no arrows.
func (q *Quiver) Empty() bool { return q.quantity <= 0 }

// RemoveAll empties the quiver.
//
// Postcondition: Quantity() == 0; returns the quantity held before the call.
func (q *Quiver) RemoveAll() int {
	n := q.quantity
	q.quantity = 0
	return n
}

// String returns a short description of the quiver.
func (q *Quiver) String() string {
	return fmt.Sprintf("%s (%d arrows)", q.name, q.quantity)
}
