package inventory

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrDuplicateItem is returned when an item instance is added twice.
	ErrDuplicateItem = errors.New("inventory: item already present")
	// ErrNilItem is returned when a nil item is added.
	ErrNilItem = errors.New("inventory: nil item")
)

// IsNil reports whether it is nil, including a typed nil pointer such as a
// (*Bow)(nil) held in an Item.
func IsNil(it Item) bool {
	if it == nil {
		return true
	}
	v := reflect.ValueOf(it)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Inventory is an ordered collection of items, unique by item ID.
type Inventory struct {
	items []Item
}

// NewInventory returns an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends it to the inventory.
//
// Postcondition: on success Contains(it) is true; returns ErrNilItem for a nil
// item and ErrDuplicateItem if an item with the same ID is present, leaving the
// inventory unchanged.
func (inv *Inventory) Add(it Item) error {
	if IsNil(it) {
		return ErrNilItem
	}
	if inv.Contains(it) {
		return fmt.Errorf("%w: %s (%s)", ErrDuplicateItem, it.Name(), it.ID())
	}
	inv.items = append(inv.items, it)
	return nil
}

// Remove deletes it from the inventory, preserving the order of the rest.
//
// Postcondition: Contains(it) is false; returns whether it was present.
func (inv *Inventory) Remove(it Item) bool {
	if IsNil(it) {
		return false
	}
	for i, cur := range inv.items {
		if cur.ID() == it.ID() {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether an item with it.ID() is present.
func (inv *Inventory) Contains(it Item) bool {
	if IsNil(it) {
		return false
	}
	for _, cur := range inv.items {
		if cur.ID() == it.ID() {
			return true
		}
	}
	return false
}

// Items returns a snapshot copy of all items in insertion order.
//
// Postcondition: returned slice is a copy; mutations do not affect the inventory.
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of items held.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Bows returns the bows in insertion order.
func (inv *Inventory) Bows() []*Bow {
	return ofType[*Bow](inv)
}

// Quivers returns the quivers in insertion order.
func (inv *Inventory) Quivers() []*Quiver {
	return ofType[*Quiver](inv)
}

// Consumables returns every item that can be eaten, in insertion order.
func (inv *Inventory) Consumables() []Consumable {
	return ofType[Consumable](inv)
}

// FirstBow returns the earliest-added bow.
//
// Postcondition: ok is false iff the inventory holds no bow.
func (inv *Inventory) FirstBow() (*Bow, bool) {
	bows := inv.Bows()
	if len(bows) == 0 {
		return nil, false
	}
	return bows[0], true
}

// StockedQuiver returns the earliest-added quiver that still holds arrows.
//
// Postcondition: ok is false iff no quiver has Quantity() > 0.
func (inv *Inventory) StockedQuiver() (*Quiver, bool) {
	for _, q := range inv.Quivers() {
		if !q.Empty() {
			return q, true
		}
	}
	return nil, false
}

func ofType[T Item](inv *Inventory) []T {
	var out []T
	for _, it := range inv.items {
		if v, ok := it.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
