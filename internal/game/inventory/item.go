// Package inventory provides the spellcaster bows, mystic quivers and
// provisions an actor can carry, and the ordered inventory that holds them.
package inventory

import "github.com/google/uuid"

// Named is implemented by every game object with a display name.
type Named interface {
	Name() string
}

// Item is anything that can be carried in an Inventory.
// Items are distinguished by ID, never by name.
type Item interface {
	Named
	// ID returns the unique instance identifier assigned at construction.
	ID() string
}

// Consumable is an Item that can be eaten to reduce hunger.
type Consumable interface {
	Item
	// FoodValue returns how much hunger eating the item removes.
	FoodValue() int
}

// newID returns a fresh instance identifier.
func newID() string {
	return uuid.New().String()
}
