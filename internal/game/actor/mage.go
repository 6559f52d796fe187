// Package actor implements mages and the player's Arcane Champion: their
// attributes, inventory, stealth tactics and attack resolution.
package actor

import (
	"fmt"

	"github.com/cory-johannsen/dystoria/internal/game/attribute"
	"github.com/cory-johannsen/dystoria/internal/game/inventory"
)

// DefaultVisibility is the starting visibility of every mage.
const DefaultVisibility = 50

// Mage is a named caster with health, stealth and an inventory.
type Mage struct {
	name      string
	health    *attribute.Health
	stealth   *attribute.Stealth
	inventory *inventory.Inventory
}

// NewMage returns a mage at full base health and default visibility.
//
// Postcondition: Health().Value() == Health().Cap() == attribute.DefaultHealthCap.
func NewMage(name string) *Mage {
	return &Mage{
		name:      name,
		health:    attribute.NewHealth(attribute.DefaultHealthCap, attribute.DefaultHealthCap),
		stealth:   attribute.NewStealth(DefaultVisibility),
		inventory: inventory.NewInventory(),
	}
}

func (m *Mage) Name() string { return m.name }
func (m *Mage) Health() *attribute.Health { return m.health }
func (m *Mage) Stealth() *attribute.Stealth { return m.stealth }
func (m *Mage) Inventory() *inventory.Inventory { return m.inventory }

// IsDefeated reports whether the mage's health has reached zero.
func (m *Mage) IsDefeated() bool {
	return m.health.Depleted()
}

// Status describes the mage as it takes an action.
func (m *Mage) Status() string {
	return fmt.Sprintf("%s is taking action with current health: %d", m.name, m.health.Value())
}
