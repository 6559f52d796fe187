package actor

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/dystoria/internal/game/attribute"
	"github.com/cory-johannsen/dystoria/internal/game/dice"
	"github.com/cory-johannsen/dystoria/internal/game/inventory"
	"github.com/cory-johannsen/dystoria/internal/game/tactic"
)

var (
	// ErrWeaponNotEquipped is returned when attacking with a bow the champion does not carry.
	ErrWeaponNotEquipped = errors.New("weapon not found in inventory")
	// ErrTargetDefeated is returned when attacking a target already at zero health.
	ErrTargetDefeated = errors.New("target already defeated")
	// ErrItemNotInInventory is returned when consuming an item the champion does not carry.
	ErrItemNotInInventory = errors.New("item not in inventory")
)

// Rules are the tunable constants of champion combat.
type Rules struct {
	// StartingVisibility is the champion's initial visibility.
	StartingVisibility int
	// VisibilityThreshold blocks attacks at or above it.
	VisibilityThreshold int
	// Noise is rolled after every attack and added to visibility.
	Noise dice.Expression
	// Tactics are offered when an attack is blocked.
	Tactics []tactic.Tactic
}

// DefaultRules returns threshold 60, noise 5-15 and the built-in tactics.
func DefaultRules() Rules {
	return Rules{
		StartingVisibility:  DefaultVisibility,
		VisibilityThreshold: 60,
		Noise:               dice.MustParse("1d11+4"),
		Tactics:             tactic.Defaults(),
	}
}

// Champion is the player-controlled Arcane Champion: a mage with hunger and
// a damage multiplier set by the last stealth tactic used.
type Champion struct {
	Mage
	hunger     *attribute.Hunger
	multiplier float64
	rules      Rules
}

// NewChampion returns a champion whose health starts at, and is capped by, health.
//
// Precondition: health >= 0; rules.StartingVisibility >= 0.
// Postcondition: Hunger().Value() == attribute.MaxHunger; DamageMultiplier() == 1.
func NewChampion(name string, health int, rules Rules) *Champion {
	c := &Champion{
		Mage:       *NewMage(name),
		hunger:     attribute.NewHunger(attribute.MaxHunger),
		multiplier: 1.0,
		rules:      rules,
	}
	c.health = attribute.NewHealth(health, health)
	c.stealth = attribute.NewStealth(rules.StartingVisibility)
	return c
}

// Hunger returns the champion's hunger attribute.
func (c *Champion) Hunger() *attribute.Hunger { return c.hunger }

// DamageMultiplier returns the multiplier applied to bow damage.
func (c *Champion) DamageMultiplier() float64 { return c.multiplier }

// Rules returns the combat rules the champion plays by.
func (c *Champion) Rules() Rules { return c.rules }

// Exposed reports whether the champion is too visible to attack stealthily.
func (c *Champion) Exposed() bool {
	return c.stealth.Exposed(c.rules.VisibilityThreshold)
}

// ApplyTactic performs a stealth tactic.
//
// Postcondition: visibility shifted by t.VisibilityDelta, health reduced by
// t.HealthCost, DamageMultiplier() == t.DamageMultiplier.
func (c *Champion) ApplyTactic(t tactic.Tactic) {
	c.stealth.Modify(t.VisibilityDelta)
	c.health.Reduce(t.HealthCost)
	c.multiplier = t.DamageMultiplier
}

// Eat consumes food from the inventory.
//
// Postcondition: on success hunger is reduced by food.FoodValue() and food is
// removed; returns ErrItemNotInInventory with no state change otherwise.
func (c *Champion) Eat(food inventory.Consumable) error {
	if inventory.IsNil(food) {
		return fmt.Errorf("%w: nothing to eat", ErrItemNotInInventory)
	}
	if !c.inventory.Contains(food) {
		return fmt.Errorf("%w: %s", ErrItemNotInInventory, food.Name())
	}
	c.hunger.Reduce(food.FoodValue())
	c.inventory.Remove(food)
	return nil
}

// Travel raises hunger by hungerCost; a champion already starving loses
// starvationDamage health instead of growing hungrier.
//
// Postcondition: returns whether starvation damage was taken.
func (c *Champion) Travel(hungerCost, starvationDamage int) bool {
	if c.hunger.Starving() {
		c.health.Reduce(starvationDamage)
		return true
	}
	c.hunger.Increase(hungerCost)
	return false
}
