// Package npc provides enemy templates and the live enemies spawned from them.
package npc

import (
	"fmt"

	"github.com/cory-johannsen/dystoria/internal/game/dice"
)

// Template defines a reusable enemy archetype loaded from content.
type Template struct {
	Name string
	// MaxHealth is the starting and maximum health of spawned enemies.
	MaxHealth int
	// Damage is the fixed damage dealt by every attack.
	Damage int
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff Name is non-empty, MaxHealth >= 1 and
// Damage >= 0; returns an error on the first violation otherwise.
func (t *Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("npc template: name must not be empty")
	}
	if t.MaxHealth < 1 {
		return fmt.Errorf("npc template %q: health must be >= 1", t.Name)
	}
	if t.Damage < 0 {
		return fmt.Errorf("npc template %q: damage must be >= 0", t.Name)
	}
	return nil
}

// randomNames are the Order's agents used when no enemy data is available.
var randomNames = []string{
	"Order Sentinel",
	"Surveillance Drone",
	"Inquisitor Adept",
	"Mechanized Hound",
	"Regime Enforcer",
}

// RandomTemplate rolls up an enemy template.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a valid Template with MaxHealth in [30, 80] and
// Damage in [5, 15].
func RandomTemplate(src dice.Source) *Template {
	return &Template{
		Name:      randomNames[src.Intn(len(randomNames))],
		MaxHealth: dice.Between(src, 30, 80),
		Damage:    dice.Between(src, 5, 15),
	}
}
