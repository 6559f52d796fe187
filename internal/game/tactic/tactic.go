// Package tactic defines the stealth tactics an exposed champion can fall back
// on: each trades visibility, health and damage output.
package tactic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tactic is one stealth manoeuvre.
type Tactic struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// VisibilityDelta is added to the champion's visibility (usually negative).
	VisibilityDelta int `yaml:"visibility_delta"`
	// HealthCost is the health lost performing the manoeuvre.
	HealthCost int `yaml:"health_cost"`
	// DamageMultiplier replaces the champion's damage multiplier.
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	// Description is shown after the tactic is applied.
	Description string `yaml:"description"`
}

// Validate checks that the tactic satisfies basic invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty, HealthCost >= 0 and
// DamageMultiplier > 0; returns an error on the first violation otherwise.
func (t *Tactic) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tactic: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("tactic %q: name must not be empty", t.ID)
	}
	if t.HealthCost < 0 {
		return fmt.Errorf("tactic %q: health_cost must be >= 0", t.ID)
	}
	if t.DamageMultiplier <= 0 {
		return fmt.Errorf("tactic %q: damage_multiplier must be > 0", t.ID)
	}
	return nil
}

// Defaults returns the three built-in tactics.
func Defaults() []Tactic {
	return []Tactic{
		{
			ID:               "rock",
			Name:             "Move Behind a Rock",
			VisibilityDelta:  -30,
			HealthCost:       5,
			DamageMultiplier: 1.5,
			Description:      "Moved behind a rock but almost hit by the enemy! You've found a good attacking angle. Damage enhanced by 50%.",
		},
		{
			ID:               "hill",
			Name:             "Move Up to Hill",
			VisibilityDelta:  -40,
			DamageMultiplier: 0.85,
			Description:      "Moved up to the hill. Damage reduced by 15%.",
		},
		{
			ID:               "grass",
			Name:             "Hide in Grass",
			VisibilityDelta:  -15,
			DamageMultiplier: 1.05,
			Description:      "Hidden in the grass. Damage enhanced by 5%.",
		},
	}
}

type tacticFile struct {
	Tactics []Tactic `yaml:"tactics"`
}

// LoadFromBytes parses a tactic table from raw YAML bytes.
//
// Precondition: data must be valid YAML with a top-level "tactics" list.
// Postcondition: Returns at least one validated tactic with unique IDs, or an error.
func LoadFromBytes(data []byte) ([]Tactic, error) {
	var f tacticFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing tactic YAML: %w", err)
	}
	if len(f.Tactics) == 0 {
		return nil, fmt.Errorf("tactic table must define at least one tactic")
	}
	seen := make(map[string]bool, len(f.Tactics))
	for i := range f.Tactics {
		t := &f.Tactics[i]
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("tactic %q: duplicate id", t.ID)
		}
		seen[t.ID] = true
	}
	return f.Tactics, nil
}

// Load reads a tactic table from path. An empty path yields Defaults().
//
// Postcondition: Returns validated tactics or an error naming path.
func Load(path string) ([]Tactic, error) {
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tactics %q: %w", path, err)
	}
	tactics, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return tactics, nil
}
