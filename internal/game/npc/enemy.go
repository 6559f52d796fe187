package npc

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/dystoria/internal/game/attribute"
)

// Target is anything an enemy can strike.
type Target interface {
	Name() string
	Health() *attribute.Health
}

// Enemy is a live enemy occupying a sanctuary.
type Enemy struct {
	id     string
	name   string
	health *attribute.Health
	damage int
}

// NewEnemy spawns an enemy from tmpl at full health.
//
// Precondition: tmpl must be non-nil and valid.
// Postcondition: Health().Value() == tmpl.MaxHealth.
func NewEnemy(tmpl *Template) *Enemy {
	return &Enemy{
		id:     uuid.New().String(),
		name:   tmpl.Name,
		health: attribute.NewHealth(tmpl.MaxHealth, tmpl.MaxHealth),
		damage: tmpl.Damage,
	}
}

// ID returns the unique instance identifier.
func (e *Enemy) ID() string { return e.id }

// Name returns the display name.
func (e *Enemy) Name() string { return e.name }

// Health returns the enemy's health attribute.
func (e *Enemy) Health() *attribute.Health { return e.health }

// Damage returns the fixed damage of each attack.
func (e *Enemy) Damage() int { return e.damage }

// IsDefeated reports whether the enemy's health has reached zero.
func (e *Enemy) IsDefeated() bool {
	return e.health.Depleted()
}

// Attack strikes target for the enemy's fixed damage. There is no roll,
// retry or cooldown.
//
// Precondition: target must be non-nil.
// Postcondition: target health is reduced by Damage() (floored at 0);
// returns the damage dealt.
func (e *Enemy) Attack(target Target) int {
	target.Health().Reduce(e.damage)
	return e.damage
}

// HealthDescription returns a visible health state string.
//
// Postcondition: Returns a non-empty string.
func (e *Enemy) HealthDescription() string {
	cur, maxHP := e.health.Value(), e.health.Cap()
	if cur <= 0 {
		return "defeated"
	}
	pct := float64(cur) / float64(maxHP)
	switch {
	case pct >= 1.0:
		return "unharmed"
	case pct >= 0.85:
		return "barely scratched"
	case pct >= 0.60:
		return "lightly wounded"
	case pct >= 0.40:
		return "moderately wounded"
	case pct >= 0.20:
		return "heavily wounded"
	default:
		return "critically wounded"
	}
}
