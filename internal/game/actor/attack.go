package actor

import (
	"fmt"

	"github.com/cory-johannsen/dystoria/internal/game/dice"
	"github.com/cory-johannsen/dystoria/internal/game/inventory"
	"github.com/cory-johannsen/dystoria/internal/game/npc"
	"github.com/cory-johannsen/dystoria/internal/game/tactic"
)

// Outcome is the result category of one attack turn.
type Outcome int

const (
	// Hit means the shot landed and the target survived.
	Hit Outcome = iota
	// Defeated means the shot reduced the target to zero health.
	Defeated
	// Reloaded means the bow was empty and was reloaded from a quiver.
	Reloaded
	// NoQuiver means the bow was empty and no stocked quiver was carried.
	NoQuiver
	// TooVisible means the champion was too exposed to attack.
	TooVisible
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Defeated:
		return "defeated"
	case Reloaded:
		return "reloaded"
	case NoQuiver:
		return "no quiver"
	case TooVisible:
		return "too visible"
	default:
		return "unknown"
	}
}

// Tactician picks a stealth tactic when an attack is blocked.
type Tactician interface {
	// ChooseTactic returns the chosen tactic, or ok=false to make no change.
	ChooseTactic(options []tactic.Tactic) (t tactic.Tactic, ok bool)
}

// AttackResult holds the outcome of a single attack turn.
type AttackResult struct {
	Outcome Outcome
	// Roll is the bow's raw damage roll before the multiplier.
	Roll int
	// Damage is the damage dealt to the target.
	Damage int
	// Reloaded is the number of shots loaded on a Reloaded outcome.
	Reloaded int
	// Quiver is the quiver reloaded from, if any.
	Quiver *inventory.Quiver
	// Tactic is the stealth tactic applied on a TooVisible outcome, if any.
	Tactic *tactic.Tactic
	// NoiseRoll is the dice rolled for the attempt's noise.
	NoiseRoll dice.RollResult
	// Noise is the visibility gained from the attempt.
	Noise int
	// Visibility is the champion's visibility after the turn.
	Visibility int
}

// expressionRoller rolls whole dice expressions. *dice.Roller satisfies it
// and records each roll.
type expressionRoller interface {
	Roll(expr dice.Expression) dice.RollResult
}

// rollExpression rolls expr through src's own Roll when it has one, so a
// logged roller records the expression and not only its raw draws.
func rollExpression(expr dice.Expression, src dice.Source) dice.RollResult {
	if r, ok := src.(expressionRoller); ok {
		return r.Roll(expr)
	}
	return dice.Roll(expr, src)
}

// Attack resolves one attack turn against target with bow.
//
// The turn runs Idle → AttemptAttack → {Hit, OutOfAmmo, TooVisible} →
// noise. When the champion is exposed, t is offered the tactic table; a nil
// t declines. An empty bow reloads from the first stocked quiver carried.
//
// Precondition: target must be non-nil; src must be non-nil.
// Postcondition: returns ErrWeaponNotEquipped or ErrTargetDefeated with no state
// change; otherwise visibility has risen by result.Noise after any tactic.
func (c *Champion) Attack(target *npc.Enemy, bow *inventory.Bow, t Tactician, src dice.Source) (AttackResult, error) {
	if bow == nil || !c.inventory.Contains(bow) {
		name := "weapon"
		if bow != nil {
			name = bow.Name()
		}
		return AttackResult{}, fmt.Errorf("%w: %s", ErrWeaponNotEquipped, name)
	}
	if target.IsDefeated() {
		return AttackResult{}, fmt.Errorf("%w: %s", ErrTargetDefeated, target.Name())
	}

	var res AttackResult
	switch {
	case c.Exposed():
		res.Outcome = TooVisible
		if t != nil {
			if chosen, ok := t.ChooseTactic(c.rules.Tactics); ok {
				c.ApplyTactic(chosen)
				res.Tactic = &chosen
			}
		}
	case bow.Empty():
		q, ok := c.inventory.StockedQuiver()
		if !ok {
			res.Outcome = NoQuiver
			break
		}
		res.Outcome = Reloaded
		res.Quiver = q
		res.Reloaded = bow.Load(q)
	default:
		res.Roll = bow.Damage(src)
		res.Damage = int(float64(res.Roll) * c.multiplier)
		target.Health().Reduce(res.Damage)
		res.Outcome = Hit
		if target.IsDefeated() {
			res.Outcome = Defeated
		}
	}

	res.NoiseRoll = rollExpression(c.rules.Noise, src)
	res.Noise = res.NoiseRoll.Total()
	c.stealth.Modify(res.Noise)
	res.Visibility = c.stealth.Value()
	return res, nil
}
