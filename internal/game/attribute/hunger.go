package attribute

import "fmt"

// MaxHunger is the hunger ceiling; a champion at MaxHunger is starving.
const MaxHunger = 100

// Hunger tracks how hungry an actor is.
// Invariant: 0 <= Value() <= MaxHunger.
type Hunger struct {
	level int
}

// NewHunger returns a Hunger at level, clamped into [0, MaxHunger].
func NewHunger(level int) *Hunger {
	return &Hunger{level: clampHunger(level)}
}

// Value returns the current hunger level.
func (h *Hunger) Value() int { return h.level }

// Reduce lowers hunger by amount, flooring at zero.
func (h *Hunger) Reduce(amount int) {
	h.level = clampHunger(h.level - amount)
}

// Increase raises hunger by amount, ceiling at MaxHunger.
func (h *Hunger) Increase(amount int) {
	h.level = clampHunger(h.level + amount)
}

// Starving reports whether hunger has reached MaxHunger.
func (h *Hunger) Starving() bool {
	return h.level >= MaxHunger
}

// String returns "level/MaxHunger".
func (h *Hunger) String() string {
	return fmt.Sprintf("%d/%d", h.level, MaxHunger)
}

func clampHunger(v int) int {
	return min(MaxHunger, max(0, v))
}
