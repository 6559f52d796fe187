// Package attribute provides the clamped integer attributes shared by every
// actor: health, stealth visibility and hunger.
package attribute

import "fmt"

// DefaultHealthCap is the health cap of a base mage.
const DefaultHealthCap = 100

// Health tracks hit points.
// Invariant: 0 <= Value() <= Cap().
type Health struct {
	value int
	cap   int
}

// NewHealth returns a Health starting at value and capped at limit.
// A value above limit is clamped to limit.
//
// Precondition: limit >= 0 and value >= 0 (panics otherwise).
// Postcondition: Value() == min(value, limit).
func NewHealth(value, limit int) *Health {
	if limit < 0 || value < 0 {
		panic(fmt.Sprintf("attribute: NewHealth: value and cap must be >= 0, got value=%d cap=%d", value, limit))
	}
	return &Health{value: min(value, limit), cap: limit}
}

// Value returns the current health.
func (h *Health) Value() int { return h.value }

// Cap returns the maximum health.
func (h *Health) Cap() int { return h.cap }

// Reduce lowers health by amount, flooring at zero.
//
// Postcondition: Value() == max(0, old - amount).
func (h *Health) Reduce(amount int) {
	h.value = max(0, h.value-amount)
}

// Add raises health by amount, ceiling at Cap().
//
// Postcondition: Value() == min(Cap(), old + amount).
func (h *Health) Add(amount int) {
	h.value = min(h.cap, h.value+amount)
}

// Depleted reports whether health has reached zero.
func (h *Health) Depleted() bool {
	return h.value <= 0
}

// String returns "value/cap".
func (h *Health) String() string {
	return fmt.Sprintf("%d/%d", h.value, h.cap)
}
