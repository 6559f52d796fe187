package attribute

import "fmt"

// Stealth tracks how visible an actor is. Higher is more visible.
// Invariant: Value() >= 0. There is no upper bound.
type Stealth struct {
	visibility int
}

// NewStealth returns a Stealth at the given visibility.
//
// Precondition: visibility >= 0 (panics otherwise).
func NewStealth(visibility int) *Stealth {
	if visibility < 0 {
		panic(fmt.Sprintf("attribute: NewStealth: visibility must be >= 0, got %d", visibility))
	}
	return &Stealth{visibility: visibility}
}

// Value returns the current visibility.
func (s *Stealth) Value() int { return s.visibility }

// Modify shifts visibility by delta, flooring at zero.
//
// Postcondition: Value() == max(0, old + delta).
func (s *Stealth) Modify(delta int) {
	s.visibility = max(0, s.visibility+delta)
}

// Exposed reports whether visibility is at or above threshold.
func (s *Stealth) Exposed(threshold int) bool {
	return s.visibility >= threshold
}
