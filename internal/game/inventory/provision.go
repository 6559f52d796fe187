package inventory

import (
	"errors"
	"fmt"
)

// ProvisionDef defines a food item loaded from content.
type ProvisionDef struct {
	Name      string
	FoodValue int
}

// Validate checks that the ProvisionDef satisfies its invariants.
//
// Postcondition: returns nil iff Name is non-empty and FoodValue > 0.
func (d *ProvisionDef) Validate() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if d.FoodValue <= 0 {
		errs = append(errs, errors.New("FoodValue must be > 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("provision validation failed: %v", errs)
	}
	return nil
}

// NewProvision builds a provision instance from the definition.
func (d *ProvisionDef) NewProvision() *Provision {
	return NewProvision(d.Name, d.FoodValue)
}

// Provision is food. It is the only Consumable item.
type Provision struct {
	id        string
	name      string
	foodValue int
}

// NewProvision returns a provision.
//
// Precondition: foodValue > 0 (panics otherwise).
func NewProvision(name string, foodValue int) *Provision {
	if foodValue <= 0 {
		panic(fmt.Sprintf("inventory: NewProvision: foodValue must be > 0, got %d", foodValue))
	}
	return &Provision{id: newID(), name: name, foodValue: foodValue}
}

func (p *Provision) ID() string { return p.id }
func (p *Provision) Name() string { return p.name }
func (p *Provision) FoodValue() int { return p.foodValue }

// String returns a short description of the provision.
func (p *Provision) String() string {
	return fmt.Sprintf("%s (food %d)", p.name, p.foodValue)
}
