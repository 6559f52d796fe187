package inventory

import (
	"fmt"
	"sort"
)

// Registry holds all loaded bow, quiver and provision definitions indexed by name.
type Registry struct {
	bows       map[string]*BowDef
	quivers    map[string]*QuiverDef
	provisions map[string]*ProvisionDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		bows:       make(map[string]*BowDef),
		quivers:    make(map[string]*QuiverDef),
		provisions: make(map[string]*ProvisionDef),
	}
}

// RegisterBow validates d and adds it to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Bow(d.Name) returns d; returns error if d is invalid or d.Name already registered.
func (r *Registry) RegisterBow(d *BowDef) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("inventory: Registry.RegisterBow: %w", err)
	}
	if _, exists := r.bows[d.Name]; exists {
		return fmt.Errorf("inventory: Registry.RegisterBow: bow %q already registered", d.Name)
	}
	r.bows[d.Name] = d
	return nil
}

// RegisterQuiver validates d and adds it to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Quiver(d.Name) returns d; returns error if d is invalid or d.Name already registered.
func (r *Registry) RegisterQuiver(d *QuiverDef) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("inventory: Registry.RegisterQuiver: %w", err)
	}
	if _, exists := r.quivers[d.Name]; exists {
		return fmt.Errorf("inventory: Registry.RegisterQuiver: quiver %q already registered", d.Name)
	}
	r.quivers[d.Name] = d
	return nil
}

// RegisterProvision validates d and adds it to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Provision(d.Name) returns d; returns error if d is invalid or d.Name already registered.
func (r *Registry) RegisterProvision(d *ProvisionDef) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("inventory: Registry.RegisterProvision: %w", err)
	}
	if _, exists := r.provisions[d.Name]; exists {
		return fmt.Errorf("inventory: Registry.RegisterProvision: provision %q already registered", d.Name)
	}
	r.provisions[d.Name] = d
	return nil
}

// Bow returns the BowDef for the given name and whether it was found.
func (r *Registry) Bow(name string) (*BowDef, bool) {
	d, ok := r.bows[name]
	return d, ok
}

// Quiver returns the QuiverDef for the given name and whether it was found.
func (r *Registry) Quiver(name string) (*QuiverDef, bool) {
	d, ok := r.quivers[name]
	return d, ok
}

// Provision returns the ProvisionDef for the given name and whether it was found.
func (r *Registry) Provision(name string) (*ProvisionDef, bool) {
	d, ok := r.provisions[name]
	return d, ok
}

// BowNames returns all registered bow names in sorted order.
func (r *Registry) BowNames() []string {
	return sortedKeys(r.bows)
}

// QuiverNames returns all registered quiver names in sorted order.
func (r *Registry) QuiverNames() []string {
	return sortedKeys(r.quivers)
}

// ProvisionNames returns all registered provision names in sorted order.
func (r *Registry) ProvisionNames() []string {
	return sortedKeys(r.provisions)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
