package content

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dystoria/internal/config"
	"github.com/cory-johannsen/dystoria/internal/game/dice"
	"github.com/cory-johannsen/dystoria/internal/game/inventory"
	"github.com/cory-johannsen/dystoria/internal/game/npc"
	"github.com/cory-johannsen/dystoria/internal/game/sanctuary"
)

// Content is everything loaded from the data directory.
type Content struct {
	// Registry holds the bow, quiver and provision definitions by name.
	Registry *inventory.Registry
	// Enemies are the enemy templates in file order.
	Enemies []*npc.Template
	// Sanctuaries are the resolved sanctuaries in file order.
	Sanctuaries []*sanctuary.Sanctuary
	// Warnings describe every skipped file, row and reference, for display.
	Warnings []string
}

// Enemy returns the enemy template named name.
func (c *Content) Enemy(name string) (*npc.Template, bool) {
	for _, t := range c.Enemies {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Loader reads the content files named by a ContentConfig.
type Loader struct {
	cfg           config.ContentConfig
	startingShots int
	validate      *validator.Validate
	logger        *zap.Logger
}

// NewLoader creates a Loader. Bows stocked in sanctuaries are primed with
// startingShots.
//
// Precondition: logger must be non-nil; startingShots >= 0.
func NewLoader(cfg config.ContentConfig, startingShots int, logger *zap.Logger) *Loader {
	return &Loader{
		cfg:           cfg,
		startingShots: startingShots,
		validate:      validator.New(),
		logger:        logger,
	}
}

// Load reads every content file. Nothing here is fatal: a missing or
// unreadable file yields an empty collection, and invalid rows or unknown
// references are skipped. Each is recorded in Content.Warnings.
//
// Postcondition: Returns a non-nil Content with a non-nil Registry.
func (l *Loader) Load() *Content {
	c := &Content{Registry: inventory.NewRegistry()}

	for _, r := range l.rows(c, l.cfg.Bows, true) {
		row, err := decodeBow(r)
		if !l.accept(c, l.cfg.Bows, r, row, err) {
			continue
		}
		l.register(c, l.cfg.Bows, r, c.Registry.RegisterBow(&inventory.BowDef{Name: row.Name, MinDamage: row.MinDmg, MaxDamage: row.MaxDmg}))
	}

	for _, r := range l.rows(c, l.cfg.Quivers, true) {
		row, err := decodeQuiver(r)
		if !l.accept(c, l.cfg.Quivers, r, row, err) {
			continue
		}
		l.register(c, l.cfg.Quivers, r, c.Registry.RegisterQuiver(&inventory.QuiverDef{Name: row.Name, Quantity: row.Qty}))
	}

	for _, r := range l.rows(c, l.cfg.Provisions, false) {
		row, err := decodeProvision(r)
		if !l.accept(c, l.cfg.Provisions, r, row, err) {
			continue
		}
		l.register(c, l.cfg.Provisions, r, c.Registry.RegisterProvision(&inventory.ProvisionDef{Name: row.Name, FoodValue: row.FoodValue}))
	}

	for _, r := range l.rows(c, l.cfg.Enemies, true) {
		row, err := decodeEnemy(r)
		if !l.accept(c, l.cfg.Enemies, r, row, err) {
			continue
		}
		if _, dup := c.Enemy(row.Name); dup {
			l.warn(c, fmt.Sprintf("%s line %d: duplicate enemy %q skipped", l.cfg.Enemies, r.Line, row.Name))
			continue
		}
		c.Enemies = append(c.Enemies, &npc.Template{Name: row.Name, MaxHealth: row.Health, Damage: row.Damage})
	}

	for _, r := range l.rows(c, l.cfg.Sanctuaries, true) {
		row, err := decodeSanctuary(r)
		if !l.accept(c, l.cfg.Sanctuaries, r, row, err) {
			continue
		}
		c.Sanctuaries = append(c.Sanctuaries, l.resolve(c, r, row))
	}

	l.logger.Info("content loaded",
		zap.Int("bows", len(c.Registry.BowNames())),
		zap.Int("quivers", len(c.Registry.QuiverNames())),
		zap.Int("provisions", len(c.Registry.ProvisionNames())),
		zap.Int("enemies", len(c.Enemies)),
		zap.Int("sanctuaries", len(c.Sanctuaries)),
		zap.Int("warnings", len(c.Warnings)),
	)
	return c
}

// resolve builds a sanctuary from row, spawning fresh items and enemies for
// every reference. Unknown names are skipped.
func (l *Loader) resolve(c *Content, r Row, row sanctuaryRow) *sanctuary.Sanctuary {
	unknown := func(kind, name string) {
		l.warn(c, fmt.Sprintf("%s line %d: sanctuary %q references unknown %s %q", l.cfg.Sanctuaries, r.Line, row.Name, kind, name))
	}

	var bows []*inventory.Bow
	for _, name := range row.Bows {
		def, ok := c.Registry.Bow(name)
		if !ok {
			unknown("bow", name)
			continue
		}
		bows = append(bows, def.NewBow(l.startingShots))
	}
	var quivers []*inventory.Quiver
	for _, name := range row.Quivers {
		def, ok := c.Registry.Quiver(name)
		if !ok {
			unknown("quiver", name)
			continue
		}
		quivers = append(quivers, def.NewQuiver())
	}
	var provisions []*inventory.Provision
	for _, name := range row.Provisions {
		def, ok := c.Registry.Provision(name)
		if !ok {
			unknown("provision", name)
			continue
		}
		provisions = append(provisions, def.NewProvision())
	}
	var enemies []*npc.Enemy
	for _, name := range row.Enemies {
		tmpl, ok := c.Enemy(name)
		if !ok {
			unknown("enemy", name)
			continue
		}
		enemies = append(enemies, npc.NewEnemy(tmpl))
	}
	return sanctuary.New(row.Name, bows, quivers, provisions, enemies)
}

// rows reads the file name resolves to. An empty name is skipped silently; a
// missing file only warns when required.
func (l *Loader) rows(c *Content, name string, required bool) []Row {
	if name == "" {
		return nil
	}
	path := l.cfg.Path(name)
	rows, err := ReadTSVFile(path)
	switch {
	case err == nil:
		return rows
	case errors.Is(err, fs.ErrNotExist):
		if required {
			l.warn(c, fmt.Sprintf("the file %s was not found", path))
		}
	default:
		l.warn(c, fmt.Sprintf("could not load %s: %v", path, err))
	}
	return nil
}

// accept reports whether a decoded row is usable, warning if not.
func (l *Loader) accept(c *Content, file string, r Row, row any, decodeErr error) bool {
	err := decodeErr
	if err == nil {
		if verr := l.validate.Struct(row); verr != nil {
			err = describeValidation(verr)
		}
	}
	if err != nil {
		l.warn(c, fmt.Sprintf("%s line %d: invalid row %q skipped: %v", file, r.Line, r.Get("Name"), err))
		return false
	}
	return true
}

func (l *Loader) register(c *Content, file string, r Row, err error) {
	if err != nil {
		l.warn(c, fmt.Sprintf("%s line %d: %v", file, r.Line, err))
	}
}

func (l *Loader) warn(c *Content, msg string) {
	l.logger.Warn("content", zap.String("detail", msg))
	c.Warnings = append(c.Warnings, msg)
}

// Choose picks the starting sanctuary: the one named name if present,
// otherwise a random loaded one, otherwise the default sanctuary.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a non-nil Sanctuary.
func (c *Content) Choose(name string, src dice.Source, startingShots int) *sanctuary.Sanctuary {
	if name != "" {
		for _, s := range c.Sanctuaries {
			if s.Name() == name {
				return s
			}
		}
		c.Warnings = append(c.Warnings, fmt.Sprintf("sanctuary %q not found", name))
	}
	if len(c.Sanctuaries) == 0 {
		return sanctuary.Default(src, startingShots)
	}
	return c.Sanctuaries[src.Intn(len(c.Sanctuaries))]
}
