package gameplay

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dystoria/internal/game/command"
	"github.com/cory-johannsen/dystoria/internal/game/inventory"
)

func (g *Game) checkInventory() error {
	items := g.champion.Inventory().Items()
	if len(items) == 0 {
		return g.console.WriteLine("Your inventory is empty.")
	}
	for _, it := range items {
		var line string
		switch v := it.(type) {
		case *inventory.Bow:
			line = fmt.Sprintf("Bow: %s, Shots left: %d", v.Name(), v.Shots())
		case *inventory.Quiver:
			line = fmt.Sprintf("Quiver: %s, Arrows left: %d", v.Name(), v.Quantity())
		case inventory.Consumable:
			line = fmt.Sprintf("Provision: %s, Food value: %d", v.Name(), v.FoodValue())
		default:
			line = fmt.Sprintf("Item: %s", v.Name())
		}
		if err := g.console.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// selectEquipment lets the player take a bow, a quiver and optionally a
// provision from the sanctuary's stock.
func (g *Game) selectEquipment() error {
	bows := g.sanctuary.Bows()
	if len(bows) == 0 {
		if err := g.console.WriteLine("The sanctuary has no bows to offer."); err != nil {
			return err
		}
	} else if err := g.pick("Bow", items(bows), false); err != nil {
		return err
	}

	quivers := g.sanctuary.Quivers()
	if len(quivers) == 0 {
		if err := g.console.WriteLine("The sanctuary has no quivers to offer."); err != nil {
			return err
		}
	} else if err := g.pick("Quiver", items(quivers), false); err != nil {
		return err
	}

	if provisions := g.sanctuary.Provisions(); len(provisions) > 0 {
		return g.pick("Provision", items(provisions), true)
	}
	return nil
}

// pick lists stock and moves the chosen item into the champion's inventory.
// Choice 0 skips when optional.
func (g *Game) pick(kind string, stock []inventory.Item, optional bool) error {
	if err := g.console.Printf("Select your %s:", kind); err != nil {
		return err
	}
	lo := 1
	if optional {
		lo = 0
		if err := g.console.WriteLine("0. None"); err != nil {
			return err
		}
	}
	for i, it := range stock {
		if err := g.console.Printf("%d. %s", i+1, it); err != nil {
			return err
		}
	}
	choice, err := g.console.AskInt("Enter the number for your choice: ", lo, len(stock))
	if err != nil {
		return err
	}
	if choice == 0 {
		return nil
	}

	chosen := stock[choice-1]
	if err := g.champion.Inventory().Add(chosen); err != nil {
		return g.console.WriteLine(err.Error())
	}
	g.sanctuary.Take(chosen)
	g.logger.Info("equipment selected", zap.String("kind", kind), zap.String("item", chosen.Name()))
	return g.console.Printf("You have selected the %s.", chosen.Name())
}

// eat feeds the champion a carried provision. A provision named or numbered
// in the command's arguments is eaten without prompting.
func (g *Game) eat(parsed command.ParseResult) error {
	food := g.champion.Inventory().Consumables()
	if len(food) == 0 {
		return g.console.WriteLine("You have nothing to eat.")
	}

	var chosen inventory.Consumable
	if parsed.RawArgs != "" {
		var ok bool
		if chosen, ok = provisionByArg(food, parsed); !ok {
			return g.console.Printf("You have no provision matching %q.", parsed.RawArgs)
		}
	} else {
		if err := g.console.WriteLine("Select a provision to eat:"); err != nil {
			return err
		}
		for i, f := range food {
			if err := g.console.Printf("%d. %s", i+1, f); err != nil {
				return err
			}
		}
		choice, err := g.console.AskInt("Enter the number for your choice: ", 1, len(food))
		if err != nil {
			return err
		}
		chosen = food[choice-1]
	}

	if err := g.champion.Eat(chosen); err != nil {
		return g.console.WriteLine(err.Error())
	}
	g.logger.Info("ate", zap.String("item", chosen.Name()), zap.Int("hunger", g.champion.Hunger().Value()))
	return g.console.Printf("You eat the %s. Hunger: %s", chosen.Name(), g.champion.Hunger())
}

// provisionByArg resolves "eat <n>" by list position and "eat <name>" by a
// case-insensitive name match.
func provisionByArg(food []inventory.Consumable, parsed command.ParseResult) (inventory.Consumable, bool) {
	if len(parsed.Args) == 1 {
		if n, err := strconv.Atoi(parsed.Args[0]); err == nil {
			if n < 1 || n > len(food) {
				return nil, false
			}
			return food[n-1], true
		}
	}
	for _, f := range food {
		if strings.EqualFold(f.Name(), parsed.RawArgs) {
			return f, true
		}
	}
	return nil, false
}

func items[T inventory.Item](stock []T) []inventory.Item {
	out := make([]inventory.Item, len(stock))
	for i, it := range stock {
		out[i] = it
	}
	return out
}
