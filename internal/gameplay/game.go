// Package gameplay runs a single Dystoria session: the main menu, equipment
// selection, exploration and combat, all driven through a console.
package gameplay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dystoria/internal/config"
	"github.com/cory-johannsen/dystoria/internal/frontend/console"
	"github.com/cory-johannsen/dystoria/internal/game/actor"
	"github.com/cory-johannsen/dystoria/internal/game/command"
	"github.com/cory-johannsen/dystoria/internal/game/dice"
	"github.com/cory-johannsen/dystoria/internal/game/sanctuary"
)

// Outcome is how a run ended.
type Outcome int

const (
	// Ongoing is never returned by Run; handlers use it to keep the loop going.
	Ongoing Outcome = iota
	// Victory means every enemy in the sanctuary was defeated.
	Victory
	// Defeat means the champion's health reached zero.
	Defeat
	// Quit means the player left, or input ended.
	Quit
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Game is one run of the game loop.
type Game struct {
	cfg       config.GameConfig
	champion  *actor.Champion
	sanctuary *sanctuary.Sanctuary
	console   *console.Console
	commands  *command.Registry
	src       dice.Source
	logger    *zap.Logger
}

// New creates a Game. The champion takes shelter in sanct.
//
// Precondition: all pointer arguments must be non-nil.
func New(cfg config.GameConfig, champion *actor.Champion, sanct *sanctuary.Sanctuary, con *console.Console, src dice.Source, logger *zap.Logger) *Game {
	sanct.AddResident(&champion.Mage)
	return &Game{
		cfg:       cfg,
		champion:  champion,
		sanctuary: sanct,
		console:   con,
		commands:  command.DefaultRegistry(),
		src:       src,
		logger:    logger,
	}
}

// Run plays until victory, defeat or quit. End of input is treated as quit.
//
// Postcondition: Returns Victory, Defeat or Quit. The error is non-nil only
// for ctx cancellation or output failures.
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	outcome, err := g.loop(ctx)
	if errors.Is(err, io.EOF) {
		outcome, err = Quit, nil
	}
	if outcome == Ongoing {
		outcome = Quit
	}
	g.logger.Info("run ended",
		zap.String("outcome", outcome.String()),
		zap.Int("health", g.champion.Health().Value()),
		zap.Int("enemies_remaining", len(g.sanctuary.Enemies())),
	)
	return outcome, err
}

func (g *Game) loop(ctx context.Context) (Outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Quit, err
		}
		if err := g.showMenu(); err != nil {
			return Ongoing, err
		}
		line, err := g.console.Ask(fmt.Sprintf("Choose an action (1-%d): ", len(g.commands.Menu())))
		if err != nil {
			return Ongoing, err
		}
		parsed := command.Parse(line)
		cmd, ok := g.commands.Resolve(parsed.Command)
		if !ok {
			if err := g.console.WriteLine("Invalid input, please choose a valid action."); err != nil {
				return Ongoing, err
			}
			continue
		}
		outcome, err := g.dispatch(ctx, cmd, parsed)
		if err != nil || outcome != Ongoing {
			return outcome, err
		}
	}
}

func (g *Game) dispatch(ctx context.Context, cmd *command.Command, parsed command.ParseResult) (Outcome, error) {
	switch cmd.Handler {
	case command.HandlerExplore:
		return g.explore(ctx)
	case command.HandlerInventory:
		return Ongoing, g.checkInventory()
	case command.HandlerEquip:
		return Ongoing, g.selectEquipment()
	case command.HandlerEat:
		return Ongoing, g.eat(parsed)
	case command.HandlerStatus:
		return Ongoing, g.status()
	case command.HandlerHelp:
		return Ongoing, g.help()
	case command.HandlerQuit:
		return Quit, g.console.WriteLine("Exiting game...")
	}
	return Ongoing, fmt.Errorf("gameplay: no handler for command %q", cmd.Name)
}

func (g *Game) showMenu() error {
	lines := []string{
		"",
		g.console.Style(console.Bold, fmt.Sprintf("Welcome to %s!", g.sanctuary.Name())),
		fmt.Sprintf("Your health: %d", g.champion.Health().Value()),
		fmt.Sprintf("Hunger: %s", g.champion.Hunger()),
	}
	if g.champion.Hunger().Starving() {
		lines = append(lines, g.console.Style(console.Yellow, "You are starving. Eat before you explore or you will lose health."))
	}
	lines = append(lines, "Available actions:")
	for _, cmd := range g.commands.Menu() {
		lines = append(lines, fmt.Sprintf("%d. %s", cmd.Menu, cmd.Help))
	}
	return g.console.WriteLine(strings.Join(lines, "\n"))
}

func (g *Game) status() error {
	c := g.champion
	return g.console.WriteLine(strings.Join([]string{
		c.Status(),
		fmt.Sprintf("Visibility: %d", c.Stealth().Value()),
		fmt.Sprintf("Hunger: %s", c.Hunger()),
		fmt.Sprintf("Damage multiplier: x%.2f", c.DamageMultiplier()),
	}, "\n"))
}

// helpCategories orders the help listing.
var helpCategories = []struct {
	name  string
	label string
}{
	{command.CategoryAdventure, "Adventure"},
	{command.CategoryCharacter, "Character"},
	{command.CategorySystem, "System"},
}

// help lists every command grouped by category.
func (g *Game) help() error {
	lines := []string{"Commands:"}
	byCategory := g.commands.CommandsByCategory()
	for _, cat := range helpCategories {
		cmds := byCategory[cat.name]
		if len(cmds) == 0 {
			continue
		}
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
		lines = append(lines, g.console.Style(console.BrightYellow, fmt.Sprintf("  %s:", cat.label)))
		for _, cmd := range cmds {
			entry := fmt.Sprintf("    %-10s %s", cmd.Name, cmd.Help)
			if len(cmd.Aliases) > 0 {
				entry += fmt.Sprintf(" (%s)", strings.Join(cmd.Aliases, ", "))
			}
			lines = append(lines, entry)
		}
	}
	lines = append(lines, "You begin the journey hungry: eat before exploring or starvation costs health.")
	return g.console.WriteLine(strings.Join(lines, "\n"))
}
