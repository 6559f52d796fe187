// Package command provides the menu command registry, line parser, and
// built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryAdventure = "adventure"
	CategoryCharacter = "character"
	CategorySystem    = "system"
)

// Handler identifiers mapping commands to game loop actions.
const (
	HandlerExplore   = "explore"
	HandlerInventory = "inventory"
	HandlerEquip     = "equip"
	HandlerQuit      = "quit"
	HandlerEat       = "eat"
	HandlerStatus    = "status"
	HandlerHelp      = "help"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (adventure, character, system).
	Category string
	// Handler maps to the game loop action.
	Handler string
	// Menu is the command's position in the numbered main menu. 0 = unlisted.
	Menu int
}

// BuiltinCommands returns all built-in commands for the game.
// Numbered menu entries are also reachable by their number.
func BuiltinCommands() []Command {
	return []Command{
		// Adventure commands
		{Name: "explore", Aliases: []string{"1", "x"}, Help: "Venture out and seek an enemy", Category: CategoryAdventure, Handler: HandlerExplore, Menu: 1},

		// Character commands
		{Name: "inventory", Aliases: []string{"2", "inv", "i"}, Help: "Check your inventory", Category: CategoryCharacter, Handler: HandlerInventory, Menu: 2},
		{Name: "equip", Aliases: []string{"3", "eq", "select"}, Help: "Select equipment from the sanctuary", Category: CategoryCharacter, Handler: HandlerEquip, Menu: 3},
		{Name: "eat", Aliases: []string{"food"}, Help: "Eat a provision to ease your hunger (eat <number|name>)", Category: CategoryCharacter, Handler: HandlerEat},
		{Name: "status", Aliases: []string{"stat", "st"}, Help: "Show health, visibility and hunger", Category: CategoryCharacter, Handler: HandlerStatus},

		// System commands
		{Name: "quit", Aliases: []string{"4", "exit", "q"}, Help: "Quit the game", Category: CategorySystem, Handler: HandlerQuit, Menu: 4},
		{Name: "help", Aliases: []string{"?", "h"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
	}
}
