package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r)
	assert.Len(t, r.Commands(), 7)
}

func TestResolve_CanonicalName(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("explore")
	assert.True(t, ok)
	assert.Equal(t, "explore", cmd.Name)
	assert.Equal(t, HandlerExplore, cmd.Handler)
}

func TestResolve_Alias(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("inv")
	assert.True(t, ok)
	assert.Equal(t, "inventory", cmd.Name)
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Resolve("north")
	assert.False(t, ok)
	_, ok = r.Resolve("5")
	assert.False(t, ok)
}

func TestResolve_MenuNumbers(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		input   string
		handler string
	}{
		{"1", HandlerExplore},
		{"2", HandlerInventory},
		{"3", HandlerEquip},
		{"4", HandlerQuit},
		{"exit", HandlerQuit},
		{"?", HandlerHelp},
		{"food", HandlerEat},
		{"st", HandlerStatus},
	}

	for _, tt := range tests {
		cmd, ok := r.Resolve(tt.input)
		require.True(t, ok, "input %q not found", tt.input)
		assert.Equal(t, tt.handler, cmd.Handler, "input %q wrong handler", tt.input)
	}
}

func TestMenu_Ordered(t *testing.T) {
	menu := DefaultRegistry().Menu()
	require.Len(t, menu, 4)
	names := make([]string, len(menu))
	for i, cmd := range menu {
		names[i] = cmd.Name
		assert.Equal(t, i+1, cmd.Menu)
	}
	assert.Equal(t, []string{"explore", "inventory", "equip", "quit"}, names)
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	cmds := []Command{
		{Name: "test", Handler: "a"},
		{Name: "test", Handler: "b"},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate command name")
}

func TestNewRegistry_DuplicateAlias(t *testing.T) {
	cmds := []Command{
		{Name: "test1", Aliases: []string{"t"}, Handler: "a"},
		{Name: "test2", Aliases: []string{"t"}, Handler: "b"},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate alias")
}

func TestNewRegistry_DuplicateMenuPosition(t *testing.T) {
	cmds := []Command{
		{Name: "a", Handler: "a", Menu: 1},
		{Name: "b", Handler: "b", Menu: 1},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "menu position 1")
}

func TestCommandsByCategory(t *testing.T) {
	r := DefaultRegistry()
	cats := r.CommandsByCategory()

	assert.Contains(t, cats, CategoryAdventure)
	assert.Contains(t, cats, CategoryCharacter)
	assert.Contains(t, cats, CategorySystem)
	assert.Len(t, cats[CategoryCharacter], 4)
}

func TestPropertyAllAliasesResolveToCanonical(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := DefaultRegistry()
		cmds := r.Commands()
		idx := rapid.IntRange(0, len(cmds)-1).Draw(t, "cmd_idx")
		cmd := cmds[idx]

		resolved, ok := r.Resolve(cmd.Name)
		if !ok {
			t.Fatalf("canonical name %q did not resolve", cmd.Name)
		}
		if resolved.Name != cmd.Name {
			t.Fatalf("canonical name %q resolved to %q", cmd.Name, resolved.Name)
		}

		for _, alias := range cmd.Aliases {
			aliasResolved, ok := r.Resolve(alias)
			if !ok {
				t.Fatalf("alias %q did not resolve", alias)
			}
			if aliasResolved.Name != cmd.Name {
				t.Fatalf("alias %q resolved to %q, expected %q", alias, aliasResolved.Name, cmd.Name)
			}
		}
	})
}
