package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Content: ContentConfig{
			DataDir:     "data",
			Bows:        "spellcaster_bows.tsv",
			Quivers:     "mystic_quivers.tsv",
			Enemies:     "enemies.tsv",
			Sanctuaries: "sanctuaries.tsv",
			Provisions:  "provisions.tsv",
		},
		Game: GameConfig{
			PlayerName:          "Hero",
			PlayerHealth:        200,
			StartingVisibility:  50,
			VisibilityThreshold: 60,
			NoiseDice:           "1d11+4",
			StartingShots:       8,
			HungerPerExplore:    5,
			StarvationDamage:    2,
		},
		Console: ConsoleConfig{Color: true},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.Game.VisibilityThreshold)
	assert.Equal(t, 200, cfg.Game.PlayerHealth)
	assert.Equal(t, "1d11+4", cfg.Game.NoiseDice)
	assert.Equal(t, "data", cfg.Content.DataDir)
}

func TestContentPath(t *testing.T) {
	c := validConfig().Content
	assert.Equal(t, filepath.Join("data", "enemies.tsv"), c.Path("enemies.tsv"))
	assert.Equal(t, "/abs/enemies.tsv", c.Path("/abs/enemies.tsv"))
	assert.Equal(t, "", c.Path(""))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
content:
  data_dir: /srv/dystoria
game:
  player_name: Artemis
  player_health: 120
  visibility_threshold: 30
console:
  color: false
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "/srv/dystoria", cfg.Content.DataDir)
	assert.Equal(t, "spellcaster_bows.tsv", cfg.Content.Bows)
	assert.Equal(t, "Artemis", cfg.Game.PlayerName)
	assert.Equal(t, 120, cfg.Game.PlayerHealth)
	assert.Equal(t, 30, cfg.Game.VisibilityThreshold)
	assert.False(t, cfg.Console.Color)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Hero", cfg.Game.PlayerName)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DYSTORIA_GAME_PLAYER_NAME", "Nyx")
	t.Setenv("DYSTORIA_GAME_SEED", "42")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Nyx", cfg.Game.PlayerName)
	assert.Equal(t, int64(42), cfg.Game.Seed)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  player_health: 0\n"), 0644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.player_health")
}

func TestValidateLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Output = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateContentRequiresFiles(t *testing.T) {
	cfg := validConfig()
	cfg.Content.Sanctuaries = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content.sanctuaries")

	cfg = validConfig()
	cfg.Content.Provisions = ""
	assert.NoError(t, cfg.Validate(), "provisions are optional")
}

func TestValidateContent_ViolationsInStableOrder(t *testing.T) {
	cfg := validConfig()
	cfg.Content.DataDir = ""
	cfg.Content.Bows = ""
	cfg.Content.Quivers = ""
	cfg.Content.Enemies = ""
	cfg.Content.Sanctuaries = ""
	want := "content.data_dir must not be empty; content.bows must not be empty; " +
		"content.quivers must not be empty; content.enemies must not be empty; " +
		"content.sanctuaries must not be empty"
	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateGame_ReportsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Game.PlayerName = ""
	cfg.Game.NoiseDice = ""
	cfg.Game.StartingShots = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.player_name")
	assert.Contains(t, err.Error(), "game.noise_dice")
	assert.Contains(t, err.Error(), "game.starting_shots")
}

func TestProperty_PlayerHealth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		health := rapid.IntRange(-1000, 1000).Draw(rt, "health")
		cfg := validConfig()
		cfg.Game.PlayerHealth = health
		err := cfg.Validate()
		if health >= 1 {
			assert.NoError(rt, err)
		} else {
			assert.Error(rt, err)
		}
	})
}
