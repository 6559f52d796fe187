// Package config provides Viper-based configuration loading for the Dystoria game.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is the zap output path ("stderr", "stdout", or a file path).
	Output string `mapstructure:"output"`
}

// ContentConfig locates the game data files.
// File names are resolved relative to DataDir unless absolute.
type ContentConfig struct {
	DataDir     string `mapstructure:"data_dir"`
	Bows        string `mapstructure:"bows"`
	Quivers     string `mapstructure:"quivers"`
	Enemies     string `mapstructure:"enemies"`
	Sanctuaries string `mapstructure:"sanctuaries"`
	Provisions  string `mapstructure:"provisions"`
	// Tactics is an optional YAML stealth tactic table. Empty = built-in tactics.
	Tactics string `mapstructure:"tactics"`
}

// Path resolves name against DataDir.
//
// Postcondition: Returns name unchanged if it is empty or absolute.
func (c ContentConfig) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// GameConfig holds the rules of a run.
type GameConfig struct {
	// PlayerName is the champion's display name.
	PlayerName string `mapstructure:"player_name"`
	// PlayerHealth is the champion's starting health, which is also its cap.
	PlayerHealth int `mapstructure:"player_health"`
	// StartingVisibility is the champion's initial stealth visibility.
	StartingVisibility int `mapstructure:"starting_visibility"`
	// VisibilityThreshold blocks stealthy attacks and triggers counterattacks
	// when visibility is at or above it.
	VisibilityThreshold int `mapstructure:"visibility_threshold"`
	// NoiseDice is the dice expression rolled to raise visibility after each attack.
	NoiseDice string `mapstructure:"noise_dice"`
	// StartingShots primes every bow stocked in a sanctuary.
	StartingShots int `mapstructure:"starting_shots"`
	// HungerPerExplore is added to the champion's hunger on every exploration.
	HungerPerExplore int `mapstructure:"hunger_per_explore"`
	// StarvationDamage is the health lost per exploration while hunger is maxed.
	StarvationDamage int `mapstructure:"starvation_damage"`
	// Seed seeds the dice source. 0 = crypto/rand.
	Seed int64 `mapstructure:"seed"`
	// Sanctuary names the starting sanctuary. Empty = random.
	Sanctuary string `mapstructure:"sanctuary"`
}

// ConsoleConfig holds terminal presentation settings.
type ConsoleConfig struct {
	// Color enables ANSI colors in console output.
	Color bool `mapstructure:"color"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Content ContentConfig `mapstructure:"content"`
	Game    GameConfig    `mapstructure:"game"`
	Console ConsoleConfig `mapstructure:"console"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return errors.New("logging.output must not be empty")
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	if c.DataDir == "" {
		errs = append(errs, "content.data_dir must not be empty")
	}
	for _, f := range []struct {
		key  string
		name string
	}{
		{"content.bows", c.Bows},
		{"content.quivers", c.Quivers},
		{"content.enemies", c.Enemies},
		{"content.sanctuaries", c.Sanctuaries},
	} {
		if f.name == "" {
			errs = append(errs, f.key+" must not be empty")
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.PlayerName == "" {
		errs = append(errs, "game.player_name must not be empty")
	}
	if g.PlayerHealth < 1 {
		errs = append(errs, fmt.Sprintf("game.player_health must be >= 1, got %d", g.PlayerHealth))
	}
	if g.StartingVisibility < 0 {
		errs = append(errs, fmt.Sprintf("game.starting_visibility must be >= 0, got %d", g.StartingVisibility))
	}
	if g.VisibilityThreshold < 1 {
		errs = append(errs, fmt.Sprintf("game.visibility_threshold must be >= 1, got %d", g.VisibilityThreshold))
	}
	if g.NoiseDice == "" {
		errs = append(errs, "game.noise_dice must not be empty")
	}
	if g.StartingShots < 0 {
		errs = append(errs, fmt.Sprintf("game.starting_shots must be >= 0, got %d", g.StartingShots))
	}
	if g.HungerPerExplore < 0 {
		errs = append(errs, fmt.Sprintf("game.hunger_per_explore must be >= 0, got %d", g.HungerPerExplore))
	}
	if g.StarvationDamage < 0 {
		errs = append(errs, fmt.Sprintf("game.starvation_damage must be >= 0, got %d", g.StarvationDamage))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with DYSTORIA_ prefix
	v.SetEnvPrefix("DYSTORIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration produced by defaults alone.
//
// Postcondition: The result passes Validate.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic(fmt.Sprintf("config: defaults are invalid: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("content.data_dir", "data")
	v.SetDefault("content.bows", "spellcaster_bows.tsv")
	v.SetDefault("content.quivers", "mystic_quivers.tsv")
	v.SetDefault("content.enemies", "enemies.tsv")
	v.SetDefault("content.sanctuaries", "sanctuaries.tsv")
	v.SetDefault("content.provisions", "provisions.tsv")
	v.SetDefault("content.tactics", "")

	v.SetDefault("game.player_name", "Hero")
	v.SetDefault("game.player_health", 200)
	v.SetDefault("game.starting_visibility", 50)
	v.SetDefault("game.visibility_threshold", 60)
	v.SetDefault("game.noise_dice", "1d11+4")
	v.SetDefault("game.starting_shots", 8)
	v.SetDefault("game.hunger_per_explore", 5)
	v.SetDefault("game.starvation_damage", 2)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.sanctuary", "")

	v.SetDefault("console.color", true)
}
