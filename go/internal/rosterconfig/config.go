// Package rosterconfig loads the patcher configuration: defaults, then an optional YAML
// file, then environment overrides.
package rosterconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/mcdev12/rosterpatch/go/internal/career"
	"github.com/mcdev12/rosterpatch/go/internal/models"
	"github.com/mcdev12/rosterpatch/go/internal/roster"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfigPath = "ROSTERPATCH_CONFIG"
	EnvSourcesDir = "ROSTERPATCH_SOURCES_DIR"
	EnvSeed       = "ROSTERPATCH_SEED"
	EnvLogLevel   = "LOG_LEVEL"
)

// DefaultPath is the config file looked up when ROSTERPATCH_CONFIG is unset.
const DefaultPath = "rosterpatch.yaml"

// Config holds everything the patcher can be tuned with.
type Config struct {
	// Directory holding the *_rosters.json exports
	SourcesDir string `yaml:"sources_dir"`

	// Zero seeds from the clock
	Seed int64 `yaml:"seed"`

	CollegeLeagueType  int    `yaml:"college_league_type"`
	FillJerseyCap      int    `yaml:"fill_jersey_cap"`
	GeneratedJerseyCap int    `yaml:"generated_jersey_cap"`
	LogLevel           string `yaml:"log_level"`

	Career CareerConfig `yaml:"career"`
}

// CareerConfig identifies the protected career player and its home team.
type CareerConfig struct {
	PID                  int      `yaml:"pid"`
	FirstName            string   `yaml:"first_name"`
	LastName             string   `yaml:"last_name"`
	MatchMaxedAttributes bool     `yaml:"match_maxed_attributes"`
	HomeTeam             string   `yaml:"home_team"`
	HomeTeamAliases      []string `yaml:"home_team_aliases"`
}

// Default returns the configuration used when no file or env override is present.
func Default() Config {
	identity := career.DefaultIdentity()
	home := career.DefaultHomeTeam()
	return Config{
		SourcesDir:         "..",
		CollegeLeagueType:  models.LeagueTypeCollege,
		FillJerseyCap:      roster.DefaultFillJerseyCap,
		GeneratedJerseyCap: roster.DefaultGeneratedJerseyCap,
		LogLevel:           "info",
		Career: CareerConfig{
			PID:                  identity.PID,
			FirstName:            identity.FirstName,
			LastName:             identity.LastName,
			MatchMaxedAttributes: identity.MatchMaxedAttributes,
			HomeTeam:             home.Name,
			HomeTeamAliases:      home.Aliases,
		},
	}
}

// Load overlays the YAML file at path on Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment. Unparseable values are reported and
// leave the field unchanged.
func (c *Config) ApplyEnv() error {
	c.SourcesDir = getEnv(EnvSourcesDir, c.SourcesDir)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		c.Seed = seed
	}
	return nil
}

// Validate rejects values the patcher cannot run with.
func (c Config) Validate() error {
	if c.FillJerseyCap < 1 {
		return fmt.Errorf("fill_jersey_cap must be positive, got %d", c.FillJerseyCap)
	}
	if c.GeneratedJerseyCap < 1 {
		return fmt.Errorf("generated_jersey_cap must be positive, got %d", c.GeneratedJerseyCap)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel, defaulting to info when empty.
func (c Config) Level() (zerolog.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Identity returns the career player matcher.
func (c Config) Identity() career.Identity {
	return career.Identity{
		PID:                  c.Career.PID,
		FirstName:            c.Career.FirstName,
		LastName:             c.Career.LastName,
		MatchMaxedAttributes: c.Career.MatchMaxedAttributes,
	}
}

// HomeTeam returns where the career player must end up.
func (c Config) HomeTeam() career.HomeTeam {
	return career.HomeTeam{
		Name:    c.Career.HomeTeam,
		Aliases: c.Career.HomeTeamAliases,
	}
}

// PatchOptions returns the roster pass options.
func (c Config) PatchOptions() roster.Options {
	return roster.Options{
		LeagueType:         c.CollegeLeagueType,
		FillJerseyCap:      c.FillJerseyCap,
		GeneratedJerseyCap: c.GeneratedJerseyCap,
	}
}

// ConfigPath returns ROSTERPATCH_CONFIG or DefaultPath.
func ConfigPath() string {
	return getEnv(EnvConfigPath, DefaultPath)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
