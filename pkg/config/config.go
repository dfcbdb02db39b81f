// Package config manages the TOML configuration for WordleHint.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/grb26/WordleHint/internal/utils"
	"github.com/grb26/WordleHint/pkg/solver"
)

// Config holds the entire config structure.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Lists  ListsConfig  `toml:"lists"`
	CLI    CliConfig    `toml:"cli"`
}

// SolverConfig bundles the core knobs: word length L, result count N and
// the quality/speed mode.
type SolverConfig struct {
	WordLength  int  `toml:"word_length"`
	Suggestions int  `toml:"suggestions"` // 0 means return the full ranking
	Fast        bool `toml:"fast"`
}

// ListsConfig points at the word list files. Empty paths fall back to the
// embedded defaults.
type ListsConfig struct {
	AnswersFile string `toml:"answers_file"`
	GuessesFile string `toml:"guesses_file"`
}

// CliConfig holds presentation options for the command line front-ends.
type CliConfig struct {
	PrintAll   bool `toml:"print_all"`
	MaxDisplay int  `toml:"max_display"`
	Color      bool `toml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			WordLength:  5,
			Suggestions: 1,
			Fast:        false,
		},
		Lists: ListsConfig{},
		CLI: CliConfig{
			PrintAll:   false,
			MaxDisplay: 20,
			Color:      true,
		},
	}
}

// Load reads a TOML file over the defaults. An empty path or a missing
// file yields the defaults; a present-but-unparsable file is an error, not
// something to silently ignore.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debugf("config: %s not found, using defaults", path)
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.validate()
	log.Debugf("config: loaded %s", path)
	return cfg, nil
}

// Save writes the config as TOML.
func Save(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}

// validate clamps out-of-range values back to sane ones rather than
// refusing to start.
func (c *Config) validate() {
	c.Solver.WordLength = utils.Clamp(c.Solver.WordLength, 2, solver.MaxWordLength)
	c.Solver.Suggestions = utils.Clamp(c.Solver.Suggestions, 0, 1<<20)
	c.CLI.MaxDisplay = utils.Clamp(c.CLI.MaxDisplay, 1, 1<<20)
}

// Mode maps the fast flag onto the solver's mode enum.
func (c *Config) Mode() solver.Mode {
	if c.Solver.Fast {
		return solver.Fast
	}
	return solver.Slow
}
