// Package config loads triad settings from YAML files and environment
// variables.
//
// Order: Default -> YAML file (optional) -> TRIAD_* environment -> Validate.
// Command-line flags are applied by the caller after Load.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/triad/balance"
	"github.com/katalvlaran/triad/logging"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all triad settings.
type Config struct {
	// Simulation configures a single universe.
	Simulation SimulationConfig `yaml:"simulation"`

	// Batch configures the experiment runner.
	Batch BatchConfig `yaml:"batch"`

	// Opinion configures the voting simulation.
	Opinion OpinionConfig `yaml:"opinion"`

	// Logging configures the slog handler.
	Logging LoggingConfig `yaml:"logging"`
}

// SimulationConfig describes the input graph and the transition policy.
type SimulationConfig struct {
	// Nodes is the size of the complete signed graph.
	Nodes int `yaml:"nodes"`

	// FriendProb is the Erdős–Rényi edge probability of the input graph;
	// edges become Friend labels.
	FriendProb float64 `yaml:"friend_prob"`

	// Policy is "passive" or "forced".
	Policy string `yaml:"policy"`

	// EnemyPriority is the forced policy's rotation probability, in [0,1].
	EnemyPriority float64 `yaml:"enemy_priority"`

	// MaxRounds caps a run; 0 disables the cap.
	MaxRounds int `yaml:"max_rounds"`

	// Seed drives every RNG; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// BatchConfig describes a batch of independent universes.
type BatchConfig struct {
	Runs int `yaml:"runs"`

	// Workers bounds concurrency; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// MetricsFile, when set, receives the Prometheus textfile after the batch.
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// OpinionConfig describes an opinion-diffusion election.
type OpinionConfig struct {
	Voters     int `yaml:"voters"`
	Candidates int `yaml:"candidates"`

	// AttachEdges is the Barabási–Albert m of the acquaintance network.
	AttachEdges int `yaml:"ba_m"`

	// Adjustments per diffusion round.
	Adjustments int `yaml:"adjustments"`
	Rounds      int `yaml:"rounds"`

	MaxStubbornness float64 `yaml:"max_stubbornness"`
	MaxCharisma     float64 `yaml:"max_charisma"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level is "debug", "info" (default), "warn" or "error".
	Level string `yaml:"level"`
}

// Default returns a Config with working defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Nodes:         20,
			FriendProb:    0.5,
			Policy:        balance.PolicyForced,
			EnemyPriority: 0.5,
			MaxRounds:     1_000_000,
		},
		Batch: BatchConfig{
			Runs: 100,
		},
		Opinion: OpinionConfig{
			Voters:          1000,
			Candidates:      3,
			AttachEdges:     3,
			Adjustments:     1000,
			Rounds:          10,
			MaxStubbornness: 1,
			MaxCharisma:     1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads defaults, then path (skipped when empty), then the environment,
// and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads a YAML file over the defaults. Unknown keys are errors.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	s := c.Simulation
	switch {
	case s.Nodes < 1:
		return fmt.Errorf("%w: simulation.nodes must be >= 1, got %d", ErrInvalid, s.Nodes)
	case s.FriendProb < 0 || s.FriendProb > 1:
		return fmt.Errorf("%w: simulation.friend_prob must be in [0,1], got %g", ErrInvalid, s.FriendProb)
	case s.MaxRounds < 0:
		return fmt.Errorf("%w: simulation.max_rounds must be >= 0, got %d", ErrInvalid, s.MaxRounds)
	}
	if _, err := balance.ParsePolicy(s.Policy, s.EnemyPriority); err != nil {
		return fmt.Errorf("%w: simulation: %w", ErrInvalid, err)
	}

	if c.Batch.Runs < 1 {
		return fmt.Errorf("%w: batch.runs must be >= 1, got %d", ErrInvalid, c.Batch.Runs)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must be >= 0, got %d", ErrInvalid, c.Batch.Workers)
	}

	o := c.Opinion
	switch {
	case o.Voters < 2:
		return fmt.Errorf("%w: opinion.voters must be >= 2, got %d", ErrInvalid, o.Voters)
	case o.Candidates < 1:
		return fmt.Errorf("%w: opinion.candidates must be >= 1, got %d", ErrInvalid, o.Candidates)
	case o.AttachEdges < 1 || o.AttachEdges >= o.Voters:
		return fmt.Errorf("%w: opinion.ba_m must be in [1,voters), got %d", ErrInvalid, o.AttachEdges)
	case o.Adjustments < 0 || o.Rounds < 0:
		return fmt.Errorf("%w: opinion.adjustments and opinion.rounds must be >= 0", ErrInvalid)
	case o.MaxStubbornness < 0 || o.MaxStubbornness > 1:
		return fmt.Errorf("%w: opinion.max_stubbornness must be in [0,1], got %g", ErrInvalid, o.MaxStubbornness)
	case o.MaxCharisma < 0 || o.MaxCharisma > 1:
		return fmt.Errorf("%w: opinion.max_charisma must be in [0,1], got %g", ErrInvalid, o.MaxCharisma)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging: %w", ErrInvalid, err)
	}

	return nil
}

// applyEnvOverrides applies TRIAD_* variables. Unparsable numbers are errors.
func applyEnvOverrides(c *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"TRIAD_NODES", &c.Simulation.Nodes},
		{"TRIAD_MAX_ROUNDS", &c.Simulation.MaxRounds},
		{"TRIAD_RUNS", &c.Batch.Runs},
		{"TRIAD_WORKERS", &c.Batch.Workers},
		{"TRIAD_VOTERS", &c.Opinion.Voters},
		{"TRIAD_CANDIDATES", &c.Opinion.Candidates},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, e.key, v, err)
			}
			*e.dst = n
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"TRIAD_FRIEND_PROB", &c.Simulation.FriendProb},
		{"TRIAD_ENEMY_PRIORITY", &c.Simulation.EnemyPriority},
	}
	for _, e := range floats {
		if v := os.Getenv(e.key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, e.key, v, err)
			}
			*e.dst = f
		}
	}

	if v := os.Getenv("TRIAD_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: TRIAD_SEED=%q: %w", ErrInvalid, v, err)
		}
		c.Simulation.Seed = n
	}
	if v := os.Getenv("TRIAD_POLICY"); v != "" {
		c.Simulation.Policy = v
	}
	if v := os.Getenv("TRIAD_METRICS_FILE"); v != "" {
		c.Batch.MetricsFile = v
	}
	if v := os.Getenv("TRIAD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return nil
}
