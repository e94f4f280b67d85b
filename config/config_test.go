package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "triad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "forced", cfg.Simulation.Policy)
	assert.Equal(t, 0.5, cfg.Simulation.EnemyPriority)
	assert.Equal(t, 100, cfg.Batch.Runs)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `
simulation:
  nodes: 8
  policy: passive
  seed: 42
batch:
  runs: 5
  metrics_file: /tmp/triad.prom
opinion:
  ba_m: 2
logging:
  level: debug
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Simulation.Nodes)
	assert.Equal(t, "passive", cfg.Simulation.Policy)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, 0.5, cfg.Simulation.FriendProb, "unset keys keep defaults")
	assert.Equal(t, 5, cfg.Batch.Runs)
	assert.Equal(t, "/tmp/triad.prom", cfg.Batch.MetricsFile)
	assert.Equal(t, 2, cfg.Opinion.AttachEdges)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFromFile(writeFile(t, "simulation:\n  nodez: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	cfg, err := LoadFromFile(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"nodes", func(c *Config) { c.Simulation.Nodes = 0 }},
		{"friend_prob", func(c *Config) { c.Simulation.FriendProb = 1.5 }},
		{"policy", func(c *Config) { c.Simulation.Policy = "lazy" }},
		{"enemy_priority", func(c *Config) { c.Simulation.EnemyPriority = -0.1 }},
		{"max_rounds", func(c *Config) { c.Simulation.MaxRounds = -1 }},
		{"runs", func(c *Config) { c.Batch.Runs = 0 }},
		{"workers", func(c *Config) { c.Batch.Workers = -2 }},
		{"voters", func(c *Config) { c.Opinion.Voters = 1 }},
		{"candidates", func(c *Config) { c.Opinion.Candidates = 0 }},
		{"ba_m", func(c *Config) { c.Opinion.AttachEdges = c.Opinion.Voters }},
		{"max_charisma", func(c *Config) { c.Opinion.MaxCharisma = 2 }},
		{"level", func(c *Config) { c.Logging.Level = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("TRIAD_NODES", "12")
	t.Setenv("TRIAD_FRIEND_PROB", "0.25")
	t.Setenv("TRIAD_SEED", "-3")
	t.Setenv("TRIAD_POLICY", "passive")
	t.Setenv("TRIAD_LOG_LEVEL", "warn")

	cfg := Default()
	require.NoError(t, applyEnvOverrides(cfg))
	assert.Equal(t, 12, cfg.Simulation.Nodes)
	assert.Equal(t, 0.25, cfg.Simulation.FriendProb)
	assert.Equal(t, int64(-3), cfg.Simulation.Seed)
	assert.Equal(t, "passive", cfg.Simulation.Policy)
	assert.Equal(t, "warn", cfg.Logging.Level)

	t.Setenv("TRIAD_RUNS", "many")
	assert.ErrorIs(t, applyEnvOverrides(Default()), ErrInvalid)
}

func TestLoad(t *testing.T) {
	t.Setenv("TRIAD_RUNS", "7")
	path := writeFile(t, "batch:\n  runs: 3\n  workers: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Batch.Runs, "environment wins over the file")
	assert.Equal(t, 2, cfg.Batch.Workers)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Batch.Runs)

	t.Setenv("TRIAD_RUNS", "0")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}
