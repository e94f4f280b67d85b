package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "triad version "+version+"\n", out)
}

func TestRunCmd(t *testing.T) {
	out, logs, err := execute(t, "run",
		"--seed", "3", "--nodes", "6", "--policy", "forced", "--max-rounds", "200000", "--verify", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "converged=true")
	assert.Contains(t, out, "factions=")
	assert.Contains(t, logs, "universe ready")
}

func TestRunCmd_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "run", "--seed", "1", "--policy", "lazy")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "--seed", "1", "--friend-prob", "2")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "--log-level", "loud")
	assert.Error(t, err)
}

func TestBatchCmd_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triad.prom")
	out, _, err := execute(t, "batch",
		"--seed", "9", "--nodes", "5", "--runs", "4", "--workers", "2",
		"--max-rounds", "200000", "--metrics-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4/4 converged")
	assert.Contains(t, out, "SPLIT")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "triad_runs_total")
}

func TestVoteCmd(t *testing.T) {
	out, _, err := execute(t, "vote",
		"--seed", "4", "--voters", "30", "--candidates", "3", "--ba-m", "2",
		"--rounds", "2", "--adjustments", "50", "--fixed-candidates")
	require.NoError(t, err)
	assert.Contains(t, out, "policy 0.250")
	assert.Contains(t, out, "ROUND")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  nodes: 0\n"), 0o600))

	_, _, err := execute(t, "run", "--config", path)
	assert.Error(t, err, "invalid file values are rejected")

	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  nodes: 4\n  seed: 2\n  max_rounds: 100000\n"), 0o600))
	out, _, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "converged=true")
}
