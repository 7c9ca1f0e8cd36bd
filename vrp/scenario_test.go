package vrp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadScenarioSpec_Valid(t *testing.T) {
	path := writeScenario(t, `
batch_size: 16
num_customers: 10
capacity: 30
max_demand: 9
seed: 1234
policy: random
max_steps: 500
`)

	spec, err := LoadScenarioSpec(path)
	require.NoError(t, err)

	assert.Equal(t, 16, spec.BatchSize)
	assert.Equal(t, 10, spec.NumCustomers)
	assert.Equal(t, 30, spec.Capacity)
	assert.Equal(t, 9, spec.MaxDemand)
	assert.Equal(t, int64(1234), spec.Seed)
	assert.Equal(t, "random", spec.Policy)
	assert.Equal(t, 500, spec.MaxSteps)

	cfg := spec.GeneratorConfig()
	assert.Equal(t, 16, cfg.BatchSize)
	assert.Equal(t, int64(1234), cfg.Seed)
}

func TestLoadScenarioSpec_DefaultPolicy(t *testing.T) {
	path := writeScenario(t, `
batch_size: 4
num_customers: 5
capacity: 20
max_demand: 9
seed: 1
`)

	spec, err := LoadScenarioSpec(path)
	require.NoError(t, err)
	assert.Empty(t, spec.Policy) // empty resolves to greedy in NewPolicy
	assert.IsType(t, GreedyPolicy{}, NewPolicy(spec.Policy, spec.Seed))
}

func TestLoadScenarioSpec_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"capacity below max demand", "batch_size: 4\nnum_customers: 5\ncapacity: 5\nmax_demand: 9\n"},
		{"unknown policy", "batch_size: 4\nnum_customers: 5\ncapacity: 20\nmax_demand: 9\npolicy: neural\n"},
		{"negative max steps", "batch_size: 4\nnum_customers: 5\ncapacity: 20\nmax_demand: 9\nmax_steps: -1\n"},
		{"zero batch size", "num_customers: 5\ncapacity: 20\nmax_demand: 9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, tt.contents)
			spec, err := LoadScenarioSpec(path)
			require.Nil(t, spec)
			require.True(t, errors.Is(err, ErrInvalidConfiguration), "want ErrInvalidConfiguration, got %v", err)
		})
	}
}

func TestLoadScenarioSpec_MissingFile(t *testing.T) {
	_, err := LoadScenarioSpec(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadScenarioSpec_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "batch_size: [not an int\n")
	_, err := LoadScenarioSpec(path)
	require.Error(t, err)
}
