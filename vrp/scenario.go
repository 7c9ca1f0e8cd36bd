// scenario.go
//
// YAML scenario files bundle a full run configuration so experiments are a
// single artifact instead of a flag list.

package vrp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioSpec is the top-level run configuration.
// Loaded from YAML via LoadScenarioSpec(path).
type ScenarioSpec struct {
	BatchSize    int    `yaml:"batch_size"`
	NumCustomers int    `yaml:"num_customers"`
	Capacity     int    `yaml:"capacity"`
	MaxDemand    int    `yaml:"max_demand"`
	Seed         int64  `yaml:"seed"`
	Policy       string `yaml:"policy,omitempty"`    // "greedy" (default) or "random"
	MaxSteps     int    `yaml:"max_steps,omitempty"` // 0 = DefaultMaxSteps
}

// GeneratorConfig converts the scenario's generation fields.
func (s ScenarioSpec) GeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		BatchSize:    s.BatchSize,
		NumCustomers: s.NumCustomers,
		Capacity:     s.Capacity,
		MaxDemand:    s.MaxDemand,
		Seed:         s.Seed,
	}
}

// Validate checks the scenario, reusing the generator's parameter rules and
// rejecting unknown policy names.
func (s ScenarioSpec) Validate() error {
	if err := s.GeneratorConfig().Validate(); err != nil {
		return err
	}
	if NewPolicy(s.Policy, s.Seed) == nil {
		return fmt.Errorf("%w: unknown policy %q (valid: greedy, random)", ErrInvalidConfiguration, s.Policy)
	}
	if s.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps must be non-negative, got %d", ErrInvalidConfiguration, s.MaxSteps)
	}
	return nil
}

// LoadScenarioSpec reads and validates a scenario YAML file.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var spec ScenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
