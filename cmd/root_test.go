package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCmd_FlagDefaults(t *testing.T) {
	// The flag defaults are the canonical small-problem configuration; the
	// determinism fixtures in vrp/ assume them.
	tests := []struct {
		flag string
		want string
	}{
		{"batch-size", "64"},
		{"num-customers", "10"},
		{"capacity", "20"},
		{"max-demand", "9"},
		{"seed", "1234"},
		{"log", "error"},
		{"policy", "greedy"},
		{"max-steps", "0"},
		{"scenario", ""},
		{"trace-out", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := runCmd.Flags().Lookup(tt.flag)
			require.NotNil(t, f, "flag %q not registered", tt.flag)
			assert.Equal(t, tt.want, f.DefValue)
		})
	}
}

func TestRootCmd_HasRunSubcommand(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Name() == "run" {
			found = true
		}
	}
	assert.True(t, found, "run subcommand not registered")
}
