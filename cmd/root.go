package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	vrp "github.com/vrp-sim/vrp-sim/vrp"
	"github.com/vrp-sim/vrp-sim/vrp/trace"
)

var (
	// CLI flags for batch generation
	batchSize    int    // Number of independent problem instances per batch
	numCustomers int    // Customers per instance (node 0 is always the depot)
	capacity     int    // Vehicle capacity in integer units
	maxDemand    int    // Upper bound (inclusive) on per-customer demand
	seed         int64  // Seed for reproducible instance generation
	logLevel     string // Log verbosity level

	// CLI flags for the episode driver
	policyName   string // Baseline policy driving node choices
	maxSteps     int    // Step cap before the episode is abandoned
	scenarioPath string // Optional YAML scenario overriding the flags above
	traceOut     string // Optional CSV path for the per-step decision trace
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "vrp-sim",
	Short: "Batched state-transition engine for the capacitated VRP",
}

// runCmd generates a batch, drives one full episode under a baseline
// policy, and reports tour-length metrics.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one batch episode",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec := &vrp.ScenarioSpec{
			BatchSize:    batchSize,
			NumCustomers: numCustomers,
			Capacity:     capacity,
			MaxDemand:    maxDemand,
			Seed:         seed,
			Policy:       policyName,
			MaxSteps:     maxSteps,
		}
		if scenarioPath != "" {
			spec, err = vrp.LoadScenarioSpec(scenarioPath)
			if err != nil {
				logrus.Fatalf("Unable to load scenario: %v", err)
			}
		} else if err := spec.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Generating batch: %d instances, %d customers, capacity=%d, maxDemand=%d, seed=%d",
			spec.BatchSize, spec.NumCustomers, spec.Capacity, spec.MaxDemand, spec.Seed)

		startTime := time.Now()

		batch, err := vrp.GenerateBatch(spec.GeneratorConfig())
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}

		var episodeTrace *trace.EpisodeTrace
		if traceOut != "" {
			episodeTrace = trace.NewEpisodeTrace(trace.TraceConfig{Level: trace.TraceLevelSteps})
		}

		policy := vrp.NewPolicy(spec.Policy, spec.Seed)
		result, err := vrp.RunEpisode(batch, policy, vrp.EpisodeConfig{
			MaxSteps: spec.MaxSteps,
			Trace:    episodeTrace,
		})
		if err != nil {
			logrus.Fatalf("Episode failed: %v", err)
		}

		vrp.NewMetrics(result).Print()
		logrus.Infof("Episode complete in %v (%d steps)", time.Since(startTime), result.Steps)

		if episodeTrace != nil {
			if err := trace.ExportCSV(episodeTrace, traceOut); err != nil {
				logrus.Fatalf("Unable to write trace: %v", err)
			}
			summary := trace.Summarize(episodeTrace)
			logrus.Infof("Trace written to %s (%d steps, %d depot returns)",
				traceOut, summary.TotalSteps, summary.DepotReturns)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&batchSize, "batch-size", 64, "Number of problem instances per batch")
	runCmd.Flags().IntVar(&numCustomers, "num-customers", 10, "Customers per instance")
	runCmd.Flags().IntVar(&capacity, "capacity", 20, "Vehicle capacity in integer units")
	runCmd.Flags().IntVar(&maxDemand, "max-demand", 9, "Maximum per-customer demand")
	runCmd.Flags().Int64Var(&seed, "seed", 1234, "Seed for reproducible generation")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&policyName, "policy", "greedy", "Baseline policy (greedy, random)")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Step cap for the episode (0 = default)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file overriding generation flags")
	runCmd.Flags().StringVar(&traceOut, "trace-out", "", "CSV path for the per-step decision trace")

	rootCmd.AddCommand(runCmd)
}
