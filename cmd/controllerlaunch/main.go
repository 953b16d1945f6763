// cmd/controllerlaunch/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds flag state and the logger for one command tree.
type cli struct {
	// Global flags
	verbose bool
	output  string
	force   bool

	// spawn / load flags
	paramFiles      []string
	extraArgs       []string
	inactive        bool
	activateAsGroup bool

	// generate / validate flags
	configPath string

	logger *zap.Logger
}

// newRootCmd builds a fresh command tree with its own flag state.
func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "controllerlaunch",
		Short: "Generate controller spawner launch files",
		Long: `controllerlaunch builds launch descriptions that spawn or load
controllers on a controller manager, and writes them as YAML launch files.

It never starts processes. The generated file is handed to the launch framework.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&c.output, "output", "o", "-", "output launch file (- for stdout)")
	root.PersistentFlags().BoolVar(&c.force, "force", false, "overwrite an existing output file")

	root.AddCommand(
		c.spawnCmd(),
		c.loadCmd(),
		c.generateCmd(),
		c.validateCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// the logger may not exist yet if flag parsing failed
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
