package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger    = zap.NewNop()
	newLogger = productionLogger
)

func main() {
	if err := runRoot(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// runRoot executes cmd and flushes the logger even when the command fails;
// cobra skips post-run hooks after a RunE error.
func runRoot(cmd *cobra.Command) error {
	defer func() { _ = logger.Sync() }()
	return cmd.Execute()
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
