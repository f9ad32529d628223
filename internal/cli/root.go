package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskgen",
	Short: "Generate WDL task wrappers from command-line tool models",
	Long: `taskgen reads language-agnostic models of command-line tools
(their flags, positional arguments, and value types) and emits WDL 1.0
task definitions that wrap those tools for workflow engines.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the slog logger from the persistent log-level flag.
// Diagnostics go to stderr; generated output and inspect listings own
// stdout.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if name, err := cmd.Flags().GetString("log-level"); err == nil {
		switch name {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
