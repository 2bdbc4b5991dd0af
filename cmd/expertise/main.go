package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/expertise/am"
	"github.com/teranos/expertise/cmd/expertise/commands"
	"github.com/teranos/expertise/errors"
	"github.com/teranos/expertise/logger"
)

var rootCmd = &cobra.Command{
	Use:   "expertise",
	Short: "Validate process-model measurements and build classifier instances",
	Long: `expertise - schema-validated feature records for expertise prediction.

Each record describes one process model through named measurements. Records
are checked against the fixed attribute table and turned into the
structured instances an expertise classifier consumes.

Examples:
  expertise schema                   # Show the attribute table
  expertise convert models.json      # Convert records to instances
  cat models.jsonl | expertise convert --vector
  expertise am show                  # Show current configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}

		jsonLogs := cfg.Log.JSON
		if cmd.Flags().Changed("json-logs") {
			jsonLogs, _ = cmd.Flags().GetBool("json-logs")
		}
		verbosity := cfg.Log.Verbosity
		if cmd.Flags().Changed("verbose") {
			verbosity, _ = cmd.Flags().GetCount("verbose")
		}

		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Infow("logging initialized",
			logger.FieldCommand, cmd.Name(),
			logger.FieldLevel, logger.LevelName(verbosity))
		logger.Debugw("configuration loaded",
			logger.FieldCommand, cmd.Name(),
			"config", cfg.String())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON on stderr")

	rootCmd.AddCommand(commands.SchemaCmd)
	rootCmd.AddCommand(commands.ConvertCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		logger.Errorw("command failed", logger.FieldError, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		logger.Cleanup()
		os.Exit(1)
	}
}
