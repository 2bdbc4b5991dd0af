package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/expertise/am"
	"github.com/teranos/expertise/display"
	"github.com/teranos/expertise/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage expertise configuration",
	Long: `am - Manage expertise configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (EXPERTISE_* prefix)
3. Project config (nearest ./am.toml walking up)
4. User config (~/.expertise/am.toml)
5. Default values

Examples:
  expertise am show                 # Show current configuration
  expertise am show --format json   # Show configuration in JSON format
  expertise am validate             # Validate current configuration
  expertise am where                # List the config files consulted`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runAmShow,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runAmValidate,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE:  runAmWhere,
}

var configFormat string

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	return display.Write(cmd.OutOrStdout(), configFormat, cfg, "expertise configuration")
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration is invalid")
	}

	pterm.Success.WithWriter(cmd.OutOrStdout()).Println("Configuration is valid")
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	paths := am.ConfigPaths()
	if len(paths) == 0 {
		fmt.Fprintln(out, "No config files consulted; using defaults and environment")
		return nil
	}

	for _, path := range paths {
		status := "missing"
		if _, err := os.Stat(path); err == nil {
			status = "found"
		}
		fmt.Fprintf(out, "%-8s %s\n", status, path)
	}
	return nil
}
