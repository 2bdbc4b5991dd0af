package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/expertise/am"
	"github.com/teranos/expertise/display"
	"github.com/teranos/expertise/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show build information and the fingerprint of the attribute table.

Instances are only comparable between binaries that print the same schema
fingerprint.`,
	RunE: runVersion,
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()

	// a broken label config still lets version print
	if cfg, err := am.Load(); err == nil {
		if s, err := cfg.Schema(); err == nil {
			info = info.WithSchema(s.Fingerprint())
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return display.Write(out, display.FormatJSON, info, "")
	}

	fmt.Fprintln(out, info.String())
	fmt.Fprintf(out, "Platform: %s\n", info.Platform)
	fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
	return nil
}
