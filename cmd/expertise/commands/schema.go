package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/expertise/am"
	"github.com/teranos/expertise/display"
	"github.com/teranos/expertise/errors"
	"github.com/teranos/expertise/schema"
)

// SchemaCmd prints the attribute table
var SchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the attribute table",
	Long: `Show every attribute a record may carry, its kind, and whether the
classifier sees it. The class attribute lists the configured labels.

Examples:
  expertise schema
  expertise schema --format yaml`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

var schemaFormat string

func init() {
	SchemaCmd.Flags().StringVar(&schemaFormat, "format", "table", "Output format: table, json, yaml")
}

// schemaRow is the printable form of one attribute
type schemaRow struct {
	Name       string      `json:"name" yaml:"name"`
	Kind       schema.Kind `json:"kind" yaml:"kind"`
	Category   string      `json:"category" yaml:"category"`
	Classifier bool        `json:"classifier" yaml:"classifier"`
	Labels     []string    `json:"labels,omitempty" yaml:"labels,omitempty"`
}

func schemaRows(s *schema.Schema) []schemaRow {
	rows := make([]schemaRow, 0, s.Len())
	for _, e := range s.Entries() {
		row := schemaRow{
			Name:       e.Name,
			Kind:       e.Kind,
			Category:   e.Kind.Category(),
			Classifier: e.Kind.IsClassifierVisible(),
		}
		if e.Kind == schema.KindClassLabel {
			row.Labels = s.Labels().Names()
		}
		rows = append(rows, row)
	}
	return rows
}

func runSchema(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	s, err := cfg.Schema()
	if err != nil {
		return errors.WithHint(err, "check labels.values in am.toml")
	}

	rows := schemaRows(s)
	out := cmd.OutOrStdout()

	switch schemaFormat {
	case "table":
		data := pterm.TableData{{"ATTRIBUTE", "KIND", "CATEGORY", "CLASSIFIER", "LABELS"}}
		for _, r := range rows {
			visible := ""
			if r.Classifier {
				visible = "yes"
			}
			data = append(data, []string{r.Name, r.Kind.String(), r.Category, visible, strings.Join(r.Labels, ", ")})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(out).Render()

	case display.FormatJSON, display.FormatYAML:
		return display.Write(out, schemaFormat, rows, "")

	default:
		return errors.Newf("unsupported format: %s (supported: table, json, yaml)", schemaFormat)
	}
}
