package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/expertise/am"
	"github.com/teranos/expertise/display"
	"github.com/teranos/expertise/errors"
	"github.com/teranos/expertise/instance"
	"github.com/teranos/expertise/internal/util"
	"github.com/teranos/expertise/logger"
	"github.com/teranos/expertise/sample"
	"github.com/teranos/expertise/schema"
)

// ConvertCmd turns JSON feature records into classifier instances
var ConvertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert feature records into classifier instances",
	Long: `Read feature records and print one classifier instance per record.

Input is a JSON object, a JSON array of objects, or one JSON object per
line, read from the given file or from stdin. Every record is validated
against the attribute table; the first invalid record stops the command.
Attributes a record does not carry become missing slots.

Examples:
  expertise convert models.json
  expertise convert --format yaml < models.jsonl
  expertise convert --vector models.json     # feature values then class index, null for missing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

var (
	convertFormat   string
	convertVector   bool
	convertRelation string
)

func init() {
	ConvertCmd.Flags().StringVar(&convertFormat, "format", "", "Output format: json, yaml (default from convert.format)")
	ConvertCmd.Flags().BoolVar(&convertVector, "vector", false, "Print raw vectors instead of instances")
	ConvertCmd.Flags().StringVar(&convertRelation, "relation", "", "Dataset relation name (default from convert.relation)")
}

// slotView is the printable form of a feature slot
type slotView struct {
	Name    string   `json:"name" yaml:"name"`
	Value   *float64 `json:"value" yaml:"value"`
	Missing bool     `json:"missing,omitempty" yaml:"missing,omitempty"`
	Reason  string   `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// classView is the printable form of the class slot
type classView struct {
	Name    string `json:"name" yaml:"name"`
	Label   string `json:"label,omitempty" yaml:"label,omitempty"`
	Index   int    `json:"index" yaml:"index"`
	Missing bool   `json:"missing,omitempty" yaml:"missing,omitempty"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// instanceView is the printable form of an instance
type instanceView struct {
	ModelID  string     `json:"model_id,omitempty" yaml:"model_id,omitempty"`
	Relation string     `json:"relation" yaml:"relation"`
	Features []slotView `json:"features" yaml:"features"`
	Class    classView  `json:"class" yaml:"class"`
}

func newInstanceView(smp *sample.Sample, in *instance.Instance) instanceView {
	id, _ := smp.ModelID()
	view := instanceView{
		ModelID:  id,
		Relation: in.Relation,
		Features: make([]slotView, 0, len(in.Features)),
		Class: classView{
			Name:    in.Class.Name,
			Label:   in.Class.Label.String(),
			Index:   in.Class.Index,
			Missing: in.Class.Missing,
		},
	}
	if in.Class.Reason != nil {
		view.Class.Reason = in.Class.Reason.Error()
	}
	for _, slot := range in.Features {
		sv := slotView{Name: slot.Name, Missing: slot.Missing}
		if slot.Missing {
			sv.Reason = slot.Reason.Error()
		} else {
			sv.Value = util.Ptr(slot.Value)
		}
		view.Features = append(view.Features, sv)
	}
	return view
}

// vectorView maps NaN to null so vectors survive JSON
func vectorView(in *instance.Instance) []*float64 {
	vec := in.Vector()
	out := make([]*float64, len(vec))
	for i, v := range vec {
		out[i] = util.FloatOrNil(v)
	}
	return out
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	s, err := cfg.Schema()
	if err != nil {
		return errors.WithHint(err, "check labels.values in am.toml")
	}

	format := cfg.GetFormat()
	if convertFormat != "" {
		format = convertFormat
	}
	relation := cfg.GetRelation()
	if convertRelation != "" {
		relation = convertRelation
	}

	in := cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "failed to open %s", args[0])
		}
		defer f.Close()
		in = f
		source = args[0]
	}

	records, err := readRecords(in)
	if err != nil {
		return errors.Wrapf(err, "failed to read records from %s", source)
	}

	samples, err := buildSamples(s, records)
	if err != nil {
		return err
	}

	log := logger.ComponentLogger("convert")
	adapter := instance.NewAdapter(s, instance.WithRelation(relation), instance.WithLogger(log))
	instances := adapter.ConvertAll(samples)

	var unlabeled int
	var output any
	if convertVector {
		vectors := make([][]*float64, 0, len(instances))
		for _, inst := range instances {
			vectors = append(vectors, vectorView(inst))
		}
		output = vectors
	} else {
		views := make([]instanceView, 0, len(instances))
		for i, inst := range instances {
			views = append(views, newInstanceView(samples[i], inst))
		}
		output = views
	}
	for _, inst := range instances {
		if inst.Class.Missing {
			unlabeled++
		}
	}

	if err := writeOutput(cmd.OutOrStdout(), format, output); err != nil {
		return err
	}

	log.Infow("converted records",
		logger.FieldFile, source,
		logger.FieldCount, len(instances),
		logger.FieldRelation, relation,
		logger.FieldFormat, format)
	if unlabeled > 0 {
		pterm.Warning.WithWriter(cmd.ErrOrStderr()).
			Printfln("%d of %d records have no usable %s label", unlabeled, len(instances), s.ClassAttribute())
	}
	return nil
}

// readRecords accepts a JSON object, a JSON array of objects, or a stream
// of objects (one per line or concatenated)
func readRecords(r io.Reader) ([]map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("no records in input")
	}

	if data[0] == '[' {
		var records []map[string]any
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, errors.Wrap(err, "invalid JSON array")
		}
		return records, nil
	}

	var records []map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		var record map[string]any
		err := dec.Decode(&record)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "invalid JSON record %d", len(records))
		}
		records = append(records, record)
	}
	return records, nil
}

func buildSamples(s *schema.Schema, records []map[string]any) ([]*sample.Sample, error) {
	samples := make([]*sample.Sample, 0, len(records))
	for i, record := range records {
		smp, err := sample.New(s, record)
		if err != nil {
			fields := []interface{}{logger.FieldRecord, i, logger.FieldError, err}
			var wrongType *schema.WrongValueTypeError
			if errors.As(err, &wrongType) {
				fields = append(fields, logger.FieldAttribute, wrongType.Attribute, logger.FieldKind, wrongType.Expected.String())
			}
			logger.Warnw("record rejected", fields...)

			err = errors.Wrapf(err, "record %d", i)
			if errors.IsUnknownAttribute(err) {
				err = errors.WithHint(err, "run 'expertise schema' to list the known attributes")
			}
			return nil, err
		}
		samples = append(samples, smp)
	}
	return samples, nil
}

// writeOutput restricts instances to the formats that can carry null slots
func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case am.FormatJSON, am.FormatYAML:
		return display.Write(w, format, v, "")
	default:
		return errors.Newf("unsupported format: %s (supported: json, yaml)", format)
	}
}
