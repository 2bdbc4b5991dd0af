// Package display renders command results in the formats the CLI offers.
package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/teranos/expertise/errors"
	"gopkg.in/yaml.v3"
)

// Supported formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Write renders v to w in format. JSON is indented for humans; the header,
// when given, is written as a comment line before YAML and TOML documents.
func Write(w io.Writer, format string, v any, header string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to marshal JSON")
		}
		return nil

	case FormatYAML:
		writeHeader(w, header)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to marshal YAML")
		}
		return enc.Close()

	case FormatTOML:
		writeHeader(w, header)
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return errors.Wrap(err, "failed to marshal TOML")
		}
		return nil

	default:
		return errors.Newf("unsupported format: %s", format)
	}
}

func writeHeader(w io.Writer, header string) {
	if header != "" {
		fmt.Fprintf(w, "# %s\n", header)
	}
}
