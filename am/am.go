// Package am loads the configuration of the expertise tools ("I am").
//
// Sources, lowest precedence first: defaults, ~/.expertise/am.toml, the
// nearest am.toml found walking up from the working directory, then
// EXPERTISE_* environment variables.
package am

import (
	"github.com/teranos/expertise/expertise"
	"github.com/teranos/expertise/schema"
)

// Config represents the expertise configuration
type Config struct {
	Labels  LabelsConfig  `mapstructure:"labels" json:"labels" yaml:"labels" toml:"labels"`
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	Convert ConvertConfig `mapstructure:"convert" json:"convert" yaml:"convert" toml:"convert"`
}

// LabelsConfig declares the closed set of expertise labels
type LabelsConfig struct {
	Values []string `mapstructure:"values" json:"values" yaml:"values" toml:"values"` // order defines nominal index
}

// LogConfig configures logging
type LogConfig struct {
	JSON      bool `mapstructure:"json" json:"json" yaml:"json" toml:"json"`                // structured JSON logs instead of console
	Verbosity int  `mapstructure:"verbosity" json:"verbosity" yaml:"verbosity" toml:"verbosity"` // same scale as -v flags
}

// ConvertConfig configures sample to instance conversion
type ConvertConfig struct {
	Relation string `mapstructure:"relation" json:"relation" yaml:"relation" toml:"relation"` // dataset relation name
	Format   string `mapstructure:"format" json:"format" yaml:"format" toml:"format"`         // json or yaml
}

// Output formats understood by convert
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// File system constants
const (
	ConfigFileName = "am.toml"
	ConfigDirName  = ".expertise"
	EnvPrefix      = "EXPERTISE"
)

// LabelSet builds the configured label set
func (c *Config) LabelSet() (expertise.LabelSet, error) {
	return expertise.NewLabelSet(c.Labels.Values...)
}

// Schema builds the fixed attribute schema bound to the configured labels
func (c *Config) Schema() (*schema.Schema, error) {
	labels, err := c.LabelSet()
	if err != nil {
		return nil, err
	}
	return schema.Default(labels)
}
