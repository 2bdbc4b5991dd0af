package am

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/expertise/expertise"
	"github.com/teranos/expertise/instance"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("labels.values", expertise.DefaultLabels().Names())

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)

	v.SetDefault("convert.relation", instance.DefaultRelation)
	v.SetDefault("convert.format", FormatJSON)
}

// BindEnvVars binds configuration keys to EXPERTISE_* environment variables
func BindEnvVars(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("labels.values", EnvPrefix+"_LABELS")
}

// GetRelation returns the relation name (default: DATA)
func (c *Config) GetRelation() string {
	if c.Convert.Relation == "" {
		return instance.DefaultRelation
	}
	return c.Convert.Relation
}

// GetFormat returns the convert output format (default: json)
func (c *Config) GetFormat() string {
	if c.Convert.Format == "" {
		return FormatJSON
	}
	return c.Convert.Format
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Labels: %v, Log: {JSON: %t, Verbosity: %d}, Convert: {Relation: %s, Format: %s}}",
		c.Labels.Values, c.Log.JSON, c.Log.Verbosity, c.GetRelation(), c.GetFormat())
}
