package am

import (
	"github.com/teranos/expertise/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := c.LabelSet(); err != nil {
		return errors.Wrap(err, "labels.values")
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	if c.Convert.Relation == "" {
		return errors.New("convert.relation cannot be empty")
	}

	switch c.Convert.Format {
	case FormatJSON, FormatYAML:
	default:
		return errors.WithHint(
			errors.Newf("convert.format %q is not supported", c.Convert.Format),
			"use json or yaml")
	}

	return nil
}
