package config

import "fmt"

// Validate checks configuration values that cannot be repaired by
// normalization and reports the first offending field.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceLocal, CatalogSourceJikan:
	default:
		return fmt.Errorf("catalog.source: unsupported value %q (expected \"local\" or \"jikan\")", c.Catalog.Source)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected \"console\" or \"json\")", c.Logging.Format)
	}

	if c.Catalog.Source == CatalogSourceJikan && c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.base_url: required when catalog.source is \"jikan\"")
	}
	return nil
}
