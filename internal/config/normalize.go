package config

import "strings"

func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = ExpandPath(valueOr(c.Paths.DataDir, defaultDataDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = ExpandPath(valueOr(c.Paths.LogDir, defaultLogDir)); err != nil {
		return err
	}

	c.Catalog.Source = strings.ToLower(valueOr(c.Catalog.Source, defaultCatalogSource))
	c.Catalog.BaseURL = strings.TrimRight(valueOr(c.Catalog.BaseURL, defaultJikanBaseURL), "/")
	if c.Catalog.PageSize <= 0 {
		c.Catalog.PageSize = defaultPageSize
	}
	if c.Catalog.RequestTimeout <= 0 {
		c.Catalog.RequestTimeout = defaultRequestTimeout
	}

	c.Session.SortBy = valueOr(c.Session.SortBy, defaultSortBy)
	c.Session.StatusFilter = valueOr(c.Session.StatusFilter, defaultStatusFilter)

	c.Logging.Format = strings.ToLower(valueOr(c.Logging.Format, defaultLogFormat))
	c.Logging.Level = strings.ToLower(valueOr(c.Logging.Level, defaultLogLevel))
	return nil
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}
