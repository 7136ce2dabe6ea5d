package config

// Catalog source selector values accepted by [Catalog].
const (
	CatalogSourceLocal = "local"
	CatalogSourceJikan = "jikan"
)

const (
	defaultDataDir        = "~/.local/share/animora"
	defaultLogDir         = "~/.local/share/animora/logs"
	defaultCatalogSource  = CatalogSourceLocal
	defaultJikanBaseURL   = "https://api.jikan.moe/v4"
	defaultPageSize       = 25
	defaultRequestTimeout = 30
	defaultSortBy         = "lastWatched"
	defaultStatusFilter   = "all"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Catalog: Catalog{
			Source:         defaultCatalogSource,
			BaseURL:        defaultJikanBaseURL,
			PageSize:       defaultPageSize,
			RequestTimeout: defaultRequestTimeout,
		},
		Session: Session{
			SortBy:       defaultSortBy,
			StatusFilter: defaultStatusFilter,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
