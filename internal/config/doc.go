// Package config loads and validates the animora configuration file.
//
// Configuration lives in TOML at ~/.config/animora/config.toml (or a
// path supplied on the command line) and covers the data directory
// holding the tracking database, catalog source selection, default
// session state for list views, and log output settings. Load applies
// defaults first, so a missing file yields a fully usable config.
package config
