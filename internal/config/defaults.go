package config

import "path/filepath"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = "folio.yml"

// DefaultAssets are the image globs copied by `folio build`.
var DefaultAssets = []string{
	"**/*.{jpg,jpeg,png,gif,webp,svg}",
	"**/*.ico",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentFile: "",
		AssetsDir:   "assets",
		Assets:      append([]string(nil), DefaultAssets...),
		OutputDir:   "dist",
		Server: ServerConfig{
			Port:      8080,
			DataDir:   ".folio",
			RateLimit: 2,
			RateBurst: 10,
			LiveSync:  true,
		},
		Theme: ThemeConfig{
			Store:            StoreCookie,
			CookieMaxAgeDays: 365,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: LogJSON,
		},
	}
}

// DatabasePath returns the SQLite file used by the sqlite theme store.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Server.DataDir, "folio.db")
}
