package config

// StoreType selects where visitor theme preferences are persisted.
type StoreType string

const (
	StoreCookie StoreType = "cookie"
	StoreSQLite StoreType = "sqlite"
)

// LogFormat selects the zap encoder.
type LogFormat string

const (
	LogJSON    LogFormat = "json"
	LogConsole LogFormat = "console"
)

// Config is the top-level folio configuration, corresponding to folio.yml.
type Config struct {
	ContentFile string        `yaml:"content_file" koanf:"content_file"`
	AssetsDir   string        `yaml:"assets_dir" koanf:"assets_dir"`
	Assets      []string      `yaml:"assets" koanf:"assets"`
	OutputDir   string        `yaml:"output_dir" koanf:"output_dir"`
	Server      ServerConfig  `yaml:"server" koanf:"server"`
	Theme       ThemeConfig   `yaml:"theme" koanf:"theme"`
	Logging     LoggingConfig `yaml:"logging" koanf:"logging"`
}

// ServerConfig holds settings for `folio serve`.
type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	DataDir        string   `yaml:"data_dir" koanf:"data_dir"`
	// RateLimit is theme writes per second per client; RateBurst its burst.
	RateLimit float64 `yaml:"rate_limit" koanf:"rate_limit"`
	RateBurst int     `yaml:"rate_burst" koanf:"rate_burst"`
	LiveSync  bool    `yaml:"live_sync" koanf:"live_sync"`
}

// ThemeConfig controls how theme preferences are stored and resolved.
type ThemeConfig struct {
	Store            StoreType `yaml:"store" koanf:"store"`
	CookieMaxAgeDays int       `yaml:"cookie_max_age_days" koanf:"cookie_max_age_days"`
	SecureCookies    bool      `yaml:"secure_cookies" koanf:"secure_cookies"`
	// PrefersDark is the environment answer used by the static build, where
	// no client hint exists at generation time.
	PrefersDark bool `yaml:"prefers_dark" koanf:"prefers_dark"`
}

// LoggingConfig holds zap logger settings.
type LoggingConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
