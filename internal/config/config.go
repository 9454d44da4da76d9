package config

import "os"

const (
	defaultDBPath = "./removals.db"
	defaultPort   = "8080"
	defaultAppEnv = "development"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath string
	Port   string
	AppEnv string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		DBPath: os.Getenv("DB_PATH"),
		Port:   os.Getenv("PORT"),
		AppEnv: os.Getenv("APP_ENV"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = defaultAppEnv
	}

	return cfg
}

// IsDev reports whether the app runs in a development environment. Dev mode
// applies migrations automatically on startup.
func (c Config) IsDev() bool {
	return c.AppEnv != "production"
}
