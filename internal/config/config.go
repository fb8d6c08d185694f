package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the service settings read from the environment
type Config struct {
	Port           string   `env:"PORT"                 envDefault:"8080"`
	GinMode        string   `env:"GIN_MODE"             envDefault:"debug"`
	LogLevel       string   `env:"LOG_LEVEL"            envDefault:"info"`
	LawTablePath   string   `env:"LAW_TABLE_PATH"       envDefault:"configs/law_tables/kor_2025.yaml"`
	DatabaseURL    string   `env:"DATABASE_URL"` // empty disables the audit trail
	JWTSecret      string   `env:"JWT_SECRET"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
}

const devJWTSecret = "default_super_secret_key"

// Load reads envFiles (missing files are ignored) and then the process
// environment. Variables already set in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsRelease() {
			return Config{}, errors.New("JWT_SECRET is required in release mode")
		}
		cfg.JWTSecret = devJWTSecret // development fallback only
	}
	return cfg, nil
}

func (c Config) IsRelease() bool {
	return c.GinMode == "release"
}

func (c Config) AuditEnabled() bool {
	return c.DatabaseURL != ""
}
