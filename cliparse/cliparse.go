package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quizdesk/db"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType db.Dialect
	TokenSecret  string
	TokenTTL     time.Duration
	SessionTTL   time.Duration
	SeedDemo     bool
	Verbose      bool
}

const (
	defaultPort        = 3318
	defaultDatabaseURL = "quiz.db"
	defaultTokenTTL    = 24 * time.Hour
	defaultSessionTTL  = 2 * time.Hour
)

// LoadDotEnv reads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var (
		cfg        Config
		dbType     string
		tokenTTL   string
		sessionTTL string
	)

	fs := flag.NewFlagSet("quizdesk", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&dbType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TokenSecret, "token-secret", "", "Bearer token signing secret (prefer env)")
	fs.StringVar(&tokenTTL, "token-ttl", "", "Bearer token lifetime, e.g. 24h")
	fs.StringVar(&sessionTTL, "session-ttl", "", "Idle quiz session lifetime, e.g. 2h")

	fs.BoolVar(&cfg.SeedDemo, "seed-demo", false, "Create the demo quizzes at startup")
	fs.BoolVar(&cfg.Verbose, "v", false, "Debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}

	if dbType == "" {
		dbType = os.Getenv("DATABASE_TYPE")
		if dbType == "" {
			dbType = string(db.SQLite)
		}
	}
	dialect, err := db.ParseDialect(dbType)
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseType = dialect

	// Secrets - MUST be provided
	if cfg.TokenSecret == "" {
		cfg.TokenSecret = os.Getenv("TOKEN_SECRET")
	}
	if cfg.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET required")
	}

	if cfg.TokenTTL, err = durationSetting(tokenTTL, "TOKEN_TTL", defaultTokenTTL); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationSetting(sessionTTL, "SESSION_TTL", defaultSessionTTL); err != nil {
		return Config{}, err
	}

	if !cfg.SeedDemo {
		if v := os.Getenv("SEED_DEMO"); v != "" {
			seed, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid SEED_DEMO env variable")
			}
			cfg.SeedDemo = seed
		}
	}
	if !cfg.Verbose && os.Getenv("LOG_LEVEL") == "debug" {
		cfg.Verbose = true
	}

	return cfg, nil
}

func durationSetting(flagValue, env string, def time.Duration) (time.Duration, error) {
	raw := flagValue
	if raw == "" {
		raw = os.Getenv(env)
	}
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", env, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", env)
	}
	return d, nil
}
