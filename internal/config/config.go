package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tenanttheme/internal/utils"
)

const ServiceName = "tenant-theme-poc-backend"

const (
	DialectMySQL    = "mysql"
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Config captures the runtime configuration for the service.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port           int
	APIPrefix      string
	AllowedOrigins []string
}

// DatabaseConfig contains the connection and pool settings for the theme store.
// For the sqlite dialect Name is the database file path (or a file: URI).
type DatabaseConfig struct {
	Dialect         string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads the environment and builds a Config. Defaults target a local
// MySQL on 127.0.0.1:3306 with HTTP on :4000.
func Load() (Config, error) {
	var cfg Config

	port, err := intFromEnv("PORT", 4000)
	if err != nil {
		return Config{}, err
	}
	cfg.Server = ServerConfig{
		Port:           port,
		APIPrefix:      normalizePrefix(lookupEnv("API_PREFIX", "/api")),
		AllowedOrigins: splitList(envOrDefault("CORS_ALLOWED_ORIGINS", "*")),
	}

	dialect := strings.ToLower(envOrDefault("DB_DIALECT", DialectMySQL))
	dbPort, err := intFromEnv("DB_PORT", defaultPort(dialect))
	if err != nil {
		return Config{}, err
	}
	maxOpen, err := intFromEnv("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, err
	}
	maxIdle, err := intFromEnv("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return Config{}, err
	}
	lifetime, err := durationFromEnv("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.Database = DatabaseConfig{
		Dialect:         dialect,
		Host:            envOrDefault("DB_HOST", "127.0.0.1"),
		Port:            dbPort,
		User:            envOrDefault("DB_USER", "root"),
		Password:        lookupEnv("DB_PASSWORD", "password"),
		Name:            envOrDefault("DB_NAME", "tenant_theme_poc"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: lifetime,
	}

	cfg.Logging = LoggingConfig{
		Level:  strings.ToLower(envOrDefault("LOG_LEVEL", "info")),
		Format: strings.ToLower(envOrDefault("LOG_FORMAT", "console")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.Database.Dialect {
	case DialectMySQL, DialectPostgres, DialectSQLite:
	default:
		return fmt.Errorf("unsupported DB_DIALECT %q (expected mysql, postgres or sqlite)", c.Database.Dialect)
	}
	if strings.TrimSpace(c.Database.Name) == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT %q (expected console or json)", c.Logging.Format)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// AllowsAllOrigins reports whether CORS is open to every origin.
func (s ServerConfig) AllowsAllOrigins() bool {
	return len(s.AllowedOrigins) == 0 || utils.Contains(s.AllowedOrigins, "*")
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// lookupEnv returns the raw value whenever key is set, including "".
func lookupEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func defaultPort(dialect string) int {
	if dialect == DialectPostgres {
		return 5432
	}
	return 3306
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalizePrefix turns "api", "/api/" and "/api" into "/api". "/" and "" mount at root.
func normalizePrefix(prefix string) string {
	p := strings.Trim(strings.TrimSpace(prefix), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
