package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tenanttheme/internal/config"
)

const pingTimeout = 5 * time.Second

// Initialize prepares the theme store for serving: it creates the database if
// needed, opens the pool, migrates the three tables and seeds them. It is safe
// to run on every process start.
func Initialize(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	if err := EnsureDatabaseExists(ctx, cfg, log); err != nil {
		return nil, err
	}

	db, err := Connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, db, log); err != nil {
		Close(db, log)
		return nil, err
	}

	if err := Seed(ctx, db, log); err != nil {
		Close(db, log)
		return nil, err
	}

	return db, nil
}

// EnsureDatabaseExists creates the configured database over a server-level
// connection. SQLite databases are created when the file is opened.
func EnsureDatabaseExists(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) error {
	switch cfg.Dialect {
	case config.DialectMySQL:
		return ensureMySQLDatabase(ctx, cfg, log)
	case config.DialectPostgres:
		return ensurePostgresDatabase(ctx, cfg, log)
	case config.DialectSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported database dialect %q", cfg.Dialect)
	}
}

func ensureMySQLDatabase(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) error {
	log.Info().Str("database", cfg.Name).Msg("ensuring mysql database exists")

	server, err := sql.Open("mysql", mysqlConfig(cfg, "").FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to open mysql server connection: %w", err)
	}
	defer server.Close()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	createQuery := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", quoteMySQLIdentifier(cfg.Name))
	if _, err := server.ExecContext(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}

func ensurePostgresDatabase(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) error {
	log.Info().Str("database", cfg.Name).Msg("checking if postgres database exists")

	poolCfg, err := pgxpool.ParseConfig(postgresDSN(cfg, "postgres"))
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, cfg.Name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		log.Debug().Str("database", cfg.Name).Msg("database already exists")
		return nil
	}

	// CREATE DATABASE cannot run inside a transaction, so it goes straight to the pool.
	createQuery := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{cfg.Name}.Sanitize())
	if _, err := pool.Exec(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	log.Info().Str("database", cfg.Name).Msg("database created")
	return nil
}

// Connect opens the gorm handle for the configured dialect, applies the pool
// bounds and verifies the connection.
func Connect(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormLogger(log),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().
		Str("dialect", cfg.Dialect).
		Str("database", cfg.Name).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("database connection pool established")
	return db, nil
}

// Dialector maps the configuration onto the matching gorm driver.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Dialect {
	case config.DialectMySQL:
		return gormmysql.Open(mysqlConfig(cfg, cfg.Name).FormatDSN()), nil
	case config.DialectPostgres:
		return postgres.Open(postgresDSN(cfg, cfg.Name)), nil
	case config.DialectSQLite:
		return sqlite.Open(sqliteDSN(cfg.Name)), nil
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", cfg.Dialect)
	}
}

// Close releases the pool behind db.
func Close(db *gorm.DB, log zerolog.Logger) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn().Err(err).Msg("failed to get sql db for close")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close database pool")
		return
	}
	log.Info().Msg("database connection pool closed")
}

func mysqlConfig(cfg config.DatabaseConfig, dbName string) *mysql.Config {
	c := mysql.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	c.DBName = dbName
	c.ParseTime = true
	c.Loc = time.UTC
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c
}

func postgresDSN(cfg config.DatabaseConfig, dbName string) string {
	userInfo := url.UserPassword(cfg.User, cfg.Password)
	return fmt.Sprintf(
		"postgres://%s@%s/%s?sslmode=disable",
		userInfo.String(),
		net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		url.PathEscape(dbName),
	)
}

// sqliteDSN turns foreign key enforcement on; SQLite leaves it off per connection.
func sqliteDSN(name string) string {
	if strings.Contains(name, "_foreign_keys") {
		return name
	}
	if strings.Contains(name, "?") {
		return name + "&_foreign_keys=1"
	}
	return name + "?_foreign_keys=1"
}

func quoteMySQLIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
