package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tenanttheme/internal/config"
	"tenanttheme/internal/database"
	"tenanttheme/internal/logger"
	"tenanttheme/internal/server"
)

const shutdownTimeout = 5 * time.Second

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "tenant-theme",
		Short:         "Serve tenant theme configuration over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Initialize the database and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd.ErrOrStderr())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "init-db",
		Short: "Create the database, tables and seed rows, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitDB(cmd.Context(), cmd.ErrOrStderr())
		},
	})

	return root
}

// loadEnvFile loads path into the environment when it exists. Variables that
// are already set win over the file.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func setup(out io.Writer) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, zerolog.Nop(), fmt.Errorf("invalid configuration: %w", err)
	}
	log, err := logger.New(cfg.Logging, out)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	return cfg, log, nil
}

func runInitDB(ctx context.Context, out io.Writer) error {
	cfg, log, err := setup(out)
	if err != nil {
		return err
	}

	db, err := database.Initialize(contextOrBackground(ctx), cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Msg("database initialization failed")
		return err
	}
	database.Close(db, log)
	log.Info().Msg("database initialized")
	return nil
}

func runServe(ctx context.Context, out io.Writer) error {
	cfg, log, err := setup(out)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(ctx), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Msg("unable to start server")
		return err
	}
	defer database.Close(db, log)

	srv := server.NewServer(cfg, db, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("prefix", cfg.Server.APIPrefix).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			log.Error().Err(err).Msg("http server error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
		return err
	}
	log.Info().Msg("server exiting")
	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
