package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nlohrer/practice-tracker/internal/config"
	"github.com/nlohrer/practice-tracker/internal/db"
	"github.com/nlohrer/practice-tracker/internal/httpapi"
	"github.com/nlohrer/practice-tracker/internal/repository"
	"github.com/nlohrer/practice-tracker/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer database.Close()

	observer := service.NewLogUseCaseObserver(logger)
	sessions := service.NewSessionService(repository.NewSQLiteSessionRepo(database), observer)
	users := service.NewUserService(repository.NewSQLiteUserRepo(database), observer)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: httpapi.NewRouter(sessions, users, logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info().Str("addr", cfg.Server.Addr).Str("db", cfg.Database.Path).Msg("server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger(), nil
}
