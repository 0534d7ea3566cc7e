package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitcoach/internal/adapter/bedrock"
	adapthttp "fitcoach/internal/adapter/http"
	"fitcoach/internal/adapter/memory"
	"fitcoach/internal/adapter/mongo"
	"fitcoach/internal/adapter/postgres"
	"fitcoach/internal/app"
	"fitcoach/internal/config"
	"fitcoach/internal/domain"
	"fitcoach/internal/logging"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("store open: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("store close")
		}
	}()
	log.Info().Str("store", cfg.Store).Msg("store ready")

	gateway, err := bedrock.New(ctx, bedrock.Config{
		Region:          cfg.Region,
		ModelID:         cfg.ModelID,
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
		SessionToken:    cfg.SessionToken,
	}, log)
	if err != nil {
		return fmt.Errorf("bedrock: %w", err)
	}
	if cfg.ModelID == "" {
		log.Warn().Msg("BEDROCK_MODEL_ID is not set; generation requests will fail")
	}

	svc := adapthttp.Services{
		Plans:    app.NewPlanService(store, gateway),
		Coach:    app.NewCoachService(store, store, gateway),
		Progress: app.NewProgressService(store, store),
		Daily:    app.NewDailyPlanService(store, store, store, store, gateway),
		XP:       app.NewXPService(store),
	}
	h := adapthttp.New(svc, gateway, store, log).WithCORSOrigins(cfg.CORSOrigins).Handler()

	return serve(ctx, cfg.Addr(), h, log)
}

func openStore(cfg config.Config) (domain.Store, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.StoreMongo:
		db, err := mongo.Open(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return memory.New(), nil
	}
}

// newServer leaves WriteTimeout unset: model generations run to completion
// even after the client goes away, and can outlast any fixed write deadline.
func newServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
	}
}

func serve(ctx context.Context, addr string, h http.Handler, log zerolog.Logger) error {
	srv := newServer(addr, h)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
