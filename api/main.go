package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/boutique/internal/auth"
	"github.com/rogerio-castellano/boutique/internal/cache"
	"github.com/rogerio-castellano/boutique/internal/config"
	"github.com/rogerio-castellano/boutique/internal/db"
	"github.com/rogerio-castellano/boutique/internal/events"
	"github.com/rogerio-castellano/boutique/internal/gateway"
	"github.com/rogerio-castellano/boutique/internal/http/handlers"
	rl "github.com/rogerio-castellano/boutique/internal/http/rate_limiter"
	"github.com/rogerio-castellano/boutique/internal/http/router"
	"github.com/rogerio-castellano/boutique/internal/logging"
	"github.com/rogerio-castellano/boutique/internal/mockstore"
	"github.com/rogerio-castellano/boutique/internal/probe"
	"github.com/rogerio-castellano/boutique/internal/repo"
	"github.com/rs/zerolog"
)

// @title Boutique Data Gateway API
// @version 1.0
// @description REST API over the perfume boutique data: catalogue, clients, orders, finance and profile, served from the hosted backend or the local mock store.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("could not load configuration")
	}

	out, err := logging.New().FromBuffer(os.Stdout).FromPath(cfg.LogFile).Level(cfg.LogLevel).Make()
	if err != nil {
		fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Str("path", cfg.LogFile).Msg("could not open log file")
	}
	defer out.Close()
	logger := out.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionCache, closeCache := newCache(ctx, cfg, logger)
	defer closeCache()

	var (
		remote   gateway.Source
		check    probe.CheckFunc
		database *sql.DB
	)
	if cfg.RemoteEnabled() {
		database, err = db.Connect(cfg.BackendURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not open backend connection")
		}
		defer database.Close()

		store := repo.NewPostgresStore(database, cfg.StoragePublicURL)
		remote, check = store, store.Ping
	} else {
		logger.Info().Msg("no backend configured, serving mock data")
	}

	mockOpts := []mockstore.Option{mockstore.WithStorageURL(cfg.StoragePublicURL)}
	if !cfg.MockLatency {
		mockOpts = append(mockOpts, mockstore.WithoutLatency())
	}
	local := mockstore.New(mockOpts...)

	hub := events.NewHub()
	defer hub.Close()

	prober := probe.New(probe.Config{
		Enabled: cfg.RemoteEnabled(),
		Check:   check,
		Cache:   sessionCache,
		TTL:     cfg.ProbeCacheTTL,
		Timeout: cfg.ProbeTimeout,
		Logger:  logger,
	})
	prober.Subscribe(func(m probe.Mode) {
		logger.Info().Str("mode", string(m)).Msg("data source resolved")
		hub.Publish(events.Event{Type: events.ModeResolved, Mode: string(m), At: time.Now()})
	})

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	gw := gateway.New(gateway.Deps{
		Prober:  prober,
		Local:   local,
		Remote:  remote,
		Tokens:  tokens,
		Revoked: sessionCache,
		Logger:  logger,
		Events:  hub,
		Strict:  cfg.StrictRemote,
	})

	limiter := rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx, time.Minute)

	// Probe early so the first request does not pay for it.
	go gw.Mode(ctx)

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: router.New(router.Deps{
			Server:  handlers.NewServer(gw, logger),
			Tokens:  tokens,
			Revoked: gw,
			Limiter: limiter,
			Hub:     hub,
			Logger:  logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("mode_hint", modeHint(cfg)).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newCache returns the Redis cache when REDIS_ADDR is set and reachable, an in-process one otherwise.
func newCache(ctx context.Context, cfg config.Config, logger zerolog.Logger) (cache.Cache, func()) {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache(), func() {}
	}
	rc, err := cache.Dial(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("could not connect to Redis, using in-process cache")
		return cache.NewMemoryCache(), func() {}
	}
	return rc, func() {
		if err := rc.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close Redis client")
		}
	}
}

func modeHint(cfg config.Config) string {
	if cfg.RemoteEnabled() {
		return "probing backend"
	}
	return string(probe.Local)
}
