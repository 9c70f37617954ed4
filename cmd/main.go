package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "second_brain/docs"
	"second_brain/internal/cache"
	"second_brain/internal/config"
	"second_brain/internal/handlers"
	"second_brain/internal/logger"
	"second_brain/internal/repository"
	"second_brain/internal/repository/db"
	"second_brain/internal/server"
	"second_brain/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

// @title        Second Brain API
// @version      1.0
// @description  Save links, list them and share the whole collection read-only.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Get(logger.Options{Level: logger.InfoLevel}).Fatalw("error reading .env", "err", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.Options{Level: logger.InfoLevel}).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer func() { _ = log.Sync() }()

	if cfg.UsesDefaultSecret() {
		log.Warnw("auth.jwt_secret not set; using the development secret")
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// open DB
	conn, err := openDB(ctx, cfg.DB, log)
	if err != nil {
		log.Fatalw("failed to connect to database", "path", cfg.DB.Path, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()
	log.Infow("database connected", "path", cfg.DB.Path)

	// optional share cache
	opts := service.Options{
		JWTSecret:       cfg.Auth.JWTSecret,
		TokenTTL:        cfg.Auth.TokenTTL,
		ShareHashLength: cfg.Share.HashLength,
		Store:           conn,
		Log:             log,
	}
	if rdb := openRedis(ctx, cfg.Redis, log); rdb != nil {
		defer func() { _ = rdb.Close() }()
		opts.ShareCache = cache.NewShareCache(rdb, cfg.Redis.ShareTTL)
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, opts)
	apiHandler := handlers.NewHandler(services, log)
	router := apiHandler.InitRoutes(handlers.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, router, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// openDB connects to SQLite, retrying with exponential backoff.
func openDB(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*sql.DB, error) {
	policy := db.RetryPolicy{Attempts: cfg.ConnectAttempts, InitialDelay: cfg.ConnectBackoff}
	return db.ConnectWithRetry(ctx, func() (*sql.DB, error) {
		return db.InitDB(cfg.Path)
	}, policy, func(attempt int, wait time.Duration, err error) {
		log.Warnw("database connection failed, retrying",
			"attempt", attempt, "max_attempts", policy.Attempts, "retry_in", wait, "err", err)
	})
}

// openRedis returns nil when the cache is disabled or unreachable.
func openRedis(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) *redis.Client {
	if cfg.Addr == "" {
		log.Infow("share cache disabled")
		return nil
	}
	rdb, err := cache.NewRedisClient(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		log.Warnw("share cache unavailable, continuing without it", "addr", cfg.Addr, "err", err)
		return nil
	}
	log.Infow("share cache connected", "addr", cfg.Addr)
	return rdb
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *gin.Engine, log *logger.Logger) {
	go func() {
		log.Infow("server listening", "port", port)
		if err := srv.Run(port, handler); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background work
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
