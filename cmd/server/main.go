package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/passgate/passgate/internal/api"
	"github.com/passgate/passgate/internal/config"
	"github.com/passgate/passgate/internal/factory"
	"github.com/passgate/passgate/internal/services/strength"
	redisstorage "github.com/passgate/passgate/internal/storage/redis"
	"github.com/passgate/passgate/internal/web"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	// Load configuration
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load config",
				slog.String("path", *configPath),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg = loaded
	}

	// Build factory config
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.Storage.Type,
		Policy: strength.Policy{
			MinLength: cfg.Policy.MinLength,
			MaxLength: cfg.Policy.MaxLength,
		},
	}

	// Configure Redis if storage type is redis
	if cfg.Storage.Type == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		if cfg.Storage.RedisURL != "" {
			redisCfg.URL = cfg.Storage.RedisURL
		}
		if cfg.Storage.RedisPoolSize != 0 {
			redisCfg.PoolSize = cfg.Storage.RedisPoolSize
		}
		if cfg.Storage.RedisMinIdleConns != 0 {
			redisCfg.MinIdleConns = cfg.Storage.RedisMinIdleConns
		}
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load denylist overrides from files, if configured
	if cfg.Denylist.PasswordsFile != "" {
		if err := app.DenylistService.LoadPasswordsFromFile(ctx, cfg.Denylist.PasswordsFile); err != nil {
			logger.Warn("could not load common-password file",
				slog.String("path", cfg.Denylist.PasswordsFile),
				slog.String("error", err.Error()))
		}
		if cfg.Denylist.Watch {
			go func() {
				if err := app.DenylistService.WatchPasswords(ctx, cfg.Denylist.PasswordsFile); err != nil {
					logger.Error("denylist watch failed", slog.String("error", err.Error()))
				}
			}()
		}
	}
	if cfg.Denylist.WalksFile != "" {
		if err := app.DenylistService.LoadWalksFromFile(ctx, cfg.Denylist.WalksFile); err != nil {
			logger.Warn("could not load keyboard-walk file",
				slog.String("path", cfg.Denylist.WalksFile),
				slog.String("error", err.Error()))
		}
	}

	// Find static files directory
	staticDir := findStaticDir()

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		StrengthService: app.StrengthService,
		DenylistService: app.DenylistService,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:    logger,
		StaticDir: staticDir,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	serverConfig := api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout.Std(),
		WriteTimeout:    cfg.Server.WriteTimeout.Std(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout.Std(),
	}
	server := api.NewServer(mux, serverConfig, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	// Try common locations
	candidates := []string{
		"internal/web/static",
		"./internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	// Default to relative path
	return "internal/web/static"
}
