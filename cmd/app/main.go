package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blog-portal/config"
	"github.com/daniilsolovey/blog-portal/internal/app"
	"github.com/daniilsolovey/blog-portal/internal/db"
)

var (
	flConfig          = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug           = flag.Bool("debug", false, "enable debug mode")
	flDatabaseURL     = flag.String("database-url", "", "database connection URL (DATABASE_URL)")
	flMaxConns        = flag.Int("db-max-conns", 0, "maximum number of database connections (DB_MAX_CONNS)")
	flMaxConnLifetime = flag.String("db-max-conn-lifetime", "", "maximum lifetime of database connection (DB_MAX_CONN_LIFETIME)")
	flSecretKey       = flag.String("secret-key", "", "token signing key (SECRET_KEY)")
	flOwnerName       = flag.String("owner-name", "", "owner account name (OWNER_NAME)")
	flOwnerPassword   = flag.String("owner-password", "", "owner account password (OWNER_PASSWORD)")
	cfg               config.Config
	lg                *slog.Logger
)

func main() {
	// .env is optional; flags fall back to the environment it populates.
	_ = godotenv.Load()
	flag.Parse()

	lg = newLogger(*flDebug)

	if _, err := os.Stat(*flConfig); err == nil {
		_, err := toml.DecodeFile(*flConfig, &cfg)
		exitOnError(err)
	}

	exitOnError(cfg.Apply(config.Overrides{
		DatabaseURL:     *flDatabaseURL,
		MaxConns:        *flMaxConns,
		MaxConnLifetime: *flMaxConnLifetime,
		SecretKey:       *flSecretKey,
		OwnerName:       *flOwnerName,
		OwnerPassword:   *flOwnerPassword,
	}))
	exitOnError(cfg.Validate())

	ctx := context.Background()

	dbc := pg.Connect(&cfg.Database)
	dbc.AddQueryHook(db.NewQueryHook(lg, cfg.SlowQuery(), cfg.App.LogQueries))
	if cfg.App.LogQueries {
		lg.Info("SQL query logging enabled")
	}

	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	connConfig, err := db.ConnConfig(&cfg.Database)
	exitOnError(err)
	exitOnError(db.Migrate(ctx, connConfig))

	service := app.New(cfg, dbc, lg)
	exitOnError(service.Bootstrap(ctx))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}

	if err := service.DB.Close(); err != nil {
		lg.Error("database close failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
