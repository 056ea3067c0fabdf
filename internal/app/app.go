package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/blog-portal/config"
	"github.com/daniilsolovey/blog-portal/internal/auth"
	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/rest"
	"github.com/daniilsolovey/blog-portal/internal/rpc"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

const rpcPath = "/rpc/"

type App struct {
	DB      *db.Repository
	Logger  *slog.Logger
	Echo    *echo.Echo
	Manager *blog.Manager
	Config  config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	manager := blog.NewManager(database, auth.NewBcryptHasher(0), logger)

	handler := rest.NewHandler(
		manager,
		auth.NewTokenManager(cfg.Auth.SecretKey),
		cfg.TokenTTL(),
		logger,
	)

	e := handler.RegisterRoutes()
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		DB:      database,
		Logger:  logger,
		Echo:    e,
		Manager: manager,
		Config:  cfg,
	}
}

// Bootstrap seeds the owner account from the configuration.
func (a *App) Bootstrap(ctx context.Context) error {
	return a.Manager.Bootstrap(ctx, blog.OwnerConfig{
		Name:     a.Config.Owner.Name,
		Password: a.Config.Owner.Password,
	})
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := net.JoinHostPort(a.Config.App.Host, strconv.Itoa(port))
	a.Logger.InfoContext(ctx, "starting server", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
