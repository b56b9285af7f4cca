package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tls-123321/Event-Manager/internal/config"
	"github.com/tls-123321/Event-Manager/internal/console"
	"github.com/tls-123321/Event-Manager/internal/flow"
	"github.com/tls-123321/Event-Manager/internal/gateway"
	"github.com/tls-123321/Event-Manager/internal/service"
	"github.com/tls-123321/Event-Manager/internal/session"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg     *config.Config
	log     logger.Logger
	console *console.Console
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventClient",
		cfg.App.Env,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	store, err := session.NewFileStore(cfg.Session.Path)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}

	client := gateway.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store, log)

	authService := service.NewAuthService(client, store, log)
	eventService := service.NewEventService(client)
	profileService := service.NewProfileService(client, store, log)
	bookingFlow := flow.New(client, store, cfg.Booking.CodeDisplayWindow, log)

	app.console = console.New(
		authService,
		eventService,
		profileService,
		bookingFlow,
		os.Stdin,
		os.Stdout,
	)

	return app, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log.LogAttrs(ctx, logger.DebugLevel, "client starting",
		logger.String("api_base_url", a.cfg.API.BaseURL),
	)

	if err := a.console.Run(ctx); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.DebugLevel, "client stopped")
	return nil
}
