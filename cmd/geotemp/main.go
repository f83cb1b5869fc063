package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/deppfellow/geotemp/internal/config"
	"github.com/deppfellow/geotemp/internal/database"
	"github.com/deppfellow/geotemp/internal/handler"
	"github.com/deppfellow/geotemp/internal/logger"
	"github.com/deppfellow/geotemp/internal/repository"
	"github.com/deppfellow/geotemp/internal/router"
	"github.com/deppfellow/geotemp/internal/server"
	"github.com/deppfellow/geotemp/internal/service"
	"github.com/rs/zerolog"
)

const DefaultContextTimeout = 30

type cli struct {
	Serve   serveCmd   `cmd:"" default:"1" help:"Apply migrations and run the HTTP API."`
	Migrate migrateCmd `cmd:"" help:"Apply migrations and exit."`
}

// app carries what every command needs.
type app struct {
	cfg           *config.Config
	log           zerolog.Logger
	loggerService *logger.LoggerService
}

type migrateCmd struct{}

func (cmd *migrateCmd) Run(a *app) error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	return database.Migrate(ctx, &a.log, a.cfg)
}

type serveCmd struct {
	SkipMigrations bool `help:"Start without applying migrations." env:"GEOTEMP_SKIP_MIGRATIONS"`
}

func (cmd *serveCmd) Run(a *app) error {
	if !cmd.SkipMigrations {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
		err := database.Migrate(ctx, &a.log, a.cfg)
		cancel()
		if err != nil {
			return err
		}
	}

	srv, err := server.New(a.cfg, &a.log, a.loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	a.log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	a.log.Info().Msg("server exited properly")
	return nil
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name(config.ServiceName),
		kong.Description("CRUD API over countries, cities and temperature readings."),
		kong.UsageOnError(),
	)

	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if err := kctx.Run(&app{cfg: cfg, log: log, loggerService: loggerService}); err != nil {
		log.Error().Err(err).Msg("command failed")
		loggerService.Shutdown()
		os.Exit(1)
	}
}
