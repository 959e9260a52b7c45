package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"climate-api/config"
	v1 "climate-api/internal/controllers/http/v1"
	"climate-api/internal/repositories"
	"climate-api/internal/services/climate"
	"climate-api/pkg/database"
	"climate-api/pkg/httpserver"
	"climate-api/pkg/logger"
	"climate-api/pkg/observe"
)

// @title Climate API
// @version 1.0.0
// @description Read-only API over the Hawaii climate dataset: stations, daily precipitation and temperature observations.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Climate
// @tag.description Canned queries over stations and measurements
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.SentryDSN != "" {
		hook = observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.IsDevelopment(), cnf.SentryDSN)
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cnf.AppName, cnf.AppEnv, cnf.LogLevel, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	db, err := database.Open(ctx, database.Options{
		Path:            cnf.Database.Path,
		MaxOpenConns:    cnf.Database.MaxOpenConns,
		MaxIdleConns:    cnf.Database.MaxIdleConns,
		ConnMaxLifetime: cnf.Database.ConnMaxLifetime,
	})
	if err != nil {
		l.Fatal("cannot open dataset", map[string]any{"err": err, "path": cnf.Database.Path})
	}

	repo := repositories.InitClimateRepository(db, l)
	if err := repo.CheckSchema(ctx); err != nil {
		_ = database.Close(db)
		l.Fatal("dataset schema check failed", map[string]any{"err": err})
	}

	service, err := climate.NewClimateService(repo, cnf.Climate, l)
	if err != nil {
		_ = database.Close(db)
		l.Fatal("cannot build climate service", map[string]any{"err": err})
	}

	app := httpserver.InitFiberServer(cnf.AppName, l, func(c *fiber.Ctx) bool {
		return service.Ready(c.UserContext())
	})

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Error(err, map[string]any{"port": cnf.Port})
			cancel()
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":         cnf.Port,
		"dataset":      cnf.Database.Path,
		"window_start": service.WindowStart(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if err := database.Close(db); err != nil {
			l.Error(err)
		}
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		l.Info("received shutdown signal")
	case <-ctx.Done():
		l.Info("context cancelled")
	}
}
