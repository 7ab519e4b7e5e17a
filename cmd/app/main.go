package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"orderdesk/cmd"
	"orderdesk/internal/pkg/logger"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLogger := logger.New(configs.LogMode, logger.Options{Dir: configs.LogDir})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, appLogger)
	if err != nil {
		log.Fatalf("build application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			appLogger.Error("close application", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if jobManager != nil {
		if err = jobManager.StartAll(); err != nil {
			log.Fatalf("start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(ctx, app, configs.HTTPPort)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	app.CreateServer().Register(e)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			e.Logger.Error(err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
