package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/internal/di"
	"portfolio/internal/infrastructure/env"
	"portfolio/internal/infrastructure/mail"
)

func main() {
	envService := env.NewEnvService()

	cfg := di.Config{
		Addr:    envService.GetString("HTTP_ADDR", ":8080"),
		BaseURL: envService.GetString("SITE_BASE_URL", "http://localhost:3000"),
		Debug:   envService.GetBool("DEBUG", false),

		TaskTimeout:    envService.GetDuration("TASK_TIMEOUT", 30*time.Second),
		HealthInterval: envService.GetDuration("WORKER_HEALTH_INTERVAL", 30*time.Second),

		RendererHeadless: envService.GetBool("RENDERER_HEADLESS", true),
		RendererTimeout:  envService.GetDuration("RENDERER_TIMEOUT", 30*time.Second),

		SMTP: mail.Config{
			Host:     envService.GetString("SMTP_HOST", "localhost"),
			Port:     envService.GetInt("SMTP_PORT", 587),
			Username: envService.Get("SMTP_USERNAME"),
			Password: envService.Get("SMTP_PASSWORD"),
			From:     envService.GetString("MAIL_FROM", "noreply@localhost"),
			Owner:    envService.MustGet("MAIL_OWNER"),
		},
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("init failed: %v", err)
	}
	defer container.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- container.Server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		container.Logger.Info("Shutting down", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			container.Logger.Error("Server failed", "error", err)
			return
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := container.Server.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Shutdown incomplete", "error", err)
	}
}
