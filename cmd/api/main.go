package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "talent-bank/docs" // Swagger docs
	"talent-bank/internal/app"
	"talent-bank/internal/config"
	"talent-bank/pkg/logging"
)

// @title Talent Bank API
// @version 1.0
// @description Matches talent-bank candidates to open jobs and manages job suggestions sent to candidates.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Recruiter token, as "Bearer <token>".

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.New("info").Fatal("load config", "err", err)
	}

	log := logging.New(cfg.LogLevel)
	defer log.Sync()

	application, cleanup, err := app.InitializeApp(cfg, log)
	if err != nil {
		log.Fatal("initialize app", "err", err)
	}
	defer cleanup()

	log.Info("database connected")

	migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err = application.DB.RunMigrations(migrateCtx)
	cancel()
	if err != nil {
		log.Fatal("run migrations", "err", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      application.Handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // dispatch waits for both deliveries
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("server shutdown", "err", err)
		}
		close(idleConnsClosed)
	}()

	log.Info("API server listening", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("listen", "err", err)
	}

	<-idleConnsClosed
}
