// Package app assembles the service from configuration.
package app

import (
	"net/http"

	"talent-bank/internal/api"
	"talent-bank/internal/auth"
	"talent-bank/internal/config"
	"talent-bank/internal/matching"
	"talent-bank/internal/notify"
	"talent-bank/internal/storage"
	"talent-bank/internal/suggestion"
	"talent-bank/pkg/logging"
)

// App holds the wired components needed by the binaries.
type App struct {
	Handler     http.Handler
	DB          *storage.DB
	Suggestions *suggestion.Service
}

func newApp(handler http.Handler, db *storage.DB, suggestions *suggestion.Service) *App {
	return &App{Handler: handler, DB: db, Suggestions: suggestions}
}

// provideDB opens the Postgres pool.
func provideDB(cfg *config.Config, log *logging.Logger) (*storage.DB, func(), error) {
	db, err := storage.NewDB(cfg.DatabaseURL, cfg.DBMaxOpenConns, log)
	if err != nil {
		return nil, nil, err
	}
	return db, db.Close, nil
}

// providePublisher returns nil when Redis is not configured.
func providePublisher(cfg *config.Config, log *logging.Logger) (notify.Publisher, func(), error) {
	if cfg.Redis.Addr == "" {
		log.Info("redis not configured, live notifications disabled")
		return nil, func() {}, nil
	}
	p, err := notify.NewRedisPublisher(cfg.Redis.Addr, cfg.Redis.Channel)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := p.Close(); err != nil {
			log.Warn("close redis publisher", "err", err)
		}
	}
	return p, cleanup, nil
}

// provideEmailSender returns nil when SendGrid is not configured; requested
// emails are then reported as not sent.
func provideEmailSender(cfg *config.Config, log *logging.Logger) (notify.EmailSender, error) {
	if cfg.SendGrid.APIKey == "" {
		log.Info("sendgrid not configured, email delivery disabled")
		return nil, nil
	}
	client, err := notify.NewSendGridClient(notify.SendGridConfig{
		APIKey:           cfg.SendGrid.APIKey,
		BaseURL:          cfg.SendGrid.BaseURL,
		DefaultFromEmail: cfg.SendGrid.FromEmail,
		DefaultFromName:  cfg.SendGrid.FromName,
		Timeout:          cfg.SendGrid.Timeout,
	}, log)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func provideSuggestionService(store suggestion.Store, dispatcher suggestion.Dispatcher, log *logging.Logger) *suggestion.Service {
	return suggestion.NewService(store, dispatcher, log)
}

func provideMatchService(store matching.Store, log *logging.Logger) *matching.Service {
	return matching.NewService(store, log)
}

func provideVerifier(cfg *config.Config) (*auth.Verifier, error) {
	return auth.NewVerifier(cfg.JWTSecret)
}

func provideRouter(a *api.API, cfg *config.Config) http.Handler {
	return api.NewRouter(a, cfg.SwaggerURL)
}
