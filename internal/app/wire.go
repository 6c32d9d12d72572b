//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"talent-bank/internal/api"
	"talent-bank/internal/auth"
	"talent-bank/internal/config"
	"talent-bank/internal/matching"
	"talent-bank/internal/notify"
	"talent-bank/internal/storage"
	"talent-bank/internal/suggestion"
	"talent-bank/internal/talentbank"
	"talent-bank/pkg/logging"
)

// InitializeApp wires storage, delivery channels, services and the HTTP router.
func InitializeApp(cfg *config.Config, log *logging.Logger) (*App, func(), error) {
	wire.Build(
		// Infrastructure
		provideDB,
		providePublisher,
		provideEmailSender,

		// Storage bindings
		wire.Bind(new(matching.Store), new(*storage.DB)),
		wire.Bind(new(suggestion.Store), new(*storage.DB)),
		wire.Bind(new(talentbank.Store), new(*storage.DB)),
		wire.Bind(new(notify.NotificationStore), new(*storage.DB)),

		// Delivery
		notify.NewInApp,
		wire.Bind(new(notify.InAppSender), new(*notify.InApp)),
		notify.NewDispatcher,
		wire.Bind(new(suggestion.Dispatcher), new(*notify.Dispatcher)),

		// Services
		provideMatchService,
		wire.Bind(new(api.MatchService), new(*matching.Service)),
		provideSuggestionService,
		wire.Bind(new(api.SuggestionService), new(*suggestion.Service)),
		talentbank.NewDirectory,
		wire.Bind(new(api.TalentBank), new(*talentbank.Directory)),
		provideVerifier,
		wire.Bind(new(api.TokenVerifier), new(*auth.Verifier)),

		// HTTP
		api.NewAPI,
		provideRouter,
		newApp,
	)
	return nil, nil, nil
}
