package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API, swaggerURL string) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL),
	))

	// Health check (for k8s, load balancers, etc.)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	api := http.NewServeMux()

	// Matching
	api.HandleFunc("GET /api/jobs/active", a.ActiveJobsHandler)
	api.HandleFunc("GET /api/jobs/{jobID}/matches", a.JobMatchesHandler)
	api.HandleFunc("GET /api/talent-bank/candidates/{candidateID}/matches", a.CandidateMatchesHandler)

	// Suggestions
	api.HandleFunc("POST /api/suggestions", a.CreateSuggestionHandler)
	api.HandleFunc("GET /api/suggestions/status", a.SuggestionStatusHandler)
	api.HandleFunc("POST /api/suggestions/{suggestionID}/events", a.SuggestionEventHandler)
	api.HandleFunc("DELETE /api/suggestions/{suggestionID}", a.DeleteSuggestionHandler)
	api.HandleFunc("GET /api/talent-bank/candidates/{candidateID}/suggestions", a.CandidateSuggestionsHandler)

	// Talent bank
	api.HandleFunc("GET /api/talent-bank", a.ListTalentBankHandler)
	api.HandleFunc("POST /api/talent-bank", a.AddCandidateHandler)
	api.HandleFunc("GET /api/talent-bank/candidates/{candidateID}/exists", a.MembershipHandler)
	api.HandleFunc("PATCH /api/talent-bank/candidates/{candidateID}/notes", a.UpdateCandidateNotesHandler)
	api.HandleFunc("PATCH /api/talent-bank/entries/{entryID}/notes", a.UpdateEntryNotesHandler)
	api.HandleFunc("DELETE /api/talent-bank/candidates/{candidateID}", a.RemoveCandidateHandler)

	mux.Handle("/api/", a.requireRecruiter(api))

	return a.logRequests(mux)
}
