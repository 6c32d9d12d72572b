package api

import (
	"net/http"
	"time"

	"talent-bank/internal/auth"
)

// requireRecruiter rejects requests without a valid bearer token and stores
// the recruiter in the request context.
func (a *API) requireRecruiter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.BearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeErrorBody(w, http.StatusUnauthorized, codeUnauthorized, "missing or invalid token")
			return
		}
		recruiter, err := a.verifier.Verify(token)
		if err != nil {
			a.log.Debug("token rejected", "path", r.URL.Path, "err", err)
			writeErrorBody(w, http.StatusUnauthorized, codeUnauthorized, "missing or invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithRecruiter(r.Context(), recruiter)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		a.log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
