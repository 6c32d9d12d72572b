package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"talent-bank/internal/apperr"
	"talent-bank/internal/auth"
	"talent-bank/internal/matching"
	"talent-bank/internal/storage"
	"talent-bank/internal/suggestion"
	"talent-bank/internal/talentbank"
	"talent-bank/pkg/logging"
)

type MatchService interface {
	ActiveJobs(ctx context.Context) ([]*storage.JobRequisition, error)
	ForJob(ctx context.Context, jobID int64) ([]matching.MatchResult, error)
	ForCandidate(ctx context.Context, candidateID int64) ([]matching.JobMatch, error)
}

type SuggestionService interface {
	Create(ctx context.Context, in suggestion.CreateInput) (*storage.Suggestion, error)
	ListForCandidate(ctx context.Context, candidateID int64) ([]*storage.Suggestion, error)
	Status(ctx context.Context, candidateID, jobID int64) (*storage.Suggestion, error)
	ApplyTransition(ctx context.Context, id uuid.UUID, to storage.SuggestionState) (*storage.Suggestion, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type TalentBank interface {
	List(ctx context.Context, q talentbank.Query, strategy talentbank.Strategy) (*talentbank.Page, error)
	AddCandidate(ctx context.Context, candidateID int64, notes string) (*storage.Candidate, error)
	UpdateNotes(ctx context.Context, candidateID int64, notes string) (*storage.Candidate, error)
	UpdateNotesByEntry(ctx context.Context, entryID int64, notes string) (*storage.Candidate, error)
	CheckCandidateExists(ctx context.Context, candidateID int64) (bool, error)
	RemoveCandidate(ctx context.Context, candidateID int64) error
}

type TokenVerifier interface {
	Verify(token string) (auth.Recruiter, error)
}

type API struct {
	matches     MatchService
	suggestions SuggestionService
	talentBank  TalentBank
	verifier    TokenVerifier
	log         *logging.Logger
}

func NewAPI(matches MatchService, suggestions SuggestionService, talentBank TalentBank, verifier TokenVerifier, log *logging.Logger) *API {
	return &API{
		matches:     matches,
		suggestions: suggestions,
		talentBank:  talentBank,
		verifier:    verifier,
		log:         log.With("component", "api"),
	}
}

// ErrorBody is the envelope of every non-2xx response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorBody{Error: ErrorDetail{Message: message, Code: code}})
}

// writeError maps err onto the HTTP error envelope. Infrastructure errors
// are logged here and reported without detail.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		a.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "status", status, "err", err)
		if code == codeTransport {
			msg = "upstream unavailable, please retry"
		} else {
			msg = "internal error"
		}
	}
	writeErrorBody(w, status, code, msg)
}

const (
	codeNotFound          = "not_found"
	codeDuplicate         = "duplicate_suggestion"
	codeInvalidTransition = "invalid_transition"
	codeConflict          = "conflict"
	codeInvalidRequest    = "invalid_request"
	codeTransport         = "transport_error"
	codeUnauthorized      = "unauthorized"
	codeInternal          = "internal_error"
)

func statusFor(err error) (int, string) {
	var (
		nf  *apperr.NotFoundError
		dup *apperr.DuplicateSuggestionError
		it  *apperr.InvalidTransitionError
		ce  *apperr.ConflictError
		ve  *apperr.ValidationError
		te  *apperr.TransportError
	)
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound, codeNotFound
	case errors.As(err, &dup):
		return http.StatusConflict, codeDuplicate
	case errors.As(err, &it):
		return http.StatusConflict, codeInvalidTransition
	case errors.As(err, &ce):
		return http.StatusConflict, codeConflict
	case errors.As(err, &ve):
		return http.StatusBadRequest, codeInvalidRequest
	case errors.As(err, &te):
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, codeTransport
		}
		return http.StatusServiceUnavailable, codeTransport
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

// decodeJSON reads a single JSON object into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &apperr.ValidationError{Field: "body", Reason: err.Error()}
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, &apperr.ValidationError{Field: name, Reason: "must be a positive integer"}
	}
	return id, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, &apperr.ValidationError{Field: name, Reason: "must be a UUID"}
	}
	return id, nil
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &apperr.ValidationError{Field: name, Reason: fmt.Sprintf("%q is not an integer", raw)}
	}
	return n, nil
}

func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &apperr.ValidationError{Field: name, Reason: "must be a positive integer"}
	}
	return id, nil
}
