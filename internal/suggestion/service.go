// Package suggestion owns the lifecycle of job suggestions made to
// talent-bank candidates.
package suggestion

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"talent-bank/internal/apperr"
	"talent-bank/internal/notify"
	"talent-bank/internal/storage"
	"talent-bank/pkg/logging"
)

type Store interface {
	GetTalentBankCandidate(ctx context.Context, candidateID int64) (*storage.Candidate, error)
	GetJob(ctx context.Context, jobID int64) (*storage.JobRequisition, error)

	InsertSuggestion(ctx context.Context, s *storage.Suggestion) error
	GetSuggestion(ctx context.Context, id uuid.UUID) (*storage.Suggestion, error)
	GetSuggestionByPair(ctx context.Context, candidateID, jobID int64) (*storage.Suggestion, error)
	ListSuggestionsByCandidate(ctx context.Context, candidateID int64) ([]*storage.Suggestion, error)
	ListUndelivered(ctx context.Context, limit int) ([]*storage.Suggestion, error)
	UpdateSuggestionState(ctx context.Context, id uuid.UUID, from, to storage.SuggestionState, at time.Time) error
	UpdateDeliveryFlags(ctx context.Context, id uuid.UUID, notificationSent, emailSent bool, at time.Time) error
	DeleteSuggestion(ctx context.Context, id uuid.UUID) error
}

type Dispatcher interface {
	Dispatch(ctx context.Context, s *storage.Suggestion, c *storage.Candidate, j *storage.JobRequisition, sendEmail bool) notify.Outcome
	Redeliver(ctx context.Context, s *storage.Suggestion, c *storage.Candidate, j *storage.JobRequisition) notify.Outcome
}

// Option configures Service
type Option func(*Service)

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

type Service struct {
	store      Store
	dispatcher Dispatcher
	log        *logging.Logger
	clock      func() time.Time
}

func NewService(store Store, dispatcher Dispatcher, log *logging.Logger, opts ...Option) *Service {
	s := &Service{
		store:      store,
		dispatcher: dispatcher,
		log:        log.With("component", "suggestion"),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInput is the recruiter action "suggest job to candidate".
type CreateInput struct {
	CandidateID int64
	JobID       int64
	Note        string
	SendEmail   bool
	// SuggestedBy identifies the recruiter taking the action.
	SuggestedBy string
}

// Create persists a pending suggestion and dispatches its notifications
// before returning. Any existing suggestion for the pair, whatever its
// state, makes this fail with DuplicateSuggestionError. Delivery failures
// only show up as false flags on the returned suggestion.
func (s *Service) Create(ctx context.Context, in CreateInput) (*storage.Suggestion, error) {
	if strings.TrimSpace(in.SuggestedBy) == "" {
		return nil, &apperr.ValidationError{Field: "suggestedBy", Reason: "recruiter identity is required"}
	}
	if in.CandidateID <= 0 {
		return nil, &apperr.ValidationError{Field: "candidateId", Reason: "must be positive"}
	}
	if in.JobID <= 0 {
		return nil, &apperr.ValidationError{Field: "jobId", Reason: "must be positive"}
	}

	candidate, err := s.store.GetTalentBankCandidate(ctx, in.CandidateID)
	if err != nil {
		return nil, apperr.FromStorage("load candidate", "candidate", in.CandidateID, err)
	}
	job, err := s.store.GetJob(ctx, in.JobID)
	if err != nil {
		return nil, apperr.FromStorage("load job", "job", in.JobID, err)
	}
	if job.Status != storage.JobStatusActive {
		return nil, &apperr.ConflictError{Reason: fmt.Sprintf("job %d is %s and cannot receive suggestions", job.ID, job.Status)}
	}

	existing, err := s.store.GetSuggestionByPair(ctx, in.CandidateID, in.JobID)
	switch {
	case err == nil:
		s.log.Info("suggestion already exists", "candidate_id", in.CandidateID, "job_id", in.JobID, "state", existing.State)
		return nil, &apperr.DuplicateSuggestionError{CandidateID: in.CandidateID, JobID: in.JobID}
	case !errors.Is(err, storage.ErrNotFound):
		return nil, apperr.Transport("lookup suggestion", err)
	}

	now := s.clock().UTC()
	sg := &storage.Suggestion{
		ID:             uuid.New(),
		CandidateID:    in.CandidateID,
		JobID:          in.JobID,
		State:          storage.StatePending,
		SuggestedBy:    in.SuggestedBy,
		Notes:          strings.TrimSpace(in.Note),
		EmailRequested: in.SendEmail,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.InsertSuggestion(ctx, sg); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, &apperr.DuplicateSuggestionError{CandidateID: in.CandidateID, JobID: in.JobID}
		}
		return nil, apperr.Transport("insert suggestion", err)
	}

	out := s.dispatcher.Dispatch(ctx, sg, candidate, job, in.SendEmail)
	s.recordOutcome(ctx, sg, out)

	s.log.Info("suggestion created",
		"suggestion_id", sg.ID.String(),
		"candidate_id", sg.CandidateID,
		"job_id", sg.JobID,
		"suggested_by", sg.SuggestedBy,
		"notification_sent", sg.NotificationSent,
		"email_sent", sg.EmailSent,
	)
	return sg, nil
}

// recordOutcome copies the delivery flags onto the suggestion and persists
// them. A failed write is logged; the suggestion itself stands.
func (s *Service) recordOutcome(ctx context.Context, sg *storage.Suggestion, out notify.Outcome) {
	sg.NotificationSent = out.NotificationSent
	sg.EmailSent = out.EmailSent
	now := s.clock().UTC()
	if err := s.store.UpdateDeliveryFlags(ctx, sg.ID, out.NotificationSent, out.EmailSent, now); err != nil {
		s.log.Error("persist delivery flags", "suggestion_id", sg.ID.String(), "err", err)
		return
	}
	sg.UpdatedAt = now
}

// ListForCandidate returns every suggestion made to the candidate, newest first.
func (s *Service) ListForCandidate(ctx context.Context, candidateID int64) ([]*storage.Suggestion, error) {
	list, err := s.store.ListSuggestionsByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperr.Transport("list suggestions", err)
	}
	if list == nil {
		list = []*storage.Suggestion{}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Status returns the suggestion for the pair, or nil when there is none.
func (s *Service) Status(ctx context.Context, candidateID, jobID int64) (*storage.Suggestion, error) {
	sg, err := s.store.GetSuggestionByPair(ctx, candidateID, jobID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Transport("lookup suggestion", err)
	}
	return sg, nil
}

const maxTransitionAttempts = 3

// ApplyTransition records a state change reported by the candidate side.
// Repeated and stale reports are accepted without changing anything.
func (s *Service) ApplyTransition(ctx context.Context, id uuid.UUID, to storage.SuggestionState) (*storage.Suggestion, error) {
	if _, ok := stage[to]; !ok {
		return nil, &apperr.ValidationError{Field: "state", Reason: fmt.Sprintf("unknown state %q", to)}
	}

	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		sg, err := s.store.GetSuggestion(ctx, id)
		if err != nil {
			return nil, apperr.FromStorage("load suggestion", "suggestion", id, err)
		}

		next, changed, err := Next(sg.State, to)
		if err != nil {
			return nil, err
		}
		if !changed {
			s.log.Debug("transition ignored", "suggestion_id", id.String(), "state", sg.State, "reported", to)
			return sg, nil
		}

		now := s.clock().UTC()
		err = s.store.UpdateSuggestionState(ctx, id, sg.State, next, now)
		if errors.Is(err, storage.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, apperr.FromStorage("update suggestion state", "suggestion", id, err)
		}

		s.log.Info("suggestion transitioned", "suggestion_id", id.String(), "from", sg.State, "to", next)
		sg.State = next
		sg.UpdatedAt = now
		return sg, nil
	}
	return nil, apperr.Transport("update suggestion state", storage.ErrConflict)
}

// Remove deletes a suggestion. This is the administrative path only.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteSuggestion(ctx, id); err != nil {
		return apperr.FromStorage("delete suggestion", "suggestion", id, err)
	}
	s.log.Info("suggestion removed", "suggestion_id", id.String())
	return nil
}

// Undelivered lists suggestions with at least one failed channel.
func (s *Service) Undelivered(ctx context.Context, limit int) ([]*storage.Suggestion, error) {
	list, err := s.store.ListUndelivered(ctx, limit)
	if err != nil {
		return nil, apperr.Transport("list undelivered", err)
	}
	return list, nil
}

// Redeliver re-attempts the failed channels of one suggestion on explicit
// operator request and stores the merged flags.
func (s *Service) Redeliver(ctx context.Context, sg *storage.Suggestion) (*storage.Suggestion, error) {
	candidate, err := s.store.GetTalentBankCandidate(ctx, sg.CandidateID)
	if err != nil {
		return nil, apperr.FromStorage("load candidate", "candidate", sg.CandidateID, err)
	}
	job, err := s.store.GetJob(ctx, sg.JobID)
	if err != nil {
		return nil, apperr.FromStorage("load job", "job", sg.JobID, err)
	}

	out := s.dispatcher.Redeliver(ctx, sg, candidate, job)
	s.recordOutcome(ctx, sg, out)
	return sg, nil
}
