package matching

import (
	"context"

	"talent-bank/internal/apperr"
	"talent-bank/internal/storage"
	"talent-bank/pkg/logging"
)

// Store is the read-only slice of storage the matcher needs.
type Store interface {
	GetJob(ctx context.Context, jobID int64) (*storage.JobRequisition, error)
	GetActiveJobs(ctx context.Context) ([]*storage.JobRequisition, error)
	GetTalentBankCandidate(ctx context.Context, candidateID int64) (*storage.Candidate, error)
	ListAllTalentBank(ctx context.Context) ([]*storage.Candidate, error)
	ListSuggestionsByJob(ctx context.Context, jobID int64) ([]*storage.Suggestion, error)
	ListSuggestionsByCandidate(ctx context.Context, candidateID int64) ([]*storage.Suggestion, error)
}

type Service struct {
	store Store
	log   *logging.Logger
}

func NewService(store Store, log *logging.Logger) *Service {
	return &Service{store: store, log: log.With("component", "matching")}
}

func (s *Service) ActiveJobs(ctx context.Context) ([]*storage.JobRequisition, error) {
	jobs, err := s.store.GetActiveJobs(ctx)
	if err != nil {
		return nil, apperr.Transport("get active jobs", err)
	}
	return jobs, nil
}

// ForJob scores every talent-bank candidate against the job and marks the
// ones that already received a suggestion for it.
func (s *Service) ForJob(ctx context.Context, jobID int64) ([]MatchResult, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, apperr.FromStorage("load job", "job", jobID, err)
	}
	candidates, err := s.store.ListAllTalentBank(ctx)
	if err != nil {
		return nil, apperr.Transport("list talent bank", err)
	}

	results := ComputeMatches(job, candidates)
	if len(results) == 0 {
		return results, nil
	}

	suggestions, err := s.store.ListSuggestionsByJob(ctx, jobID)
	if err != nil {
		return nil, apperr.Transport("list suggestions for job", err)
	}
	states := make(map[int64]storage.SuggestionState, len(suggestions))
	for _, sg := range suggestions {
		states[sg.CandidateID] = sg.State
	}
	for i := range results {
		if st, ok := states[results[i].CandidateID]; ok {
			results[i].AlreadySuggested = true
			results[i].SuggestionState = st
		}
	}

	s.log.Debug("computed matches", "job_id", jobID, "candidates", len(candidates), "matches", len(results))
	return results, nil
}

// ForCandidate scores one talent-bank candidate against every active job.
func (s *Service) ForCandidate(ctx context.Context, candidateID int64) ([]JobMatch, error) {
	candidate, err := s.store.GetTalentBankCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperr.FromStorage("load candidate", "candidate", candidateID, err)
	}
	jobs, err := s.store.GetActiveJobs(ctx)
	if err != nil {
		return nil, apperr.Transport("get active jobs", err)
	}

	results := ComputeJobMatches(candidate, jobs)
	if len(results) == 0 {
		return results, nil
	}

	suggestions, err := s.store.ListSuggestionsByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperr.Transport("list suggestions for candidate", err)
	}
	states := make(map[int64]storage.SuggestionState, len(suggestions))
	for _, sg := range suggestions {
		states[sg.JobID] = sg.State
	}
	for i := range results {
		if st, ok := states[results[i].JobID]; ok {
			results[i].AlreadySuggested = true
			results[i].SuggestionState = st
		}
	}
	return results, nil
}
