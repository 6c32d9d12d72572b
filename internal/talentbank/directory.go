// Package talentbank manages the recruiter's curated pool of candidates.
package talentbank

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"talent-bank/internal/apperr"
	"talent-bank/internal/storage"
	"talent-bank/pkg/logging"
)

type Store interface {
	ListTalentBank(ctx context.Context, search string, limit, offset int) ([]*storage.Candidate, int, error)
	ListAllTalentBank(ctx context.Context) ([]*storage.Candidate, error)
	TalentBankMember(ctx context.Context, candidateID int64) (bool, error)
	AddToTalentBank(ctx context.Context, candidateID int64, notes string) (*storage.Candidate, error)
	UpdateTalentBankNotes(ctx context.Context, candidateID int64, notes string) (*storage.Candidate, error)
	UpdateTalentBankNotesByEntry(ctx context.Context, entryID int64, notes string) (*storage.Candidate, error)
	RemoveFromTalentBank(ctx context.Context, candidateID int64) error
}

type Directory struct {
	store Store
	log   *logging.Logger
}

func NewDirectory(store Store, log *logging.Logger) *Directory {
	return &Directory{store: store, log: log.With("component", "talentbank")}
}

// List returns one page of the directory using the given strategy.
func (d *Directory) List(ctx context.Context, q Query, strategy Strategy) (*Page, error) {
	q = q.normalize()

	switch strategy {
	case ServerPaged:
		entries, total, err := d.store.ListTalentBank(ctx, q.Search, q.PerPage, q.offset())
		if err != nil {
			return nil, apperr.Transport("list talent bank", err)
		}
		if entries == nil {
			entries = []*storage.Candidate{}
		}
		return &Page{
			Entries:  entries,
			Total:    total,
			Page:     q.Page,
			PerPage:  q.PerPage,
			LastPage: lastPage(total, q.PerPage),
		}, nil
	case InMemory:
		all, err := d.store.ListAllTalentBank(ctx)
		if err != nil {
			return nil, apperr.Transport("list talent bank", err)
		}
		page := PaginateInMemory(all, q)
		return &page, nil
	default:
		return nil, &apperr.ValidationError{Field: "mode", Reason: "unknown pagination strategy " + strategy.String()}
	}
}

// AddCandidate creates a membership for an existing candidate.
func (d *Directory) AddCandidate(ctx context.Context, candidateID int64, notes string) (*storage.Candidate, error) {
	if candidateID <= 0 {
		return nil, &apperr.ValidationError{Field: "candidateId", Reason: "must be positive"}
	}

	member, err := d.store.TalentBankMember(ctx, candidateID)
	if err != nil {
		return nil, apperr.Transport("check membership", err)
	}
	if member {
		return nil, alreadyMember(candidateID)
	}

	c, err := d.store.AddToTalentBank(ctx, candidateID, strings.TrimSpace(notes))
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return nil, alreadyMember(candidateID)
	case err != nil:
		return nil, apperr.FromStorage("add to talent bank", "candidate", candidateID, err)
	}

	d.log.Info("candidate added to talent bank", "candidate_id", candidateID, "entry_id", c.EntryID)
	return c, nil
}

func alreadyMember(candidateID int64) error {
	return &apperr.ConflictError{Reason: fmt.Sprintf("candidate %d is already in the talent bank", candidateID)}
}

func (d *Directory) UpdateNotes(ctx context.Context, candidateID int64, notes string) (*storage.Candidate, error) {
	c, err := d.store.UpdateTalentBankNotes(ctx, candidateID, strings.TrimSpace(notes))
	if err != nil {
		return nil, apperr.FromStorage("update notes", "candidate", candidateID, err)
	}
	return c, nil
}

func (d *Directory) UpdateNotesByEntry(ctx context.Context, entryID int64, notes string) (*storage.Candidate, error) {
	c, err := d.store.UpdateTalentBankNotesByEntry(ctx, entryID, strings.TrimSpace(notes))
	if err != nil {
		return nil, apperr.FromStorage("update notes", "talent bank entry", entryID, err)
	}
	return c, nil
}

// CheckCandidateExists reports talent-bank membership. Callers check this
// before AddCandidate; AddCandidate enforces it again.
func (d *Directory) CheckCandidateExists(ctx context.Context, candidateID int64) (bool, error) {
	ok, err := d.store.TalentBankMember(ctx, candidateID)
	if err != nil {
		return false, apperr.Transport("check membership", err)
	}
	return ok, nil
}

// RemoveCandidate drops a membership. Candidates with suggestions stay.
func (d *Directory) RemoveCandidate(ctx context.Context, candidateID int64) error {
	err := d.store.RemoveFromTalentBank(ctx, candidateID)
	switch {
	case errors.Is(err, storage.ErrConflict):
		return &apperr.ConflictError{Reason: fmt.Sprintf("candidate %d has suggestions and cannot be removed", candidateID)}
	case err != nil:
		return apperr.FromStorage("remove from talent bank", "candidate", candidateID, err)
	}
	d.log.Info("candidate removed from talent bank", "candidate_id", candidateID)
	return nil
}
