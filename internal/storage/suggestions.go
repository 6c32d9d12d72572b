package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const suggestionColumns = `id, candidate_id, job_id, state, suggested_by, notes,
	email_requested, notification_sent, email_sent, created_at, updated_at`

func scanSuggestion(row rowScanner) (*Suggestion, error) {
	s := &Suggestion{}
	var state string
	err := row.Scan(&s.ID, &s.CandidateID, &s.JobID, &state, &s.SuggestedBy, &s.Notes,
		&s.EmailRequested, &s.NotificationSent, &s.EmailSent, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.State = SuggestionState(state)
	return s, nil
}

// InsertSuggestion persists a new suggestion. A second row for the same
// (candidate, job) pair violates suggestions_candidate_job_key and yields
// ErrDuplicate, so the first committed insert always wins.
func (db *DB) InsertSuggestion(ctx context.Context, s *Suggestion) error {
	query := `INSERT INTO suggestions (` + suggestionColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := db.connection.ExecContext(ctx, query,
		s.ID, s.CandidateID, s.JobID, string(s.State), s.SuggestedBy, s.Notes,
		s.EmailRequested, s.NotificationSent, s.EmailSent, s.CreatedAt, s.UpdatedAt)
	return translate(err)
}

func (db *DB) GetSuggestion(ctx context.Context, id uuid.UUID) (*Suggestion, error) {
	row := db.connection.QueryRowContext(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions WHERE id = $1`, id)
	s, err := scanSuggestion(row)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

func (db *DB) GetSuggestionByPair(ctx context.Context, candidateID, jobID int64) (*Suggestion, error) {
	row := db.connection.QueryRowContext(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions WHERE candidate_id = $1 AND job_id = $2`, candidateID, jobID)
	s, err := scanSuggestion(row)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

// ListSuggestionsByCandidate returns every suggestion for the candidate,
// newest first.
func (db *DB) ListSuggestionsByCandidate(ctx context.Context, candidateID int64) ([]*Suggestion, error) {
	return db.querySuggestions(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions WHERE candidate_id = $1 ORDER BY created_at DESC, id`, candidateID)
}

// ListSuggestionsByJob returns every suggestion made for the job.
func (db *DB) ListSuggestionsByJob(ctx context.Context, jobID int64) ([]*Suggestion, error) {
	return db.querySuggestions(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions WHERE job_id = $1 ORDER BY created_at DESC, id`, jobID)
}

// ListUndelivered returns suggestions whose in-app notification failed or
// whose requested email was not sent, oldest first.
func (db *DB) ListUndelivered(ctx context.Context, limit int) ([]*Suggestion, error) {
	return db.querySuggestions(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions
		 WHERE NOT notification_sent OR (email_requested AND NOT email_sent)
		 ORDER BY created_at ASC LIMIT $1`, limit)
}

func (db *DB) querySuggestions(ctx context.Context, query string, args ...any) ([]*Suggestion, error) {
	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*Suggestion, 0)
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// UpdateSuggestionState moves the suggestion from one state to another.
// The update only applies while the row is still in from; otherwise
// ErrConflict is returned so the caller can re-read and decide again.
func (db *DB) UpdateSuggestionState(ctx context.Context, id uuid.UUID, from, to SuggestionState, at time.Time) error {
	res, err := db.connection.ExecContext(ctx,
		`UPDATE suggestions SET state = $3, updated_at = $4 WHERE id = $1 AND state = $2`,
		id, string(from), string(to), at)
	if err := affectedOne(res, err); err != nil {
		if errors.Is(err, ErrNotFound) {
			exists, lookupErr := db.suggestionExists(ctx, id)
			if lookupErr != nil {
				return lookupErr
			}
			if exists {
				return ErrConflict
			}
		}
		return err
	}
	return nil
}

func (db *DB) suggestionExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := db.connection.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM suggestions WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// UpdateDeliveryFlags stores the dispatch outcome in place.
func (db *DB) UpdateDeliveryFlags(ctx context.Context, id uuid.UUID, notificationSent, emailSent bool, at time.Time) error {
	res, err := db.connection.ExecContext(ctx,
		`UPDATE suggestions SET notification_sent = $2, email_sent = $3, updated_at = $4 WHERE id = $1`,
		id, notificationSent, emailSent, at)
	return affectedOne(res, err)
}

// DeleteSuggestion is the administrative removal path.
func (db *DB) DeleteSuggestion(ctx context.Context, id uuid.UUID) error {
	res, err := db.connection.ExecContext(ctx, `DELETE FROM suggestions WHERE id = $1`, id)
	return affectedOne(res, err)
}
