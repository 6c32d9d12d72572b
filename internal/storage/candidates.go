package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

const talentBankSelect = `
	SELECT c.id, e.id, c.name, c.email, c.phone, e.notes, e.added_at,
	       ARRAY(SELECT s.name FROM candidate_skills s WHERE s.candidate_id = c.id ORDER BY s.position)
	FROM talent_bank_entries e
	JOIN candidates c ON c.id = e.candidate_id`

const talentBankSearch = `
	(c.name ILIKE $1 OR c.email ILIKE $1
	 OR EXISTS (SELECT 1 FROM candidate_skills s WHERE s.candidate_id = c.id AND s.name ILIKE $1))`

const talentBankOrder = ` ORDER BY e.added_at DESC, c.id ASC`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (*Candidate, error) {
	c := &Candidate{}
	var skills []string
	if err := row.Scan(&c.ID, &c.EntryID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.AddedAt, pq.Array(&skills)); err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []string{}
	}
	c.Skills = skills
	return c, nil
}

// ListTalentBank returns one page of talent-bank members matching search
// (empty search matches all) together with the total match count.
func (db *DB) ListTalentBank(ctx context.Context, search string, limit, offset int) ([]*Candidate, int, error) {
	var (
		where string
		args  []any
	)
	if s := strings.TrimSpace(search); s != "" {
		where = " WHERE " + talentBankSearch
		args = append(args, likePattern(s))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM talent_bank_entries e JOIN candidates c ON c.id = e.candidate_id` + where
	if err := db.connection.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := talentBankSelect + where + talentBankOrder + fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limit, offset)

	res, err := db.queryCandidates(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

// ListAllTalentBank returns every talent-bank member in directory order.
func (db *DB) ListAllTalentBank(ctx context.Context) ([]*Candidate, error) {
	return db.queryCandidates(ctx, talentBankSelect+talentBankOrder)
}

func (db *DB) queryCandidates(ctx context.Context, query string, args ...any) ([]*Candidate, error) {
	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// GetTalentBankCandidate loads a talent-bank member by candidate id.
func (db *DB) GetTalentBankCandidate(ctx context.Context, candidateID int64) (*Candidate, error) {
	row := db.connection.QueryRowContext(ctx, talentBankSelect+` WHERE c.id = $1`, candidateID)
	c, err := scanCandidate(row)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

// CandidateExists checks the candidates table, regardless of membership.
func (db *DB) CandidateExists(ctx context.Context, candidateID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)`
	err := db.connection.QueryRowContext(ctx, query, candidateID).Scan(&exists)
	return exists, err
}

// TalentBankMember reports whether the candidate already has a membership row.
func (db *DB) TalentBankMember(ctx context.Context, candidateID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM talent_bank_entries WHERE candidate_id = $1)`
	err := db.connection.QueryRowContext(ctx, query, candidateID).Scan(&exists)
	return exists, err
}

// AddToTalentBank creates the membership row. The unique index on
// candidate_id turns a second insert into ErrDuplicate.
func (db *DB) AddToTalentBank(ctx context.Context, candidateID int64, notes string) (*Candidate, error) {
	exists, err := db.CandidateExists(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	query := `INSERT INTO talent_bank_entries (candidate_id, notes, added_at) VALUES ($1, $2, NOW())`
	if _, err := db.connection.ExecContext(ctx, query, candidateID, notes); err != nil {
		return nil, translate(err)
	}
	return db.GetTalentBankCandidate(ctx, candidateID)
}

func (db *DB) UpdateTalentBankNotes(ctx context.Context, candidateID int64, notes string) (*Candidate, error) {
	res, err := db.connection.ExecContext(ctx,
		`UPDATE talent_bank_entries SET notes = $2 WHERE candidate_id = $1`, candidateID, notes)
	if err := affectedOne(res, err); err != nil {
		return nil, err
	}
	return db.GetTalentBankCandidate(ctx, candidateID)
}

func (db *DB) UpdateTalentBankNotesByEntry(ctx context.Context, entryID int64, notes string) (*Candidate, error) {
	var candidateID int64
	err := db.connection.QueryRowContext(ctx,
		`UPDATE talent_bank_entries SET notes = $2 WHERE id = $1 RETURNING candidate_id`, entryID, notes).Scan(&candidateID)
	if err != nil {
		return nil, translate(err)
	}
	return db.GetTalentBankCandidate(ctx, candidateID)
}

// RemoveFromTalentBank deletes the membership row unless the candidate is
// referenced by a suggestion, in which case ErrConflict is returned.
func (db *DB) RemoveFromTalentBank(ctx context.Context, candidateID int64) error {
	return db.inTx(ctx, func(tx *sql.Tx) error {
		var referenced bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM suggestions WHERE candidate_id = $1)`, candidateID).Scan(&referenced); err != nil {
			return err
		}
		if referenced {
			return ErrConflict
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM talent_bank_entries WHERE candidate_id = $1`, candidateID)
		return affectedOne(res, err)
	})
}

func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// likePattern escapes LIKE metacharacters and wraps s in wildcards.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
