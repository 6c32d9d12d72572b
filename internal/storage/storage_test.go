package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"talent-bank/pkg/logging"
)

// openTestDB connects to TEST_POSTGRES_DSN and pins a single connection to a
// throwaway schema. Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	conn.SetMaxOpenConns(1)

	ctx := context.Background()
	schema := fmt.Sprintf("tb_test_%d", time.Now().UnixNano())
	if _, err := conn.ExecContext(ctx, `CREATE SCHEMA `+schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	if _, err := conn.ExecContext(ctx, `SET search_path TO `+schema); err != nil {
		t.Fatalf("set search_path: %v", err)
	}
	t.Cleanup(func() {
		_, _ = conn.ExecContext(context.Background(), `DROP SCHEMA `+schema+` CASCADE`)
		_ = conn.Close()
	})

	db := Wrap(conn, logging.NewNop())
	if err := db.RunMigrations(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCandidate(t *testing.T, db *DB, name, email string, skills ...string) int64 {
	t.Helper()
	ctx := context.Background()
	var id int64
	if err := db.connection.QueryRowContext(ctx,
		`INSERT INTO candidates (name, email) VALUES ($1, $2) RETURNING id`, name, email).Scan(&id); err != nil {
		t.Fatalf("seed candidate: %v", err)
	}
	for i, s := range skills {
		if _, err := db.connection.ExecContext(ctx,
			`INSERT INTO candidate_skills (candidate_id, position, name) VALUES ($1, $2, $3)`, id, i, s); err != nil {
			t.Fatalf("seed skill: %v", err)
		}
	}
	return id
}

func seedJob(t *testing.T, db *DB, title string, status JobStatus, skills ...string) int64 {
	t.Helper()
	ctx := context.Background()
	var id int64
	if err := db.connection.QueryRowContext(ctx,
		`INSERT INTO jobs (title, status) VALUES ($1, $2) RETURNING id`, title, string(status)).Scan(&id); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	for i, s := range skills {
		if _, err := db.connection.ExecContext(ctx,
			`INSERT INTO job_skills (job_id, position, name) VALUES ($1, $2, $3)`, id, i, s); err != nil {
			t.Fatalf("seed job skill: %v", err)
		}
	}
	return id
}

func newSuggestion(candidateID, jobID int64) *Suggestion {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &Suggestion{
		ID:          uuid.New(),
		CandidateID: candidateID,
		JobID:       jobID,
		State:       StatePending,
		SuggestedBy: "rec-1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.RunMigrations(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}
}

func TestTalentBankMembership(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	ada := seedCandidate(t, db, "Ada Lovelace", "ada@example.com", "Go", "PostgreSQL")

	c, err := db.AddToTalentBank(ctx, ada, "first")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ID != ada || c.EntryID == 0 || len(c.Skills) != 2 || c.Skills[0] != "Go" {
		t.Fatalf("unexpected candidate: %+v", c)
	}

	if _, err := db.AddToTalentBank(ctx, ada, "again"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if _, err := db.AddToTalentBank(ctx, 999999, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	member, err := db.TalentBankMember(ctx, ada)
	if err != nil || !member {
		t.Fatalf("expected member, got %v, %v", member, err)
	}

	updated, err := db.UpdateTalentBankNotesByEntry(ctx, c.EntryID, "by entry")
	if err != nil || updated.Notes != "by entry" {
		t.Fatalf("update by entry: %+v, %v", updated, err)
	}
	if _, err := db.UpdateTalentBankNotes(ctx, 999999, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListTalentBankSearchAndPaging(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		id := seedCandidate(t, db, fmt.Sprintf("Person %d", i), fmt.Sprintf("p%d@example.com", i), "Go")
		if _, err := db.AddToTalentBank(ctx, id, ""); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	rust := seedCandidate(t, db, "Ferris", "ferris@crab.dev", "Rust")
	if _, err := db.AddToTalentBank(ctx, rust, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	page, total, err := db.ListTalentBank(ctx, "", 4, 4)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 6 || len(page) != 2 {
		t.Fatalf("total=%d len=%d", total, len(page))
	}

	page, total, err = db.ListTalentBank(ctx, "rUsT", 10, 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 1 || len(page) != 1 || page[0].ID != rust {
		t.Fatalf("skill search: total=%d page=%+v", total, page)
	}

	page, total, err = db.ListTalentBank(ctx, "100%", 10, 0)
	if err != nil || total != 0 || len(page) != 0 {
		t.Fatalf("wildcards must be literal: total=%d err=%v", total, err)
	}
}

func TestSuggestionUniquenessAndState(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	cand := seedCandidate(t, db, "Ada", "ada@example.com", "Go")
	job := seedJob(t, db, "Backend", JobStatusActive, "Go")
	if _, err := db.AddToTalentBank(ctx, cand, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	first := newSuggestion(cand, job)
	if err := db.InsertSuggestion(ctx, first); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := db.InsertSuggestion(ctx, newSuggestion(cand, job)); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	at := time.Now().UTC()
	if err := db.UpdateSuggestionState(ctx, first.ID, StatePending, StateViewed, at); err != nil {
		t.Fatalf("pending->viewed: %v", err)
	}
	if err := db.UpdateSuggestionState(ctx, first.ID, StatePending, StateApplied, at); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on stale from, got %v", err)
	}
	if err := db.UpdateSuggestionState(ctx, uuid.New(), StatePending, StateViewed, at); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, err := db.GetSuggestionByPair(ctx, cand, job)
	if err != nil || got.ID != first.ID || got.State != StateViewed {
		t.Fatalf("by pair: %+v, %v", got, err)
	}

	undelivered, err := db.ListUndelivered(ctx, 10)
	if err != nil || len(undelivered) != 1 {
		t.Fatalf("undelivered: %d, %v", len(undelivered), err)
	}
	if err := db.UpdateDeliveryFlags(ctx, first.ID, true, false, at); err != nil {
		t.Fatalf("flags: %v", err)
	}
	if undelivered, _ = db.ListUndelivered(ctx, 10); len(undelivered) != 0 {
		t.Fatalf("email not requested, nothing should be undelivered")
	}

	if err := db.RemoveFromTalentBank(ctx, cand); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for referenced candidate, got %v", err)
	}
	if err := db.DeleteSuggestion(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := db.RemoveFromTalentBank(ctx, cand); err != nil {
		t.Fatalf("remove: %v", err)
	}
}

func TestActiveJobs(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	active := seedJob(t, db, "Backend", JobStatusActive, "Go", "SQL")
	seedJob(t, db, "Closed", JobStatusClosed, "Go")

	jobs, err := db.GetActiveJobs(ctx)
	if err != nil {
		t.Fatalf("active jobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != active || len(jobs[0].RequiredSkills) != 2 {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}

	if _, err := db.GetJob(ctx, 999999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInsertNotification(t *testing.T) {
	db := openTestDB(t)
	cand := seedCandidate(t, db, "Ada", "ada@example.com")

	err := db.InsertNotification(context.Background(), &Notification{
		ID:          uuid.New(),
		CandidateID: cand,
		Type:        "job_suggestion",
		Title:       "New job suggestion",
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
}
