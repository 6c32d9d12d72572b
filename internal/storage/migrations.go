package storage

import (
	"context"
)

// Migration is a named, idempotent schema step.
type Migration struct {
	Name string
	SQL  string
}

var migrations = []Migration{
	{
		Name: "create_candidates",
		SQL: `
			CREATE TABLE IF NOT EXISTS candidates (
				id         BIGSERIAL PRIMARY KEY,
				name       TEXT NOT NULL,
				email      TEXT NOT NULL UNIQUE,
				phone      TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE TABLE IF NOT EXISTS candidate_skills (
				candidate_id BIGINT NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
				position     INT NOT NULL,
				name         TEXT NOT NULL,
				PRIMARY KEY (candidate_id, position)
			);`,
	},
	{
		Name: "create_jobs",
		SQL: `
			CREATE TABLE IF NOT EXISTS jobs (
				id       BIGSERIAL PRIMARY KEY,
				title    TEXT NOT NULL,
				location TEXT NOT NULL DEFAULT '',
				status   TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('active', 'closed', 'draft'))
			);
			CREATE TABLE IF NOT EXISTS job_skills (
				job_id   BIGINT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
				position INT NOT NULL,
				name     TEXT NOT NULL,
				PRIMARY KEY (job_id, position)
			);`,
	},
	{
		Name: "create_talent_bank_entries",
		SQL: `
			CREATE TABLE IF NOT EXISTS talent_bank_entries (
				id           BIGSERIAL PRIMARY KEY,
				candidate_id BIGINT NOT NULL UNIQUE REFERENCES candidates(id) ON DELETE RESTRICT,
				notes        TEXT NOT NULL DEFAULT '',
				added_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);`,
	},
	{
		Name: "create_suggestions",
		SQL: `
			CREATE TABLE IF NOT EXISTS suggestions (
				id                UUID PRIMARY KEY,
				candidate_id      BIGINT NOT NULL REFERENCES candidates(id) ON DELETE RESTRICT,
				job_id            BIGINT NOT NULL REFERENCES jobs(id) ON DELETE RESTRICT,
				state             TEXT NOT NULL CHECK (state IN ('pending', 'viewed', 'applied', 'discarded')),
				suggested_by      TEXT NOT NULL,
				notes             TEXT NOT NULL DEFAULT '',
				email_requested   BOOLEAN NOT NULL DEFAULT FALSE,
				notification_sent BOOLEAN NOT NULL DEFAULT FALSE,
				email_sent        BOOLEAN NOT NULL DEFAULT FALSE,
				created_at        TIMESTAMPTZ NOT NULL,
				updated_at        TIMESTAMPTZ NOT NULL,
				CONSTRAINT suggestions_candidate_job_key UNIQUE (candidate_id, job_id)
			);
			CREATE INDEX IF NOT EXISTS suggestions_candidate_created_idx
				ON suggestions (candidate_id, created_at DESC);`,
	},
	{
		Name: "create_notifications",
		SQL: `
			CREATE TABLE IF NOT EXISTS notifications (
				id           UUID PRIMARY KEY,
				candidate_id BIGINT NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
				type         TEXT NOT NULL,
				title        TEXT NOT NULL,
				message      TEXT NOT NULL DEFAULT '',
				data         JSONB NOT NULL DEFAULT '{}'::jsonb,
				is_read      BOOLEAN NOT NULL DEFAULT FALSE,
				created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS notifications_candidate_unread_idx
				ON notifications (candidate_id) WHERE NOT is_read;`,
	},
}

// RunMigrations executes all schema migrations in order. Every step is
// idempotent, so this is safe to run on each startup.
func (db *DB) RunMigrations(ctx context.Context) error {
	db.log.Info("starting database migrations", "count", len(migrations))

	for _, m := range migrations {
		if _, err := db.connection.ExecContext(ctx, m.SQL); err != nil {
			db.log.Error("migration failed", "name", m.Name, "err", err)
			return err
		}
		db.log.Debug("migration completed", "name", m.Name)
	}

	db.log.Info("all migrations completed")
	return nil
}
