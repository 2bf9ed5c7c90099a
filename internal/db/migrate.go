package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		kind            TEXT NOT NULL DEFAULT 'client'
		                CHECK(kind IN ('client','partner')),
		stage           TEXT NOT NULL DEFAULT 'entry'
		                CHECK(stage IN ('entry','exchange','proposal','validation','client_success')),
		importance      TEXT NOT NULL DEFAULT 'medium'
		                CHECK(importance IN ('low','medium','high')),
		last_contact_at TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_accounts_stage ON accounts(stage)`,

	`CREATE TABLE IF NOT EXISTS contacts (
		id           TEXT PRIMARY KEY,
		account_id   TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		emails       TEXT NOT NULL DEFAULT '[]',
		role         TEXT NOT NULL DEFAULT '',
		phone        TEXT NOT NULL DEFAULT '',
		is_main      INTEGER NOT NULL DEFAULT 0,
		order_index  INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_contacts_account ON contacts(account_id)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id          TEXT PRIMARY KEY,
		account_id  TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		type        TEXT NOT NULL
		            CHECK(type IN ('call','email','meeting','note')),
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		author      TEXT NOT NULL DEFAULT '',
		occurred_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_account ON activities(account_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_occurred ON activities(occurred_at)`,

	`CREATE TABLE IF NOT EXISTS checklist_items (
		id         TEXT PRIMARY KEY,
		account_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		note       TEXT NOT NULL,
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_checklist_account ON checklist_items(account_id)`,

	`CREATE TABLE IF NOT EXISTS documents (
		id         TEXT PRIMARY KEY,
		account_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		kind       TEXT NOT NULL DEFAULT '',
		added_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_documents_account ON documents(account_id)`,

	// account_id is a weak reference on purpose: deleting an account must
	// not cascade into its tasks.
	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		due_date   TEXT,
		priority   TEXT NOT NULL DEFAULT 'medium'
		           CHECK(priority IN ('low','medium','high')),
		status     TEXT NOT NULL DEFAULT 'pending'
		           CHECK(status IN ('pending','in_progress','completed')),
		assignees  TEXT NOT NULL DEFAULT '[]',
		account_id TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_account ON tasks(account_id)`,

	`CREATE TABLE IF NOT EXISTS mentions (
		id           TEXT PRIMARY KEY,
		author       TEXT NOT NULL,
		content      TEXT NOT NULL DEFAULT '',
		source       TEXT NOT NULL DEFAULT '',
		parent_title TEXT NOT NULL DEFAULT '',
		user_id      TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_mentions_user ON mentions(user_id)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		title      TEXT NOT NULL,
		read       INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, read)`,

	`CREATE TABLE IF NOT EXISTS calendar_events (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		start_at   TEXT NOT NULL,
		end_at     TEXT NOT NULL,
		attendees  TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_start ON calendar_events(start_at)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id          TEXT PRIMARY KEY,
		from_addr   TEXT NOT NULL DEFAULT '',
		subject     TEXT NOT NULL DEFAULT '',
		snippet     TEXT NOT NULL DEFAULT '',
		unread      INTEGER NOT NULL DEFAULT 1,
		received_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS drafts (
		id         TEXT PRIMARY KEY,
		to_addr    TEXT NOT NULL,
		subject    TEXT NOT NULL DEFAULT '',
		body       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	// Conference links arrived after the first calendar schema shipped.
	`ALTER TABLE calendar_events ADD COLUMN conference_link TEXT NOT NULL DEFAULT ''`,
}
