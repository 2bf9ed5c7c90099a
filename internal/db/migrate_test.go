package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"accounts", "contacts", "activities", "checklist_items", "documents",
		"tasks", "mentions", "notifications", "calendar_events", "messages", "drafts",
	}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_accounts_stage",
		"idx_contacts_account",
		"idx_activities_account",
		"idx_tasks_status",
		"idx_tasks_account",
		"idx_mentions_user",
		"idx_notifications_user",
		"idx_events_start",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_WALModeRequested(t *testing.T) {
	// In-memory SQLite uses "memory" journal mode; WAL only applies to file DBs.
	// This test verifies OpenDB issues the PRAGMA (a no-op for :memory:).
	db := openTestDB(t)

	var mode string
	err := db.QueryRow(`PRAGMA journal_mode`).Scan(&mode)
	require.NoError(t, err)
	assert.Equal(t, "memory", mode)
}

func TestMigrate_AccountStageCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO accounts (id, name, kind, stage, created_at, updated_at)
		VALUES ('a1', 'Acme', 'client', 'INVALID', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "invalid stage should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO accounts (id, name, kind, stage, created_at, updated_at)
		VALUES ('a1', 'Acme', 'client', 'exchange', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_TaskStatusCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO tasks (id, title, status, created_at, updated_at)
		VALUES ('t1', 'Task', 'INVALID', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "invalid status should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO tasks (id, title, status, created_at, updated_at)
		VALUES ('t1', 'Task', 'pending', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_ContactsCascadeOnAccountDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO accounts (id, name, created_at, updated_at)
		VALUES ('a1', 'Acme', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO contacts (id, account_id, name) VALUES ('c1', 'a1', 'Ada')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM accounts WHERE id = 'a1'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&count))
	assert.Zero(t, count, "contacts should cascade with their account")
}

func TestMigrate_TasksSurviveAccountDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO accounts (id, name, created_at, updated_at)
		VALUES ('a1', 'Acme', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO tasks (id, title, account_id, created_at, updated_at)
		VALUES ('t1', 'Task', 'a1', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM accounts WHERE id = 'a1'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&count))
	assert.Equal(t, 1, count, "tasks hold a weak account reference and must not cascade")
}

func TestMigrate_CalendarEventsConferenceLinkColumn(t *testing.T) {
	db := openTestDB(t)

	rows, err := db.Query(`PRAGMA table_info(calendar_events)`)
	require.NoError(t, err)
	defer rows.Close()

	found := false
	for rows.Next() {
		var cid int
		var name, typ string
		var notNull, pk int
		var dflt sql.NullString
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
		if name == "conference_link" {
			found = true
		}
	}
	assert.True(t, found, "calendar_events should have conference_link column")
}
