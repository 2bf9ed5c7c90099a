package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/gateway"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/testutil"
)

var importNow = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

func TestConvertAccount_Defaults(t *testing.T) {
	acc := convertAccount(&AccountImport{Ref: "a1", Name: "Acme Corp"}, importNow)

	assert.NotEmpty(t, acc.ID)
	assert.Equal(t, "Acme Corp", acc.Name)
	assert.Equal(t, domain.KindClient, acc.Kind)
	assert.Equal(t, domain.StageEntry, acc.Stage)
	assert.Equal(t, domain.ImportanceMedium, acc.Importance)
	assert.Nil(t, acc.LastContactAt)
	assert.Equal(t, importNow, acc.CreatedAt)
}

func TestConvertAccount_Full(t *testing.T) {
	in := &AccountImport{
		Ref:           "acme",
		Name:          "Acme Corp",
		Kind:          "partner",
		Stage:         "validation",
		Importance:    "high",
		LastContactAt: ptrStr("2025-06-10T14:00:00Z"),
		Contacts: []ContactImport{
			{Name: "Ada Moreau", Emails: []string{"ada@acme.test", "a.moreau@acme.test"}, Role: "CEO", Main: true},
		},
		Checklist: []ChecklistImport{
			{Note: "Collect signed NDA", Done: true},
		},
		Activities: []ActivityImport{
			{Type: "call", Title: "Intro call", Author: "sophie", OccurredAt: "2025-06-10T14:00:00Z"},
		},
	}

	acc := convertAccount(in, importNow)

	assert.Equal(t, domain.KindPartner, acc.Kind)
	assert.Equal(t, domain.StageValidation, acc.Stage)
	require.NotNil(t, acc.LastContactAt)
	assert.Equal(t, time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), *acc.LastContactAt)

	require.Len(t, acc.Contacts, 1)
	assert.True(t, acc.Contacts[0].IsMainContact)
	assert.Equal(t, "ada@acme.test", acc.Contacts[0].PrimaryEmail())

	require.Len(t, acc.Checklist, 1)
	assert.True(t, acc.Checklist[0].Completed)

	require.Len(t, acc.Activities, 1)
	assert.Equal(t, domain.ActivityCall, acc.Activities[0].Type)
	assert.Equal(t, "sophie", acc.Activities[0].Author)
}

func TestConvertTask_ResolvesRef(t *testing.T) {
	refs := map[string]string{"acme": "acct-uuid"}

	task := convertTask(&TaskImport{
		Title:      "Prepare proposal",
		AccountRef: "acme",
		DueDate:    ptrStr("2025-06-20"),
		Priority:   "high",
		Status:     "in_progress",
	}, refs, importNow)

	assert.Equal(t, "acct-uuid", task.AccountID)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, domain.TaskInProgress, task.Status)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), *task.DueDate)
}

func TestConvertTask_Defaults(t *testing.T) {
	task := convertTask(&TaskImport{Title: "Expense report"}, nil, importNow)

	assert.Empty(t, task.AccountID)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, domain.TaskPending, task.Status)
	assert.Nil(t, task.DueDate)
}

func TestImport_WritesEverything(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteStore(database)
	calendar := repository.NewSQLiteCalendar(database)

	schema := &ImportSchema{
		Accounts: []AccountImport{
			{Ref: "acme", Name: "Acme Corp", Stage: "exchange",
				Contacts: []ContactImport{{Name: "Ada Moreau", Emails: []string{"ada@acme.test"}}}},
			{Ref: "borealis", Name: "Borealis", Kind: "partner"},
		},
		Tasks: []TaskImport{
			{Title: "Prepare proposal", AccountRef: "acme", Priority: "high"},
			{Title: "Expense report"},
		},
		Mentions: []MentionImport{
			{UserID: "sophie", Author: "marc", Content: "review please"},
		},
		Events: []EventImport{
			{Title: "QBR", Start: "2025-06-18T10:00:00Z", End: "2025-06-18T11:00:00Z"},
		},
	}

	res, err := Import(ctx, store, calendar, store, schema, importNow)
	require.NoError(t, err)
	assert.Equal(t, &Result{Accounts: 2, Tasks: 2, Mentions: 1, Events: 1}, res)

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Acme Corp", accounts[0].Name)
	assert.Equal(t, domain.StageExchange, accounts[0].Stage)
	require.Len(t, accounts[0].Contacts, 1)

	tasks, err := store.ListTasks(ctx, gateway.TaskFilter{AccountID: accounts[0].ID})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Prepare proposal", tasks[0].Title)

	mentions, err := store.ListMentions(ctx, "sophie")
	require.NoError(t, err)
	assert.Len(t, mentions, 1)

	events, err := calendar.ListEvents(ctx,
		time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestImport_RejectsInvalidSchema(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteStore(database)
	calendar := repository.NewSQLiteCalendar(database)

	schema := &ImportSchema{
		Accounts: []AccountImport{{Ref: "", Name: "Nameless"}},
	}

	_, err := Import(ctx, store, calendar, store, schema, importNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 problem(s)")

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestLoadImportSchema_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	content := `{
		"accounts": [
			{"ref": "acme", "name": "Acme Corp", "stage": "exchange"}
		],
		"tasks": [
			{"title": "Prepare proposal", "account_ref": "acme", "due_date": "2025-06-20"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	require.Len(t, schema.Accounts, 1)
	assert.Equal(t, "acme", schema.Accounts[0].Ref)
	require.Len(t, schema.Tasks, 1)
	require.NotNil(t, schema.Tasks[0].DueDate)
	assert.Equal(t, "2025-06-20", *schema.Tasks[0].DueDate)
}

func TestLoadImportSchema_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadImportSchema(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}
