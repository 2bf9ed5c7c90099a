package dispatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/gateway"
)

func writeBook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportBook(t *testing.T) {
	store := &memStore{}
	d := newTestDispatcher(t, store)

	path := writeBook(t, `{
		"accounts": [
			{"ref": "acme", "name": "Acme Corp", "stage": "exchange"}
		],
		"tasks": [
			{"title": "Prepare proposal", "account_ref": "acme", "priority": "high"}
		]
	}`)

	res := d.Execute(context.Background(), "sophie", "import_book", Params{"file": path})
	require.True(t, res.Success, res.Description)
	assert.Equal(t, 1, res.Payload["accountsImported"])
	assert.Equal(t, 1, res.Payload["tasksImported"])

	accounts, err := store.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, domain.StageExchange, accounts[0].Stage)

	tasks, err := store.ListTasks(context.Background(), gateway.TaskFilter{AccountID: accounts[0].ID})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
}

func TestImportBook_InvalidSchema(t *testing.T) {
	store := &memStore{}
	d := newTestDispatcher(t, store)

	path := writeBook(t, `{"accounts": [{"ref": "", "name": "Nameless"}]}`)

	res := d.Execute(context.Background(), "sophie", "import_book", Params{"file": path})
	require.False(t, res.Success)
	assert.Equal(t, contract.KindValidation, res.ErrorKind)
	assert.Zero(t, store.createAccountCalls)
}

func TestImportBook_MissingFile(t *testing.T) {
	d := newTestDispatcher(t, &memStore{})

	res := d.Execute(context.Background(), "sophie", "import_book",
		Params{"file": filepath.Join(t.TempDir(), "absent.json")})
	require.False(t, res.Success)
	assert.Equal(t, contract.KindValidation, res.ErrorKind)
}
