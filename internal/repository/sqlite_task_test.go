package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/gateway"
	"github.com/alexanderramin/pulse/internal/testutil"
)

func TestCreateAndListTasks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	due := time.Date(2025, 6, 20, 17, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask("Send contract",
		testutil.WithDueDate(due),
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithAccountID("acc-1"),
	)
	task.Assignees = []string{"sophie", "marc"}
	require.NoError(t, store.CreateTask(ctx, task))

	tasks, err := store.ListTasks(ctx, gateway.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Send contract", tasks[0].Title)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, "acc-1", tasks[0].AccountID)
	assert.Equal(t, []string{"sophie", "marc"}, tasks[0].Assignees)
	require.NotNil(t, tasks[0].DueDate)
	assert.True(t, tasks[0].DueDate.Equal(due))
}

func TestListTasks_Filters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	soon := time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)
	later := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	seed := []*domain.Task{
		testutil.NewTestTask("pending high on acc-1",
			testutil.WithPriority(domain.PriorityHigh),
			testutil.WithAccountID("acc-1"),
			testutil.WithDueDate(soon)),
		testutil.NewTestTask("completed on acc-1",
			testutil.WithStatus(domain.TaskCompleted),
			testutil.WithAccountID("acc-1")),
		testutil.NewTestTask("pending low on acc-2",
			testutil.WithPriority(domain.PriorityLow),
			testutil.WithAccountID("acc-2"),
			testutil.WithDueDate(later)),
	}
	for _, task := range seed {
		require.NoError(t, store.CreateTask(ctx, task))
	}

	byStatus, err := store.ListTasks(ctx, gateway.TaskFilter{Status: domain.TaskPending})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	byAccount, err := store.ListTasks(ctx, gateway.TaskFilter{AccountID: "acc-1"})
	require.NoError(t, err)
	assert.Len(t, byAccount, 2)

	byBoth, err := store.ListTasks(ctx, gateway.TaskFilter{
		Status: domain.TaskPending, AccountID: "acc-1",
	})
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	assert.Equal(t, "pending high on acc-1", byBoth[0].Title)

	cutoff := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	dueBefore, err := store.ListTasks(ctx, gateway.TaskFilter{DueBefore: &cutoff})
	require.NoError(t, err)
	require.Len(t, dueBefore, 1)
	assert.Equal(t, "pending high on acc-1", dueBefore[0].Title)
}

func TestListTasks_DueDateOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateTask(ctx, testutil.NewTestTask("no due date")))
	require.NoError(t, store.CreateTask(ctx, testutil.NewTestTask("due later",
		testutil.WithDueDate(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))))
	require.NoError(t, store.CreateTask(ctx, testutil.NewTestTask("due soon",
		testutil.WithDueDate(time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)))))

	tasks, err := store.ListTasks(ctx, gateway.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "due soon", tasks[0].Title)
	assert.Equal(t, "due later", tasks[1].Title)
	assert.Equal(t, "no due date", tasks[2].Title, "undated tasks sort last")
}

func TestUpdateTaskStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Send contract")
	require.NoError(t, store.CreateTask(ctx, task))

	require.NoError(t, store.UpdateTaskStatus(ctx, task.ID, domain.TaskCompleted))

	tasks, err := store.ListTasks(ctx, gateway.TaskFilter{Status: domain.TaskCompleted})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)

	err = store.UpdateTaskStatus(ctx, "missing", domain.TaskCompleted)
	assert.True(t, errors.Is(err, contract.ErrNotFound))
}

func TestMentionsAndNotifications(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddMention(ctx, testutil.NewTestMention("sophie", "marc", "can you review?")))
	require.NoError(t, store.AddMention(ctx, testutil.NewTestMention("other", "marc", "not for sophie")))

	mentions, err := store.ListMentions(ctx, "sophie")
	require.NoError(t, err)
	require.Len(t, mentions, 1)
	assert.Equal(t, "marc", mentions[0].Author)

	require.NoError(t, store.AddNotification(ctx, &domain.Notification{
		ID: "n1", UserID: "sophie", Title: "unread", CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, store.AddNotification(ctx, &domain.Notification{
		ID: "n2", UserID: "sophie", Title: "read", Read: true, CreatedAt: time.Now().UTC(),
	}))

	count, err := store.CountUnreadNotifications(ctx, "sophie")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
