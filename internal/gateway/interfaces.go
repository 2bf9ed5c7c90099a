// Package gateway declares the data access facade the engine consumes.
// The engine owns no persistence: every read is a fresh, possibly stale
// snapshot, and two reads within one operation may observe different
// instants. Implementations own their own consistency.
package gateway

import (
	"context"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// TaskFilter narrows ListTasks. Zero values mean "no filter".
type TaskFilter struct {
	Status    domain.TaskStatus
	Priority  domain.Priority
	AccountID string
	DueBefore *time.Time
}

// Store is the persisted-entity side of the facade.
type Store interface {
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	GetAccountByID(ctx context.Context, id string) (*domain.Account, error)
	CreateAccount(ctx context.Context, a *domain.Account) error
	UpdateAccount(ctx context.Context, a *domain.Account) error
	AddContact(ctx context.Context, accountID string, c *domain.Contact) error
	AddActivity(ctx context.Context, accountID string, act *domain.Activity) error
	AddDocument(ctx context.Context, accountID string, d *domain.Document) error
	AddChecklistItem(ctx context.Context, accountID string, item *domain.ChecklistItem) error
	SetChecklistItemDone(ctx context.Context, accountID, itemID string, done bool) error

	ListTasks(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	CreateTask(ctx context.Context, t *domain.Task) error
	UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) error

	ListMentions(ctx context.Context, userID string) ([]*domain.Mention, error)
	CountUnreadNotifications(ctx context.Context, userID string) (int, error)
}

// Calendar is the external calendar provider. ListEvents must return an
// empty slice, not an error, when the provider is unauthenticated, so
// composite operations degrade to partial results.
type Calendar interface {
	ListEvents(ctx context.Context, start, end time.Time) ([]domain.CalendarEvent, error)
	CreateEvent(ctx context.Context, ev *domain.CalendarEvent) error
}

// Messenger is the external messaging provider. ListMessages follows the
// same degradation rule as Calendar.ListEvents.
type Messenger interface {
	ListMessages(ctx context.Context, maxResults int, query string) ([]domain.Message, error)
	SendMessage(ctx context.Context, to, subject, body string) error
	CreateDraft(ctx context.Context, to, subject, body string) (string, error)
}
