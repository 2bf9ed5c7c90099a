// Package testutil provides fixtures and database helpers shared by the
// package tests.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pulse/internal/domain"
)

// Account options
type AccountOption func(*domain.Account)

func WithStage(s domain.Stage) AccountOption {
	return func(a *domain.Account) {
		a.Stage = s
	}
}

func WithKind(k domain.AccountKind) AccountOption {
	return func(a *domain.Account) {
		a.Kind = k
	}
}

func WithImportance(i domain.Importance) AccountOption {
	return func(a *domain.Account) {
		a.Importance = i
	}
}

func WithLastContact(t time.Time) AccountOption {
	return func(a *domain.Account) {
		a.LastContactAt = &t
	}
}

func WithContact(name string, emails ...string) AccountOption {
	return func(a *domain.Account) {
		a.Contacts = append(a.Contacts, domain.Contact{
			ID:     uuid.New().String(),
			Name:   name,
			Emails: emails,
		})
	}
}

func WithMainContact(name string, emails ...string) AccountOption {
	return func(a *domain.Account) {
		a.Contacts = append(a.Contacts, domain.Contact{
			ID:            uuid.New().String(),
			Name:          name,
			Emails:        emails,
			IsMainContact: true,
		})
	}
}

func WithChecklistItem(note string, completed bool) AccountOption {
	return func(a *domain.Account) {
		a.Checklist = append(a.Checklist, domain.ChecklistItem{
			ID:        uuid.New().String(),
			Note:      note,
			Completed: completed,
			CreatedAt: a.CreatedAt,
		})
	}
}

func NewTestAccount(name string, opts ...AccountOption) *domain.Account {
	now := time.Now().UTC()
	a := &domain.Account{
		ID:         uuid.New().String(),
		Name:       name,
		Kind:       domain.KindClient,
		Stage:      domain.StageEntry,
		Importance: domain.ImportanceMedium,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Activity fixtures

func NewTestActivity(actType domain.ActivityType, title string, occurredAt time.Time) *domain.Activity {
	return &domain.Activity{
		ID:         uuid.New().String(),
		Type:       actType,
		Title:      title,
		Author:     "test-user",
		OccurredAt: occurredAt,
	}
}

// Task options
type TaskOption func(*domain.Task)

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithAccountID(id string) TaskOption {
	return func(t *domain.Task) {
		t.AccountID = id
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Priority:  domain.PriorityMedium,
		Status:    domain.TaskPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// Mention fixtures

func NewTestMention(userID, author, content string) *domain.Mention {
	return &domain.Mention{
		ID:        uuid.New().String(),
		Author:    author,
		Content:   content,
		Source:    domain.MentionFromTask,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}

// Event fixtures

func NewTestEvent(title string, start, end time.Time) *domain.CalendarEvent {
	return &domain.CalendarEvent{
		ID:    uuid.New().String(),
		Title: title,
		Start: start,
		End:   end,
	}
}
