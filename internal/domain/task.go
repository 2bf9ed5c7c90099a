package domain

import "time"

type Task struct {
	ID        string
	Title     string
	DueDate   *time.Time
	Priority  Priority
	Status    TaskStatus
	Assignees []string

	// AccountID is a weak reference: looking it up may fail after the
	// account is deleted, and nothing cascades.
	AccountID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overdue reports whether the task is past due and not completed.
func (t *Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskCompleted
}

// DueToday reports whether the task is due on the same calendar day as now.
func (t *Task) DueToday(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

type Mention struct {
	ID          string
	Author      string
	Content     string
	Source      MentionSource
	ParentTitle string
	UserID      string
	CreatedAt   time.Time
}

type CalendarEvent struct {
	ID             string
	Title          string
	Start          time.Time
	End            time.Time
	Attendees      []string
	ConferenceLink string
}

type Message struct {
	ID         string
	From       string
	Subject    string
	Snippet    string
	Unread     bool
	ReceivedAt time.Time
}

type Notification struct {
	ID        string
	UserID    string
	Title     string
	Read      bool
	CreatedAt time.Time
}
