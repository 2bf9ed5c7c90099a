package domain

import "time"

type Account struct {
	ID            string
	Name          string
	Kind          AccountKind
	Stage         Stage
	Importance    Importance
	LastContactAt *time.Time

	// Contacts keep their insertion order; the first contact is treated
	// as the main point of contact unless IsMainContact says otherwise.
	Contacts []Contact

	// Activities are ordered newest-first. The engine only prepends.
	Activities []Activity

	Checklist []ChecklistItem
	Documents []Document

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Contact struct {
	ID   string
	Name string
	// Emails keeps its order; the first entry is the primary address.
	Emails        []string
	Role          string
	Phone         string
	IsMainContact bool
}

// PrimaryEmail returns the contact's first email, or "" if none exist.
func (c Contact) PrimaryEmail() string {
	if len(c.Emails) == 0 {
		return ""
	}
	return c.Emails[0]
}

// MainContact returns the account's flagged main contact, falling back to
// the first contact in order. Returns nil when the account has no contacts.
func (a *Account) MainContact() *Contact {
	for i := range a.Contacts {
		if a.Contacts[i].IsMainContact {
			return &a.Contacts[i]
		}
	}
	if len(a.Contacts) > 0 {
		return &a.Contacts[0]
	}
	return nil
}

// DaysSinceContact returns whole days elapsed since the last contact.
// Negative values are possible when the recorded timestamp is ahead of now
// (clock skew between the store and the caller).
func (a *Account) DaysSinceContact(now time.Time) int {
	if a.LastContactAt == nil {
		return int(now.Sub(a.CreatedAt).Hours() / 24)
	}
	return int(now.Sub(*a.LastContactAt).Hours() / 24)
}

type Activity struct {
	ID          string
	Type        ActivityType
	Title       string
	Description string
	Author      string
	OccurredAt  time.Time
}

type ChecklistItem struct {
	ID        string
	Note      string
	Completed bool
	CreatedAt time.Time
}

type Document struct {
	ID      string
	Name    string
	Kind    string
	AddedAt time.Time
}
