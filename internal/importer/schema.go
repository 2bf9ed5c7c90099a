// Package importer loads a CRM book from a JSON file: accounts with
// their nested records, plus tasks, mentions and calendar events.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a book import.
type ImportSchema struct {
	Accounts []AccountImport `json:"accounts"`
	Tasks    []TaskImport    `json:"tasks,omitempty"`
	Mentions []MentionImport `json:"mentions,omitempty"`
	Events   []EventImport   `json:"events,omitempty"`
}

// AccountImport defines one account in the import file. Ref is the
// file-local handle tasks use to point at their account.
type AccountImport struct {
	Ref           string            `json:"ref"`
	Name          string            `json:"name"`
	Kind          string            `json:"kind,omitempty"`
	Stage         string            `json:"stage,omitempty"`
	Importance    string            `json:"importance,omitempty"`
	LastContactAt *string           `json:"last_contact_at,omitempty"`
	Contacts      []ContactImport   `json:"contacts,omitempty"`
	Checklist     []ChecklistImport `json:"checklist,omitempty"`
	Activities    []ActivityImport  `json:"activities,omitempty"`
}

// ContactImport defines a contact under an account.
type ContactImport struct {
	Name   string   `json:"name"`
	Emails []string `json:"emails,omitempty"`
	Role   string   `json:"role,omitempty"`
	Phone  string   `json:"phone,omitempty"`
	Main   bool     `json:"main,omitempty"`
}

// ChecklistImport defines an onboarding checklist entry.
type ChecklistImport struct {
	Note string `json:"note"`
	Done bool   `json:"done,omitempty"`
}

// ActivityImport defines a historical activity under an account.
type ActivityImport struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Author     string `json:"author,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// TaskImport defines a task, optionally tied to an account by ref.
type TaskImport struct {
	Title      string  `json:"title"`
	AccountRef string  `json:"account_ref,omitempty"`
	DueDate    *string `json:"due_date,omitempty"`
	Priority   string  `json:"priority,omitempty"`
	Status     string  `json:"status,omitempty"`
}

// MentionImport defines a mention targeting a user.
type MentionImport struct {
	UserID    string `json:"user_id"`
	Author    string `json:"author"`
	Content   string `json:"content,omitempty"`
	Source    string `json:"source,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// EventImport defines a calendar event.
type EventImport struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// LoadImportSchema reads and parses a book import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
