package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/gateway"
)

// MentionWriter is the slice of the store the importer needs for
// mentions. The engine only reads mentions, so the write path lives
// outside the main facade.
type MentionWriter interface {
	AddMention(ctx context.Context, m *domain.Mention) error
}

// Result counts what an import wrote.
type Result struct {
	Accounts int
	Tasks    int
	Mentions int
	Events   int
}

// Import validates the schema, converts it to domain entities and writes
// everything through the facade. Accounts go first so tasks can resolve
// their refs; a validation failure aborts before anything is written.
func Import(ctx context.Context, store gateway.Store, calendar gateway.Calendar, mentions MentionWriter, schema *ImportSchema, now time.Time) (*Result, error) {
	if errs := ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("import file has %d problem(s), first: %v", len(errs), errs[0])
	}

	res := &Result{}
	refToID := make(map[string]string, len(schema.Accounts))

	for i := range schema.Accounts {
		acc := convertAccount(&schema.Accounts[i], now)
		if err := store.CreateAccount(ctx, acc); err != nil {
			return res, fmt.Errorf("importing account %q: %w", schema.Accounts[i].Name, err)
		}
		refToID[schema.Accounts[i].Ref] = acc.ID
		res.Accounts++
	}

	for i := range schema.Tasks {
		task := convertTask(&schema.Tasks[i], refToID, now)
		if err := store.CreateTask(ctx, task); err != nil {
			return res, fmt.Errorf("importing task %q: %w", schema.Tasks[i].Title, err)
		}
		res.Tasks++
	}

	if mentions != nil {
		for i := range schema.Mentions {
			m := convertMention(&schema.Mentions[i], now)
			if err := mentions.AddMention(ctx, m); err != nil {
				return res, fmt.Errorf("importing mention for %q: %w", schema.Mentions[i].UserID, err)
			}
			res.Mentions++
		}
	}

	for i := range schema.Events {
		ev := convertEvent(&schema.Events[i])
		if err := calendar.CreateEvent(ctx, ev); err != nil {
			return res, fmt.Errorf("importing event %q: %w", schema.Events[i].Title, err)
		}
		res.Events++
	}

	return res, nil
}

func convertAccount(in *AccountImport, now time.Time) *domain.Account {
	acc := &domain.Account{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Kind:       domain.AccountKind(valueOr(in.Kind, string(domain.KindClient))),
		Stage:      domain.Stage(valueOr(in.Stage, string(domain.StageEntry))),
		Importance: domain.Importance(valueOr(in.Importance, string(domain.ImportanceMedium))),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.LastContactAt != nil && *in.LastContactAt != "" {
		t, _ := parseTimestamp(*in.LastContactAt)
		acc.LastContactAt = &t
	}

	for _, c := range in.Contacts {
		acc.Contacts = append(acc.Contacts, domain.Contact{
			ID:            uuid.NewString(),
			Name:          c.Name,
			Emails:        c.Emails,
			Role:          c.Role,
			Phone:         c.Phone,
			IsMainContact: c.Main,
		})
	}
	for _, item := range in.Checklist {
		acc.Checklist = append(acc.Checklist, domain.ChecklistItem{
			ID:        uuid.NewString(),
			Note:      item.Note,
			Completed: item.Done,
			CreatedAt: now,
		})
	}
	for _, a := range in.Activities {
		occurred, _ := parseTimestamp(a.OccurredAt)
		acc.Activities = append(acc.Activities, domain.Activity{
			ID:         uuid.NewString(),
			Type:       domain.ActivityType(a.Type),
			Title:      a.Title,
			Author:     a.Author,
			OccurredAt: occurred,
		})
	}
	return acc
}

func convertTask(in *TaskImport, refToID map[string]string, now time.Time) *domain.Task {
	task := &domain.Task{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Priority:  domain.Priority(valueOr(in.Priority, string(domain.PriorityMedium))),
		Status:    domain.TaskStatus(valueOr(in.Status, string(domain.TaskPending))),
		AccountID: refToID[in.AccountRef],
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.DueDate != nil && *in.DueDate != "" {
		t, _ := parseTimestamp(*in.DueDate)
		task.DueDate = &t
	}
	return task
}

func convertMention(in *MentionImport, now time.Time) *domain.Mention {
	created := now
	if in.CreatedAt != "" {
		created, _ = parseTimestamp(in.CreatedAt)
	}
	return &domain.Mention{
		ID:        uuid.NewString(),
		Author:    in.Author,
		Content:   in.Content,
		Source:    domain.MentionSource(valueOr(in.Source, string(domain.MentionFromTask))),
		UserID:    in.UserID,
		CreatedAt: created,
	}
}

func convertEvent(in *EventImport) *domain.CalendarEvent {
	start, _ := parseTimestamp(in.Start)
	end, _ := parseTimestamp(in.End)
	return &domain.CalendarEvent{
		ID:    uuid.NewString(),
		Title: in.Title,
		Start: start,
		End:   end,
	}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
