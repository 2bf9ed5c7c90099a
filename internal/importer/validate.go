package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

var (
	validKinds       = map[string]bool{"client": true, "partner": true}
	validImportances = map[string]bool{"low": true, "medium": true, "high": true}
	validPriorities  = validImportances
	validStatuses    = map[string]bool{"pending": true, "in_progress": true, "completed": true}
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	accountRefs := make(map[string]bool)
	errs = append(errs, validateAccounts(schema.Accounts, accountRefs)...)
	errs = append(errs, validateTasks(schema.Tasks, accountRefs)...)
	errs = append(errs, validateMentions(schema.Mentions)...)
	errs = append(errs, validateEvents(schema.Events)...)

	return errs
}

func validateAccounts(accounts []AccountImport, refs map[string]bool) []error {
	var errs []error

	for i, a := range accounts {
		prefix := fmt.Sprintf("accounts[%d]", i)

		if a.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[a.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, a.Ref))
		} else {
			refs[a.Ref] = true
		}

		if a.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if a.Kind != "" && !validKinds[a.Kind] {
			errs = append(errs, fmt.Errorf("%s.kind: invalid value %q", prefix, a.Kind))
		}
		if a.Stage != "" && !domain.ValidStages[a.Stage] {
			errs = append(errs, fmt.Errorf("%s.stage: invalid value %q", prefix, a.Stage))
		}
		if a.Importance != "" && !validImportances[a.Importance] {
			errs = append(errs, fmt.Errorf("%s.importance: invalid value %q", prefix, a.Importance))
		}
		errs = append(errs, validateOptionalTimestamp(prefix+".last_contact_at", a.LastContactAt)...)

		mainCount := 0
		for j, c := range a.Contacts {
			if c.Name == "" {
				errs = append(errs, fmt.Errorf("%s.contacts[%d].name is required", prefix, j))
			}
			if c.Main {
				mainCount++
			}
		}
		if mainCount > 1 {
			errs = append(errs, fmt.Errorf("%s: more than one main contact", prefix))
		}

		for j, act := range a.Activities {
			actPrefix := fmt.Sprintf("%s.activities[%d]", prefix, j)
			if !domain.ValidActivityTypes[act.Type] {
				errs = append(errs, fmt.Errorf("%s.type: invalid value %q", actPrefix, act.Type))
			}
			if act.Title == "" {
				errs = append(errs, fmt.Errorf("%s.title is required", actPrefix))
			}
			if _, err := parseTimestamp(act.OccurredAt); err != nil {
				errs = append(errs, fmt.Errorf("%s.occurred_at: %v", actPrefix, err))
			}
		}
	}

	return errs
}

func validateTasks(tasks []TaskImport, accountRefs map[string]bool) []error {
	var errs []error

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.AccountRef != "" && !accountRefs[t.AccountRef] {
			errs = append(errs, fmt.Errorf("%s.account_ref: ref %q not found in accounts", prefix, t.AccountRef))
		}
		if t.Priority != "" && !validPriorities[t.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
		}
		if t.Status != "" && !validStatuses[t.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}
		errs = append(errs, validateOptionalTimestamp(prefix+".due_date", t.DueDate)...)
	}

	return errs
}

func validateMentions(mentions []MentionImport) []error {
	var errs []error

	for i, m := range mentions {
		prefix := fmt.Sprintf("mentions[%d]", i)
		if m.UserID == "" {
			errs = append(errs, fmt.Errorf("%s.user_id is required", prefix))
		}
		if m.Author == "" {
			errs = append(errs, fmt.Errorf("%s.author is required", prefix))
		}
		if m.CreatedAt != "" {
			if _, err := parseTimestamp(m.CreatedAt); err != nil {
				errs = append(errs, fmt.Errorf("%s.created_at: %v", prefix, err))
			}
		}
	}

	return errs
}

func validateEvents(events []EventImport) []error {
	var errs []error

	for i, ev := range events {
		prefix := fmt.Sprintf("events[%d]", i)
		if ev.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		start, startErr := parseTimestamp(ev.Start)
		if startErr != nil {
			errs = append(errs, fmt.Errorf("%s.start: %v", prefix, startErr))
		}
		end, endErr := parseTimestamp(ev.End)
		if endErr != nil {
			errs = append(errs, fmt.Errorf("%s.end: %v", prefix, endErr))
		}
		if startErr == nil && endErr == nil && !end.After(start) {
			errs = append(errs, fmt.Errorf("%s: end %q must be after start %q", prefix, ev.End, ev.Start))
		}
	}

	return errs
}

func validateOptionalTimestamp(field string, s *string) []error {
	if s == nil || *s == "" {
		return nil
	}
	if _, err := parseTimestamp(*s); err != nil {
		return []error{fmt.Errorf("%s: %v", field, err)}
	}
	return nil
}

// parseTimestamp accepts RFC3339 timestamps or bare dates.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q (expected RFC3339 or YYYY-MM-DD)", s)
}
