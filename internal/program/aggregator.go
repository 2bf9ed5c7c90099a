// Package program merges task, mention, account, calendar and message
// signals into the three priority buckets of the daily work program.
package program

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

const (
	urgentStaleAccounts = 3
	toPlanStaleAccounts = 3 // ranks 4-6
	maxUpcomingTasks    = 5
)

// Inputs are the pre-fetched signals the program is built from. Stale
// accounts arrive pre-filtered (last contact beyond the staleness window,
// pipeline still active) and ordered by the caller.
type Inputs struct {
	Tasks               []*domain.Task
	Mentions            []*domain.Mention
	StaleAccounts       []*domain.Account
	TodayEvents         []domain.CalendarEvent
	UnreadMessages      int
	UnreadNotifications int
}

// Build classifies every input into exactly one bucket and reduces the
// stats from the same pass, so buckets and stats can not drift apart.
func Build(now time.Time, in Inputs) *contract.Program {
	p := &contract.Program{
		Urgent:    []contract.ProgramItem{},
		Important: []contract.ProgramItem{},
		ToPlan:    []contract.ProgramItem{},
	}

	upcoming := 0
	for _, t := range in.Tasks {
		if t.Status == domain.TaskCompleted {
			continue
		}
		switch {
		case t.Overdue(now):
			daysLate := int(now.Sub(*t.DueDate).Hours() / 24)
			p.Urgent = append(p.Urgent, taskItem(t, contract.ItemOverdueTask,
				fmt.Sprintf("%d days late", daysLate)))
			p.Stats.OverdueCount++
		case t.DueToday(now) && t.Priority == domain.PriorityHigh:
			p.Urgent = append(p.Urgent, taskItem(t, contract.ItemUrgentTask, "due today, high priority"))
			p.Stats.DueTodayCount++
		case t.DueToday(now):
			p.Important = append(p.Important, taskItem(t, contract.ItemTodayTask, "due today"))
			p.Stats.DueTodayCount++
		case t.Priority == domain.PriorityHigh:
			p.Important = append(p.Important, taskItem(t, contract.ItemHighPriorityTask, "high priority"))
		case t.DueDate != nil && t.Status == domain.TaskPending && upcoming < maxUpcomingTasks:
			p.ToPlan = append(p.ToPlan, taskItem(t, contract.ItemUpcomingTask,
				"due "+t.DueDate.Format("Jan 2")))
			upcoming++
		}
	}

	for _, m := range in.Mentions {
		detail := string(m.Source)
		if m.ParentTitle != "" {
			detail = fmt.Sprintf("%s · %s", m.Source, m.ParentTitle)
		}
		p.Important = append(p.Important, contract.ProgramItem{
			Type:       contract.ItemMention,
			Title:      fmt.Sprintf("%s mentioned you", m.Author),
			Detail:     detail,
			DeepDiveID: "mention-" + m.ID,
		})
		p.Stats.MentionCount++
	}

	for i, acc := range in.StaleAccounts {
		item := contract.ProgramItem{
			Type:  contract.ItemClientFollowup,
			Title: "Follow up with " + acc.Name,
			Detail: fmt.Sprintf("%d days since contact · stage %s",
				acc.DaysSinceContact(now), acc.Stage),
			DeepDiveID: "company-" + acc.ID,
		}
		switch {
		case i < urgentStaleAccounts:
			p.Urgent = append(p.Urgent, item)
		case i < urgentStaleAccounts+toPlanStaleAccounts:
			p.ToPlan = append(p.ToPlan, item)
		}
		p.Stats.StaleAccountCount++
	}

	p.Stats.MeetingsToday = len(in.TodayEvents)
	p.Stats.UnreadMessages = in.UnreadMessages
	p.Stats.UnreadNotifications = in.UnreadNotifications
	return p
}

func taskItem(t *domain.Task, itemType, detail string) contract.ProgramItem {
	return contract.ProgramItem{
		Type:       itemType,
		Title:      t.Title,
		Detail:     detail,
		DeepDiveID: "task-" + t.ID,
	}
}
