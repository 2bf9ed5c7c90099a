package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/gateway"
)

func (d *Dispatcher) handleCreateAccount(ctx context.Context, req Request) (string, map[string]any, error) {
	p := req.Params

	kind := domain.AccountKind(p.String("kind"))
	switch kind {
	case "":
		kind = domain.KindClient
	case domain.KindClient, domain.KindPartner:
	default:
		return "", nil, fmt.Errorf("%w: unknown account kind %q", contract.ErrValidation, kind)
	}

	stage := domain.StageEntry
	if s := p.String("stage"); s != "" {
		if !domain.ValidStages[s] {
			return "", nil, fmt.Errorf("%w: unknown stage %q", contract.ErrValidation, s)
		}
		stage = domain.Stage(s)
	}

	importance := domain.ImportanceMedium
	if s := p.String("importance"); s != "" {
		importance = domain.Importance(s)
	}

	now := d.now()
	acc := &domain.Account{
		ID:         uuid.NewString(),
		Name:       p.String("name"),
		Kind:       kind,
		Stage:      stage,
		Importance: importance,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := d.store.CreateAccount(ctx, acc); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Created account %s.", acc.Name), map[string]any{
		"accountId": acc.ID,
		"created":   true,
	}, nil
}

func (d *Dispatcher) handleUpdateAccount(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}

	p := req.Params
	changed := []string{}
	if p.Has("name") {
		acc.Name = p.String("name")
		changed = append(changed, "name")
	}
	if p.Has("kind") {
		acc.Kind = domain.AccountKind(p.String("kind"))
		changed = append(changed, "kind")
	}
	if p.Has("importance") {
		acc.Importance = domain.Importance(p.String("importance"))
		changed = append(changed, "importance")
	}
	if p.Has("stage") {
		s := p.String("stage")
		if !domain.ValidStages[s] {
			return "", nil, fmt.Errorf("%w: unknown stage %q", contract.ErrValidation, s)
		}
		acc.Stage = domain.Stage(s)
		changed = append(changed, "stage")
	}
	if len(changed) == 0 {
		return "", nil, fmt.Errorf("%w: nothing to update", contract.ErrValidation)
	}

	acc.UpdatedAt = d.now()
	if err := d.store.UpdateAccount(ctx, acc); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Updated %s.", acc.Name), map[string]any{
		"accountId":     acc.ID,
		"updatedFields": changed,
	}, nil
}

func (d *Dispatcher) handleAdvanceStage(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	s := req.Params.String("stage")
	if !domain.ValidStages[s] {
		return "", nil, fmt.Errorf("%w: unknown stage %q", contract.ErrValidation, s)
	}
	previous := acc.Stage
	acc.Stage = domain.Stage(s)
	acc.UpdatedAt = d.now()
	if err := d.store.UpdateAccount(ctx, acc); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%s moved from %s to %s.", acc.Name, previous, acc.Stage), map[string]any{
		"accountId":    acc.ID,
		"stageBefore":  string(previous),
		"stageAfter":   string(acc.Stage),
		"stageChanged": previous != acc.Stage,
	}, nil
}

// handleProposalSent applies the first auto-advance rule: sending a
// proposal moves an exchange-stage account to proposal. Other stages are
// left untouched.
func (d *Dispatcher) handleProposalSent(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	changed := false
	if acc.Stage == domain.StageExchange {
		acc.Stage = domain.StageProposal
		acc.UpdatedAt = d.now()
		if err := d.store.UpdateAccount(ctx, acc); err != nil {
			return "", nil, err
		}
		changed = true
	}
	return fmt.Sprintf("Proposal recorded for %s.", acc.Name), map[string]any{
		"accountId":    acc.ID,
		"stage":        string(acc.Stage),
		"stageChanged": changed,
	}, nil
}

// handleContractSigned applies the second auto-advance rule: a signed
// contract moves any account to client success.
func (d *Dispatcher) handleContractSigned(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	changed := acc.Stage != domain.StageClientSuccess
	if changed {
		acc.Stage = domain.StageClientSuccess
		acc.UpdatedAt = d.now()
		if err := d.store.UpdateAccount(ctx, acc); err != nil {
			return "", nil, err
		}
	}
	return fmt.Sprintf("Contract signed for %s.", acc.Name), map[string]any{
		"accountId":    acc.ID,
		"stage":        string(acc.Stage),
		"stageChanged": changed,
	}, nil
}

func (d *Dispatcher) handleAddContact(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	p := req.Params
	contact := &domain.Contact{
		ID:            uuid.NewString(),
		Name:          p.String("name"),
		Emails:        p.StringSlice("emails"),
		Role:          p.String("role"),
		Phone:         p.String("phone"),
		IsMainContact: p.Bool("main", false),
	}
	if err := d.store.AddContact(ctx, acc.ID, contact); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Added %s to %s.", contact.Name, acc.Name), map[string]any{
		"accountId": acc.ID,
		"contactId": contact.ID,
	}, nil
}

// handleLogActivity prepends an activity and refreshes the account's
// last-contact timestamp; the payload names both side effects.
func (d *Dispatcher) handleLogActivity(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	p := req.Params
	actType := p.String("type")
	if !domain.ValidActivityTypes[actType] {
		return "", nil, fmt.Errorf("%w: unknown activity type %q", contract.ErrValidation, actType)
	}
	now := d.now()
	activity := &domain.Activity{
		ID:          uuid.NewString(),
		Type:        domain.ActivityType(actType),
		Title:       p.String("title"),
		Description: p.String("description"),
		Author:      req.User,
		OccurredAt:  now,
	}
	if err := d.store.AddActivity(ctx, acc.ID, activity); err != nil {
		return "", nil, err
	}
	acc.LastContactAt = &now
	acc.UpdatedAt = now
	if err := d.store.UpdateAccount(ctx, acc); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Logged %s on %s.", actType, acc.Name), map[string]any{
		"accountId":          acc.ID,
		"activityId":         activity.ID,
		"lastContactUpdated": true,
	}, nil
}

func (d *Dispatcher) handleAddDocument(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	doc := &domain.Document{
		ID:      uuid.NewString(),
		Name:    req.Params.String("name"),
		Kind:    req.Params.String("kind"),
		AddedAt: d.now(),
	}
	if err := d.store.AddDocument(ctx, acc.ID, doc); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Attached %s to %s.", doc.Name, acc.Name), map[string]any{
		"accountId":  acc.ID,
		"documentId": doc.ID,
	}, nil
}

func (d *Dispatcher) handleAddChecklistItem(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	item := &domain.ChecklistItem{
		ID:        uuid.NewString(),
		Note:      req.Params.String("note"),
		CreatedAt: d.now(),
	}
	if err := d.store.AddChecklistItem(ctx, acc.ID, item); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Checklist item added to %s.", acc.Name), map[string]any{
		"accountId": acc.ID,
		"itemId":    item.ID,
	}, nil
}

func (d *Dispatcher) handleCompleteChecklistItem(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	itemID := req.Params.String("item")
	if err := d.store.SetChecklistItemDone(ctx, acc.ID, itemID, true); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Checklist item completed on %s.", acc.Name), map[string]any{
		"accountId": acc.ID,
		"itemId":    itemID,
		"completed": true,
	}, nil
}

func (d *Dispatcher) handleListAccounts(ctx context.Context, _ Request) (string, map[string]any, error) {
	accounts, err := d.store.ListAccounts(ctx)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d accounts on record.", len(accounts)), map[string]any{
		"accounts": accounts,
	}, nil
}

func (d *Dispatcher) handleGetAccount(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Found %s.", acc.Name), map[string]any{
		"account": acc,
	}, nil
}

func (d *Dispatcher) handleCreateTask(ctx context.Context, req Request) (string, map[string]any, error) {
	p := req.Params

	priority := domain.PriorityMedium
	if s := p.String("priority"); s != "" {
		priority = domain.Priority(s)
	}

	task := &domain.Task{
		ID:        uuid.NewString(),
		Title:     p.String("title"),
		Priority:  priority,
		Status:    domain.TaskPending,
		Assignees: p.StringSlice("assignees"),
		CreatedAt: d.now(),
		UpdatedAt: d.now(),
	}
	if due, ok := p.Time("due"); ok {
		task.DueDate = &due
	}
	if ref := p.String("account"); ref != "" {
		acc, err := d.resolveAccount(ctx, ref)
		if err != nil {
			return "", nil, err
		}
		task.AccountID = acc.ID
	}

	if err := d.store.CreateTask(ctx, task); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Created task %q.", task.Title), map[string]any{
		"taskId": task.ID,
	}, nil
}

func (d *Dispatcher) handleUpdateTaskStatus(ctx context.Context, req Request) (string, map[string]any, error) {
	status := domain.TaskStatus(req.Params.String("status"))
	switch status {
	case domain.TaskPending, domain.TaskInProgress, domain.TaskCompleted:
	default:
		return "", nil, fmt.Errorf("%w: unknown task status %q", contract.ErrValidation, status)
	}
	taskID := req.Params.String("task")
	if err := d.store.UpdateTaskStatus(ctx, taskID, status); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Task moved to %s.", status), map[string]any{
		"taskId": taskID,
		"status": string(status),
	}, nil
}

func (d *Dispatcher) handleListTasks(ctx context.Context, req Request) (string, map[string]any, error) {
	p := req.Params
	filter := gateway.TaskFilter{
		Status:   domain.TaskStatus(p.String("status")),
		Priority: domain.Priority(p.String("priority")),
	}
	if ref := p.String("account"); ref != "" {
		acc, err := d.resolveAccount(ctx, ref)
		if err != nil {
			return "", nil, err
		}
		filter.AccountID = acc.ID
	}
	tasks, err := d.store.ListTasks(ctx, filter)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d tasks match.", len(tasks)), map[string]any{
		"tasks": tasks,
	}, nil
}

func (d *Dispatcher) handleListMentions(ctx context.Context, req Request) (string, map[string]any, error) {
	mentions, err := d.store.ListMentions(ctx, req.User)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d mentions for you.", len(mentions)), map[string]any{
		"mentions": mentions,
	}, nil
}

func (d *Dispatcher) handleUnreadSummary(ctx context.Context, req Request) (string, map[string]any, error) {
	var (
		notifications int
		messages      []domain.Message
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		notifications, err = d.store.CountUnreadNotifications(gctx, req.User)
		return err
	})
	g.Go(func() error {
		var err error
		messages, err = d.messenger.ListMessages(gctx, unreadMessageProbe, "is:unread")
		return err
	})
	if err := g.Wait(); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d unread notifications, %d unread messages.", notifications, len(messages)), map[string]any{
		"unreadNotifications": notifications,
		"unreadMessages":      len(messages),
	}, nil
}

func (d *Dispatcher) handleCreateEvent(ctx context.Context, req Request) (string, map[string]any, error) {
	p := req.Params
	start, ok := p.Time("start")
	if !ok {
		return "", nil, fmt.Errorf("%w: start must be a timestamp", contract.ErrValidation)
	}
	end, ok := p.Time("end")
	if !ok {
		return "", nil, fmt.Errorf("%w: end must be a timestamp", contract.ErrValidation)
	}
	if !end.After(start) {
		return "", nil, fmt.Errorf("%w: event must end after it starts", contract.ErrValidation)
	}
	ev := &domain.CalendarEvent{
		ID:             uuid.NewString(),
		Title:          p.String("title"),
		Start:          start,
		End:            end,
		Attendees:      p.StringSlice("attendees"),
		ConferenceLink: p.String("link"),
	}
	if err := d.calendar.CreateEvent(ctx, ev); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Scheduled %q.", ev.Title), map[string]any{
		"eventId": ev.ID,
	}, nil
}

func (d *Dispatcher) handleListEvents(ctx context.Context, req Request) (string, map[string]any, error) {
	from, ok := req.Params.Time("from")
	if !ok {
		return "", nil, fmt.Errorf("%w: from must be a date", contract.ErrValidation)
	}
	to, ok := req.Params.Time("to")
	if !ok {
		return "", nil, fmt.Errorf("%w: to must be a date", contract.ErrValidation)
	}
	events, err := d.calendar.ListEvents(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d events in range.", len(events)), map[string]any{
		"events": events,
	}, nil
}

func (d *Dispatcher) handleSendMessage(ctx context.Context, req Request) (string, map[string]any, error) {
	p := req.Params
	if err := d.messenger.SendMessage(ctx, p.String("to"), p.String("subject"), p.String("body")); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Message sent to %s.", p.String("to")), map[string]any{
		"sent": true,
		"to":   p.String("to"),
	}, nil
}

func (d *Dispatcher) handleCreateDraft(ctx context.Context, req Request) (string, map[string]any, error) {
	p := req.Params
	id, err := d.messenger.CreateDraft(ctx, p.String("to"), p.String("subject"), p.String("body"))
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Draft saved for %s.", p.String("to")), map[string]any{
		"draftId": id,
	}, nil
}

func (d *Dispatcher) handleListMessages(ctx context.Context, req Request) (string, map[string]any, error) {
	maxResults := req.Params.Int("max", 20)
	messages, err := d.messenger.ListMessages(ctx, maxResults, req.Params.String("query"))
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d messages.", len(messages)), map[string]any{
		"messages": messages,
	}, nil
}
