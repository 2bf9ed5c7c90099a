package dispatch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/gateway"
	"github.com/alexanderramin/pulse/internal/program"
)

const unreadMessageProbe = 25

// handleDailyProgram gathers every program signal in one parallel
// fan-out, then classifies in a single pure pass. All reads start before
// any is awaited; a missing provider contributes empty data.
func (d *Dispatcher) handleDailyProgram(ctx context.Context, req Request) (string, map[string]any, error) {
	now := d.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var (
		tasks        []*domain.Task
		mentions     []*domain.Mention
		stale        []*domain.Account
		todayEvents  []domain.CalendarEvent
		unreadMsgs   []domain.Message
		unreadNotifs int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = d.store.ListTasks(gctx, gateway.TaskFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		mentions, err = d.store.ListMentions(gctx, req.User)
		return err
	})
	g.Go(func() error {
		var err error
		stale, err = d.staleAccounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		todayEvents, err = d.calendar.ListEvents(gctx, dayStart, dayEnd)
		return err
	})
	g.Go(func() error {
		var err error
		unreadMsgs, err = d.messenger.ListMessages(gctx, unreadMessageProbe, "is:unread")
		return err
	})
	g.Go(func() error {
		var err error
		unreadNotifs, err = d.store.CountUnreadNotifications(gctx, req.User)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", nil, err
	}

	p := program.Build(now, program.Inputs{
		Tasks:               tasks,
		Mentions:            mentions,
		StaleAccounts:       stale,
		TodayEvents:         todayEvents,
		UnreadMessages:      len(unreadMsgs),
		UnreadNotifications: unreadNotifs,
	})

	return fmt.Sprintf("Program ready: %d urgent, %d important, %d to plan.",
			len(p.Urgent), len(p.Important), len(p.ToPlan)), map[string]any{
			"program": p,
		}, nil
}
