package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/testutil"
)

func TestCalendarListEvents_RangeOverlap(t *testing.T) {
	database := testutil.NewTestDB(t)
	cal := NewSQLiteCalendar(database)
	ctx := context.Background()

	day := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	inside := testutil.NewTestEvent("Standup", day.Add(9*time.Hour), day.Add(10*time.Hour))
	straddling := testutil.NewTestEvent("Early sync", day.Add(-time.Hour), day.Add(time.Hour))
	outside := testutil.NewTestEvent("Next week", day.AddDate(0, 0, 7), day.AddDate(0, 0, 7).Add(time.Hour))
	for _, ev := range []*domain.CalendarEvent{inside, straddling, outside} {
		require.NoError(t, cal.CreateEvent(ctx, ev))
	}

	events, err := cal.ListEvents(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, events, 2, "overlapping events count, disjoint ones do not")
	assert.Equal(t, "Early sync", events[0].Title)
	assert.Equal(t, "Standup", events[1].Title)
}

func TestCalendarEventRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	cal := NewSQLiteCalendar(database)
	ctx := context.Background()

	start := time.Date(2025, 6, 16, 14, 0, 0, 0, time.UTC)
	ev := testutil.NewTestEvent("Demo", start, start.Add(time.Hour))
	ev.Attendees = []string{"ada@acme.example", "sophie@pulse.example"}
	ev.ConferenceLink = "https://meet.example/demo"
	require.NoError(t, cal.CreateEvent(ctx, ev))

	events, err := cal.ListEvents(ctx, start.Add(-time.Hour), start.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ev.Attendees, events[0].Attendees)
	assert.Equal(t, ev.ConferenceLink, events[0].ConferenceLink)
	assert.True(t, events[0].Start.Equal(start))
}

func TestMessengerUnreadQuery(t *testing.T) {
	database := testutil.NewTestDB(t)
	msgr := NewSQLiteMessenger(database)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, msgr.AddMessage(ctx, &domain.Message{
		ID: "m1", From: "ada@acme.example", Subject: "unread one", Unread: true, ReceivedAt: now,
	}))
	require.NoError(t, msgr.AddMessage(ctx, &domain.Message{
		ID: "m2", From: "ben@acme.example", Subject: "already read", Unread: false, ReceivedAt: now.Add(-time.Hour),
	}))

	unread, err := msgr.ListMessages(ctx, 10, "is:unread")
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "unread one", unread[0].Subject)

	all, err := msgr.ListMessages(ctx, 10, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	capped, err := msgr.ListMessages(ctx, 1, "")
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, "unread one", capped[0].Subject, "newest first")
}

func TestMessengerDrafts(t *testing.T) {
	database := testutil.NewTestDB(t)
	msgr := NewSQLiteMessenger(database)
	ctx := context.Background()

	id, err := msgr.CreateDraft(ctx, "ada@acme.example", "Meeting proposal", "Hello")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM drafts`).Scan(&count))
	assert.Equal(t, 1, count)

	// SendMessage has no transport; it must still persist the message.
	require.NoError(t, msgr.SendMessage(ctx, "ada@acme.example", "Follow-up", "Hi again"))
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM drafts`).Scan(&count))
	assert.Equal(t, 2, count)
}
