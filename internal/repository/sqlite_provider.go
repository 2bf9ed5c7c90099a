package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/gateway"
)

// SQLiteCalendar implements gateway.Calendar over the local calendar
// mirror. It stands in for an external provider when none is connected.
type SQLiteCalendar struct {
	db *sql.DB
}

// NewSQLiteCalendar creates a SQLiteCalendar over an opened database.
func NewSQLiteCalendar(database *sql.DB) *SQLiteCalendar {
	return &SQLiteCalendar{db: database}
}

var _ gateway.Calendar = (*SQLiteCalendar)(nil)

func (c *SQLiteCalendar) ListEvents(ctx context.Context, start, end time.Time) ([]domain.CalendarEvent, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, title, start_at, end_at, attendees, conference_link
			FROM calendar_events
			WHERE start_at < ? AND end_at > ?
			ORDER BY start_at, id`,
		end.UTC().Format(time.RFC3339), start.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []domain.CalendarEvent
	for rows.Next() {
		var ev domain.CalendarEvent
		var startAt, endAt, attendees string
		if err := rows.Scan(&ev.ID, &ev.Title, &startAt, &endAt, &attendees, &ev.ConferenceLink); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		ev.Attendees = decodeStringList(attendees)
		ev.Start, err = time.Parse(time.RFC3339, startAt)
		if err != nil {
			return nil, fmt.Errorf("parsing start_at: %w", err)
		}
		ev.End, err = time.Parse(time.RFC3339, endAt)
		if err != nil {
			return nil, fmt.Errorf("parsing end_at: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func (c *SQLiteCalendar) CreateEvent(ctx context.Context, ev *domain.CalendarEvent) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO calendar_events (id, title, start_at, end_at, attendees, conference_link)
			VALUES (?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Title,
		ev.Start.UTC().Format(time.RFC3339),
		ev.End.UTC().Format(time.RFC3339),
		encodeStringList(ev.Attendees), ev.ConferenceLink,
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// SQLiteMessenger implements gateway.Messenger over the local message
// mirror. Sent messages are stored as drafts too; there is no transport.
type SQLiteMessenger struct {
	db *sql.DB
}

// NewSQLiteMessenger creates a SQLiteMessenger over an opened database.
func NewSQLiteMessenger(database *sql.DB) *SQLiteMessenger {
	return &SQLiteMessenger{db: database}
}

var _ gateway.Messenger = (*SQLiteMessenger)(nil)

func (m *SQLiteMessenger) ListMessages(ctx context.Context, maxResults int, query string) ([]domain.Message, error) {
	if maxResults <= 0 {
		maxResults = 20
	}
	sqlQuery := `SELECT id, from_addr, subject, snippet, unread, received_at FROM messages`
	var args []any
	// The only query operator the local mirror understands.
	if strings.Contains(query, "is:unread") {
		sqlQuery += ` WHERE unread = 1`
	}
	sqlQuery += ` ORDER BY received_at DESC, id LIMIT ?`
	args = append(args, maxResults)

	rows, err := m.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var unread int
		var receivedAt string
		if err := rows.Scan(&msg.ID, &msg.From, &msg.Subject, &msg.Snippet, &unread, &receivedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		msg.Unread = intToBool(unread)
		msg.ReceivedAt, err = time.Parse(time.RFC3339, receivedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing received_at: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return messages, nil
}

func (m *SQLiteMessenger) SendMessage(ctx context.Context, to, subject, body string) error {
	// No transport behind the local mirror; sending records the message
	// like a draft so nothing is silently lost.
	_, err := m.CreateDraft(ctx, to, subject, body)
	return err
}

func (m *SQLiteMessenger) CreateDraft(ctx context.Context, to, subject, body string) (string, error) {
	id := uuid.NewString()
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO drafts (id, to_addr, subject, body, created_at)
			VALUES (?, ?, ?, ?, ?)`,
		id, to, subject, body, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("inserting draft: %w", err)
	}
	return id, nil
}

// AddMessage exists for fixtures; the engine only reads messages.
func (m *SQLiteMessenger) AddMessage(ctx context.Context, msg *domain.Message) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO messages (id, from_addr, subject, snippet, unread, received_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.From, msg.Subject, msg.Snippet, boolToInt(msg.Unread),
		msg.ReceivedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}
