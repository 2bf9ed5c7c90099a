package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

func (s *SQLiteStore) ListMentions(ctx context.Context, userID string) ([]*domain.Mention, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, author, content, source, parent_title, user_id, created_at
			FROM mentions WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing mentions: %w", err)
	}
	defer rows.Close()

	var mentions []*domain.Mention
	for rows.Next() {
		var m domain.Mention
		var source, createdAt string
		if err := rows.Scan(&m.ID, &m.Author, &m.Content, &source,
			&m.ParentTitle, &m.UserID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning mention: %w", err)
		}
		m.Source = domain.MentionSource(source)
		m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		mentions = append(mentions, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mentions: %w", err)
	}
	return mentions, nil
}

func (s *SQLiteStore) CountUnreadNotifications(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = ? AND read = 0`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}

// AddMention and AddNotification exist for fixtures and importers; the
// engine itself only reads these tables.
func (s *SQLiteStore) AddMention(ctx context.Context, m *domain.Mention) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mentions (id, author, content, source, parent_title, user_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Author, m.Content, string(m.Source), m.ParentTitle, m.UserID,
		m.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting mention: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AddNotification(ctx context.Context, n *domain.Notification) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notifications (id, user_id, title, read, created_at)
			VALUES (?, ?, ?, ?, ?)`,
		n.ID, n.UserID, n.Title, boolToInt(n.Read),
		n.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}
