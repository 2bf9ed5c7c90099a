package gateway

import (
	"context"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

// NullCalendar is the unauthenticated calendar provider: reads return
// empty results immediately, writes fail.
type NullCalendar struct{}

func (NullCalendar) ListEvents(context.Context, time.Time, time.Time) ([]domain.CalendarEvent, error) {
	return nil, nil
}

func (NullCalendar) CreateEvent(context.Context, *domain.CalendarEvent) error {
	return contract.ErrProviderUnavailable
}

// NullMessenger is the unauthenticated messaging provider.
type NullMessenger struct{}

func (NullMessenger) ListMessages(context.Context, int, string) ([]domain.Message, error) {
	return nil, nil
}

func (NullMessenger) SendMessage(context.Context, string, string, string) error {
	return contract.ErrProviderUnavailable
}

func (NullMessenger) CreateDraft(context.Context, string, string, string) (string, error) {
	return "", contract.ErrProviderUnavailable
}

var (
	_ Calendar  = NullCalendar{}
	_ Messenger = NullMessenger{}
)
