package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/slots"
)

// slotWindow extracts the shared scheduling parameters, applying the
// configured defaults for anything the caller left out.
func (d *Dispatcher) slotWindow(p Params) (from, to time.Time, workStart, workEnd, duration int, pref contract.SlotPreference, err error) {
	from, ok := p.Time("from")
	if !ok {
		err = fmt.Errorf("%w: from must be a date", contract.ErrValidation)
		return
	}
	to, ok = p.Time("to")
	if !ok {
		err = fmt.Errorf("%w: to must be a date", contract.ErrValidation)
		return
	}
	if to.Before(from) {
		err = fmt.Errorf("%w: to precedes from", contract.ErrValidation)
		return
	}

	workStart = p.Int("workStart", d.cfg.WorkStartHour)
	workEnd = p.Int("workEnd", d.cfg.WorkEndHour)
	if workEnd <= workStart {
		err = fmt.Errorf("%w: working hours are empty", contract.ErrValidation)
		return
	}
	duration = p.Int("duration", d.cfg.SlotDurationMin)

	pref = contract.SlotPreference(p.String("preference"))
	switch pref {
	case contract.PreferMorning, contract.PreferAfternoon:
	case "", contract.PreferAny:
		pref = contract.PreferAny
	default:
		err = fmt.Errorf("%w: unknown preference %q", contract.ErrValidation, pref)
	}
	return
}

// busyIntervals reads the calendar for the range. An unauthenticated
// provider yields no events, so scheduling degrades to a fully free
// calendar instead of failing.
func (d *Dispatcher) busyIntervals(ctx context.Context, from, to time.Time) ([]slots.BusyInterval, error) {
	events, err := d.calendar.ListEvents(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	busy := make([]slots.BusyInterval, 0, len(events))
	for _, ev := range events {
		busy = append(busy, slots.BusyInterval{Start: ev.Start, End: ev.End})
	}
	return busy, nil
}

func (d *Dispatcher) handleFindSlots(ctx context.Context, req Request) (string, map[string]any, error) {
	from, to, workStart, workEnd, duration, pref, err := d.slotWindow(req.Params)
	if err != nil {
		return "", nil, err
	}
	busy, err := d.busyIntervals(ctx, from, to)
	if err != nil {
		return "", nil, err
	}

	free := slots.FindSlots(from, to, busy, workStart, workEnd, duration, pref)
	return fmt.Sprintf("Found %d free slots between %s and %s.",
			len(free), from.Format("Jan 2"), to.Format("Jan 2")), map[string]any{
			"slots": free,
		}, nil
}

func (d *Dispatcher) handleProposeMeetings(ctx context.Context, req Request) (string, map[string]any, error) {
	from, to, workStart, workEnd, duration, pref, err := d.slotWindow(req.Params)
	if err != nil {
		return "", nil, err
	}

	refs := req.Params.StringSlice("accounts")
	if len(refs) == 0 {
		return "", nil, fmt.Errorf("%w: accounts must name at least one account", contract.ErrValidation)
	}
	accounts := make([]*domain.Account, 0, len(refs))
	for _, ref := range refs {
		acc, err := d.resolveAccount(ctx, ref)
		if err != nil {
			return "", nil, err
		}
		accounts = append(accounts, acc)
	}

	busy, err := d.busyIntervals(ctx, from, to)
	if err != nil {
		return "", nil, err
	}
	free := slots.FindSlots(from, to, busy, workStart, workEnd, duration, pref)
	proposals := slots.Distribute(free, accounts)

	// Drafts are best-effort: an unauthenticated messenger degrades to
	// proposals without stored drafts rather than failing the round.
	draftIDs := make(map[string]string, len(proposals))
	draftsCreated := 0
	for _, p := range proposals {
		if p.ContactEmail == "" {
			continue
		}
		id, err := d.messenger.CreateDraft(ctx, p.ContactEmail, p.DraftSubject, p.DraftBody)
		if err != nil {
			if errors.Is(err, contract.ErrProviderUnavailable) {
				continue
			}
			return "", nil, err
		}
		draftIDs[p.AccountID] = id
		draftsCreated++
	}

	return fmt.Sprintf("Proposed meetings for %d accounts over %d free slots; %d drafts created.",
			len(proposals), len(free), draftsCreated), map[string]any{
			"proposals":     proposals,
			"totalSlots":    len(free),
			"draftIds":      draftIDs,
			"draftsCreated": draftsCreated,
		}, nil
}
