package contract

import (
	"fmt"
	"time"
)

// FreeSlot is a working-hours time range not covered by any busy interval.
// Start and End are minute offsets from midnight on Date's day.
type FreeSlot struct {
	Date        time.Time `json:"date"`
	DayLabel    string    `json:"dayLabel"`
	StartMin    int       `json:"startMin"`
	EndMin      int       `json:"endMin"`
	DurationMin int       `json:"durationMin"`
}

// TimeRange renders the slot's span as "9:00–10:30".
func (s FreeSlot) TimeRange() string {
	return fmt.Sprintf("%s–%s", formatMinutes(s.StartMin), formatMinutes(s.EndMin))
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

// SlotPreference narrows which part of the day slots may fall in.
type SlotPreference string

const (
	PreferAny       SlotPreference = "any"
	PreferMorning   SlotPreference = "morning"
	PreferAfternoon SlotPreference = "afternoon"
)

// SlotProposal is one account's share of a multi-account scheduling round:
// the slots reserved for it plus the templated draft handed to messaging.
type SlotProposal struct {
	AccountID    string     `json:"accountId"`
	AccountName  string     `json:"accountName"`
	ContactName  string     `json:"contactName,omitempty"`
	ContactEmail string     `json:"contactEmail,omitempty"`
	Slots        []FreeSlot `json:"slots"`
	DraftSubject string     `json:"draftSubject"`
	DraftBody    string     `json:"draftBody"`
}
