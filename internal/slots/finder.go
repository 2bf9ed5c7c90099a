// Package slots computes free meeting slots from busy calendar intervals
// and distributes them across target accounts.
package slots

import (
	"sort"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
)

// BusyInterval is a time range already occupied by a calendar commitment.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

const noonMin = 12 * 60

// FindSlots sweeps each business day in [rangeStart, rangeEnd] and returns
// the free gaps inside working hours, chronologically ordered. Weekends
// are skipped. Each emitted slot spans the full gap between commitments,
// not just the requested duration, so the caller can pick any start time
// inside it. Identical inputs always produce identical output.
func FindSlots(
	rangeStart, rangeEnd time.Time,
	busy []BusyInterval,
	workStartHour, workEndHour int,
	durationMin int,
	pref contract.SlotPreference,
) []contract.FreeSlot {
	var out []contract.FreeSlot

	day := startOfDay(rangeStart)
	last := startOfDay(rangeEnd)
	for ; !day.After(last); day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		out = append(out, sweepDay(day, busy, workStartHour, workEndHour, durationMin, pref)...)
	}
	return out
}

// sweepDay runs the cursor sweep for a single day. The cursor advances to
// max(cursor, intervalEnd) so overlapping busy intervals are tolerated.
func sweepDay(
	day time.Time,
	busy []BusyInterval,
	workStartHour, workEndHour, durationMin int,
	pref contract.SlotPreference,
) []contract.FreeSlot {
	intervals := dayIntervals(day, busy)
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].startMin < intervals[j].startMin
	})

	var out []contract.FreeSlot
	cursor := workStartHour * 60
	dayEnd := workEndHour * 60

	for _, iv := range intervals {
		if iv.startMin > cursor && iv.startMin-cursor >= durationMin {
			end := iv.startMin
			if end > dayEnd {
				end = dayEnd
			}
			if slot, ok := makeSlot(day, cursor, end, durationMin, pref); ok {
				out = append(out, slot)
			}
		}
		if iv.endMin > cursor {
			cursor = iv.endMin
		}
	}

	if dayEnd > cursor && dayEnd-cursor >= durationMin {
		if slot, ok := makeSlot(day, cursor, dayEnd, durationMin, pref); ok {
			out = append(out, slot)
		}
	}
	return out
}

type minuteInterval struct {
	startMin int
	endMin   int
}

// dayIntervals projects the busy intervals touching the given day onto
// minute offsets from that day's midnight.
func dayIntervals(day time.Time, busy []BusyInterval) []minuteInterval {
	next := day.AddDate(0, 0, 1)
	var out []minuteInterval
	for _, b := range busy {
		if !b.End.After(day) || !b.Start.Before(next) {
			continue
		}
		start := 0
		if b.Start.After(day) {
			start = minutesInto(day, b.Start)
		}
		end := 24 * 60
		if b.End.Before(next) {
			end = minutesInto(day, b.End)
		}
		out = append(out, minuteInterval{startMin: start, endMin: end})
	}
	return out
}

func makeSlot(day time.Time, startMin, endMin, durationMin int, pref contract.SlotPreference) (contract.FreeSlot, bool) {
	if endMin-startMin < durationMin {
		return contract.FreeSlot{}, false
	}
	switch pref {
	case contract.PreferMorning:
		if endMin > noonMin {
			return contract.FreeSlot{}, false
		}
	case contract.PreferAfternoon:
		if startMin < noonMin {
			return contract.FreeSlot{}, false
		}
	}
	return contract.FreeSlot{
		Date:        day,
		DayLabel:    day.Format("Monday, Jan 2"),
		StartMin:    startMin,
		EndMin:      endMin,
		DurationMin: endMin - startMin,
	}, true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func minutesInto(day, t time.Time) int {
	return int(t.Sub(day).Minutes())
}
