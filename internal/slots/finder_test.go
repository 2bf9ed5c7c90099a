package slots

import (
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2026-08-24.
var monday = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestFindSlots_SingleBusyInterval(t *testing.T) {
	// Working hours 9-18, busy 10:00-11:00, duration 30:
	// exactly 9:00-10:00 and 11:00-18:00.
	busy := []BusyInterval{{Start: at(monday, 10, 0), End: at(monday, 11, 0)}}

	got := FindSlots(monday, monday, busy, 9, 18, 30, contract.PreferAny)

	require.Len(t, got, 2)
	assert.Equal(t, 9*60, got[0].StartMin)
	assert.Equal(t, 10*60, got[0].EndMin)
	assert.Equal(t, 11*60, got[1].StartMin)
	assert.Equal(t, 18*60, got[1].EndMin)
	assert.Equal(t, 60, got[0].DurationMin)
	assert.Equal(t, 7*60, got[1].DurationMin)
}

func TestFindSlots_EmptyCalendarYieldsFullDay(t *testing.T) {
	// An unauthenticated provider reports zero busy intervals; the whole
	// working day comes back as one slot.
	got := FindSlots(monday, monday, nil, 9, 18, 30, contract.PreferAny)

	require.Len(t, got, 1)
	assert.Equal(t, 9*60, got[0].StartMin)
	assert.Equal(t, 18*60, got[0].EndMin)
}

func TestFindSlots_SkipsWeekends(t *testing.T) {
	friday := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	nextTuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	got := FindSlots(friday, nextTuesday, nil, 9, 17, 30, contract.PreferAny)

	require.Len(t, got, 3) // Fri, Mon, Tue
	for _, s := range got {
		wd := s.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

func TestFindSlots_OverlappingBusyIntervals(t *testing.T) {
	// 10:00-12:00 and 11:00-13:00 overlap; the cursor must ride through
	// to 13:00 without emitting a phantom gap.
	busy := []BusyInterval{
		{Start: at(monday, 10, 0), End: at(monday, 12, 0)},
		{Start: at(monday, 11, 0), End: at(monday, 13, 0)},
	}

	got := FindSlots(monday, monday, busy, 9, 18, 30, contract.PreferAny)

	require.Len(t, got, 2)
	assert.Equal(t, 9*60, got[0].StartMin)
	assert.Equal(t, 10*60, got[0].EndMin)
	assert.Equal(t, 13*60, got[1].StartMin)
	assert.Equal(t, 18*60, got[1].EndMin)
}

func TestFindSlots_UnsortedBusyInput(t *testing.T) {
	busy := []BusyInterval{
		{Start: at(monday, 15, 0), End: at(monday, 16, 0)},
		{Start: at(monday, 10, 0), End: at(monday, 11, 0)},
	}

	got := FindSlots(monday, monday, busy, 9, 18, 60, contract.PreferAny)

	require.Len(t, got, 3)
	assert.True(t, got[0].StartMin < got[1].StartMin && got[1].StartMin < got[2].StartMin)
}

func TestFindSlots_GapShorterThanDurationSkipped(t *testing.T) {
	// 20-minute gap between meetings is too short for a 30-minute slot.
	busy := []BusyInterval{
		{Start: at(monday, 9, 0), End: at(monday, 10, 0)},
		{Start: at(monday, 10, 20), End: at(monday, 18, 0)},
	}

	got := FindSlots(monday, monday, busy, 9, 18, 30, contract.PreferAny)
	assert.Empty(t, got)
}

func TestFindSlots_PreferenceFilters(t *testing.T) {
	busy := []BusyInterval{{Start: at(monday, 11, 0), End: at(monday, 13, 0)}}

	morning := FindSlots(monday, monday, busy, 9, 18, 30, contract.PreferMorning)
	require.Len(t, morning, 1)
	assert.LessOrEqual(t, morning[0].EndMin, 12*60)

	afternoon := FindSlots(monday, monday, busy, 9, 18, 30, contract.PreferAfternoon)
	require.Len(t, afternoon, 1)
	assert.GreaterOrEqual(t, afternoon[0].StartMin, 12*60)

	any := FindSlots(monday, monday, busy, 9, 18, 30, contract.PreferAny)
	assert.Len(t, any, 2)
}

func TestFindSlots_InvariantsHold(t *testing.T) {
	end := monday.AddDate(0, 0, 4)
	busy := []BusyInterval{
		{Start: at(monday, 8, 0), End: at(monday, 9, 30)}, // starts before working hours
		{Start: at(monday, 12, 0), End: at(monday, 12, 45)},
		{Start: at(monday.AddDate(0, 0, 1), 17, 30), End: at(monday.AddDate(0, 0, 1), 19, 0)}, // ends after hours
		{Start: at(monday.AddDate(0, 0, 3), 10, 0), End: at(monday.AddDate(0, 0, 3), 10, 30)},
	}

	got := FindSlots(monday, end, busy, 9, 18, 30, contract.PreferAny)
	require.NotEmpty(t, got)

	prevKey := ""
	for _, s := range got {
		assert.GreaterOrEqual(t, s.StartMin, 9*60)
		assert.LessOrEqual(t, s.EndMin, 18*60)
		assert.GreaterOrEqual(t, s.DurationMin, 30)

		key := fmt.Sprintf("%s %04d", s.Date.Format("2006-01-02"), s.StartMin)
		assert.Greater(t, key, prevKey, "slots must be chronologically ordered")
		prevKey = key

		for _, b := range busy {
			slotStart := s.Date.Add(time.Duration(s.StartMin) * time.Minute)
			slotEnd := s.Date.Add(time.Duration(s.EndMin) * time.Minute)
			overlap := slotStart.Before(b.End) && b.Start.Before(slotEnd)
			assert.False(t, overlap, "slot %s overlaps busy interval %v", s.TimeRange(), b)
		}
	}
}

func TestFindSlots_Idempotent(t *testing.T) {
	busy := []BusyInterval{
		{Start: at(monday, 10, 0), End: at(monday, 11, 0)},
		{Start: at(monday, 14, 0), End: at(monday, 15, 0)},
	}

	first := FindSlots(monday, monday.AddDate(0, 0, 2), busy, 9, 18, 30, contract.PreferAny)
	second := FindSlots(monday, monday.AddDate(0, 0, 2), busy, 9, 18, 30, contract.PreferAny)
	assert.Equal(t, first, second)
}
