// Package config holds engine tunables loaded from the environment.
package config

import (
	"os"
	"strconv"
)

// Config collects the engine's scheduling and staleness defaults.
type Config struct {
	WorkStartHour    int
	WorkEndHour      int
	SlotDurationMin  int
	StaleAfterDays   int
	RecentWindowDays int
}

// DefaultConfig returns the engine defaults: 9-18 working hours,
// 30-minute meetings, a 14-day staleness window.
func DefaultConfig() Config {
	return Config{
		WorkStartHour:    9,
		WorkEndHour:      18,
		SlotDurationMin:  30,
		StaleAfterDays:   14,
		RecentWindowDays: 14,
	}
}

// LoadConfig reads configuration from PULSE_* environment variables,
// falling back to defaults for unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	loadInt(&cfg.WorkStartHour, "PULSE_WORK_START_HOUR")
	loadInt(&cfg.WorkEndHour, "PULSE_WORK_END_HOUR")
	loadInt(&cfg.SlotDurationMin, "PULSE_SLOT_DURATION_MIN")
	loadInt(&cfg.StaleAfterDays, "PULSE_STALE_AFTER_DAYS")
	loadInt(&cfg.RecentWindowDays, "PULSE_RECENT_WINDOW_DAYS")
	return cfg
}

func loadInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}
