package calsync

import "time"

const (
	// DefaultInterval is how often the auto-sync job wakes up.
	DefaultInterval = 60 * time.Second

	// DefaultUploadsPerMinute bounds how often auto-sync may actually
	// upload, independent of how often it wakes up.
	DefaultUploadsPerMinute = 2

	// allDayDurationMins is the rendered duration of an all-day event.
	allDayDurationMins = 24 * 60

	// eventIDPrefix marks schedule events that came from the calendar.
	eventIDPrefix = "gcal-"
)

// Config tunes the sync engine.
type Config struct {
	// CalendarID is the calendar to sync against. Empty means "primary".
	CalendarID string

	// Timezone names the zone sent with timed uploads, e.g. "Europe/Berlin".
	Timezone string

	// Location resolves local times and all-day dates. Defaults to
	// time.Local when nil.
	Location *time.Location

	// Interval is the auto-sync wake-up period.
	Interval time.Duration

	// UploadsPerMinute throttles auto-sync uploads. Zero means
	// DefaultUploadsPerMinute.
	UploadsPerMinute int
}

func (c Config) withDefaults() Config {
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.UploadsPerMinute <= 0 {
		c.UploadsPerMinute = DefaultUploadsPerMinute
	}
	return c
}
