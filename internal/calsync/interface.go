package calsync

import (
	"context"

	"one48-planner/pkg/gcalendar"
)

// CalendarAPI is the slice of the Google Calendar client the engine needs.
type CalendarAPI interface {
	// ListEvents returns the events within the request window.
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)

	// InsertEvent creates a new calendar event.
	InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error)

	// DeleteEvent removes an event from the calendar.
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// SessionProvider reports whether a Google session is available.
type SessionProvider interface {
	HasSession() bool
}
