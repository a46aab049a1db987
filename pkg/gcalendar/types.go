package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event. For
// all-day events Start is midnight of the first day and End is midnight of
// the day AFTER the last day, matching the API's exclusive end date.
type Event struct {
	ID          string
	Summary     string
	Description string
	ColorID     string
	Start       time.Time
	End         time.Time
	AllDay      bool
}

// InsertEventRequest is the input for inserting a Google Calendar event.
type InsertEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	ColorID     string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Timezone    string // e.g. "Europe/Berlin", used for timed events only
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	// Location resolves all-day dates, which the API returns without any
	// timezone. Defaults to time.Local.
	Location *time.Location
}
