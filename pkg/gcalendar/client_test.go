package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"one48-planner/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*gcalendar.Client, func()) {
	t.Helper()
	ts := httptest.NewServer(handler)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		ts.Close()
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client, ts.Close
}

func TestCalendarClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("List Events E2E", func(t *testing.T) {
		client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodGet {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			q := r.URL.Query()
			if q.Get("singleEvents") != "true" || q.Get("orderBy") != "startTime" {
				t.Errorf("expected expanded, ordered listing, got query %v", q)
			}
			w.Write([]byte(`{
				"items": [
					{
						"id": "timed-1",
						"summary": "Deep work",
						"colorId": "8",
						"start": { "dateTime": "2026-02-23T09:00:00+01:00" },
						"end": { "dateTime": "2026-02-23T11:00:00+01:00" }
					},
					{
						"id": "allday-1",
						"summary": "Conference",
						"start": { "date": "2026-02-25" },
						"end": { "date": "2026-02-26" }
					},
					{
						"id": "bad-1",
						"summary": "No times"
					}
				]
			}`))
		})
		defer done()

		loc := time.FixedZone("CET", 3600)
		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			TimeMin:  time.Date(2026, 2, 23, 0, 0, 0, 0, loc),
			TimeMax:  time.Date(2026, 3, 2, 0, 0, 0, 0, loc),
			Location: loc,
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events (malformed dropped), got %d", len(events))
		}

		timed := events[0]
		if timed.AllDay || timed.ColorID != "8" || timed.Start.Hour() != 9 {
			t.Errorf("unexpected timed event: %+v", timed)
		}
		allDay := events[1]
		if !allDay.AllDay {
			t.Errorf("expected all-day event: %+v", allDay)
		}
		wantStart := time.Date(2026, 2, 25, 0, 0, 0, 0, loc)
		if !allDay.Start.Equal(wantStart) {
			t.Errorf("all-day start = %v, want %v", allDay.Start, wantStart)
		}
	})

	t.Run("Insert all-day event sends exclusive end date", func(t *testing.T) {
		var body struct {
			ColorID string `json:"colorId"`
			Start   struct {
				Date     string `json:"date"`
				DateTime string `json:"dateTime"`
			} `json:"start"`
			End struct {
				Date string `json:"date"`
			} `json:"end"`
		}
		client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"id": "created-1"}`))
		})
		defer done()

		start := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
		ev, err := client.InsertEvent(context.Background(), gcalendar.InsertEventRequest{
			Summary: "Conference",
			ColorID: "9",
			Start:   start,
			End:     start.AddDate(0, 0, 1),
			AllDay:  true,
		})
		if err != nil {
			t.Fatalf("failed to insert event: %v", err)
		}
		if ev.ID != "created-1" {
			t.Errorf("unexpected id: %s", ev.ID)
		}
		if body.Start.Date != "2026-02-25" || body.End.Date != "2026-02-26" {
			t.Errorf("unexpected dates: start=%q end=%q", body.Start.Date, body.End.Date)
		}
		if body.Start.DateTime != "" {
			t.Errorf("all-day event must not carry a dateTime")
		}
		if body.ColorID != "9" {
			t.Errorf("colorId = %q, want 9", body.ColorID)
		}
	})

	t.Run("Insert timed event carries timezone", func(t *testing.T) {
		var body struct {
			Start struct {
				DateTime string `json:"dateTime"`
				TimeZone string `json:"timeZone"`
			} `json:"start"`
		}
		client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"id": "created-2"}`))
		})
		defer done()

		loc := time.FixedZone("CET", 3600)
		start := time.Date(2026, 2, 23, 9, 0, 0, 0, loc)
		_, err := client.InsertEvent(context.Background(), gcalendar.InsertEventRequest{
			Summary:  "Standup",
			Start:    start,
			End:      start.Add(15 * time.Minute),
			Timezone: "Europe/Berlin",
		})
		if err != nil {
			t.Fatalf("failed to insert event: %v", err)
		}
		if body.Start.TimeZone != "Europe/Berlin" {
			t.Errorf("timeZone = %q", body.Start.TimeZone)
		}
		if !strings.HasPrefix(body.Start.DateTime, "2026-02-23T09:00:00") {
			t.Errorf("dateTime = %q", body.Start.DateTime)
		}
	})

	t.Run("Delete Event E2E", func(t *testing.T) {
		client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" && r.Method == http.MethodDelete {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer done()

		if err := client.DeleteEvent(context.Background(), "", "event-123"); err != nil {
			t.Fatalf("failed to delete event: %v", err)
		}
		if err := client.DeleteEvent(context.Background(), "", "missing"); err == nil {
			t.Fatalf("expected api error for missing event")
		}
	})
}
