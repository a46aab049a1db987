package calsync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"one48-planner/internal/calsync"
	"one48-planner/internal/model"
	"one48-planner/internal/schedule"
	"one48-planner/pkg/gcalendar"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

type mockCalendar struct {
	listFunc   func(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	insertFunc func(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error)
	deleteFunc func(ctx context.Context, calendarID, eventID string) error
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(ctx, req)
}

func (m *mockCalendar) InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
	if m.insertFunc == nil {
		return &gcalendar.Event{ID: "inserted"}, nil
	}
	return m.insertFunc(ctx, req)
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if m.deleteFunc == nil {
		return nil
	}
	return m.deleteFunc(ctx, calendarID, eventID)
}

type mockSession struct{ has bool }

func (m *mockSession) HasSession() bool { return m.has }

var weekStart = time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC) // Monday

func newEngine(board *schedule.Board, api calsync.CalendarAPI, session calsync.SessionProvider, cfg calsync.Config) *calsync.Engine {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return calsync.NewEngine(board, api, session, mockLogger{}, cfg)
}

func TestDownload(t *testing.T) {
	t.Run("maps timed, all-day and out-of-week events", func(t *testing.T) {
		api := &mockCalendar{
			listFunc: func(_ context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
				if !req.TimeMin.Equal(weekStart) || !req.TimeMax.Equal(weekStart.AddDate(0, 0, 7)) {
					t.Errorf("window = [%v, %v)", req.TimeMin, req.TimeMax)
				}
				return []gcalendar.Event{
					{
						ID:      "g1",
						Summary: "Deep work",
						ColorID: "9",
						Start:   weekStart.Add(9 * time.Hour),
						End:     weekStart.Add(11 * time.Hour),
					},
					{
						ID:      "g2",
						Summary: "Conference",
						AllDay:  true,
						Start:   weekStart.AddDate(0, 0, 3),
						End:     weekStart.AddDate(0, 0, 4),
					},
					{
						ID:      "g3",
						Summary: "Next week",
						Start:   weekStart.AddDate(0, 0, 8).Add(9 * time.Hour),
						End:     weekStart.AddDate(0, 0, 8).Add(10 * time.Hour),
					},
				}, nil
			},
		}
		board := schedule.New(nil)
		eng := newEngine(board, api, &mockSession{has: true}, calsync.Config{})

		if err := eng.Download(context.Background(), weekStart); err != nil {
			t.Fatalf("Download: %v", err)
		}

		events := board.Events()
		if len(events) != 2 {
			t.Fatalf("got %d events, want 2 (out-of-week dropped)", len(events))
		}

		timed := events[0]
		if timed.ID != "gcal-g1" || timed.DayIndex != 0 || timed.TimeSlot != "09:00" || timed.DurationMins != 120 {
			t.Errorf("timed event = %+v", timed)
		}
		if timed.CategoryID != "workout" {
			t.Errorf("color 9 should map to workout, got %s", timed.CategoryID)
		}

		allDay := events[1]
		if !allDay.IsAllDay || allDay.DayIndex != 3 || allDay.TimeSlot != "00:00" || allDay.DurationMins != 24*60 {
			t.Errorf("all-day event = %+v", allDay)
		}
		if allDay.CategoryID != "work" {
			t.Errorf("missing color should fall back to work, got %s", allDay.CategoryID)
		}
	})

	t.Run("replaces previous week and clears dirty", func(t *testing.T) {
		board := schedule.New(nil)
		board.CommitWeek([]model.ScheduledEvent{
			{Task: model.Task{ID: "old", Title: "Old", CategoryID: "work", DurationMins: 30}, DayIndex: 1, TimeSlot: "10:00"},
		})

		api := &mockCalendar{
			listFunc: func(context.Context, gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
				return nil, nil
			},
		}
		eng := newEngine(board, api, &mockSession{has: true}, calsync.Config{})

		if err := eng.Download(context.Background(), weekStart); err != nil {
			t.Fatalf("Download: %v", err)
		}
		if len(board.Events()) != 0 {
			t.Errorf("week not replaced: %+v", board.Events())
		}
		if board.Dirty() {
			t.Error("download should clear the dirty flag")
		}
	})

	t.Run("list failure leaves the board untouched", func(t *testing.T) {
		board := schedule.New(nil)
		board.CommitWeek([]model.ScheduledEvent{
			{Task: model.Task{ID: "keep", Title: "Keep", CategoryID: "work", DurationMins: 30}, DayIndex: 1, TimeSlot: "10:00"},
		})

		api := &mockCalendar{
			listFunc: func(context.Context, gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
				return nil, errors.New("network down")
			},
		}
		eng := newEngine(board, api, &mockSession{has: true}, calsync.Config{})

		if err := eng.Download(context.Background(), weekStart); err == nil {
			t.Fatal("expected download error")
		}
		if len(board.Events()) != 1 || !board.Dirty() {
			t.Errorf("board changed on failed download: events=%d dirty=%v", len(board.Events()), board.Dirty())
		}
	})
}

func TestUpload(t *testing.T) {
	seedBoard := func() *schedule.Board {
		board := schedule.New(nil)
		board.CommitWeek([]model.ScheduledEvent{
			{Task: model.Task{ID: "e1", Title: "Standup", CategoryID: "work", DurationMins: 15}, DayIndex: 0, TimeSlot: "09:00"},
			{Task: model.Task{ID: "e2", Title: "Conference", CategoryID: "workout", DurationMins: 24 * 60, IsAllDay: true}, DayIndex: 3, TimeSlot: "00:00"},
		})
		return board
	}

	t.Run("overwrites the calendar week", func(t *testing.T) {
		var deleted []string
		var inserted []gcalendar.InsertEventRequest
		api := &mockCalendar{
			listFunc: func(context.Context, gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
				return []gcalendar.Event{{ID: "stale-1"}, {ID: "stale-2"}}, nil
			},
			deleteFunc: func(_ context.Context, _, eventID string) error {
				deleted = append(deleted, eventID)
				return nil
			},
			insertFunc: func(_ context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
				inserted = append(inserted, req)
				return &gcalendar.Event{ID: "new"}, nil
			},
		}

		board := seedBoard()
		eng := newEngine(board, api, &mockSession{has: true}, calsync.Config{Timezone: "Europe/Berlin"})

		if err := eng.Upload(context.Background(), weekStart); err != nil {
			t.Fatalf("Upload: %v", err)
		}

		if len(deleted) != 2 {
			t.Errorf("deleted %v, want both stale events", deleted)
		}
		if len(inserted) != 2 {
			t.Fatalf("inserted %d events, want 2", len(inserted))
		}

		timed := inserted[0]
		wantStart := weekStart.Add(9 * time.Hour)
		if timed.AllDay || !timed.Start.Equal(wantStart) || !timed.End.Equal(wantStart.Add(15*time.Minute)) {
			t.Errorf("timed insert = %+v", timed)
		}
		if timed.ColorID != "8" || timed.Timezone != "Europe/Berlin" {
			t.Errorf("timed insert color/zone = %q/%q", timed.ColorID, timed.Timezone)
		}

		allDay := inserted[1]
		if !allDay.AllDay || allDay.ColorID != "9" {
			t.Errorf("all-day insert = %+v", allDay)
		}
		wantDay := weekStart.AddDate(0, 0, 3)
		if !allDay.Start.Equal(wantDay) || !allDay.End.Equal(wantDay.AddDate(0, 0, 1)) {
			t.Errorf("all-day range = [%v, %v)", allDay.Start, allDay.End)
		}

		if board.Dirty() {
			t.Error("successful upload should clear the dirty flag")
		}
	})

	t.Run("insert failure keeps the board dirty", func(t *testing.T) {
		api := &mockCalendar{
			insertFunc: func(_ context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
				if req.Summary == "Standup" {
					return nil, errors.New("quota exceeded")
				}
				return &gcalendar.Event{ID: "new"}, nil
			},
		}

		board := seedBoard()
		eng := newEngine(board, api, &mockSession{has: true}, calsync.Config{})

		if err := eng.Upload(context.Background(), weekStart); err == nil {
			t.Fatal("expected upload error")
		}
		if !board.Dirty() {
			t.Error("failed upload must keep the dirty flag")
		}
	})

	t.Run("second sync is rejected while one runs", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		api := &mockCalendar{
			listFunc: func(context.Context, gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
				close(started)
				<-release
				return nil, nil
			},
		}

		board := seedBoard()
		eng := newEngine(board, api, &mockSession{has: true}, calsync.Config{})

		done := make(chan error, 1)
		go func() { done <- eng.Upload(context.Background(), weekStart) }()

		<-started
		if !eng.Syncing() {
			t.Error("Syncing should report true mid-upload")
		}
		if err := eng.Download(context.Background(), weekStart); !errors.Is(err, calsync.ErrSyncInFlight) {
			t.Errorf("err = %v, want ErrSyncInFlight", err)
		}

		close(release)
		if err := <-done; err != nil {
			t.Fatalf("Upload: %v", err)
		}
		if eng.Syncing() {
			t.Error("Syncing should be false after the upload finished")
		}
	})
}

func TestAutoSync(t *testing.T) {
	t.Run("uploads when dirty with a session", func(t *testing.T) {
		uploaded := make(chan struct{}, 1)
		api := &mockCalendar{
			insertFunc: func(_ context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
				select {
				case uploaded <- struct{}{}:
				default:
				}
				return &gcalendar.Event{ID: "new"}, nil
			},
		}

		board := schedule.New(nil)
		board.CommitWeek([]model.ScheduledEvent{
			{Task: model.Task{ID: "e1", Title: "Standup", CategoryID: "work", DurationMins: 15}, DayIndex: 0, TimeSlot: "09:00"},
		})

		eng := newEngine(board, api, &mockSession{has: true}, calsync.Config{Interval: time.Second})
		if err := eng.StartAutoSync(); err != nil {
			t.Fatalf("StartAutoSync: %v", err)
		}
		defer eng.StopAutoSync()

		select {
		case <-uploaded:
		case <-time.After(3 * time.Second):
			t.Fatal("auto-sync never uploaded")
		}
		if board.Dirty() {
			t.Error("auto-sync upload should clear the dirty flag")
		}
	})

	t.Run("skips without a session", func(t *testing.T) {
		uploaded := make(chan struct{}, 1)
		api := &mockCalendar{
			insertFunc: func(context.Context, gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
				select {
				case uploaded <- struct{}{}:
				default:
				}
				return &gcalendar.Event{ID: "new"}, nil
			},
		}

		board := schedule.New(nil)
		board.MarkDirty()

		eng := newEngine(board, api, &mockSession{has: false}, calsync.Config{Interval: time.Second})
		if err := eng.StartAutoSync(); err != nil {
			t.Fatalf("StartAutoSync: %v", err)
		}
		defer eng.StopAutoSync()

		select {
		case <-uploaded:
			t.Fatal("auto-sync must not upload without a session")
		case <-time.After(1500 * time.Millisecond):
		}
	})
}
