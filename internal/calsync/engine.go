// Package calsync keeps the weekly schedule and a Google Calendar in step.
// Download replaces the board week with the calendar's view; Upload is a
// destructive overwrite of the calendar week from the board. At most one
// sync runs at a time.
package calsync

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	"one48-planner/internal/model"
	"one48-planner/internal/schedule"
	"one48-planner/pkg/gcalendar"
	pkgLog "one48-planner/pkg/log"
	"one48-planner/pkg/timegrid"
)

// Engine is the bidirectional sync engine over one Board and one calendar.
type Engine struct {
	board   *schedule.Board
	api     CalendarAPI
	session SessionProvider
	l       pkgLog.Logger
	cfg     Config

	mu      sync.Mutex // held for the duration of one sync
	active  atomic.Bool
	limiter *rate.Limiter
	cron    *cron.Cron
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a sync engine.
func NewEngine(board *schedule.Board, api CalendarAPI, session SessionProvider, l pkgLog.Logger, cfg Config, opts ...Option) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		board:   board,
		api:     api,
		session: session,
		l:       l,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.UploadsPerMinute)), 1),
		cron:    cron.New(cron.WithLocation(cfg.Location)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Syncing reports whether a sync is currently running.
func (e *Engine) Syncing() bool {
	return e.active.Load()
}

// begin claims the single sync slot without blocking.
func (e *Engine) begin() bool {
	if !e.mu.TryLock() {
		return false
	}
	e.active.Store(true)
	return true
}

func (e *Engine) end() {
	e.active.Store(false)
	e.mu.Unlock()
}

// Download replaces the board's week with the calendar's events in
// [weekStart, weekStart+7d). Events whose start falls outside the week are
// dropped. On error the board is left untouched.
func (e *Engine) Download(ctx context.Context, weekStart time.Time) error {
	if !e.begin() {
		return ErrSyncInFlight
	}
	defer e.end()

	items, err := e.api.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: e.cfg.CalendarID,
		TimeMin:    weekStart,
		TimeMax:    weekStart.AddDate(0, 0, 7),
		Location:   e.cfg.Location,
	})
	if err != nil {
		return fmt.Errorf("calendar download failed: %w", err)
	}

	events := make([]model.ScheduledEvent, 0, len(items))
	for _, item := range items {
		ev, ok := e.fromCalendar(weekStart, item)
		if !ok {
			e.l.Debugf(ctx, "calsync: dropping out-of-week event %s (%s)", item.ID, item.Start)
			continue
		}
		events = append(events, ev)
	}

	e.board.ReplaceWeek(events)
	e.l.Infof(ctx, "calsync: downloaded %d events for week of %s", len(events), weekStart.Format("2006-01-02"))
	return nil
}

// Upload overwrites the calendar week with the board's events: every event
// currently in [weekStart, weekStart+7d) is deleted, then the board's week
// is inserted. Individual failures are logged and skipped; if any occurred
// the board stays dirty and an error is returned.
func (e *Engine) Upload(ctx context.Context, weekStart time.Time) error {
	if !e.begin() {
		return ErrSyncInFlight
	}
	defer e.end()

	existing, err := e.api.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: e.cfg.CalendarID,
		TimeMin:    weekStart,
		TimeMax:    weekStart.AddDate(0, 0, 7),
		Location:   e.cfg.Location,
	})
	if err != nil {
		return fmt.Errorf("calendar upload failed listing existing events: %w", err)
	}

	failures := 0
	for _, item := range existing {
		if err := e.api.DeleteEvent(ctx, e.cfg.CalendarID, item.ID); err != nil {
			e.l.Warnf(ctx, "calsync: failed to delete event %s: %v", item.ID, err)
			failures++
		}
	}

	events := e.board.Events()
	for _, ev := range events {
		if _, err := e.api.InsertEvent(ctx, e.toCalendar(weekStart, ev)); err != nil {
			e.l.Warnf(ctx, "calsync: failed to insert event %q: %v", ev.Title, err)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("calendar upload finished with %d failures", failures)
	}

	e.board.ClearDirty()
	e.l.Infof(ctx, "calsync: uploaded %d events for week of %s", len(events), weekStart.Format("2006-01-02"))
	return nil
}

// StartAutoSync begins the background job that uploads pending changes.
// A tick is skipped unless the board is dirty, no sync is running and a
// Google session exists, and uploads are rate limited on top of that.
func (e *Engine) StartAutoSync() error {
	spec := fmt.Sprintf("@every %ds", int(e.cfg.Interval.Seconds()))
	if _, err := e.cron.AddFunc(spec, e.autoSyncTick); err != nil {
		return fmt.Errorf("failed to schedule auto-sync: %w", err)
	}
	e.cron.Start()
	return nil
}

// StopAutoSync stops the background job and waits for a running tick.
func (e *Engine) StopAutoSync() {
	ctx := e.cron.Stop()
	<-ctx.Done()
}

func (e *Engine) autoSyncTick() {
	ctx := context.Background()
	if !e.board.Dirty() || e.Syncing() || !e.session.HasSession() {
		return
	}
	if !e.limiter.Allow() {
		e.l.Debugf(ctx, "calsync: auto-sync throttled")
		return
	}

	weekStart := timegrid.WeekStart(e.now().In(e.cfg.Location))
	if err := e.Upload(ctx, weekStart); err != nil {
		e.l.Warnf(ctx, "calsync: auto-sync upload failed: %v", err)
	}
}

// fromCalendar maps one calendar event onto the board week. The second
// return is false when the event starts outside the week.
func (e *Engine) fromCalendar(weekStart time.Time, item gcalendar.Event) (model.ScheduledEvent, bool) {
	start := item.Start.In(e.cfg.Location)
	day := timegrid.DayOffset(weekStart, start)
	if !model.ValidDayIndex(day) {
		return model.ScheduledEvent{}, false
	}

	ev := model.ScheduledEvent{
		Task: model.Task{
			ID:         eventIDPrefix + item.ID,
			Title:      item.Summary,
			Notes:      item.Description,
			CategoryID: e.board.CategoryForColor(item.ColorID).ID,
		},
		DayIndex: day,
	}

	if item.AllDay {
		ev.IsAllDay = true
		ev.TimeSlot = "00:00"
		ev.DurationMins = allDayDurationMins
		return ev, true
	}

	ev.TimeSlot = fmt.Sprintf("%02d:%02d", start.Hour(), start.Minute())
	mins := int(item.End.Sub(item.Start).Minutes())
	if mins < timegrid.MinDurationMins {
		mins = timegrid.MinDurationMins
	}
	ev.DurationMins = mins
	return ev, true
}

// toCalendar maps one board event to an insert request. All-day events get
// a date range with the API's exclusive end; timed events get concrete
// timestamps in the configured zone.
func (e *Engine) toCalendar(weekStart time.Time, ev model.ScheduledEvent) gcalendar.InsertEventRequest {
	req := gcalendar.InsertEventRequest{
		CalendarID:  e.cfg.CalendarID,
		Summary:     ev.Title,
		Description: ev.Notes,
		ColorID:     e.board.Category(ev.CategoryID).GoogleColorID,
		Timezone:    e.cfg.Timezone,
	}

	if ev.IsAllDay {
		day := weekStart.AddDate(0, 0, ev.DayIndex)
		req.AllDay = true
		req.Start = day
		req.End = day.AddDate(0, 0, 1)
		return req
	}

	start, err := timegrid.SlotTime(weekStart, ev.DayIndex, ev.TimeSlot)
	if err != nil {
		// The board validates slots on write, so this is a stored
		// inconsistency; pin the event to the day start rather than drop it.
		start = weekStart.AddDate(0, 0, ev.DayIndex)
	}
	req.Start = start
	req.End = start.Add(time.Duration(ev.DurationMins) * time.Minute)
	return req
}
