package main

import (
	"context"
	"sync"

	"one48-planner/pkg/gcalendar"
	"one48-planner/pkg/googleauth"
)

// lazyCalendar defers building the Google Calendar client until the first
// call, so the server can start before the user connects a session.
type lazyCalendar struct {
	auth *googleauth.Provider

	mu     sync.Mutex
	client *gcalendar.Client
}

func (lc *lazyCalendar) get(ctx context.Context) (*gcalendar.Client, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.client != nil {
		return lc.client, nil
	}
	if lc.auth == nil {
		return nil, googleauth.ErrNoToken
	}

	ts, err := lc.auth.EnsureSession(ctx)
	if err != nil {
		return nil, err
	}
	client, err := gcalendar.NewClientFromTokenSource(ctx, ts)
	if err != nil {
		return nil, err
	}
	lc.client = client
	return client, nil
}

func (lc *lazyCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	client, err := lc.get(ctx)
	if err != nil {
		return nil, err
	}
	return client.ListEvents(ctx, req)
}

func (lc *lazyCalendar) InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
	client, err := lc.get(ctx)
	if err != nil {
		return nil, err
	}
	return client.InsertEvent(ctx, req)
}

func (lc *lazyCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	client, err := lc.get(ctx)
	if err != nil {
		return err
	}
	return client.DeleteEvent(ctx, calendarID, eventID)
}

// noSession is the session checker used when no Google credentials are
// configured.
type noSession struct{}

func (noSession) HasSession() bool { return false }
