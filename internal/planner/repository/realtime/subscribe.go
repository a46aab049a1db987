package realtime

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"one48-planner/internal/model"
	"one48-planner/internal/planner/repository"
)

// reconnectDelay spaces out SSE reconnect attempts.
const reconnectDelay = 5 * time.Second

// Subscribe opens a server-sent-events stream on the collection and emits
// one tick per change. The stream reconnects until the context is
// cancelled; the channel closes when it is.
func (c *Client) Subscribe(ctx context.Context, sc model.Scope, col repository.Collection) (<-chan struct{}, error) {
	// Fail fast if the stream cannot be opened at all.
	resp, err := c.openStream(ctx, sc, col)
	if err != nil {
		return nil, err
	}

	ticks := make(chan struct{}, 1)
	go func() {
		defer close(ticks)
		for {
			c.readStream(ctx, resp, ticks)
			resp = nil

			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectDelay):
			}

			next, err := c.openStream(ctx, sc, col)
			if err != nil {
				c.l.Warnf(ctx, "store: subscribe reconnect to %s failed: %v", col, err)
				continue
			}
			resp = next
		}
	}()
	return ticks, nil
}

func (c *Client) openStream(ctx context.Context, sc model.Scope, col repository.Collection) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.collectionURL(col, sc, ""), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build store stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to open store stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("store stream error %d", resp.StatusCode)
	}
	return resp, nil
}

// readStream consumes one SSE connection, emitting a tick per data event.
// keep-alive and auth events carry no change and are skipped.
func (c *Client) readStream(ctx context.Context, resp *http.Response, ticks chan<- struct{}) {
	if resp == nil {
		return
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	event := ""
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if event == "put" || event == "patch" {
				select {
				case ticks <- struct{}{}:
				default:
					// A tick is already pending, collapse the burst.
				}
			}
		case line == "":
			event = ""
		}
	}
}
