// Package realtime implements the store repository against a Firebase-style
// realtime database: per-user JSON collections over REST plus server-sent
// events for change notifications.
package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"one48-planner/internal/model"
	"one48-planner/internal/planner/repository"
	pkgLog "one48-planner/pkg/log"
)

// Client is the HTTP wrapper for the realtime store REST API.
type Client struct {
	baseURL    string
	authSecret string
	httpClient *http.Client
	l          pkgLog.Logger
}

var _ repository.StoreRepository = (*Client)(nil)

// NewClient creates a new realtime store client. baseURL is the database
// root without a trailing slash; authSecret may be empty for open rules.
func NewClient(baseURL, authSecret string, l pkgLog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		authSecret: authSecret,
		httpClient: &http.Client{},
		l:          l,
	}
}

// collectionURL builds `{base}/{col}/{uid}.json` with optional auth.
func (c *Client) collectionURL(col repository.Collection, sc model.Scope, id string) string {
	path := fmt.Sprintf("%s/%s/%s", c.baseURL, col, url.PathEscape(sc.UserID))
	if id != "" {
		path += "/" + url.PathEscape(id)
	}
	path += ".json"
	if c.authSecret != "" {
		path += "?auth=" + url.QueryEscape(c.authSecret)
	}
	return path
}

// getJSON fetches a path and decodes into out. A JSON null body leaves out
// untouched, which is how the store represents an empty collection.
func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build store get request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call store get API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("store API get error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode store get response: %w", err)
	}
	return nil
}

// postJSON creates a record and returns the server-assigned id.
func (c *Client) postJSON(ctx context.Context, u string, in any) (string, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("failed to marshal store record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to build store create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call store create API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("store API create error %d: %s", resp.StatusCode, string(raw))
	}

	var created struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode store create response: %w", err)
	}
	if created.Name == "" {
		return "", fmt.Errorf("store create returned no id")
	}
	return created.Name, nil
}

// putJSON overwrites one record.
func (c *Client) putJSON(ctx context.Context, u string, in any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal store record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build store update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call store update API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("store API update error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

func (c *Client) delete(ctx context.Context, u string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build store delete request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call store delete API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("store API delete error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
