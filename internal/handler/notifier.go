package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/idtoken"
)

// ScanEvent is the payload posted to the push-notification worker after a
// contact has been captured.
type ScanEvent struct {
	ContactID   string    `json:"contact_id"`
	DisplayName string    `json:"display_name"`
	Category    string    `json:"category"`
	Score       int       `json:"score"`
	ScannedAt   time.Time `json:"scanned_at"`
}

// ScanNotifier delivers scan events to the notification worker.
type ScanNotifier interface {
	NotifyScan(ctx context.Context, event ScanEvent, requestID string) error
}

// NotifierClient posts scan events as JSON to the worker service.
type NotifierClient struct {
	client  *http.Client
	baseURL string
}

// NewNotifierClient builds a notifier, auto-configuring an ID token client
// when the caller does not supply one.
func NewNotifierClient(client *http.Client, baseURL string) *NotifierClient {
	if baseURL == "" {
		panic("notifier baseURL must not be empty")
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if client == nil {
		idc, err := idtoken.NewClient(context.Background(), baseURL)
		if err != nil {
			client = &http.Client{Timeout: 10 * time.Second}
		} else {
			client = idc
		}
	}
	return &NotifierClient{client: client, baseURL: baseURL}
}

// NotifyScan posts the event to the worker's scan endpoint.
func (c *NotifierClient) NotifyScan(ctx context.Context, event ScanEvent, requestID string) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal scan event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/notifications/scan", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create notifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post scan event: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notifier returned status %d", resp.StatusCode)
	}
	return nil
}
