package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNotifierClient_NotifyScan(t *testing.T) {
	var gotPath, gotRequestID string
	var gotEvent ScanEvent

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		if err := json.NewDecoder(r.Body).Decode(&gotEvent); err != nil {
			t.Errorf("decode event: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewNotifierClient(server.Client(), server.URL+"/")
	event := ScanEvent{ContactID: "abc", DisplayName: "Jane Doe", Category: "Technology", Score: 90, ScannedAt: time.Now().UTC()}

	if err := client.NotifyScan(context.Background(), event, "req-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/notifications/scan" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotRequestID != "req-123" {
		t.Fatalf("unexpected request id: %q", gotRequestID)
	}
	if gotEvent.DisplayName != "Jane Doe" || gotEvent.Score != 90 {
		t.Fatalf("unexpected event: %+v", gotEvent)
	}
}

func TestNotifierClient_NotifyScanFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewNotifierClient(server.Client(), server.URL)
	if err := client.NotifyScan(context.Background(), ScanEvent{}, ""); err == nil {
		t.Fatalf("expected error on non-2xx status")
	}
}
