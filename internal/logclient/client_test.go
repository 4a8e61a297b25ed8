package logclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devlog/internal/api"
	"devlog/internal/logclient"
)

func TestClientTail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/log/tail" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("lines"); got != "5" {
			t.Errorf("unexpected lines param: %q", got)
		}
		_ = json.NewEncoder(w).Encode(api.LogContent{Content: "[2026-08-29 10:00:00] hello"})
	}))
	t.Cleanup(server.Close)

	client, err := logclient.New(server.URL, "")
	if err != nil {
		t.Fatalf("logclient.New: %v", err)
	}

	payload, err := client.Tail(context.Background(), 5)
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if !strings.Contains(payload.Content, "hello") {
		t.Fatalf("unexpected content: %q", payload.Content)
	}
}

func TestClientWriteSendsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("missing bearer token: %q", got)
		}
		var body api.WriteBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text != "note" {
			t.Errorf("unexpected body: %+v err=%v", body, err)
		}
		_ = json.NewEncoder(w).Encode(api.WriteResult{Message: "ok"})
	}))
	t.Cleanup(server.Close)

	client, err := logclient.New(server.URL, "secret")
	if err != nil {
		t.Fatalf("logclient.New: %v", err)
	}

	result, err := client.Write(context.Background(), "note")
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if result.Message != "ok" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestClientSurfacesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "lines must be between 1 and 1000"})
	}))
	t.Cleanup(server.Close)

	client, err := logclient.New(server.URL, "")
	if err != nil {
		t.Fatalf("logclient.New: %v", err)
	}

	if _, err := client.Tail(context.Background(), 5); err == nil {
		t.Fatal("expected error for 400 response")
	} else if !strings.Contains(err.Error(), "lines must be") {
		t.Fatalf("error body not surfaced: %v", err)
	}
}

func TestNilClientUnavailable(t *testing.T) {
	var client *logclient.Client
	if _, err := client.Tail(context.Background(), 5); !logclient.IsAPIUnavailable(err) {
		t.Fatalf("expected ErrAPIUnavailable, got %v", err)
	}
}
