package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	var gotAgent, gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotHeader = r.Header.Get("X-Custom")
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.URL, FetchOptions{
		Headers: map[string]string{"X-Custom": "value"},
	})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("body = %q, want %q", data, "payload")
	}
	if !strings.HasPrefix(gotAgent, "hueforge/") {
		t.Errorf("User-Agent = %q, want hueforge/ prefix", gotAgent)
	}
	if gotHeader != "value" {
		t.Errorf("X-Custom = %q, want %q", gotHeader, "value")
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), server.URL, FetchOptions{}); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestFetchContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Fetch(ctx, server.URL, FetchOptions{}); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestFetchInvalidURL(t *testing.T) {
	if _, err := Fetch(context.Background(), "://not-a-url", FetchOptions{}); err == nil {
		t.Error("expected error for invalid URL")
	}
}
