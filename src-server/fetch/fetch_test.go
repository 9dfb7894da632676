package fetch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"courtside/src-server/fetch"
)

func TestFetchReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Write([]byte(`[{"id":1}]`))
	}))
	defer server.Close()

	body, err := fetch.New(server.URL, nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if string(body) != `[{"id":1}]` {
		t.Errorf("unexpected body %q", body)
	}
}

func TestFetchWrapsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	if _, err := fetch.New(server.URL, nil).Fetch(context.Background()); !errors.Is(err, fetch.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestFetchWrapsConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	if _, err := fetch.New(server.URL, nil).Fetch(context.Background()); !errors.Is(err, fetch.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestFetchReportsLatency(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	latencyCh := make(chan float64, 1)
	if _, err := fetch.New(server.URL, latencyCh).Fetch(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	select {
	case latency := <-latencyCh:
		if latency < 0 {
			t.Errorf("negative latency %v", latency)
		}
	default:
		t.Error("no latency reported")
	}
}
