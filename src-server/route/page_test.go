package route_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func getPage(t *testing.T, muxer *http.ServeMux, target string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	muxer.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	return rec.Body.String()
}

func TestPageRendersCards(t *testing.T) {
	as := newTestAppState(t, "http://unused.invalid")
	loadFeed(t, as)
	muxer := newTestMux(t, as)

	body := getPage(t, muxer, "/")
	for _, want := range []string{
		"NBA Finals",
		"World Cup",
		"Arena A",
		"From</span> $50",
		"Book Now",
		"Basketball",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestPageFiltersBySportParam(t *testing.T) {
	as := newTestAppState(t, "http://unused.invalid")
	loadFeed(t, as)
	muxer := newTestMux(t, as)

	body := getPage(t, muxer, "/?sport=Soccer")
	if strings.Contains(body, "NBA Finals") {
		t.Error("basketball event leaked through soccer filter")
	}
	if !strings.Contains(body, "World Cup") {
		t.Error("soccer event missing")
	}
}

func TestPageNormalizesSloppySportParam(t *testing.T) {
	as := newTestAppState(t, "http://unused.invalid")
	loadFeed(t, as)
	muxer := newTestMux(t, as)

	// category shortcut arriving lowercased still hits the label
	body := getPage(t, muxer, "/?sport=basketball")
	if !strings.Contains(body, "NBA Finals") {
		t.Error("normalized sport param did not match")
	}
	if strings.Contains(body, "World Cup") {
		t.Error("other sports leaked through")
	}
}

func TestPageEmptyState(t *testing.T) {
	as := newTestAppState(t, "http://unused.invalid")
	loadFeed(t, as)
	muxer := newTestMux(t, as)

	body := getPage(t, muxer, "/?q=curling")
	if !strings.Contains(body, "No events found") {
		t.Error("empty state panel missing")
	}
	if !strings.Contains(body, "Try adjusting your search criteria") {
		t.Error("empty state hint missing")
	}
}

func TestPageEscapesEventFields(t *testing.T) {
	as := newTestAppState(t, "http://unused.invalid")
	payload := `[
		{"id":1,"title":"<script>alert(1)</script>","sport":"Soccer","venue":"V","date":"2025-06-01","price":10,"image":"x"}
	]`
	if _, err := as.Catalog.Load([]byte(payload)); err != nil {
		t.Fatal(err)
	}
	muxer := newTestMux(t, as)

	body := getPage(t, muxer, "/")
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("event title not escaped")
	}
}
