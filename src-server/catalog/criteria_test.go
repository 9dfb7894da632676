package catalog_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"courtside/src-server/catalog"
	"courtside/src-server/clock"
)

// Friday 2025-05-30 14:30 local.
var bucketNow = time.Date(2025, 5, 30, 14, 30, 0, 0, time.UTC)

func loadDatedEvents(t *testing.T, c *catalog.Catalog, dates map[string]string) {
	t.Helper()
	payload := "["
	first := true
	for id, date := range dates {
		if !first {
			payload += ","
		}
		first = false
		payload += fmt.Sprintf(
			`{"id":%q,"title":"t","sport":"Soccer","venue":"v","date":%q,"price":1,"image":"i"}`,
			id, date)
	}
	payload += "]"
	if _, err := c.Load(json.RawMessage(payload)); err != nil {
		t.Fatalf("load failed: %v", err)
	}
}

func idsOf(events []catalog.Event) map[string]bool {
	ids := make(map[string]bool, len(events))
	for _, ev := range events {
		ids[ev.ID] = true
	}
	return ids
}

func TestBucketToday(t *testing.T) {
	c := catalog.New(clock.Fixed(bucketNow), time.UTC)
	loadDatedEvents(t, c, map[string]string{
		"early":    "2025-05-30",          // midnight today, still today
		"tonight":  "2025-05-30T20:00:00", // later today
		"tomorrow": "2025-05-31",
		"past":     "2025-05-29",
	})
	ids := idsOf(c.Filter(catalog.Criteria{DateBucket: catalog.BucketToday}))
	if len(ids) != 2 || !ids["early"] || !ids["tonight"] {
		t.Errorf("today bucket = %v", ids)
	}
}

func TestBucketTomorrow(t *testing.T) {
	c := catalog.New(clock.Fixed(bucketNow), time.UTC)
	loadDatedEvents(t, c, map[string]string{
		"today":    "2025-05-30",
		"tomorrow": "2025-05-31T09:00:00",
		"after":    "2025-06-01",
	})
	ids := idsOf(c.Filter(catalog.Criteria{DateBucket: catalog.BucketTomorrow}))
	if len(ids) != 1 || !ids["tomorrow"] {
		t.Errorf("tomorrow bucket = %v", ids)
	}
}

func TestBucketWeek(t *testing.T) {
	c := catalog.New(clock.Fixed(bucketNow), time.UTC)
	loadDatedEvents(t, c, map[string]string{
		"before":   "2025-05-30T10:00:00", // earlier than now, excluded
		"in":       "2025-06-02",
		"boundary": "2025-06-06T14:30:00", // exactly now+7d, inclusive
		"out":      "2025-06-06T14:30:01",
	})
	ids := idsOf(c.Filter(catalog.Criteria{DateBucket: catalog.BucketWeek}))
	if len(ids) != 2 || !ids["in"] || !ids["boundary"] {
		t.Errorf("week bucket = %v", ids)
	}
}

func TestBucketMonth(t *testing.T) {
	c := catalog.New(clock.Fixed(bucketNow), time.UTC)
	loadDatedEvents(t, c, map[string]string{
		"in":       "2025-06-15",
		"boundary": "2025-06-30T14:30:00", // exactly now+1 calendar month
		"out":      "2025-07-01",
		"past":     "2025-05-01",
	})
	ids := idsOf(c.Filter(catalog.Criteria{DateBucket: catalog.BucketMonth}))
	if len(ids) != 2 || !ids["in"] || !ids["boundary"] {
		t.Errorf("month bucket = %v", ids)
	}
}

func TestBucketAnyMatchesEverything(t *testing.T) {
	c := catalog.New(clock.Fixed(bucketNow), time.UTC)
	loadDatedEvents(t, c, map[string]string{
		"past":   "2020-01-01",
		"future": "2030-01-01",
	})
	if got := c.Filter(catalog.Criteria{}); len(got) != 2 {
		t.Errorf("any bucket should keep all events, got %d", len(got))
	}
}

func TestOnDay(t *testing.T) {
	c := catalog.New(clock.Fixed(bucketNow), time.UTC)
	loadDatedEvents(t, c, map[string]string{
		"match": "2025-06-06T19:00:00",
		"other": "2025-06-07",
	})
	on := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	ids := idsOf(c.Filter(catalog.Criteria{On: on}))
	if len(ids) != 1 || !ids["match"] {
		t.Errorf("on-day filter = %v", ids)
	}
}

func TestParseDateBucket(t *testing.T) {
	for _, raw := range []string{"", "today", "tomorrow", "week", "month"} {
		if _, err := catalog.ParseDateBucket(raw); err != nil {
			t.Errorf("ParseDateBucket(%q) failed: %v", raw, err)
		}
	}
	if _, err := catalog.ParseDateBucket("fortnight"); err == nil {
		t.Error("expected error for unknown bucket")
	}
}

func TestBucketsUseConfiguredTimezone(t *testing.T) {
	// 23:30 UTC on the 30th is already the 31st in UTC+5
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2025, 5, 30, 23, 30, 0, 0, time.UTC)
	c := catalog.New(clock.Fixed(now), loc)
	loadDatedEvents(t, c, map[string]string{
		// parsed in UTC+5: event is on the 31st there
		"ev": "2025-05-31T08:00:00",
	})
	if got := c.Filter(catalog.Criteria{DateBucket: catalog.BucketToday}); len(got) != 1 {
		t.Errorf("expected event to count as today in UTC+5, got %d", len(got))
	}
}
