package catalog

import (
	"fmt"
	"strings"
	"time"
)

// DateBucket is a named relative date range used by the date filter
// dropdown.
type DateBucket string

const (
	BucketAny      DateBucket = ""
	BucketToday    DateBucket = "today"
	BucketTomorrow DateBucket = "tomorrow"
	BucketWeek     DateBucket = "week"
	BucketMonth    DateBucket = "month"
)

func ParseDateBucket(raw string) (DateBucket, error) {
	switch DateBucket(raw) {
	case BucketAny, BucketToday, BucketTomorrow, BucketWeek, BucketMonth:
		return DateBucket(raw), nil
	default:
		return BucketAny, fmt.Errorf("unknown date bucket %q", raw)
	}
}

// Criteria narrows the catalog. All clauses are AND-combined; zero values
// mean "don't filter on this".
type Criteria struct {
	// case-insensitive substring of title or venue
	SearchText string
	// exact, case-sensitive sport label
	Sport string
	// relative range computed against "now"
	DateBucket DateBucket
	// a specific calendar day (the "when" natural-language box);
	// zero means unset
	On time.Time
}

func (cr Criteria) IsZero() bool {
	return cr.SearchText == "" && cr.Sport == "" &&
		cr.DateBucket == BucketAny && cr.On.IsZero()
}

func (cr Criteria) matches(ev Event, now time.Time, loc *time.Location) bool {
	if cr.SearchText != "" {
		needle := strings.ToLower(cr.SearchText)
		if !strings.Contains(strings.ToLower(ev.Title), needle) &&
			!strings.Contains(strings.ToLower(ev.Venue), needle) {
			return false
		}
	}
	if cr.Sport != "" && ev.Sport != cr.Sport {
		return false
	}
	if !cr.On.IsZero() && !sameDay(ev.Date.In(loc), cr.On.In(loc)) {
		return false
	}
	return cr.DateBucket.matches(ev.Date, now, loc)
}

func (b DateBucket) matches(date, now time.Time, loc *time.Location) bool {
	date = date.In(loc)
	now = now.In(loc)
	switch b {
	case BucketToday:
		return sameDay(date, now)
	case BucketTomorrow:
		return sameDay(date, now.AddDate(0, 0, 1))
	case BucketWeek:
		return !date.Before(now) && !date.After(now.AddDate(0, 0, 7))
	case BucketMonth:
		return !date.Before(now) && !date.After(now.AddDate(0, 1, 0))
	default:
		return true
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
