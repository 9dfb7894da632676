package catalog

import (
	"fmt"
	"strconv"
	"time"
)

// Event is one sellable ticketed occurrence from the upstream feed.
// Immutable once loaded.
type Event struct {
	ID    string
	Title string
	Sport string
	Venue string
	Date  time.Time
	Price float64
	Image string
}

// eventPayload is the wire shape of one feed element. Price is a pointer
// because 0 is a valid price and must be distinguishable from absent.
type eventPayload struct {
	ID    any      `json:"id" validate:"required"`
	Title string   `json:"title" validate:"required"`
	Sport string   `json:"sport" validate:"required"`
	Venue string   `json:"venue" validate:"required"`
	Date  string   `json:"date" validate:"required"`
	Price *float64 `json:"price" validate:"required,gte=0"`
	Image string   `json:"image" validate:"required"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseEventDate(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable event date %q", raw)
}

// The feed is loose about id types; numbers and strings both occur.
func stringifyID(id any) (string, error) {
	switch v := id.(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("event id is blank")
		}
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fmt.Errorf("event id has unusable type %T", id)
	}
}

func (p *eventPayload) toEvent(loc *time.Location) (Event, error) {
	id, err := stringifyID(p.ID)
	if err != nil {
		return Event{}, err
	}
	date, err := parseEventDate(p.Date, loc)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:    id,
		Title: p.Title,
		Sport: p.Sport,
		Venue: p.Venue,
		Date:  date,
		Price: *p.Price,
		Image: p.Image,
	}, nil
}
