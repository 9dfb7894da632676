package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"courtside/src-server/clock"
)

// Catalog owns the authoritative event list and the currently filtered
// view. HTTP handlers read it while the refresh scheduler writes it, so
// one RWMutex guards both sequences; they are always replaced wholesale,
// never mutated element-by-element.
type Catalog struct {
	clk      clock.Clock
	location *time.Location
	validate *validator.Validate

	mu            sync.RWMutex
	allEvents     []Event
	visibleEvents []Event
	criteria      Criteria
}

func New(clk clock.Clock, loc *time.Location) *Catalog {
	if loc == nil {
		loc = time.Local
	}
	return &Catalog{
		clk:      clk,
		location: loc,
		validate: validator.New(),
	}
}

// Load replaces the catalog with the validated contents of a feed payload.
// Elements failing validation are dropped silently (debug log only, never
// reported per-element). On any error the prior state is left untouched.
func (c *Catalog) Load(raw json.RawMessage) ([]Event, error) {
	var payloads []json.RawMessage
	if err := json.Unmarshal(raw, &payloads); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotArray, err)
	}
	// JSON null decodes into a nil slice without error
	if payloads == nil {
		return nil, fmt.Errorf("%w: payload is null", ErrNotArray)
	}

	events := make([]Event, 0, len(payloads))
	for i, elem := range payloads {
		var payload eventPayload
		if err := json.Unmarshal(elem, &payload); err != nil {
			slog.Debug("dropping undecodable event", "index", i, "error", err)
			continue
		}
		if err := c.validate.Struct(&payload); err != nil {
			slog.Debug("dropping invalid event", "index", i, "error", err)
			continue
		}
		event, err := payload.toEvent(c.location)
		if err != nil {
			slog.Debug("dropping invalid event", "index", i, "error", err)
			continue
		}
		events = append(events, event)
	}
	if len(events) == 0 {
		return nil, ErrNoValidEvents
	}

	c.mu.Lock()
	c.allEvents = events
	c.visibleEvents = append([]Event(nil), events...)
	c.criteria = Criteria{}
	c.mu.Unlock()

	return append([]Event(nil), events...), nil
}

// Restore seeds the catalog from an already-validated snapshot (warm start
// from the local cache). Same state replacement as Load, no validation.
func (c *Catalog) Restore(events []Event) {
	c.mu.Lock()
	c.allEvents = append([]Event(nil), events...)
	c.visibleEvents = append([]Event(nil), events...)
	c.criteria = Criteria{}
	c.mu.Unlock()
}

// Filter recomputes the visible view. Pure in (allEvents, criteria, now):
// order is preserved and calling it twice with the same criteria and the
// same clock reading yields the same result.
func (c *Catalog) Filter(cr Criteria) []Event {
	now := c.clk.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	visible := make([]Event, 0, len(c.allEvents))
	for _, ev := range c.allEvents {
		if cr.matches(ev, now, c.location) {
			visible = append(visible, ev)
		}
	}
	c.criteria = cr
	c.visibleEvents = visible

	return append([]Event(nil), visible...)
}

// FindByID scans allEvents in load order; first match wins.
func (c *Catalog) FindByID(id string) (Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ev := range c.allEvents {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}

func (c *Catalog) All() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Event(nil), c.allEvents...)
}

func (c *Catalog) Visible() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Event(nil), c.visibleEvents...)
}

func (c *Catalog) Criteria() Criteria {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.criteria
}

func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.allEvents)
}

func (c *Catalog) VisibleSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.visibleEvents)
}

// Sports lists the distinct sport labels present in the catalog, in first
// appearance order. Feeds the filter dropdown and the category shortcuts.
func (c *Catalog) Sports() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]struct{}, len(c.allEvents))
	sports := make([]string, 0)
	for _, ev := range c.allEvents {
		if _, ok := seen[ev.Sport]; ok {
			continue
		}
		seen[ev.Sport] = struct{}{}
		sports = append(sports, ev.Sport)
	}
	return sports
}
