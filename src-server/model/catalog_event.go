package model

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/uptrace/bun"

	"courtside/src-server/catalog"
)

// CatalogEvent caches one event of the last successfully loaded catalog so
// the site can come up with content while the upstream feed is down. The
// in-memory catalog never reads this except at warm start.
type CatalogEvent struct {
	bun.BaseModel `bun:"table:catalog_events"`

	ID    string `bun:"id,pk,notnull"` // required
	Title string `bun:"title,notnull"` // required
	Sport string `bun:"sport,notnull"` // required
	Venue string `bun:"venue,notnull"` // required

	DateUnixUTC int64   `bun:"date_unix_utc,notnull"` // required
	Price       float64 `bun:"price,notnull"`
	Image       string  `bun:"image,notnull"` // required

	// preserves feed insertion order across restarts
	Position int `bun:"position,notnull"`

	FetchedAtUnixUTC int64 `bun:"fetched_at_unix_utc,notnull"`
}

// ReplaceAll swaps the cached snapshot for a fresh catalog in one tx,
// mirroring the wholesale replacement the in-memory catalog does.
func ReplaceAll(ctx context.Context, db *bun.DB, events []catalog.Event, fetchedAt time.Time) error {
	if db == nil {
		return fmt.Errorf("ReplaceAll: db is nil")
	}
	if err := db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*CatalogEvent)(nil)).
			Where("1 = 1").
			Exec(ctx); err != nil {
			return fmt.Errorf("can't delete old snapshot: %w", err)
		}

		eventModels := make([]CatalogEvent, 0, len(events))
		for i, event := range events {
			eventModels = append(eventModels, CatalogEvent{
				ID:               event.ID,
				Title:            event.Title,
				Sport:            event.Sport,
				Venue:            event.Venue,
				DateUnixUTC:      event.Date.UTC().Unix(),
				Price:            event.Price,
				Image:            event.Image,
				Position:         i,
				FetchedAtUnixUTC: fetchedAt.UTC().Unix(),
			})
		}
		if len(eventModels) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().
			Model(&eventModels).
			Exec(ctx); err != nil {
			return fmt.Errorf("can't insert snapshot: %w", err)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("ReplaceAll: %w", err)
	}
	return nil
}

// LoadAll reads the cached snapshot back in feed order.
func LoadAll(ctx context.Context, db bun.IDB, loc *time.Location) ([]catalog.Event, error) {
	if db == nil {
		return nil, fmt.Errorf("LoadAll: db is nil")
	}
	eventModels := make([]CatalogEvent, 0)
	if err := db.NewSelect().
		Model(&eventModels).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("LoadAll: %w", err)
	}
	sort.Slice(eventModels, func(i, j int) bool {
		return eventModels[i].Position < eventModels[j].Position
	})

	events := make([]catalog.Event, 0, len(eventModels))
	for _, eventModel := range eventModels {
		events = append(events, catalog.Event{
			ID:    eventModel.ID,
			Title: eventModel.Title,
			Sport: eventModel.Sport,
			Venue: eventModel.Venue,
			Date:  time.Unix(eventModel.DateUnixUTC, 0).In(loc),
			Price: eventModel.Price,
			Image: eventModel.Image,
		})
	}
	return events, nil
}
