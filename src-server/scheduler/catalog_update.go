package scheduler

import (
	"context"
	"log/slog"
	"time"

	"courtside/src-server/model"
	"courtside/src-server/notify"
	"courtside/src-server/utils"
)

// CatalogUpdate keeps the in-memory catalog in sync with the upstream
// feed. On boot it warm-starts from the sqlite snapshot so the site has
// content even when the feed is down, then refreshes on the configured
// interval. A failed refresh never clobbers the previous catalog.
func CatalogUpdate(as *utils.AppState) {
	warmStart(as)

	for {
		if err := RefreshOnce(context.Background(), as); err != nil {
			slog.Warn("CatalogUpdate: refresh failed", "error", err)
		}
		time.Sleep(as.Config.GetCatalogRefreshInterval())
	}
}

// RefreshOnce runs one fetch → load → snapshot pass. Also what the manual
// refresh endpoint invokes.
func RefreshOnce(ctx context.Context, as *utils.AppState) error {
	raw, err := as.Fetcher.Fetch(ctx)
	if err != nil {
		as.Notices.Push(
			"Could not load events. Please try again or contact support.",
			notify.SeverityError,
			"/api/events/refresh",
		)
		return err
	}

	events, err := as.Catalog.Load(raw)
	if err != nil {
		as.Notices.Push(
			"Could not load events. Please try again or contact support.",
			notify.SeverityError,
			"/api/events/refresh",
		)
		return err
	}

	// snapshot failure is not fatal; the catalog is already updated
	startTimer := time.Now()
	if err := model.ReplaceAll(ctx, as.BunDB, events, as.Clock.Now()); err != nil {
		slog.Warn("RefreshOnce: can't snapshot catalog", "error", err)
	} else {
		select {
		case as.MetricChans.DatabaseWrite <- float64(time.Since(startTimer).Microseconds()):
		default:
		}
	}

	slog.Info("catalog refreshed", "events", len(events))
	as.Notices.Push("Events loaded successfully!", notify.SeveritySuccess, "")
	return nil
}

func warmStart(as *utils.AppState) {
	if as.Catalog.Size() > 0 {
		return
	}
	events, err := model.LoadAll(context.Background(), as.BunDB, as.Config.GetLocation())
	if err != nil {
		slog.Warn("warmStart: can't read catalog snapshot", "error", err)
		return
	}
	if len(events) == 0 {
		return
	}
	as.Catalog.Restore(events)
	slog.Info("catalog warm-started from snapshot", "events", len(events))
}
