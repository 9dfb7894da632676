package metric

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"courtside/src-server/utils"
)

func catalogEvents(as *utils.AppState, tickerInterval *time.Duration) {
	catalogEvents := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courtside_catalog_events",
		Help: "Number of events in the loaded catalog",
	})
	good := true
	if err := prometheus.Register(catalogEvents); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register courtside_catalog_events metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("courtside_catalog_events metric registered")
		catalogEvents.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		ticker := time.NewTicker(*tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(catalogEvents) {
				case true:
					slog.Debug("courtside_catalog_events metric unregistered")
				case false:
					slog.Warn("courtside_catalog_events metric not registered")
				}
				return
			case <-ticker.C:
				catalogEvents.Set(float64(as.Catalog.Size()))
			}
		}
	}()
}

func visibleEvents(as *utils.AppState, tickerInterval *time.Duration) {
	visibleEvents := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courtside_visible_events",
		Help: "Number of events passing the current filter",
	})
	good := true
	if err := prometheus.Register(visibleEvents); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register courtside_visible_events metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("courtside_visible_events metric registered")
		visibleEvents.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		ticker := time.NewTicker(*tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(visibleEvents) {
				case true:
					slog.Debug("courtside_visible_events metric unregistered")
				case false:
					slog.Warn("courtside_visible_events metric not registered")
				}
				return
			case <-ticker.C:
				visibleEvents.Set(float64(as.Catalog.VisibleSize()))
			}
		}
	}()
}

func feedFetch(as *utils.AppState, clearTickerInterval *time.Duration) {
	feedFetch := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courtside_feed_fetch_microsec",
		Help: "The latency of the last events feed fetch in microseconds",
	})
	good := true
	if err := prometheus.Register(feedFetch); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register courtside_feed_fetch_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("courtside_feed_fetch_microsec metric registered")
		feedFetch.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(feedFetch) {
				case true:
					slog.Debug("courtside_feed_fetch_microsec metric unregistered")
				case false:
					slog.Warn("courtside_feed_fetch_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.FeedFetch:
				feedFetch.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				feedFetch.Set(0)
			}
		}
	}()
}

func databaseWrite(as *utils.AppState, clearTickerInterval *time.Duration) {
	databaseWrite := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courtside_database_write_microsec",
		Help: "The latency of a catalog snapshot write in microseconds",
	})
	good := true
	if err := prometheus.Register(databaseWrite); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register courtside_database_write_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("courtside_database_write_microsec metric registered")
		databaseWrite.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(databaseWrite) {
				case true:
					slog.Debug("courtside_database_write_microsec metric unregistered")
				case false:
					slog.Warn("courtside_database_write_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.DatabaseWrite:
				databaseWrite.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				databaseWrite.Set(0)
			}
		}
	}()
}

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := as.Config.GetMetricCollectionInterval() * 2

	catalogEvents(as, &tickerInterval)
	visibleEvents(as, &tickerInterval)
	feedFetch(as, &clearTickerInterval)
	databaseWrite(as, &clearTickerInterval)
}
