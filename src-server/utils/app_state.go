package utils

import (
	"database/sql"
	"log/slog"
	"os"
	"sync"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"courtside/src-server/catalog"
	"courtside/src-server/clock"
	"courtside/src-server/fetch"
	"courtside/src-server/notify"
)

type AppState struct {
	Config  *Config
	RawDB   *sql.DB
	BunDB   *bun.DB
	Clock   clock.Clock
	Catalog *catalog.Catalog
	Fetcher *fetch.Fetcher
	Notices *notify.Center
	When    *when.Parser

	MetricChans *Metric

	AppCloseSignalChan chan os.Signal

	gracefulShutdownMutex sync.Mutex
	gracefulShutdownChans []*chan struct{}
}

func NewAppState() *AppState {
	as := &AppState{}

	as.Config = NewConfig()
	as.Clock = clock.System()
	as.MetricChans = NewMetric()
	as.AppCloseSignalChan = make(chan os.Signal, 1)

	// natural-language dates for the "when" search box
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	as.Catalog = catalog.New(as.Clock, as.Config.GetLocation())
	as.Fetcher = fetch.New(as.Config.GetEventsApiUrl(), as.MetricChans.FeedFetch)
	as.Notices = notify.NewCenter(as.Config.GetDiscordWebhookID(), as.Config.GetDiscordWebhookToken())

	// database
	var err error
	as.RawDB, err = sql.Open(sqliteshim.ShimName, as.Config.GetSqlitePath()+"?mode=rwc")
	if err != nil {
		slog.Error("cannot open sqlite database", "error", err)
		os.Exit(1)
	}
	as.RawDB.SetMaxIdleConns(8)
	as.BunDB = bun.NewDB(as.RawDB, sqlitedialect.New())

	return as
}

// CreateGracefulShutdownChan hands out a channel that gets a value when the
// app is about to exit, so long-running goroutines can unregister metrics
// and stop cleanly.
func (as *AppState) CreateGracefulShutdownChan() *chan struct{} {
	as.gracefulShutdownMutex.Lock()
	defer as.gracefulShutdownMutex.Unlock()
	ch := make(chan struct{}, 1)
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, &ch)
	return &ch
}

func (as *AppState) GracefulShutdown() {
	as.gracefulShutdownMutex.Lock()
	defer as.gracefulShutdownMutex.Unlock()
	for _, ch := range as.gracefulShutdownChans {
		*ch <- struct{}{}
	}
	if err := as.BunDB.Close(); err != nil {
		slog.Warn("can't close database", "error", err)
	}
}
