package utils

import (
	"log/slog"
	"net/url"
	"os"
	"time"
)

type Config struct {
	port         string
	eventsApiUrl string
	sqlitePath   string
	location     *time.Location
	refreshEvery time.Duration
	metricEvery  time.Duration
	webhookID    string
	webhookToken string
}

func NewConfig() *Config {
	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		eventsApiUrl: func() string {
			eventsApiUrl := os.Getenv("EVENTS_API_URL")
			if eventsApiUrl == "" {
				slog.Error("EVENTS_API_URL is not set")
				os.Exit(1)
			}
			if _, err := url.ParseRequestURI(eventsApiUrl); err != nil {
				slog.Error("invalid EVENTS_API_URL", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "EVENTS_API_URL", eventsApiUrl)
			return eventsApiUrl
		}(),

		sqlitePath: func() string {
			sqlitePath := os.Getenv("SQLITE_PATH")
			if sqlitePath == "" {
				sqlitePath = "./sqlite.db"
			}
			slog.Debug("env", "SQLITE_PATH", sqlitePath)
			return sqlitePath
		}(),

		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				slog.Warn("TIMEZONE is not set, using local timezone", "timezone", time.Local)
				loc = time.Local
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),

		refreshEvery: func() time.Duration {
			refreshStr := os.Getenv("CATALOG_REFRESH_INTERVAL")
			if refreshStr == "" {
				refreshStr = "15m"
			}
			duration, err := time.ParseDuration(refreshStr)
			if err != nil {
				slog.Error("invalid CATALOG_REFRESH_INTERVAL", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "CATALOG_REFRESH_INTERVAL", refreshStr, "duration", duration)
			return duration
		}(),

		metricEvery: func() time.Duration {
			metricStr := os.Getenv("METRIC_COLLECTION_INTERVAL")
			if metricStr == "" {
				metricStr = "15s"
			}
			duration, err := time.ParseDuration(metricStr)
			if err != nil {
				slog.Error("invalid METRIC_COLLECTION_INTERVAL", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "METRIC_COLLECTION_INTERVAL", metricStr, "duration", duration)
			return duration
		}(),

		// both optional; leave blank to disable operator alerts
		webhookID: func() string {
			webhookID := os.Getenv("DISCORD_WEBHOOK_ID")
			if webhookID == "" {
				slog.Warn("DISCORD_WEBHOOK_ID is not set, operator alerts disabled")
			}
			return webhookID
		}(),
		webhookToken: os.Getenv("DISCORD_WEBHOOK_TOKEN"),
	}
}

func (c *Config) GetPort() string {
	return c.port
}

func (c *Config) GetEventsApiUrl() string {
	return c.eventsApiUrl
}

func (c *Config) GetSqlitePath() string {
	return c.sqlitePath
}

func (c *Config) GetLocation() *time.Location {
	return c.location
}

func (c *Config) GetCatalogRefreshInterval() time.Duration {
	return c.refreshEvery
}

func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricEvery
}

func (c *Config) GetDiscordWebhookID() string {
	return c.webhookID
}

func (c *Config) GetDiscordWebhookToken() string {
	return c.webhookToken
}
