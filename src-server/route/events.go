package route

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"courtside/src-server/catalog"
	"courtside/src-server/fetch"
	"courtside/src-server/notify"
	"courtside/src-server/scheduler"
	"courtside/src-server/utils"
)

func Events(muxer *http.ServeMux, as *utils.AppState) {
	type OneEventRespBody struct {
		ID    string  `json:"id"`
		Title string  `json:"title"`
		Sport string  `json:"sport"`
		Venue string  `json:"venue"`
		Date  string  `json:"date"`
		Price float64 `json:"price"`
		Image string  `json:"image"`
	}

	type EventsRespBody struct {
		Events []OneEventRespBody `json:"events"`
		Total  int                `json:"total"`
	}

	toRespBody := func(event catalog.Event) OneEventRespBody {
		return OneEventRespBody{
			ID:    event.ID,
			Title: event.Title,
			Sport: event.Sport,
			Venue: event.Venue,
			Date:  event.Date.Format(time.RFC3339),
			Price: event.Price,
			Image: event.Image,
		}
	}

	// filtered event listing
	muxer.HandleFunc("GET /api/events", WithRequestLog(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			criteria, ok := criteriaFromQuery(w, r, as)
			if !ok {
				return
			}
			if !criteria.IsZero() {
				as.Notices.Push("Searching for events...", notify.SeverityInfo, "")
			}

			events := as.Catalog.Filter(criteria)
			respBody := EventsRespBody{
				Events: make([]OneEventRespBody, 0, len(events)),
				Total:  len(events),
			}
			for _, event := range events {
				respBody.Events = append(respBody.Events, toRespBody(event))
			}

			respBodyJson, err := json.Marshal(respBody)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"message":"Can't marshal response body"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write(respBodyJson)
		}))

	// single event lookup
	muxer.HandleFunc("GET /api/events/{id}", WithRequestLog(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			event, ok := as.Catalog.FindByID(r.PathValue("id"))
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"message":"Event not found"}`))
				return
			}

			respBodyJson, err := json.Marshal(toRespBody(event))
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"message":"Can't marshal response body"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write(respBodyJson)
		}))

	// manual refresh, the retry affordance behind error notices
	muxer.HandleFunc("POST /api/events/refresh", WithRequestLog(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			if err := scheduler.RefreshOnce(r.Context(), as); err != nil {
				slog.Warn("manual refresh failed", "error", err)
				switch {
				case errors.Is(err, fetch.ErrUpstream):
					w.WriteHeader(http.StatusBadGateway)
					w.Write([]byte(`{"message":"Could not load events. Please try again or contact support."}`))
				case errors.Is(err, catalog.ErrNotArray), errors.Is(err, catalog.ErrNoValidEvents):
					w.WriteHeader(http.StatusBadGateway)
					w.Write([]byte(`{"message":"Events feed returned unusable data."}`))
				default:
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"message":"Refresh failed"}`))
				}
				return
			}

			w.WriteHeader(http.StatusOK)
			respBodyJson, _ := json.Marshal(struct {
				Total int `json:"total"`
			}{Total: as.Catalog.Size()})
			w.Write(respBodyJson)
		}))

	// notice feed backing the toast area
	muxer.HandleFunc("GET /api/notices", WithRequestLog(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			respBodyJson, err := json.Marshal(as.Notices.Recent())
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"message":"Can't marshal response body"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write(respBodyJson)
		}))
}

// criteriaFromQuery builds filter criteria from the q/sport/date/when query
// parameters, writing a 400 and returning ok=false when they don't parse.
func criteriaFromQuery(w http.ResponseWriter, r *http.Request, as *utils.AppState) (catalog.Criteria, bool) {
	query := r.URL.Query()
	criteria := catalog.Criteria{
		SearchText: strings.TrimSpace(query.Get("q")),
		Sport:      query.Get("sport"),
	}

	bucket, err := catalog.ParseDateBucket(query.Get("date"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Unknown date filter"}`))
		return catalog.Criteria{}, false
	}
	criteria.DateBucket = bucket

	// "when" takes a natural-language phrase like "next friday"
	if whenStr := strings.TrimSpace(query.Get("when")); whenStr != "" {
		result, err := as.When.Parse(whenStr, as.Clock.Now())
		if err != nil || result == nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Can't understand that date"}`))
			return catalog.Criteria{}, false
		}
		criteria.On = result.Time
	}

	return criteria, true
}
