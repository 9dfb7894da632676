package route

import (
	"html/template"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"courtside/src-server/catalog"
	"courtside/src-server/notify"
	"courtside/src-server/utils"
)

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"eventDate": func(t time.Time) string {
		return t.Format("Jan 2")
	},
	"price": func(p float64) string {
		return strconv.FormatFloat(p, 'f', -1, 64)
	},
}).Parse(tmplPage))

func Page(muxer *http.ServeMux, as *utils.AppState) {
	type BucketOption struct {
		Value    string
		Label    string
		Selected bool
	}

	type PageData struct {
		Sports      []string
		Criteria    catalog.Criteria
		When        string
		Buckets     []BucketOption
		Notices     []notify.Notice
		Events      []catalog.Event
		Total       int
		CatalogSize int
	}

	bucketLabels := []struct {
		bucket catalog.DateBucket
		label  string
	}{
		{catalog.BucketAny, "Any Date"},
		{catalog.BucketToday, "Today"},
		{catalog.BucketTomorrow, "Tomorrow"},
		{catalog.BucketWeek, "This Week"},
		{catalog.BucketMonth, "This Month"},
	}

	muxer.HandleFunc("GET /{$}", WithRequestLog(
		func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			sports := as.Catalog.Sports()

			sport := query.Get("sport")
			if sport != "" && !slices.Contains(sports, sport) {
				// category shortcuts may arrive sloppily cased
				sport = utils.NormalizeSport(sport)
			}

			criteria := catalog.Criteria{
				SearchText: strings.TrimSpace(query.Get("q")),
				Sport:      sport,
			}
			if bucket, err := catalog.ParseDateBucket(query.Get("date")); err == nil {
				criteria.DateBucket = bucket
			}
			whenStr := strings.TrimSpace(query.Get("when"))
			if whenStr != "" {
				if result, err := as.When.Parse(whenStr, as.Clock.Now()); err == nil && result != nil {
					criteria.On = result.Time
				}
			}

			events := as.Catalog.Filter(criteria)

			buckets := make([]BucketOption, 0, len(bucketLabels))
			for _, b := range bucketLabels {
				buckets = append(buckets, BucketOption{
					Value:    string(b.bucket),
					Label:    b.label,
					Selected: b.bucket == criteria.DateBucket,
				})
			}

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err := pageTmpl.Execute(w, PageData{
				Sports:      sports,
				Criteria:    criteria,
				When:        whenStr,
				Buckets:     buckets,
				Notices:     as.Notices.Recent(),
				Events:      events,
				Total:       len(events),
				CatalogSize: as.Catalog.Size(),
			}); err != nil {
				slog.Error("can't render events page", "error", err)
			}
		}))
}
