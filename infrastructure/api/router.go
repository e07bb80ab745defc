// Package api mounts the HTTP surface of the presence service: the websocket
// upgrade, a health endpoint and the Prometheus scrape endpoint.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"sharemyshows-live/runtime"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Snapshotter answers once the presence loop caught up with its inbox.
type Snapshotter interface {
	Snapshot(ctx context.Context) (runtime.Stats, error)
}

type Config struct {
	CORSOrigins      []string
	ConnectRateLimit int
	HealthTimeout    time.Duration
}

type healthResponse struct {
	Status string         `json:"status"`
	Stats  *runtime.Stats `json:"stats,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// NewRouter wires /ws behind a per-IP rate limit; the other routes are unlimited
// so a scraper never competes with connecting clients.
func NewRouter(log *slog.Logger, ws http.Handler, snapshotter Snapshotter,
	gatherer prometheus.Gatherer, config Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Group(func(r chi.Router) {
		if config.ConnectRateLimit > 0 {
			r.Use(httprate.Limit(config.ConnectRateLimit, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					log.Warn("Connection rate limit reached", "remote", r.RemoteAddr)
					http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				}),
			))
		}
		r.Handle("/ws", ws)
	})

	r.Get("/healthz", health(snapshotter, config.HealthTimeout))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

// health reports 503 when the presence loop does not drain its inbox in time.
func health(snapshotter Snapshotter, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		status := http.StatusOK
		body := healthResponse{Status: "ok"}
		stats, err := snapshotter.Snapshot(ctx)
		if err != nil {
			status = http.StatusServiceUnavailable
			body = healthResponse{Status: "unavailable", Error: err.Error()}
		} else {
			body.Stats = &stats
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
