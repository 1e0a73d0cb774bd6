package rest

import (
	"context"
	"net/http"

	"github.com/KretovDmitry/canang-orders/internal/interface/api/rest/header"
	"github.com/KretovDmitry/canang-orders/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthController struct {
	db     Pinger
	logger logger.Logger
}

// NewHealthController registers the liveness probe and the metrics endpoint.
func NewHealthController(db Pinger, metrics http.Handler, logger logger.Logger, options ChiServerOptions) {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}

	c := HealthController{
		db:     db,
		logger: logger,
	}

	r.Group(func(r chi.Router) {
		for _, middleware := range options.Middlewares {
			r.Use(middleware)
		}
		r.Get(options.BaseURL+"/healthz", c.Healthz)
		r.Method(http.MethodGet, options.BaseURL+"/metrics", metrics)
	})
}

// Healthz reports whether the store answers (GET /healthz HTTP/1.1).
func (c *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	header.SetText(w)

	if err := c.db.PingContext(r.Context()); err != nil {
		c.logger.With(r.Context()).Errorf("health check: %s", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("unavailable"))
		return
	}

	_, _ = w.Write([]byte("ok"))
}
