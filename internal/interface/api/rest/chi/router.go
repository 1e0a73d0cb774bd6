package rest

import (
	"net/http"
	"time"

	"github.com/KretovDmitry/canang-orders/internal/metrics"
	"github.com/KretovDmitry/canang-orders/pkg/accesslog"
	"github.com/KretovDmitry/canang-orders/pkg/logger"
	"github.com/KretovDmitry/canang-orders/pkg/unzip"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nanmu42/gzip"
)

// InitChi creates the root router with the middlewares shared by every route.
func InitChi(logger logger.Logger, metrics *metrics.Metrics, requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(accesslog.Handler(logger))
	router.Use(metrics.Middleware)
	router.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}
	router.Use(gzip.DefaultHandler().WrapHandler)
	router.Use(unzip.Middleware(logger))

	return router
}

type (
	MiddlewareFunc func(http.Handler) http.Handler

	ChiServerOptions struct {
		BaseRouter  chi.Router
		BaseURL     string
		Middlewares []MiddlewareFunc
	}
)
