package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"rompefaja/internal/order/controller"
)

func NewRouter(orders *controller.OrdersController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orders.ListOrders)
		r.Get("/buckets", orders.GetBuckets)
		r.Get("/stats", orders.GetStats)
		r.Post("/refresh", orders.Refresh)
		r.Post("/{orderId}/status", orders.UpdateStatus)
		r.Put("/filter", orders.SetFilter)
		r.Delete("/filter", orders.ClearFilter)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", orders.ListNotifications)
		r.Post("/sound", orders.ToggleSound)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
