package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"todo-list-service/core"
	"todo-list-service/pkg/res"
)

func NewHealthHandler(log *slog.Logger, svc core.Tasks, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if !svc.HealthCheck(ctx) {
			log.Warn("health check failed")
			res.Json(w, map[string]string{
				"status":   "unhealthy",
				"database": "disconnected",
			}, http.StatusServiceUnavailable)
			return
		}
		res.Json(w, map[string]string{
			"status":   "healthy",
			"database": "connected",
		}, http.StatusOK)
	}
}
