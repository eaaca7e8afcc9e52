package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"todo-list-service/core"
)

func Register(mux *http.ServeMux, log *slog.Logger, svc core.Tasks, timeout time.Duration) {
	mux.Handle("GET /health", NewHealthHandler(log, svc, timeout))

	mux.Handle("POST /api/tasks", NewCreateTaskHandler(log, svc, timeout))
	mux.Handle("GET /api/tasks", NewListTasksHandler(log, svc, timeout))
	mux.Handle("GET /api/tasks/{id}", NewGetTaskHandler(log, svc, timeout))
	mux.Handle("PUT /api/tasks/{id}", NewUpdateTaskHandler(log, svc, timeout))
	mux.Handle("DELETE /api/tasks/{id}", NewDeleteTaskHandler(log, svc, timeout))
}
