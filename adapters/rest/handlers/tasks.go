package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"todo-list-service/adapters/rest"
	"todo-list-service/core"
	"todo-list-service/pkg/res"
)

func parseStatus(s string) (core.TaskStatus, bool) {
	st := core.TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	if !core.IsValidStatus(st) {
		return "", false
	}
	return st, true
}

func logUnexpected(log *slog.Logger, op string, err error) {
	if errors.Is(err, core.ErrTaskNotFound) || errors.Is(err, core.ErrTaskInvalidArgs) {
		return
	}
	log.Error(op+" failed", "error", err)
}

func NewCreateTaskHandler(log *slog.Logger, svc core.Tasks, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		status := core.StatusPending
		if in.Status != nil {
			st, ok := parseStatus(*in.Status)
			if !ok {
				res.Error(w, "invalid status", http.StatusBadRequest)
				return
			}
			status = st
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.CreateTask(ctx, in.Title, in.Description, in.DueDate, status)
		if err != nil {
			logUnexpected(log, "create task", err)
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, t, http.StatusCreated)
	}
}

func NewGetTaskHandler(log *slog.Logger, svc core.Tasks, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.GetTask(ctx, id)
		if err != nil {
			logUnexpected(log, "get task", err)
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, t, http.StatusOK)
	}
}

func NewListTasksHandler(log *slog.Logger, svc core.Tasks, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter *core.TaskStatus
		if s := r.URL.Query().Get("status"); s != "" {
			st, ok := parseStatus(s)
			if !ok {
				res.Error(w, "invalid status", http.StatusBadRequest)
				return
			}
			filter = &st
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListTasks(ctx, filter)
		if err != nil {
			logUnexpected(log, "list tasks", err)
			rest.WriteErr(w, err)
			return
		}
		if items == nil {
			items = []core.Task{}
		}
		res.Json(w, rest.TaskListOut{Tasks: items, Count: len(items)}, http.StatusOK)
	}
}

func NewUpdateTaskHandler(log *slog.Logger, svc core.Tasks, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.UpdateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p := core.TaskPatch{
			Title:       in.Title,
			Description: in.Description,
			DueDate:     in.DueDate,
		}
		if in.Status != nil {
			st, ok := parseStatus(*in.Status)
			if !ok {
				res.Error(w, "invalid status", http.StatusBadRequest)
				return
			}
			p.Status = &st
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		// an empty patch is allowed: it reads back the current record
		t, err := svc.UpdateTask(ctx, id, p)
		if err != nil {
			logUnexpected(log, "update task", err)
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, t, http.StatusOK)
	}
}

func NewDeleteTaskHandler(log *slog.Logger, svc core.Tasks, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		deleted, err := svc.DeleteTask(ctx, id)
		if err != nil {
			logUnexpected(log, "delete task", err)
			rest.WriteErr(w, err)
			return
		}
		if !deleted {
			res.Error(w, "task not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
