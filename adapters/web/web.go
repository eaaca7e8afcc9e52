// Package web serves the server-rendered HTML interface on top of the same
// task service the REST API uses.
package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"todo-list-service/core"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Handler struct {
	log     *slog.Logger
	svc     core.Tasks
	timeout time.Duration
}

func Register(mux *http.ServeMux, log *slog.Logger, svc core.Tasks, timeout time.Duration) {
	h := &Handler{log: log, svc: svc, timeout: timeout}

	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /add", h.AddForm)
	mux.HandleFunc("POST /tasks/create", h.Create)
	mux.HandleFunc("POST /tasks/{id}/update-status", h.UpdateStatus)
	mux.HandleFunc("POST /tasks/{id}/delete", h.Delete)
}

type indexData struct {
	Tasks           []core.Task
	StatusFilter    string
	Message         string
	MessageType     string
	TotalCount      int
	PendingCount    int
	InProgressCount int
	CompletedCount  int
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	data := indexData{
		Message:     r.URL.Query().Get("message"),
		MessageType: r.URL.Query().Get("message_type"),
	}

	all, err := h.svc.ListTasks(ctx, nil)
	if err != nil {
		h.log.Error("index: list tasks failed", "error", err)
		data.Message = "Error loading tasks"
		data.MessageType = "error"
		h.render(w, "index.html", data)
		return
	}

	data.Tasks = all
	data.TotalCount = len(all)
	for _, t := range all {
		switch t.Status {
		case core.StatusPending:
			data.PendingCount++
		case core.StatusInProgress:
			data.InProgressCount++
		case core.StatusCompleted:
			data.CompletedCount++
		}
	}

	if s := r.URL.Query().Get("status"); s != "" {
		st := core.TaskStatus(s)
		if core.IsValidStatus(st) {
			filtered, err := h.svc.ListTasks(ctx, &st)
			if err != nil {
				h.log.Error("index: filtered list failed", "error", err)
			} else {
				data.Tasks = filtered
				data.StatusFilter = s
			}
		}
	}

	h.render(w, "index.html", data)
}

type addFormData struct {
	Message     string
	MessageType string
}

func (h *Handler) AddForm(w http.ResponseWriter, _ *http.Request) {
	h.render(w, "add_task.html", addFormData{})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	title := r.FormValue("title")

	var description *string
	if d := r.FormValue("description"); d != "" {
		description = &d
	}

	// a malformed date from the form is dropped, not fatal
	var dueDate *core.Date
	if raw := r.FormValue("due_date"); raw != "" {
		d, err := core.ParseDate(raw)
		if err != nil {
			h.log.Warn("invalid due date in form", "value", raw)
		} else {
			dueDate = &d
		}
	}

	status := core.TaskStatus(r.FormValue("status"))
	if status == "" {
		status = core.StatusPending
	}

	if _, err := h.svc.CreateTask(ctx, title, description, dueDate, status); err != nil {
		h.log.Error("create task via form failed", "error", err)
		h.render(w, "add_task.html", addFormData{
			Message:     "Error creating task",
			MessageType: "error",
		})
		return
	}

	redirectWithMessage(w, r, "Task created successfully")
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		redirectWithMessage(w, r, "Invalid task id")
		return
	}

	status := core.TaskStatus(r.FormValue("status"))

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if _, err := h.svc.UpdateTask(ctx, id, core.TaskPatch{Status: &status}); err != nil {
		h.log.Error("update status via form failed", "id", id, "error", err)
		redirectWithMessage(w, r, "Error updating task")
		return
	}
	redirectWithMessage(w, r, "Task updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		redirectWithMessage(w, r, "Invalid task id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	deleted, err := h.svc.DeleteTask(ctx, id)
	if err != nil {
		h.log.Error("delete via form failed", "id", id, "error", err)
		redirectWithMessage(w, r, "Error deleting task")
		return
	}
	if !deleted {
		redirectWithMessage(w, r, "Task not found")
		return
	}
	redirectWithMessage(w, r, "Task deleted successfully")
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("render failed", "template", name, "error", err)
	}
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?message="+url.QueryEscape(msg), http.StatusSeeOther)
}
