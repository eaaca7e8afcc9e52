package db

import (
	"testing"
	"time"

	"todo-list-service/core"
)

func TestBuildListQuery_NoFilter(t *testing.T) {
	t.Parallel()

	q, args := buildListQuery(nil)
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	want := `SELECT id, title, description, due_date, status, created_at, updated_at FROM tasks ORDER BY created_at DESC`
	if q != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", q, want)
	}
}

func TestBuildListQuery_WithStatus(t *testing.T) {
	t.Parallel()

	status := core.StatusPending
	q, args := buildListQuery(&status)
	want := `SELECT id, title, description, due_date, status, created_at, updated_at FROM tasks WHERE status = $1 ORDER BY created_at DESC`
	if q != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", q, want)
	}
	if len(args) != 1 || args[0] != "pending" {
		t.Fatalf("expected bound status arg, got %v", args)
	}
}

func TestBuildUpdateQuery_SingleField(t *testing.T) {
	t.Parallel()

	status := core.StatusCompleted
	q, args := buildUpdateQuery(7, core.TaskPatch{Status: &status})

	want := `UPDATE tasks SET status = $1, updated_at = now() WHERE id = $2 RETURNING id, title, description, due_date, status, created_at, updated_at`
	if q != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", q, want)
	}
	if len(args) != 2 || args[0] != "completed" || args[1] != int64(7) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildUpdateQuery_AllFields(t *testing.T) {
	t.Parallel()

	title := "new title"
	desc := "new description"
	due := core.NewDate(2025, time.December, 31)
	status := core.StatusInProgress

	q, args := buildUpdateQuery(3, core.TaskPatch{
		Title:       &title,
		Description: &desc,
		DueDate:     &due,
		Status:      &status,
	})

	want := `UPDATE tasks SET title = $1, description = $2, due_date = $3, status = $4, updated_at = now() WHERE id = $5 RETURNING id, title, description, due_date, status, created_at, updated_at`
	if q != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", q, want)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d", len(args))
	}
	if args[0] != title || args[1] != desc || args[3] != "in_progress" || args[4] != int64(3) {
		t.Fatalf("unexpected args: %v", args)
	}
}
