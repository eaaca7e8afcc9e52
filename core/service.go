package core

import (
	"context"
	"strings"
	"unicode/utf8"
)

const maxTitleLen = 255

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

var _ Tasks = (*Service)(nil)

func (s *Service) HealthCheck(ctx context.Context) bool {
	return s.store.HealthCheck(ctx)
}

func validTitle(title string) bool {
	return title != "" && utf8.RuneCountInString(title) <= maxTitleLen
}

func (s *Service) CreateTask(ctx context.Context, title string, description *string, dueDate *Date, status TaskStatus) (Task, error) {
	title = strings.TrimSpace(title)
	if !validTitle(title) {
		return Task{}, ErrTaskInvalidArgs
	}
	if status == "" {
		status = StatusPending
	}
	if !IsValidStatus(status) {
		return Task{}, ErrTaskInvalidArgs
	}
	return s.store.CreateTask(ctx, title, description, dueDate, status)
}

func (s *Service) GetTask(ctx context.Context, id int64) (Task, error) {
	return s.store.GetTask(ctx, id)
}

func (s *Service) ListTasks(ctx context.Context, status *TaskStatus) ([]Task, error) {
	if status != nil && !IsValidStatus(*status) {
		return nil, ErrTaskInvalidArgs
	}
	return s.store.ListTasks(ctx, status)
}

// UpdateTask overwrites only the fields set in p. An empty patch is not an
// error: it degenerates to a plain read and leaves updated_at untouched.
func (s *Service) UpdateTask(ctx context.Context, id int64, p TaskPatch) (Task, error) {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if !validTitle(title) {
			return Task{}, ErrTaskInvalidArgs
		}
		p.Title = &title
	}
	if p.Status != nil && !IsValidStatus(*p.Status) {
		return Task{}, ErrTaskInvalidArgs
	}
	return s.store.UpdateTask(ctx, id, p)
}

func (s *Service) DeleteTask(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteTask(ctx, id)
}

func (s *Service) CountTasks(ctx context.Context) (int64, error) {
	return s.store.CountTasks(ctx)
}
