package core_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"todo-list-service/core"
)

// fakeStore is an in-memory core.Store. Its clock advances one second per
// write so created_at ordering is deterministic.
type fakeStore struct {
	mu sync.RWMutex

	nextID  int64
	now     time.Time
	healthy bool

	tasks map[int64]core.Task
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:  1,
		now:     time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		healthy: true,
		tasks:   make(map[int64]core.Task),
	}
}

func (s *fakeStore) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func cloneTask(t core.Task) core.Task {
	out := t
	if t.Description != nil {
		d := *t.Description
		out.Description = &d
	}
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	return out
}

func (s *fakeStore) HealthCheck(context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.healthy
}

func (s *fakeStore) CreateTask(_ context.Context, title string, description *string, dueDate *core.Date, status core.TaskStatus) (core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !core.IsValidStatus(status) {
		return core.Task{}, core.ErrTaskInvalidArgs
	}

	id := s.nextID
	s.nextID++

	now := s.tick()
	task := core.Task{
		ID:          id,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.tasks[id] = cloneTask(task)
	return cloneTask(task), nil
}

func (s *fakeStore) GetTask(_ context.Context, id int64) (core.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return core.Task{}, core.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (s *fakeStore) ListTasks(_ context.Context, status *core.TaskStatus) ([]core.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if status != nil && task.Status != *status {
			continue
		}
		out = append(out, cloneTask(task))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (s *fakeStore) UpdateTask(_ context.Context, id int64, p core.TaskPatch) (core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tasks[id]
	if !ok {
		return core.Task{}, core.ErrTaskNotFound
	}

	if p.Empty() {
		return cloneTask(current), nil
	}

	if p.Title != nil {
		current.Title = *p.Title
	}
	if p.Description != nil {
		d := *p.Description
		current.Description = &d
	}
	if p.DueDate != nil {
		d := *p.DueDate
		current.DueDate = &d
	}
	if p.Status != nil {
		if !core.IsValidStatus(*p.Status) {
			return core.Task{}, core.ErrTaskInvalidArgs
		}
		current.Status = *p.Status
	}
	current.UpdatedAt = s.tick()

	s.tasks[id] = cloneTask(current)
	return cloneTask(current), nil
}

func (s *fakeStore) DeleteTask(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}
	delete(s.tasks, id)
	return true, nil
}

func (s *fakeStore) CountTasks(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.tasks)), nil
}

var _ core.Store = (*fakeStore)(nil)
