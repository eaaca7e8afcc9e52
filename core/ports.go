package core

import "context"

// Store is the persistence port implemented by adapters/db and by test
// fakes. Each method maps to a single statement against the tasks table.
type Store interface {
	HealthCheck(ctx context.Context) bool

	CreateTask(ctx context.Context, title string, description *string, dueDate *Date, status TaskStatus) (Task, error)
	GetTask(ctx context.Context, id int64) (Task, error)
	ListTasks(ctx context.Context, status *TaskStatus) ([]Task, error)
	UpdateTask(ctx context.Context, id int64, p TaskPatch) (Task, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
	CountTasks(ctx context.Context) (int64, error)
}

// Tasks is the service port consumed by the REST and web adapters.
type Tasks interface {
	HealthCheck(ctx context.Context) bool

	CreateTask(ctx context.Context, title string, description *string, dueDate *Date, status TaskStatus) (Task, error)
	GetTask(ctx context.Context, id int64) (Task, error)
	ListTasks(ctx context.Context, status *TaskStatus) ([]Task, error)
	UpdateTask(ctx context.Context, id int64, p TaskPatch) (Task, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
	CountTasks(ctx context.Context) (int64, error)
}
