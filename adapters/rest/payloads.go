package rest

import "todo-list-service/core"

type CreateTaskIn struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *core.Date `json:"due_date,omitempty"`
	Status      *string    `json:"status,omitempty"` // pending|in_progress|completed
}

type UpdateTaskIn struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *core.Date `json:"due_date,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

type TaskListOut struct {
	Tasks []core.Task `json:"tasks"`
	Count int         `json:"count"`
}
