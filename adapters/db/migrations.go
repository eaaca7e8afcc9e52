package db

import (
	_ "embed"
	"fmt"
)

//go:embed migrations/01_create_tasks.up.sql
var createTasksUp string

// Migrate applies the tasks schema migration.
func (s *Store) Migrate() error {
	s.log.Debug("running tasks migrations")

	if _, err := s.conn.Exec(createTasksUp); err != nil {
		return fmt.Errorf("apply tasks migration: %w", err)
	}

	s.log.Debug("tasks migrations finished")
	return nil
}
