package services

import (
	"errors"
	"fmt"
	"strings"

	"todolist/internal/models"
	"todolist/internal/repositories"
)

// TaskService handles business logic for a user's task list. Every operation
// is scoped to the authenticated user's ID.
type TaskService struct {
	repo repositories.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo repositories.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

// List returns the user's pending and completed tasks, each in creation order.
func (s *TaskService) List(userID uint) (pending, done []models.Task, err error) {
	pending, err = s.repo.ListByUser(userID, false)
	if err != nil {
		return nil, nil, err
	}
	done, err = s.repo.ListByUser(userID, true)
	if err != nil {
		return nil, nil, err
	}
	return pending, done, nil
}

// Create adds a task owned by userID. A title that is empty after trimming is
// a silent no-op: no row is created and no error is returned.
func (s *TaskService) Create(userID uint, title string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil
	}

	task := &models.Task{
		Title:  title,
		UserID: userID,
	}
	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// MarkDone marks the task completed. Returns ErrNotFound when the task does
// not exist or is owned by a different user.
func (s *TaskService) MarkDone(userID, taskID uint) error {
	return s.setDone(userID, taskID, true)
}

// MarkUndone clears the task's completion flag. Same ErrNotFound semantics as
// MarkDone.
func (s *TaskService) MarkUndone(userID, taskID uint) error {
	return s.setDone(userID, taskID, false)
}

// Delete removes the task. Same ErrNotFound semantics as MarkDone.
func (s *TaskService) Delete(userID, taskID uint) error {
	if err := s.repo.Delete(userID, taskID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *TaskService) setDone(userID, taskID uint, done bool) error {
	if err := s.repo.SetDone(userID, taskID, done); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
