package repositories

import (
	"fmt"

	"todolist/internal/models"

	"gorm.io/gorm"
)

// GORMTaskRepository is a GORM implementation of TaskRepository.
type GORMTaskRepository struct {
	db *gorm.DB
}

// NewGORMTaskRepository creates a new instance of GORMTaskRepository.
func NewGORMTaskRepository(db *gorm.DB) *GORMTaskRepository {
	return &GORMTaskRepository{
		db: db,
	}
}

// Create inserts a new task.
func (r *GORMTaskRepository) Create(task *models.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// ListByUser returns the user's tasks with the given completion state, in
// insertion order.
func (r *GORMTaskRepository) ListByUser(userID uint, done bool) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("user_id = ? AND done = ?", userID, done).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for user %d: %w", userID, err)
	}
	return tasks, nil
}

// SetDone updates the completion flag of a single task owned by userID. A
// zero-row update means the task does not exist or belongs to someone else;
// the two cases are indistinguishable to the caller.
func (r *GORMTaskRepository) SetDone(userID, taskID uint, done bool) error {
	res := r.db.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Update("done", done)
	if res.Error != nil {
		return fmt.Errorf("failed to update task %d: %w", taskID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a single task owned by userID. Same not-found semantics as
// SetDone.
func (r *GORMTaskRepository) Delete(userID, taskID uint) error {
	res := r.db.Delete(&models.Task{}, "id = ? AND user_id = ?", taskID, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
