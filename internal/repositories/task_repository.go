package repositories

import "todolist/internal/models"

// TaskRepository defines the interface for task data access. Every method is
// scoped by the owning user's ID; a task belonging to another user behaves
// exactly like a task that does not exist.
type TaskRepository interface {
	Create(task *models.Task) error
	ListByUser(userID uint, done bool) ([]models.Task, error)
	SetDone(userID, taskID uint, done bool) error
	Delete(userID, taskID uint) error
}
