package repositories

import (
	"sync"

	"todolist/internal/models"
)

// MockTaskRepository is an in-memory implementation of TaskRepository.
type MockTaskRepository struct {
	tasks  map[uint]models.Task
	nextID uint
	mu     sync.RWMutex
}

// NewMockTaskRepository creates a new instance of MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		tasks:  make(map[uint]models.Task),
		nextID: 1,
	}
}

// Create adds a new task, assigning the next sequential ID.
func (r *MockTaskRepository) Create(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == 0 {
		task.ID = r.nextID
		r.nextID++
	}
	r.tasks[task.ID] = *task
	return nil
}

// ListByUser returns the user's tasks with the given completion state in ID order.
func (r *MockTaskRepository) ListByUser(userID uint, done bool) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	taskList := make([]models.Task, 0)
	for id := uint(1); id < r.nextID; id++ {
		t, ok := r.tasks[id]
		if ok && t.UserID == userID && t.Done == done {
			taskList = append(taskList, t)
		}
	}
	return taskList, nil
}

// SetDone updates the completion flag of a task owned by userID.
func (r *MockTaskRepository) SetDone(userID, taskID uint, done bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return ErrNotFound
	}
	task.Done = done
	r.tasks[taskID] = task
	return nil
}

// Delete removes a task owned by userID.
func (r *MockTaskRepository) Delete(userID, taskID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return ErrNotFound
	}
	delete(r.tasks, taskID)
	return nil
}
