package services_test

import (
	"testing"

	"todolist/internal/repositories"
	"todolist/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestTaskService_CreateAndList(t *testing.T) {
	taskService := services.NewTaskService(repositories.NewMockTaskRepository())

	task, err := taskService.Create(1, "buy milk")
	assert.NoError(t, err)
	assert.NotNil(t, task)
	assert.False(t, task.Done)

	pending, done, err := taskService.List(1)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "buy milk", pending[0].Title)
	assert.False(t, pending[0].Done)
	assert.Empty(t, done)
}

func TestTaskService_CreateEmptyTitleIsNoOp(t *testing.T) {
	taskService := services.NewTaskService(repositories.NewMockTaskRepository())

	task, err := taskService.Create(1, "")
	assert.NoError(t, err)
	assert.Nil(t, task)

	task, err = taskService.Create(1, "   ")
	assert.NoError(t, err)
	assert.Nil(t, task)

	pending, done, err := taskService.List(1)
	assert.NoError(t, err)
	assert.Empty(t, pending)
	assert.Empty(t, done)
}

func TestTaskService_ListPreservesInsertionOrder(t *testing.T) {
	taskService := services.NewTaskService(repositories.NewMockTaskRepository())

	for _, title := range []string{"first", "second", "third"} {
		_, err := taskService.Create(1, title)
		assert.NoError(t, err)
	}

	pending, _, err := taskService.List(1)
	assert.NoError(t, err)
	assert.Len(t, pending, 3)
	assert.Equal(t, "first", pending[0].Title)
	assert.Equal(t, "second", pending[1].Title)
	assert.Equal(t, "third", pending[2].Title)
}

func TestTaskService_MarkDoneRoundTrip(t *testing.T) {
	taskService := services.NewTaskService(repositories.NewMockTaskRepository())

	task, err := taskService.Create(1, "buy milk")
	assert.NoError(t, err)

	assert.NoError(t, taskService.MarkDone(1, task.ID))
	pending, done, err := taskService.List(1)
	assert.NoError(t, err)
	assert.Empty(t, pending)
	assert.Len(t, done, 1)
	assert.True(t, done[0].Done)

	assert.NoError(t, taskService.MarkUndone(1, task.ID))
	pending, done, err = taskService.List(1)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.False(t, pending[0].Done)
	assert.Empty(t, done)
}

func TestTaskService_Delete(t *testing.T) {
	taskService := services.NewTaskService(repositories.NewMockTaskRepository())

	task, err := taskService.Create(1, "buy milk")
	assert.NoError(t, err)

	assert.NoError(t, taskService.Delete(1, task.ID))
	pending, done, err := taskService.List(1)
	assert.NoError(t, err)
	assert.Empty(t, pending)
	assert.Empty(t, done)

	assert.ErrorIs(t, taskService.Delete(1, task.ID), services.ErrNotFound)
}

func TestTaskService_CrossUserAccessIsNotFound(t *testing.T) {
	taskService := services.NewTaskService(repositories.NewMockTaskRepository())

	task, err := taskService.Create(1, "alice's task")
	assert.NoError(t, err)

	// User 2 cannot touch user 1's task; the error matches a missing task
	assert.ErrorIs(t, taskService.MarkDone(2, task.ID), services.ErrNotFound)
	assert.ErrorIs(t, taskService.MarkUndone(2, task.ID), services.ErrNotFound)
	assert.ErrorIs(t, taskService.Delete(2, task.ID), services.ErrNotFound)

	// The task is untouched for its owner
	pending, _, err := taskService.List(1)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)

	// User 2's own list is empty
	pending, done, err := taskService.List(2)
	assert.NoError(t, err)
	assert.Empty(t, pending)
	assert.Empty(t, done)
}
