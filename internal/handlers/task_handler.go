package handlers

import (
	"errors"
	"log"

	"todolist/internal/middleware"
	"todolist/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles the task list pages. All of its routes must be
// registered behind middleware.SessionRequired.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// RegisterRoutes registers the task routes with the Fiber app.
func (h *TaskHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/tasks", h.HandleList)
	router.Post("/tasks", h.HandleCreate)
	router.Get("/done/:id", h.HandleDone)
	router.Get("/undo/:id", h.HandleUndo)
	router.Get("/delete/:id", h.HandleDelete)
}

// HandleList renders the current user's pending and completed tasks.
func (h *TaskHandler) HandleList(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	pending, done, err := h.taskService.List(user.ID)
	if err != nil {
		log.Printf("Error listing tasks for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	return render(c, "tasks", fiber.Map{
		"Username": user.Username,
		"Pending":  pending,
		"Done":     done,
		"Flash":    popFlash(c),
	})
}

// HandleCreate adds a task from the form field and redirects back to the
// list. An empty title is quietly ignored.
func (h *TaskHandler) HandleCreate(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	task, err := h.taskService.Create(user.ID, c.FormValue("task_title"))
	if err != nil {
		log.Printf("Error creating task for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	if task != nil {
		setFlash(c, "Task added.")
	}
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

// HandleDone marks a task completed.
func (h *TaskHandler) HandleDone(c *fiber.Ctx) error {
	return h.mutate(c, h.taskService.MarkDone)
}

// HandleUndo marks a task pending again.
func (h *TaskHandler) HandleUndo(c *fiber.Ctx) error {
	return h.mutate(c, h.taskService.MarkUndone)
}

// HandleDelete removes a task.
func (h *TaskHandler) HandleDelete(c *fiber.Ctx) error {
	return h.mutate(c, h.taskService.Delete)
}

// mutate runs a user-scoped single-task operation from the :id route
// parameter. Missing tasks and tasks owned by someone else both come out as
// a plain 404.
func (h *TaskHandler) mutate(c *fiber.Ctx, op func(userID, taskID uint) error) error {
	user := middleware.CurrentUser(c)
	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := op(user.ID, uint(taskID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error updating task %d for user %d: %v", taskID, user.ID, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}
