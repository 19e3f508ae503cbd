package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskmaster/taskmaster-api/internal/apierrors"
	"github.com/taskmaster/taskmaster-api/internal/dto"
	"github.com/taskmaster/taskmaster-api/internal/store"
)

type TaskHandler struct {
	store store.Gateway
}

func NewTaskHandler(gw store.Gateway) *TaskHandler {
	return &TaskHandler{store: gw}
}

// CreateTask creates a new task. The backend assigns id and timestamps.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		apierrors.UnprocessableEntity(c, err.Error())
		return
	}

	task, err := h.store.Create(draft)
	if err != nil {
		apierrors.InternalError(c, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks returns tasks matching the query filters, newest first.
// Without a user_id filter this spans every owner's tasks; that openness is
// inherited behavior, kept pending a product decision on tenant scoping.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter, err := dto.ListTasksFilter(c)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	tasks, err := h.store.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask returns a single task by id.
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.store.GetByID(c.Param("task_id"))
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask overwrites title, description and priority.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		apierrors.UnprocessableEntity(c, err.Error())
		return
	}

	task, err := h.store.Update(c.Param("task_id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, task)
}

// CompleteTask marks a task completed.
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	task, err := h.store.MarkComplete(c.Param("task_id"))
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask hard-deletes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.store.Delete(c.Param("task_id")); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}
