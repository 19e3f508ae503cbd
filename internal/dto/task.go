package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskmaster/taskmaster-api/internal/models"
	"github.com/taskmaster/taskmaster-api/internal/store"
)

// CreateTaskRequest mirrors the create payload. Title and user_id are
// structural requirements enforced by binding; the priority range check
// happens in ToDraft before any persistence call.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	UserID      string  `json:"user_id" binding:"required"`
}

func (r CreateTaskRequest) ToDraft() (models.Draft, error) {
	return models.NewDraft(r.Title, r.Description, r.Priority, r.UserID)
}

// UpdateTaskRequest accepts only the mutable fields. user_id and is_completed
// have no place here, so extra fields in the raw body are stripped rather
// than rejected.
type UpdateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
}

func (r UpdateTaskRequest) ToPatch() (models.Patch, error) {
	return models.NewPatch(r.Title, r.Description, r.Priority)
}

const (
	DefaultSkip  = 0
	DefaultLimit = 10
)

// ListTasksFilter extracts skip, limit, user_id and completed from the query
// string. A malformed completed value is a client error, not a silent
// no-filter.
func ListTasksFilter(c *gin.Context) (store.Filter, error) {
	filter := store.Filter{
		Skip:  DefaultSkip,
		Limit: DefaultLimit,
	}

	if v := c.Query("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil || skip < 0 {
			return store.Filter{}, &QueryError{Param: "skip"}
		}
		filter.Skip = skip
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return store.Filter{}, &QueryError{Param: "limit"}
		}
		filter.Limit = limit
	}
	if v := c.Query("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := c.Query("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			return store.Filter{}, &QueryError{Param: "completed"}
		}
		filter.Completed = &completed
	}

	return filter, nil
}

// QueryError marks a malformed query parameter.
type QueryError struct {
	Param string
}

func (e *QueryError) Error() string {
	return "invalid query parameter: " + e.Param
}
