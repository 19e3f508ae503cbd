package dto

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/taskmaster-api/internal/models"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/tasks/", nil)
	c.Request.URL.RawQuery = rawQuery
	return c
}

func TestListTasksFilter_Defaults(t *testing.T) {
	filter, err := ListTasksFilter(queryContext(t, ""))
	require.NoError(t, err)

	assert.Equal(t, DefaultSkip, filter.Skip)
	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Nil(t, filter.UserID)
	assert.Nil(t, filter.Completed)
}

func TestListTasksFilter_AllParams(t *testing.T) {
	filter, err := ListTasksFilter(queryContext(t, "skip=5&limit=20&user_id=u1&completed=true"))
	require.NoError(t, err)

	assert.Equal(t, 5, filter.Skip)
	assert.Equal(t, 20, filter.Limit)
	require.NotNil(t, filter.UserID)
	assert.Equal(t, "u1", *filter.UserID)
	require.NotNil(t, filter.Completed)
	assert.True(t, *filter.Completed)
}

func TestListTasksFilter_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		param string
	}{
		{"bad completed", "completed=maybe", "completed"},
		{"bad skip", "skip=abc", "skip"},
		{"negative skip", "skip=-1", "skip"},
		{"bad limit", "limit=ten", "limit"},
		{"negative limit", "limit=-5", "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ListTasksFilter(queryContext(t, tt.query))
			require.Error(t, err)

			var qerr *QueryError
			require.ErrorAs(t, err, &qerr)
			assert.Equal(t, tt.param, qerr.Param)
		})
	}
}

func TestCreateTaskRequest_ToDraft(t *testing.T) {
	req := CreateTaskRequest{Title: "Buy milk", UserID: "u1"}
	draft, err := req.ToDraft()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPriority, draft.Priority)

	p := 7
	req.Priority = &p
	_, err = req.ToDraft()
	assert.ErrorIs(t, err, models.ErrPriorityOutOfRange)
}

// The update DTO has no user_id or is_completed fields, so protected fields
// in a raw payload are dropped during decoding instead of being rejected.
func TestUpdateTaskRequest_StripsProtectedFields(t *testing.T) {
	raw := []byte(`{"title":"New title","priority":2,"user_id":"intruder","is_completed":true}`)

	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal(raw, &req))

	patch, err := req.ToPatch()
	require.NoError(t, err)
	assert.Equal(t, "New title", patch.Title)
	assert.Equal(t, 2, patch.Priority)
}
