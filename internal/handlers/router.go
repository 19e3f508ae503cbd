package handlers

import (
	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/taskmaster/taskmaster-api/internal/middleware"
	"github.com/taskmaster/taskmaster-api/internal/store"
)

// NewRouter assembles the full HTTP surface on top of a gateway.
func NewRouter(gw store.Gateway, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Default())

	healthHandler := NewHealthHandler(gw)
	taskHandler := NewTaskHandler(gw)

	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)

	tasks := r.Group("/tasks")
	{
		tasks.POST("/", taskHandler.CreateTask)
		tasks.GET("/", taskHandler.ListTasks)
		tasks.GET("/:task_id", taskHandler.GetTask)
		tasks.PUT("/:task_id", taskHandler.UpdateTask)
		tasks.PUT("/:task_id/complete", taskHandler.CompleteTask)
		tasks.DELETE("/:task_id", taskHandler.DeleteTask)
	}

	return r
}
