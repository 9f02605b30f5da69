package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "github.com/maiquockhanh06/Timeflow-app/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/by-date/:date", h.TasksByDate)
	e.GET("/tasks/:id", h.GetTask)
	e.POST("/tasks/:id/status", h.UpdateTaskStatus)
	e.GET("/agenda", h.Agenda)

	e.GET("/categories", h.ListCategories)
	e.POST("/categories", h.CreateCategory)
	e.DELETE("/categories/:id", h.DeleteCategory)

	e.GET("/calendar", h.Calendar)
	e.POST("/events", h.CreateEvent)
	e.POST("/share-codes", h.CreateShareCode)
	e.GET("/shared/:code", h.SharedEvent)

	e.GET("/statistics", h.Statistics)
	e.GET("/preferences", h.GetPreferences)
	e.PUT("/preferences", h.UpdatePreferences)
}
