package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "nelo-tasks.com/nelo-tasks/internal/http/middlewares"
	model "nelo-tasks.com/nelo-tasks/internal/models"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/login", h.Login)

	auth := middleware.SessionAuth(func(c echo.Context, token string) (*model.Session, error) {
		return h.sessions.Identity(c.Request().Context(), token)
	})

	g := e.Group("", auth)
	g.POST("/logout", h.Logout)

	g.POST("/tasks", h.CreateTask)
	g.GET("/tasks", h.ListTasks)
	g.GET("/tasks/:id", h.GetTask)
	g.PUT("/tasks/:id", h.UpdateTask)
	g.DELETE("/tasks/:id", h.DeleteTask)
	g.POST("/tasks/:id/toggle", h.ToggleTask)

	g.GET("/notifications/status", h.NotificationStatus)
	g.POST("/notifications/enable", h.EnableNotifications)
	g.POST("/notifications/disable", h.DisableNotifications)
}
