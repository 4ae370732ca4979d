package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "nelo-tasks.com/nelo-tasks/internal/errors"
	middleware "nelo-tasks.com/nelo-tasks/internal/http/middlewares"
	"nelo-tasks.com/nelo-tasks/internal/http/validators"
	"nelo-tasks.com/nelo-tasks/internal/services"
	"nelo-tasks.com/nelo-tasks/internal/view"
)

// NotifyConfig carries the fixed scheduler settings the handler arms the
// scheduler with when notifications are enabled.
type NotifyConfig struct {
	Period      time.Duration
	SendTimeout time.Duration
}

type Handler struct {
	tasks     *services.TaskService
	sessions  *services.SessionService
	scheduler *services.SchedulerService
	notify    NotifyConfig
}

func NewHandler(
	tasks *services.TaskService,
	sessions *services.SessionService,
	scheduler *services.SchedulerService,
	notify NotifyConfig,
) *Handler {
	return &Handler{
		tasks:     tasks,
		sessions:  sessions,
		scheduler: scheduler,
		notify:    notify,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	token, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"email": req.Email,
	})
}

// Logout tears down the session and, since this is a single-user service,
// the notification scheduler with it.
func (h *Handler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context(), middleware.TokenFrom(c)); err != nil {
		return httpError(err)
	}

	h.scheduler.Stop()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var payload validators.TaskPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	input, err := validators.CreateInput(payload)
	if err != nil {
		return httpError(err)
	}

	task, err := h.tasks.Create(c.Request().Context(), input)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	var payload validators.TaskPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	patch, err := validators.UpdateInput(payload)
	if err != nil {
		return httpError(err)
	}

	task, err := h.tasks.Update(c.Request().Context(), id, patch)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	deleted := h.tasks.Delete(c.Request().Context(), id)
	return c.JSON(http.StatusOK, echo.Map{
		"deleted": deleted,
	})
}

func (h *Handler) ToggleTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	task, err := h.tasks.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	task, err := h.tasks.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// ListTasks returns the composed view: the stored collection narrowed by the
// filter category and search query.
func (h *Handler) ListTasks(c echo.Context) error {
	filter, err := view.ParseFilter(c.QueryParam("filter"))
	if err != nil {
		return httpError(err)
	}
	query := c.QueryParam("q")

	tasks := h.tasks.List(c.Request().Context())
	composed := view.Compose(tasks, filter, query)

	return c.JSON(http.StatusOK, echo.Map{
		"count":  len(composed),
		"tasks":  composed,
		"filter": filter,
		"query":  query,
	})
}

func (h *Handler) NotificationStatus(c echo.Context) error {
	resp := echo.Map{
		"enabled":        h.scheduler.Running(),
		"period_seconds": int(h.scheduler.Period().Seconds()),
	}

	if status := h.scheduler.LastStatus(); status != nil {
		resp["last_status"] = status
	}
	if sentAt := h.scheduler.LastSentAt(); !sentAt.IsZero() {
		resp["last_sent_at"] = sentAt
	}

	return c.JSON(http.StatusOK, resp)
}

// EnableNotifications arms the scheduler against the logged-in identity. A
// scheduler already running is re-armed, never left firing on stale inputs.
func (h *Handler) EnableNotifications(c echo.Context) error {
	session := middleware.SessionFrom(c)

	err := h.scheduler.Start(services.SchedulerConfig{
		Recipient:   session.Email,
		Period:      h.notify.Period,
		SendTimeout: h.notify.SendTimeout,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"enabled":        true,
		"period_seconds": int(h.scheduler.Period().Seconds()),
	})
}

func (h *Handler) DisableNotifications(c echo.Context) error {
	h.scheduler.Stop()
	return c.JSON(http.StatusOK, echo.Map{
		"enabled": false,
	})
}

func httpError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}
