package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/maiquockhanh06/Timeflow-app/internal/data_models"
	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
	"github.com/maiquockhanh06/Timeflow-app/internal/http/validators"
	"github.com/maiquockhanh06/Timeflow-app/internal/services"
)

// Handler serves a single owner; the owner id comes from configuration.
type Handler struct {
	services *services.Services
	ownerID  string
}

func NewHandler(svcs *services.Services, ownerID string) *Handler {
	return &Handler{
		services: svcs,
		ownerID:  ownerID,
	}
}

// toHTTPError maps engine errors to their status code. Unexpected errors
// are logged and reported without detail.
func toHTTPError(err error) error {
	exc, ok := apperrors.As(err)
	if !ok || exc.Kind == apperrors.KindInternal {
		log.Printf("request failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return echo.NewHTTPError(exc.StatusCode, dto.ErrorResponse{
		Message: exc.Message,
		Count:   exc.Count,
	})
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
			return he
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	return nil
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	in, err := validators.ValidateCreateTaskRequest(&req)
	if err != nil {
		return toHTTPError(err)
	}

	task, err := h.services.Tasks.CreateTask(c.Request().Context(), h.ownerID, in)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, err := h.services.Tasks.GetTask(c.Request().Context(), h.ownerID, id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	filter, err := validators.ParseStatusParam(c.QueryParam("status"))
	if err != nil {
		return toHTTPError(err)
	}

	ctx := c.Request().Context()

	tasks, err := h.services.Tasks.ListByFilter(ctx, h.ownerID, filter)
	if err != nil {
		return toHTTPError(err)
	}
	counts, err := h.services.Tasks.CountByStatus(ctx, h.ownerID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":  len(tasks),
		"tasks":  tasks,
		"counts": counts,
	})
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	var req dto.UpdateTaskStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	status, err := validators.ValidateUpdateTaskStatusRequest(&req)
	if err != nil {
		return toHTTPError(err)
	}

	task, err := h.services.Tasks.SetStatus(c.Request().Context(), h.ownerID, c.Param("id"), status)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) TasksByDate(c echo.Context) error {
	date, err := validators.ParseDateParam(c.Param("date"))
	if err != nil {
		return toHTTPError(err)
	}

	tasks, err := h.services.Calendar.TasksOnDate(c.Request().Context(), h.ownerID, date)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"date":  date,
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) Agenda(c echo.Context) error {
	agenda, err := h.services.Tasks.Agenda(c.Request().Context(), h.ownerID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, agenda)
}
