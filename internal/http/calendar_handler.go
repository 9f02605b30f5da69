package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "github.com/maiquockhanh06/Timeflow-app/internal/data_models"
	"github.com/maiquockhanh06/Timeflow-app/internal/http/validators"
)

func (h *Handler) Calendar(c echo.Context) error {
	year, month, err := validators.ParseMonthParams(c.QueryParam("year"), c.QueryParam("month"), time.Now())
	if err != nil {
		return toHTTPError(err)
	}

	view, err := h.services.Calendar.Month(c.Request().Context(), h.ownerID, year, month)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, view)
}

func (h *Handler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	in, err := validators.ValidateCreateEventRequest(&req)
	if err != nil {
		return toHTTPError(err)
	}

	event, err := h.services.Calendar.CreateEvent(c.Request().Context(), h.ownerID, in)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, event)
}

func (h *Handler) CreateShareCode(c echo.Context) error {
	code, err := h.services.Share.CreateShareEvent(c.Request().Context(), h.ownerID, time.Now())
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ShareCodeResponse{
		Code: code,
		URL:  "/shared/" + code,
	})
}

func (h *Handler) SharedEvent(c echo.Context) error {
	event, err := h.services.Calendar.EventByShareCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, event)
}
