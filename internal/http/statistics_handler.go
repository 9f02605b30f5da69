package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/maiquockhanh06/Timeflow-app/internal/data_models"
	"github.com/maiquockhanh06/Timeflow-app/internal/http/validators"
)

func (h *Handler) Statistics(c echo.Context) error {
	period, err := validators.ParsePeriodParam(c.QueryParam("period"))
	if err != nil {
		return toHTTPError(err)
	}

	summary, err := h.services.Statistics.Summarize(c.Request().Context(), h.ownerID, period)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) GetPreferences(c echo.Context) error {
	prefs, err := h.services.Preferences.Get(c.Request().Context(), h.ownerID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, prefs)
}

func (h *Handler) UpdatePreferences(c echo.Context) error {
	var req dto.UpdatePreferencesRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	prefs, err := h.services.Preferences.Update(
		c.Request().Context(),
		h.ownerID,
		validators.ValidateUpdatePreferencesRequest(&req),
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, prefs)
}
