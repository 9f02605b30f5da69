package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/maiquockhanh06/Timeflow-app/internal/data_models"
)

func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.services.Categories.List(c.Request().Context(), h.ownerID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":      len(categories),
		"categories": categories,
	})
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.services.Categories.Add(c.Request().Context(), h.ownerID, req.Name, req.Color)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	if err := h.services.Categories.Delete(c.Request().Context(), h.ownerID, c.Param("id")); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
