package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weekcal/internal/domain"
	"weekcal/internal/service"
	"weekcal/internal/service/serviceutils"
)

// CatalogHandler serves the read-only goal and task listings.
type CatalogHandler struct {
	svc service.CatalogService
}

// NewCatalogHandler builds the catalog handler.
func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListGoalsHandler returns every goal.
func (h *CatalogHandler) ListGoalsHandler(c echo.Context) error {
	goals, err := h.svc.ListGoals(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to fetch goals", err)
	}
	if goals == nil {
		goals = []domain.Goal{}
	}
	return c.JSON(http.StatusOK, goals)
}

// ListTasksHandler returns tasks, filtered by goalId when supplied.
func (h *CatalogHandler) ListTasksHandler(c echo.Context) error {
	tasks, err := h.svc.ListTasks(c.Request().Context(), c.QueryParam("goalId"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to fetch tasks", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}
