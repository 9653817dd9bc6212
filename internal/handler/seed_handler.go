package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weekcal/internal/logger"
	"weekcal/internal/service"
	"weekcal/internal/service/serviceutils"
)

// SeedHandler replaces the goal/task collections with the sample dataset.
type SeedHandler struct {
	svc service.SeedService
}

// NewSeedHandler builds the seed handler.
func NewSeedHandler(svc service.SeedService) *SeedHandler {
	return &SeedHandler{svc: svc}
}

// SeedHandler handles GET /seed.
func (h *SeedHandler) SeedHandler(c echo.Context) error {
	ctx := c.Request().Context()
	logger.InfoLog(ctx, "seeding sample data")

	goals, tasks, err := h.svc.Seed(ctx)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to seed database", err)
	}

	return c.JSON(http.StatusOK, serviceutils.SeedResponse{
		Success: true,
		Message: "Database seeded successfully",
		Data: map[string]int{
			"goals": goals,
			"tasks": tasks,
		},
	})
}
