package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"weekcal/internal/domain"
	"weekcal/internal/export"
	"weekcal/internal/logger"
	"weekcal/internal/service"
	"weekcal/internal/service/serviceutils"
	"weekcal/internal/timegrid"
)

// EventHandler serves the event CRUD surface and the weekly export.
type EventHandler struct {
	svc service.EventService
}

// NewEventHandler builds the event handler.
func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// ListHandler returns all stored events as-is; clients normalize legacy
// records missing eventType/relatedId on their side.
func (h *EventHandler) ListHandler(c echo.Context) error {
	events, err := h.svc.List(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to fetch events", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

// CreateHandler validates and stores a new event.
func (h *EventHandler) CreateHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var patch domain.EventPatch
	if err := c.Bind(&patch); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	event, err := h.svc.Create(ctx, patch)
	if err != nil {
		return writeEventError(c, err, "Failed to create event in database")
	}

	logger.DebugLog(ctx, "created event %s (%s)", event.ID, event.Title)
	return c.JSON(http.StatusOK, event)
}

// UpdateHandler applies a partial update against an existing event.
func (h *EventHandler) UpdateHandler(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if id == "" {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Event ID is required", nil)
	}

	var patch domain.EventPatch
	if err := c.Bind(&patch); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	event, err := h.svc.Update(ctx, id, patch)
	if err != nil {
		return writeEventError(c, err, "Failed to update event")
	}

	logger.DebugLog(ctx, "updated event %s (%s)", event.ID, event.Title)
	return c.JSON(http.StatusOK, event)
}

// DeleteHandler removes an event. Deleting an unknown id succeeds, so the
// operation is idempotent.
func (h *EventHandler) DeleteHandler(c echo.Context) error {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to delete event", err)
	}
	return serviceutils.ResponseMessage(c, http.StatusOK, "Event deleted successfully")
}

// ExportHandler streams the weekly schedule as an .xlsx download. The week
// query parameter anchors the week; it defaults to today.
func (h *EventHandler) ExportHandler(c echo.Context) error {
	ctx := c.Request().Context()

	anchor := time.Now()
	if raw := c.QueryParam("week"); raw != "" {
		parsed, err := timegrid.Parse(raw)
		if err != nil {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid date format", err)
		}
		anchor = parsed
	}

	events, err := h.svc.List(ctx)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to fetch events", err)
	}

	f, err := export.WeekReport(anchor, events)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate Excel file", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate Excel file", err)
	}

	weekStart := timegrid.StartOfWeek(anchor)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="week_%s.xlsx"`, weekStart.Format("2006-01-02")))
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(buf.Len()))

	_, err = c.Response().Write(buf.Bytes())
	return err
}

// writeEventError maps the domain error taxonomy onto HTTP statuses. The
// validation messages themselves are part of the contract and pass through
// verbatim.
func writeEventError(c echo.Context, err error, storageMsg string) error {
	switch {
	case domain.IsValidation(err):
		return serviceutils.ResponseError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		return serviceutils.ResponseError(c, http.StatusNotFound, "Event not found", nil)
	default:
		return serviceutils.ResponseError(c, http.StatusInternalServerError, storageMsg, err)
	}
}
