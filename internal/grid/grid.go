// Package grid computes the weekly layout: seven day columns of 24 hour
// rows, events bucketed by calendar day with per-event pixel geometry.
// Rendering itself is out of scope; this package produces positions and
// forwards gestures to the scheduling reconciler.
package grid

import (
	"context"
	"time"

	"weekcal/internal/domain"
	"weekcal/internal/logger"
	"weekcal/internal/schedule"
	"weekcal/internal/timegrid"
)

// categoryColors is the fallback palette used when an event carries no goal
// color override.
var categoryColors = map[domain.Category]string{
	domain.CategoryExercise: "#22C55E",
	domain.CategoryEating:   "#F97316",
	domain.CategoryWork:     "#3B82F6",
	domain.CategoryRelax:    "#A855F7",
	domain.CategoryFamily:   "#EC4899",
	domain.CategorySocial:   "#EAB308",
}

const defaultColor = "#6B7280"

// Config controls the grid scale.
type Config struct {
	// HourPixels is the rendered height of one hour row.
	HourPixels float64
}

// DefaultConfig returns the reference 80px/hour scale.
func DefaultConfig() Config {
	return Config{HourPixels: timegrid.DefaultHourPixels}
}

// EventBox is one positioned event within its day column.
type EventBox struct {
	Event  domain.Event
	Color  string
	Top    float64
	Height float64
}

// Day is one column of the weekly layout.
type Day struct {
	Date   time.Time
	Events []EventBox
}

// Week lays out events over the seven days of the week containing anchor.
// Events are bucketed by the date component of their Date field, not their
// start time. Events missing an id or with unusable start/end times are
// skipped individually; one bad record never aborts the week.
func Week(cfg Config, anchor time.Time, events []domain.Event) []Day {
	days := timegrid.WeekDays(anchor)

	out := make([]Day, len(days))
	for i, date := range days {
		out[i] = Day{Date: date}
		for _, e := range events {
			if !timegrid.SameDay(e.Date, date) {
				continue
			}
			box, ok := position(cfg, e)
			if !ok {
				continue
			}
			out[i].Events = append(out[i].Events, box)
		}
	}
	return out
}

func position(cfg Config, e domain.Event) (EventBox, bool) {
	if e.ID == "" {
		logger.DebugLog(context.Background(), "skipping event without id: %q", e.Title)
		return EventBox{}, false
	}

	ext, err := timegrid.VerticalExtent(e.StartTime, e.EndTime, cfg.HourPixels)
	if err != nil {
		logger.DebugLog(context.Background(), "skipping event %s: %v", e.ID, err)
		return EventBox{}, false
	}

	return EventBox{
		Event:  e,
		Color:  Color(e),
		Top:    ext.Top,
		Height: ext.Height,
	}, true
}

// Color picks the display color: a non-empty goalColor override wins,
// otherwise the category palette.
func Color(e domain.Event) string {
	if e.GoalColor != "" {
		return e.GoalColor
	}
	if c, ok := categoryColors[e.Category]; ok {
		return c
	}
	return defaultColor
}

// ClickSlot forwards an empty-slot click to the reconciler.
func ClickSlot(day time.Time, hour, minute int) domain.EventPatch {
	return schedule.SlotClick(day, hour, minute)
}

// DropTask forwards a task drop at a pointer position to the reconciler.
func DropTask(day time.Time, pointerY, columnTop, columnHeight float64, task schedule.TaskRef) domain.EventPatch {
	hour := schedule.DropHour(pointerY, columnTop, columnHeight)
	return schedule.TaskDrop(day, hour, task)
}

// DragEvent forwards an event drop at a pointer position to the reconciler.
func DragEvent(original domain.Event, day time.Time, pointerY, columnTop, columnHeight float64) domain.EventPatch {
	hour := schedule.DropHour(pointerY, columnTop, columnHeight)
	return schedule.EventDrag(original, day, hour)
}
