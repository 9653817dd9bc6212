// Package normalize turns partial, untrusted write payloads into fully
// populated records. Normalization is all-or-nothing: any validation failure
// returns before a record is produced, so callers never persist a partially
// applied change.
//
// Start/end ordering is deliberately not checked; the original system never
// validated start < end and that looseness is preserved here.
package normalize

import (
	"strings"
	"time"

	"weekcal/internal/domain"
	"weekcal/internal/timegrid"
)

// Validation messages are part of the HTTP contract and must match verbatim.
const (
	msgTitleRequired     = "Event title is required"
	msgDateRequired      = "Event date is required"
	msgStartTimeRequired = "Event start time is required"
	msgEndTimeRequired   = "Event end time is required"
	msgInvalidDate       = "Invalid date format"
	msgInvalidStartTime  = "Invalid start time format"
	msgInvalidEndTime    = "Invalid end time format"
)

// Event validates patch against existing and returns the full record to
// persist. existing is nil on creation.
//
// Title is mandatory on every write, including partial updates. Category,
// date, start/end times and goalColor carry forward from existing when the
// patch omits them; goalColor distinguishes "key present with empty value"
// (explicit clear) from "key absent" (keep previous) via the patch's pointer
// field. EventType and relatedId default to "event" / "" on creation and
// carry forward on update, which makes normalization idempotent.
func Event(patch domain.EventPatch, existing *domain.Event) (domain.Event, error) {
	if patch.Title == nil || strings.TrimSpace(*patch.Title) == "" {
		return domain.Event{}, domain.NewValidationError("title", msgTitleRequired)
	}

	out := domain.Event{Title: *patch.Title}
	if existing != nil {
		out.ID = existing.ID
		out.CreatedAt = existing.CreatedAt
	}

	out.Category = domain.CategoryWork
	if existing != nil && existing.Category.Valid() {
		out.Category = existing.Category
	}
	if patch.Category != nil && *patch.Category != "" {
		c := domain.Category(*patch.Category)
		if !c.Valid() {
			return domain.Event{}, domain.NewValidationError("category", "Invalid event category")
		}
		out.Category = c
	}

	date, err := timeField(patch.Date, existing, func(e *domain.Event) time.Time { return e.Date },
		msgDateRequired, msgInvalidDate, "date")
	if err != nil {
		return domain.Event{}, err
	}
	out.Date = date

	start, err := timeField(patch.StartTime, existing, func(e *domain.Event) time.Time { return e.StartTime },
		msgStartTimeRequired, msgInvalidStartTime, "startTime")
	if err != nil {
		return domain.Event{}, err
	}
	out.StartTime = start

	end, err := timeField(patch.EndTime, existing, func(e *domain.Event) time.Time { return e.EndTime },
		msgEndTimeRequired, msgInvalidEndTime, "endTime")
	if err != nil {
		return domain.Event{}, err
	}
	out.EndTime = end

	switch {
	case patch.GoalColor != nil:
		// Present key always wins, empty string included: this is how an
		// override is cleared.
		out.GoalColor = *patch.GoalColor
	case existing != nil:
		out.GoalColor = existing.GoalColor
	default:
		out.GoalColor = ""
	}

	out.EventType = domain.EventTypeEvent
	if existing != nil && existing.EventType.Valid() {
		out.EventType = existing.EventType
	}
	if patch.EventType != nil && *patch.EventType != "" {
		t := domain.EventType(*patch.EventType)
		if !t.Valid() {
			return domain.Event{}, domain.NewValidationError("eventType", "Invalid event type")
		}
		out.EventType = t
	}

	switch {
	case patch.RelatedID != nil:
		out.RelatedID = *patch.RelatedID
	case existing != nil:
		out.RelatedID = existing.RelatedID
	}

	return out, nil
}

// timeField resolves one of the three date-time fields: a supplied value must
// parse, an omitted value falls back to existing, and on creation all three
// are mandatory.
func timeField(raw *string, existing *domain.Event, pick func(*domain.Event) time.Time,
	requiredMsg, invalidMsg, field string) (time.Time, error) {
	if raw != nil && *raw != "" {
		t, err := timegrid.Parse(*raw)
		if err != nil {
			return time.Time{}, domain.NewValidationError(field, invalidMsg)
		}
		return t, nil
	}
	if existing != nil {
		return pick(existing), nil
	}
	return time.Time{}, domain.NewValidationError(field, requiredMsg)
}

// Goal validates a goal input. No defaulting beyond required-field checks.
func Goal(input domain.GoalInput) (domain.Goal, error) {
	if strings.TrimSpace(input.Name) == "" {
		return domain.Goal{}, domain.NewValidationError("name", "Goal name is required")
	}
	if strings.TrimSpace(input.Color) == "" {
		return domain.Goal{}, domain.NewValidationError("color", "Goal color is required")
	}
	return domain.Goal{Name: input.Name, Color: input.Color}, nil
}

// Task validates a task input.
func Task(input domain.TaskInput) (domain.Task, error) {
	if strings.TrimSpace(input.Name) == "" {
		return domain.Task{}, domain.NewValidationError("name", "Task name is required")
	}
	if strings.TrimSpace(input.GoalID) == "" {
		return domain.Task{}, domain.NewValidationError("goalId", "Task goalId is required")
	}
	return domain.Task{Name: input.Name, GoalID: input.GoalID}, nil
}

// FetchedEvent backfills defaults on a record read from storage. Legacy rows
// may predate the eventType/relatedId fields; the cache must still hold fully
// populated records.
func FetchedEvent(e domain.Event) domain.Event {
	if e.Title == "" {
		e.Title = "Untitled Event"
	}
	if !e.Category.Valid() {
		e.Category = domain.CategoryWork
	}
	if !e.EventType.Valid() {
		e.EventType = domain.EventTypeEvent
	}
	return e
}
