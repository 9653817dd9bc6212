// Package schedule interprets grid gestures into normalizer-ready event
// drafts. It is a pure mapping with no I/O: the low-level pointer tracking
// lives in the UI toolkit and only reports "item X dropped at target Y".
package schedule

import (
	"math"
	"time"

	"weekcal/internal/domain"
	"weekcal/internal/timegrid"
)

// TaskRef is the payload a sidebar task carries through a drag.
type TaskRef struct {
	ID        string
	Name      string
	GoalColor string
}

// SlotClick builds the draft for a click on an empty slot: a one hour span at
// the clicked time, no title. The user supplies the title in the follow-up
// form before the draft reaches the normalizer.
func SlotClick(day time.Time, hour, minute int) domain.EventPatch {
	start := timegrid.SlotToDateTime(day, hour, minute)
	end := timegrid.DefaultEventSpan(start)

	return domain.EventPatch{
		Date:      domain.String(timegrid.SlotToDateTime(day, 0, 0).Format(time.RFC3339)),
		StartTime: domain.String(start.Format(time.RFC3339)),
		EndTime:   domain.String(end.Format(time.RFC3339)),
	}
}

// TaskDrop builds the draft for a task dropped on a slot. The event inherits
// the task's name and goal color and records its origin via eventType "task"
// and relatedId.
func TaskDrop(day time.Time, hour int, task TaskRef) domain.EventPatch {
	draft := SlotClick(day, hour, 0)
	draft.Title = domain.String(task.Name)
	draft.GoalColor = domain.String(task.GoalColor)
	draft.EventType = domain.String(string(domain.EventTypeTask))
	draft.RelatedID = domain.String(task.ID)
	return draft
}

// EventDrag builds the update draft for an existing event dropped on a new
// slot. Title, category and goalColor are asserted explicitly even though
// they come from the original record: the re-assertion guards against field
// loss anywhere upstream and is a required invariant, not an optimization.
func EventDrag(original domain.Event, day time.Time, hour int) domain.EventPatch {
	start := timegrid.SlotToDateTime(day, hour, 0)

	return domain.EventPatch{
		Title:     domain.String(original.Title),
		Category:  domain.String(string(original.Category)),
		GoalColor: domain.String(original.GoalColor),
		EventType: domain.String(string(original.EventType)),
		RelatedID: domain.String(original.RelatedID),
		Date:      domain.String(timegrid.SlotToDateTime(day, 0, 0).Format(time.RFC3339)),
		StartTime: domain.String(start.Format(time.RFC3339)),
		EndTime:   domain.String(timegrid.SlotToDateTime(day, hour+1, 0).Format(time.RFC3339)),
	}
}

// DropHour converts a pointer position into the hour row of the target
// column, clamped to [0,23].
func DropHour(pointerY, columnTop, columnHeight float64) int {
	if columnHeight <= 0 {
		return 0
	}
	hour := int(math.Floor((pointerY - columnTop) / (columnHeight / timegrid.HoursPerDay)))
	if hour < 0 {
		return 0
	}
	if hour > timegrid.HoursPerDay-1 {
		return timegrid.HoursPerDay - 1
	}
	return hour
}
