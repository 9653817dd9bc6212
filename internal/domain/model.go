package domain

import (
	"time"
)

// Category is the closed set of event categories. Unknown values default to
// CategoryWork at normalization time.
type Category string

const (
	CategoryExercise Category = "exercise"
	CategoryEating   Category = "eating"
	CategoryWork     Category = "work"
	CategoryRelax    Category = "relax"
	CategoryFamily   Category = "family"
	CategorySocial   Category = "social"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryExercise, CategoryEating, CategoryWork, CategoryRelax, CategoryFamily, CategorySocial:
		return true
	}
	return false
}

// EventType distinguishes events created from a dragged task from plain events.
type EventType string

const (
	EventTypeTask  EventType = "task"
	EventTypeEvent EventType = "event"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	return t == EventTypeTask || t == EventTypeEvent
}

// Goal is a labeled category with a display color.
type Goal struct {
	ID        string    `datastore:"-" json:"id"` // Key ID
	Name      string    `datastore:"name" json:"name"`
	Color     string    `datastore:"color" json:"color"`
	CreatedAt time.Time `datastore:"created_at" json:"createdAt"`
	UpdatedAt time.Time `datastore:"updated_at" json:"updatedAt"`
}

// Task is a schedulable item belonging to exactly one goal. The goal
// relationship is by ID only; referential integrity is not enforced.
type Task struct {
	ID        string    `datastore:"-" json:"id"` // Key ID
	Name      string    `datastore:"name" json:"name"`
	GoalID    string    `datastore:"goal_id" json:"goalId"`
	CreatedAt time.Time `datastore:"created_at" json:"createdAt"`
	UpdatedAt time.Time `datastore:"updated_at" json:"updatedAt"`
}

// Event is a scheduled calendar block.
//
// GoalColor carries an empty string as a meaningful "no override" value; it
// must never be collapsed with "field absent" anywhere in the write path.
// RelatedID references the originating Task when EventType is "task"; the
// reference is not validated against the task collection.
type Event struct {
	ID        string    `datastore:"-" json:"id"` // Key ID
	Title     string    `datastore:"title" json:"title"`
	Category  Category  `datastore:"category" json:"category"`
	Date      time.Time `datastore:"date" json:"date"`
	StartTime time.Time `datastore:"start_time" json:"startTime"`
	EndTime   time.Time `datastore:"end_time" json:"endTime"`
	GoalColor string    `datastore:"goal_color" json:"goalColor"`
	EventType EventType `datastore:"event_type" json:"eventType"`
	RelatedID string    `datastore:"related_id" json:"relatedId"`
	CreatedAt time.Time `datastore:"created_at" json:"createdAt"`
	UpdatedAt time.Time `datastore:"updated_at" json:"updatedAt"`
}
