package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekcal/internal/domain"
	"weekcal/internal/schedule"
	"weekcal/internal/timegrid"
)

var monday = time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)

func event(id string, day time.Time, startHour, endHour int) domain.Event {
	return domain.Event{
		ID:        id,
		Title:     "e-" + id,
		Category:  domain.CategoryWork,
		Date:      day,
		StartTime: timegrid.SlotToDateTime(day, startHour, 0),
		EndTime:   timegrid.SlotToDateTime(day, endHour, 0),
		EventType: domain.EventTypeEvent,
	}
}

func TestWeekBucketsByDateComponent(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)

	ev1 := event("ev1", monday, 9, 10)
	ev2 := event("ev2", tuesday, 9, 10)
	// Date carries a time-of-day component; only the calendar date counts.
	ev3 := event("ev3", monday.Add(18*time.Hour), 20, 21)
	// Start time on Tuesday but date on Monday: the date field wins.
	ev4 := event("ev4", monday, 9, 10)
	ev4.StartTime = timegrid.SlotToDateTime(tuesday, 9, 0)
	ev4.EndTime = timegrid.SlotToDateTime(tuesday, 10, 0)

	days := Week(DefaultConfig(), monday, []domain.Event{ev1, ev2, ev3, ev4})
	require.Len(t, days, 7)

	// Week of 2024-03-11 starts Sunday 2024-03-10; Monday is index 1.
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), days[0].Date)

	ids := func(d Day) []string {
		var out []string
		for _, b := range d.Events {
			out = append(out, b.Event.ID)
		}
		return out
	}
	assert.ElementsMatch(t, []string{"ev1", "ev3", "ev4"}, ids(days[1]))
	assert.ElementsMatch(t, []string{"ev2"}, ids(days[2]))
}

func TestWeekSkipsUnrenderableEvents(t *testing.T) {
	good := event("ok", monday, 9, 10)

	noID := event("", monday, 9, 10)

	badTimes := event("bad-times", monday, 9, 10)
	badTimes.StartTime = time.Time{}

	days := Week(DefaultConfig(), monday, []domain.Event{noID, good, badTimes})
	require.Len(t, days[1].Events, 1, "bad records are skipped, not fatal")
	assert.Equal(t, "ok", days[1].Events[0].Event.ID)
}

func TestWeekGeometry(t *testing.T) {
	short := event("short", monday, 14, 14)
	short.EndTime = timegrid.SlotToDateTime(monday, 14, 10)

	days := Week(DefaultConfig(), monday, []domain.Event{event("ev1", monday, 9, 11), short})
	require.Len(t, days[1].Events, 2)

	box := days[1].Events[0]
	assert.InDelta(t, 9*80.0, box.Top, 1e-9)
	assert.InDelta(t, 2*80.0, box.Height, 1e-9)

	// Ten minutes renders as the half hour visibility floor.
	assert.InDelta(t, 0.5*80.0, days[1].Events[1].Height, 1e-9)
}

func TestColor(t *testing.T) {
	e := event("ev1", monday, 9, 10)
	assert.Equal(t, "#3B82F6", Color(e), "category palette when no override")

	e.GoalColor = "#34A853"
	assert.Equal(t, "#34A853", Color(e), "goalColor override wins")

	e.GoalColor = ""
	e.Category = "mystery"
	assert.Equal(t, defaultColor, Color(e))
}

func TestGestureForwarding(t *testing.T) {
	draft := DropTask(monday, 7*80+10, 0, 24*80, schedule.TaskRef{ID: "t1", Name: "Gym", GoalColor: "#34A853"})
	require.NotNil(t, draft.Title)
	assert.Equal(t, "Gym", *draft.Title)

	start, err := timegrid.Parse(*draft.StartTime)
	require.NoError(t, err)
	assert.Equal(t, 7, start.Hour())

	moved := DragEvent(event("ev1", monday, 9, 10), monday.AddDate(0, 0, 1), 14*80+3, 0, 24*80)
	start, err = timegrid.Parse(*moved.StartTime)
	require.NoError(t, err)
	assert.Equal(t, 14, start.Hour())
	require.NotNil(t, moved.Title)
	assert.Equal(t, "e-ev1", *moved.Title)
}
