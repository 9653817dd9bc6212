package timegrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotToDateTime(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)

	got := SlotToDateTime(day, 9, 30)
	assert.Equal(t, time.Date(2024, 3, 11, 9, 30, 0, 0, time.Local), got)

	end := DefaultEventSpan(got)
	assert.Equal(t, time.Date(2024, 3, 11, 10, 30, 0, 0, time.Local), end)
}

func TestSlotToDateTimeIgnoresTimeOfDay(t *testing.T) {
	// The day argument may carry a time component; only the date matters.
	day := time.Date(2024, 3, 11, 17, 45, 12, 0, time.Local)
	got := SlotToDateTime(day, 0, 0)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local), got)
}

func TestVerticalExtent(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)

	t.Run("FullHour", func(t *testing.T) {
		ext, err := VerticalExtent(SlotToDateTime(day, 9, 0), SlotToDateTime(day, 11, 0), 80)
		assert.NoError(t, err)
		assert.InDelta(t, 720.0, ext.Top, 1e-9)
		assert.InDelta(t, 160.0, ext.Height, 1e-9)
	})

	t.Run("HalfHourFloor", func(t *testing.T) {
		// A ten minute event renders as half an hour, not a sixth.
		ext, err := VerticalExtent(SlotToDateTime(day, 14, 0), SlotToDateTime(day, 14, 10), 80)
		assert.NoError(t, err)
		assert.InDelta(t, 0.5*80, ext.Height, 1e-9)
	})

	t.Run("MinuteOffsets", func(t *testing.T) {
		ext, err := VerticalExtent(SlotToDateTime(day, 9, 30), SlotToDateTime(day, 10, 45), 80)
		assert.NoError(t, err)
		assert.InDelta(t, 9.5*80, ext.Top, 1e-9)
		assert.InDelta(t, 1.25*80, ext.Height, 1e-9)
	})

	t.Run("ZeroTimesRejected", func(t *testing.T) {
		_, err := VerticalExtent(time.Time{}, SlotToDateTime(day, 10, 0), 80)
		assert.Error(t, err)
		var ite *InvalidTimeError
		assert.ErrorAs(t, err, &ite)
	})

	t.Run("DefaultScale", func(t *testing.T) {
		ext, err := VerticalExtent(SlotToDateTime(day, 1, 0), SlotToDateTime(day, 2, 0), 0)
		assert.NoError(t, err)
		assert.InDelta(t, DefaultHourPixels, ext.Height, 1e-9)
	})
}

func TestParse(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		got, err := Parse("2024-03-11T09:30:00Z")
		assert.NoError(t, err)
		assert.Equal(t, 9, got.UTC().Hour())
	})

	t.Run("Unzoned", func(t *testing.T) {
		got, err := Parse("2024-03-11T09:30:00")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 11, 9, 30, 0, 0, time.Local), got)
	})

	t.Run("DateOnly", func(t *testing.T) {
		got, err := Parse("2024-03-11")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local), got)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := Parse("not-a-date")
		var ite *InvalidTimeError
		assert.ErrorAs(t, err, &ite)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Parse("")
		assert.Error(t, err)
	})
}

func TestWeekDays(t *testing.T) {
	// 2024-03-13 is a Wednesday; the containing week starts Sunday 03-10.
	wed := time.Date(2024, 3, 13, 15, 0, 0, 0, time.Local)

	days := WeekDays(wed)
	assert.Len(t, days, 7)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), days[0])
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local), days[6])
	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	b := time.Date(2024, 3, 11, 23, 59, 0, 0, time.Local)
	c := time.Date(2024, 3, 12, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
