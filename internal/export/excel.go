// Package export renders a week of events as an Excel workbook.
package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"weekcal/internal/domain"
	"weekcal/internal/timegrid"
)

const sheetName = "Schedule"

var columns = []string{"Date", "Day", "Start", "End", "Title", "Category", "Type", "Goal Color"}

// WeekReport builds a workbook listing the events of the week containing
// anchor, ordered by start time. Events outside the week are left out;
// events with unusable times are skipped the same way the grid skips them.
func WeekReport(anchor time.Time, events []domain.Event) (*excelize.File, error) {
	days := timegrid.WeekDays(anchor)
	weekStart := days[0]

	var rows []domain.Event
	for _, e := range events {
		if e.StartTime.IsZero() || e.EndTime.IsZero() {
			continue
		}
		for _, day := range days {
			if timegrid.SameDay(e.Date, day) {
				rows = append(rows, e)
				break
			}
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartTime.Before(rows[j].StartTime) })

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Week of %s", weekStart.Format("January 2, 2006"))
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, e := range rows {
		values := []interface{}{
			e.Date.Format("2006-01-02"),
			e.Date.Format("Mon"),
			e.StartTime.Format("15:04"),
			e.EndTime.Format("15:04"),
			e.Title,
			string(e.Category),
			string(e.EventType),
			e.GoalColor,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+3)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "B", 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "E", "E", 30); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "F", "H", 14); err != nil {
		return nil, err
	}

	return f, nil
}
