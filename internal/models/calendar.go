// models/calendar.go
package models

// CalendarView — режим отображения календаря
type CalendarView string

const (
	ViewMonth CalendarView = "month"
	ViewWeek  CalendarView = "week"
	ViewDay   CalendarView = "day"
)

func (v CalendarView) Valid() bool {
	return v == ViewMonth || v == ViewWeek || v == ViewDay
}
