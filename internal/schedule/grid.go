// schedule/grid.go
package schedule

import (
	"time"

	"github.com/diceone/timeshifter/internal/models"
)

// Direction — направление навигации по календарю
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// SlotCell — одна ячейка (день, час) недельной или дневной сетки
type SlotCell struct {
	Hour   int            `json:"hour"`
	Shifts []models.Shift `json:"shifts,omitempty"`
}

// DayColumn — колонка одного дня: 24 часовых слота
type DayColumn struct {
	Date    string     `json:"date"` // YYYY-MM-DD
	Weekday string     `json:"weekday"`
	Slots   []SlotCell `json:"slots"`
}

// MonthCell — ячейка месячной сетки.
// Вне месяца DayNumber = 0, InMonth = false и смены не ищутся.
type MonthCell struct {
	DayNumber int            `json:"day_number,omitempty"`
	InMonth   bool           `json:"in_month"`
	Shifts    []models.Shift `json:"shifts,omitempty"`
}

// GridLayout — вычисленная раскладка календаря для одного вида и даты
type GridLayout struct {
	View  models.CalendarView `json:"view"`
	Date  string              `json:"date"`
	Days  []DayColumn         `json:"days,omitempty"`  // week и day
	Weeks [][]MonthCell       `json:"weeks,omitempty"` // month
}

// StartOfWeek возвращает воскресенье в день date или последнее до него
func StartOfWeek(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// DaysInMonth возвращает число дней в месяце даты date
func DaysInMonth(date time.Time) int {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()).Day()
}

// Порядок смен в слоте — порядок добавления, его сохраняют и резолверы
func buildDayColumn(shifts []models.Shift, date time.Time) DayColumn {
	dayShifts := ShiftsOnDay(shifts, date)
	col := DayColumn{
		Date:    date.Format("2006-01-02"),
		Weekday: date.Weekday().String(),
		Slots:   make([]SlotCell, 0, 24),
	}
	for hour := 0; hour < 24; hour++ {
		col.Slots = append(col.Slots, SlotCell{
			Hour:   hour,
			Shifts: ShiftsOccupying(dayShifts, date, hour),
		})
	}
	return col
}

// WeekGrid строит сетку 7 дней x 24 часа начиная с воскресенья недели current
func WeekGrid(shifts []models.Shift, current time.Time) GridLayout {
	start := StartOfWeek(current)
	layout := GridLayout{View: models.ViewWeek, Date: current.Format("2006-01-02")}
	for i := 0; i < 7; i++ {
		layout.Days = append(layout.Days, buildDayColumn(shifts, start.AddDate(0, 0, i)))
	}
	return layout
}

// DayGrid строит сетку одного дня: одна колонка x 24 часа
func DayGrid(shifts []models.Shift, current time.Time) GridLayout {
	return GridLayout{
		View: models.ViewDay,
		Date: current.Format("2006-01-02"),
		Days: []DayColumn{buildDayColumn(shifts, current)},
	}
}

// MonthGrid строит месячную сетку: строки недель по 7 ячеек, с пустыми
// ячейками до первого числа и после последнего. Смены ищутся только в
// ячейках месяца, по точному совпадению год/месяц/день начала.
func MonthGrid(shifts []models.Shift, current time.Time) GridLayout {
	daysInMonth := DaysInMonth(current)
	firstDay := int(time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, current.Location()).Weekday())
	weekRows := (daysInMonth + firstDay + 6) / 7

	layout := GridLayout{View: models.ViewMonth, Date: current.Format("2006-01-02")}
	for row := 0; row < weekRows; row++ {
		week := make([]MonthCell, 0, 7)
		for col := 0; col < 7; col++ {
			dayNumber := row*7 + col - firstDay + 1
			if dayNumber < 1 || dayNumber > daysInMonth {
				week = append(week, MonthCell{})
				continue
			}
			cellDate := time.Date(current.Year(), current.Month(), dayNumber, 0, 0, 0, 0, current.Location())
			week = append(week, MonthCell{
				DayNumber: dayNumber,
				InMonth:   true,
				Shifts:    ShiftsOnDay(shifts, cellDate),
			})
		}
		layout.Weeks = append(layout.Weeks, week)
	}
	return layout
}

// BuildGrid возвращает раскладку календаря для выбранного вида
func BuildGrid(shifts []models.Shift, view models.CalendarView, current time.Time) GridLayout {
	switch view {
	case models.ViewMonth:
		return MonthGrid(shifts, current)
	case models.ViewDay:
		return DayGrid(shifts, current)
	default:
		return WeekGrid(shifts, current)
	}
}

// Navigate сдвигает дату календаря на один шаг активного вида: неделя на
// 7 дней, день на 1 день, месяц на 1 месяц. При шаге по месяцам число
// прижимается к последнему дню короткого месяца, чтобы 31 января не
// «перепрыгивало» через февраль.
func Navigate(current time.Time, view models.CalendarView, direction Direction) time.Time {
	step := 1
	if direction == DirectionPrev {
		step = -1
	}

	switch view {
	case models.ViewWeek:
		return current.AddDate(0, 0, 7*step)
	case models.ViewDay:
		return current.AddDate(0, 0, step)
	default:
		first := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, current.Location())
		target := first.AddDate(0, step, 0)
		day := current.Day()
		if last := DaysInMonth(target); day > last {
			day = last
		}
		return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, current.Location())
	}
}
