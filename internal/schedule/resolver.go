// schedule/resolver.go
package schedule

import (
	"log"
	"time"

	"github.com/diceone/timeshifter/internal/models"
)

// Форматы локального времени, в которых фронтенд присылает start/end смены
var shiftTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseShiftTime разбирает локальную дату-время смены.
// Никаких преобразований зон: сравнения идут по календарным полям хоста.
func ParseShiftTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range shiftTimeLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func sameDay(t, date time.Time) bool {
	return t.Year() == date.Year() && t.Month() == date.Month() && t.Day() == date.Day()
}

// startOrSkip разбирает начало смены; неразборчивая смена исключается
// из выборки с предупреждением в лог, рендер не падает.
func startOrSkip(shift models.Shift) (time.Time, bool) {
	start, err := ParseShiftTime(shift.Start)
	if err != nil {
		log.Printf("Смена %s: не удалось разобрать начало %q, пропускаем: %v", shift.ID, shift.Start, err)
		return time.Time{}, false
	}
	return start, true
}

// ShiftsOccupying возвращает смены, занимающие слот (date, hour).
// Смена попадает в слот, если начинается в тот же календарный день и час
// слота лежит в полуинтервале [час начала, час конца): смена 09:00-17:00
// занимает часы 9..16, но не 17. Минуты отбрасываются до целого часа.
func ShiftsOccupying(shifts []models.Shift, date time.Time, hour int) []models.Shift {
	var result []models.Shift
	for _, shift := range shifts {
		start, ok := startOrSkip(shift)
		if !ok {
			continue
		}
		end, err := ParseShiftTime(shift.End)
		if err != nil {
			log.Printf("Смена %s: не удалось разобрать конец %q, пропускаем: %v", shift.ID, shift.End, err)
			continue
		}
		if sameDay(start, date) && start.Hour() <= hour && end.Hour() > hour {
			result = append(result, shift)
		}
	}
	return result
}

// ShiftsOnDay возвращает смены, начинающиеся в указанный день.
// Смена через полночь относится к дню своего начала.
func ShiftsOnDay(shifts []models.Shift, date time.Time) []models.Shift {
	var result []models.Shift
	for _, shift := range shifts {
		start, ok := startOrSkip(shift)
		if !ok {
			continue
		}
		if sameDay(start, date) {
			result = append(result, shift)
		}
	}
	return result
}
