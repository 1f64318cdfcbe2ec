// schedule/hours.go
package schedule

import (
	"log"
	"time"

	"github.com/diceone/timeshifter/internal/models"
)

// MonthlyHours суммирует отработанные часы сотрудника за месяц month.
// Категориальные смены дают фиксированные часы из models.FixedShiftHours
// независимо от фактических start/end, custom — реальную разницу конца и
// начала в часах (дробные допустимы). Длительность не обрезается по
// границам суток. Смена относится к месяцу по дате своего начала.
func MonthlyHours(shifts []models.Shift, employeeID string, month time.Time) float64 {
	var total float64
	for _, shift := range shifts {
		if shift.EmployeeID != employeeID {
			continue
		}
		start, ok := startOrSkip(shift)
		if !ok {
			continue
		}
		if start.Month() != month.Month() || start.Year() != month.Year() {
			continue
		}

		if shift.Type != models.ShiftCustom {
			total += models.FixedShiftHours[shift.Type]
			continue
		}

		end, err := ParseShiftTime(shift.End)
		if err != nil {
			log.Printf("Смена %s: не удалось разобрать конец %q, исключаем из суммы: %v", shift.ID, shift.End, err)
			continue
		}
		total += end.Sub(start).Hours()
	}
	return total
}
