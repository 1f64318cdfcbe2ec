// handlers/hours_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/diceone/timeshifter/internal/models"
	"github.com/diceone/timeshifter/internal/pkg/response"
	"github.com/diceone/timeshifter/internal/schedule"
)

// monthParam читает ?month=YYYY-MM; по умолчанию — месяц текущей даты сессии
func monthParam(r *http.Request, store *schedule.Store) (time.Time, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return store.CurrentDate(), nil
	}
	return time.ParseInLocation("2006-01", raw, time.Local)
}

// GetMonthlyHoursHandler возвращает часы одного сотрудника за месяц
func GetMonthlyHoursHandler(store *schedule.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID := r.URL.Query().Get("employee_id")
		if employeeID == "" {
			response.RespondWithError(w, http.StatusBadRequest, "employee_id обязателен")
			return
		}

		month, err := monthParam(r, store)
		if err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid month format, expected YYYY-MM")
			return
		}

		hours := store.MonthlyHours(employeeID, month)
		response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"employee_id": employeeID,
			"month":       month.Format("2006-01"),
			"hours":       hours,
			"formatted":   response.FormatHours(hours),
		})
	}
}

// HoursSummaryEntry — строка сводки часов по ростеру
type HoursSummaryEntry struct {
	Employee  models.Employee `json:"employee"`
	Hours     float64         `json:"hours"`
	Formatted string          `json:"formatted"`
}

// GetHoursSummaryHandler возвращает часы всех сотрудников за месяц,
// в порядке ростера
func GetHoursSummaryHandler(store *schedule.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, err := monthParam(r, store)
		if err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid month format, expected YYYY-MM")
			return
		}

		shifts := store.Shifts()
		summary := []HoursSummaryEntry{}
		for _, employee := range store.Employees() {
			hours := schedule.MonthlyHours(shifts, employee.ID, month)
			summary = append(summary, HoursSummaryEntry{
				Employee:  employee,
				Hours:     hours,
				Formatted: response.FormatHours(hours),
			})
		}

		response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"month":   month.Format("2006-01"),
			"summary": summary,
		})
	}
}
