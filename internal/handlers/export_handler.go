// handlers/export_handler.go
package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/diceone/timeshifter/internal/models"
	"github.com/diceone/timeshifter/internal/pkg/response"
	"github.com/diceone/timeshifter/internal/schedule"
)

// ExportScheduleHandler отдает расписание месяца книгой Excel:
// лист "Расписание" — дни месяца на сотрудников, лист "Часы" — итоги
// по каждому сотруднику.
func ExportScheduleHandler(store *schedule.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, err := monthParam(r, store)
		if err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid month format, expected YYYY-MM")
			return
		}

		employees := store.Employees()
		shifts := store.Shifts()

		f := excelize.NewFile()
		defer f.Close()

		const scheduleSheet = "Расписание"
		if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
			log.Printf("Ошибка переименования листа: %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Export error")
			return
		}

		// Шапка: первая колонка — число, дальше по сотруднику на колонку
		f.SetCellValue(scheduleSheet, "A1", "Число")
		for i, employee := range employees {
			cell, _ := excelize.CoordinatesToCellName(i+2, 1)
			f.SetCellValue(scheduleSheet, cell, employee.Name)
		}

		daysInMonth := schedule.DaysInMonth(month)
		for day := 1; day <= daysInMonth; day++ {
			date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.Local)
			cell, _ := excelize.CoordinatesToCellName(1, day+1)
			f.SetCellValue(scheduleSheet, cell, date.Format("02.01 Mon"))

			dayShifts := schedule.ShiftsOnDay(shifts, date)
			for i, employee := range employees {
				var marks []string
				for _, shift := range dayShifts {
					if shift.EmployeeID != employee.ID {
						continue
					}
					marks = append(marks, shiftLabel(shift))
				}
				if len(marks) == 0 {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(i+2, day+1)
				f.SetCellValue(scheduleSheet, cell, strings.Join(marks, ", "))
			}
		}

		const hoursSheet = "Часы"
		if _, err := f.NewSheet(hoursSheet); err != nil {
			log.Printf("Ошибка создания листа часов: %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Export error")
			return
		}
		f.SetCellValue(hoursSheet, "A1", "Сотрудник")
		f.SetCellValue(hoursSheet, "B1", "Должность")
		f.SetCellValue(hoursSheet, "C1", "Часы за месяц")
		for i, employee := range employees {
			row := i + 2
			f.SetCellValue(hoursSheet, fmt.Sprintf("A%d", row), employee.Name)
			f.SetCellValue(hoursSheet, fmt.Sprintf("B%d", row), employee.Role)
			f.SetCellValue(hoursSheet, fmt.Sprintf("C%d", row), schedule.MonthlyHours(shifts, employee.ID, month))
		}

		filename := fmt.Sprintf("schedule_%s.xlsx", month.Format("2006-01"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		if err := f.Write(w); err != nil {
			log.Printf("Ошибка записи Excel: %v", err)
		}
	}
}

// shiftLabel — подпись смены в ячейке расписания
func shiftLabel(shift models.Shift) string {
	switch shift.Type {
	case models.ShiftMorning:
		return "утро"
	case models.ShiftAfternoon:
		return "день"
	case models.ShiftNight:
		return "ночь"
	}

	start, errStart := schedule.ParseShiftTime(shift.Start)
	end, errEnd := schedule.ParseShiftTime(shift.End)
	if errStart != nil || errEnd != nil {
		return string(shift.Type)
	}
	return start.Format("15:04") + "-" + end.Format("15:04")
}
