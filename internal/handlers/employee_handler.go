// handlers/employee_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diceone/timeshifter/internal/pkg/response"
	"github.com/diceone/timeshifter/internal/schedule"
)

// ListEmployeesHandler возвращает ростер в порядке добавления
func ListEmployeesHandler(store *schedule.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.RespondWithJSON(w, http.StatusOK, store.Employees())
	}
}

// AddEmployeeHandler добавляет сотрудника и возвращает готовую запись с id
func AddEmployeeHandler(store *schedule.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in schedule.EmployeeInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		employee, err := store.AddEmployee(in)
		if err != nil {
			response.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		response.RespondWithJSON(w, http.StatusCreated, employee)
	}
}
