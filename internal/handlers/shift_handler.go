// handlers/shift_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diceone/timeshifter/internal/pkg/response"
	"github.com/diceone/timeshifter/internal/schedule"
)

// ListShiftsHandler возвращает все смены в порядке добавления
func ListShiftsHandler(store *schedule.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.RespondWithJSON(w, http.StatusOK, store.Shifts())
	}
}

// AddShiftHandler добавляет смену и возвращает готовую запись с id.
// Невалидный интервал или неизвестный тип — 400, дальше границы
// создания такие данные не проходят.
func AddShiftHandler(store *schedule.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in schedule.ShiftInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		shift, err := store.AddShift(in)
		if err != nil {
			response.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		response.RespondWithJSON(w, http.StatusCreated, shift)
	}
}
