// handlers/calendar_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/diceone/timeshifter/internal/models"
	"github.com/diceone/timeshifter/internal/pkg/response"
	"github.com/diceone/timeshifter/internal/schedule"
)

// GetCalendarHandler строит сетку календаря. Без параметров берется
// текущее состояние сессии; ?view= и ?date=YYYY-MM-DD задают вид и дату
// запроса, не меняя состояние.
func GetCalendarHandler(store *schedule.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := store.View()
		date := store.CurrentDate()

		if v := r.URL.Query().Get("view"); v != "" {
			view = models.CalendarView(v)
			if !view.Valid() {
				response.RespondWithError(w, http.StatusBadRequest, "Invalid view: "+v)
				return
			}
		}
		if d := r.URL.Query().Get("date"); d != "" {
			parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
			if err != nil {
				response.RespondWithError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
				return
			}
			date = parsed
		}

		response.RespondWithJSON(w, http.StatusOK, store.GridFor(view, date))
	}
}

type navigateRequest struct {
	Direction schedule.Direction `json:"direction"`
}

// NavigateHandler сдвигает дату сессии и возвращает новое состояние с сеткой
func NavigateHandler(store *schedule.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req navigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		date, err := store.Navigate(req.Direction)
		if err != nil {
			response.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"date": date.Format("2006-01-02"),
			"view": store.View(),
			"grid": store.Grid(),
		})
	}
}

type switchViewRequest struct {
	View models.CalendarView `json:"view"`
}

// SwitchViewHandler переключает вид календаря сессии
func SwitchViewHandler(store *schedule.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req switchViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		if err := store.SwitchView(req.View); err != nil {
			response.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"date": store.CurrentDate().Format("2006-01-02"),
			"view": store.View(),
			"grid": store.Grid(),
		})
	}
}
