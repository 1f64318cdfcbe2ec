package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/diceone/timeshifter/internal/handlers"
	"github.com/diceone/timeshifter/internal/pkg/response"
	"github.com/diceone/timeshifter/internal/schedule"
)

// Setup инициализирует и возвращает настроенный маршрутизатор.
func Setup(store *schedule.Store) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Ростер
	router.Get("/api/employees", handlers.ListEmployeesHandler(store))
	router.Post("/api/employees", handlers.AddEmployeeHandler(store))

	// Смены
	router.Get("/api/shifts", handlers.ListShiftsHandler(store))
	router.Post("/api/shifts", handlers.AddShiftHandler(store))

	// Календарь
	router.Get("/api/calendar", handlers.GetCalendarHandler(store))
	router.Post("/api/calendar/navigate", handlers.NavigateHandler(store))
	router.Post("/api/calendar/view", handlers.SwitchViewHandler(store))

	// Часы
	router.Get("/api/hours", handlers.GetMonthlyHoursHandler(store))
	router.Get("/api/hours/summary", handlers.GetHoursSummaryHandler(store))

	// Экспорт расписания в Excel
	router.Get("/api/export/schedule", handlers.ExportScheduleHandler(store))

	return router
}
