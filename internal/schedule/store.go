// schedule/store.go
package schedule

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/diceone/timeshifter/internal/models"
)

// Ошибки границы создания записей. Дальше этой границы невалидные данные
// не проходят: потребители (сетки, агрегатор) не обязаны их проверять.
var (
	ErrInvalidInterval  = errors.New("конец custom-смены должен быть позже начала")
	ErrUnknownShiftType = errors.New("неизвестный тип смены")
	ErrUnknownView      = errors.New("неизвестный вид календаря")
	ErrUnknownDirection = errors.New("направление должно быть prev или next")
)

// IDGenerator выдает уникальные в пределах сессии идентификаторы.
// В проде — UUID, в тестах — детерминированный счетчик.
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

// EmployeeInput — данные формы добавления сотрудника
type EmployeeInput struct {
	Name   string `json:"name" validate:"required"`
	Role   string `json:"role" validate:"required"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}

// ShiftInput — данные формы добавления смены
type ShiftInput struct {
	EmployeeID string           `json:"employee_id" validate:"required"`
	Start      string           `json:"start" validate:"required"`
	End        string           `json:"end" validate:"required"`
	Type       models.ShiftType `json:"type" validate:"required"`
}

// Store хранит состояние сессии: ростер, смены и положение календаря.
// Оба списка append-only, записи после добавления не меняются и не
// удаляются. Мьютекс сериализует конкурентные HTTP-запросы.
type Store struct {
	mu          sync.RWMutex
	employees   []models.Employee
	shifts      []models.Shift
	currentDate time.Time
	view        models.CalendarView

	ids      IDGenerator
	validate *validator.Validate
}

// NewStore создает пустое состояние: недельный вид на сегодняшней дате.
// ids == nil означает генерацию UUID.
func NewStore(ids IDGenerator) *Store {
	if ids == nil {
		ids = uuidGenerator{}
	}
	now := time.Now()
	return &Store{
		ids:         ids,
		validate:    validator.New(),
		currentDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local),
		view:        models.ViewWeek,
	}
}

// AddEmployee валидирует данные, выделяет id и добавляет сотрудника в
// ростер. Записи с одинаковым содержимым различаются только id.
func (s *Store) AddEmployee(in EmployeeInput) (models.Employee, error) {
	if err := s.validate.Struct(in); err != nil {
		return models.Employee{}, fmt.Errorf("некорректные данные сотрудника: %w", err)
	}

	employee := models.Employee{
		ID:     s.ids.NewID(),
		Name:   in.Name,
		Role:   in.Role,
		Avatar: in.Avatar,
	}

	s.mu.Lock()
	s.employees = append(s.employees, employee)
	s.mu.Unlock()
	return employee, nil
}

// AddShift валидирует смену и добавляет ее в расписание. Ссылка на
// несуществующего сотрудника допустима (смена отображается без имени и
// аватара). Для custom-смен конец обязан быть позже начала, поэтому
// отрицательных длительностей в хранимых данных не бывает.
func (s *Store) AddShift(in ShiftInput) (models.Shift, error) {
	if err := s.validate.Struct(in); err != nil {
		return models.Shift{}, fmt.Errorf("некорректные данные смены: %w", err)
	}
	if !in.Type.Valid() {
		return models.Shift{}, fmt.Errorf("%w: %s", ErrUnknownShiftType, in.Type)
	}

	start, err := ParseShiftTime(in.Start)
	if err != nil {
		return models.Shift{}, fmt.Errorf("не удалось разобрать начало смены %q: %w", in.Start, err)
	}
	end, err := ParseShiftTime(in.End)
	if err != nil {
		return models.Shift{}, fmt.Errorf("не удалось разобрать конец смены %q: %w", in.End, err)
	}
	if in.Type == models.ShiftCustom && !end.After(start) {
		return models.Shift{}, ErrInvalidInterval
	}

	shift := models.Shift{
		ID:         s.ids.NewID(),
		EmployeeID: in.EmployeeID,
		Start:      in.Start,
		End:        in.End,
		Type:       in.Type,
	}

	s.mu.Lock()
	s.shifts = append(s.shifts, shift)
	s.mu.Unlock()
	return shift, nil
}

// Employees возвращает копию ростера в порядке добавления
func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Employee(nil), s.employees...)
}

// Shifts возвращает копию списка смен в порядке добавления
func (s *Store) Shifts() []models.Shift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Shift(nil), s.shifts...)
}

// FindEmployee ищет сотрудника по id
func (s *Store) FindEmployee(id string) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, employee := range s.employees {
		if employee.ID == id {
			return employee, true
		}
	}
	return models.Employee{}, false
}

// CurrentDate возвращает текущую дату сессии (полночь локальной зоны)
func (s *Store) CurrentDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentDate
}

// View возвращает активный вид календаря
func (s *Store) View() models.CalendarView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetDate устанавливает текущую дату сессии, время обнуляется
func (s *Store) SetDate(date time.Time) {
	s.mu.Lock()
	s.currentDate = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	s.mu.Unlock()
}

// Navigate сдвигает текущую дату сессии на один шаг активного вида
func (s *Store) Navigate(direction Direction) (time.Time, error) {
	if direction != DirectionPrev && direction != DirectionNext {
		return time.Time{}, fmt.Errorf("%w: %s", ErrUnknownDirection, direction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentDate = Navigate(s.currentDate, s.view, direction)
	return s.currentDate, nil
}

// SwitchView переключает вид календаря, дата не меняется
func (s *Store) SwitchView(view models.CalendarView) error {
	if !view.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownView, view)
	}

	s.mu.Lock()
	s.view = view
	s.mu.Unlock()
	return nil
}

// Grid строит раскладку календаря для текущего состояния сессии
func (s *Store) Grid() GridLayout {
	s.mu.RLock()
	shifts := append([]models.Shift(nil), s.shifts...)
	date, view := s.currentDate, s.view
	s.mu.RUnlock()
	return BuildGrid(shifts, view, date)
}

// GridFor строит раскладку для произвольного вида и даты, состояние
// сессии не трогает
func (s *Store) GridFor(view models.CalendarView, date time.Time) GridLayout {
	return BuildGrid(s.Shifts(), view, date)
}

// MonthlyHours возвращает сумму часов сотрудника за месяц даты month
func (s *Store) MonthlyHours(employeeID string, month time.Time) float64 {
	return MonthlyHours(s.Shifts(), employeeID, month)
}

// Seed наполняет ростер демонстрационными сотрудниками
func (s *Store) Seed() {
	demo := []EmployeeInput{
		{
			Name:   "Alex Thompson",
			Role:   "Team Lead",
			Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&fit=crop&q=80",
		},
		{
			Name:   "Sarah Chen",
			Role:   "Senior Developer",
			Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&fit=crop&q=80",
		},
		{
			Name:   "Marcus Rodriguez",
			Role:   "Developer",
			Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&fit=crop&q=80",
		},
	}
	for _, in := range demo {
		if _, err := s.AddEmployee(in); err != nil {
			log.Printf("Не удалось добавить демо-сотрудника %s: %v", in.Name, err)
		}
	}
}
