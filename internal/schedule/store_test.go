package schedule

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/diceone/timeshifter/internal/models"
)

// seqIDs — детерминированный генератор для тестов
type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestStore() *Store {
	return NewStore(&seqIDs{})
}

func TestAddEmployee(t *testing.T) {
	s := newTestStore()

	employee, err := s.AddEmployee(EmployeeInput{Name: "A", Role: "B"})
	if err != nil {
		t.Fatalf("AddEmployee: %v", err)
	}
	if employee.ID != "id-1" || employee.Name != "A" || employee.Role != "B" {
		t.Fatalf("employee = %+v", employee)
	}

	if _, err := s.AddEmployee(EmployeeInput{Role: "B"}); err == nil {
		t.Fatal("сотрудник без имени прошел валидацию")
	}
	if _, err := s.AddEmployee(EmployeeInput{Name: "A", Role: "B", Avatar: "not a url"}); err == nil {
		t.Fatal("кривой avatar прошел валидацию")
	}
}

func TestAddEmployeeDuplicateContent(t *testing.T) {
	// Идентичность — по id, а не по содержимому
	s := newTestStore()
	in := EmployeeInput{Name: "A", Role: "B"}

	first, err := s.AddEmployee(in)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.AddEmployee(in)
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID {
		t.Fatalf("дубликат получил тот же id %s", first.ID)
	}
	if len(s.Employees()) != 2 {
		t.Fatalf("roster = %d, want 2", len(s.Employees()))
	}
}

func TestAddShift(t *testing.T) {
	s := newTestStore()

	shift, err := s.AddShift(ShiftInput{
		EmployeeID: "e1",
		Start:      "2024-03-01T09:00",
		End:        "2024-03-01T17:00",
		Type:       models.ShiftCustom,
	})
	if err != nil {
		t.Fatalf("AddShift: %v", err)
	}
	if shift.ID == "" || shift.Type != models.ShiftCustom {
		t.Fatalf("shift = %+v", shift)
	}

	// Висячая ссылка на сотрудника допустима
	if _, err := s.AddShift(ShiftInput{
		EmployeeID: "no-such-employee",
		Start:      "2024-03-01T09:00",
		End:        "2024-03-01T17:00",
		Type:       models.ShiftMorning,
	}); err != nil {
		t.Fatalf("висячая ссылка отклонена: %v", err)
	}
}

func TestAddShiftRejections(t *testing.T) {
	s := newTestStore()

	cases := []struct {
		name string
		in   ShiftInput
		want error
	}{
		{
			name: "конец раньше начала у custom",
			in: ShiftInput{
				EmployeeID: "e1",
				Start:      "2024-03-01T17:00",
				End:        "2024-03-01T09:00",
				Type:       models.ShiftCustom,
			},
			want: ErrInvalidInterval,
		},
		{
			name: "нулевой интервал у custom",
			in: ShiftInput{
				EmployeeID: "e1",
				Start:      "2024-03-01T09:00",
				End:        "2024-03-01T09:00",
				Type:       models.ShiftCustom,
			},
			want: ErrInvalidInterval,
		},
		{
			name: "неизвестный тип",
			in: ShiftInput{
				EmployeeID: "e1",
				Start:      "2024-03-01T09:00",
				End:        "2024-03-01T17:00",
				Type:       "lunch",
			},
			want: ErrUnknownShiftType,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.AddShift(tc.in)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}

	t.Run("неразборчивые даты", func(t *testing.T) {
		if _, err := s.AddShift(ShiftInput{
			EmployeeID: "e1", Start: "garbage", End: "2024-03-01T17:00", Type: models.ShiftCustom,
		}); err == nil {
			t.Error("кривое начало прошло валидацию")
		}
		if _, err := s.AddShift(ShiftInput{
			EmployeeID: "e1", Start: "2024-03-01T09:00", End: "garbage", Type: models.ShiftCustom,
		}); err == nil {
			t.Error("кривой конец прошел валидацию")
		}
	})

	t.Run("пустые поля", func(t *testing.T) {
		if _, err := s.AddShift(ShiftInput{Start: "2024-03-01T09:00", End: "2024-03-01T17:00", Type: models.ShiftCustom}); err == nil {
			t.Error("смена без сотрудника прошла валидацию")
		}
	})

	if got := len(s.Shifts()); got != 0 {
		t.Fatalf("отклоненные смены попали в хранилище: %d", got)
	}
}

func TestAddShiftCategoricalIntervalNotChecked(t *testing.T) {
	// Для категориальных типов интервал не проверяется: часы все равно
	// фиксированные
	s := newTestStore()
	if _, err := s.AddShift(ShiftInput{
		EmployeeID: "e1",
		Start:      "2024-03-01T17:00",
		End:        "2024-03-01T09:00",
		Type:       models.ShiftNight,
	}); err != nil {
		t.Fatalf("категориальная смена отклонена: %v", err)
	}
}

func TestStoreInsertionOrder(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 5; i++ {
		if _, err := s.AddShift(ShiftInput{
			EmployeeID: "e1",
			Start:      fmt.Sprintf("2024-03-0%dT09:00", i+1),
			End:        fmt.Sprintf("2024-03-0%dT17:00", i+1),
			Type:       models.ShiftCustom,
		}); err != nil {
			t.Fatal(err)
		}
	}
	shifts := s.Shifts()
	for i, shift := range shifts {
		if want := fmt.Sprintf("id-%d", i+1); shift.ID != want {
			t.Fatalf("позиция %d: id = %s, want %s", i, shift.ID, want)
		}
	}
}

func TestFindEmployee(t *testing.T) {
	s := newTestStore()
	employee, _ := s.AddEmployee(EmployeeInput{Name: "A", Role: "B"})

	if got, ok := s.FindEmployee(employee.ID); !ok || got.Name != "A" {
		t.Fatalf("FindEmployee = %+v, %v", got, ok)
	}
	if _, ok := s.FindEmployee("missing"); ok {
		t.Fatal("нашелся несуществующий сотрудник")
	}
}

func TestStoreNavigation(t *testing.T) {
	s := newTestStore()
	s.SetDate(day(2024, time.March, 15))

	if s.View() != models.ViewWeek {
		t.Fatalf("вид по умолчанию = %s, want week", s.View())
	}

	date, err := s.Navigate(DirectionNext)
	if err != nil {
		t.Fatal(err)
	}
	if !date.Equal(day(2024, time.March, 22)) {
		t.Fatalf("date = %v, want 2024-03-22", date)
	}

	if _, err := s.Navigate("sideways"); !errors.Is(err, ErrUnknownDirection) {
		t.Fatalf("err = %v, want ErrUnknownDirection", err)
	}

	if err := s.SwitchView(models.ViewMonth); err != nil {
		t.Fatal(err)
	}
	if !s.CurrentDate().Equal(day(2024, time.March, 22)) {
		t.Fatal("переключение вида изменило дату")
	}
	if err := s.SwitchView("year"); !errors.Is(err, ErrUnknownView) {
		t.Fatalf("err = %v, want ErrUnknownView", err)
	}

	date, err = s.Navigate(DirectionPrev)
	if err != nil {
		t.Fatal(err)
	}
	if !date.Equal(day(2024, time.February, 22)) {
		t.Fatalf("после месячного шага назад date = %v, want 2024-02-22", date)
	}
}

func TestStoreGrid(t *testing.T) {
	s := newTestStore()
	s.SetDate(day(2024, time.May, 15))
	if err := s.SwitchView(models.ViewMonth); err != nil {
		t.Fatal(err)
	}

	grid := s.Grid()
	if grid.View != models.ViewMonth || len(grid.Weeks) != 5 {
		t.Fatalf("grid = %s, weeks = %d", grid.View, len(grid.Weeks))
	}

	// GridFor не трогает состояние сессии
	dayGrid := s.GridFor(models.ViewDay, day(2024, time.March, 1))
	if dayGrid.View != models.ViewDay {
		t.Fatalf("view = %s", dayGrid.View)
	}
	if s.View() != models.ViewMonth || !s.CurrentDate().Equal(day(2024, time.May, 15)) {
		t.Fatal("GridFor изменил состояние сессии")
	}
}

func TestStoreMonthlyHours(t *testing.T) {
	s := newTestStore()
	employee, _ := s.AddEmployee(EmployeeInput{Name: "A", Role: "B"})
	if _, err := s.AddShift(ShiftInput{
		EmployeeID: employee.ID,
		Start:      "2024-03-01T09:00",
		End:        "2024-03-01T17:00",
		Type:       models.ShiftCustom,
	}); err != nil {
		t.Fatal(err)
	}

	got := s.MonthlyHours(employee.ID, day(2024, time.March, 1))
	if math.Abs(got-8) > 1e-9 {
		t.Fatalf("MonthlyHours = %v, want 8", got)
	}
}

func TestSeed(t *testing.T) {
	s := newTestStore()
	s.Seed()
	if got := len(s.Employees()); got != 3 {
		t.Fatalf("seed roster = %d, want 3", got)
	}
}
