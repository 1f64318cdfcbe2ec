// models/shift.go
package models

// ShiftType — тип смены: три категориальных плюс custom с явным интервалом
type ShiftType string

const (
	ShiftCustom    ShiftType = "custom"
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftNight     ShiftType = "night"
)

// FixedShiftHours — фиксированная длительность категориальных смен в часах.
// custom сюда не входит: его длительность считается по интервалу start-end.
var FixedShiftHours = map[ShiftType]float64{
	ShiftMorning:   8,
	ShiftAfternoon: 8,
	ShiftNight:     8,
}

func (t ShiftType) Valid() bool {
	if t == ShiftCustom {
		return true
	}
	_, ok := FixedShiftHours[t]
	return ok
}

// Shift представляет смену сотрудника.
// EmployeeID — слабая ссылка: сотрудника может уже не быть в ростере,
// такая смена отображается без имени и аватара.
type Shift struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Start      string    `json:"start"` // локальное время, формат 2006-01-02T15:04
	End        string    `json:"end"`
	Type       ShiftType `json:"type"`
}
