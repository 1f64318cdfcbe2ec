// models/employee.go
package models

// Employee представляет сотрудника в ростере
type Employee struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"` // URL фото, может быть пустым
}
