// pkg/response/utils.go
package response

import (
	"fmt"
)

// FormatHours форматирует часы для сводки: "8 ч", "7 ч 30 мин", "45 мин".
// Округление до минуты.
func FormatHours(hours float64) string {
	total := int(hours*60 + 0.5)
	if total <= 0 {
		return "0 ч"
	}
	h := total / 60
	m := total % 60
	if h == 0 {
		return fmt.Sprintf("%d мин", m)
	}
	if m == 0 {
		return fmt.Sprintf("%d ч", h)
	}
	return fmt.Sprintf("%d ч %d мин", h, m)
}
