// File: services/availability/slots.go
package availability

import (
	"fmt"
	"strings"
)

// SlotTemplate returns the fixed 24-slot rendering template for one day, in
// display form ("0:00 - 1:00" .. "23:00 - 24:00"). Comparisons against stored
// slots must normalize first; storage always holds the whitespace-free form.
func SlotTemplate() []string {
	slots := make([]string, 24)
	for i := 0; i < 24; i++ {
		slots[i] = fmt.Sprintf("%d:00 - %d:00", i, i+1)
	}
	return slots
}

// DisplayDay converts a lowercase weekday key to its display name.
func DisplayDay(day string) string {
	if day == "" {
		return ""
	}
	return strings.ToUpper(day[:1]) + day[1:]
}
