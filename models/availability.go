package models

import (
	"strings"
	"unicode"
)

// WeekDays lists the seven lowercase weekday keys in storage order. The week
// is anchored to the most recent Sunday relative to "now".
var WeekDays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// WeekAvailability maps a lowercase weekday key to the hour slots the user has
// marked free on that day. Slot labels are stored whitespace-free so that
// visually identical labels from different sources always unify. A nil map
// means the user has never declared availability; an empty map (or empty day
// lists) means availability was declared but no slots are selected.
type WeekAvailability map[string][]string

// NormalizeSlot strips all whitespace from a slot label. Every comparison and
// storage operation goes through this first.
func NormalizeSlot(slot string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, slot)
}

// IsWeekDay reports whether day is one of the seven lowercase weekday keys.
func IsWeekDay(day string) bool {
	for _, d := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

// Has reports whether the normalized form of slot is selected on day.
func (w WeekAvailability) Has(day, slot string) bool {
	norm := NormalizeSlot(slot)
	for _, s := range w[day] {
		if s == norm {
			return true
		}
	}
	return false
}

// Add inserts the normalized slot into day's set. Duplicates collapse.
func (w WeekAvailability) Add(day, slot string) {
	if w.Has(day, slot) {
		return
	}
	w[day] = append(w[day], NormalizeSlot(slot))
}

// Remove deletes the normalized slot from day's set.
func (w WeekAvailability) Remove(day, slot string) {
	norm := NormalizeSlot(slot)
	slots := w[day]
	for i, s := range slots {
		if s == norm {
			w[day] = append(slots[:i], slots[i+1:]...)
			return
		}
	}
}

// TotalHours sums the slot-set sizes across all seven days. Each slot is one
// hour wide, so the count is the user's free hours for the week.
func (w WeekAvailability) TotalHours() int {
	total := 0
	for _, day := range WeekDays {
		total += len(w[day])
	}
	return total
}

// Declared reports whether the user has ever saved an availability grid.
// An empty-but-present grid still counts as declared.
func (w WeekAvailability) Declared() bool {
	return w != nil
}
