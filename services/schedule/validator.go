// File: services/schedule/validator.go
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"taskweave/models"
)

// MaxHoursPerTask caps a single task's requested effort.
const MaxHoursPerTask = 8

var digitsOnly = regexp.MustCompile(`^\d+$`)

// ParseHours sanitizes one raw hour input the way the build screen does:
// leading zeros stripped, digits only. The [1,8] bound is enforced separately
// by ValidateRequest so that out-of-range values surface as validation
// errors, never as silent truncation.
func ParseHours(raw string) (int, error) {
	sanitized := strings.TrimLeft(strings.TrimSpace(raw), "0")
	if sanitized == "" {
		sanitized = "0"
	}
	if !digitsOnly.MatchString(sanitized) {
		return 0, fmt.Errorf("hours must be a whole number, got %q", raw)
	}
	return strconv.Atoi(sanitized)
}

// ValidateRequest decides whether an allocation request is satisfiable before
// it is sent out. Rules, in order: every value must be an integer in
// [1,MaxHoursPerTask]; availability must have been declared; the request must
// not be empty; the requested total must fit the week's free hours.
//
// The check is advisory-and-blocking: a failure means no network call is
// issued, but the remote allocator still has the final say on placement.
func ValidateRequest(requests models.TaskHourRequest, week models.WeekAvailability) error {
	for taskID, hours := range requests {
		if hours > MaxHoursPerTask {
			return &ValidationError{
				Kind:    KindInvalidHours,
				Message: fmt.Sprintf("Maximum %d hours per task. Split larger tasks.", MaxHoursPerTask),
			}
		}
		if hours < 1 {
			return &ValidationError{
				Kind:    KindInvalidHours,
				Message: fmt.Sprintf("task %s requests %d hours; each task needs between 1 and %d", taskID, hours, MaxHoursPerTask),
			}
		}
	}

	if requests.Sum() == 0 {
		return &ValidationError{
			Kind:    KindEmptyRequest,
			Message: "Please set hours for at least one task",
		}
	}

	if !week.Declared() {
		return &ValidationError{
			Kind:    KindNoAvailability,
			Message: "Please set your availability first",
		}
	}

	if available := week.TotalHours(); requests.Sum() > available {
		return &ValidationError{
			Kind:      KindInsufficientCapacity,
			Message:   fmt.Sprintf("You only have %d available hours this week", available),
			Available: available,
		}
	}
	return nil
}
