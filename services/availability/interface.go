// File: services/availability/interface.go
package availability

import (
	"context"

	"taskweave/models"
)

// AvailabilityService owns the user's weekly free/busy grid: hour-granularity
// slots per weekday. The grid is mutated only by explicit toggles and
// persisted only by an explicit save.
type AvailabilityService interface {
	// Load returns the saved grid, or a nil grid when the user has never
	// declared availability. Days with no selection come back as empty sets.
	Load(ctx context.Context, sess models.Session) (models.WeekAvailability, error)

	// Toggle flips slot membership on the given day. The grid is modified
	// in place; nothing is persisted.
	Toggle(week models.WeekAvailability, day, slot string) error

	// Save transmits all seven days every time, empty arrays included.
	Save(ctx context.Context, sess models.Session, week models.WeekAvailability) error
}
