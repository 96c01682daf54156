// File: services/schedule/interface.go
package schedule

import (
	"context"
	"time"

	"taskweave/models"
)

// AllocationResult is the outcome of one accepted allocation round trip.
// Partial schedules are valid outcomes: Unassigned names the tasks the
// allocator could not place. Persisted is false when the snapshot could not
// be written to the local mirror; the snapshot is still usable in memory.
type AllocationResult struct {
	Snapshot   models.ScheduleSnapshot `json:"schedule"`
	Unassigned []string                `json:"unassignedTasks,omitempty"`
	Persisted  bool                    `json:"persisted"`
	Warning    string                  `json:"warning,omitempty"`
}

// AllocationClient drives the external allocator: it validates capacity,
// issues the allocation request, and writes the accepted snapshot through the
// cache before handing it back.
type AllocationClient interface {
	Allocate(ctx context.Context, sess models.Session, requests models.TaskHourRequest, week models.WeekAvailability) (*AllocationResult, error)
}

// ScheduleCache arbitrates between the durable local mirror and the remote
// store. Policy: the mirror is authoritative on read; the remote store is
// consulted only on a mirror miss or an explicit refresh, always through the
// same endpoint. Writes go through local then remote; a remote failure is
// surfaced but never rolls back the local write.
type ScheduleCache interface {
	Read(ctx context.Context, sess models.Session) (models.ScheduleSnapshot, error)
	Write(ctx context.Context, sess models.Session, snapshot models.ScheduleSnapshot) error
	Refresh(ctx context.Context, sess models.Session) (models.ScheduleSnapshot, error)
	Invalidate(ctx context.Context, sess models.Session) error
}

// Projector maps a snapshot's abstract weekday buckets onto concrete calendar
// dates for the week containing a reference date.
type Projector interface {
	Project(snapshot models.ScheduleSnapshot, forDate time.Time) models.CalendarIndex
	Chart(snapshot models.ScheduleSnapshot) models.ChartData
}

// TaskGatherer assembles the user's schedulable tasks for the build screen.
type TaskGatherer interface {
	GatherTasks(ctx context.Context, sess models.Session) (*models.StructuredTasks, error)
}
