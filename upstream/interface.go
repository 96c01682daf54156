// File: upstream/interface.go
package upstream

import (
	"context"
	"errors"
	"fmt"

	"taskweave/models"
)

// ErrNoSchedule is returned when the remote store reports that no schedule
// exists for the user (the "No schedule found" sentinel or a 404).
var ErrNoSchedule = errors.New("no schedule found")

// APIError carries a non-2xx response from the upstream task-manager API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}

// AllocationRequest is the payload for the remote allocator.
type AllocationRequest struct {
	UserID       string                 `json:"user_id"`
	TaskHours    models.TaskHourRequest `json:"task_hours"`
	Availability models.WeekAvailability `json:"availability"`
}

// AllocationResponse is the allocator's answer: either a day-partitioned
// schedule (possibly with tasks it could not place) or an error message.
type AllocationResponse struct {
	Schedule   models.ScheduleSnapshot `json:"schedule"`
	Unassigned []string                `json:"unassigned_tasks,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// DistributionRequest is the payload for the remote group-task distributor.
type DistributionRequest struct {
	Tasks   []models.Task        `json:"tasks"`
	Members []models.GroupMember `json:"members"`
}

// API is the client surface for the upstream task-manager service. All
// persistence that is not the local Redis mirror goes through here; the
// service itself is treated as an opaque collaborator.
type API interface {
	// Availability store.
	FetchAvailability(ctx context.Context, sess models.Session) (models.WeekAvailability, error)
	SaveAvailability(ctx context.Context, sess models.Session, week models.WeekAvailability) error

	// Allocation and the remote snapshot store.
	GenerateSchedule(ctx context.Context, sess models.Session, req AllocationRequest) (*AllocationResponse, error)
	SaveSchedule(ctx context.Context, sess models.Session, snapshot models.ScheduleSnapshot) error
	CurrentSchedule(ctx context.Context, sess models.Session) (models.ScheduleSnapshot, error)

	// Task gathering.
	UserTasks(ctx context.Context, sess models.Session) ([]models.Task, error)
	UserGroupTasks(ctx context.Context, sess models.Session) ([]models.Task, error)
	GroupByID(ctx context.Context, sess models.Session, groupID int) (*models.Group, error)

	// Group distribution.
	GroupTasks(ctx context.Context, sess models.Session, groupID int) ([]models.Task, error)
	GroupMembers(ctx context.Context, sess models.Session, groupID int) ([]RawMember, error)
	DistributeTasks(ctx context.Context, sess models.Session, req DistributionRequest) ([]models.Task, error)
	UpdateTask(ctx context.Context, sess models.Session, task models.Task) error
}
