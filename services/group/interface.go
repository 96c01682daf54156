// File: services/group/interface.go
package group

import (
	"context"
	"errors"

	"taskweave/models"
)

// Distribution preconditions, checked before any distributor call.
var (
	ErrNoTasks   = errors.New("group has no tasks to distribute")
	ErrNoMembers = errors.New("group has no members to distribute tasks to")
)

// CommitResult records the outcome of writing one distributed task back.
type CommitResult struct {
	TaskID int   `json:"taskId"`
	Err    error `json:"-"`
}

// Succeeded reports whether this task's write went through.
func (r CommitResult) Succeeded() bool {
	return r.Err == nil
}

// GroupService applies the allocate-then-commit pattern to group tasks:
// gather tasks and members, request a distribution, then write each updated
// task back individually.
type GroupService interface {
	// Distribute returns the distributor's updated task list. Nothing is
	// committed yet.
	Distribute(ctx context.Context, sess models.Session, groupID int) ([]models.Task, error)

	// Commit writes the updated tasks back one at a time, in list order,
	// each awaited before the next. One failure neither aborts the rest
	// nor rolls back earlier writes; the end state can mix old and new
	// assignments. The returned list has one entry per task.
	Commit(ctx context.Context, sess models.Session, tasks []models.Task) []CommitResult
}
