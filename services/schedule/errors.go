// File: services/schedule/errors.go
package schedule

import (
	"errors"
	"fmt"
)

// Validation error kinds, in the order the rules are applied.
const (
	KindInvalidHours         = "invalidHours"
	KindEmptyRequest         = "emptyRequest"
	KindNoAvailability       = "noAvailability"
	KindInsufficientCapacity = "insufficientCapacity"
)

// ValidationError rejects a task-hour request before any network call is
// made. Fully recoverable; no state changes.
type ValidationError struct {
	Kind      string
	Message   string
	Available int // set for insufficientCapacity
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AllocationError carries the remote allocator's error field verbatim. The
// prior snapshot is left untouched and no retry is attempted.
type AllocationError struct {
	Message string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocationError: %s", e.Message)
}

// Persistence stages for write-through failures.
const (
	StageLocal  = "local"
	StageRemote = "remote"
)

// PersistenceError reports a failed write during the cache's write-through.
// It is a non-fatal warning: the in-memory result stays usable and local and
// remote state may diverge until the next successful write.
type PersistenceError struct {
	Stage string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistenceError(%s): %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ErrNoSnapshot is returned when neither the local mirror nor the remote
// store has a schedule for the user.
var ErrNoSnapshot = errors.New("no schedule snapshot available")
