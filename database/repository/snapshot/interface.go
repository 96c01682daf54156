// File: database/repository/snapshot/interface.go
package snapshotRepo

import (
	"context"
	"errors"

	"taskweave/models"
	"taskweave/utils"
)

// ErrNotFound is returned when no snapshot is mirrored for the user.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotStore is the durable local mirror of the last accepted weekly
// allocation. A snapshot is stored whole or not at all.
type SnapshotStore interface {
	Get(ctx context.Context, userID string) (models.ScheduleSnapshot, error)
	Set(ctx context.Context, userID string, snapshot models.ScheduleSnapshot) error
	Delete(ctx context.Context, userID string) error
}

func snapshotKey(userID string) string {
	return utils.SnapshotKeyPrefix + userID
}
