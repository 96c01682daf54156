// File: services/schedule/cache.go
package schedule

import (
	"context"
	"errors"
	"fmt"

	snapshotRepo "taskweave/database/repository/snapshot"
	"taskweave/models"
	"taskweave/upstream"
	"taskweave/utils"

	"go.uber.org/zap"
)

// DefaultScheduleCache is the production ScheduleCache: a Redis mirror in
// front of the remote snapshot store, one endpoint for every remote read.
type DefaultScheduleCache struct {
	Local snapshotRepo.SnapshotStore
	API   upstream.API
}

func (c *DefaultScheduleCache) Read(ctx context.Context, sess models.Session) (models.ScheduleSnapshot, error) {
	snapshot, err := c.Local.Get(ctx, sess.UserID)
	if err == nil {
		return snapshot, nil
	}
	if !errors.Is(err, snapshotRepo.ErrNotFound) {
		// A broken mirror falls back to the remote store rather than
		// failing the read.
		utils.GetLogger().Warn("snapshot mirror read failed, falling back to remote",
			zap.String("userID", sess.UserID), zap.Error(err))
	}
	return c.fetchRemote(ctx, sess)
}

func (c *DefaultScheduleCache) Refresh(ctx context.Context, sess models.Session) (models.ScheduleSnapshot, error) {
	return c.fetchRemote(ctx, sess)
}

func (c *DefaultScheduleCache) fetchRemote(ctx context.Context, sess models.Session) (models.ScheduleSnapshot, error) {
	snapshot, err := c.API.CurrentSchedule(ctx, sess)
	if err != nil {
		if errors.Is(err, upstream.ErrNoSchedule) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to fetch remote schedule: %w", err)
	}

	// Backfill the mirror; a failure here only degrades the next read.
	if err := c.Local.Set(ctx, sess.UserID, snapshot); err != nil {
		utils.GetLogger().Warn("failed to backfill snapshot mirror",
			zap.String("userID", sess.UserID), zap.Error(err))
	}
	return snapshot, nil
}

func (c *DefaultScheduleCache) Write(ctx context.Context, sess models.Session, snapshot models.ScheduleSnapshot) error {
	if err := c.Local.Set(ctx, sess.UserID, snapshot); err != nil {
		// Local failure is reported, but the remote write still goes
		// ahead so the authoritative store stays current.
		if remoteErr := c.API.SaveSchedule(ctx, sess, snapshot); remoteErr != nil {
			utils.GetLogger().Error("both writes failed during write-through",
				zap.String("userID", sess.UserID),
				zap.NamedError("local", err),
				zap.NamedError("remote", remoteErr))
		}
		return &PersistenceError{Stage: StageLocal, Err: err}
	}

	if err := c.API.SaveSchedule(ctx, sess, snapshot); err != nil {
		// The local write is not rolled back: local and remote diverge
		// until the next successful write.
		utils.GetLogger().Warn("remote snapshot write failed; mirror kept",
			zap.String("userID", sess.UserID), zap.Error(err))
		return &PersistenceError{Stage: StageRemote, Err: err}
	}
	return nil
}

func (c *DefaultScheduleCache) Invalidate(ctx context.Context, sess models.Session) error {
	return c.Local.Delete(ctx, sess.UserID)
}
