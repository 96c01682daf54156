// File: services/schedule/allocator.go
package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskweave/models"
	"taskweave/upstream"
	"taskweave/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAllocationClient is the production AllocationClient.
type DefaultAllocationClient struct {
	API   upstream.API
	Cache ScheduleCache
}

func (a *DefaultAllocationClient) Allocate(ctx context.Context, sess models.Session, requests models.TaskHourRequest, week models.WeekAvailability) (*AllocationResult, error) {
	logger := utils.GetLogger()

	// Capacity validation blocks provably infeasible requests before any
	// network call.
	if err := ValidateRequest(requests, week); err != nil {
		return nil, err
	}

	requestID := uuid.New().String()
	logger.Info("requesting allocation",
		zap.String("requestID", requestID),
		zap.String("userID", sess.UserID),
		zap.Int("requestedHours", requests.Sum()),
		zap.Int("availableHours", week.TotalHours()))

	resp, err := a.API.GenerateSchedule(ctx, sess, upstream.AllocationRequest{
		UserID:       sess.UserID,
		TaskHours:    requests,
		Availability: week,
	})
	if err != nil {
		return nil, fmt.Errorf("allocation request failed: %w", err)
	}
	if resp.Error != "" {
		// Surfaced verbatim; the prior snapshot stays untouched.
		return nil, &AllocationError{Message: resp.Error}
	}
	if resp.Schedule == nil {
		return nil, &AllocationError{Message: "allocator returned no schedule"}
	}

	result := &AllocationResult{
		Snapshot:   resp.Schedule,
		Unassigned: resp.Unassigned,
		Persisted:  true,
	}

	// Write through before handing the snapshot back. A persistence
	// failure never discards the result; the caller warns the user.
	if err := a.Cache.Write(ctx, sess, resp.Schedule); err != nil {
		var perr *PersistenceError
		if errors.As(err, &perr) && perr.Stage == StageLocal {
			result.Persisted = false
		}
		result.Warning = "Schedule generated but could not be fully saved. It may not survive a restart."
		logger.Warn("write-through failed after allocation",
			zap.String("requestID", requestID),
			zap.String("userID", sess.UserID),
			zap.Error(err))
	}

	if len(resp.Unassigned) > 0 {
		// Partial schedules are valid outcomes, not errors.
		unplaced := fmt.Sprintf("Couldn't schedule: %s", strings.Join(resp.Unassigned, ", "))
		if result.Warning != "" {
			result.Warning = result.Warning + " " + unplaced
		} else {
			result.Warning = unplaced
		}
		logger.Info("allocator left tasks unplaced",
			zap.String("requestID", requestID),
			zap.Strings("unassignedTasks", resp.Unassigned))
	}

	return result, nil
}
