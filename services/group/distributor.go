// File: services/group/distributor.go
package group

import (
	"context"
	"fmt"

	"taskweave/models"
	"taskweave/upstream"
	"taskweave/utils"

	"go.uber.org/zap"
)

// DefaultGroupService is the production GroupService.
type DefaultGroupService struct {
	API upstream.API
}

func (s *DefaultGroupService) Distribute(ctx context.Context, sess models.Session, groupID int) ([]models.Task, error) {
	tasks, err := s.API.GroupTasks(ctx, sess, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group tasks: %w", err)
	}

	raw, err := s.API.GroupMembers(ctx, sess, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group members: %w", err)
	}
	members := NormalizeMembers(raw)

	// Refuse before the distribution call, not after.
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	if len(members) == 0 {
		return nil, ErrNoMembers
	}

	updated, err := s.API.DistributeTasks(ctx, sess, upstream.DistributionRequest{
		Tasks:   tasks,
		Members: members,
	})
	if err != nil {
		return nil, fmt.Errorf("distribution request failed: %w", err)
	}
	return updated, nil
}

func (s *DefaultGroupService) Commit(ctx context.Context, sess models.Session, tasks []models.Task) []CommitResult {
	logger := utils.GetLogger()
	results := make([]CommitResult, 0, len(tasks))
	for _, task := range tasks {
		err := s.API.UpdateTask(ctx, sess, task)
		if err != nil {
			logger.Warn("task update failed during commit",
				zap.Int("taskID", task.ID), zap.Error(err))
		}
		results = append(results, CommitResult{TaskID: task.ID, Err: err})
	}
	return results
}

// NormalizeMembers adapts the two historical member shapes ("userId" vs "id")
// into the canonical GroupMember. Records carrying neither identifier are
// dropped with a warning.
func NormalizeMembers(raw []upstream.RawMember) []models.GroupMember {
	members := make([]models.GroupMember, 0, len(raw))
	for _, m := range raw {
		var id int
		switch {
		case m.UserID != nil:
			id = *m.UserID
		case m.ID != nil:
			id = *m.ID
		default:
			utils.GetLogger().Warn("dropping group member without an identifier",
				zap.String("username", m.Username))
			continue
		}
		members = append(members, models.GroupMember{UserID: id, Username: m.Username})
	}
	return members
}
