// File: services/schedule/tasks.go
package schedule

import (
	"context"
	"fmt"

	"taskweave/models"
	"taskweave/upstream"
	"taskweave/utils"

	"go.uber.org/zap"
)

// UnknownGroupName labels group tasks whose group lookup failed.
const UnknownGroupName = "Unknown Group"

// DefaultTaskGatherer assembles the build screen's task list: in-progress
// personal tasks plus in-progress group tasks bucketed by group name.
type DefaultTaskGatherer struct {
	API upstream.API
}

func (g *DefaultTaskGatherer) GatherTasks(ctx context.Context, sess models.Session) (*models.StructuredTasks, error) {
	personal, err := g.API.UserTasks(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch personal tasks: %w", err)
	}

	groupTasks, err := g.API.UserGroupTasks(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group tasks: %w", err)
	}

	structured := &models.StructuredTasks{
		Personal: filterInProgress(personal),
		Groups:   map[string][]models.Task{},
	}

	// Resolve each distinct group id once; a failed lookup falls back to a
	// placeholder name rather than dropping the task.
	names := map[int]string{}
	for _, task := range filterInProgress(groupTasks) {
		name, resolved := names[task.GroupID]
		if !resolved {
			group, err := g.API.GroupByID(ctx, sess, task.GroupID)
			if err != nil || group.Name == "" {
				utils.GetLogger().Warn("failed to resolve group name",
					zap.Int("groupID", task.GroupID), zap.Error(err))
				name = UnknownGroupName
			} else {
				name = group.Name
			}
			names[task.GroupID] = name
		}
		structured.Groups[name] = append(structured.Groups[name], task)
	}
	return structured, nil
}

// InitialHours seeds every schedulable task with a one-hour request.
func InitialHours(tasks *models.StructuredTasks) models.TaskHourRequest {
	requests := models.TaskHourRequest{}
	for _, task := range tasks.All() {
		requests[fmt.Sprintf("%d", task.ID)] = 1
	}
	return requests
}

func filterInProgress(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == models.TaskStatusInProgress {
			out = append(out, t)
		}
	}
	return out
}
