// File: upstream/groups.go
package upstream

import (
	"context"
	"fmt"
	"net/http"

	"taskweave/models"
)

// RawMember is a group member as the API returns it. Two shapes exist
// historically: newer records carry "userId", older ones carry "id". The
// group service normalizes both into models.GroupMember before use.
type RawMember struct {
	ID       *int   `json:"id,omitempty"`
	UserID   *int   `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
}

// GroupTasks lists the tasks belonging to a group.
func (c *HTTPClient) GroupTasks(ctx context.Context, sess models.Session, groupID int) ([]models.Task, error) {
	var tasks []models.Task
	path := fmt.Sprintf("/groups/%d/tasks", groupID)
	if _, err := c.doJSON(ctx, sess, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GroupMembers lists a group's members in their raw wire shape.
func (c *HTTPClient) GroupMembers(ctx context.Context, sess models.Session, groupID int) ([]RawMember, error) {
	var members []RawMember
	path := fmt.Sprintf("/groups/%d/members", groupID)
	if _, err := c.doJSON(ctx, sess, http.MethodGet, path, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// DistributeTasks asks the remote distributor to assign the given tasks
// across the given members and returns the updated task list.
func (c *HTTPClient) DistributeTasks(ctx context.Context, sess models.Session, req DistributionRequest) ([]models.Task, error) {
	var resp struct {
		Tasks []models.Task `json:"tasks"`
		Error string        `json:"error,omitempty"`
	}
	if _, err := c.doJSON(ctx, sess, http.MethodPost, "/ai/distribute-tasks", req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, &APIError{Status: http.StatusOK, Message: resp.Error}
	}
	return resp.Tasks, nil
}
