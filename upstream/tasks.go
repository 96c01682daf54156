// File: upstream/tasks.go
package upstream

import (
	"context"
	"fmt"
	"net/http"

	"taskweave/models"
)

// UserTasks lists the user's personal tasks.
func (c *HTTPClient) UserTasks(ctx context.Context, sess models.Session) ([]models.Task, error) {
	var tasks []models.Task
	if _, err := c.doJSON(ctx, sess, http.MethodGet, "/tasks/user/"+sess.UserID, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UserGroupTasks lists the group tasks assigned to the user.
func (c *HTTPClient) UserGroupTasks(ctx context.Context, sess models.Session) ([]models.Task, error) {
	var tasks []models.Task
	if _, err := c.doJSON(ctx, sess, http.MethodGet, "/group-tasks/user/"+sess.UserID, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GroupByID fetches one group's details.
func (c *HTTPClient) GroupByID(ctx context.Context, sess models.Session, groupID int) (*models.Group, error) {
	var group models.Group
	path := fmt.Sprintf("/groups?group_id=%d", groupID)
	if _, err := c.doJSON(ctx, sess, http.MethodGet, path, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// UpdateTask writes one task back to the server.
func (c *HTTPClient) UpdateTask(ctx context.Context, sess models.Session, task models.Task) error {
	path := fmt.Sprintf("/tasks/%d", task.ID)
	_, err := c.doJSON(ctx, sess, http.MethodPut, path, task, nil)
	return err
}
