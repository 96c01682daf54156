// File: upstream/schedule.go
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"taskweave/models"
)

// GenerateSchedule asks the remote allocator to partition the requested task
// hours across the user's available days. The allocator's error field is
// carried back verbatim inside the response; transport failures are errors.
func (c *HTTPClient) GenerateSchedule(ctx context.Context, sess models.Session, req AllocationRequest) (*AllocationResponse, error) {
	var resp AllocationResponse
	if _, err := c.doJSON(ctx, sess, http.MethodPost, "/ai/generate-schedule", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SaveSchedule writes an accepted snapshot to the remote store.
func (c *HTTPClient) SaveSchedule(ctx context.Context, sess models.Session, snapshot models.ScheduleSnapshot) error {
	payload := struct {
		UserID   string                  `json:"user_id"`
		Schedule models.ScheduleSnapshot `json:"schedule"`
	}{
		UserID:   sess.UserID,
		Schedule: snapshot,
	}
	_, err := c.doJSON(ctx, sess, http.MethodPost, "/save-schedule", payload, nil)
	return err
}

// CurrentSchedule reads the server-authoritative snapshot. The endpoint
// answers either a DaySchedule array or a message sentinel; the sentinel and
// 404 both map to ErrNoSchedule.
func (c *HTTPClient) CurrentSchedule(ctx context.Context, sess models.Session) (models.ScheduleSnapshot, error) {
	var raw json.RawMessage
	_, err := c.doJSON(ctx, sess, http.MethodGet, "/ai/current-schedule/"+sess.UserID, nil, &raw)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrNoSchedule
		}
		return nil, err
	}

	var snapshot models.ScheduleSnapshot
	if err := json.Unmarshal(raw, &snapshot); err == nil {
		return snapshot, nil
	}

	var sentinel struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &sentinel); err == nil && sentinel.Message != "" {
		return nil, ErrNoSchedule
	}
	return nil, errors.New("upstream returned an unrecognized schedule payload")
}
