// File: upstream/availability.go
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"taskweave/models"
)

// FetchAvailability loads the user's weekly free-time grid. A 404 or a
// "No schedule found" sentinel means the user never declared availability;
// that is reported as a nil grid, not an error. Per-day values may arrive as
// arrays or as comma-joined strings; both are normalized into clean slot sets.
func (c *HTTPClient) FetchAvailability(ctx context.Context, sess models.Session) (models.WeekAvailability, error) {
	var raw map[string]json.RawMessage
	_, err := c.doJSON(ctx, sess, http.MethodGet, "/schedule/"+sess.UserID, nil, &raw)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	if msg, ok := raw["message"]; ok {
		var text string
		if json.Unmarshal(msg, &text) == nil && strings.Contains(text, "No schedule found") {
			return nil, nil
		}
	}

	week := models.WeekAvailability{}
	for _, day := range models.WeekDays {
		week[day] = decodeDaySlots(raw[day])
	}
	return week, nil
}

// decodeDaySlots tolerates the two historical day encodings: a JSON array of
// labels, or one comma-joined string. Anything else decodes to an empty set.
func decodeDaySlots(raw json.RawMessage) []string {
	slots := []string{}
	if len(raw) == 0 {
		return slots
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, s := range list {
			slots = appendSlot(slots, s)
		}
		return slots
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil && joined != "" {
		for _, s := range strings.Split(joined, ",") {
			slots = appendSlot(slots, s)
		}
	}
	return slots
}

func appendSlot(slots []string, s string) []string {
	norm := models.NormalizeSlot(s)
	if norm == "" {
		return slots
	}
	for _, existing := range slots {
		if existing == norm {
			return slots
		}
	}
	return append(slots, norm)
}

// SaveAvailability persists the full grid: all seven days are transmitted
// every time, empty arrays included. There is no partial-day save.
func (c *HTTPClient) SaveAvailability(ctx context.Context, sess models.Session, week models.WeekAvailability) error {
	payload := map[string][]string{}
	for _, day := range models.WeekDays {
		slots := []string{}
		for _, s := range week[day] {
			slots = appendSlot(slots, s)
		}
		payload[day] = slots
	}
	_, err := c.doJSON(ctx, sess, http.MethodPut, "/schedule/"+sess.UserID, payload, nil)
	return err
}
