// File: services/availability/availability.go
package availability

import (
	"context"
	"fmt"

	"taskweave/models"
	"taskweave/upstream"
	"taskweave/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityService is the production implementation backed by the
// upstream schedule endpoints.
type DefaultAvailabilityService struct {
	API upstream.API
}

func (s *DefaultAvailabilityService) Load(ctx context.Context, sess models.Session) (models.WeekAvailability, error) {
	week, err := s.API.FetchAvailability(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	if week == nil {
		utils.GetLogger().Debug("no availability declared yet",
			zap.String("userID", sess.UserID))
		return nil, nil
	}
	return week, nil
}

func (s *DefaultAvailabilityService) Toggle(week models.WeekAvailability, day, slot string) error {
	if !models.IsWeekDay(day) {
		return fmt.Errorf("unknown weekday %q", day)
	}
	if week == nil {
		return fmt.Errorf("availability grid not initialized")
	}
	if week.Has(day, slot) {
		week.Remove(day, slot)
	} else {
		week.Add(day, slot)
	}
	return nil
}

func (s *DefaultAvailabilityService) Save(ctx context.Context, sess models.Session, week models.WeekAvailability) error {
	if week == nil {
		week = models.WeekAvailability{}
	}
	if err := s.API.SaveAvailability(ctx, sess, week); err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}
	utils.GetLogger().Info("availability saved",
		zap.String("userID", sess.UserID),
		zap.Int("totalHours", week.TotalHours()))
	return nil
}
