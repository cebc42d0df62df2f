package planner

import (
	"context"

	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

const (
	// MaxActivities is the number of activities kept in the log.
	MaxActivities = 20

	// RecentActivityCount is the number of activities shown on the dashboard.
	RecentActivityCount = 5
)

// withActivity returns the log with a new activity prepended and the oldest
// entries beyond MaxActivities dropped. The log of the service is not
// changed. It must be called with the lock held.
func (s *Service) withActivity(t models.ActivityType, title, description string, amount *decimal.Decimal) []models.Activity {
	activity := models.Activity{
		ID:          uuid.New(),
		Type:        t,
		Title:       title,
		Description: description,
		Amount:      amount,
		Timestamp:   s.now(),
	}

	activities := append([]models.Activity{activity}, s.activities...)
	if len(activities) > MaxActivities {
		activities = activities[:MaxActivities]
	}

	return activities
}

// commitGoals stores goals together with activities and makes both the
// current state. It must be called with the lock held.
func (s *Service) commitGoals(ctx context.Context, goals []models.Goal, activities []models.Activity) error {
	err := models.SaveAll(ctx, s.store, map[string]any{
		models.KeyGoals:      goals,
		models.KeyActivities: activities,
	})
	if err != nil {
		return err
	}

	s.goals = goals
	s.activities = activities

	return nil
}

// Activities returns the full log, newest first.
func (s *Service) Activities() []models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.activities)
}

// RecentActivities returns the latest activities by timestamp.
func (s *Service) RecentActivities() []models.Activity {
	activities := s.Activities()

	slices.SortStableFunc(activities, func(a, b models.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	if len(activities) > RecentActivityCount {
		activities = activities[:RecentActivityCount]
	}

	return activities
}
