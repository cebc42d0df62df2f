// Package planner manages the goals, the monthly budget and the activity
// log of the user. It keeps them in memory and writes every change through
// to the key-value store.
package planner

import (
	"context"
	"sync"
	"time"

	"github.com/fingoal/backend/internal/advisor"
	"github.com/fingoal/backend/internal/models"
)

// StepAdvisor returns the action plan for a goal. It must never return an
// empty plan.
type StepAdvisor interface {
	Steps(ctx context.Context, apiKey string, goal models.Goal, uc advisor.UserContext) []string
}

// KeyProvider returns the API key for the chat completion endpoint, or an
// empty string if none is configured.
type KeyProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// Service owns goals, budget and activities. All methods are safe for
// concurrent use, operations are executed one at a time.
type Service struct {
	mu sync.Mutex

	store   models.Storage
	advisor StepAdvisor
	keys    KeyProvider
	now     func() time.Time

	goals      []models.Goal
	budget     models.Budget
	activities []models.Activity
}

// New creates a Service. Call Load before using it.
func New(store models.Storage, stepAdvisor StepAdvisor, keys KeyProvider, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		store:   store,
		advisor: stepAdvisor,
		keys:    keys,
		now:     now,
	}
}

// Load reads goals, budget and activities from the store. Missing keys
// result in empty collections and a zero budget.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		goals      []models.Goal
		budget     models.Budget
		activities []models.Activity
	)

	if _, err := models.Load(ctx, s.store, models.KeyGoals, &goals); err != nil {
		return err
	}

	if _, err := models.Load(ctx, s.store, models.KeyBudget, &budget); err != nil {
		return err
	}

	if _, err := models.Load(ctx, s.store, models.KeyActivities, &activities); err != nil {
		return err
	}

	s.goals = goals
	s.budget = budget
	s.activities = activities

	return nil
}
