// Package settings keeps the user preferences: the API key for the chat
// completion endpoint, demo mode, the first visit flag and the progress
// through the education content.
package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/fingoal/backend/internal/models"
	"golang.org/x/exp/slices"
)

// APIKeyPrefix is the prefix every valid API key starts with.
const APIKeyPrefix = "sk-"

var (
	ErrInvalidAPIKey       = fmt.Errorf("%w: the API key must start with %q", models.ErrValidation, APIKeyPrefix)
	ErrNegativeLessonIndex = fmt.Errorf("%w: lesson indices must not be negative", models.ErrValidation)
)

type Settings struct {
	store models.Storage
}

func New(store models.Storage) *Settings {
	return &Settings{store: store}
}

// APIKey returns the configured API key or an empty string.
func (s *Settings) APIKey(ctx context.Context) (string, error) {
	var key string
	if _, err := models.Load(ctx, s.store, models.KeyAPIKey, &key); err != nil {
		return "", err
	}

	return key, nil
}

// SetAPIKey stores key and leaves demo mode.
func (s *Settings) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if !strings.HasPrefix(key, APIKeyPrefix) {
		return ErrInvalidAPIKey
	}

	if err := models.Save(ctx, s.store, models.KeyAPIKey, key); err != nil {
		return err
	}

	return s.store.Remove(ctx, models.KeyDemoMode)
}

func (s *Settings) RemoveAPIKey(ctx context.Context) error {
	return s.store.Remove(ctx, models.KeyAPIKey)
}

// DemoMode reports whether the user chose to continue without an API key.
func (s *Settings) DemoMode(ctx context.Context) (bool, error) {
	var demo bool
	if _, err := models.Load(ctx, s.store, models.KeyDemoMode, &demo); err != nil {
		return false, err
	}

	return demo, nil
}

// EnableDemoMode switches to demo mode and forgets the API key.
func (s *Settings) EnableDemoMode(ctx context.Context) error {
	if err := models.Save(ctx, s.store, models.KeyDemoMode, true); err != nil {
		return err
	}

	return s.store.Remove(ctx, models.KeyAPIKey)
}

// FirstVisit returns true for the first call only. Every call records the
// visit.
func (s *Settings) FirstVisit(ctx context.Context) (bool, error) {
	var visited bool
	if _, err := models.Load(ctx, s.store, models.KeyVisited, &visited); err != nil {
		return false, err
	}

	if visited {
		return false, nil
	}

	return true, models.Save(ctx, s.store, models.KeyVisited, true)
}

// EducationProgress returns the indices of the completed lessons in
// ascending order.
func (s *Settings) EducationProgress(ctx context.Context) ([]int, error) {
	completed := []int{}
	if _, err := models.Load(ctx, s.store, models.KeyEducationProgress, &completed); err != nil {
		return nil, err
	}

	return completed, nil
}

// SetEducationProgress replaces the completed lessons. Duplicates are
// removed. It returns the stored indices.
func (s *Settings) SetEducationProgress(ctx context.Context, completed []int) ([]int, error) {
	seen := make(map[int]bool, len(completed))
	unique := make([]int, 0, len(completed))

	for _, i := range completed {
		if i < 0 {
			return nil, ErrNegativeLessonIndex
		}

		if !seen[i] {
			seen[i] = true
			unique = append(unique, i)
		}
	}
	slices.Sort(unique)

	return unique, models.Save(ctx, s.store, models.KeyEducationProgress, unique)
}
