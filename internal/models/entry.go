package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keys of the values kept in the key-value store.
const (
	KeyGoals             = "financial_goals"
	KeyBudget            = "monthly_budget"
	KeyActivities        = "recent_activities"
	KeyChatHistory       = "chat_history"
	KeyAPIKey            = "openai_api_key"
	KeyDemoMode          = "demo_mode"
	KeyVisited           = "fingoal_visited"
	KeyEducationProgress = "education_progress"
)

// Entry is a single value in the key-value store. Values are JSON documents.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Storage is a key-value store with string keys and raw JSON values.
//
// SetAll writes all values or none of them. Otherwise, the last write wins.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	SetAll(ctx context.Context, values map[string][]byte) error
	Remove(ctx context.Context, key string) error
}

// Store is the Storage backed by the entries table.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get returns the value for key. The boolean reports if the key exists.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry Entry
	err := s.db.WithContext(ctx).Where(&Entry{Key: key}).First(&entry).Error
	if errors.Is(err, ErrResourceNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return []byte(entry.Value), true, nil
}

// Set creates or replaces the value for key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&Entry{
		Key:   key,
		Value: string(value),
	}).Error
}

// SetAll creates or replaces the values for all keys in one statement.
func (s *Store) SetAll(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(values))
	for key, value := range values {
		entries = append(entries, Entry{Key: key, Value: string(value)})
	}

	// Sorted for a stable statement
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Key, b.Key)
	})

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&entries).Error
}

// Remove deletes key. Removing a key that does not exist is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Entry{Key: key}).Error
}

// Load decodes the JSON value stored under key into target.
// If the key does not exist, target is left untouched and false is returned.
func Load(ctx context.Context, s Storage, key string, target any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}

	if err := json.Unmarshal(raw, target); err != nil {
		log.Error().Err(err).Str("key", key).Msg("stored value is not valid JSON")
		return false, fmt.Errorf("%w: value for %s is not valid JSON", ErrGeneral, key)
	}

	return true, nil
}

// Save encodes value as JSON and stores it under key.
func Save(ctx context.Context, s Storage, key string, value any) error {
	raw, err := encode(key, value)
	if err != nil {
		return err
	}

	return s.Set(ctx, key, raw)
}

// SaveAll encodes all values as JSON and stores them together.
func SaveAll(ctx context.Context, s Storage, values map[string]any) error {
	raw := make(map[string][]byte, len(values))
	for key, value := range values {
		v, err := encode(key, value)
		if err != nil {
			return err
		}
		raw[key] = v
	}

	return s.SetAll(ctx, raw)
}

func encode(key string, value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("value cannot be encoded as JSON")
		return nil, fmt.Errorf("%w: value for %s cannot be encoded", ErrGeneral, key)
	}

	return raw, nil
}
