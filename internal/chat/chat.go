// Package chat implements the conversation with the financial assistant.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fingoal/backend/internal/advisor"
	"github.com/fingoal/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// HistoryWindow is the number of previous messages sent along with a new
// message.
const HistoryWindow = 10

const systemPrompt = `You are FinGoal AI, a financial advisor for Gen Z (ages 18-27). You give practical advice that fits the financial reality of young adults.

How you answer:
- Friendly and conversational, an emoji now and then is fine
- Concrete and actionable, with specific numbers and examples where possible
- Encouraging and never judgmental
- Aware of student loans, high living costs, gig work and housing prices
- Mindful that money is a source of stress for many people

Topics you know well:
- Emergency funds
- Student debt payoff
- Investing with small amounts
- Budgeting on an irregular income
- Saving for a home, a car or travel
- Building and managing credit
- Side hustles
- Financial apps and tools

End every answer with a follow-up question.`

var (
	ErrEmptyMessage = fmt.Errorf("%w: the message must not be empty", models.ErrValidation)
	ErrChatFailed   = errors.New("sorry, I encountered an error, please try again")
)

// KeyProvider returns the API key for the chat completion endpoint, or an
// empty string if none is configured.
type KeyProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// Session is the single conversation of the user. The history is kept in
// memory and written through to the store after every change.
type Session struct {
	mu sync.Mutex

	store   models.Storage
	client  advisor.Completer
	keys    KeyProvider
	history []models.ChatMessage
}

func New(store models.Storage, client advisor.Completer, keys KeyProvider) *Session {
	return &Session{
		store:  store,
		client: client,
		keys:   keys,
	}
}

// Load reads the history from the store.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var history []models.ChatMessage
	if _, err := models.Load(ctx, s.store, models.KeyChatHistory, &history); err != nil {
		return err
	}
	s.history = history

	return nil
}

// Send adds the message to the conversation and returns the reply.
//
// Without an API key, the reply is a canned response. If the request to the
// chat completion endpoint fails, an error wrapping ErrChatFailed is
// returned and no reply is added to the history.
func (s *Session) Send(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	apiKey, err := s.keys.APIKey(ctx)
	if err != nil {
		return "", err
	}

	history := append(s.history, models.ChatMessage{Role: models.RoleUser, Content: message})
	if err := s.save(ctx, history); err != nil {
		return "", err
	}

	var reply string
	if apiKey == "" {
		reply = DemoResponse(message)
	} else {
		reply, err = s.client.Complete(ctx, apiKey, s.conversation())
		if err != nil {
			log.Error().Err(err).Msg("chat completion failed")
			return "", fmt.Errorf("%w: %w", ErrChatFailed, err)
		}
	}

	history = append(s.history, models.ChatMessage{Role: models.RoleAssistant, Content: reply})
	if err := s.save(ctx, history); err != nil {
		return "", err
	}

	return reply, nil
}

// conversation returns the system prompt followed by the latest messages.
// It must be called with the lock held.
func (s *Session) conversation() []models.ChatMessage {
	recent := s.history
	if len(recent) > HistoryWindow {
		recent = recent[len(recent)-HistoryWindow:]
	}

	messages := make([]models.ChatMessage, 0, len(recent)+1)
	messages = append(messages, models.ChatMessage{Role: models.RoleSystem, Content: systemPrompt})
	return append(messages, recent...)
}

// save persists history and makes it the current history. It must be
// called with the lock held.
func (s *Session) save(ctx context.Context, history []models.ChatMessage) error {
	if err := models.Save(ctx, s.store, models.KeyChatHistory, history); err != nil {
		return err
	}
	s.history = history

	return nil
}

// History returns all messages in order.
func (s *Session) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]models.ChatMessage, 0, len(s.history))
	return append(history, s.history...)
}

// Clear removes all messages.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, models.KeyChatHistory); err != nil {
		return err
	}
	s.history = nil

	return nil
}
