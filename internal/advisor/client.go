package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fingoal/backend/internal/models"
)

const (
	DefaultURL   = "https://api.openai.com/v1/chat/completions"
	DefaultModel = "gpt-3.5-turbo"
)

var (
	ErrTransport = errors.New("the chat completion request failed")
	ErrParse     = errors.New("the reply did not contain any steps")
)

type completionRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	MaxTokens   int                  `json:"max_tokens"`
	Temperature float64              `json:"temperature"`
}

type choice struct {
	Message models.ChatMessage `json:"message"`
}

type completionResponse struct {
	Choices []choice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client talks to a chat completion endpoint with the OpenAI wire format.
type Client struct {
	URL         string
	Model       string
	MaxTokens   int
	Temperature float64
	HTTPClient  *http.Client
}

// NewClient returns a client for url using model. Empty values select
// DefaultURL and DefaultModel.
func NewClient(url, model string) *Client {
	if url == "" {
		url = DefaultURL
	}

	if model == "" {
		model = DefaultModel
	}

	return &Client{
		URL:         url,
		Model:       model,
		MaxTokens:   500,
		Temperature: 0.7,
		HTTPClient:  &http.Client{},
	}
}

// Complete sends the messages and returns the content of the first choice.
//
// All failures, including a missing apiKey and non-2xx responses, wrap
// ErrTransport. The request is sent exactly once.
func (c *Client) Complete(ctx context.Context, apiKey string, messages []models.ChatMessage) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("%w: no API key configured", ErrTransport)
	}

	body, err := json.Marshal(completionRequest{
		Model:       c.Model,
		Messages:    messages,
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	var decoded completionResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && decoded.Error != nil {
			return "", fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, decoded.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	if decodeErr != nil {
		return "", fmt.Errorf("%w: could not decode response: %w", ErrTransport, decodeErr)
	}

	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("%w: response contains no choices", ErrTransport)
	}

	return decoded.Choices[0].Message.Content, nil
}
