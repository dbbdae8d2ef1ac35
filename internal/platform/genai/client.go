// Package genai wraps the LLM provider used to turn a patient summary into
// a clinical narrative. Failure modes are exposed as sentinel errors so the
// HTTP layer can report them distinctly.
package genai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrNoAPIKey means the client was constructed without credentials.
	ErrNoAPIKey = errors.New("genai: api key not configured")
	// ErrRateLimited means the provider rejected the call for quota reasons;
	// the caller may retry after a pause.
	ErrRateLimited = errors.New("genai: rate limited")
	// ErrUnavailable means the provider could not be reached or answered
	// with a server error.
	ErrUnavailable = errors.New("genai: service unavailable")
	// ErrEmptyResponse means the provider answered without usable content.
	ErrEmptyResponse = errors.New("genai: empty response")
)

// Config carries the provider settings resolved from the environment.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

const defaultModel = openai.GPT4oMini

// Client generates narratives through the OpenAI chat completion API.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	hasKey  bool
}

// NewClient builds a narrative client. A missing API key does not fail
// construction; calls return ErrNoAPIKey so the rest of the service keeps
// working without narrative support.
func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:     openai.NewClientWithConfig(apiCfg),
		model:   model,
		timeout: timeout,
		hasKey:  cfg.APIKey != "",
	}
}

// Generate sends the prompt and returns the model's reply text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.hasKey {
		return "", ErrNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case apiErr.HTTPStatusCode == http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", ErrNoAPIKey, err)
		case apiErr.HTTPStatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return fmt.Errorf("genai: %w", err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
