// Package claude wraps the Anthropic Messages API for the two text tasks the
// pipeline needs: one-word classification and short generation.
package claude

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	DefaultModel = "claude-haiku-4-5-20251001"

	classifyMaxTokens = 10
)

var ErrEmptyResponse = errors.New("model returned no text")

// Messager is the subset of the SDK messages service the client uses.
type Messager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type Client struct {
	messages Messager
	model    string
}

type Options struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// New returns nil when no API key is configured. Requests are sent once:
// callers fail open on errors, so SDK retries would only add latency.
func New(o Options) *Client {
	apiKey := strings.TrimSpace(o.APIKey)
	if apiKey == "" {
		return nil
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}

	if o.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(o.Timeout))
	}

	if o.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(o.HTTPClient))
	}

	c := anthropic.NewClient(opts...)

	return NewWithMessager(&c.Messages, o.Model)
}

func NewWithMessager(messages Messager, model string) *Client {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	return &Client{
		messages: messages,
		model:    model,
	}
}

func (c *Client) Model() string {
	return c.model
}

// Classify sends text under the given instruction and returns the model's
// short answer as is.
func (c *Client) Classify(ctx context.Context, instruction, text string) (string, error) {
	answer, err := c.complete(ctx, instruction, text, classifyMaxTokens)
	if err != nil {
		return "", fmt.Errorf("c.complete(classify): %w", err)
	}

	return answer, nil
}

func (c *Client) Generate(ctx context.Context, instruction, message string, maxTokens int) (string, error) {
	text, err := c.complete(ctx, instruction, message, maxTokens)
	if err != nil {
		return "", fmt.Errorf("c.complete(generate): %w", err)
	}

	return text, nil
}

func (c *Client) complete(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	resp, err := c.messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
	})
	if err != nil {
		return "", fmt.Errorf("messages.New: %w", err)
	}

	var sb strings.Builder

	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}

	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}
