// Package generation turns a prompt into a structured guide using the
// OpenAI API.
//
// The Responses API is the primary path; when it fails (older gateways,
// models without Responses support) the client retries once through the
// Chat Completions API before giving up. Either way the reply is run
// through tolerant JSON extraction, since models wrap their output in
// fences and commentary more often than not.
package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"

	"github.com/guidesmith/guidesmith/internal/guide"
	"github.com/guidesmith/guidesmith/pkg/logger"
)

// Client calls the OpenAI API and decodes guide JSON from its replies.
type Client struct {
	api openai.Client
	cfg Config
	log *logger.Logger
}

// NewClient validates the configuration and builds the API client.
func NewClient(cfg Config, log *logger.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(time.Duration(cfg.TimeoutS) * time.Second),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api: openai.NewClient(opts...),
		cfg: cfg,
		log: log,
	}, nil
}

// GenerateGuide sends the prompt and decodes the reply into a guide.
func (c *Client) GenerateGuide(ctx context.Context, prompt string) (guide.Guide, error) {
	text, err := c.complete(ctx, prompt)
	if err != nil {
		return guide.Guide{}, err
	}
	return DecodeGuide(text)
}

// complete runs the prompt through the Responses API, falling back to Chat
// Completions when that path fails.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	text, err := c.completeResponses(ctx, prompt)
	if err == nil {
		return text, nil
	}

	c.log.Warn("responses API failed, falling back to chat completions", err, map[string]interface{}{
		"model": c.cfg.Model,
	})

	text, fallbackErr := c.completeChat(ctx, prompt)
	if fallbackErr != nil {
		return "", fmt.Errorf("generation: model call failed: %w (responses path: %v)", fallbackErr, err)
	}
	return text, nil
}

func (c *Client) completeResponses(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.Responses.New(ctx, responses.ResponseNewParams{
		Model:       shared.ResponsesModel(c.cfg.Model),
		Input:       responses.ResponseNewParamsInputUnion{OfString: openai.String(prompt)},
		Temperature: openai.Float(c.cfg.Temperature),
	})
	if err != nil {
		return "", err
	}
	return resp.OutputText(), nil
}

func (c *Client) completeChat(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.cfg.Temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("generation: chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
