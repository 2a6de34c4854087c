// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/memsearch/internal/logger"
	"github.com/go-resty/resty/v2"
)

const (
	anthropicVersion   = "2023-06-01"
	anthropicMaxTokens = 4096
)

type anthropicMessagesRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type anthropicMessagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type anthropicAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

func newAnthropicAdapter(creds Credentials, log *logger.Logger) (LLMAdapter, error) {
	if creds.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("%w: set ANTHROPIC_API_KEY", ErrMissingAPIKey)
	}

	client, err := newRESTClient(creds.AnthropicBaseURL, creds.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}
	client.
		SetHeader("x-api-key", creds.AnthropicAPIKey).
		SetHeader("anthropic-version", anthropicVersion)

	return &anthropicAdapter{client: client, logger: log}, nil
}

func (a *anthropicAdapter) Name() string {
	return ProviderAnthropic
}

// Complete implements [LLMAdapter] with the messages endpoint and returns the
// first text block of the reply.
func (a *anthropicAdapter) Complete(ctx context.Context, model, prompt string) (string, error) {
	a.logger.Debug().Str("provider", ProviderAnthropic).Str("model", model).Int("prompt_len", len(prompt)).Msg("sending completion request")

	var out anthropicMessagesResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(anthropicMessagesRequest{
			Model:     model,
			MaxTokens: anthropicMaxTokens,
			Messages:  []chatMessage{{Role: "user", Content: prompt}},
		}).
		SetResult(&out).
		Post("/v1/messages")
	if err != nil {
		return "", fmt.Errorf("anthropic messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	for _, block := range out.Content {
		if block.Type == "" || block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("anthropic messages: %w", ErrEmptyResponse)
}
