// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/memsearch/internal/logger"
	"github.com/go-resty/resty/v2"
)

const openAITemperature = 0.3

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type openAIAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

func newOpenAIAdapter(creds Credentials, log *logger.Logger) (LLMAdapter, error) {
	if creds.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: set OPENAI_API_KEY", ErrMissingAPIKey)
	}

	client, err := newRESTClient(creds.OpenAIBaseURL, creds.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	client.SetAuthToken(creds.OpenAIAPIKey)

	return &openAIAdapter{client: client, logger: log}, nil
}

func (o *openAIAdapter) Name() string {
	return ProviderOpenAI
}

// Complete implements [LLMAdapter] with the chat completions endpoint. A
// choice without content yields an empty string.
func (o *openAIAdapter) Complete(ctx context.Context, model, prompt string) (string, error) {
	o.logger.Debug().Str("provider", ProviderOpenAI).Str("model", model).Int("prompt_len", len(prompt)).Msg("sending completion request")

	var out openAIChatResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(openAIChatRequest{
			Model:       model,
			Messages:    []chatMessage{{Role: "user", Content: prompt}},
			Temperature: openAITemperature,
		}).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openai completion request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}

	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openai completion: %w", ErrEmptyResponse)
	}
	if out.Choices[0].Message.Content == nil {
		return "", nil
	}
	return *out.Choices[0].Message.Content, nil
}
