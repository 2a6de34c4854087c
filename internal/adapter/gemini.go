// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/memsearch/internal/logger"
	"google.golang.org/genai"
)

type geminiAdapter struct {
	client *genai.Client
	logger *logger.Logger
}

func newGeminiAdapter(ctx context.Context, creds Credentials, log *logger.Logger) (LLMAdapter, error) {
	if creds.GoogleAPIKey == "" {
		return nil, fmt.Errorf("%w: set GOOGLE_API_KEY", ErrMissingAPIKey)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  creds.GoogleAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if creds.GoogleBaseURL != "" {
		baseURL, err := normalizeBaseURL(creds.GoogleBaseURL)
		if err != nil {
			return nil, fmt.Errorf("gemini: invalid base url %q: %w", creds.GoogleBaseURL, err)
		}
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL + "/"}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &geminiAdapter{client: client, logger: log}, nil
}

func (g *geminiAdapter) Name() string {
	return ProviderGemini
}

// Complete implements [LLMAdapter] and concatenates the text parts of the
// first candidate. A reply without candidates yields an empty string.
func (g *geminiAdapter) Complete(ctx context.Context, model, prompt string) (string, error) {
	g.logger.Debug().Str("provider", ProviderGemini).Str("model", model).Int("prompt_len", len(prompt)).Msg("sending completion request")

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", mapGenaiError(err))
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

func mapGenaiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.Code, apiErr.Message)
	}
	return err
}
