// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/memsearch/internal/logger"
)

// Provider names accepted by [NewAdapter].
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

var defaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-sonnet-4-5-20250929",
	ProviderGemini:    "gemini-2.0-flash",
}

// Providers lists the supported provider names.
func Providers() []string {
	return []string{ProviderOpenAI, ProviderAnthropic, ProviderGemini}
}

// DefaultModel returns the model used for provider when none is configured,
// or "" for an unknown provider.
func DefaultModel(provider string) string {
	return defaultModels[provider]
}

// NewAdapter builds the [LLMAdapter] for provider. It fails with
// [ErrUnknownProvider] for names outside [Providers] and with
// [ErrMissingAPIKey] when the provider's key is not set in creds.
func NewAdapter(ctx context.Context, provider string, creds Credentials, log *logger.Logger) (LLMAdapter, error) {
	if log == nil {
		log = logger.Nop()
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIAdapter(creds, log)
	case ProviderAnthropic:
		return newAnthropicAdapter(creds, log)
	case ProviderGemini:
		return newGeminiAdapter(ctx, creds, log)
	default:
		return nil, fmt.Errorf("%w %q, available: %s",
			ErrUnknownProvider, provider, strings.Join(Providers(), ", "))
	}
}
