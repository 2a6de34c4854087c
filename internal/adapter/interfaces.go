// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// LLM providers used by memory compaction.
//
// The primary abstraction is [LLMAdapter], which decouples the compaction
// service from the provider protocol. OpenAI and Anthropic are reached over
// their REST APIs with resty; Gemini goes through the genai SDK.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of provider
// (e.g. [ErrUnauthorized] for 401, [ErrRateLimited] for 429).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/llm_adapter_mock.go -package=mock

// LLMAdapter sends a single-turn prompt to an LLM provider.
type LLMAdapter interface {
	// Complete sends prompt as one user message to model and returns the
	// text of the reply. An empty reply is not an error.
	Complete(ctx context.Context, model, prompt string) (string, error)

	// Name returns the provider name the adapter was built for, as accepted
	// by [NewAdapter].
	Name() string
}
