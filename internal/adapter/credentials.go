// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Credentials holds provider API keys and endpoints. They are read from the
// environment only and never stored in config files.
type Credentials struct {
	// OpenAIAPIKey authenticates requests to the OpenAI-compatible endpoint.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	// OpenAIBaseURL points at the OpenAI API or any compatible server.
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`

	AnthropicAPIKey  string `env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL string `env:"ANTHROPIC_BASE_URL" envDefault:"https://api.anthropic.com"`

	GoogleAPIKey string `env:"GOOGLE_API_KEY"`

	// GoogleBaseURL overrides the Gemini API endpoint. Empty keeps the SDK
	// default.
	GoogleBaseURL string `env:"GOOGLE_BASE_URL"`

	// RequestTimeout bounds a single completion request.
	RequestTimeout time.Duration `env:"MEMSEARCH_LLM_TIMEOUT" envDefault:"2m"`
}

// LoadCredentials reads [Credentials] from the process environment.
func LoadCredentials() (Credentials, error) {
	var c Credentials
	if err := env.Parse(&c); err != nil {
		return Credentials{}, fmt.Errorf("error parsing credentials from env: %w", err)
	}
	return c, nil
}

// LoadCredentialsFrom reads [Credentials] from a fixed variable map instead
// of the process environment.
func LoadCredentialsFrom(environment map[string]string) (Credentials, error) {
	var c Credentials
	if err := env.ParseWithOptions(&c, env.Options{Environment: environment}); err != nil {
		return Credentials{}, fmt.Errorf("error parsing credentials from env: %w", err)
	}
	return c, nil
}
