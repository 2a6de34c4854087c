// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/memsearch/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds the adapter for provider pointed at the test server.
func newTestAdapter(t *testing.T, provider, serverURL string) LLMAdapter {
	t.Helper()
	creds := Credentials{
		OpenAIAPIKey:     "sk-test",
		OpenAIBaseURL:    serverURL + "/v1",
		AnthropicAPIKey:  "ak-test",
		AnthropicBaseURL: serverURL,
		GoogleAPIKey:     "gk-test",
		GoogleBaseURL:    serverURL,
		RequestTimeout:   5 * time.Second,
	}

	a, err := NewAdapter(context.Background(), provider, creds, logger.Nop())
	require.NoError(t, err)
	require.Equal(t, provider, a.Name())
	return a
}

// ── OpenAI ──────────────────────────────────────────────────────────────────

func TestOpenAI_Complete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req openAIChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.InDelta(t, 0.3, req.Temperature, 1e-9)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, chatMessage{Role: "user", Content: "summarize"}, req.Messages[0])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"# Summary"}}]}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, ProviderOpenAI, srv.URL).Complete(context.Background(), "gpt-4o-mini", "summarize")
	require.NoError(t, err)
	assert.Equal(t, "# Summary", got)
}

func TestOpenAI_Complete_NullContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":null}}]}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, ProviderOpenAI, srv.URL).Complete(context.Background(), "m", "p")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenAI_Complete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, ProviderOpenAI, srv.URL).Complete(context.Background(), "m", "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAI_Complete_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid key"}}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, ProviderOpenAI, srv.URL).Complete(context.Background(), "m", "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid key")
}

func TestOpenAI_Complete_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, ProviderOpenAI, srv.URL).Complete(ctx, "m", "p")
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Anthropic ───────────────────────────────────────────────────────────────

func TestAnthropic_Complete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "ak-test", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req anthropicMessagesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-sonnet-4-5-20250929", req.Model)
		assert.Equal(t, 4096, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "summarize", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"compressed"}]}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, ProviderAnthropic, srv.URL).
		Complete(context.Background(), "claude-sonnet-4-5-20250929", "summarize")
	require.NoError(t, err)
	assert.Equal(t, "compressed", got)
}

func TestAnthropic_Complete_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, ProviderAnthropic, srv.URL).Complete(context.Background(), "m", "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestAnthropic_Complete_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, ProviderAnthropic, srv.URL).Complete(context.Background(), "m", "p")
	assert.ErrorIs(t, err, ErrRateLimited)
}

// ── Gemini ──────────────────────────────────────────────────────────────────

func TestGemini_Complete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "gemini-2.0-flash:generateContent"), r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"part one, "},{"text":"part two"}]}}]}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, ProviderGemini, srv.URL).Complete(context.Background(), "gemini-2.0-flash", "summarize")
	require.NoError(t, err)
	assert.Equal(t, "part one, part two", got)
}

func TestGemini_Complete_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, ProviderGemini, srv.URL).Complete(context.Background(), "gemini-2.0-flash", "p")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGemini_Complete_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"bad prompt","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, ProviderGemini, srv.URL).Complete(context.Background(), "gemini-2.0-flash", "p")
	assert.Error(t, err)
}

// ── NewAdapter ──────────────────────────────────────────────────────────────

func TestNewAdapter_UnknownProvider(t *testing.T) {
	a, err := NewAdapter(context.Background(), "llama", Credentials{}, nil)
	assert.Nil(t, a)
	require.ErrorIs(t, err, ErrUnknownProvider)
	assert.Contains(t, err.Error(), `"llama"`)
	assert.Contains(t, err.Error(), "openai, anthropic, gemini")
}

func TestNewAdapter_MissingAPIKey(t *testing.T) {
	for _, provider := range Providers() {
		t.Run(provider, func(t *testing.T) {
			_, err := NewAdapter(context.Background(), provider, Credentials{}, nil)
			assert.ErrorIs(t, err, ErrMissingAPIKey)
		})
	}
}

func TestNewAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewAdapter(context.Background(), ProviderOpenAI, Credentials{OpenAIAPIKey: "k", OpenAIBaseURL: "   "}, nil)
	assert.ErrorContains(t, err, "invalid base url")
}

func TestDefaultModel(t *testing.T) {
	assert.Equal(t, "gpt-4o-mini", DefaultModel(ProviderOpenAI))
	assert.Equal(t, "claude-sonnet-4-5-20250929", DefaultModel(ProviderAnthropic))
	assert.Equal(t, "gemini-2.0-flash", DefaultModel(ProviderGemini))
	assert.Empty(t, DefaultModel("llama"))
}

// ── Credentials ─────────────────────────────────────────────────────────────

func TestLoadCredentialsFrom_Defaults(t *testing.T) {
	c, err := LoadCredentialsFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "https://api.openai.com/v1", c.OpenAIBaseURL)
	assert.Equal(t, "https://api.anthropic.com", c.AnthropicBaseURL)
	assert.Equal(t, 2*time.Minute, c.RequestTimeout)
	assert.Empty(t, c.OpenAIAPIKey)
	assert.Empty(t, c.GoogleBaseURL)
}

func TestLoadCredentialsFrom_Values(t *testing.T) {
	c, err := LoadCredentialsFrom(map[string]string{
		"OPENAI_API_KEY":        "sk",
		"OPENAI_BASE_URL":       "http://localhost:11434/v1",
		"ANTHROPIC_API_KEY":     "ak",
		"GOOGLE_API_KEY":        "gk",
		"MEMSEARCH_LLM_TIMEOUT": "30s",
	})
	require.NoError(t, err)
	assert.Equal(t, "sk", c.OpenAIAPIKey)
	assert.Equal(t, "http://localhost:11434/v1", c.OpenAIBaseURL)
	assert.Equal(t, "ak", c.AnthropicAPIKey)
	assert.Equal(t, "gk", c.GoogleAPIKey)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
}

func TestLoadCredentialsFrom_BadDuration(t *testing.T) {
	_, err := LoadCredentialsFrom(map[string]string{"MEMSEARCH_LLM_TIMEOUT": "soon"})
	assert.Error(t, err)
}

func TestLoadCredentials_ProcessEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "from-env")
	c, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.AnthropicAPIKey)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestStatusError(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrProviderFailed},
		{http.StatusServiceUnavailable, ErrProviderFailed},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.ErrorIs(t, statusError(tt.code, "body"), tt.want)
		})
	}

	err := statusError(http.StatusTeapot, "")
	assert.EqualError(t, err, "http 418: I'm a teapot")
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("api.example.com/v1/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", got)

	got, err = normalizeBaseURL("http://localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	_, err = normalizeBaseURL("")
	assert.Error(t, err)
}
