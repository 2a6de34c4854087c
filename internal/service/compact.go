// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the memsearch operations built on top of the
// resolved configuration.
package service

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"dario.cat/mergo"
	"github.com/MKhiriev/memsearch/internal/adapter"
	"github.com/MKhiriev/memsearch/internal/config"
	"github.com/MKhiriev/memsearch/internal/logger"
	"github.com/MKhiriev/memsearch/models"
)

// ChunksPlaceholder marks where the joined chunks go in a prompt template.
const ChunksPlaceholder = "{chunks}"

const chunkSeparator = "\n\n---\n\n"

// DefaultPromptTemplate is used when no prompt file is configured.
const DefaultPromptTemplate = `You are a knowledge compression assistant. Given the following chunks of text ` +
	`from a knowledge base, create a concise but comprehensive summary that preserves ` +
	`all key facts, decisions, code patterns, and actionable insights.

Chunks:
{chunks}

Write a clear, well-structured markdown summary. Use headings and bullet points. ` +
	`Preserve technical details, code snippets, and specific decisions.`

// CompactOptions selects the provider, model and prompt for one compaction.
// Zero fields take the values of [DefaultCompactOptions]; an empty Model
// takes the provider's default model.
type CompactOptions struct {
	Provider       string
	Model          string
	PromptTemplate string
}

// DefaultCompactOptions returns the built-in options.
func DefaultCompactOptions() CompactOptions {
	return CompactOptions{
		Provider:       adapter.ProviderOpenAI,
		PromptTemplate: DefaultPromptTemplate,
	}
}

// OptionsFromConfig maps the resolved compact section to [CompactOptions],
// reading compact.prompt_file when it is set.
func OptionsFromConfig(cfg config.Compact) (CompactOptions, error) {
	opts := CompactOptions{
		Provider: cfg.LLMProvider,
		Model:    cfg.LLMModel,
	}

	if cfg.PromptFile != "" {
		data, err := os.ReadFile(cfg.PromptFile)
		if err != nil {
			return CompactOptions{}, fmt.Errorf("read prompt file: %w", err)
		}
		opts.PromptTemplate = string(data)
	}

	return opts, nil
}

// AdapterFactory returns the [adapter.LLMAdapter] for a provider name.
type AdapterFactory func(ctx context.Context, provider string) (adapter.LLMAdapter, error)

// NewAdapterFactory returns an [AdapterFactory] backed by [adapter.NewAdapter].
func NewAdapterFactory(creds adapter.Credentials, logger *logger.Logger) AdapterFactory {
	return func(ctx context.Context, provider string) (adapter.LLMAdapter, error) {
		return adapter.NewAdapter(ctx, provider, creds, logger)
	}
}

type compactService struct {
	factory AdapterFactory
	logger  *logger.Logger
}

func NewCompactService(factory AdapterFactory, logger *logger.Logger) CompactService {
	return &compactService{factory: factory, logger: logger}
}

// Compact joins chunk contents, renders the prompt and returns the
// provider's reply.
func (s *compactService) Compact(ctx context.Context, chunks []models.Chunk, opts CompactOptions) (string, error) {
	if len(chunks) == 0 {
		return "", ErrNoChunks
	}

	if err := mergo.Merge(&opts, DefaultCompactOptions()); err != nil {
		return "", fmt.Errorf("apply compact defaults: %w", err)
	}
	if !slices.Contains(adapter.Providers(), opts.Provider) {
		return "", fmt.Errorf("%w %q, available: %s",
			adapter.ErrUnknownProvider, opts.Provider, strings.Join(adapter.Providers(), ", "))
	}
	if opts.Model == "" {
		opts.Model = adapter.DefaultModel(opts.Provider)
	}

	prompt, err := BuildPrompt(chunks, opts.PromptTemplate)
	if err != nil {
		return "", err
	}

	llm, err := s.factory(ctx, opts.Provider)
	if err != nil {
		return "", fmt.Errorf("create %s adapter: %w", opts.Provider, err)
	}

	s.logger.Info().
		Str("provider", opts.Provider).
		Str("model", opts.Model).
		Int("chunks", len(chunks)).
		Strs("sources", chunkSources(chunks)).
		Msg("compacting chunks")

	summary, err := llm.Complete(ctx, opts.Model, prompt)
	if err != nil {
		return "", fmt.Errorf("compact with %s: %w", opts.Provider, err)
	}

	return summary, nil
}

func chunkSources(chunks []models.Chunk) []string {
	sources := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if c.Source != "" {
			sources = append(sources, c.Source)
		}
	}
	return sources
}

// BuildPrompt joins chunk contents with a horizontal-rule separator and
// substitutes them for every {chunks} in template.
func BuildPrompt(chunks []models.Chunk, template string) (string, error) {
	if !strings.Contains(template, ChunksPlaceholder) {
		return "", ErrMissingPlaceholder
	}

	contents := make([]string, len(chunks))
	for i, c := range chunks {
		contents[i] = c.Content
	}

	return strings.ReplaceAll(template, ChunksPlaceholder, strings.Join(contents, chunkSeparator)), nil
}
