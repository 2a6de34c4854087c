// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Config is the resolved memsearch configuration. It is produced by
// [Resolver.Resolve] and handed to the rest of the process as a value that
// is not modified afterwards.
//
// Struct tags:
//   - toml: the key used for the field in configuration files.
//   - validate: constraints checked after all layers are merged.
type Config struct {
	// Milvus holds the vector store endpoint and collection.
	Milvus Milvus `toml:"milvus"`

	// Embedding selects the embedding backend.
	Embedding Embedding `toml:"embedding"`

	// Chunking controls how documents are split before indexing.
	Chunking Chunking `toml:"chunking"`

	// Watch controls the file-watch daemon.
	Watch Watch `toml:"watch"`

	// Compact selects the LLM used to summarize chunks.
	Compact Compact `toml:"compact"`
}

// Milvus holds connection settings for the vector store.
type Milvus struct {
	// URI is either a local Milvus Lite file or a server address
	// (e.g. "http://localhost:19530").
	// Env: MEMSEARCH_MILVUS_URI
	URI string `toml:"uri" validate:"required"`

	// Token authenticates against a remote Milvus server. Empty for
	// Milvus Lite.
	// Env: MEMSEARCH_MILVUS_TOKEN
	Token string `toml:"token"`

	// Collection is the collection chunks are stored in.
	// Env: MEMSEARCH_MILVUS_COLLECTION
	Collection string `toml:"collection" validate:"required"`
}

// Embedding selects the embedding provider and, optionally, its model.
type Embedding struct {
	// Provider is the provider tag (e.g. "openai", "google", "voyage").
	// Env: MEMSEARCH_EMBEDDING_PROVIDER
	Provider string `toml:"provider"`

	// Model overrides the provider's default embedding model.
	// Env: MEMSEARCH_EMBEDDING_MODEL
	Model string `toml:"model"`
}

// Chunking holds document splitting parameters.
type Chunking struct {
	// MaxChunkSize is the maximum chunk size in characters.
	// Env: MEMSEARCH_CHUNKING_MAX_CHUNK_SIZE
	MaxChunkSize int `toml:"max_chunk_size" validate:"gt=0"`

	// OverlapLines is the number of lines repeated between adjacent chunks.
	// Env: MEMSEARCH_CHUNKING_OVERLAP_LINES
	OverlapLines int `toml:"overlap_lines" validate:"gte=0,ltfield=MaxChunkSize"`
}

// Watch holds file-watch settings.
type Watch struct {
	// DebounceMs is the quiet period in milliseconds before a changed file
	// is re-indexed.
	// Env: MEMSEARCH_WATCH_DEBOUNCE_MS
	DebounceMs int `toml:"debounce_ms" validate:"gte=0"`

	// Recursive makes the watcher descend into subdirectories.
	// Env: MEMSEARCH_WATCH_RECURSIVE
	Recursive bool `toml:"recursive"`
}

// Compact selects the LLM backend used by memory compaction.
type Compact struct {
	// LLMProvider is one of "openai", "anthropic" or "gemini".
	// Env: MEMSEARCH_COMPACT_LLM_PROVIDER
	LLMProvider string `toml:"llm_provider"`

	// LLMModel overrides the provider's default model.
	// Env: MEMSEARCH_COMPACT_LLM_MODEL
	LLMModel string `toml:"llm_model"`

	// PromptFile is an optional path to a prompt template containing a
	// {chunks} placeholder.
	// Env: MEMSEARCH_COMPACT_PROMPT_FILE
	PromptFile string `toml:"prompt_file"`
}

// Default returns the configuration made only of built-in defaults.
func Default() *Config {
	cfg := &Config{}
	for _, f := range schema.fields {
		f.set(cfg, f.Default)
	}
	return cfg
}

// Tree renders cfg as a full configuration tree, one leaf per declared field.
func (cfg *Config) Tree() Tree {
	t := Tree{}
	for _, f := range schema.fields {
		t.setLeaf(f.Path, f.get(cfg))
	}
	return t
}
