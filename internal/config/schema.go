// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
)

// Kind is the declared type of a configuration leaf.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Field describes one declared configuration leaf: where it lives, what type
// it holds, its default and how it is read from and written to [Config].
type Field struct {
	Path    string
	Kind    Kind
	Default any

	get func(*Config) any
	set func(*Config, any)
}

// Section returns the dotted section path of f ("milvus" for "milvus.uri").
func (f Field) Section() string {
	i := strings.LastIndexByte(f.Path, '.')
	if i < 0 {
		return ""
	}
	return f.Path[:i]
}

// Name returns the last segment of f's path.
func (f Field) Name() string {
	return f.Path[strings.LastIndexByte(f.Path, '.')+1:]
}

// EnvName returns the environment variable that overrides f.
func (f Field) EnvName() string {
	return EnvPrefix + strings.ToUpper(envKey(f.Path))
}

func envKey(path string) string {
	return strings.ReplaceAll(path, ".", "_")
}

func stringField(path, def string, get func(*Config) *string) Field {
	return Field{
		Path:    path,
		Kind:    KindString,
		Default: def,
		get:     func(c *Config) any { return *get(c) },
		set:     func(c *Config, v any) { *get(c) = v.(string) },
	}
}

func intField(path string, def int, get func(*Config) *int) Field {
	return Field{
		Path:    path,
		Kind:    KindInt,
		Default: def,
		get:     func(c *Config) any { return *get(c) },
		set:     func(c *Config, v any) { *get(c) = v.(int) },
	}
}

func boolField(path string, def bool, get func(*Config) *bool) Field {
	return Field{
		Path:    path,
		Kind:    KindBool,
		Default: def,
		get:     func(c *Config) any { return *get(c) },
		set:     func(c *Config, v any) { *get(c) = v.(bool) },
	}
}

// Fields returns the declared configuration fields in declaration order.
func Fields() []Field {
	out := make([]Field, len(schema.fields))
	copy(out, schema.fields)
	return out
}

var schema = newSchemaIndex([]Field{
	stringField("milvus.uri", "~/.memsearch/milvus.db", func(c *Config) *string { return &c.Milvus.URI }),
	stringField("milvus.token", "", func(c *Config) *string { return &c.Milvus.Token }),
	stringField("milvus.collection", "memsearch_chunks", func(c *Config) *string { return &c.Milvus.Collection }),

	stringField("embedding.provider", "openai", func(c *Config) *string { return &c.Embedding.Provider }),
	stringField("embedding.model", "", func(c *Config) *string { return &c.Embedding.Model }),

	intField("chunking.max_chunk_size", 1500, func(c *Config) *int { return &c.Chunking.MaxChunkSize }),
	intField("chunking.overlap_lines", 2, func(c *Config) *int { return &c.Chunking.OverlapLines }),

	intField("watch.debounce_ms", 1500, func(c *Config) *int { return &c.Watch.DebounceMs }),
	boolField("watch.recursive", true, func(c *Config) *bool { return &c.Watch.Recursive }),

	stringField("compact.llm_provider", "openai", func(c *Config) *string { return &c.Compact.LLMProvider }),
	stringField("compact.llm_model", "", func(c *Config) *string { return &c.Compact.LLMModel }),
	stringField("compact.prompt_file", "", func(c *Config) *string { return &c.Compact.PromptFile }),
})

// schemaIndex answers path, section and environment lookups over a field
// table.
type schemaIndex struct {
	fields   []Field
	byPath   map[string]Field
	byEnv    map[string]Field
	sections map[string]struct{}
}

func newSchemaIndex(fields []Field) *schemaIndex {
	s := &schemaIndex{
		fields:   fields,
		byPath:   make(map[string]Field, len(fields)),
		byEnv:    make(map[string]Field, len(fields)),
		sections: make(map[string]struct{}),
	}

	for _, f := range fields {
		s.byPath[f.Path] = f

		// Every prefix of a field's section is itself a declared section.
		section := f.Section()
		for section != "" {
			s.sections[section] = struct{}{}
			i := strings.LastIndexByte(section, '.')
			if i < 0 {
				break
			}
			section = section[:i]
		}

		// "a.b_c" and "a_b.c" both flatten to "a_b_c". The field with the
		// longest declared section owns the name.
		key := envKey(f.Path)
		if prev, ok := s.byEnv[key]; ok && len(prev.Section()) >= len(f.Section()) {
			continue
		}
		s.byEnv[key] = f
	}

	return s
}

func (s *schemaIndex) field(path string) (Field, bool) {
	f, ok := s.byPath[path]
	return f, ok
}

func (s *schemaIndex) isSection(path string) bool {
	_, ok := s.sections[path]
	return ok
}

// envField resolves the lower-cased remainder of an environment variable
// name (prefix already stripped) to a declared field.
func (s *schemaIndex) envField(key string) (Field, bool) {
	f, ok := s.byEnv[key]
	return f, ok
}

// defaults renders every field's default as a full tree.
func (s *schemaIndex) defaults() Tree {
	t := Tree{}
	for _, f := range s.fields {
		t.setLeaf(f.Path, f.Default)
	}
	return t
}
