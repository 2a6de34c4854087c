// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/memsearch/internal/logger"
)

type layer struct {
	source Source
	path   string
	tree   Tree
}

type configBuilder struct {
	layers []layer
	err    error
	log    *logger.Logger
}

func newConfigBuilder(log *logger.Logger) *configBuilder {
	if log == nil {
		log = logger.Nop()
	}
	return &configBuilder{
		layers: make([]layer, 0, 5),
		log:    log,
	}
}

// build merges the layers in the order they were added and materializes the
// result.
func (b *configBuilder) build() (*Config, error) {
	merged, err := b.merged()
	if err != nil {
		return nil, err
	}

	return materialize(merged)
}

func (b *configBuilder) merged() (Tree, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := Tree{}
	for _, l := range b.layers {
		merged = Merge(merged, l.tree)
	}

	return merged, nil
}

// sources reports, for every declared field, the last layer holding a
// non-nil value for it.
func (b *configBuilder) sources() Sources {
	out := make(Sources, len(schema.fields))
	for _, f := range schema.fields {
		for _, l := range b.layers {
			if v, ok := l.tree.Lookup(f.Path); ok && v != nil {
				out[f.Path] = l.source
			}
		}
	}
	return out
}

func (b *configBuilder) add(source Source, path string, t Tree) *configBuilder {
	b.log.Debug().
		Str("source", string(source)).
		Str("path", path).
		Int("keys", len(t.Leaves())).
		Msg("config layer loaded")

	b.layers = append(b.layers, layer{source: source, path: path, tree: t})
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(SourceDefault, "", schema.defaults())
}

// withFile adds the tree stored at path. An empty path or a missing file
// adds an empty layer.
func (b *configBuilder) withFile(source Source, path string) *configBuilder {
	if path == "" {
		return b.add(source, path, Tree{})
	}

	t, err := LoadFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(source, path, t)
}

func (b *configBuilder) withEnv(environ []string) *configBuilder {
	for _, name := range DroppedEnv(environ) {
		b.log.Trace().Str("var", name).Msg("ignoring unrecognized environment variable")
	}

	t, err := CollectEnv(environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(SourceEnv, "", t)
}

func (b *configBuilder) withOverrides(t Tree) *configBuilder {
	if t == nil {
		t = Tree{}
	}
	return b.add(SourceFlag, "", t)
}

// materialize converts a merged tree into a Config, coercing every declared
// leaf. Keys that match no declared field are ignored.
func materialize(t Tree) (*Config, error) {
	cfg := &Config{}
	for _, f := range schema.fields {
		v, ok := t.Lookup(f.Path)
		if !ok || v == nil {
			v = f.Default
		}

		cv, err := f.coerce(v)
		if err != nil {
			return nil, err
		}
		f.set(cfg, cv)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
