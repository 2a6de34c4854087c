// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Get ───────────────────────────────────────────────────────────────────────

// TestGet_Field verifies that field paths return typed values.
func TestGet_Field(t *testing.T) {
	cfg := Default()

	v, err := Get("milvus.uri", cfg)
	require.NoError(t, err)
	assert.Equal(t, "~/.memsearch/milvus.db", v)

	v, err = Get("chunking.max_chunk_size", cfg)
	require.NoError(t, err)
	assert.Equal(t, 1500, v)

	v, err = Get("watch.recursive", cfg)
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

// TestGet_Section verifies that a section path returns the whole section.
func TestGet_Section(t *testing.T) {
	v, err := Get("chunking", Default())
	require.NoError(t, err)
	assert.Equal(t, Tree{"max_chunk_size": 1500, "overlap_lines": 2}, v)
}

// TestGet_UnknownKey verifies that undeclared paths fail with KeyError.
func TestGet_UnknownKey(t *testing.T) {
	for _, path := range []string{"nonexistent.key", "milvus.nonexistent", "milvus.uri.extra", ""} {
		t.Run(path, func(t *testing.T) {
			v, err := Get(path, Default())
			assert.Nil(t, v)

			var keyErr *KeyError
			require.ErrorAs(t, err, &keyErr)
			assert.Equal(t, path, keyErr.Path)
			assert.ErrorIs(t, err, ErrUnknownKey)
		})
	}
}

// ── GetTree ───────────────────────────────────────────────────────────────────

// TestGetTree verifies lookups on untyped trees.
func TestGetTree(t *testing.T) {
	tree := Tree{
		"milvus": Tree{"uri": "http://x:19530", "token": nil},
		"bogus":  Tree{"x": 1},
	}

	v, err := GetTree("milvus.uri", tree)
	require.NoError(t, err)
	assert.Equal(t, "http://x:19530", v)

	v, err = GetTree("milvus", tree)
	require.NoError(t, err)
	assert.Equal(t, Tree{"uri": "http://x:19530", "token": nil}, v)

	_, err = GetTree("milvus.token", tree)
	assert.ErrorIs(t, err, ErrUnknownKey, "nil leaf counts as absent")

	_, err = GetTree("milvus.collection", tree)
	assert.ErrorIs(t, err, ErrUnknownKey, "declared but absent")

	_, err = GetTree("bogus.x", tree)
	assert.ErrorIs(t, err, ErrUnknownKey, "present but undeclared")
}

// ── Set ───────────────────────────────────────────────────────────────────────

// TestSet_ConvertsInt verifies that an int field is stored as an integer.
func TestSet_ConvertsInt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, Set("chunking.max_chunk_size", "2000", path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Tree{"chunking": Tree{"max_chunk_size": 2000}}, got)
}

// TestSet_ConvertsBool verifies that a bool field is stored as a boolean.
func TestSet_ConvertsBool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, Set("watch.recursive", "off", path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	v, ok := got.Lookup("watch.recursive")
	require.True(t, ok)
	assert.Equal(t, false, v)
}

// TestSet_PreservesOtherKeys verifies that Set merges into the existing file,
// including keys the schema does not declare.
func TestSet_PreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveFile(Tree{
		"milvus": Tree{"uri": "http://keep:19530"},
		"custom": Tree{"note": "hello"},
	}, path))

	require.NoError(t, Set("milvus.collection", "new_col", path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Tree{
		"milvus": Tree{"uri": "http://keep:19530", "collection": "new_col"},
		"custom": Tree{"note": "hello"},
	}, got)
}

// TestSet_CreatesParentDirs verifies that a missing file and its directory
// are created.
func TestSet_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "config.toml")
	require.NoError(t, Set("embedding.provider", "ollama", path))
	assert.FileExists(t, path)
}

// TestSet_Rejections verifies that bad paths and values fail before the file
// is written.
func TestSet_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "unknown key", key: "nonexistent.key", value: "x", wantErr: ErrUnknownKey},
		{name: "section", key: "milvus", value: "x", wantErr: ErrUnknownKey},
		{name: "bad int", key: "chunking.max_chunk_size", value: "big", wantErr: ErrValidation},
		{name: "bad bool", key: "watch.recursive", value: "maybe", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			err := Set(tt.key, tt.value, path)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoFileExists(t, path)
		})
	}
}

// TestSet_MalformedFile verifies that Set refuses to overwrite a file it
// cannot parse.
func TestSet_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[milvus\nuri = ")

	err := Set("milvus.uri", "http://x:19530", path)
	assert.ErrorIs(t, err, ErrParse)
}

// TestResolver_SetThenResolve verifies that a value written through the
// resolver is seen by the next resolution.
func TestResolver_SetThenResolve(t *testing.T) {
	p := newTestPaths(t)
	r := p.resolver()

	require.NoError(t, r.Set("chunking.max_chunk_size", "2000"))

	cfg, err := r.Resolve(nil)
	require.NoError(t, err)

	v, err := Get("chunking.max_chunk_size", cfg)
	require.NoError(t, err)
	assert.Equal(t, 2000, v)
	assert.FileExists(t, p.global)
	assert.NoFileExists(t, p.project)
}

// ── OverrideTree / ParseAssignments ───────────────────────────────────────────

// TestOverrideTree verifies single-leaf trees with coerced values.
func TestOverrideTree(t *testing.T) {
	got, err := OverrideTree("watch.debounce_ms", " 250 ")
	require.NoError(t, err)
	assert.Equal(t, Tree{"watch": Tree{"debounce_ms": 250}}, got)

	_, err = OverrideTree("watch", "250")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

// TestParseAssignments verifies key=value parsing into one tree.
func TestParseAssignments(t *testing.T) {
	got, err := ParseAssignments([]string{
		"milvus.uri=http://a:19530?x=1",
		"milvus.collection=col",
		"chunking.overlap_lines=4",
	})
	require.NoError(t, err)
	assert.Equal(t, Tree{
		"milvus":   Tree{"uri": "http://a:19530?x=1", "collection": "col"},
		"chunking": Tree{"overlap_lines": 4},
	}, got)

	got, err = ParseAssignments(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestParseAssignments_Errors verifies malformed and unknown assignments.
func TestParseAssignments_Errors(t *testing.T) {
	_, err := ParseAssignments([]string{"milvus.uri"})
	assert.ErrorContains(t, err, "expected key=value")

	_, err = ParseAssignments([]string{"bogus.key=1"})
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = ParseAssignments([]string{"chunking.max_chunk_size=x"})
	assert.ErrorIs(t, err, ErrValidation)
}

// TestSet_InvalidUTF8 verifies that a value that cannot be stored as TOML
// text is rejected and the existing file stays readable and editable.
func TestSet_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Set("milvus.collection", "good", path))

	err := Set("milvus.collection", "col\xff", path)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "milvus.collection", vErr.Field)

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Tree{"milvus": Tree{"collection": "good"}}, got)

	require.NoError(t, Set("milvus.collection", "fixed", path))
}

// TestSetValue_GlobalFile verifies that SetValue writes to the per-user file.
func TestSetValue_GlobalFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SetValue("chunking.max_chunk_size", "2000"))

	got, err := LoadFile(DefaultGlobalPath())
	require.NoError(t, err)
	v, ok := got.Lookup("chunking.max_chunk_size")
	require.True(t, ok)
	assert.Equal(t, 2000, v)
}
