// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Get returns the value at a dotted path of cfg. A field path returns its
// typed value; a section path ("milvus") returns the section as a [Tree].
// Any other path fails with [*KeyError].
func Get(path string, cfg *Config) (any, error) {
	if f, ok := schema.field(path); ok {
		return f.get(cfg), nil
	}

	if schema.isSection(path) {
		v, _ := cfg.Tree().Lookup(path)
		return v, nil
	}

	return nil, &KeyError{Path: path}
}

// GetTree returns the value at a dotted path of an untyped tree. The path
// must name a declared section or field and must be present in t; otherwise
// [*KeyError] is returned.
func GetTree(path string, t Tree) (any, error) {
	if _, ok := schema.field(path); !ok && !schema.isSection(path) {
		return nil, &KeyError{Path: path}
	}

	v, ok := t.Lookup(path)
	if !ok || v == nil {
		return nil, &KeyError{Path: path}
	}

	return v, nil
}

// Set coerces value to the declared type of the field at path and stores it
// in the TOML file at file, keeping every other key in the file. A missing
// file is created.
//
// path must name a field, not a section; anything else fails with
// [*KeyError] before the file is touched.
func Set(path, value, file string) error {
	override, err := OverrideTree(path, value)
	if err != nil {
		return err
	}

	current, err := LoadFile(file)
	if err != nil {
		return err
	}

	return SaveFile(Merge(current, override), file)
}

// SetValue is [Set] against the global config file.
func SetValue(path, value string) error {
	return Set(path, value, DefaultGlobalPath())
}

// OverrideTree returns a single-leaf tree holding value coerced to the type
// of the field at path.
func OverrideTree(path, value string) (Tree, error) {
	f, ok := schema.field(path)
	if !ok {
		return nil, &KeyError{Path: path}
	}

	v, err := f.coerce(value)
	if err != nil {
		return nil, err
	}

	return leafTree(f.Path, v), nil
}

// ParseAssignments turns "path=value" strings into one override tree.
func ParseAssignments(assignments []string) (Tree, error) {
	out := Tree{}
	for _, a := range assignments {
		path, value, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid assignment %q: expected key=value", a)
		}

		t, err := OverrideTree(strings.TrimSpace(path), value)
		if err != nil {
			return nil, err
		}
		out = Merge(out, t)
	}
	return out, nil
}
