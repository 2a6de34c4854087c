// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// LoadFile reads a TOML configuration file into a tree.
//
// A missing file is not an error: an empty tree is returned. Content that is
// not valid TOML fails with [*ParseError]; any other read failure with
// [*IOError]. TOML integers are returned as int.
func LoadFile(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Tree{}, nil
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return normalizeTree(raw), nil
}

// SaveFile writes t to path as TOML, creating parent directories as needed.
// Nil leaves are not written. Failures are reported as [*IOError]; a key or
// string that is not valid UTF-8 fails with Op "encode" before the file is
// touched.
func SaveFile(t Tree, path string) error {
	pruned := t.prune()
	if err := checkUTF8(pruned, ""); err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}

	data, err := toml.Marshal(pruned)
	if err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	return nil
}

// checkUTF8 rejects keys and string leaves that LoadFile could not read back.
func checkUTF8(t Tree, prefix string) error {
	for k, v := range t {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if !utf8.ValidString(k) {
			return fmt.Errorf("key %q: %w", path, errNotUTF8)
		}

		switch val := v.(type) {
		case string:
			if !utf8.ValidString(val) {
				return fmt.Errorf("value at %q: %w", path, errNotUTF8)
			}
		default:
			if sub, ok := asTree(v); ok {
				if err := checkUTF8(sub, path); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
