// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"os"
	"strings"
)

// EnvPrefix marks environment variables that override configuration fields.
// MEMSEARCH_MILVUS_URI overrides milvus.uri.
const EnvPrefix = "MEMSEARCH_"

// CollectEnv builds a sparse override tree from environ entries of the form
// "NAME=value" (as returned by [os.Environ]).
//
// Only names carrying [EnvPrefix] are inspected. The remainder is
// lower-cased and matched against the declared fields; values are coerced to
// the field's kind. An integer field with a non-numeric value fails with
// [*ValidationError].
//
// Variables that carry the prefix but match no declared field are dropped
// without an error, so a mistyped name never aborts resolution.
func CollectEnv(environ []string) (Tree, error) {
	return schema.collectEnv(environ)
}

// EnvOverrides is [CollectEnv] over the current process environment.
func EnvOverrides() (Tree, error) {
	return CollectEnv(os.Environ())
}

func (s *schemaIndex) collectEnv(environ []string) (Tree, error) {
	out := Tree{}
	var errs []error

	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}

		f, ok := s.envField(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)))
		if !ok {
			// Unknown names are dropped on purpose; see DroppedEnv.
			continue
		}

		v, err := f.coerce(value)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out.setLeaf(f.Path, v)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// DroppedEnv lists the prefixed variable names in environ that match no
// declared field. It exists for diagnostics only.
func DroppedEnv(environ []string) []string {
	var dropped []string
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		if _, ok := schema.envField(strings.ToLower(strings.TrimPrefix(name, EnvPrefix))); !ok {
			dropped = append(dropped, name)
		}
	}
	return dropped
}
