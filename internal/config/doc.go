// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the memsearch configuration from layered sources.
//
// Configuration is assembled from the following layers in priority order
// (later layers override earlier ones leaf by leaf):
//  1. Built-in defaults
//  2. Project file (.memsearch.toml in the working directory)
//  3. Global file (~/.memsearch/config.toml)
//  4. MEMSEARCH_* environment variables
//  5. Explicit overrides supplied by the caller (CLI flags)
//
// Every layer is an untyped [Tree]. Layers are combined with [Merge] and the
// result is materialized into a typed [Config] through a single field table,
// the same table used by the environment overlay and by [Get] / [Set] to
// coerce string input.
//
// The main entry points are [Resolve] for the default file locations and
// [NewResolver] when file paths or the environment must be supplied
// explicitly (tests, alternative homes).
//
// Errors are typed: [*ParseError], [*IOError], [*ValidationError] and
// [*KeyError]. Each also matches its sentinel ([ErrParse], [ErrIO],
// [ErrValidation], [ErrUnknownKey]) with [errors.Is].
package config
