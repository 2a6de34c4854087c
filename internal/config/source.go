// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Source names the layer a resolved value came from.
type Source string

const (
	// SourceDefault is a built-in default.
	SourceDefault Source = "default"
	// SourceProject is the project file in the working directory.
	SourceProject Source = "project"
	// SourceGlobal is the per-user file under ~/.memsearch.
	SourceGlobal Source = "global"
	// SourceEnv is a MEMSEARCH_* environment variable.
	SourceEnv Source = "env"
	// SourceFlag is an override supplied by the caller, usually a CLI flag.
	SourceFlag Source = "flag"
)

// Sources maps each declared dotted path to the layer that supplied its
// resolved value.
type Sources map[string]Source
