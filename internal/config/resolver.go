// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"

	"github.com/MKhiriev/memsearch/internal/logger"
)

const (
	// ProjectFileName is the project config file, looked up relative to the
	// working directory.
	ProjectFileName = ".memsearch.toml"

	globalConfigDir  = ".memsearch"
	globalConfigFile = "config.toml"
)

// DefaultGlobalPath returns ~/.memsearch/config.toml. It returns an empty
// string when the home directory cannot be determined.
func DefaultGlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, globalConfigDir, globalConfigFile)
}

// Option customizes a [Resolver].
type Option func(*Resolver)

// WithGlobalPath sets the global config file. An empty path disables the
// global layer.
func WithGlobalPath(path string) Option {
	return func(r *Resolver) {
		r.globalPath = path
	}
}

// WithProjectPath sets the project config file. An empty path disables the
// project layer.
func WithProjectPath(path string) Option {
	return func(r *Resolver) {
		r.projectPath = path
	}
}

// WithEnviron replaces the process environment with a fixed list of
// "NAME=value" entries.
func WithEnviron(environ []string) Option {
	return func(r *Resolver) {
		env := append([]string(nil), environ...)
		r.environ = func() []string { return env }
	}
}

// WithLogger sets the logger used to trace layer loading.
func WithLogger(log *logger.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// Resolver resolves configuration from defaults, the project file, the
// global file, the environment and caller overrides, in that order.
type Resolver struct {
	globalPath  string
	projectPath string
	environ     func() []string
	log         *logger.Logger
}

// NewResolver returns a Resolver using the default file locations and the
// process environment unless overridden by opts.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		globalPath:  DefaultGlobalPath(),
		projectPath: ProjectFileName,
		environ:     os.Environ,
		log:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GlobalPath returns the global config file path.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// ProjectPath returns the project config file path.
func (r *Resolver) ProjectPath() string {
	return r.projectPath
}

func (r *Resolver) builder(overrides Tree) *configBuilder {
	return newConfigBuilder(r.log).
		withDefaults().
		withFile(SourceProject, r.projectPath).
		withFile(SourceGlobal, r.globalPath).
		withEnv(r.environ()).
		withOverrides(overrides)
}

// Resolve merges every layer, with overrides on top, and returns the typed
// configuration. overrides may be nil.
func (r *Resolver) Resolve(overrides Tree) (*Config, error) {
	return r.builder(overrides).build()
}

// ResolveWithSources is [Resolver.Resolve] that also reports which layer
// supplied each field.
func (r *Resolver) ResolveWithSources(overrides Tree) (*Config, Sources, error) {
	b := r.builder(overrides)
	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}
	return cfg, b.sources(), nil
}

// Merged returns the merged tree before materialization. Unknown keys from
// files are still present.
func (r *Resolver) Merged(overrides Tree) (Tree, error) {
	return r.builder(overrides).merged()
}

// Set stores value for path in the global config file.
func (r *Resolver) Set(path, value string) error {
	return Set(path, value, r.globalPath)
}

// Resolve is [Resolver.Resolve] with the default file locations and the
// process environment.
func Resolve(overrides Tree) (*Config, error) {
	return NewResolver().Resolve(overrides)
}
