// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the memsearch command line on top of cobra.
//
// Global flags form the highest-precedence configuration layer: a flag only
// takes part in resolution when it was set explicitly on the command line.
package cli

import (
	"fmt"
	"os"

	"github.com/MKhiriev/memsearch/internal/adapter"
	"github.com/MKhiriev/memsearch/internal/config"
	"github.com/MKhiriev/memsearch/internal/logger"
	"github.com/MKhiriev/memsearch/internal/service"
	"github.com/MKhiriev/memsearch/models"
	"github.com/spf13/cobra"
)

// Option customizes the command tree built by [NewRootCommand].
type Option func(*app)

// WithResolverOptions passes opts to every [config.Resolver] the commands
// create.
func WithResolverOptions(opts ...config.Option) Option {
	return func(a *app) {
		a.resolverOpts = append(a.resolverOpts, opts...)
	}
}

// WithCompactService replaces the LLM-backed compaction service.
func WithCompactService(svc service.CompactService) Option {
	return func(a *app) {
		a.compactService = svc
	}
}

type app struct {
	buildInfo      models.AppBuildInfo
	resolverOpts   []config.Option
	compactService service.CompactService

	logLevel  string
	overrides overrideFlags

	logger *logger.Logger
}

// NewRootCommand builds the memsearch command tree.
func NewRootCommand(info models.AppBuildInfo, opts ...Option) *cobra.Command {
	a := &app{buildInfo: info, logger: logger.Nop()}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "memsearch",
		Short: "Semantic memory search for markdown knowledge bases",
		Long: `memsearch indexes markdown notes into a vector store and searches them.

Configuration is resolved from built-in defaults, ./.memsearch.toml,
~/.memsearch/config.toml, MEMSEARCH_* environment variables and command-line
flags, each layer overriding the previous one.`,
		Version:           info.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setupLogger,
	}
	root.SetVersionTemplate(`{{printf "memsearch version %s\n" .Version}}`)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	a.overrides.register(root.PersistentFlags())

	root.AddCommand(
		a.newConfigCmd(),
		a.newCompactCmd(),
		a.newVersionCmd(),
	)

	return root
}

// Execute runs the command line and exits non-zero on failure. Cobra has
// already printed the error by then.
func Execute(info models.AppBuildInfo) {
	if err := NewRootCommand(info).Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := logger.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	a.logger = logger.NewConsoleLogger("cli", cmd.ErrOrStderr(), level)
	return nil
}

func (a *app) resolver() *config.Resolver {
	opts := append([]config.Option{config.WithLogger(a.logger)}, a.resolverOpts...)
	return config.NewResolver(opts...)
}

// resolve resolves the configuration with the flag layer on top.
func (a *app) resolve(cmd *cobra.Command) (*config.Config, config.Sources, error) {
	overrides, err := a.overrides.tree(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	return a.resolver().ResolveWithSources(overrides)
}

func (a *app) compactor() (service.CompactService, error) {
	if a.compactService != nil {
		return a.compactService, nil
	}

	creds, err := adapter.LoadCredentials()
	if err != nil {
		return nil, err
	}

	a.compactService = service.NewServices(creds, a.logger).CompactService
	return a.compactService, nil
}
