// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/MKhiriev/memsearch/internal/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit memsearch configuration",
	}

	cmd.AddCommand(
		a.newConfigInitCmd(),
		a.newConfigGetCmd(),
		a.newConfigSetCmd(),
		a.newConfigListCmd(),
	)
	return cmd
}

func (a *app) newConfigInitCmd() *cobra.Command {
	var project, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file populated with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.targetPath(project)
			if path == "" {
				return errors.New("cannot determine config file location")
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			if err := config.SaveFile(config.Default().Tree(), path); err != nil {
				return err
			}

			a.logger.Info().Str("path", path).Msg("config file initialized")
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&project, "project", false, "write ./.memsearch.toml instead of the global file")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (a *app) newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a resolved value, or a whole section as TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.resolve(cmd)
			if err != nil {
				return err
			}

			v, err := config.Get(args[0], cfg)
			if err != nil {
				return err
			}

			if t, ok := v.(config.Tree); ok {
				return writeTOML(cmd.OutOrStdout(), t)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func (a *app) newConfigSetCmd() *cobra.Command {
	var project bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a value in the global (or project) config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.targetPath(project)
			if path == "" {
				return errors.New("cannot determine config file location")
			}

			if err := config.Set(args[0], args[1], path); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], path)
			return err
		},
	}

	cmd.Flags().BoolVar(&project, "project", false, "write ./.memsearch.toml instead of the global file")
	return cmd
}

func (a *app) newConfigListCmd() *cobra.Command {
	var resolved, global, project, sources bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the resolved configuration or one config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sources && (global || project) {
				return errors.New("--sources only applies to the resolved configuration")
			}

			switch {
			case global:
				return a.printFile(cmd.OutOrStdout(), a.resolver().GlobalPath())
			case project:
				return a.printFile(cmd.OutOrStdout(), a.resolver().ProjectPath())
			}

			cfg, src, err := a.resolve(cmd)
			if err != nil {
				return err
			}

			if sources {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), renderSources(cfg, src))
				return err
			}
			return writeTOML(cmd.OutOrStdout(), cfg.Tree())
		},
	}

	cmd.Flags().BoolVar(&resolved, "resolved", false, "print the fully resolved configuration (default)")
	cmd.Flags().BoolVar(&global, "global", false, "print the global config file")
	cmd.Flags().BoolVar(&project, "project", false, "print the project config file")
	cmd.Flags().BoolVar(&sources, "sources", false, "show which layer supplied each value")
	cmd.MarkFlagsMutuallyExclusive("resolved", "global", "project")
	return cmd
}

func (a *app) targetPath(project bool) string {
	r := a.resolver()
	if project {
		return r.ProjectPath()
	}
	return r.GlobalPath()
}

func (a *app) printFile(w io.Writer, path string) error {
	if path == "" {
		return errors.New("config file layer is disabled")
	}

	t, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	return writeTOML(w, t)
}

func writeTOML(w io.Writer, t config.Tree) error {
	data, err := toml.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
