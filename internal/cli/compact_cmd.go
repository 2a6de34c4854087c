// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/memsearch/internal/service"
	"github.com/MKhiriev/memsearch/models"
	"github.com/spf13/cobra"
)

func (a *app) newCompactCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "compact <file>...",
		Short: "Summarize files into one compressed memory with an LLM",
		Long: `compact reads each file as one chunk and asks the configured LLM provider
(compact.llm_provider) for a condensed markdown summary, printed to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.resolve(cmd)
			if err != nil {
				return err
			}

			chunks, err := readChunks(args)
			if err != nil {
				return err
			}

			opts, err := service.OptionsFromConfig(cfg.Compact)
			if err != nil {
				return err
			}
			if model != "" {
				opts.Model = model
			}

			svc, err := a.compactor()
			if err != nil {
				return err
			}

			summary, err := svc.Compact(cmd.Context(), chunks, opts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(summary, "\n"))
			return err
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "override compact.llm_model for this run")
	return cmd
}

func readChunks(paths []string) ([]models.Chunk, error) {
	chunks := make([]models.Chunk, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read chunk file: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			continue
		}
		chunks = append(chunks, models.Chunk{Content: string(data), Source: p})
	}
	return chunks, nil
}
