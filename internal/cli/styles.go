// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/memsearch/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	defaultStyle = cellStyle.Faint(true)
)

// renderSources renders one row per field: key, resolved value and the layer
// that supplied it. Rows still holding their default are dimmed.
func renderSources(cfg *config.Config, sources config.Sources) string {
	fields := config.Fields()
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		v, _ := config.Get(f.Path, cfg)
		rows = append(rows, []string{f.Path, fmt.Sprintf("%v", v), string(sources[f.Path])})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KEY", "VALUE", "SOURCE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(rows) && rows[row][2] == string(config.SourceDefault) {
				return defaultStyle
			}
			return cellStyle
		}).
		String()
}
