package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kyora-dev/agentos-check/pkg/styles"
)

// TableConfig describes a table to render.
type TableConfig struct {
	// Title is an optional title printed above the table.
	Title string
	// Headers are the column headers.
	Headers []string
	// Rows are the data rows. Short rows are padded with empty cells.
	Rows [][]string
	// ShowTotal appends TotalRow after a separator when true.
	ShowTotal bool
	// TotalRow is the totals row appended when ShowTotal is set.
	TotalRow []string
}

// RenderTable renders the table as aligned plain text with a styled header.
// Cell widths are measured with lipgloss so pre-styled cells align correctly.
func RenderTable(config TableConfig) string {
	var out strings.Builder

	if config.Title != "" {
		out.WriteString(styles.Header.Render(config.Title))
		out.WriteString("\n")
	}

	cols := len(config.Headers)
	for _, row := range config.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if config.ShowTotal && len(config.TotalRow) > cols {
		cols = len(config.TotalRow)
	}
	if cols == 0 {
		return out.String()
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(config.Headers)
	for _, row := range config.Rows {
		measure(row)
	}
	if config.ShowTotal {
		measure(config.TotalRow)
	}

	writeRow := func(row []string, style *lipgloss.Style) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if style != nil {
				cell = style.Render(cell)
			}
			out.WriteString(cell)
			if i < cols-1 {
				out.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		out.WriteString("\n")
	}

	separator := func() {
		parts := make([]string, cols)
		for i := range parts {
			parts[i] = strings.Repeat("-", widths[i])
		}
		out.WriteString(strings.Join(parts, "  "))
		out.WriteString("\n")
	}

	if len(config.Headers) > 0 {
		writeRow(config.Headers, &styles.Header)
		separator()
	}
	for _, row := range config.Rows {
		writeRow(row, nil)
	}
	if config.ShowTotal && len(config.TotalRow) > 0 {
		separator()
		writeRow(config.TotalRow, nil)
	}

	return out.String()
}
