// Package render prints plans and advice for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/LianHaeming/weekplan/models"
)

// Format selects the output encoding of WritePlan.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts table, json, yaml or yml, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want table, json or yaml)", s)
}

// Document is what the json and yaml formats emit.
type Document struct {
	Routine models.Routine    `json:"routine" yaml:"routine"`
	Plan    models.WeeklyPlan `json:"plan" yaml:"plan"`
	Advice  string            `json:"advice,omitempty" yaml:"advice,omitempty"`
}

var (
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	weekendStyle = cellStyle.Bold(true)
)

// Table renders the plan as a bordered terminal table.
func Table(plan models.WeeklyPlan) string {
	rows := make([][]string, 0, plan.Len())
	for _, d := range plan.Days {
		rows = append(rows, []string{
			d.Day,
			models.FormatHours(d.Study),
			models.FormatHours(d.Health),
			models.FormatHours(d.Social),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(models.ColumnHeaders[:]...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row != table.HeaderRow && row < len(rows) && models.IsWeekend(rows[row][0]) {
				return weekendStyle
			}
			return cellStyle
		})
	return t.Render()
}

// WritePlan writes doc to w in the given format. The table format prints
// only the plan; advice is rendered separately with Advice.
func WritePlan(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatTable:
		_, err := fmt.Fprintln(w, Table(doc.Plan))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}

// Advice renders markdown advice text for a terminal. style is a glamour
// standard style name such as "dark", "light" or "notty".
func Advice(text, style string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("render advice: %w", err)
	}
	return out, nil
}
