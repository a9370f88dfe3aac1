package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/uithings/pkg/demo"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the demos in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return printDemosJSON()
			}
			fmt.Fprintln(stdout, demoTable())
			printNewline()
			printNextStep("Render a demo", "uithings render hole-button")
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return cmd
}

type demoEntry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Variants    []string `json:"variants,omitempty"`
}

func printDemosJSON() error {
	var out []demoEntry
	for _, d := range demo.All() {
		out = append(out, demoEntry{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Category:    string(d.Category),
			Variants:    d.Variants,
		})
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// demoTable renders the catalog grouped by category. Categories without
// demos get a placeholder row so the full structure stays visible.
func demoTable() string {
	type row struct {
		category demo.Category
		cells    []string
	}
	var rows []row
	groups := demo.ByCategory()
	for _, cat := range demo.Categories {
		if len(groups[cat]) == 0 {
			rows = append(rows, row{cat, []string{string(cat), "—", "no demos yet", ""}})
			continue
		}
		for i, d := range groups[cat] {
			name := string(cat)
			if i > 0 {
				name = ""
			}
			rows = append(rows, row{cat, []string{name, d.ID, d.Title, strings.Join(d.Variants, ", ")}})
		}
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.cells
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Category", "ID", "Title", "Variants").
		Rows(cells...).
		StyleFunc(func(r, col int) lipgloss.Style {
			if r == -1 {
				return styleHeader.Padding(0, 1)
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if r < 0 || r >= len(rows) {
				return base
			}
			switch col {
			case 0:
				return base.Inherit(categoryStyle(rows[r].category)).Bold(true)
			case 1:
				if rows[r].cells[1] == "—" {
					return base.Foreground(colorDim)
				}
				return base.Foreground(colorCyan)
			case 3:
				return base.Foreground(colorGray)
			}
			if rows[r].cells[1] == "—" {
				return base.Foreground(colorDim)
			}
			return base.Foreground(colorWhite)
		})

	return t.Render()
}
