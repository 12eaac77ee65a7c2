package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tshape/pkg/pipeline"
	"github.com/matzehuels/tshape/pkg/skills"
)

// summaryCommand creates the summary command that prints catalog tables.
func (c *CLI) summaryCommand() *cobra.Command {
	var (
		data      dataFlags
		raw       bool
		breakdown bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print per-category statistics of the skills catalog",
		Long: `Print per-category statistics of the skills catalog.

Shows, for each category in band order, the number of skills, their level
range and how many are marked for growth. --breakdown lists every skill per
category, highest level first; --raw prints the catalog as loaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			data.apply(&opts)
			return c.runSummary(cmd.Context(), cmd.OutOrStdout(), opts, summaryView{
				raw:       raw,
				breakdown: breakdown,
				json:      asJSON,
			})
		},
	}

	data.register(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "also print the raw catalog")
	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "also list the skills of each category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of tables")

	return cmd
}

type summaryView struct {
	raw       bool
	breakdown bool
	json      bool
}

func (c *CLI) runSummary(ctx context.Context, w io.Writer, opts pipeline.Options, view summaryView) error {
	opts.SetLayoutDefaults()
	ds, err := pipeline.Load(ctx, opts)
	if err != nil {
		return err
	}

	summary := skills.Summarize(ds.Records, opts.Categories)
	var groups []skills.CategoryBreakdown
	if view.breakdown {
		groups = skills.Breakdown(ds.Records, opts.Categories)
	}

	if view.json {
		out := struct {
			Source    string                     `json:"source"`
			Summary   []skills.CategorySummary   `json:"summary"`
			Breakdown []skills.CategoryBreakdown `json:"breakdown,omitempty"`
			Skills    []skills.Record            `json:"skills,omitempty"`
		}{Source: ds.Source(), Summary: summary, Breakdown: groups}
		if view.raw {
			out.Skills = ds.Records
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintln(w, StyleTitle.Render("Skills")+" "+StyleDim.Render(ds.Source()))
	fmt.Fprintln(w, summaryTable(summary))
	for _, g := range groups {
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleHighlight.Render(g.Category))
		fmt.Fprintln(w, skillTable(g.Skills, false))
	}
	if view.raw {
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleHighlight.Render("Raw data"))
		fmt.Fprintln(w, skillTable(ds.Records, true))
	}
	return nil
}

// =============================================================================
// Tables
// =============================================================================

// headerRow is the row index lipgloss tables pass for the header.
const headerRow = -1

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleNumber = styleCell.Foreground(colorWhite).Align(lipgloss.Right)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...)
}

// summaryTable renders one row per category.
func summaryTable(summary []skills.CategorySummary) string {
	rows := make([][]string, 0, len(summary))
	for _, s := range summary {
		growth := "-"
		if s.GrowthCount > 0 {
			growth = formatMean(s.MeanGrowth)
			if s.MeanGrowth > 0 {
				growth = "+" + growth
			}
		}
		rows = append(rows, []string{
			s.Category,
			strconv.Itoa(s.Count),
			formatMean(s.MeanLevel),
			skills.FormatLevel(s.MinLevel) + " to " + skills.FormatLevel(s.MaxLevel),
			strconv.Itoa(s.WithTarget),
			strconv.Itoa(s.GrowthCount),
			growth,
		})
	}
	return newTable("Category", "Skills", "Mean", "Range", "Targets", "Growing", "Mean growth").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleHeader
			case col == 0:
				return styleCell
			default:
				return styleNumber
			}
		}).
		String()
}

// skillTable renders one row per record. The category column is only
// useful when records of several categories are mixed.
func skillTable(records []skills.Record, withCategory bool) string {
	headers := []string{"Skill", "Level", "Target"}
	if withCategory {
		headers = append([]string{"Category"}, headers...)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{r.Skill, skills.FormatLevel(r.Level), targetText(r)}
		if withCategory {
			row = append([]string{r.Category}, row...)
		}
		rows = append(rows, row)
	}

	firstNumber := 1
	if withCategory {
		firstNumber = 2
	}
	return newTable(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleHeader
			case col >= firstNumber:
				return styleNumber
			default:
				return styleCell
			}
		}).
		String()
}

// targetText shows the target with its distance from the current level.
func targetText(r skills.Record) string {
	if !r.HasTarget() {
		return "-"
	}
	t := skills.FormatLevel(*r.Target)
	if d := r.Delta(); d != 0 {
		sign := "+"
		if d < 0 {
			sign = ""
		}
		t += " (" + sign + skills.FormatLevel(d) + ")"
	}
	return t
}

func formatMean(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
