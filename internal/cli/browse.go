package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tshape/pkg/pipeline"
	"github.com/matzehuels/tshape/pkg/skills"
)

// browseCommand creates the interactive catalog browser.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		data   dataFlags
		target bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the skills catalog interactively",
		Long: `Browse the skills catalog interactively.

One tab per category, skills sorted by level. Press t to switch between all
skills and the skills marked for growth.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			data.apply(&opts)
			return c.runBrowse(cmd.Context(), opts, target)
		},
	}

	data.register(cmd)
	cmd.Flags().BoolVarP(&target, "target", "t", false, "start with the skills marked for growth")

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, opts pipeline.Options, target bool) error {
	opts.SetLayoutDefaults()
	ds, err := pipeline.Load(ctx, opts)
	if err != nil {
		return err
	}

	m := newBrowseModel(ds.Records, opts.Categories, ds.Source(), target)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// Browser styles
var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)
	styleSelectedRow = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	badgeStyle       = lipgloss.NewStyle().Foreground(colorGreen)
)

// =============================================================================
// browseModel - Interactive catalog browser
// =============================================================================

// browseModel is the bubbletea model of the catalog browser.
type browseModel struct {
	groups []skills.CategoryBreakdown
	source string

	active int  // selected category tab
	target bool // only skills marked for growth
	cursor int
	offset int
	height int
}

func newBrowseModel(records []skills.Record, order []string, source string, target bool) browseModel {
	return browseModel{
		groups: skills.Breakdown(records, order),
		source: source,
		target: target,
		height: 15,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "tab":
			m = m.selectTab(m.active + 1)
		case "left", "h", "shift+tab":
			m = m.selectTab(m.active - 1)
		case "t":
			m.target = !m.target
			m.cursor, m.offset = 0, 0
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// selectTab moves to tab i, wrapping around at both ends.
func (m browseModel) selectTab(i int) browseModel {
	n := len(m.groups)
	if n == 0 {
		return m
	}
	m.active = ((i % n) + n) % n
	m.cursor, m.offset = 0, 0
	return m
}

// visible returns the skills of the active tab shown in the current view.
func (m browseModel) visible() []skills.Record {
	if len(m.groups) == 0 {
		return nil
	}
	all := m.groups[m.active].Skills
	if !m.target {
		return all
	}
	return growing(all)
}

// growing keeps the skills whose target differs from their level.
func growing(records []skills.Record) []skills.Record {
	var out []skills.Record
	for _, r := range records {
		if r.HasTarget() && r.Delta() != 0 {
			out = append(out, r)
		}
	}
	return out
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Skills") + " " + StyleDim.Render(m.source))
	b.WriteString("\n\n")

	if len(m.groups) == 0 {
		b.WriteString(StyleDim.Render("The catalog is empty."))
		b.WriteString("\n")
		return b.String()
	}

	tabs := make([]string, len(m.groups))
	for i, g := range m.groups {
		n := len(g.Skills)
		if m.target {
			n = len(growing(g.Skills))
		}
		label := fmt.Sprintf("%s (%d)", g.Category, n)
		if i == m.active {
			tabs[i] = tabActiveStyle.Render(label)
		} else {
			tabs[i] = tabInactiveStyle.Render(label)
		}
	}
	b.WriteString(strings.Join(tabs, StyleDim.Render(" │ ")))
	b.WriteString("\n")

	view := "all skills"
	if m.target {
		view = "skills marked for growth"
	}
	b.WriteString(StyleDim.Render("showing " + view))
	b.WriteString("\n\n")

	records := m.visible()
	if len(records) == 0 {
		b.WriteString(StyleDim.Render("No skills marked for growth in this category."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.table(records))
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render("←/→ category  ↑/↓ scroll  t toggle growth view  q quit"))
	return b.String()
}

// table renders the visible window of records.
func (m browseModel) table(records []skills.Record) string {
	end := min(m.offset+m.height, len(records))

	rows := make([][]string, 0, end-m.offset)
	for _, r := range records[m.offset:end] {
		badge := ""
		if r.HasTarget() && r.Delta() != 0 {
			badge = badgeStyle.Render("▲ " + skills.FormatLevel(r.Delta()))
			if r.Delta() < 0 {
				badge = StyleWarning.Render("▼ " + skills.FormatLevel(-r.Delta()))
			}
		}
		rows = append(rows, []string{r.Skill, skills.FormatLevel(r.Level), targetText(r), badge})
	}

	return newTable("Skill", "Level", "Target", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleHeader
			case m.offset+row == m.cursor:
				return styleSelectedRow
			case col == 1 || col == 2:
				return styleNumber
			default:
				return styleCell
			}
		}).
		String()
}
