package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rashika27/frameview/pkg/frame"
	"github.com/rashika27/frameview/pkg/geom"
	"github.com/rashika27/frameview/pkg/pipeline"
	"github.com/rashika27/frameview/pkg/scene"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// MemberRow - one line of the member table
// =============================================================================

// MemberRow summarizes one member for the inspect table.
type MemberRow struct {
	ID            string
	Start, End    string
	Length        float64
	StartEndpoint bool
	EndEndpoint   bool
	Skipped       scene.SkipReason
}

// memberRows builds one row per member in frame order.
func memberRows(f *frame.Frame, s *scene.Scene) []MemberRow {
	counts := frame.CountConnections(f.Members())
	skipped := make(map[string]scene.SkipReason, len(s.Skipped))
	for _, sk := range s.Skipped {
		skipped[sk.MemberID] = sk.Reason
	}

	rows := make([]MemberRow, 0, f.MemberCount())
	for _, m := range f.Members() {
		row := MemberRow{
			ID:            m.ID,
			Start:         m.Start,
			End:           m.End,
			StartEndpoint: counts.IsEndpoint(m.Start),
			EndEndpoint:   counts.IsEndpoint(m.End),
			Skipped:       skipped[m.ID],
		}
		if a, b, ok := f.Resolve(m); ok {
			row.Length = geom.Distance(a.Position, b.Position)
		}
		rows = append(rows, row)
	}
	return rows
}

// =============================================================================
// MemberTableModel - Interactive member browser
// =============================================================================

// MemberTableModel is the bubbletea model for browsing members.
type MemberTableModel struct {
	Title  string
	Rows   []MemberRow
	Cursor int
	Height int
	Offset int
}

// NewMemberTableModel creates a new member table model.
func NewMemberTableModel(title string, rows []MemberRow) MemberTableModel {
	return MemberTableModel{
		Title:  title,
		Rows:   rows,
		Height: 15,
	}
}

func (m MemberTableModel) Init() tea.Cmd {
	return nil
}

func (m MemberTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Rows); n > 0 {
				m.Cursor = n - 1
				if m.Cursor >= m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m MemberTableModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		length := "—"
		if r.Skipped != scene.SkipUnresolved {
			length = fmt.Sprintf("%.4g", r.Length)
		}
		status := "ok"
		if r.Skipped != "" {
			status = string(r.Skipped)
		}

		rows = append(rows, []string{cursor, r.ID, markEndpoint(r.Start, r.StartEndpoint), markEndpoint(r.End, r.EndEndpoint), length, status})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Member", "Start", "End", "Length", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			idx := m.Offset + row
			if idx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			r := m.Rows[idx]
			base := lipgloss.NewStyle()
			if r.Skipped != "" {
				base = base.Foreground(colorYellow)
			} else if col == 4 {
				base = base.Foreground(colorCyan)
			}
			if idx == m.Cursor {
				base = base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if len(m.Rows) > 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  * endpoint", m.Cursor+1, len(m.Rows))))
	} else {
		b.WriteString(listDimStyle.Render("  no members"))
	}

	return b.String()
}

func markEndpoint(id string, endpoint bool) string {
	if endpoint {
		return id + " *"
	}
	return id
}

// =============================================================================
// inspect command
// =============================================================================

// inspectCommand creates the inspect command, an interactive member table.
func (c *CLI) inspectCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Browse a frame's members interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], noCache)
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, noCache bool) error {
	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	popts := pipeline.Options{Path: input, Scene: c.Config.Scene.Options()}
	f, err := runner.Load(ctx, popts)
	if err != nil {
		return err
	}
	s := runner.Compose(ctx, f, popts)

	title := fmt.Sprintf("%s · %d members · %d nodes", input, f.MemberCount(), f.NodeCount())
	model := NewMemberTableModel(title, memberRows(f, s))
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}
