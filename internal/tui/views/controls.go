package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/unilookup/internal/ucd"
	"github.com/f3rmion/unilookup/internal/uni"
)

// LookupRequestMsg asks the app to show the lookup view and resolve Query.
type LookupRequestMsg struct {
	Query string
}

// ControlsModel lists the ASCII control characters with their mnemonics.
type ControlsModel struct {
	table  table.Model
	width  int
	height int
}

// NewControlsModel creates the control character table.
func NewControlsModel() ControlsModel {
	columns := []table.Column{
		{Title: "Hex", Width: 8},
		{Title: "Dec", Width: 4},
		{Title: "Abbr", Width: 5},
		{Title: "Name", Width: 28},
	}

	controls := ucd.Controls()
	rows := make([]table.Row, 0, len(controls))
	for _, c := range controls {
		rows = append(rows, table.Row{
			uni.Hex(c.CP),
			strconv.Itoa(int(c.CP)),
			c.Abbrev,
			c.Name,
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(colorLabel)
	styles.Selected = styles.Selected.
		Foreground(colorAccent).
		Background(colorBgAlt).
		Bold(true)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)),
		table.WithStyles(styles),
	)

	return ControlsModel{table: t}
}

// SetSize updates the view dimensions.
func (m *ControlsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-6, 5))
}

// Selected returns the hex notation of the highlighted control.
func (m ControlsModel) Selected() string {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

// Update handles messages.
func (m ControlsModel) Update(msg tea.Msg) (ControlsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		query := m.Selected()
		if query == "" {
			return m, nil
		}
		return m, func() tea.Msg { return LookupRequestMsg{Query: query} }
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the controls view.
func (m ControlsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ASCII Control Characters"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("j/k: navigate • enter: look up"))
	return b.String()
}
