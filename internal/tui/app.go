package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/unilookup/internal/config"
	"github.com/f3rmion/unilookup/internal/details"
	"github.com/f3rmion/unilookup/internal/lookup"
	"github.com/f3rmion/unilookup/internal/tui/bigchar"
	"github.com/f3rmion/unilookup/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewLookup ViewType = iota
	ViewControls
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

// AppModel is the main TUI model
type AppModel struct {
	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	lookupView   views.LookupModel
	controlsView views.ControlsModel

	// Query to resolve on start
	initialQuery string

	showHelp bool
}

// NewApp creates the TUI application. A nil cfg uses the defaults.
func NewApp(engine *lookup.Engine, cfg *config.Config) AppModel {
	if cfg == nil {
		cfg = config.Default()
	}

	var glyphs *bigchar.Renderer
	if cfg.TUI.BigGlyph {
		glyphs = bigchar.Default()
	}

	return AppModel{
		sidebarWidth: 18,
		currentView:  ViewLookup,
		menuItems: []MenuItem{
			{Label: "Lookup", View: ViewLookup, Shortcut: "1"},
			{Label: "Controls", View: ViewControls, Shortcut: "2"},
		},
		lookupView:   views.NewLookupModel(engine, details.NewInspector(), cfg, glyphs),
		controlsView: views.NewControlsModel(),
	}
}

// NewAppWithQuery creates an app that resolves query as soon as it starts.
func NewAppWithQuery(engine *lookup.Engine, cfg *config.Config, query string) AppModel {
	app := NewApp(engine, cfg)
	app.initialQuery = query
	return app
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	if m.initialQuery != "" {
		query := m.initialQuery
		return tea.Batch(textinput.Blink, func() tea.Msg {
			return views.LookupRequestMsg{Query: query}
		})
	}
	return textinput.Blink
}

// capturing reports whether the active view wants plain key presses as text.
func (m AppModel) capturing() bool {
	return !m.sidebarActive && m.currentView == ViewLookup && m.lookupView.Capturing()
}

func (m *AppModel) switchTo(v ViewType) {
	m.currentView = v
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	m.sidebarActive = false
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		if !m.capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1":
				m.switchTo(ViewLookup)
				return m, nil
			case "2":
				m.switchTo(ViewControls)
				return m, nil
			}
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right":
				m.switchTo(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2
		m.lookupView.SetSize(contentWidth, contentHeight)
		m.controlsView.SetSize(contentWidth, contentHeight)
		return m, nil

	case ViewSwitchMsg:
		m.switchTo(msg.View)
		return m, nil

	case views.LookupRequestMsg:
		m.switchTo(ViewLookup)
		return m, m.lookupView.SetQuery(msg.Query)
	}

	// Lookup results and timers belong to the lookup view whichever view is
	// showing.
	if _, ok := msg.(tea.KeyMsg); !ok {
		var cmd tea.Cmd
		m.lookupView, cmd = m.lookupView.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewLookup:
		m.lookupView, cmd = m.lookupView.Update(msg)
	case ViewControls:
		m.controlsView, cmd = m.controlsView.Update(msg)
	}
	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.currentView {
	case ViewLookup:
		content = m.lookupView.View()
	case ViewControls:
		content = m.controlsView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" U+ lookup "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		switch {
		case i == m.selectedMenu && m.sidebarActive:
			style = SidebarItemActiveStyle
		case i == m.selectedMenu:
			// Current view, sidebar not focused
			style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
		default:
			style = SidebarItemStyle
		}
		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}
	items = append(items, SidebarHelpStyle.Render("? Help  q Quit"))

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	key := HelpKeyStyle.Render
	desc := HelpDescStyle.Render

	helpText := HelpTitleStyle.Render("Unicode Lookup") + "\n\n"

	helpText += HelpSectionStyle.Render("Global Keys") + "\n"
	helpText += key("1-2") + desc("Switch views") + "\n"
	helpText += key("tab") + desc("Toggle sidebar focus") + "\n"
	helpText += key("esc") + desc("Sidebar, then quit") + "\n"
	helpText += key("?") + desc("Show this help") + "\n"
	helpText += key("q") + desc("Quit") + "\n"

	helpText += HelpSectionStyle.Render("Lookup") + "\n"
	helpText += key("enter") + desc("Resolve the query") + "\n"
	helpText += key("↓") + desc("Move to the results") + "\n"
	helpText += key("j/k ↑/↓") + desc("Navigate results") + "\n"
	helpText += key("g/G") + desc("First/last result") + "\n"
	helpText += key("y") + desc("Copy character") + "\n"
	helpText += key("Y") + desc("Copy U+ notation") + "\n"
	helpText += key("/") + desc("Edit the query") + "\n"

	helpText += HelpSectionStyle.Render("Controls") + "\n"
	helpText += key("enter") + desc("Look up the control") + "\n"

	helpText += HelpSectionStyle.Render("Queries") + "\n"
	helpText += key("U+2665") + desc("Hex code point") + "\n"
	helpText += key("9829") + desc("Decimal code point") + "\n"
	helpText += key("♥") + desc("Single character") + "\n"
	helpText += key("heart") + desc("Name fragment") + "\n"

	helpText += "\n" + HelpFooterStyle.Render("Press any key to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, HelpBoxStyle.Render(helpText))
}
