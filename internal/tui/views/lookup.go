package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/unilookup/internal/clipboard"
	"github.com/f3rmion/unilookup/internal/config"
	"github.com/f3rmion/unilookup/internal/details"
	"github.com/f3rmion/unilookup/internal/lookup"
	"github.com/f3rmion/unilookup/internal/tui/bigchar"
	"github.com/f3rmion/unilookup/internal/ucd"
	"github.com/f3rmion/unilookup/internal/uni"
)

const (
	detailWidth  = 38
	glyphCols    = 24
	glyphRows    = 12
	charColWidth = 5
	hexColWidth  = 9
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// lookupResultMsg carries the entries for the lookup numbered seq.
type lookupResultMsg struct {
	seq     int
	entries []uni.Entry
	elapsed time.Duration
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// lookupCmd runs the query off the UI goroutine.
func lookupCmd(engine *lookup.Engine, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		entries := engine.Lookup(query)
		return lookupResultMsg{seq: seq, entries: entries, elapsed: time.Since(start)}
	}
}

// LookupModel is the query view: an input line, the result list and a
// detail pane for the selected record.
type LookupModel struct {
	engine  *lookup.Engine
	inspect *details.Inspector
	glyphs  *bigchar.Renderer
	copy    func(string) error

	maxResults int
	bigGlyph   bool

	input   textinput.Model
	spinner spinner.Model
	focus   focus

	seq       int
	searching bool
	query     string
	records   []uni.Record
	total     int
	err       string
	elapsed   time.Duration
	selected  int
	offset    int

	copied  string
	copyErr error

	width  int
	height int
}

// NewLookupModel creates a new lookup view model. A nil cfg uses the defaults.
func NewLookupModel(engine *lookup.Engine, inspect *details.Inspector, cfg *config.Config, glyphs *bigchar.Renderer) LookupModel {
	if cfg == nil {
		cfg = config.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "U+2665, 9829, ♥ or a name like heart..."
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorAccent)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	return LookupModel{
		engine:     engine,
		inspect:    inspect,
		glyphs:     glyphs,
		copy:       clipboard.Write,
		maxResults: cfg.TUI.MaxResults,
		bigGlyph:   cfg.TUI.BigGlyph,
		input:      ti,
		spinner:    sp,
	}
}

// SetSize updates the view dimensions.
func (m *LookupModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-6, 10)
	m.scrollToSelected()
}

// Capturing reports whether key presses are going to the input line.
func (m LookupModel) Capturing() bool {
	return m.focus == focusInput
}

// SetQuery replaces the input text and starts resolving it.
func (m *LookupModel) SetQuery(query string) tea.Cmd {
	m.input.SetValue(query)
	m.input.CursorEnd()
	return m.submit()
}

// Selected returns the highlighted record, if any.
func (m LookupModel) Selected() (uni.Record, bool) {
	if m.selected < 0 || m.selected >= len(m.records) {
		return uni.Record{}, false
	}
	return m.records[m.selected], true
}

func (m *LookupModel) submit() tea.Cmd {
	query := m.input.Value()
	if strategy, err := m.engine.Classify(query); err == nil && strategy == lookup.StrategyNone {
		return nil
	}
	m.seq++
	m.searching = true
	m.query = query
	return tea.Batch(lookupCmd(m.engine, m.seq, query), m.spinner.Tick)
}

// Update handles messages.
func (m LookupModel) Update(msg tea.Msg) (LookupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupResultMsg:
		if msg.seq != m.seq {
			// A newer lookup is in flight.
			return m, nil
		}
		m.setResults(msg.entries, msg.elapsed)
		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearCopiedMsg:
		m.copied = ""
		m.copyErr = nil
		return m, nil

	case tea.KeyMsg:
		if m.focus == focusList {
			return m.updateList(msg)
		}
		switch msg.String() {
		case "enter":
			return m, m.submit()
		case "down":
			if len(m.records) > 0 {
				m.enterList()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m LookupModel) updateList(msg tea.KeyMsg) (LookupModel, tea.Cmd) {
	page := max(m.listHeight()-1, 1)

	switch msg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "pgup", "ctrl+u":
		m.move(-page)
	case "pgdown", "ctrl+d":
		m.move(page)
	case "home", "g":
		m.move(-len(m.records))
	case "end", "G":
		m.move(len(m.records))
	case "/", "i":
		m.focus = focusInput
		return m, m.input.Focus()
	case "y":
		if rec, ok := m.Selected(); ok {
			return m, m.copyText(string(rec.CP), rec.Hex)
		}
	case "Y":
		if rec, ok := m.Selected(); ok {
			return m, m.copyText(rec.Hex, rec.Hex)
		}
	}
	return m, nil
}

func (m *LookupModel) enterList() {
	m.focus = focusList
	m.input.Blur()
}

func (m *LookupModel) copyText(text, label string) tea.Cmd {
	if err := m.copy(text); err != nil {
		m.copied = ""
		m.copyErr = err
	} else {
		m.copied = label
		m.copyErr = nil
	}
	return clearCopiedAfter(2 * time.Second)
}

func (m *LookupModel) setResults(entries []uni.Entry, elapsed time.Duration) {
	m.searching = false
	m.elapsed = elapsed
	m.err = ""
	m.records = nil
	m.total = 0
	m.selected = 0
	m.offset = 0

	if len(entries) == 1 && entries[0].IsError() {
		m.err = entries[0].Error
		return
	}

	records := uni.Records(entries)
	m.total = len(records)
	if m.maxResults > 0 && len(records) > m.maxResults {
		records = records[:m.maxResults]
	}
	m.records = records
	if len(records) > 0 {
		m.enterList()
	}
}

func (m *LookupModel) move(delta int) {
	if len(m.records) == 0 {
		return
	}
	m.selected = min(max(m.selected+delta, 0), len(m.records)-1)
	m.scrollToSelected()
}

func (m *LookupModel) scrollToSelected() {
	h := m.listHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
	m.offset = max(m.offset, 0)
}

// listHeight is the number of result rows that fit under the input and
// status lines.
func (m LookupModel) listHeight() int {
	const chrome = 7
	if m.height <= 0 {
		return 20
	}
	return max(m.height-chrome, 3)
}

func (m LookupModel) wide() bool {
	return m.width >= detailWidth+50
}

// View renders the lookup view.
func (m LookupModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Unicode Lookup"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")

	if len(m.records) > 0 {
		if m.wide() {
			list := m.renderList(m.width - detailWidth - 2)
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", m.renderDetail()))
		} else {
			b.WriteString(m.renderList(m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m LookupModel) renderStatus() string {
	switch {
	case m.searching:
		return m.spinner.View() + loadingStyle.Render(" Searching...")
	case m.err != "":
		return errorStyle.Render(m.err)
	case m.copyErr != nil:
		return errorStyle.Render("Copy failed: " + m.copyErr.Error())
	case m.copied != "":
		return copiedStyle.Render("Copied " + m.copied)
	case m.query == "":
		return ""
	}

	var s string
	switch m.total {
	case 0:
		s = fmt.Sprintf("No characters match %q", strings.TrimSpace(m.query))
	case 1:
		s = "1 result"
	default:
		s = fmt.Sprintf("%d results", m.total)
	}
	if len(m.records) < m.total {
		s += fmt.Sprintf(", showing first %d", len(m.records))
	}
	if m.elapsed > 0 {
		s += " in " + m.elapsed.Round(time.Millisecond).String()
	}
	return subtitleStyle.Render(s)
}

func (m LookupModel) renderList(width int) string {
	end := min(m.offset+m.listHeight(), len(m.records))
	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		rows = append(rows, m.renderRow(m.records[i], width, i == m.selected && m.focus == focusList))
	}
	return strings.Join(rows, "\n")
}

func (m LookupModel) renderRow(rec uni.Record, width int, selected bool) string {
	char := runewidth.FillRight(rec.Display(), charColWidth)
	hex := runewidth.FillRight(rec.Hex, hexColWidth)
	nameWidth := max(width-charColWidth-hexColWidth-4, 10)
	name := runewidth.Truncate(rec.Name, nameWidth, "…")

	if selected {
		return rowSelectedStyle.Render("▸ " + char + hex + name)
	}
	if ucd.IsASCIIControl(rec.CP) {
		char = controlGlyphStyle.Render(char)
	}
	return "  " + char + hexStyle.Render(hex) + rowStyle.Render(name)
}

func (m LookupModel) renderDetail() string {
	rec, ok := m.Selected()
	if !ok {
		return ""
	}
	inner := detailWidth - 4

	var glyph string
	if m.bigGlyph && !ucd.IsASCIIControl(rec.CP) && unicode.IsGraphic(rec.CP) {
		if art := m.glyphs.Render(rec.CP, glyphCols, glyphRows); strings.TrimSpace(art) != "" {
			glyph = bigGlyphStyle.Render(art)
		}
	}
	if glyph == "" {
		glyph = glyphBoxStyle.Render(rec.Display())
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, glyph))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Bold(true).Foreground(colorAccent).Render(rec.Name))
	b.WriteString("\n\n")

	props := m.inspect.Inspect(rec.CP)
	b.WriteString(renderField("Code point", rec.Hex))
	b.WriteString(renderField("Decimal", strconv.Itoa(int(rec.CP))))
	b.WriteString(renderField("Category", props.Category))
	b.WriteString(renderField("Script", props.Script))
	b.WriteString(renderField("UTF-8", props.UTF8))
	b.WriteString(renderField("UTF-16", props.UTF16))
	b.WriteString(renderField("Width", strconv.Itoa(props.Width)))
	b.WriteString(renderField("NFD", props.NFD))
	b.WriteString(renderField("NFKD", props.NFKD))
	b.WriteString(renderField("Pinyin", strings.Join(props.Pinyin, ", ")))

	return boxStyle.Width(detailWidth).Render(strings.TrimRight(b.String(), "\n"))
}

// renderField renders one label/value line; empty values are omitted.
func renderField(label, value string) string {
	if value == "" {
		return ""
	}
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func (m LookupModel) renderHelp() string {
	var parts []string
	if m.focus == focusInput {
		parts = append(parts, "enter: look up")
		if len(m.records) > 0 {
			parts = append(parts, "↓: results")
		}
	} else {
		parts = append(parts, "j/k: navigate", "y: copy char", "Y: copy hex", "/: edit query")
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
