package ui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/xreport/config"
	"github.com/ftahirops/xreport/grid"
	"github.com/ftahirops/xreport/model"
)

// tabLines is the height of the section tabs above the content, statusLines
// the height of the status bar under it.
const (
	tabLines    = 1
	statusLines = 1
)

// Model is the bubbletea model.
type Model struct {
	report model.Report
	theme  grid.Theme
	maxCol int
	width  int
	height int

	// Navigation
	section  int
	tables   []*grid.Table
	focus    int // focused table
	cursor   int // header cursor within the focused table
	scroll   int // vertical scroll offset
	showHelp bool

	hideDesc bool
	sortKeys []string
}

// NewModel creates a new TUI model opened on the configured section.
// sortKeys are activated on every table that has them, each time a section
// is opened.
func NewModel(rep model.Report, cfg config.Config, sortKeys []string) Model {
	m := Model{
		report:   rep,
		theme:    cfg.Theme.Apply(grid.DefaultTheme()),
		maxCol:   cfg.MaxColWidth,
		hideDesc: cfg.HideDescriptions,
		sortKeys: sortKeys,
	}
	idx := rep.Index(cfg.Section)
	if idx < 0 {
		idx = 0
	}
	m.openSection(idx)
	return m
}

// openSection switches to section i with fresh tables.
func (m *Model) openSection(i int) {
	if len(m.report.Sections) == 0 {
		return
	}
	if i < 0 {
		i = len(m.report.Sections) - 1
	}
	if i >= len(m.report.Sections) {
		i = 0
	}
	m.section = i
	m.tables = m.report.Sections[i].NewTables(m.hideDesc)
	model.ApplySort(m.tables, m.sortKeys)
	m.focus, m.cursor, m.scroll = 0, 0, 0
	log.Printf("open section %s (%d tables)", m.current().ID, len(m.tables))
}

func (m Model) current() model.Section {
	return m.report.Sections[m.section]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "tab", "ctrl+right":
		m.openSection(m.section + 1)
	case "shift+tab", "ctrl+left":
		m.openSection(m.section - 1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "0":
		n := int(key[0] - '0')
		if n == 0 {
			n = 10
		}
		if n <= len(m.report.Sections) {
			m.openSection(n - 1)
		}
	case "]":
		m.setFocus(m.focus + 1)
	case "[":
		m.setFocus(m.focus - 1)
	case "h", "left":
		m.moveCursor(-1)
	case "l", "right":
		m.moveCursor(1)
	case "enter", " ", "s":
		m.activateCursor()
	case "j", "down":
		m.moveHover(1)
	case "k", "up":
		m.moveHover(-1)
	case "esc":
		for _, t := range m.tables {
			t.Leave()
		}
	case "d":
		m.hideDesc = !m.hideDesc
		focus := m.focus
		m.openSection(m.section)
		m.setFocus(focus)
	case "pgdown", "ctrl+d":
		m.scrollBy(m.viewH())
	case "pgup", "ctrl+u":
		m.scrollBy(-m.viewH())
	case "g", "home":
		m.scroll = 0
	case "G", "end":
		m.scrollBy(1 << 20)
	}
	return m, nil
}

// handleMouse maps pointer events onto tables: motion hovers primary rows
// and leaves every other table, a left press on a header sorts.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
		return
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
		return
	}

	pg := m.page()
	row := msg.Y - tabLines
	line := row + m.scroll
	if row < 0 || row >= m.viewH() {
		line = -1
	}
	r, inside := pg.hit(msg.X, line)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inside {
		local := line - r.top
		if r.painted.IsHeader(local) {
			if span, ok := r.painted.ColumnAt(msg.X - r.left); ok {
				m.focus = r.table
				m.cursor = m.columnIndex(span.Key)
				if m.tables[r.table].Activate(span.Key) {
					log.Printf("sort %s/%d: %s", m.current().ID, r.table, m.tables[r.table].Sort())
				}
			}
			return
		}
	}

	for i, t := range m.tables {
		if !inside || r.table != i {
			t.Leave()
			continue
		}
		if row, ok := r.painted.RowAt(line - r.top); ok {
			t.Hover(row)
		} else {
			t.Leave()
		}
	}
}

func (m *Model) setFocus(i int) {
	if len(m.tables) == 0 {
		return
	}
	if i < 0 {
		i = len(m.tables) - 1
	}
	if i >= len(m.tables) {
		i = 0
	}
	m.focus = i
	if n := len(m.tables[i].Columns()); m.cursor >= n {
		m.cursor = n - 1
	}
	m.reveal()
}

func (m *Model) moveCursor(d int) {
	if len(m.tables) == 0 {
		return
	}
	n := len(m.tables[m.focus].Columns())
	m.cursor = (m.cursor + d + n) % n
}

func (m *Model) activateCursor() {
	if len(m.tables) == 0 {
		return
	}
	t := m.tables[m.focus]
	cols := t.Columns()
	if m.cursor >= len(cols) {
		return
	}
	if t.Activate(cols[m.cursor].Key) {
		log.Printf("sort %s/%d: %s", m.current().ID, m.focus, t.Sort())
	}
}

func (m *Model) moveHover(d int) {
	if len(m.tables) == 0 {
		return
	}
	t := m.tables[m.focus]
	if t.Len() == 0 {
		return
	}
	i, ok := t.Hovered()
	switch {
	case !ok && d > 0:
		i = 0
	case !ok:
		i = t.Len() - 1
	default:
		i += d
	}
	if i < 0 {
		i = 0
	}
	if i >= t.Len() {
		i = t.Len() - 1
	}
	for j, other := range m.tables {
		if j != m.focus {
			other.Leave()
		}
	}
	t.Hover(i)
}

func (m Model) columnIndex(key string) int {
	for i, c := range m.tables[m.focus].Columns() {
		if c.Key == key {
			return i
		}
	}
	return 0
}

func (m Model) cursorKey() string {
	if len(m.tables) == 0 {
		return ""
	}
	cols := m.tables[m.focus].Columns()
	if m.cursor < len(cols) {
		return cols[m.cursor].Key
	}
	return ""
}

// viewH is the number of content lines on screen.
func (m Model) viewH() int {
	if h := m.height - tabLines - statusLines; h > 0 {
		return h
	}
	return 1
}

func (m *Model) scrollBy(d int) {
	m.scroll += d
	m.clampScroll()
}

func (m *Model) clampScroll() {
	maxScroll := len(m.page().lines) - m.viewH()
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// reveal scrolls so the focused table's heading is visible.
func (m *Model) reveal() {
	r, ok := m.page().regionOf(m.focus)
	if !ok {
		return
	}
	top := r.top - 1
	bottom := r.top + len(r.painted.Lines)
	if top < m.scroll || bottom > m.scroll+m.viewH() {
		m.scroll = top
	}
	m.clampScroll()
}

func (m Model) page() page {
	if len(m.report.Sections) == 0 {
		return page{}
	}
	return renderSection(m.current(), m.tables, layoutOptions{
		width:       m.width,
		theme:       m.theme,
		maxColWidth: m.maxCol,
		focus:       m.focus,
		cursor:      m.cursorKey(),
	})
}

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	if m.width == 0 {
		return "Loading..."
	}
	if len(m.report.Sections) == 0 {
		return "No sections."
	}

	lines := m.page().lines
	if m.scroll > 0 && m.scroll < len(lines) {
		lines = lines[m.scroll:]
	}
	maxLines := m.viewH()
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for len(lines) < maxLines {
		lines = append(lines, "")
	}
	return m.renderTabs() + "\n" + strings.Join(lines, "\n") + "\n" + m.renderStatusBar()
}

// renderTabs lists the sections across the top, the current one expanded.
func (m Model) renderTabs() string {
	var tabs []string
	for i, s := range m.report.Sections {
		label := s.Num
		if label == "" {
			label = s.ID
		}
		if i == m.section {
			tabs = append(tabs, headerStyle.Render("["+label+" "+s.Title+"]"))
		} else {
			tabs = append(tabs, dimStyle.Render(" "+label+" "))
		}
	}
	return styledPad(strings.Join(tabs, ""), m.width)
}

func (m Model) renderStatusBar() string {
	info := m.current().Caption()
	if len(m.tables) > 0 {
		t := m.tables[m.focus]
		info += fmt.Sprintf("  table %d/%d  sort %s", m.focus+1, len(m.tables), t.Sort())
		if i, ok := t.Hovered(); ok {
			if ticker, ok := t.Rows()[i].Value("ticker").(string); ok {
				info += "  " + ticker
			}
		}
	}
	if m.hideDesc {
		info += "  [no desc]"
	}
	info = styledPad(selectedStyle.Render(" "+info), m.width)
	return info + helpStyle.Render("  ? help")
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	title := m.report.Title
	if title == "" {
		title = "xreport"
	}
	sb.WriteString(titleStyle.Render(title))
	if m.report.AsOf != "" {
		sb.WriteString(dimStyle.Render("  data as of " + m.report.AsOf))
	}
	sb.WriteString("\n\n")
	sb.WriteString(headerStyle.Render("Sections"))
	sb.WriteString("\n")
	sb.WriteString("  Tab / Shift+Tab   Next / previous section\n")
	sb.WriteString("  Ctrl+→ / Ctrl+←   Next / previous section\n")
	sb.WriteString("  1-9, 0            Jump to section by position\n")
	sb.WriteString("  d                 Toggle description rows\n")
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("Tables"))
	sb.WriteString("\n")
	sb.WriteString("  [ / ]             Focus previous / next table\n")
	sb.WriteString("  h/l  ←/→          Move header cursor\n")
	sb.WriteString("  Enter/Space/s     Sort by the column under the cursor (again to reverse)\n")
	sb.WriteString("  j/k  ↓/↑          Highlight next / previous row\n")
	sb.WriteString("  Esc               Clear highlight\n")
	sb.WriteString("  Click header      Sort by that column\n")
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("Scrolling"))
	sb.WriteString("\n")
	sb.WriteString("  PgUp/PgDn, wheel  Scroll\n")
	sb.WriteString("  g/G               Top / bottom\n")
	sb.WriteString("  ?                 Toggle this help\n")
	sb.WriteString("  q/Ctrl+C          Quit\n")
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Press any key to close"))
	return sb.String()
}
