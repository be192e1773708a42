package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Theme holds the colors used to paint a grid.
type Theme struct {
	Surface1   lipgloss.Color // even rows
	Surface2   lipgloss.Color // odd rows
	Hover      lipgloss.Color
	Header     lipgloss.Color
	HeaderText lipgloss.Color
	Action     lipgloss.Color // active sort glyph
	Text       lipgloss.Color
	Strong     lipgloss.Color // identifier and name cells
	Muted      lipgloss.Color // description rows
	Border     lipgloss.Color
}

// DefaultTheme is a dark palette.
func DefaultTheme() Theme {
	return Theme{
		Surface1:   lipgloss.Color("#282A36"),
		Surface2:   lipgloss.Color("#21222C"),
		Hover:      lipgloss.Color("#44475A"),
		Header:     lipgloss.Color("#191A21"),
		HeaderText: lipgloss.Color("#FF79C6"),
		Action:     lipgloss.Color("#FFB86C"),
		Text:       lipgloss.Color("#F8F8F2"),
		Strong:     lipgloss.Color("#8BE9FD"),
		Muted:      lipgloss.Color("#6272A4"),
		Border:     lipgloss.Color("#6272A4"),
	}
}

// PaintOptions tunes painting. MaxColWidth <= 0 leaves columns unbounded.
type PaintOptions struct {
	MaxColWidth int
	// Cursor underlines the header of the column with this key, marking
	// keyboard focus.
	Cursor string
}

// TargetKind tells what a painted line shows.
type TargetKind int

const (
	TargetHeader TargetKind = iota
	TargetPrimary
	TargetDescription
	TargetSeparator
)

// Target describes one painted line. Row is the post-sort index for primary
// and description lines, -1 otherwise.
type Target struct {
	Kind TargetKind
	Row  int
}

// Span is the horizontal extent [Start, End) of a header cell.
type Span struct {
	Key      string
	Start    int
	End      int
	Sortable bool
}

// Painted is a grid drawn into terminal lines plus the geometry needed to map
// pointer positions back to columns and rows.
type Painted struct {
	Lines   []string
	Width   int
	Targets []Target
	Spans   []Span
}

// String joins the painted lines.
func (p Painted) String() string {
	return strings.Join(p.Lines, "\n")
}

// ColumnAt returns the header span containing column x.
func (p Painted) ColumnAt(x int) (Span, bool) {
	for _, s := range p.Spans {
		if x >= s.Start && x < s.End {
			return s, true
		}
	}
	return Span{}, false
}

// RowAt returns the post-sort index of the primary row on line. Description
// and separator lines belong to no row, the way pointer movement onto them
// leaves the primary row.
func (p Painted) RowAt(line int) (int, bool) {
	if line < 0 || line >= len(p.Targets) {
		return 0, false
	}
	t := p.Targets[line]
	if t.Kind != TargetPrimary {
		return 0, false
	}
	return t.Row, true
}

// IsHeader reports whether line is the header line.
func (p Painted) IsHeader(line int) bool {
	return line >= 0 && line < len(p.Targets) && p.Targets[line].Kind == TargetHeader
}

// cellPad is the horizontal padding on each side of a cell.
const cellPad = 1

// Paint draws g with th.
func Paint(g Grid, th Theme, opts PaintOptions) Painted {
	widths := columnWidths(g, opts.MaxColWidth)
	var p Painted
	for _, w := range widths {
		p.Width += w + 2*cellPad
	}

	// Header.
	var hdr strings.Builder
	x := 0
	for i, h := range g.Header {
		w := widths[i]
		st := lipgloss.NewStyle().
			Background(th.Header).
			Foreground(th.HeaderText).
			Bold(true).
			Underline(opts.Cursor != "" && h.Key == opts.Cursor).
			Padding(0, cellPad).
			Width(w + 2*cellPad).
			Align(position(h.Align))
		label := fit(h.Label, w-glyphWidth(h))
		if glyph := h.Glyph(); glyph != "" {
			label += " " + lipgloss.NewStyle().Background(th.Header).Foreground(th.Action).Render(glyph)
		}
		hdr.WriteString(st.Render(label))
		p.Spans = append(p.Spans, Span{Key: h.Key, Start: x, End: x + w + 2*cellPad, Sortable: h.Sortable})
		x += w + 2*cellPad
	}
	p.add(hdr.String(), Target{Kind: TargetHeader, Row: -1})

	for _, r := range g.Rows {
		bg := th.Surface1
		if r.Band == BandOdd {
			bg = th.Surface2
		}
		switch r.Kind {
		case PrimaryRow:
			if r.Hovered {
				bg = th.Hover
			}
			p.add(paintPrimary(r, widths, th, bg), Target{Kind: TargetPrimary, Row: r.Index})
		case DescriptionRow:
			for _, line := range paintDescription(r, widths, p.Width, th, bg) {
				p.add(line, Target{Kind: TargetDescription, Row: r.Index})
			}
			sep := lipgloss.NewStyle().Foreground(th.Border).Render(strings.Repeat("─", p.Width))
			p.add(sep, Target{Kind: TargetSeparator, Row: -1})
		}
	}
	return p
}

func (p *Painted) add(line string, t Target) {
	p.Lines = append(p.Lines, line)
	p.Targets = append(p.Targets, t)
}

func paintPrimary(r Row, widths []int, th Theme, bg lipgloss.Color) string {
	var sb strings.Builder
	for i, c := range r.Cells {
		w := widths[i]
		st := lipgloss.NewStyle().
			Background(bg).
			Foreground(th.Text).
			Padding(0, cellPad).
			Width(w + 2*cellPad).
			Align(position(c.Align))
		switch c.Role {
		case RoleIdentifier:
			st = st.Foreground(th.Strong).Bold(true)
		case RoleName:
			st = st.Foreground(th.Text)
		default:
			if c.Active {
				st = st.Bold(true)
			}
		}
		sb.WriteString(st.Render(fit(c.Text, w)))
	}
	return sb.String()
}

func paintDescription(r Row, widths []int, total int, th Theme, bg lipgloss.Color) []string {
	first := 0
	if len(widths) > 0 {
		first = widths[0] + 2*cellPad
	}
	span := total - first
	if span < 2*cellPad+1 {
		// Single-column tables have nothing to span; use the whole row.
		first, span = 0, total
	}
	lead := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", first))
	body := lipgloss.NewStyle().
		Background(bg).
		Foreground(th.Muted).
		Italic(true).
		Padding(0, cellPad).
		Width(span).
		Render(r.Description)

	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = lead + l
	}
	return lines
}

func columnWidths(g Grid, maxW int) []int {
	widths := make([]int, len(g.Header))
	for i, h := range g.Header {
		w := lipgloss.Width(h.Label)
		if h.Sortable {
			// Room for the glyph, so widths do not move as the sort changes.
			w += 2
		}
		widths[i] = w
	}
	for _, r := range g.Rows {
		if r.Kind != PrimaryRow {
			continue
		}
		for i, c := range r.Cells {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(c.Text))
			}
		}
	}
	if maxW > 0 {
		for i := range widths {
			widths[i] = min(widths[i], maxW)
		}
	}
	return widths
}

func glyphWidth(h HeaderCell) int {
	if !h.Active {
		return 0
	}
	return 2
}

// fit truncates s to w cells, keeping ANSI sequences intact.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	return ansi.Truncate(s, w, "…")
}

func position(a Align) lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignRight:
		return lipgloss.Right
	}
	return lipgloss.Left
}
