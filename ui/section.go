package ui

import (
	"github.com/ftahirops/xreport/grid"
	"github.com/ftahirops/xreport/model"
)

// region is where one painted table landed in the section content.
type region struct {
	table   int
	top     int // content line of the header
	left    int // column of the first cell
	painted grid.Painted
}

// contains reports whether content position (x, line) is inside the table.
func (r region) contains(x, line int) bool {
	return line >= r.top && line < r.top+len(r.painted.Lines) &&
		x >= r.left && x < r.left+r.painted.Width
}

// page is a rendered section: its lines and the table geometry.
type page struct {
	lines   []string
	regions []region
}

// layoutOptions carries what the section renderer needs from the model.
type layoutOptions struct {
	width       int
	theme       grid.Theme
	maxColWidth int
	focus       int
	cursor      string
}

// renderSection lays out sec with its live tables.
func renderSection(sec model.Section, tables []*grid.Table, opt layoutOptions) page {
	var pg page
	add := func(lines ...string) { pg.lines = append(pg.lines, lines...) }
	w := contentW(opt.width)

	add("")
	head := titleStyle.Render(sec.Title)
	if sec.Num != "" {
		head = numStyle.Render(sec.Num) + "  " + head
	}
	add(indent([]string{head}, margin)...)
	if sec.Subtitle != "" {
		add(indent([]string{dimStyle.Render(sec.Subtitle)}, margin)...)
	}
	if sec.Summary != "" {
		add("")
		add(indent(styleLines(wrap(sec.Summary, w), valueStyle), margin)...)
	}

	for i, p := range sec.Tables {
		if i >= len(tables) {
			break
		}
		add("")
		marker := "  "
		if i == opt.focus {
			marker = focusStyle.Render("▶ ")
		}
		heading := headerStyle.Render(p.Title)
		if h := p.Heading(); h != "" {
			heading = labelStyle.Render(h) + "  " + heading
		}
		add(marker + heading)
		tw := w - margin
		if p.Tagline != "" {
			add(indent(styleLines(wrap(p.Tagline, tw), italicStyle), 2*margin)...)
		}
		if p.Insight != "" {
			add(indent(styleLines(wrap(p.Insight, tw), insightStyle), 2*margin)...)
		}

		popt := grid.PaintOptions{MaxColWidth: opt.maxColWidth}
		if i == opt.focus {
			popt.Cursor = opt.cursor
		}
		painted := grid.Paint(tables[i].Grid(), opt.theme, popt)
		pg.regions = append(pg.regions, region{
			table:   i,
			top:     len(pg.lines),
			left:    margin,
			painted: painted,
		})
		add(indent(painted.Lines, margin)...)

		if p.Hook != "" {
			add(indent(boxSection("Mispricing hook", p.Hook, tw-4), margin-1)...)
		}
		if p.Note != "" {
			add(indent(styleLines(wrap(p.Note, tw), italicStyle), margin)...)
		}
	}

	if sec.Note != "" {
		add("")
		add(indent(styleLines(wrap(sec.Note, w), dimStyle), margin)...)
	}
	add("")
	return pg
}

// hit finds the table under content position (x, line).
func (pg page) hit(x, line int) (region, bool) {
	for _, r := range pg.regions {
		if r.contains(x, line) {
			return r, true
		}
	}
	return region{}, false
}

// regionOf returns the region of table i.
func (pg page) regionOf(i int) (region, bool) {
	for _, r := range pg.regions {
		if r.table == i {
			return r, true
		}
	}
	return region{}, false
}
