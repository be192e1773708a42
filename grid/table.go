package grid

import "slices"

const noHover = -1

// Config configures a Table. The zero value shows description rows, uses
// DefaultColumns and keeps the caller's order.
type Config struct {
	Columns          []Column
	DefaultSort      SortState
	HideDescriptions bool
}

// Table is one placement of the engine. Each Table owns its sort and hover
// state; tables never share state, even when they read the same data.
type Table struct {
	data     []Record
	columns  []Column
	sort     *Controller
	hover    int
	showDesc bool
}

// New creates a table over data. data is read, never reordered.
func New(data []Record, cfg Config) *Table {
	cols := cfg.Columns
	if cols == nil {
		cols = DefaultColumns()
	} else {
		cols = slices.Clone(cols)
	}
	return &Table{
		data:     data,
		columns:  cols,
		sort:     NewController(cfg.DefaultSort),
		hover:    noHover,
		showDesc: !cfg.HideDescriptions,
	}
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.data) }

// Columns returns a copy of the table's columns.
func (t *Table) Columns() []Column { return slices.Clone(t.columns) }

// Sort returns the current sort state.
func (t *Table) Sort() SortState { return t.sort.State() }

// ShowDescriptions reports whether description rows are rendered.
func (t *Table) ShowDescriptions() bool { return t.showDesc }

// Activate handles a header activation on the column named key and reports
// whether the sort changed.
func (t *Table) Activate(key string) bool {
	return t.sort.ActivateKey(t.columns, key)
}

// Hover highlights the row at post-sort index i. Indexes outside the table
// clear the highlight.
func (t *Table) Hover(i int) {
	if i < 0 || i >= len(t.data) {
		t.hover = noHover
		return
	}
	t.hover = i
}

// Leave clears the highlight, as when the pointer leaves the table.
func (t *Table) Leave() { t.hover = noHover }

// Hovered returns the highlighted row index.
func (t *Table) Hovered() (int, bool) {
	return t.hover, t.hover != noHover
}

// Rows returns the records in the current sorted order as a new slice.
func (t *Table) Rows() []Record {
	return SortRecords(t.data, t.sort.State())
}

// HeaderCell is a rendered column header.
type HeaderCell struct {
	Key      string
	Label    string
	Align    Align
	Sortable bool
	Active   bool
	// Direction is meaningful only when Active.
	Direction Direction
}

// Glyph returns the direction indicator; only the active column has one.
func (h HeaderCell) Glyph() string {
	if !h.Active {
		return ""
	}
	return h.Direction.Glyph()
}

// Grid is a fully rendered table.
type Grid struct {
	Header []HeaderCell
	Rows   []Row
	Sort   SortState
}

// Grid sorts and renders the table from scratch.
func (t *Table) Grid() Grid {
	st := t.sort.State()
	g := Grid{
		Header: make([]HeaderCell, len(t.columns)),
		Sort:   st,
	}
	for i, c := range t.columns {
		g.Header[i] = HeaderCell{
			Key:       c.Key,
			Label:     c.Label,
			Align:     c.Align,
			Sortable:  c.Sortable(),
			Active:    st.Key != "" && c.Key == st.Key,
			Direction: st.Direction,
		}
	}

	rr := RowRenderer{Columns: t.columns, ActiveKey: st.Key, ShowDescriptions: t.showDesc}
	for i, rec := range SortRecords(t.data, st) {
		g.Rows = append(g.Rows, rr.Render(rec, i, i == t.hover)...)
	}
	return g
}
