package model

import "github.com/ftahirops/xreport/grid"

// Report is the whole document: masthead plus ordered sections.
type Report struct {
	Publisher string
	Title     string
	Date      string
	AsOf      string
	Footer    string
	Sections  []Section
}

// Section returns the section with the given id.
func (r Report) Section(id string) (Section, bool) {
	for _, s := range r.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Index returns the position of section id, or -1.
func (r Report) Index(id string) int {
	for i, s := range r.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// IDs lists section ids in report order.
func (r Report) IDs() []string {
	ids := make([]string, len(r.Sections))
	for i, s := range r.Sections {
		ids[i] = s.ID
	}
	return ids
}

// Section is one navigable page of the report.
type Section struct {
	ID       string
	Num      string
	Title    string
	Subtitle string
	Order    int
	Summary  string
	Tables   []TablePlacement
	// Note is printed under the last table (data source, definitions).
	Note string
}

// TablePlacement is one sortable table inside a section. Every placement
// becomes its own grid.Table, so sort and hover never leak between them.
type TablePlacement struct {
	Label   string // "BUCKET", "CATEGORY"
	ID      string // "1", "IV"
	Title   string
	Tagline string
	Insight string
	Hook    string // "Mispricing hook" callout
	Note    string

	Columns      []grid.Column
	DefaultSort  grid.SortState
	Descriptions bool
	Records      []grid.Record
}

// Heading joins label and id the way table headers show them ("BUCKET 3").
func (p TablePlacement) Heading() string {
	switch {
	case p.Label != "" && p.ID != "":
		return p.Label + " " + p.ID
	case p.Label != "":
		return p.Label
	}
	return p.ID
}

// NewTable creates a fresh engine instance for the placement.
func (p TablePlacement) NewTable(hideDescriptions bool) *grid.Table {
	return grid.New(p.Records, grid.Config{
		Columns:          p.Columns,
		DefaultSort:      p.DefaultSort,
		HideDescriptions: hideDescriptions || !p.Descriptions,
	})
}

// NewTables creates one engine instance per placement, in order.
func (s Section) NewTables(hideDescriptions bool) []*grid.Table {
	out := make([]*grid.Table, len(s.Tables))
	for i, p := range s.Tables {
		out[i] = p.NewTable(hideDescriptions)
	}
	return out
}

// Caption is "04 Semiconductor Equipment", or just the title for
// unnumbered sections.
func (s Section) Caption() string {
	if s.Num == "" {
		return s.Title
	}
	return s.Num + " " + s.Title
}

// ApplySort activates each key in order on every table that has a column
// with that key, so "m1,m1" leaves those tables ascending by m1.
func ApplySort(tables []*grid.Table, keys []string) {
	for _, t := range tables {
		for _, k := range keys {
			t.Activate(k)
		}
	}
}
