package grid

import "strings"

// Band is the alternating background of a row.
type Band int

const (
	BandEven Band = iota
	BandOdd
)

// BandFor returns the band of the row at post-sort index i.
func BandFor(i int) Band {
	if i%2 == 0 {
		return BandEven
	}
	return BandOdd
}

// RowKind distinguishes primary rows from description sub-rows.
type RowKind int

const (
	PrimaryRow RowKind = iota
	DescriptionRow
)

// Cell is one rendered cell of a primary row.
type Cell struct {
	Key   string
	Text  string
	Role  Role
	Align Align
	// Active marks numeric cells of the active sort column.
	Active bool
}

// Row is one rendered line group. Index is the record's position in the
// current sorted order; description rows carry the index of their primary row.
type Row struct {
	Kind    RowKind
	Index   int
	Band    Band
	Hovered bool
	// Cells is set for primary rows.
	Cells []Cell
	// Description is set for description rows. It spans every column but the
	// first and is followed by a full-width separator.
	Description string
}

// RowRenderer turns records into display rows for a column set.
type RowRenderer struct {
	Columns          []Column
	ActiveKey        string
	ShowDescriptions bool
}

// Render returns the primary row for rec at post-sort index, followed by its
// description row when descriptions are enabled and rec has one.
func (rr RowRenderer) Render(rec Record, index int, hovered bool) []Row {
	band := BandFor(index)
	primary := Row{
		Kind:    PrimaryRow,
		Index:   index,
		Band:    band,
		Hovered: hovered,
		Cells:   make([]Cell, len(rr.Columns)),
	}
	for i, col := range rr.Columns {
		role := col.CellRole()
		align := col.Align
		if role == RoleNumeric && align == AlignLeft {
			align = AlignCenter
		}
		primary.Cells[i] = Cell{
			Key:    col.Key,
			Text:   singleLine(col.Display(rec)),
			Role:   role,
			Align:  align,
			Active: role == RoleNumeric && rr.ActiveKey != "" && col.Key == rr.ActiveKey,
		}
	}

	rows := []Row{primary}
	if !rr.ShowDescriptions {
		return rows
	}
	if desc := rec.Description(); desc != "" {
		rows = append(rows, Row{
			Kind:        DescriptionRow,
			Index:       index,
			Band:        band,
			Description: desc,
		})
	}
	return rows
}

func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}
