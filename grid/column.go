package grid

import (
	"fmt"
	"strings"
)

// Align is the horizontal alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var alignNames = []string{"left", "center", "right"}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

// ParseAlign parses "left", "center" or "right". An empty string is left.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// Role decides how a column's cells are styled.
type Role int

const (
	// RoleAuto derives the role from the column key.
	RoleAuto Role = iota
	// RoleIdentifier cells (ticker symbols) are emphasized.
	RoleIdentifier
	// RoleName cells (company, theme names) are plain text.
	RoleName
	// RoleNumeric cells are numeric-aligned; the active sort column is heavier.
	RoleNumeric
)

// Formatter turns a raw cell value into display text. It receives the whole
// record so it may look at sibling fields. Its output is never used for sorting.
type Formatter interface {
	Format(v any, rec Record) string
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(v any, rec Record) string

// Format calls f(v, rec).
func (f FormatterFunc) Format(v any, rec Record) string {
	return f(v, rec)
}

// Column declares one table column. Columns are values and are never changed
// by the engine.
type Column struct {
	Key   string
	Label string
	Align Align
	// Unsortable columns ignore header activation.
	Unsortable bool
	// Format renders the cell; nil shows the raw value.
	Format Formatter
	Role   Role
}

// Sortable reports whether activating the column changes the sort.
func (c Column) Sortable() bool {
	return !c.Unsortable
}

// Display returns the cell text for rec.
func (c Column) Display(rec Record) string {
	v := rec.Value(c.Key)
	if c.Format != nil {
		return c.Format.Format(v, rec)
	}
	return DisplayText(v)
}

// CellRole returns the effective role of the column's cells.
func (c Column) CellRole() Role {
	if c.Role != RoleAuto {
		return c.Role
	}
	switch c.Key {
	case "ticker":
		return RoleIdentifier
	case "company", "name", "theme":
		return RoleName
	}
	return RoleNumeric
}

// DefaultColumns is the column set for the ticker / company / market cap /
// 1M / 3M / 6M / revenue growth / operating margin / price-to-sales record
// shape. Tables created without columns use it.
func DefaultColumns() []Column {
	return []Column{
		{Key: "ticker", Label: "Ticker", Align: AlignLeft},
		{Key: "company", Label: "Company", Align: AlignLeft},
		{Key: "mktCap", Label: "Mkt Cap", Align: AlignCenter},
		{Key: "return1M", Label: "1M", Align: AlignCenter},
		{Key: "return3M", Label: "3M", Align: AlignCenter},
		{Key: "return6M", Label: "6M", Align: AlignCenter},
		{Key: "revGrYoY", Label: "Rev Gr (YoY)", Align: AlignCenter},
		{Key: "opMargin", Label: "OpM", Align: AlignCenter},
		{Key: "pS", Label: "P/S", Align: AlignCenter},
	}
}

// FindColumn returns the column with the given key.
func FindColumn(cols []Column, key string) (Column, bool) {
	for _, c := range cols {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}
