package grid

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Direction is the order of the active sort column.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Glyph is the header indicator for the direction.
func (d Direction) Glyph() string {
	if d == Ascending {
		return "▲"
	}
	return "▼"
}

// ParseDirection accepts "desc"/"descending" and "asc"/"ascending".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	}
	return Descending, fmt.Errorf("unknown sort direction %q", s)
}

// SortState is the active sort key and its direction. An empty key keeps the
// caller's order.
type SortState struct {
	Key       string
	Direction Direction
}

func (s SortState) String() string {
	if s.Key == "" {
		return "unsorted"
	}
	return s.Key + " " + s.Direction.Glyph()
}

// Controller holds the sort state of one table.
type Controller struct {
	state SortState
}

// NewController starts in the caller's default state.
func NewController(initial SortState) *Controller {
	return &Controller{state: initial}
}

// State returns the current sort state.
func (c *Controller) State() SortState {
	return c.state
}

// Activate applies a header activation and reports whether the state changed.
// Unsortable columns are ignored, the active column toggles its direction and
// any other column becomes active in descending order.
func (c *Controller) Activate(col Column) bool {
	if !col.Sortable() {
		return false
	}
	if col.Key == c.state.Key {
		c.state.Direction = c.state.Direction.Toggle()
		return true
	}
	c.state = SortState{Key: col.Key, Direction: Descending}
	return true
}

// ActivateKey activates the column named key; unknown keys are a no-op.
func (c *Controller) ActivateKey(cols []Column, key string) bool {
	col, ok := FindColumn(cols, key)
	if !ok {
		return false
	}
	return c.Activate(col)
}

// SortRecords returns a stably sorted copy of data. The order depends only on
// data and st; data itself is left untouched.
func SortRecords(data []Record, st SortState) []Record {
	out := make([]Record, len(data))
	if st.Key == "" {
		copy(out, data)
		return out
	}

	keys := make([]float64, len(data))
	idx := make([]int, len(data))
	for i, rec := range data {
		keys[i] = Normalize(rec.Value(st.Key))
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		c := cmp.Compare(keys[a], keys[b])
		if st.Direction == Descending {
			return -c
		}
		return c
	})
	for i, j := range idx {
		out[i] = data[j]
	}
	return out
}
