package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickers(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i], _ = r["ticker"].(string)
	}
	return out
}

func TestController_Transitions(t *testing.T) {
	cols := []Column{
		{Key: "m1", Label: "1M"},
		{Key: "m3", Label: "3M"},
		{Key: "note", Label: "Note", Unsortable: true},
	}
	c := NewController(SortState{Key: "m1", Direction: Descending})

	assert.True(t, c.ActivateKey(cols, "m1"))
	assert.Equal(t, SortState{Key: "m1", Direction: Ascending}, c.State())

	assert.True(t, c.ActivateKey(cols, "m1"))
	assert.Equal(t, SortState{Key: "m1", Direction: Descending}, c.State())

	c.ActivateKey(cols, "m1")
	assert.True(t, c.ActivateKey(cols, "m3"))
	assert.Equal(t, SortState{Key: "m3", Direction: Descending}, c.State(), "new columns start descending")

	assert.False(t, c.ActivateKey(cols, "note"))
	assert.Equal(t, SortState{Key: "m3", Direction: Descending}, c.State())

	assert.False(t, c.ActivateKey(cols, "missing"))
	assert.Equal(t, SortState{Key: "m3", Direction: Descending}, c.State())
}

func TestController_UnsortableActiveKeyNeverToggles(t *testing.T) {
	col := Column{Key: "note", Unsortable: true}
	c := NewController(SortState{Key: "note", Direction: Ascending})
	assert.False(t, c.Activate(col))
	assert.Equal(t, SortState{Key: "note", Direction: Ascending}, c.State())
}

func TestController_NoInventedDefault(t *testing.T) {
	c := NewController(SortState{})
	assert.Equal(t, SortState{}, c.State())
}

func TestSortRecords_Scenario(t *testing.T) {
	data := []Record{
		{"ticker": "A", "m1": "+5%"},
		{"ticker": "B", "m1": "-3%"},
		{"ticker": "C", "m1": "N/A"},
	}
	assert.Equal(t, []string{"A", "B", "C"}, tickers(SortRecords(data, SortState{Key: "m1", Direction: Descending})))
	assert.Equal(t, []string{"C", "B", "A"}, tickers(SortRecords(data, SortState{Key: "m1", Direction: Ascending})))
}

func TestSortRecords_MarketCapMagnitudes(t *testing.T) {
	data := []Record{
		{"ticker": "SMALL", "mktCap": "$950M"},
		{"ticker": "BIG", "mktCap": "$1.2B"},
	}
	got := SortRecords(data, SortState{Key: "mktCap", Direction: Descending})
	assert.Equal(t, []string{"BIG", "SMALL"}, tickers(got))
}

func TestSortRecords_Idempotent(t *testing.T) {
	data := []Record{
		{"ticker": "A", "v": 3},
		{"ticker": "B", "v": "—"},
		{"ticker": "C", "v": 3},
		{"ticker": "D", "v": "$2B"},
		{"ticker": "E", "v": nil},
	}
	for _, dir := range []Direction{Descending, Ascending} {
		st := SortState{Key: "v", Direction: dir}
		once := SortRecords(data, st)
		twice := SortRecords(once, st)
		assert.Equal(t, tickers(once), tickers(twice), dir.String())
	}
}

func TestSortRecords_StableOnTies(t *testing.T) {
	data := []Record{
		{"ticker": "A", "v": "N/A"},
		{"ticker": "B", "v": 1},
		{"ticker": "C", "v": nil},
		{"ticker": "D", "v": 1},
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, tickers(SortRecords(data, SortState{Key: "v"})))
	assert.Equal(t, []string{"A", "C", "B", "D"}, tickers(SortRecords(data, SortState{Key: "v", Direction: Ascending})))
}

func TestSortRecords_DoesNotMutateInput(t *testing.T) {
	data := []Record{
		{"ticker": "A", "v": 1},
		{"ticker": "B", "v": 3},
		{"ticker": "C", "v": 2},
	}
	got := SortRecords(data, SortState{Key: "v", Direction: Descending})
	require.Equal(t, []string{"B", "C", "A"}, tickers(got))
	assert.Equal(t, []string{"A", "B", "C"}, tickers(data))

	got[0] = Record{"ticker": "Z"}
	assert.Equal(t, "B", data[1]["ticker"], "result does not alias the input slice")
}

func TestSortRecords_NoKeyKeepsOrder(t *testing.T) {
	data := []Record{{"ticker": "B"}, {"ticker": "A"}}
	assert.Equal(t, []string{"B", "A"}, tickers(SortRecords(data, SortState{})))
	assert.Empty(t, SortRecords(nil, SortState{Key: "v"}))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("asc")
	require.NoError(t, err)
	assert.Equal(t, Ascending, d)

	d, err = ParseDirection("Descending")
	require.NoError(t, err)
	assert.Equal(t, Descending, d)

	_, err = ParseDirection("up")
	assert.Error(t, err)
}

func TestSortState_String(t *testing.T) {
	assert.Equal(t, "unsorted", SortState{}.String())
	assert.Equal(t, "m1 ▼", SortState{Key: "m1"}.String())
	assert.Equal(t, "m1 ▲", SortState{Key: "m1", Direction: Ascending}.String())
}
