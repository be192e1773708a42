package report

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftahirops/xreport/grid"
)

func TestLoadEmbedded(t *testing.T) {
	rep, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "The Control Premium", rep.Title)
	assert.Equal(t, []string{
		"cover", "why", "methodology",
		"analysis", "semi-equip", "space", "biotech", "defense", "silver-gold",
		"metals-materials", "power-gen", "watchlist", "buildout",
	}, rep.IDs())

	for i, s := range rep.Sections {
		want := ""
		if i > 0 {
			want = fmt.Sprintf("%02d", i)
		}
		assert.Equal(t, want, s.Num, "section %s", s.ID)
		if len(s.Tables) == 0 {
			assert.NotEmpty(t, s.Summary, "narrative section %s has no text", s.ID)
			continue
		}
		for _, p := range s.Tables {
			assert.NotEmpty(t, p.Records, "%s/%s has no records", s.ID, p.Title)
			assert.NotEmpty(t, p.Columns, "%s/%s has no columns", s.ID, p.Title)
		}
	}
}

func TestLoadIsShared(t *testing.T) {
	a, err := Load()
	require.NoError(t, err)
	b, err := Load()
	require.NoError(t, err)
	assert.Equal(t, len(a.Sections), len(b.Sections))
}

func TestFind(t *testing.T) {
	s, err := Find("semi-equip")
	require.NoError(t, err)
	assert.Equal(t, "04", s.Num)
	require.Len(t, s.Tables, 6)

	first := s.Tables[0]
	assert.Equal(t, "BUCKET 1", first.Heading())
	assert.Equal(t, "Advanced Packaging and Assembly", first.Title)
	assert.True(t, first.Descriptions)
	assert.Equal(t, grid.SortState{Key: "return1M", Direction: grid.Descending}, first.DefaultSort)
	assert.Equal(t, "AMKR", first.Records[0]["ticker"])
	assert.Equal(t, "Key OSAT for advanced logic and HBM-adjacent packaging", first.Records[0].Description())

	_, err = Find("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "semi-equip")
}

func TestRecordsHaveNoStrayFields(t *testing.T) {
	rep, err := Load()
	require.NoError(t, err)

	for _, s := range rep.Sections {
		for _, p := range s.Tables {
			for _, rec := range p.Records {
				for k, v := range rec {
					if v != nil {
						continue
					}
					_, ok := grid.FindColumn(p.Columns, k)
					assert.True(t, ok, "%s/%s: %v has nil field %q", s.ID, p.Title, rec["ticker"], k)
				}
			}
		}
	}

	s, err := Find("semi-equip")
	require.NoError(t, err)
	var mksi grid.Record
	for _, rec := range s.Tables[0].Records {
		if rec["ticker"] == "MKSI" {
			mksi = rec
		}
	}
	require.NotNil(t, mksi)
	assert.Equal(t, "Vacuum, gas delivery, materials for advanced packaging", mksi.Description())
	assert.Len(t, mksi, 10)
}

func TestBucketTablesSortByOneMonth(t *testing.T) {
	want := grid.SortState{Key: "return1M", Direction: grid.Descending}
	for _, id := range []string{"semi-equip", "space", "biotech", "silver-gold", "metals-materials"} {
		s, err := Find(id)
		require.NoError(t, err)
		for _, p := range s.Tables {
			assert.Equal(t, want, p.DefaultSort, "%s/%s", id, p.Title)
		}
	}

	s, err := Find("semi-equip")
	require.NoError(t, err)
	tbl := s.Tables[0].NewTable(false)
	assert.Equal(t, want, tbl.Sort())

	var order []string
	for _, rec := range tbl.Rows() {
		order = append(order, rec["ticker"].(string))
	}
	assert.Equal(t, []string{"UCTT", "ENTG", "MKSI", "AMKR"}, order)
	assert.Equal(t, "▼", tbl.Grid().Header[3].Glyph())
}

func TestStandardTablesSortByOneMonth(t *testing.T) {
	s, err := Find("defense")
	require.NoError(t, err)
	require.Len(t, s.Tables, 1)
	p := s.Tables[0]

	assert.Equal(t, grid.SortState{Key: "m1", Direction: grid.Descending}, p.DefaultSort)
	assert.False(t, p.Descriptions)

	rows := p.NewTable(false).Rows()
	assert.Equal(t, "RCAT", rows[0]["ticker"])
	assert.Equal(t, "LHX", rows[len(rows)-1]["ticker"])
}

func TestNullSixMonthSortsLast(t *testing.T) {
	s, err := Find("buildout")
	require.NoError(t, err)
	tbl := s.Tables[0].NewTable(false)

	tbl.Activate("m6")
	rows := tbl.Rows()
	assert.Equal(t, "FIX", rows[0]["ticker"])
	assert.Equal(t, "LGN", rows[len(rows)-1]["ticker"])

	tbl.Activate("m6")
	assert.Equal(t, "LGN", tbl.Rows()[0]["ticker"])
}

func TestWatchlistNoteColumnUnsortable(t *testing.T) {
	s, err := Find("watchlist")
	require.NoError(t, err)
	tbl := s.Tables[0].NewTable(false)

	assert.False(t, tbl.Activate("note"))
	assert.Equal(t, grid.SortState{}, tbl.Sort())
	assert.True(t, tbl.Activate("m3"))
}

func TestEveryTableBuildsAGrid(t *testing.T) {
	rep, err := Load()
	require.NoError(t, err)

	for _, s := range rep.Sections {
		for _, tbl := range s.NewTables(false) {
			g := tbl.Grid()
			primary := 0
			for _, r := range g.Rows {
				if r.Kind == grid.PrimaryRow {
					primary++
				}
			}
			assert.Equal(t, tbl.Len(), primary, "section %s", s.ID)
		}
	}
}

func TestHideDescriptionsOverridesPlacement(t *testing.T) {
	s, err := Find("silver-gold")
	require.NoError(t, err)

	shown := s.Tables[0].NewTable(false).Grid()
	hidden := s.Tables[0].NewTable(true).Grid()
	assert.Greater(t, len(shown.Rows), len(hidden.Rows))
	assert.Len(t, hidden.Rows, s.Tables[0].NewTable(true).Len())
}

const validSection = `id: one
num: "01"
order: 1
title: One
tables:
  - title: T
    records:
      - {ticker: A, company: Alpha, return1M: "+5%"}
`

func TestParse(t *testing.T) {
	fsys := fstest.MapFS{
		"b.yaml":      {Data: []byte("id: two\norder: 2\ntitle: Two\ntables:\n  - preset: standard\n    records: []\n")},
		"a.yaml":      {Data: []byte(validSection)},
		"report.yaml": {Data: []byte("title: Test\n")},
	}
	rep, err := Parse(fsys)
	require.NoError(t, err)
	assert.Equal(t, "Test", rep.Title)
	assert.Equal(t, []string{"one", "two"}, rep.IDs())

	one, ok := rep.Section("one")
	require.True(t, ok)
	assert.Len(t, one.Tables[0].Columns, len(grid.DefaultColumns()))
	assert.Equal(t, "+5%", one.Tables[0].Records[0]["return1M"])
	assert.Equal(t, 1, rep.Index("two"))
	assert.Equal(t, -1, rep.Index("three"))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown preset", "id: x\ntables:\n  - preset: fancy\n", `unknown column preset "fancy"`},
		{"unknown formatter", "id: x\ntables:\n  - columns:\n      - {key: a, format: money}\n", `unknown formatter "money"`},
		{"preset and columns", "id: x\ntables:\n  - preset: standard\n    columns:\n      - {key: a}\n", "exclusive"},
		{"sort key missing", "id: x\ntables:\n  - sort: {key: zzz, direction: desc}\n", `no column "zzz"`},
		{"bad direction", "id: x\ntables:\n  - sort: {key: ticker, direction: up}\n", "direction"},
		{"sort on unsortable", "id: x\ntables:\n  - columns:\n      - {key: a, sortable: false}\n    sort: {key: a, direction: asc}\n", "not sortable"},
		{"bad align", "id: x\ntables:\n  - columns:\n      - {key: a, align: middle}\n", "alignment"},
		{"bad role", "id: x\ntables:\n  - columns:\n      - {key: a, role: hero}\n", "unknown role"},
		{"unknown field", "id: x\ncolour: red\n", "colour"},
		{"missing id", "title: x\n", "missing section id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(fstest.MapFS{"s.yaml": {Data: []byte(tc.doc)}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			assert.Contains(t, err.Error(), "s.yaml")
		})
	}
}

func TestParseDuplicateSection(t *testing.T) {
	_, err := Parse(fstest.MapFS{
		"a.yaml": {Data: []byte(validSection)},
		"b.yaml": {Data: []byte(validSection)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined in a.yaml")
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(fstest.MapFS{"report.yaml": {Data: []byte("title: x\n")}})
	assert.Error(t, err)
}
