package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowRenderer_CellRolesAndActive(t *testing.T) {
	rr := RowRenderer{Columns: DefaultColumns(), ActiveKey: "return1M"}
	rows := rr.Render(Record{"ticker": "AMKR", "company": "Amkor", "return1M": "+19%"}, 0, false)
	require.Len(t, rows, 1)

	cells := rows[0].Cells
	require.Len(t, cells, 9)
	assert.Equal(t, RoleIdentifier, cells[0].Role)
	assert.Equal(t, RoleName, cells[1].Role)
	assert.Equal(t, RoleNumeric, cells[3].Role)
	assert.True(t, cells[3].Active)
	assert.False(t, cells[4].Active)
	assert.Equal(t, "+19%", cells[3].Text)
	assert.Equal(t, "", cells[4].Text, "missing field renders empty")
}

func TestRowRenderer_ActiveIdentifierIsNotNumericActive(t *testing.T) {
	rr := RowRenderer{Columns: DefaultColumns(), ActiveKey: "ticker"}
	rows := rr.Render(Record{"ticker": "A"}, 0, false)
	assert.False(t, rows[0].Cells[0].Active)
}

func TestRowRenderer_NumericLeftPromotedToCenter(t *testing.T) {
	rr := RowRenderer{Columns: []Column{{Key: "v", Align: AlignLeft}, {Key: "w", Align: AlignRight}}}
	rows := rr.Render(Record{"v": 1, "w": 2}, 0, false)
	assert.Equal(t, AlignCenter, rows[0].Cells[0].Align)
	assert.Equal(t, AlignRight, rows[0].Cells[1].Align)
}

func TestRowRenderer_FormatterSeesSiblings(t *testing.T) {
	col := Column{Key: "ticker", Format: FormatterFunc(func(v any, rec Record) string {
		if rec["note"] != nil {
			return fmt.Sprintf("%v*", v)
		}
		return DisplayText(v)
	})}
	rr := RowRenderer{Columns: []Column{col}}
	assert.Equal(t, "SNDK*", rr.Render(Record{"ticker": "SNDK", "note": "Spin-off"}, 0, false)[0].Cells[0].Text)
	assert.Equal(t, "WDC", rr.Render(Record{"ticker": "WDC"}, 0, false)[0].Cells[0].Text)
}

func TestRowRenderer_DescriptionConditioning(t *testing.T) {
	withDesc := Record{"ticker": "A", "description": "Packaging leader"}
	blankDesc := Record{"ticker": "B", "description": "   "}
	noDesc := Record{"ticker": "C"}
	numericDesc := Record{"ticker": "D", "description": 12}

	on := RowRenderer{Columns: DefaultColumns(), ShowDescriptions: true}
	off := RowRenderer{Columns: DefaultColumns()}

	rows := on.Render(withDesc, 3, true)
	require.Len(t, rows, 2)
	assert.Equal(t, DescriptionRow, rows[1].Kind)
	assert.Equal(t, "Packaging leader", rows[1].Description)
	assert.Equal(t, rows[0].Band, rows[1].Band, "description shares the primary band")
	assert.Equal(t, 3, rows[1].Index)
	assert.False(t, rows[1].Hovered)

	assert.Len(t, on.Render(blankDesc, 0, false), 1)
	assert.Len(t, on.Render(noDesc, 0, false), 1)
	assert.Len(t, on.Render(numericDesc, 0, false), 1)
	assert.Len(t, off.Render(withDesc, 0, false), 1)
}

func TestRowRenderer_Banding(t *testing.T) {
	rr := RowRenderer{Columns: DefaultColumns()}
	assert.Equal(t, BandEven, rr.Render(Record{}, 0, false)[0].Band)
	assert.Equal(t, BandOdd, rr.Render(Record{}, 1, false)[0].Band)
	assert.Equal(t, BandEven, rr.Render(Record{}, 4, false)[0].Band)
}

func TestRowRenderer_MultilineTextFlattened(t *testing.T) {
	rr := RowRenderer{Columns: []Column{{Key: "company"}}}
	rows := rr.Render(Record{"company": "Ultra Clean\nHoldings"}, 0, false)
	assert.Equal(t, "Ultra Clean Holdings", rows[0].Cells[0].Text)
}

func TestDisplayText(t *testing.T) {
	assert.Equal(t, "", DisplayText(nil))
	assert.Equal(t, "12.5", DisplayText(12.5))
	assert.Equal(t, "258714", DisplayText(258714))
	assert.Equal(t, "$12B", DisplayText("$12B"))
	assert.Equal(t, "true", DisplayText(true))
}
