package report

import (
	"fmt"

	"github.com/ftahirops/xreport/grid"
)

// Preset returns a named column set. An empty name is "default".
//
//	default         ticker / company / mktCap / return1M..6M / revGrYoY / opMargin / pS
//	standard        ticker / name / mktCap / m1 / revGr / m3 / m6 / ps (numeric records)
//	standard-no-ps  standard without P/S
func Preset(name string) ([]grid.Column, error) {
	switch name {
	case "", "default":
		return grid.DefaultColumns(), nil
	case "standard":
		return standardColumns(true), nil
	case "standard-no-ps":
		return standardColumns(false), nil
	}
	return nil, fmt.Errorf("unknown column preset %q", name)
}

func standardColumns(withPS bool) []grid.Column {
	f := func(name string) grid.Formatter { return formatters[name] }
	cols := []grid.Column{
		{Key: "ticker", Label: "Ticker", Format: f("ticker-note")},
		{Key: "name", Label: "Company"},
		{Key: "mktCap", Label: "Mkt Cap", Align: grid.AlignCenter, Format: f("cap")},
		{Key: "m1", Label: "1M", Align: grid.AlignCenter, Format: f("pct")},
		{Key: "revGr", Label: "Rev Gr", Align: grid.AlignCenter, Format: f("revgr")},
		{Key: "m3", Label: "3M", Align: grid.AlignCenter, Format: f("pct")},
		{Key: "m6", Label: "6M", Align: grid.AlignCenter, Format: f("pct")},
	}
	if withPS {
		cols = append(cols, grid.Column{Key: "ps", Label: "P/S", Align: grid.AlignCenter, Format: f("ps")})
	}
	return cols
}
