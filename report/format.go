package report

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ftahirops/xreport/grid"
)

// Placeholder is shown for missing numeric values.
const Placeholder = "—"

var (
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
)

// Category colours for theme classifications.
var categoryColors = map[string]lipgloss.Color{
	"High Conviction": lipgloss.Color("#FFB86C"),
	"Watchlist":       lipgloss.Color("#8BE9FD"),
	"Avoid":           lipgloss.Color("#9CA3AF"),
	"Excluded":        lipgloss.Color("#6272A4"),
	"Decoupling":      lipgloss.Color("#F1FA8C"),
	"AI Infra":        lipgloss.Color("#8BE9FD"),
	"Power":           lipgloss.Color("#FFB86C"),
	"Buildout":        lipgloss.Color("#FF79C6"),
}

var formatters = map[string]grid.Formatter{
	"pct":         grid.FormatterFunc(formatPct),
	"cap":         grid.FormatterFunc(formatCap),
	"revgr":       grid.FormatterFunc(formatRevGrowth),
	"ps":          grid.FormatterFunc(formatPriceSales),
	"ticker-note": grid.FormatterFunc(formatTickerNote),
	"count":       grid.FormatterFunc(formatCount),
	"share":       grid.FormatterFunc(formatShare),
	"category":    grid.FormatterFunc(formatCategory),
}

// Formatter returns the named display formatter.
func Formatter(name string) (grid.Formatter, error) {
	if f, ok := formatters[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown formatter %q (valid: %s)", name, strings.Join(FormatterNames(), ", "))
}

// FormatterNames lists the registered formatter names, sorted.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// number reports the numeric value of v. Text is not parsed: formatted
// strings are already display text.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint:
		return float64(n), true
	}
	return 0, false
}

// Percent renders a signed one-decimal percentage: +22.4%, -3.0%, +1,240.0%.
func Percent(f float64) string {
	sign := "+"
	if f < 0 {
		sign = "-"
	}
	return sign + humanize.FormatFloat("#,###.#", math.Abs(f)) + "%"
}

// Cap renders a market capitalisation given in millions of dollars.
func Cap(m float64) string {
	switch {
	case m >= 100000:
		return "$" + humanize.Comma(int64(math.Round(m/1000))) + "B"
	case m >= 1000:
		return fmt.Sprintf("$%.1fB", m/1000)
	}
	return fmt.Sprintf("$%.0fM", m)
}

func signed(f float64, s string) string {
	if f < 0 {
		return negativeStyle.Render(s)
	}
	return positiveStyle.Render(s)
}

func formatPct(v any, _ grid.Record) string {
	f, ok := number(v)
	if !ok {
		return passthrough(v)
	}
	return signed(f, Percent(f))
}

func formatCap(v any, _ grid.Record) string {
	f, ok := number(v)
	if !ok {
		return passthrough(v)
	}
	return Cap(f)
}

func formatRevGrowth(v any, rec grid.Record) string {
	if f, ok := number(v); ok && f > 100 {
		return positiveStyle.Render(">100%")
	}
	return formatPct(v, rec)
}

func formatPriceSales(v any, _ grid.Record) string {
	f, ok := number(v)
	if !ok {
		return passthrough(v)
	}
	return humanize.FormatFloat("#,###.#", f) + "x"
}

// formatTickerNote marks tickers whose record carries a note (spin-offs,
// restated data) with an asterisk.
func formatTickerNote(v any, rec grid.Record) string {
	s := grid.DisplayText(v)
	if note, ok := rec.Value("note").(string); ok && strings.TrimSpace(note) != "" {
		return s + "*"
	}
	return s
}

func formatCount(v any, _ grid.Record) string {
	f, ok := number(v)
	if !ok {
		return passthrough(v)
	}
	return humanize.Comma(int64(math.Round(f)))
}

func formatShare(v any, _ grid.Record) string {
	f, ok := number(v)
	if !ok {
		return passthrough(v)
	}
	return fmt.Sprintf("%.1f%%", f)
}

func formatCategory(v any, _ grid.Record) string {
	s := grid.DisplayText(v)
	if c, ok := categoryColors[s]; ok {
		return lipgloss.NewStyle().Foreground(c).Render(s)
	}
	return s
}

func passthrough(v any) string {
	if v == nil {
		return Placeholder
	}
	return grid.DisplayText(v)
}
