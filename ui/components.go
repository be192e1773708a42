package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// margin is the left indent of section content.
const margin = 2

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// ─── BOX DRAWING HELPERS ─────────────────────────────────────────────────────

// boxTop renders the top border of a rounded box.
// Total visual width = innerW + 5 (1 indent + 1 corner + innerW+2 dashes + 1 corner).
func boxTop(innerW int) string {
	return " " + dimStyle.Render("╭"+strings.Repeat("─", innerW+2)+"╮")
}

// boxBot renders the bottom border of a rounded box.
func boxBot(innerW int) string {
	return " " + dimStyle.Render("╰"+strings.Repeat("─", innerW+2)+"╯")
}

// boxRow renders one content line inside a box, padded to innerW.
func boxRow(content string, innerW int) string {
	visW := lipgloss.Width(content)
	pad := innerW - visW
	if pad < 0 {
		pad = 0
	}
	return " " + dimStyle.Render("│") + " " + content + strings.Repeat(" ", pad) + " " + dimStyle.Render("│")
}

// boxSection renders a titled callout inside a bordered box.
// title is styled with headerStyle, text is wrapped to the box.
func boxSection(title, text string, innerW int) []string {
	out := []string{boxTop(innerW)}
	if title != "" {
		out = append(out, boxRow(headerStyle.Render(title), innerW))
	}
	for _, l := range wrap(text, innerW) {
		out = append(out, boxRow(valueStyle.Render(l), innerW))
	}
	return append(out, boxBot(innerW))
}

// wrap breaks text into lines of at most width cells.
func wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width < 10 {
		width = 10
	}
	return strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
}

// indent prefixes every line with n spaces.
func indent(lines []string, n int) []string {
	pad := strings.Repeat(" ", n)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = pad + l
	}
	return out
}

// styleLines renders each line with st.
func styleLines(lines []string, st lipgloss.Style) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = st.Render(l)
	}
	return out
}

// contentW computes the text width from terminal width.
func contentW(termWidth int) int {
	w := termWidth - 2*margin
	if w > 110 {
		w = 110
	}
	if w < 20 {
		w = 20
	}
	return w
}
