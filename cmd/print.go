package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"

	"github.com/ftahirops/xreport/grid"
	"github.com/ftahirops/xreport/model"
)

// printOptions controls the non-interactive printers.
type printOptions struct {
	sortKeys    []string
	hideDesc    bool
	maxColWidth int
	theme       grid.Theme
	width       int // wrap width for prose
}

// defaultPrintWidth is used when stdout is not a terminal.
const defaultPrintWidth = 100

// termWidth returns the terminal width of w, or defaultPrintWidth.
func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultPrintWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultPrintWidth
	}
	return width
}

// tablesFor builds fresh engine instances for a section with -sort applied.
func tablesFor(sec model.Section, opts printOptions) []*grid.Table {
	tables := sec.NewTables(opts.hideDesc)
	model.ApplySort(tables, opts.sortKeys)
	return tables
}

var (
	printTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BE9FD"))
	printLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB86C"))
	printHead  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF79C6"))
	printDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
)

func wrapText(s string, width int) string {
	if width < 20 {
		width = 20
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// printText paints every table of secs the way the TUI does, without
// interaction.
func printText(w io.Writer, rep model.Report, secs []model.Section, opts printOptions) error {
	var sb strings.Builder
	if rep.Title != "" {
		sb.WriteString(printTitle.Render(strings.TrimSpace(rep.Publisher + "  " + rep.Title)))
		if rep.AsOf != "" {
			sb.WriteString(printDim.Render("  data as of " + rep.AsOf))
		}
		sb.WriteString("\n\n")
	}
	for _, sec := range secs {
		sb.WriteString(printTitle.Render(sec.Caption()))
		sb.WriteString("\n")
		if sec.Subtitle != "" {
			sb.WriteString(printDim.Render(sec.Subtitle) + "\n")
		}
		if sec.Summary != "" {
			sb.WriteString("\n" + wrapText(sec.Summary, opts.width) + "\n")
		}
		for i, tbl := range tablesFor(sec, opts) {
			p := sec.Tables[i]
			sb.WriteString("\n")
			heading := printHead.Render(p.Title)
			if h := p.Heading(); h != "" {
				heading = printLabel.Render(h) + "  " + heading
			}
			sb.WriteString(heading + "\n")
			if p.Tagline != "" {
				sb.WriteString(printDim.Render(wrapText(p.Tagline, opts.width)) + "\n")
			}
			painted := grid.Paint(tbl.Grid(), opts.theme, grid.PaintOptions{MaxColWidth: opts.maxColWidth})
			sb.WriteString(painted.String() + "\n")
			if p.Hook != "" {
				sb.WriteString(wrapText("Mispricing hook: "+p.Hook, opts.width) + "\n")
			}
			if p.Note != "" {
				sb.WriteString(printDim.Render(wrapText(p.Note, opts.width)) + "\n")
			}
		}
		if sec.Note != "" {
			sb.WriteString("\n" + printDim.Render(wrapText(sec.Note, opts.width)) + "\n")
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func mdAlign(a grid.Align) text.Align {
	switch a {
	case grid.AlignCenter:
		return text.AlignCenter
	case grid.AlignRight:
		return text.AlignRight
	}
	return text.AlignLeft
}

// printMarkdown writes each table as a Markdown table. Description rows
// follow the table as a list.
func printMarkdown(w io.Writer, rep model.Report, secs []model.Section, opts printOptions) error {
	if rep.Title != "" {
		fmt.Fprintf(w, "# %s\n\n", rep.Title)
		if rep.AsOf != "" {
			fmt.Fprintf(w, "_Data as of %s_\n\n", rep.AsOf)
		}
	}
	for _, sec := range secs {
		fmt.Fprintf(w, "## %s\n\n", sec.Caption())
		if sec.Subtitle != "" {
			fmt.Fprintf(w, "%s\n\n", sec.Subtitle)
		}
		if sec.Summary != "" {
			fmt.Fprintf(w, "%s\n\n", sec.Summary)
		}
		for i, tbl := range tablesFor(sec, opts) {
			p := sec.Tables[i]
			title := p.Title
			if h := p.Heading(); h != "" {
				title = h + ": " + title
			}
			fmt.Fprintf(w, "### %s\n\n", title)
			if p.Tagline != "" {
				fmt.Fprintf(w, "_%s_\n\n", p.Tagline)
			}

			g := tbl.Grid()
			tw := table.NewWriter()
			hdr := make(table.Row, len(g.Header))
			cfgs := make([]table.ColumnConfig, len(g.Header))
			for j, h := range g.Header {
				label := h.Label
				if glyph := h.Glyph(); glyph != "" {
					label += " " + glyph
				}
				hdr[j] = label
				cfgs[j] = table.ColumnConfig{Number: j + 1, Align: mdAlign(h.Align)}
			}
			tw.AppendHeader(hdr)
			tw.SetColumnConfigs(cfgs)

			var notes []string
			var ids []string
			for _, r := range g.Rows {
				switch r.Kind {
				case grid.PrimaryRow:
					row := make(table.Row, len(r.Cells))
					for j, c := range r.Cells {
						row[j] = ansi.Strip(c.Text)
					}
					tw.AppendRow(row)
					if len(r.Cells) > 0 {
						ids = append(ids, ansi.Strip(r.Cells[0].Text))
					}
				case grid.DescriptionRow:
					notes = append(notes, fmt.Sprintf("- **%s**: %s", ids[len(ids)-1], r.Description))
				}
			}
			fmt.Fprintln(w, tw.RenderMarkdown())
			fmt.Fprintln(w)
			if len(notes) > 0 {
				fmt.Fprintln(w, strings.Join(notes, "\n"))
				fmt.Fprintln(w)
			}
			if p.Hook != "" {
				fmt.Fprintf(w, "> **Mispricing hook:** %s\n\n", p.Hook)
			}
			if p.Note != "" {
				fmt.Fprintf(w, "%s\n\n", p.Note)
			}
		}
		if sec.Note != "" {
			fmt.Fprintf(w, "%s\n\n", sec.Note)
		}
	}
	return nil
}

type jsonSort struct {
	Key       string `json:"key,omitempty"`
	Direction string `json:"direction,omitempty"`
}

type jsonTable struct {
	Label   string        `json:"label,omitempty"`
	ID      string        `json:"id,omitempty"`
	Title   string        `json:"title"`
	Sort    jsonSort      `json:"sort"`
	Columns []string      `json:"columns"`
	Records []grid.Record `json:"records"`
}

type jsonSection struct {
	ID     string      `json:"id"`
	Num    string      `json:"num,omitempty"`
	Title  string      `json:"title"`
	Tables []jsonTable `json:"tables"`
}

// printJSON writes the sections with each table's records in sorted order.
func printJSON(w io.Writer, secs []model.Section, opts printOptions) error {
	out := make([]jsonSection, 0, len(secs))
	for _, sec := range secs {
		js := jsonSection{ID: sec.ID, Num: sec.Num, Title: sec.Title, Tables: []jsonTable{}}
		for i, tbl := range tablesFor(sec, opts) {
			p := sec.Tables[i]
			jt := jsonTable{Label: p.Label, ID: p.ID, Title: p.Title, Records: tbl.Rows()}
			if st := tbl.Sort(); st.Key != "" {
				jt.Sort = jsonSort{Key: st.Key, Direction: st.Direction.String()}
			}
			for _, c := range tbl.Columns() {
				jt.Columns = append(jt.Columns, c.Key)
			}
			js.Tables = append(js.Tables, jt)
		}
		out = append(out, js)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
