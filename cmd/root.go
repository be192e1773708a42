package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ftahirops/xreport/config"
	"github.com/ftahirops/xreport/grid"
	"github.com/ftahirops/xreport/model"
	"github.com/ftahirops/xreport/report"
	"github.com/ftahirops/xreport/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// debugEnv enables the TUI interaction log.
const debugEnv = "XREPORT_DEBUG"

// Config holds CLI configuration.
type Config struct {
	PrintMode   bool
	MDMode      bool
	JSONMode    bool
	ListMode    bool
	WriteConfig bool
	Section     string
	Sort        []string
	NoDesc      bool
	Plain       bool
	Width       int
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `xreport v%s — sortable investment report tables in the terminal

Usage:
  xreport [OPTIONS]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen, mouse)
  -print            Print the section's tables to stdout, then exit
  -md               Print the section's tables as Markdown, then exit
  -json             Print the section's tables as JSON (sorted records), then exit
  -list             List sections and exit
  -write-config     Write the effective config to the config path and exit
  -version          Print version and exit

Options:
  -section ID       Section to open or print ("all" prints every section)
  -sort KEYS        Activate columns in order on every table having them
                    ("m1" = descending, "m1,m1" = ascending)
  -nodesc           Hide description rows
  -plain            Disable colours
  -width N          Maximum column width (0 = from config)

Config:
  %s

Examples:
  xreport                             Interactive TUI
  xreport -section biotech            Open on the biotech section
  xreport -print -section defense -sort m6
  xreport -md -section all > report.md
  xreport -json -section space | jq '.[0].tables[0].records[0]'
`, Version, config.Path())
}

// Run parses flags and starts the application.
func Run() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg Config
	var sortKeys string
	var showVersion bool

	fs := flag.NewFlagSet("xreport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.PrintMode, "print", false, "Print tables and exit")
	fs.BoolVar(&cfg.MDMode, "md", false, "Print tables as Markdown and exit")
	fs.BoolVar(&cfg.JSONMode, "json", false, "Print tables as JSON and exit")
	fs.BoolVar(&cfg.ListMode, "list", false, "List sections and exit")
	fs.BoolVar(&cfg.WriteConfig, "write-config", false, "Write the effective config and exit")
	fs.StringVar(&cfg.Section, "section", "", "Section id")
	fs.StringVar(&sortKeys, "sort", "", "Comma-separated column keys to activate")
	fs.BoolVar(&cfg.NoDesc, "nodesc", false, "Hide description rows")
	fs.BoolVar(&cfg.Plain, "plain", false, "Disable colours")
	fs.IntVar(&cfg.Width, "width", 0, "Maximum column width")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// -version
	if showVersion {
		fmt.Fprintf(stdout, "xreport v%s\n", Version)
		return nil
	}

	cfg.Sort = splitKeys(sortKeys)
	if cfg.Width < 0 {
		return fmt.Errorf("-width must be >= 0")
	}

	settings := config.Load()
	if cfg.Section != "" {
		settings.Section = cfg.Section
	}
	if cfg.NoDesc {
		settings.HideDescriptions = true
	}
	if cfg.Width > 0 {
		settings.MaxColWidth = cfg.Width
	}

	if cfg.WriteConfig {
		if err := config.Save(settings); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(stdout, "Wrote %s\n", config.Path())
		return nil
	}

	if cfg.Plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	rep, err := report.Load()
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if cfg.ListMode {
		return listSections(stdout, rep)
	}

	secs, err := selectSections(rep, settings.Section, cfg.PrintMode || cfg.MDMode || cfg.JSONMode)
	if err != nil {
		return err
	}

	opts := printOptions{
		sortKeys:    cfg.Sort,
		hideDesc:    settings.HideDescriptions,
		maxColWidth: settings.MaxColWidth,
		theme:       settings.Theme.Apply(grid.DefaultTheme()),
		width:       termWidth(stdout),
	}
	switch {
	case cfg.JSONMode:
		return printJSON(stdout, secs, opts)
	case cfg.MDMode:
		return printMarkdown(stdout, rep, secs, opts)
	case cfg.PrintMode:
		return printText(stdout, rep, secs, opts)
	}

	return runTUI(rep, settings, cfg.Sort)
}

func runTUI(rep model.Report, settings config.Config, sortKeys []string) error {
	if os.Getenv(debugEnv) != "" {
		f, err := tea.LogToFile("xreport-debug.log", "xreport")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := ui.NewModel(rep, settings, sortKeys)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if settings.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}

// selectSections resolves -section. "all" is accepted only when printing.
func selectSections(rep model.Report, id string, printing bool) ([]model.Section, error) {
	if id == "all" && printing {
		return rep.Sections, nil
	}
	if s, ok := rep.Section(id); ok {
		return []model.Section{s}, nil
	}
	if id == "" && len(rep.Sections) > 0 {
		return rep.Sections[:1], nil
	}
	return nil, fmt.Errorf("unknown section %q (valid: %s)", id, strings.Join(rep.IDs(), ", "))
}

func listSections(w io.Writer, rep model.Report) error {
	for _, s := range rep.Sections {
		if _, err := fmt.Fprintf(w, "%-18s %-3s %s (%d tables)\n", s.ID, s.Num, s.Title, len(s.Tables)); err != nil {
			return err
		}
	}
	return nil
}

func splitKeys(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
