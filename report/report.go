// Package report holds the embedded investment report: its sections, the
// table placements inside them and the display formatters their columns use.
package report

import (
	"cmp"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v2"

	"github.com/ftahirops/xreport/grid"
	"github.com/ftahirops/xreport/model"
)

//go:embed data/*.yaml
var embedded embed.FS

const mastheadFile = "report.yaml"

type mastheadDoc struct {
	Publisher string `yaml:"publisher"`
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	AsOf      string `yaml:"as_of"`
	Footer    string `yaml:"footer"`
}

type sectionDoc struct {
	ID       string     `yaml:"id"`
	Num      string     `yaml:"num"`
	Order    int        `yaml:"order"`
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Summary  string     `yaml:"summary"`
	Note     string     `yaml:"note"`
	Tables   []tableDoc `yaml:"tables"`
}

type tableDoc struct {
	Label        string                   `yaml:"label"`
	ID           string                   `yaml:"id"`
	Title        string                   `yaml:"title"`
	Tagline      string                   `yaml:"tagline"`
	Insight      string                   `yaml:"insight"`
	Hook         string                   `yaml:"hook"`
	Note         string                   `yaml:"note"`
	Preset       string                   `yaml:"preset"`
	Columns      []columnDoc              `yaml:"columns"`
	Sort         *sortDoc                 `yaml:"sort"`
	Descriptions bool                     `yaml:"descriptions"`
	Records      []map[string]interface{} `yaml:"records"`
}

type columnDoc struct {
	Key      string `yaml:"key"`
	Label    string `yaml:"label"`
	Align    string `yaml:"align"`
	Sortable *bool  `yaml:"sortable"`
	Format   string `yaml:"format"`
	Role     string `yaml:"role"`
}

type sortDoc struct {
	Key       string `yaml:"key"`
	Direction string `yaml:"direction"`
}

var loadEmbedded = sync.OnceValues(func() (model.Report, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return model.Report{}, err
	}
	return Parse(sub)
})

// Load returns the embedded report. It is parsed once; the returned
// records are shared and must not be modified.
func Load() (model.Report, error) {
	return loadEmbedded()
}

// Find loads the embedded report and returns one section.
func Find(id string) (model.Section, error) {
	r, err := Load()
	if err != nil {
		return model.Section{}, err
	}
	if s, ok := r.Section(id); ok {
		return s, nil
	}
	return model.Section{}, fmt.Errorf("unknown section %q (valid: %s)", id, strings.Join(r.IDs(), ", "))
}

// Parse reads a report from fsys: an optional report.yaml masthead and one
// YAML file per section. Sections are ordered by their order field.
func Parse(fsys fs.FS) (model.Report, error) {
	var rep model.Report

	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return rep, err
	}
	seen := make(map[string]string)
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return rep, fmt.Errorf("%s: %w", name, err)
		}
		if path.Base(name) == mastheadFile {
			var m mastheadDoc
			if err := yaml.Unmarshal(data, &m); err != nil {
				return rep, fmt.Errorf("%s: %w", name, err)
			}
			rep.Publisher, rep.Title, rep.Date, rep.AsOf, rep.Footer = m.Publisher, m.Title, m.Date, m.AsOf, m.Footer
			continue
		}
		var doc sectionDoc
		if err := yaml.UnmarshalStrict(data, &doc); err != nil {
			return rep, fmt.Errorf("%s: %w", name, err)
		}
		if doc.ID == "" {
			return rep, fmt.Errorf("%s: missing section id", name)
		}
		if prev, dup := seen[doc.ID]; dup {
			return rep, fmt.Errorf("%s: section %q already defined in %s", name, doc.ID, prev)
		}
		seen[doc.ID] = name
		sec, err := buildSection(doc)
		if err != nil {
			return rep, fmt.Errorf("%s: section %s: %w", name, doc.ID, err)
		}
		rep.Sections = append(rep.Sections, sec)
	}
	if len(rep.Sections) == 0 {
		return rep, fmt.Errorf("no sections found")
	}
	slices.SortStableFunc(rep.Sections, func(a, b model.Section) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return rep, nil
}

func buildSection(doc sectionDoc) (model.Section, error) {
	sec := model.Section{
		ID:       doc.ID,
		Num:      doc.Num,
		Title:    doc.Title,
		Subtitle: doc.Subtitle,
		Order:    doc.Order,
		Summary:  doc.Summary,
		Note:     doc.Note,
	}
	for i, td := range doc.Tables {
		p, err := buildTable(td)
		if err != nil {
			name := td.Title
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return sec, fmt.Errorf("table %s: %w", name, err)
		}
		sec.Tables = append(sec.Tables, p)
	}
	return sec, nil
}

func buildTable(td tableDoc) (model.TablePlacement, error) {
	p := model.TablePlacement{
		Label:        td.Label,
		ID:           td.ID,
		Title:        td.Title,
		Tagline:      td.Tagline,
		Insight:      td.Insight,
		Hook:         td.Hook,
		Note:         td.Note,
		Descriptions: td.Descriptions,
	}

	switch {
	case td.Preset != "" && len(td.Columns) > 0:
		return p, fmt.Errorf("preset %q and explicit columns are exclusive", td.Preset)
	case len(td.Columns) > 0:
		for _, cd := range td.Columns {
			c, err := buildColumn(cd)
			if err != nil {
				return p, err
			}
			p.Columns = append(p.Columns, c)
		}
	default:
		cols, err := Preset(td.Preset)
		if err != nil {
			return p, err
		}
		p.Columns = cols
	}

	if td.Sort != nil {
		dir, err := grid.ParseDirection(td.Sort.Direction)
		if err != nil {
			return p, fmt.Errorf("sort: %w", err)
		}
		c, ok := grid.FindColumn(p.Columns, td.Sort.Key)
		if !ok {
			return p, fmt.Errorf("sort: no column %q", td.Sort.Key)
		}
		if !c.Sortable() {
			return p, fmt.Errorf("sort: column %q is not sortable", td.Sort.Key)
		}
		p.DefaultSort = grid.SortState{Key: td.Sort.Key, Direction: dir}
	}

	p.Records = make([]grid.Record, len(td.Records))
	for i, r := range td.Records {
		p.Records[i] = grid.Record(r)
	}
	return p, nil
}

func buildColumn(cd columnDoc) (grid.Column, error) {
	if cd.Key == "" {
		return grid.Column{}, fmt.Errorf("column without key")
	}
	align, err := grid.ParseAlign(cd.Align)
	if err != nil {
		return grid.Column{}, fmt.Errorf("column %s: %w", cd.Key, err)
	}
	role, err := parseRole(cd.Role)
	if err != nil {
		return grid.Column{}, fmt.Errorf("column %s: %w", cd.Key, err)
	}
	c := grid.Column{
		Key:        cd.Key,
		Label:      cd.Label,
		Align:      align,
		Unsortable: cd.Sortable != nil && !*cd.Sortable,
		Role:       role,
	}
	if c.Label == "" {
		c.Label = cd.Key
	}
	if cd.Format != "" {
		f, err := Formatter(cd.Format)
		if err != nil {
			return grid.Column{}, fmt.Errorf("column %s: %w", cd.Key, err)
		}
		c.Format = f
	}
	return c, nil
}

func parseRole(s string) (grid.Role, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return grid.RoleAuto, nil
	case "identifier", "ticker":
		return grid.RoleIdentifier, nil
	case "name", "text":
		return grid.RoleName, nil
	case "numeric", "number":
		return grid.RoleNumeric, nil
	}
	return grid.RoleAuto, fmt.Errorf("unknown role %q", s)
}
