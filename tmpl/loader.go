package tmpl

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/LianHaeming/weekplan/models"
)

//go:embed templates
var files embed.FS

// Templates holds all page templates, keyed by page name.
type Templates struct {
	pages map[string]*template.Template
}

// ExecuteTemplate renders a page template by name.
func (t *Templates) ExecuteTemplate(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	// Partials are rendered by their define name, pages via layout
	if strings.HasPrefix(name, "partials/") {
		inner := strings.TrimSuffix(path.Base(name), ".html") + "-inner"
		if tmpl.Lookup(inner) != nil {
			return tmpl.ExecuteTemplate(w, inner, data)
		}
		return tmpl.Execute(w, data)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

// Has reports whether a page or partial is loaded.
func (t *Templates) Has(name string) bool {
	_, ok := t.pages[name]
	return ok
}

// Load parses all templates. Each page template gets its own clone of the
// shared templates (layout + partials) so {{define "content"}} doesn't collide.
func Load(assetVer string) (*Templates, error) {
	return load(files, assetVer)
}

func load(fsys fs.FS, assetVer string) (*Templates, error) {
	funcMap := FuncMap(assetVer)

	base, err := template.New("base").Funcs(funcMap).ParseFS(fsys, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	partialFiles, err := fs.Glob(fsys, "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob partials: %w", err)
	}
	if len(partialFiles) > 0 {
		if _, err := base.ParseFS(fsys, partialFiles...); err != nil {
			return nil, fmt.Errorf("parse partials: %w", err)
		}
	}

	pages := map[string]*template.Template{}
	pageFiles, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}
	for _, f := range pageFiles {
		name := path.Base(f)
		if name == "layout.html" {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base for %s: %w", name, err)
		}
		if _, err := clone.ParseFS(fsys, f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = clone
	}

	// Partials can also be rendered on their own
	for _, f := range partialFiles {
		name := "partials/" + path.Base(f)
		t, err := template.New("").Funcs(funcMap).ParseFS(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Templates{pages: pages}, nil
}

// FuncMap is the set of helpers available in every template.
func FuncMap(assetVer string) template.FuncMap {
	return template.FuncMap{
		"assetVer": func() string { return assetVer },

		"hours":     models.FormatHours,
		"isWeekend": models.IsWeekend,
		"hasPriority": func(list []models.Priority, p models.Priority) bool {
			return models.HasPriority(list, p)
		},
		"routineHours": func(r models.Routine, c models.Category) float64 {
			return r.Hours(c)
		},
		"joinPriorities": joinPriorities,
		"columnHeaders": func() []string {
			return models.ColumnHeaders[:]
		},
	}
}

func joinPriorities(list []models.Priority) string {
	parts := make([]string, len(list))
	for i, p := range list {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}
