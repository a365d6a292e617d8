// Package view renders the console's server side pages. Templates are
// embedded; every page file is parsed together with the shared layout and
// partials. A name like "items.html" renders the whole page and
// "items.html#rows" only the rows block, which is what htmx requests get.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"

	"maintenance-console/pkg/contextkeys"
	"maintenance-console/pkg/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

var sharedFiles = []string{"templates/layout.html", "templates/partials.html"}

// Renderer implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		if isShared(file) {
			continue
		}
		name := path.Base(file)
		patterns := append([]string{file}, sharedFiles...)
		t, err := template.New(name).Funcs(Funcs(i18n.New(i18n.PortugueseBR))).ParseFS(templateFS, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func isShared(file string) bool {
	for _, s := range sharedFiles {
		if s == file {
			return true
		}
	}
	return false
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	page, block := name, "layout"
	if i := strings.IndexByte(name, '#'); i >= 0 {
		page, block = name[:i], name[i+1:]
	}

	base, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("view: unknown page %q", page)
	}

	tr := i18n.New(i18n.PortugueseBR)
	if c != nil {
		if t, ok := c.Get(contextkeys.EchoTranslatorKey).(*i18n.Translator); ok {
			tr = t
		}
	}

	// Funcs are bound per request so "t" speaks the request's language.
	t, err := base.Clone()
	if err != nil {
		return err
	}
	return t.Funcs(Funcs(tr)).ExecuteTemplate(w, block, data)
}

// Funcs is the template func map bound to one translator.
func Funcs(tr *i18n.Translator) template.FuncMap {
	return template.FuncMap{
		"t":     tr.T,
		"lang":  tr.Lang,
		"money": tr.Number,
		"int":   tr.Integer,
		"date": func(v interface{}) string {
			switch d := v.(type) {
			case time.Time:
				return tr.Date(d)
			case null.Time:
				if d.Valid {
					return tr.Date(d.Time)
				}
			}
			return ""
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"dict": func(kv ...interface{}) (map[string]interface{}, error) {
			if len(kv)%2 != 0 {
				return nil, fmt.Errorf("dict: odd number of arguments")
			}
			m := make(map[string]interface{}, len(kv)/2)
			for i := 0; i < len(kv); i += 2 {
				key, ok := kv[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
				}
				m[key] = kv[i+1]
			}
			return m, nil
		},
		"year": func() int { return time.Now().Year() },
	}
}
