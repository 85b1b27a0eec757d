// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Every page is paired with the base layout, which carries the toggle
// menu. HTMX requests get only the menu fragment back.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"communitysite/internal/markdown"
)

//go:embed templates/*.html
var templateFS embed.FS

// partials are parsed into every page but are not pages themselves.
var partials = map[string]bool{
	"base.html": true,
	"menu.html": true,
}

// ImageResolver turns a storage key into a public image URL.
type ImageResolver func(key string) string

// StaticImages resolves keys against the embedded /static/images/ tree.
// It is used when object storage is not configured.
func StaticImages(key string) string {
	return "/static/images/" + strings.TrimLeft(key, "/")
}

// resolveImage passes URLs and site paths through untouched and resolves
// bare keys with images.
func resolveImage(images ImageResolver, key string) string {
	if key == "" || !isStorageKey(key) {
		return key
	}
	return images(key)
}

// PageData holds everything the base layout and a page template need.
type PageData struct {
	SiteName string
	Title    string   // page title for the <title> tag
	Path     string   // request path, used for canonical links
	Menu     MenuData // toggle menu state for this request
	Data     any      // page-specific data
	Year     int
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing every page template from the embedded
// filesystem together with the base layout and menu partial. When devMode
// is true pages are marked noindex. A non-empty baseURL adds canonical
// links. images may be nil, in which case StaticImages is used.
func New(devMode bool, baseURL string, images ImageResolver) (*Renderer, error) {
	if images == nil {
		images = StaticImages
	}

	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"isDev": func() bool { return devMode },
			"canonical": func(path string) string {
				if baseURL == "" {
					return ""
				}
				return strings.TrimRight(baseURL, "/") + path
			},
			"imageURL":   func(key string) string { return resolveImage(images, key) },
			"formatDate": formatDate,
			"meetupDate": meetupDate,
			"meetupTime": meetupTime,
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			"prune": func(n int, s string) string { return markdown.Prune(s, n) },
			"join":  strings.Join,
		},
	}

	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || partials[name] {
			continue
		}
		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/menu.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	// The menu fragment is rendered on its own for HTMX swaps.
	menu, err := template.New("menu.html").Funcs(r.funcMap).ParseFS(templateFS, "templates/menu.html")
	if err != nil {
		return nil, fmt.Errorf("parse template menu.html: %w", err)
	}
	r.templates["menu"] = menu

	return r, nil
}

// Page renders the named page inside the base layout.
func (rn *Renderer) Page(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok || name == "menu" {
		return nil, fmt.Errorf("template %q not found", name)
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Menu renders only the toggle menu, for HTMX requests that swap it in place.
func (rn *Renderer) Menu(menu MenuData) ([]byte, error) {
	var buf bytes.Buffer
	if err := rn.templates["menu"].ExecuteTemplate(&buf, "menu", menu); err != nil {
		return nil, fmt.Errorf("execute menu fragment: %w", err)
	}
	return buf.Bytes(), nil
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 January 2006")
}

// meetupDate formats a nullable meetup start like "Wednesday 4 March".
func meetupDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("Monday 2 January")
}

func meetupTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
