// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the forum pages.
// Each page template is paired with the base layout; login and register
// render standalone (they carry their own <html> skeleton).
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"forumfront/internal/i18n"
	"forumfront/internal/markdown"
	"forumfront/internal/middleware"
	"forumfront/internal/session"
)

//go:embed templates/*.html
var pagesFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title     string         // Page title for the <title> tag
	Lang      string         // Resolved UI language ("en" or "pt")
	Session   *session.Data  // Current session (nil for anonymous browsers)
	CSRFToken string         // CSRF token for form submissions
	Error     string         // Form-level error message, already user-facing
	Status    int            // Response status code, 200 when zero
	Data      map[string]any // Page-specific data
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	bundle    *i18n.Bundle
}

// standaloneTemplates lists templates that render as full HTML pages
// without the base layout.
var standaloneTemplates = map[string]bool{
	"login":    true,
	"register": true,
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem, pairing each with the base layout.
func New(bundle *i18n.Bundle) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		bundle:    bundle,
	}

	funcMap := template.FuncMap{
		// t translates a message key for the page's language.
		"t": func(lang, key string) string {
			return bundle.T(lang, key)
		},
		// markdown renders post content to sanitized HTML. Raw HTML in the
		// source is escaped by the converter, so marking the result safe
		// does not reintroduce injection.
		"markdown": func(source string) template.HTML {
			html, err := markdown.ToHTML(source)
			if err != nil {
				return template.HTML(template.HTMLEscapeString(source))
			}
			return template.HTML(html)
		},
		// date formats a timestamp the way the forum displays them.
		"date": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
		// indentPx converts a comment's capped indent level to pixels.
		"indentPx": func(indent int) int {
			return indent * 24
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}

	entries, err := pagesFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}
		tmplName := name[:len(name)-len(".html")]

		var tmpl *template.Template
		var parseErr error
		if standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(funcMap).ParseFS(
				pagesFS, "templates/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(funcMap).ParseFS(
				pagesFS, "templates/base.html", "templates/"+name,
			)
		}
		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full page. Session, language, and CSRF token are filled
// in from the request so handlers only supply page-specific data.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &PageData{}
	}
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}
	if data.Lang == "" {
		data.Lang = rn.bundle.Resolve(r)
	}
	data.CSRFToken = middleware.GetCSRFToken(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if data.Status != 0 {
		w.WriteHeader(data.Status)
	}

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}
