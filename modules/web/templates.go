package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/northlight-studio/website/pkg/logger"
)

//go:embed templates static
var assets embed.FS

var pageNames = []string{
	"home",
	"about",
	"work_index",
	"work_item",
	"blog_index",
	"blog_post",
	"contact",
	"privacy",
	"demo",
	"demo_gradient",
	"not_found",
}

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
}

// parseTemplates builds one template set per page, each sharing the base
// layout. Parsing happens once at startup so a broken template fails the
// boot, not a request.
func parseTemplates() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(
			assets,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("web: parsing template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return pages, nil
}

// render writes a page to the response. The page is buffered first so a
// template failure can still produce a clean 500 instead of a torn page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	tmpl, ok := h.pages[page]
	if !ok {
		h.log.ErrorContext(r.Context(), "unknown page template", slog.String("page", page))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		h.log.ErrorContext(r.Context(), "template execution failed",
			slog.String("page", page), logger.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
