package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/fr4nk3nst1ner/jobportal/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"list", "form", "delete", "filter"}

func parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"comma": func(n int) string { return humanize.Comma(int64(n)) },
		"filterForm": func(action string, criteria models.FilterCriteria, types []jobTypeOption) filterFormData {
			return filterFormData{Action: action, Criteria: criteria, Types: types}
		},
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/filterform.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}
	return pages, nil
}

// render writes a full page. Rendering happens into a buffer first so a
// template failure never produces a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := s.pages[name]
	if !ok {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		log.Printf("web: unknown template %q", name)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		log.Printf("web: failed to render %s: %v", name, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// filterFormData feeds the shared filter form
type filterFormData struct {
	Action   string
	Criteria models.FilterCriteria
	Types    []jobTypeOption
}

// jobTypeOption is one entry of a job type <select>
type jobTypeOption struct {
	Value    string
	Label    string
	Selected bool
}

// jobTypeOptions lists the known job types, plus selected itself when it is
// not one of them
func jobTypeOptions(selected string, includeAll bool) []jobTypeOption {
	var options []jobTypeOption
	if includeAll {
		options = append(options, jobTypeOption{
			Value:    models.TypeAll,
			Label:    "All Types",
			Selected: selected == "" || strings.EqualFold(selected, models.TypeAll),
		})
	}
	known := includeAll && strings.EqualFold(selected, models.TypeAll)
	for _, t := range models.JobTypes {
		match := strings.EqualFold(selected, t)
		known = known || match
		options = append(options, jobTypeOption{
			Value:    t,
			Label:    typeLabel(t),
			Selected: match,
		})
	}

	// keep a type the backend stored but the form does not offer
	if selected = strings.TrimSpace(selected); selected != "" && !known {
		options = append(options, jobTypeOption{Value: selected, Label: typeLabel(selected), Selected: true})
	}
	return options
}

// typeLabel turns "full-time" into "Full-Time"
func typeLabel(jobType string) string {
	parts := strings.Split(jobType, "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "-")
}
