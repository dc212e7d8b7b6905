package web

import (
	"log"
	"net/http"
	"strings"

	"github.com/fr4nk3nst1ner/jobportal/internal/models"
)

type filterPage struct {
	Title    string
	Criteria models.FilterCriteria
	Types    []jobTypeOption
}

// handleSearch accepts the navbar search box. The query is reported to
// OnSearch and the list is shown again unfiltered.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	query := strings.TrimSpace(r.PostFormValue("q"))
	log.Printf("Search query: %s", query)
	if s.opts.OnSearch != nil {
		s.opts.OnSearch(query)
	}

	redirectHome(w, r)
}

// handleFilterPage shows the standalone filter form. Its values are echoed
// back but never applied to any job list.
func (s *Server) handleFilterPage(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromRequest(r)
	s.render(w, http.StatusOK, "filter", filterPage{
		Title:    "Filter Jobs",
		Criteria: criteria,
		Types:    jobTypeOptions(criteria.Type, true),
	})
}
