package web

import (
	"log"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/fr4nk3nst1ner/jobportal/internal/jobs"
	"github.com/fr4nk3nst1ner/jobportal/internal/models"
)

const fetchErrorMessage = "Failed to load jobs. Please try again later."

// jobCard is a job as the list page shows it
type jobCard struct {
	models.DisplayJob
	PostedAgo string
}

type listPage struct {
	Title    string
	All      []models.DisplayJob
	Shown    []jobCard
	Criteria models.FilterCriteria
	Types    []jobTypeOption
	Error    string
}

// handleList fetches and normalizes the jobs, then shows those matching the
// filter criteria in the query string
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromRequest(r)
	page := listPage{
		Title:    "Job Portal Dashboard",
		Criteria: criteria,
		Types:    jobTypeOptions(criteria.Type, true),
	}

	records, err := s.api.ListJobs(r.Context())
	if err != nil {
		log.Printf("Error fetching jobs: %v", err)
		page.Error = fetchErrorMessage
		s.render(w, http.StatusOK, "list", page)
		return
	}

	page.All = jobs.NormalizeAll(records, s.opts.DateFormat)
	shown := page.All
	if criteria.IsActive() {
		shown = jobs.Filter(page.All, criteria)
	}

	page.Shown = make([]jobCard, 0, len(shown))
	for _, job := range shown {
		card := jobCard{DisplayJob: job}
		if s.opts.RelativeDates && !job.Posted.IsZero() {
			card.PostedAgo = humanize.Time(job.Posted)
		}
		page.Shown = append(page.Shown, card)
	}

	s.render(w, http.StatusOK, "list", page)
}

// criteriaFromRequest reads filter criteria from the query string
func criteriaFromRequest(r *http.Request) models.FilterCriteria {
	q := r.URL.Query()
	criteria := models.DefaultCriteria()
	criteria.Keyword = q.Get("keyword")
	criteria.Location = q.Get("location")
	if t := q.Get("type"); t != "" {
		criteria.Type = t
	}
	criteria.Company = q.Get("company")
	criteria.Tag = q.Get("tag")
	return criteria
}
