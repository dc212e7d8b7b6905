package jobs

import (
	"strings"

	"github.com/fr4nk3nst1ner/jobportal/internal/models"
)

// Filter returns the jobs matching every non-empty criterion, keeping input
// order. Matching is case-insensitive. Type must match exactly unless it is
// "all"; the other criteria match substrings.
func Filter(jobs []models.DisplayJob, criteria models.FilterCriteria) []models.DisplayJob {
	keyword := strings.ToLower(strings.TrimSpace(criteria.Keyword))
	location := strings.ToLower(strings.TrimSpace(criteria.Location))
	jobType := strings.ToLower(strings.TrimSpace(criteria.Type))
	company := strings.ToLower(strings.TrimSpace(criteria.Company))
	tag := strings.ToLower(strings.TrimSpace(criteria.Tag))

	filtered := make([]models.DisplayJob, 0, len(jobs))
	for _, job := range jobs {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(job.Title), keyword) &&
			!strings.Contains(strings.ToLower(job.Company), keyword) {
			continue
		}

		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}

		if jobType != "" && jobType != models.TypeAll && strings.ToLower(job.Type) != jobType {
			continue
		}

		if company != "" && !strings.Contains(strings.ToLower(job.Company), company) {
			continue
		}

		if tag != "" && !hasTag(job.Tags, tag) {
			continue
		}

		filtered = append(filtered, job)
	}

	return filtered
}

// hasTag reports whether any tag contains the lowercased needle
func hasTag(tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
