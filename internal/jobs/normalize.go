// Package jobs holds the pure job logic shared by the web front end and the
// CLI: normalizing raw server records, filtering, and the job form state.
package jobs

import (
	"github.com/fr4nk3nst1ner/jobportal/internal/models"
	"github.com/fr4nk3nst1ner/jobportal/internal/utils"
)

// Placeholders shown when a record lacks a value
const (
	UntitledTitle  = "Untitled"
	UnknownCompany = "Unknown"
	NotAvailable   = "N/A"
)

// Normalize turns a raw server record into a display-ready job. It never
// fails: missing or malformed fields degrade to placeholders.
func Normalize(record models.Record, dateFormat string) models.DisplayJob {
	id, _ := record.ID()

	job := models.DisplayJob{
		ID:          id,
		Title:       orDefault(record.Text("title"), UntitledTitle),
		Company:     orDefault(record.Text("company"), UnknownCompany),
		Location:    orDefault(record.Text("location"), NotAvailable),
		Type:        orDefault(record.Text("job_type"), orDefault(record.Text("type"), NotAvailable)),
		PostingDate: NotAvailable,
		Tags:        normalizeTags(record["tags"]),
	}

	if posted, ok := utils.ParsePostingDate(record.Text("posting_date")); ok {
		job.Posted = posted
		job.PostingDate = utils.FormatPostingDate(posted, dateFormat)
	}

	return job
}

// NormalizeAll normalizes every record, keeping their order
func NormalizeAll(records []models.Record, dateFormat string) []models.DisplayJob {
	normalized := make([]models.DisplayJob, 0, len(records))
	for _, record := range records {
		normalized = append(normalized, Normalize(record, dateFormat))
	}
	return normalized
}

func normalizeTags(value any) []string {
	switch v := value.(type) {
	case string:
		return utils.SplitTags(v)
	case []any:
		tags := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	case []string:
		return append([]string{}, v...)
	}
	return []string{}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
