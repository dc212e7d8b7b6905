package jobs

import (
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/jobportal/internal/models"
	"github.com/fr4nk3nst1ner/jobportal/internal/utils"
)

// JobForm is the state of the create/edit job form. Tags are edited as a
// single comma separated string.
type JobForm struct {
	Title    string
	Company  string
	Location string
	JobType  string
	Tags     string
}

// DefaultForm returns the empty form a new job starts from
func DefaultForm() JobForm {
	return JobForm{JobType: models.JobTypeFullTime}
}

// FindByID looks up the record whose id equals the integer in idParam
func FindByID(records []models.Record, idParam string) (models.Record, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(idParam))
	if err != nil {
		return nil, false
	}
	for _, record := range records {
		if recordID, ok := record.ID(); ok && recordID == id {
			return record, true
		}
	}
	return nil, false
}

// FormFromRecord pre-populates the form from an existing record
func FormFromRecord(record models.Record) JobForm {
	form := JobForm{
		Title:    record.Text("title"),
		Company:  record.Text("company"),
		Location: record.Text("location"),
		JobType:  orDefault(record.Text("job_type"), models.JobTypeFullTime),
	}

	switch tags := record["tags"].(type) {
	case []any:
		parts := make([]string, 0, len(tags))
		for _, t := range tags {
			if s, ok := t.(string); ok {
				parts = append(parts, s)
			}
		}
		form.Tags = utils.JoinTags(parts)
	case []string:
		form.Tags = utils.JoinTags(tags)
	case string:
		form.Tags = tags
	}

	return form
}

// Missing returns the labels of required fields left blank
func (f JobForm) Missing() []string {
	var missing []string
	if strings.TrimSpace(f.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(f.Company) == "" {
		missing = append(missing, "company")
	}
	if strings.TrimSpace(f.Location) == "" {
		missing = append(missing, "location")
	}
	return missing
}

// Payload serializes the form for submission, splitting the tag string into
// trimmed, non-empty tags
func (f JobForm) Payload() models.JobPayload {
	return models.JobPayload{
		Title:    f.Title,
		Company:  f.Company,
		Location: f.Location,
		JobType:  orDefault(f.JobType, models.JobTypeFullTime),
		Tags:     utils.SplitTags(f.Tags),
	}
}
