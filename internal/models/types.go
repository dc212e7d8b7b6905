package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Job types accepted by the backend and offered by the job form
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeRemote     = "remote"
)

// JobTypes lists the job types in the order the forms present them
var JobTypes = []string{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeInternship,
	JobTypeRemote,
}

// TypeAll is the filter value that disables the job type constraint
const TypeAll = "all"

// IsValidJobType checks if the job type is one the backend accepts
func IsValidJobType(jobType string) bool {
	for _, t := range JobTypes {
		if strings.EqualFold(t, jobType) {
			return true
		}
	}
	return false
}

// IsValidFilterType checks if the job type can be used as a filter criterion
func IsValidFilterType(jobType string) bool {
	return strings.EqualFold(strings.TrimSpace(jobType), TypeAll) || IsValidJobType(strings.TrimSpace(jobType))
}

// Record is a job record exactly as the server sent it. Any field may be
// missing, null, or of an unexpected type.
type Record map[string]any

// ID returns the record's integer id, if it has one
func (r Record) ID() (int, bool) {
	switch v := r["id"].(type) {
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	case json.Number:
		if n, err := strconv.Atoi(v.String()); err == nil {
			return n, true
		}
	case int:
		return v, true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// Text returns the field as display text. Null, missing, and falsy scalar
// values (empty string, zero, false) yield "".
func (r Record) Text(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		if v.String() == "0" {
			return ""
		}
		return v.String()
	case int:
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	case bool:
		if v {
			return "true"
		}
	}
	return ""
}

// JobPayload is the body sent to the backend when creating or updating a job.
// Tags always travel as an array.
type JobPayload struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	JobType     string   `json:"job_type"`
	Tags        []string `json:"tags"`
	PostingDate string   `json:"posting_date,omitempty"`
}

// DisplayJob is a normalized job ready to be rendered. Every field is populated.
type DisplayJob struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	PostingDate string    `json:"posting_date"`
	Tags        []string  `json:"tags"`
	Posted      time.Time `json:"-"`
}

// FilterCriteria narrows a job list. Empty fields do not constrain anything,
// and a Type of "all" matches every job type.
type FilterCriteria struct {
	Keyword  string `json:"keyword"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Company  string `json:"company,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

// DefaultCriteria returns the criteria the filter form starts with and resets to
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Type: TypeAll}
}

// IsActive reports whether any criterion would narrow the list
func (c FilterCriteria) IsActive() bool {
	t := strings.TrimSpace(c.Type)
	return strings.TrimSpace(c.Keyword) != "" ||
		strings.TrimSpace(c.Location) != "" ||
		(t != "" && !strings.EqualFold(t, TypeAll)) ||
		strings.TrimSpace(c.Company) != "" ||
		strings.TrimSpace(c.Tag) != ""
}
