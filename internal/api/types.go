package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fr4nk3nst1ner/jobportal/internal/models"
)

// JobList is the list endpoint's response. The backend answers either with a
// bare array of jobs or with an object holding them under "jobs"; both decode
// into Jobs. Any other shape decodes to an empty list. Elements that are not
// objects become empty records so they still render with placeholders.
type JobList struct {
	Jobs []models.Record
}

// UnmarshalJSON accepts both response shapes
func (l *JobList) UnmarshalJSON(data []byte) error {
	l.Jobs = []models.Record{}

	trimmed := strings.TrimSpace(string(data))
	switch {
	case strings.HasPrefix(trimmed, "["):
		return l.decodeRecords(data)
	case strings.HasPrefix(trimmed, "{"):
		var wrapped struct {
			Jobs json.RawMessage `json:"jobs"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		if strings.HasPrefix(strings.TrimSpace(string(wrapped.Jobs)), "[") {
			return l.decodeRecords(wrapped.Jobs)
		}
	}
	return nil
}

func (l *JobList) decodeRecords(data []byte) error {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}

	l.Jobs = make([]models.Record, 0, len(elements))
	for _, element := range elements {
		var record models.Record
		if err := json.Unmarshal(element, &record); err != nil || record == nil {
			record = models.Record{}
		}
		l.Jobs = append(l.Jobs, record)
	}
	return nil
}

// NetworkError reports a failed backend call: the request never completed, or
// the backend answered with a non-2xx status.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	// Message is the backend's reason, when the error body carried one
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.URL, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s: status %d: %s", e.Op, e.URL, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s: %s: status %d", e.Op, e.URL, e.StatusCode)
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Reason returns a message suitable for showing to the user
func (e *NetworkError) Reason() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("The server answered %d %s.", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return "The server could not be reached."
}

// IsNotFound reports whether err is a 404 from the backend
func IsNotFound(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr) && netErr.StatusCode == http.StatusNotFound
}

// Reason extracts a user-facing reason from any error returned by the client
func Reason(err error) string {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Reason()
	}
	return "Something went wrong. Please try again."
}

// errorMessage pulls the reason out of the backend's {"error": ..., "message": ...} body
func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
