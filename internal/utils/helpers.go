package utils

import (
	"strings"
	"time"
)

// DefaultDateFormat renders dates the way a US-English browser prints a locale date
const DefaultDateFormat = "1/2/2006"

// postingDateLayouts are the timestamp shapes the backend and job boards use for posting dates
var postingDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// SplitTags splits a comma separated tag string, trims every tag and drops empty ones
func SplitTags(tags string) []string {
	result := []string{}
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			result = append(result, t)
		}
	}
	return result
}

// JoinTags joins tags into the comma separated form the job form edits
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// ParsePostingDate parses a posting date in any of the supported layouts
func ParsePostingDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range postingDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// FormatPostingDate renders a posting date with the given layout, or "N/A" when it is unknown
func FormatPostingDate(t time.Time, layout string) string {
	if t.IsZero() {
		return "N/A"
	}
	if layout == "" {
		layout = DefaultDateFormat
	}
	return t.Format(layout)
}

// TruncateString truncates a string to the specified length and adds "..." if necessary
func TruncateString(s string, length int) string {
	r := []rune(s)
	if len(r) <= length || length < 4 {
		return s
	}
	return string(r[:length-3]) + "..."
}
