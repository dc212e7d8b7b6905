package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/jobportal/internal/models"
	"github.com/fr4nk3nst1ner/jobportal/internal/utils"
)

// PostedLabel renders a job's posting date, relative ("3 days ago") when asked and known
func PostedLabel(job models.DisplayJob, relative bool) string {
	if relative && !job.Posted.IsZero() {
		return humanize.Time(job.Posted)
	}
	return job.PostingDate
}

// JobTableData builds the table rows for a list of jobs, header first
func JobTableData(jobs []models.DisplayJob, relative, colour bool) pterm.TableData {
	data := pterm.TableData{{"ID", "Title", "Company", "Location", "Type", "Posted", "Tags"}}
	for _, job := range jobs {
		jobType := job.Type
		if colour {
			jobType = ColorizeType(jobType)
		}
		data = append(data, []string{
			strconv.Itoa(job.ID),
			utils.TruncateString(job.Title, 40),
			utils.TruncateString(job.Company, 24),
			utils.TruncateString(job.Location, 24),
			jobType,
			PostedLabel(job, relative),
			strings.Join(job.Tags, ", "),
		})
	}
	return data
}

// RenderJobTable prints the jobs as a table followed by a count summary
func RenderJobTable(w io.Writer, shown []models.DisplayJob, total int, relative bool) error {
	if len(shown) == 0 {
		fmt.Fprintln(w, "No jobs found.")
	} else {
		table, err := pterm.DefaultTable.
			WithHasHeader().
			WithData(JobTableData(shown, relative, true)).
			Srender()
		if err != nil {
			return fmt.Errorf("failed to render job table: %w", err)
		}
		fmt.Fprintln(w, table)
	}

	fmt.Fprintln(w, SummaryLine(len(shown), total))
	return nil
}

// SummaryLine describes how many of the fetched jobs are shown
func SummaryLine(shown, total int) string {
	return fmt.Sprintf("Showing %s of %s jobs", humanize.Comma(int64(shown)), humanize.Comma(int64(total)))
}

// ConfirmDelete asks the user to confirm deleting a job
func ConfirmDelete(job string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(fmt.Sprintf("Are you sure you want to permanently delete %s?", job))
}
