package web

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fr4nk3nst1ner/jobportal/internal/api"
	"github.com/fr4nk3nst1ner/jobportal/internal/jobs"
)

type formPage struct {
	Title   string
	Action  string
	Submit  string
	Editing bool
	Form    jobs.JobForm
	Types   []jobTypeOption
	Error   string
}

func newFormPage(form jobs.JobForm, id string) formPage {
	page := formPage{
		Title:  "Create New Job",
		Action: "/add",
		Submit: "Add Job",
		Form:   form,
		Types:  jobTypeOptions(form.JobType, false),
	}
	if id != "" {
		page.Title = "Edit Job Posting"
		page.Action = "/edit/" + id
		page.Submit = "Update Job"
		page.Editing = true
	}
	return page
}

func (s *Server) handleNewForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "form", newFormPage(jobs.DefaultForm(), ""))
}

// handleEditForm pre-populates the form from the job list. A job that cannot
// be found leaves the form at its defaults.
func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form := jobs.DefaultForm()

	records, err := s.api.ListJobs(r.Context())
	if err != nil {
		log.Printf("Error fetching jobs for edit %s: %v", id, err)
	} else if record, ok := jobs.FindByID(records, id); ok {
		form = jobs.FormFromRecord(record)
	} else {
		log.Printf("Job %s not found, showing an empty form", id)
	}

	s.render(w, http.StatusOK, "form", newFormPage(form, id))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	form, ok := s.parseForm(w, r, "")
	if !ok {
		return
	}

	if _, err := s.api.CreateJob(r.Context(), form.Payload()); err != nil {
		log.Printf("Error creating job: %v", err)
		s.renderFormError(w, http.StatusBadGateway, form, "", fmt.Sprintf("Could not create the job: %s", api.Reason(err)))
		return
	}

	redirectHome(w, r)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	form, ok := s.parseForm(w, r, idParam)
	if !ok {
		return
	}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		s.renderFormError(w, http.StatusUnprocessableEntity, form, idParam, fmt.Sprintf("%q is not a valid job id.", idParam))
		return
	}

	if _, err := s.api.UpdateJob(r.Context(), id, form.Payload()); err != nil {
		log.Printf("Error updating job %d: %v", id, err)
		s.renderFormError(w, http.StatusBadGateway, form, idParam, fmt.Sprintf("Could not update the job: %s", api.Reason(err)))
		return
	}

	redirectHome(w, r)
}

// parseForm reads the submitted form. When required fields are missing the
// form is shown again and ok is false.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request, id string) (jobs.JobForm, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return jobs.JobForm{}, false
	}

	form := jobs.JobForm{
		Title:    r.PostFormValue("title"),
		Company:  r.PostFormValue("company"),
		Location: r.PostFormValue("location"),
		JobType:  r.PostFormValue("job_type"),
		Tags:     r.PostFormValue("tags"),
	}

	if missing := form.Missing(); len(missing) > 0 {
		s.renderFormError(w, http.StatusUnprocessableEntity, form, id, "Please fill in: "+strings.Join(missing, ", ")+".")
		return form, false
	}

	return form, true
}

func (s *Server) renderFormError(w http.ResponseWriter, status int, form jobs.JobForm, id, message string) {
	page := newFormPage(form, id)
	page.Error = message
	s.render(w, status, "form", page)
}
