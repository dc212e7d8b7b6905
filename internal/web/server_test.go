package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/jobportal/internal/api"
	"github.com/fr4nk3nst1ner/jobportal/internal/models"
)

// fakeAPI is an in-memory JobAPI that records every change request
type fakeAPI struct {
	mu        sync.Mutex
	records   []models.Record
	listErr   error
	changeErr error
	created   []models.JobPayload
	updated   map[int]models.JobPayload
	deleted   []int
}

func (f *fakeAPI) ListJobs(ctx context.Context) ([]models.Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeAPI) CreateJob(ctx context.Context, payload models.JobPayload) (models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.changeErr != nil {
		return nil, f.changeErr
	}
	f.created = append(f.created, payload)
	return models.Record{"id": float64(len(f.created))}, nil
}

func (f *fakeAPI) UpdateJob(ctx context.Context, id int, payload models.JobPayload) (models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.changeErr != nil {
		return nil, f.changeErr
	}
	if f.updated == nil {
		f.updated = map[int]models.JobPayload{}
	}
	f.updated[id] = payload
	return models.Record{"id": float64(id)}, nil
}

func (f *fakeAPI) DeleteJob(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.changeErr
}

func sampleRecords() []models.Record {
	return []models.Record{
		{"id": float64(1), "title": "Engineer", "company": "Acme", "location": "NYC", "job_type": "remote", "tags": "x, y"},
		{"id": float64(2), "title": "Designer", "company": "Globex", "location": "Remote", "job_type": "contract", "tags": []any{"Figma"}},
		{"id": float64(3), "title": "X", "tags": []any{"a", "b"}},
	}
}

func newTestServer(t *testing.T, backend *fakeAPI, opts Options) http.Handler {
	t.Helper()
	srv, err := NewServer(backend, opts)
	require.NoError(t, err)
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, target string, form url.Values) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func cardTitles(doc *goquery.Document) []string {
	titles := []string{}
	doc.Find(".job h3").Each(func(i int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})
	return titles
}

func TestNewServerRequiresAPI(t *testing.T) {
	_, err := NewServer(nil, Options{})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, &fakeAPI{}, Options{})
	rec, _ := do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestListShowsAllJobs(t *testing.T) {
	h := newTestServer(t, &fakeAPI{records: sampleRecords()}, Options{})

	rec, doc := do(t, h, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"Engineer", "Designer", "X"}, cardTitles(doc))
	assert.Contains(t, doc.Find(".summary").Text(), "Showing 3 of 3 jobs")
	assert.Equal(t, "/edit/1", doc.Find(".job").First().Find("a[href^='/edit/']").AttrOr("href", ""))
	assert.Equal(t, "/delete/1", doc.Find(".job").First().Find("a[href^='/delete/']").AttrOr("href", ""))

	tags := doc.Find(".job").First().Find(".tag").Map(func(i int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"x", "y"}, tags)

	third := doc.Find(".job").Eq(2).Text()
	assert.Contains(t, third, "Unknown")
	assert.Contains(t, third, "N/A")
}

func TestListFiltersFromQuery(t *testing.T) {
	h := newTestServer(t, &fakeAPI{records: sampleRecords()}, Options{})

	rec, doc := do(t, h, http.MethodGet, "/?keyword=+acme+&type=all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Engineer"}, cardTitles(doc))
	assert.Contains(t, doc.Find(".summary").Text(), "Showing 1 of 3 jobs")
	assert.Equal(t, " acme ", doc.Find("input[name='keyword']").AttrOr("value", ""))

	_, doc = do(t, h, http.MethodGet, "/?type=contract", nil)
	assert.Equal(t, []string{"Designer"}, cardTitles(doc))
	assert.Equal(t, "contract", doc.Find("select[name='type'] option[selected]").AttrOr("value", ""))

	_, doc = do(t, h, http.MethodGet, "/?tag=fig", nil)
	assert.Equal(t, []string{"Designer"}, cardTitles(doc))
}

func TestListEmpty(t *testing.T) {
	h := newTestServer(t, &fakeAPI{records: sampleRecords()}, Options{})

	_, doc := do(t, h, http.MethodGet, "/?keyword=astronaut", nil)
	assert.Empty(t, cardTitles(doc))
	assert.Equal(t, "No jobs found.", strings.TrimSpace(doc.Find(".empty").Text()))
}

func TestListFetchError(t *testing.T) {
	h := newTestServer(t, &fakeAPI{listErr: errors.New("connection refused")}, Options{})

	rec, doc := do(t, h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Failed to load jobs. Please try again later.", strings.TrimSpace(doc.Find(".alert").Text()))
	assert.Empty(t, cardTitles(doc))
	assert.Equal(t, "No jobs found.", strings.TrimSpace(doc.Find(".empty").Text()))
	assert.Empty(t, doc.Find(".summary").Nodes)
}

func TestNewForm(t *testing.T) {
	h := newTestServer(t, &fakeAPI{}, Options{})

	_, doc := do(t, h, http.MethodGet, "/add", nil)
	assert.Equal(t, "Create New Job", doc.Find("h1").Text())
	assert.Equal(t, "Add Job", doc.Find("button[type='submit']").Last().Text())
	assert.Equal(t, "/add", doc.Find("main form").AttrOr("action", ""))
	assert.Equal(t, "full-time", doc.Find("select[name='job_type'] option[selected]").AttrOr("value", ""))
}

func TestEditFormPrepopulates(t *testing.T) {
	h := newTestServer(t, &fakeAPI{records: sampleRecords()}, Options{})

	_, doc := do(t, h, http.MethodGet, "/edit/3", nil)
	assert.Equal(t, "Edit Job Posting", doc.Find("h1").Text())
	assert.Equal(t, "X", doc.Find("input[name='title']").AttrOr("value", ""))
	assert.Equal(t, "a, b", doc.Find("input[name='tags']").AttrOr("value", ""))
	assert.Equal(t, "/edit/3", doc.Find("main form").AttrOr("action", ""))
}

func TestEditFormUnknownIDKeepsDefaults(t *testing.T) {
	h := newTestServer(t, &fakeAPI{records: sampleRecords()}, Options{})

	rec, doc := do(t, h, http.MethodGet, "/edit/5", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", doc.Find("input[name='title']").AttrOr("value", "missing"))
	assert.Equal(t, "", doc.Find("input[name='tags']").AttrOr("value", "missing"))
	assert.Empty(t, doc.Find(".alert").Nodes)
}

func TestEditFormKeepsStoredJobType(t *testing.T) {
	records := []models.Record{{"id": float64(7), "title": "Seasonal Clerk", "job_type": "temporary"}}
	h := newTestServer(t, &fakeAPI{records: records}, Options{})

	_, doc := do(t, h, http.MethodGet, "/edit/7", nil)
	selected := doc.Find("select[name='job_type'] option[selected]")
	require.Equal(t, 1, selected.Length())
	assert.Equal(t, "temporary", selected.AttrOr("value", ""))
}

func TestListRendersMalformedRecords(t *testing.T) {
	records := []models.Record{{"id": float64(1), "title": "Engineer"}, {}}
	h := newTestServer(t, &fakeAPI{records: records}, Options{})

	rec, doc := do(t, h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Engineer", "Untitled"}, cardTitles(doc))
	assert.Empty(t, doc.Find(".alert").Nodes)
}

func TestCreate(t *testing.T) {
	backend := &fakeAPI{}
	h := newTestServer(t, backend, Options{})

	rec, _ := do(t, h, http.MethodPost, "/add", url.Values{
		"title":    {"Engineer"},
		"company":  {"Acme"},
		"location": {"Remote"},
		"job_type": {"contract"},
		"tags":     {"React, Remote, "},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	require.Len(t, backend.created, 1)
	assert.Equal(t, []string{"React", "Remote"}, backend.created[0].Tags)
	assert.Equal(t, "contract", backend.created[0].JobType)
}

func TestCreateMissingFields(t *testing.T) {
	backend := &fakeAPI{}
	h := newTestServer(t, backend, Options{})

	rec, doc := do(t, h, http.MethodPost, "/add", url.Values{"title": {"Engineer"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, doc.Find(".alert").Text(), "company, location")
	assert.Equal(t, "Engineer", doc.Find("input[name='title']").AttrOr("value", ""))
	assert.Empty(t, backend.created)
}

func TestCreateRejectedShowsReason(t *testing.T) {
	backend := &fakeAPI{changeErr: &api.NetworkError{StatusCode: http.StatusBadRequest, Message: "Missing required fields"}}
	h := newTestServer(t, backend, Options{})

	rec, doc := do(t, h, http.MethodPost, "/add", url.Values{
		"title": {"Engineer"}, "company": {"Acme"}, "location": {"Remote"},
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Contains(t, doc.Find(".alert").Text(), "Missing required fields")
}

func TestUpdate(t *testing.T) {
	backend := &fakeAPI{}
	h := newTestServer(t, backend, Options{})

	rec, _ := do(t, h, http.MethodPost, "/edit/3", url.Values{
		"title": {"X"}, "company": {"Acme"}, "location": {"NYC"}, "job_type": {"part-time"}, "tags": {"a, b"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Contains(t, backend.updated, 3)
	assert.Equal(t, []string{"a", "b"}, backend.updated[3].Tags)
}

func TestUpdateInvalidID(t *testing.T) {
	backend := &fakeAPI{}
	h := newTestServer(t, backend, Options{})

	rec, _ := do(t, h, http.MethodPost, "/edit/abc", url.Values{
		"title": {"X"}, "company": {"Acme"}, "location": {"NYC"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, backend.updated)
}

func TestDeleteConfirm(t *testing.T) {
	backend := &fakeAPI{}
	h := newTestServer(t, backend, Options{})

	_, doc := do(t, h, http.MethodGet, "/delete/4", nil)
	assert.Equal(t, "Confirm Deletion", doc.Find("h1").Text())
	assert.Contains(t, doc.Text(), "Are you sure you want to permanently delete this job post?")
	assert.Equal(t, "/delete/4", doc.Find("main form").AttrOr("action", ""))
	assert.Empty(t, backend.deleted, "showing the prompt must not delete")
}

func TestDeleteConfirmed(t *testing.T) {
	backend := &fakeAPI{}
	h := newTestServer(t, backend, Options{})

	rec, _ := do(t, h, http.MethodPost, "/delete/4", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, []int{4}, backend.deleted)
}

func TestDeleteFailure(t *testing.T) {
	backend := &fakeAPI{changeErr: errors.New("backend down")}
	h := newTestServer(t, backend, Options{})

	rec, doc := do(t, h, http.MethodPost, "/delete/4", url.Values{})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Equal(t, "Error deleting job. Please try again.", strings.TrimSpace(doc.Find(".alert").Text()))
	assert.Equal(t, []int{4}, backend.deleted)
}

func TestSearchCallsCallback(t *testing.T) {
	var got []string
	h := newTestServer(t, &fakeAPI{}, Options{OnSearch: func(q string) { got = append(got, q) }})

	rec, _ := do(t, h, http.MethodPost, "/search", url.Values{"q": {" react "}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"react"}, got)
}

func TestSearchWithoutCallback(t *testing.T) {
	h := newTestServer(t, &fakeAPI{}, Options{})

	rec, _ := do(t, h, http.MethodPost, "/search", url.Values{"q": {"react"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestFilterPage(t *testing.T) {
	backend := &fakeAPI{listErr: errors.New("must not be called")}
	h := newTestServer(t, backend, Options{})

	rec, doc := do(t, h, http.MethodGet, "/filter?keyword=go&type=internship", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "go", doc.Find("input[name='keyword']").AttrOr("value", ""))
	assert.Equal(t, "internship", doc.Find("select[name='type'] option[selected]").AttrOr("value", ""))
	assert.Equal(t, "/filter", doc.Find("form.filters").AttrOr("action", ""))
	assert.Empty(t, doc.Find(".alert").Nodes)
	assert.Empty(t, cardTitles(doc))
}

func TestBasicAuthProtectsChanges(t *testing.T) {
	backend := &fakeAPI{records: sampleRecords()}
	h := newTestServer(t, backend, Options{Username: "admin", Password: "secret"})

	rec, _ := do(t, h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/delete/1", url.Values{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, backend.deleted)

	req := httptest.NewRequest(http.MethodPost, "/delete/1", nil)
	req.SetBasicAuth("admin", "secret")
	authed := httptest.NewRecorder()
	h.ServeHTTP(authed, req)
	assert.Equal(t, http.StatusSeeOther, authed.Code)
	assert.Equal(t, []int{1}, backend.deleted)
}
