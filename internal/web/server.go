package web

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fr4nk3nst1ner/jobportal/internal/models"
	"github.com/fr4nk3nst1ner/jobportal/internal/utils"
)

// JobAPI is the backend the web front end reads and writes jobs through
type JobAPI interface {
	ListJobs(ctx context.Context) ([]models.Record, error)
	CreateJob(ctx context.Context, payload models.JobPayload) (models.Record, error)
	UpdateJob(ctx context.Context, id int, payload models.JobPayload) (models.Record, error)
	DeleteJob(ctx context.Context, id int) error
}

// Options configures the web front end
type Options struct {
	DateFormat    string
	RelativeDates bool
	// Username and Password enable basic auth on routes that change jobs
	Username string
	Password string
	// OnSearch is called with every navbar search query
	OnSearch func(query string)
}

// Server renders the job portal pages
type Server struct {
	api   JobAPI
	opts  Options
	pages map[string]*template.Template
}

// NewServer creates the web front end for api
func NewServer(api JobAPI, opts Options) (*Server, error) {
	if api == nil {
		return nil, errors.New("job API is required")
	}
	if opts.DateFormat == "" {
		opts.DateFormat = utils.DefaultDateFormat
	}

	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Server{api: api, opts: opts, pages: pages}, nil
}

// Handler returns the router serving every page
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)

	r.Get("/", s.handleList)
	r.Get("/add", s.handleNewForm)
	r.Get("/edit/{id}", s.handleEditForm)
	r.Get("/delete/{id}", s.handleDeleteConfirm)
	r.Get("/filter", s.handleFilterPage)
	r.Post("/search", s.handleSearch)

	r.Group(func(r chi.Router) {
		r.Use(s.basicAuth)
		r.Post("/add", s.handleCreate)
		r.Post("/edit/{id}", s.handleUpdate)
		r.Post("/delete/{id}", s.handleDelete)
	})

	return r
}

// ListenAndServe serves the front end on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	if s.opts.Username != "" {
		log.Printf("Web server listening on http://localhost%s (changes require authentication)", addr)
	} else {
		log.Printf("Web server listening on http://localhost%s (set WEB_USERNAME/WEB_PASSWORD to protect changes)", addr)
	}

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// basicAuth protects a route with HTTP Basic Authentication when credentials are configured
func (s *Server) basicAuth(next http.Handler) http.Handler {
	if s.opts.Username == "" || s.opts.Password == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()

		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(s.opts.Username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(s.opts.Password)) == 1

		if !ok || !userMatch || !passMatch {
			w.Header().Set("WWW-Authenticate", `Basic realm="Job Portal"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// redirectHome sends the browser back to the job list
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
