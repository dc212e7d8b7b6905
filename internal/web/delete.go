package web

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const deleteErrorMessage = "Error deleting job. Please try again."

type deletePage struct {
	Title string
	ID    string
	Error string
}

func (s *Server) handleDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.render(w, http.StatusOK, "delete", deletePage{Title: "Confirm Deletion", ID: id})
}

// handleDelete deletes the job once and returns to the list. A failure keeps
// the confirmation page open with an alert.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	page := deletePage{Title: "Confirm Deletion", ID: idParam, Error: deleteErrorMessage}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		log.Printf("Delete failed: invalid job id %q", idParam)
		s.render(w, http.StatusNotFound, "delete", page)
		return
	}

	if err := s.api.DeleteJob(r.Context(), id); err != nil {
		log.Printf("Delete failed: %v", err)
		s.render(w, http.StatusBadGateway, "delete", page)
		return
	}

	redirectHome(w, r)
}
