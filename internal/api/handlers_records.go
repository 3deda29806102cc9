package api

import (
	"errors"
	"net/http"

	"github.com/dgallion1/onboard/internal/store"
)

// handleExtract parses the uploaded "file" into a record and replaces the
// stored one.
func handleExtract[T any](s *Server, st store.Latest[T], parse func(string) T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.parseForm(w, r, 1) {
			return
		}
		defer r.MultipartForm.RemoveAll()

		text, ok := s.documentText(w, r, "file")
		if !ok {
			return
		}
		saved, err := st.Replace(r.Context(), parse(text))
		if err != nil {
			s.log.Error("store record", "path", r.URL.Path, "error", err)
			jsonError(w, "failed to store record", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, saved)
	}
}

func handleLatest[T any](st store.Latest[T], kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := st.Latest(r.Context())
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "no "+kind+" found", http.StatusNotFound)
			return
		}
		if err != nil {
			jsonError(w, "failed to load "+kind+": "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func handleDeleteAll[T any](st store.Latest[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.DeleteAll(r.Context()); err != nil {
			jsonError(w, "failed to delete: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleDeleteLatest[T any](st store.Latest[T], kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := st.DeleteLatest(r.Context())
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "no "+kind+" found", http.StatusNotFound)
			return
		}
		if err != nil {
			jsonError(w, "failed to delete: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleExtractWelcome parses the CEO and HR letters uploaded together.
func (s *Server) handleExtractWelcome(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r, 2) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	ceoText, ok := s.documentText(w, r, "ceo_file")
	if !ok {
		return
	}
	hrText, ok := s.documentText(w, r, "hr_file")
	if !ok {
		return
	}

	msg := s.parser.ParseWelcomeMessage(ceoText, hrText)
	msg.Ceo.ImageURL = r.FormValue("ceo_image_url")
	msg.Hr.ImageURL = r.FormValue("hr_image_url")

	saved, err := s.stores.Welcome.Replace(r.Context(), msg)
	if err != nil {
		s.log.Error("store welcome messages", "error", err)
		jsonError(w, "failed to store record", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}
