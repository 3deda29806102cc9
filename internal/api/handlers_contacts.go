package api

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/dgallion1/onboard/internal/contacts"
	"github.com/dgallion1/onboard/internal/domain"
)

func (s *Server) handleImportContacts(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r, 1) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	u, ok := s.formUpload(w, r, "file")
	if !ok {
		return
	}
	if !contacts.IsSupported(u.Filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(u.Filename)), http.StatusBadRequest)
		return
	}

	list, err := contacts.Parse(u.Data, u.Filename)
	if err != nil {
		jsonError(w, "invalid contacts file: "+err.Error(), http.StatusBadRequest)
		return
	}
	dir := domain.ContactDirectory{Contacts: list}
	dir.Normalize()

	saved, err := s.stores.Contacts.Replace(r.Context(), dir)
	if err != nil {
		s.log.Error("store contacts", "error", err)
		jsonError(w, "failed to store record", http.StatusInternalServerError)
		return
	}
	s.log.Info("contacts imported", "filename", u.Filename, "count", len(saved.Contacts))
	writeJSON(w, http.StatusCreated, saved)
}
