package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/onboard/internal/extractor"
)

// sniffBytes is how much of a file mimetype detection looks at.
const sniffBytes = 3072

// upload is one file read from a multipart form.
type upload struct {
	Filename string
	Data     []byte
}

// parseForm limits the body to files uploads plus form overhead and parses
// the multipart form. It writes the error response itself.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request, files int) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*int64(files)+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// formUpload reads the named file field of a parsed form.
func (s *Server) formUpload(w http.ResponseWriter, r *http.Request, field string) (upload, bool) {
	fhs := r.MultipartForm.File[field]
	if len(fhs) == 0 {
		jsonError(w, field+" is required", http.StatusBadRequest)
		return upload{}, false
	}
	u, err := s.readUpload(fhs[0])
	if err != nil {
		jsonError(w, err.Error(), statusForUploadError(err))
		return upload{}, false
	}
	return u, true
}

type uploadError struct {
	msg    string
	status int
}

func (e *uploadError) Error() string { return e.msg }

func statusForUploadError(err error) int {
	if ue, ok := err.(*uploadError); ok {
		return ue.status
	}
	return http.StatusInternalServerError
}

// readUpload reads one file and resolves its name. A filename without an
// extension gets one inferred from content.
func (s *Server) readUpload(fh *multipart.FileHeader) (upload, error) {
	filename := sanitizeFilename(fh.Filename)
	f, err := fh.Open()
	if err != nil {
		return upload{Filename: filename}, &uploadError{"failed to open file", http.StatusInternalServerError}
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return upload{Filename: filename}, &uploadError{"failed to read file", http.StatusInternalServerError}
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return upload{Filename: filename}, &uploadError{
			fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes),
			http.StatusRequestEntityTooLarge,
		}
	}
	head := data[:min(len(data), sniffBytes)]
	return upload{Filename: extractor.ResolveFilename(filename, head), Data: data}, nil
}

// documentText reads the named field as a document and extracts its text.
func (s *Server) documentText(w http.ResponseWriter, r *http.Request, field string) (string, bool) {
	u, ok := s.formUpload(w, r, field)
	if !ok {
		return "", false
	}
	if !extractor.IsSupportedUpload(u.Filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(u.Filename)), http.StatusBadRequest)
		return "", false
	}
	return s.extractor.ExtractText(u.Data, u.Filename), true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
