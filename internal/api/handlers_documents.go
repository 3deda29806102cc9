package api

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/dgallion1/onboard/internal/extractor"
	"github.com/dgallion1/onboard/internal/pipeline"
)

// handleExtractText extracts the text of every uploaded "files" entry over
// the worker pool. Results keep upload order; rejected files carry an error.
func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r, s.cfg.MaxBatchFiles) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	fhs := r.MultipartForm.File["files"]
	if len(fhs) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}
	if len(fhs) > s.cfg.MaxBatchFiles {
		jsonError(w, fmt.Sprintf("too many files: %d (max %d)", len(fhs), s.cfg.MaxBatchFiles), http.StatusBadRequest)
		return
	}

	results := make([]pipeline.Result, len(fhs))
	var files []pipeline.File
	var slots []int
	for i, fh := range fhs {
		u, err := s.readUpload(fh)
		switch {
		case err != nil:
			results[i] = pipeline.Result{Filename: u.Filename, Error: err.Error()}
		case !extractor.IsSupportedUpload(u.Filename) && !extractor.IsImage(u.Filename):
			results[i] = pipeline.Result{
				Filename: u.Filename,
				Error:    fmt.Sprintf("unsupported file type: %s", filepath.Ext(u.Filename)),
			}
		default:
			files = append(files, pipeline.File{Name: u.Filename, Data: u.Data})
			slots = append(slots, i)
		}
	}

	for j, res := range s.pool.ExtractAll(r.Context(), files) {
		results[slots[j]] = res
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}
