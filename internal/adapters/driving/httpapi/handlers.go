package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oldgaffers/fetch-doc/internal/core/domain"
	"github.com/oldgaffers/fetch-doc/internal/logger"
)

// handleGetDoc serves GET /doc?doc_name=<name> with the rendered HTML.
func (s *Server) handleGetDoc(w http.ResponseWriter, r *http.Request) {
	docName := r.URL.Query().Get("doc_name")

	doc, err := s.document.FetchHTML(r.Context(), docName)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	setCORSHeaders(w)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc.HTML))
}

// writeError maps the domain error taxonomy to response status codes:
// invalid input 400, no match 404, denied access 403, everything else
// (unsupported structural input, unexpected collaborator failure) 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrPermission):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		logger.Warn("request failed: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	setCORSHeaders(w)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}) //nolint:errcheck
}

// setCORSHeaders allows browser callers from any origin.
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
}
