package server

import (
	"net/http"
	"strconv"
	"strings"

	"showboat/internal/api"
	"showboat/internal/logging"
)

// handleDocument serves both /document/{id}.json and /document/{id}.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if err := s.authorize(r); err != nil {
		s.writeError(w, http.StatusForbidden, err.Error())
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/document/")
	if id == "" || strings.Contains(id, "/") {
		s.writeError(w, http.StatusNotFound, "document not found")
		return
	}

	if documentID, ok := strings.CutSuffix(id, ".json"); ok {
		s.serveDocumentJSON(w, r, documentID)
		return
	}
	s.serveDocumentPage(w, r, id)
}

// serveDocumentJSON returns the full listing, or only chunks with id beyond
// the after cursor. Pop chunks are listed so clients can react to the undo
// event, but carry no rendered fields.
func (s *Server) serveDocumentJSON(w http.ResponseWriter, r *http.Request, documentID string) {
	var afterID int64
	if after := r.URL.Query().Get("after"); after != "" {
		parsed, err := strconv.ParseInt(after, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid after cursor")
			return
		}
		afterID = parsed
	}

	chunks, err := s.store.List(r.Context(), documentID, afterID)
	if err != nil {
		s.logger.Error("list chunks failed",
			logging.String(logging.FieldDocumentID, documentID),
			logging.Error(err),
		)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	converted, err := api.FromChunks(chunks, s.renderer)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.DocumentResponse{Chunks: converted})
}

type documentPageData struct {
	DocumentID   string
	JSONPath     string
	PollInterval int64
}

// serveDocumentPage renders the polling view. The page fetches the JSON
// endpoint on a fixed interval and appends anything past its cursor.
func (s *Server) serveDocumentPage(w http.ResponseWriter, r *http.Request, documentID string) {
	data := documentPageData{
		DocumentID:   documentID,
		JSONPath:     "/document/" + documentID + ".json",
		PollInterval: pollInterval.Milliseconds(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "document.html", data); err != nil {
		s.logger.Error("render document page", logging.Error(err))
	}
}
