package server

import (
	"net/http"
	"time"

	"showboat/internal/logging"
)

type indexDocument struct {
	DocumentID string
	ChunkCount int
	FirstChunk string
	LastChunk  string
}

type indexPageData struct {
	Documents  []indexDocument
	ReceiveURL string
}

// handleIndex lists known documents, most recently active first, with setup
// instructions for pointing a client at this deployment.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if err := s.authorize(r); err != nil {
		s.writeError(w, http.StatusForbidden, err.Error())
		return
	}

	summaries, err := s.store.Summaries(r.Context())
	if err != nil {
		s.logger.Error("document summaries failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	data := indexPageData{
		Documents:  make([]indexDocument, 0, len(summaries)),
		ReceiveURL: s.receiveURL(r),
	}
	for _, summary := range summaries {
		data.Documents = append(data.Documents, indexDocument{
			DocumentID: summary.DocumentID,
			ChunkCount: summary.ChunkCount,
			FirstChunk: formatIndexTime(summary.FirstChunk),
			LastChunk:  formatIndexTime(summary.LastChunk),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("render index page", logging.Error(err))
	}
}

// receiveURL builds the SHOWBOAT_URL value for the setup instructions,
// embedding the token when one is configured.
func (s *Server) receiveURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	url := scheme + "://" + r.Host + "/receive"
	if s.cfg.Server.Token != "" {
		url += "?token=" + s.cfg.Server.Token
	}
	return url
}

func formatIndexTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
