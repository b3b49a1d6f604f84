package server

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"showboat/internal/chunk"
	"showboat/internal/ingest"
	"showboat/internal/logging"
)

// handleReceive is the single write entry point. One successful call
// appends exactly one chunk; every rejection writes nothing.
func (s *Server) handleReceive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if !s.checkToken(r) {
		s.writeError(w, http.StatusForbidden, "Invalid token")
		return
	}

	req, err := parseReceiveForm(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.receiver.Receive(r.Context(), req); err != nil {
		if ingest.IsClientError(err) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("receive failed",
			logging.String(logging.FieldDocumentID, req.DocumentID),
			logging.String(logging.FieldCommand, req.Command),
			logging.Error(err),
		)
		s.writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

// parseReceiveForm handles both url-encoded and multipart bodies.
func parseReceiveForm(r *http.Request) (ingest.Request, error) {
	mediaType := r.Header.Get("Content-Type")
	if mediaType != "" {
		if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
			mediaType = parsed
		}
	}

	var image []byte
	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return ingest.Request{}, fmt.Errorf("parse form: %w", err)
		}
		file, _, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			data, readErr := io.ReadAll(file)
			if readErr != nil {
				return ingest.Request{}, fmt.Errorf("read image: %w", readErr)
			}
			image = data
		case errors.Is(err, http.ErrMissingFile):
		default:
			return ingest.Request{}, fmt.Errorf("read image part: %w", err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return ingest.Request{}, fmt.Errorf("parse form: %w", err)
		}
	}

	return ingest.Request{
		DocumentID: r.FormValue("uuid"),
		Command:    r.FormValue("command"),
		Fields: chunk.Fields{
			Title:    r.FormValue("title"),
			Markdown: r.FormValue("markdown"),
			Language: r.FormValue("language"),
			Input:    r.FormValue("input"),
			Output:   r.FormValue("output"),
			Filename: r.FormValue("filename"),
			Alt:      r.FormValue("alt"),
			Image:    image,
		},
	}, nil
}
