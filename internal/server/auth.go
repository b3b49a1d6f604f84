package server

import "net/http"

// AuthorizeFunc gates the read/browse paths. A non-nil error denies the
// request with 403. Deployments embedding showboat behind their own actor
// or permission system plug it in here.
type AuthorizeFunc func(r *http.Request) error

// AllowAll is the default read-path authorizer.
func AllowAll(*http.Request) error { return nil }

// checkToken validates the shared write secret for the receive endpoint.
// An empty configured token disables the check. The token arrives as a
// query parameter so plain curl and form posts work without headers.
func (s *Server) checkToken(r *http.Request) bool {
	expected := s.cfg.Server.Token
	if expected == "" {
		return true
	}
	return r.URL.Query().Get("token") == expected
}
