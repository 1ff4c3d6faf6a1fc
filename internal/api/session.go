package api

import (
	"net/http"

	"github.com/arcadelab/parlor/internal/session"
)

// sessionCookie names the cookie carrying the player's session id.
const sessionCookie = "parlor_session"

// sessionID returns the player's session id, minting one (and setting the
// cookie) on first contact. The cookie only carries the key; all state stays
// server-side.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := session.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
