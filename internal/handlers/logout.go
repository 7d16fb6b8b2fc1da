package handlers

import (
	"net/http"
)

// SessionClearer expires session cookies.
type SessionClearer interface {
	ClearCookie(w http.ResponseWriter)
}

// NewLogoutHandler returns an HTTP handler that ends the session.
// @Summary Log out
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.Response
// @Router /api/logout [post]
func NewLogoutHandler(sessions SessionClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.ClearCookie(w)
		writeJSON(w, http.StatusOK, Response{Success: true})
	}
}
