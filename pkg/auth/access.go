package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// ErrAccessDenied is returned when the presented secret does not match.
var ErrAccessDenied = errors.New("access denied")

// SessionName is the cookie name carrying the admin session.
const SessionName = "atelier_admin"

const sessionAdminKey = "admin"

// CheckAccess reports whether candidate equals the configured shared secret.
// The comparison runs in constant time.
func CheckAccess(candidate, secret string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(secret)) == 1
}

// Login verifies candidate against secret and, on success, stores the admin
// flag in the session. The flag lives until the browser session ends or
// Logout is called; it never expires on its own.
func Login(w http.ResponseWriter, r *http.Request, store sessions.Store, candidate, secret string) error {
	if !CheckAccess(candidate, secret) {
		return ErrAccessDenied
	}
	session, err := store.Get(r, SessionName)
	if err != nil && session == nil {
		return fmt.Errorf("load session: %w", err)
	}
	session.Values[sessionAdminKey] = true
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout clears the admin flag and expires the session cookie.
func Logout(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, SessionName)
	if err != nil && session == nil {
		return fmt.Errorf("load session: %w", err)
	}
	delete(session.Values, sessionAdminKey)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// HasAdminSession reports whether the request carries a valid admin session.
func HasAdminSession(r *http.Request, store sessions.Store) (bool, error) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return false, err
	}
	ok, _ := session.Values[sessionAdminKey].(bool)
	return ok, nil
}
