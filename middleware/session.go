package middleware

import (
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "wepink_session"
	cartIDKey   = "cart_id"
)

// SessionStore holds the signed cookie tying a browser to its cart. Each
// session owns exactly one cart document; there are no cross-session
// guarantees.
var SessionStore *sessions.CookieStore

// InitSessionStore configures the cookie store from SESSION_SECRET.
func InitSessionStore() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		panic("SESSION_SECRET is not set in environment variables")
	}
	SessionStore = sessions.NewCookieStore([]byte(secret))
	SessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30,
		HttpOnly: true,
	}
}

// CartID returns the cart id for the current session, minting one on
// first use.
func CartID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, _ := SessionStore.Get(r, sessionName)
	if id, ok := session.Values[cartIDKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	session.Values[cartIDKey] = id
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}
