package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/MdAbdullahIbnNoor/online-group-study-server/internal/auth"
)

type SessionHandler struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewSessionHandler(secret string, tokenTTL time.Duration) *SessionHandler {
	return &SessionHandler{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// IssueToken signs the posted identity payload into a session token and sets
// it as the "token" cookie. The payload is embedded as-is; no user store is
// consulted.
func (h *SessionHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var identity map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	log.Printf("user for token: %v", identity)

	token, err := auth.GenerateJWT(identity, h.secret, h.tokenTTL)
	if err != nil {
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Logout instructs the client to discard the session cookie immediately.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	log.Print("logging out")

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
