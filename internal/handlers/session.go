package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vitalroasters/storefront/internal/config"
)

const (
	sessionCookieName = "vital_session"
	sessionCookieTTL  = 7 * 24 * time.Hour
)

// sessionID returns the caller's session id, minting one (and setting the
// cookie) on first contact. Cart and location state hang off this id.
func (h *Handlers) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
			return cookie.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   SecureCookiesFromConfig(h.config),
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func SecureCookiesFromConfig(cfg *config.Config) bool {
	if cfg == nil {
		return false
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL != "" {
		if parsed, err := url.Parse(baseURL); err == nil {
			return strings.EqualFold(parsed.Scheme, "https")
		}
	}

	return cfg.Port == "443" || cfg.Port == "8443"
}
