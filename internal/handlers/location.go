package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vitalroasters/storefront/internal/cache"
	"github.com/vitalroasters/storefront/internal/geo"
)

const locationTTL = 24 * time.Hour

// Location returns the session's cached location, detecting it from the
// client IP on first request. Detection failures degrade to an empty
// location rather than an error.
func (h *Handlers) Location(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)
	sessionID := h.sessionID(w, r)

	if cached, ok := h.cachedLocation(r, sessionID); ok {
		h.writeJSON(ctx, w, http.StatusOK, cached)
		return
	}

	loc := h.detector.Detect(ctx, clientIP(r))
	if err := h.storeLocation(r, sessionID, loc); err != nil {
		logger.Warn("failed to cache detected location", "error", err)
	}

	h.writeJSON(ctx, w, http.StatusOK, loc)
}

// SetLocation stores a manual location override. The service-area flag is
// always recomputed, never taken from the request.
func (h *Handlers) SetLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var loc geo.Location
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		h.writeError(ctx, w, http.StatusBadRequest, "Invalid request")
		return
	}

	sessionID := h.sessionID(w, r)
	loc = h.locator.Resolve(loc)
	if err := h.storeLocation(r, sessionID, loc); err != nil {
		h.loggerFromContext(ctx).Error("failed to store location override", "error", err)
		h.writeError(ctx, w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, loc)
}

// ClearLocation drops the session's cached location.
func (h *Handlers) ClearLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := h.sessionID(w, r)

	if err := h.cacheProvider.Delete(ctx, cache.LocationKey(sessionID)); err != nil {
		h.loggerFromContext(ctx).Error("failed to clear cached location", "error", err)
		h.writeError(ctx, w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) cachedLocation(r *http.Request, sessionID string) (geo.Location, bool) {
	ctx := r.Context()

	raw, err := h.cacheProvider.Get(ctx, cache.LocationKey(sessionID))
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			h.loggerFromContext(ctx).Warn("failed to read cached location", "error", err)
		}
		return geo.Location{}, false
	}

	var loc geo.Location
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return geo.Location{}, false
	}

	// The stored flag might predate a radius change.
	return h.locator.Resolve(loc), true
}

func (h *Handlers) storeLocation(r *http.Request, sessionID string, loc geo.Location) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return err
	}
	return h.cacheProvider.Set(r.Context(), cache.LocationKey(sessionID), string(raw), locationTTL)
}
