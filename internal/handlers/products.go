package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vitalroasters/storefront/internal/regions"
)

// Products serves the raw catalog file.
func (h *Handlers) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := h.catalogStore.Raw()
	if err != nil {
		h.loggerFromContext(ctx).Error("failed to read catalog", "error", err)
		h.writeError(ctx, w, http.StatusInternalServerError, "Catalog not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(raw); err != nil {
		h.loggerFromContext(ctx).Error("failed to write catalog response", "error", err)
	}
}

// Regions serves the growing-region GeoJSON for the map browser.
func (h *Handlers) Regions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, regions.GrowingRegions())
}

type regionProduct struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type regionResponse struct {
	Feature  regions.Feature `json:"feature"`
	Products []regionProduct `json:"products"`
}

// Region resolves a map click: the named region's feature plus the
// catalog products grown there.
func (h *Handlers) Region(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := mux.Vars(r)["name"]

	feature := regions.FindRegion(name)
	if feature == nil {
		h.writeError(ctx, w, http.StatusNotFound, "Region not found")
		return
	}

	resp := regionResponse{Feature: *feature, Products: []regionProduct{}}
	cat, err := h.catalogStore.Load()
	if err != nil {
		// The map stays browsable without the catalog.
		h.loggerFromContext(ctx).Warn("catalog unavailable for region lookup", "error", err)
	} else {
		for _, p := range cat.Products {
			if p.MapZoneKey == name {
				resp.Products = append(resp.Products, regionProduct{ID: p.ID, Name: p.Name})
			}
		}
	}

	h.writeJSON(ctx, w, http.StatusOK, resp)
}
