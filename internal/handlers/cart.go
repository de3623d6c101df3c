package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vitalroasters/storefront/internal/cart"
)

type cartResponse struct {
	Items []cart.Line `json:"items"`
	Count int         `json:"count"`
}

type addItemRequest struct {
	Name string `json:"name" validate:"required"`
	ID   string `json:"id,omitempty"`
}

type setQuantityRequest struct {
	Qty int `json:"qty"`
}

// Cart returns the session's cart lines.
func (h *Handlers) Cart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := h.sessionID(w, r)

	lines, err := h.cartRepo.Load(ctx, sessionID)
	if err != nil {
		h.loggerFromContext(ctx).Error("failed to load cart", "error", err)
		h.writeError(ctx, w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	agg := cart.NewAggregator(lines)
	h.writeJSON(ctx, w, http.StatusOK, cartResponse{Items: agg.Lines(), Count: agg.Count()})
}

// AddCartItem inserts a line or increments an existing one.
func (h *Handlers) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(ctx, w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := requestValidator.Struct(&req); err != nil {
		h.writeError(ctx, w, http.StatusBadRequest, "Name is required")
		return
	}

	h.mutateCart(w, r, func(agg *cart.Aggregator) {
		agg.Add(req.Name, req.ID)
	})
}

// SetCartItemQuantity sets a line's quantity, clamped at zero.
func (h *Handlers) SetCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(ctx, w, http.StatusBadRequest, "Invalid request")
		return
	}

	id := mux.Vars(r)["id"]
	h.mutateCart(w, r, func(agg *cart.Aggregator) {
		agg.SetQuantity(id, req.Qty)
	})
}

// IncrementCartItem adds one to a line's quantity.
func (h *Handlers) IncrementCartItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.mutateCart(w, r, func(agg *cart.Aggregator) {
		agg.Increment(id)
	})
}

// DecrementCartItem subtracts one from a line's quantity, flooring at zero.
func (h *Handlers) DecrementCartItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.mutateCart(w, r, func(agg *cart.Aggregator) {
		agg.Decrement(id)
	})
}

// ClearCart removes the session's cart.
func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := h.sessionID(w, r)

	if err := h.cartRepo.Clear(ctx, sessionID); err != nil {
		h.loggerFromContext(ctx).Error("failed to clear cart", "error", err)
		h.writeError(ctx, w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, cartResponse{Items: []cart.Line{}, Count: 0})
}

func (h *Handlers) mutateCart(w http.ResponseWriter, r *http.Request, mutate func(*cart.Aggregator)) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)
	sessionID := h.sessionID(w, r)

	lines, err := h.cartRepo.Load(ctx, sessionID)
	if err != nil {
		logger.Error("failed to load cart", "error", err)
		h.writeError(ctx, w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	agg := cart.NewAggregator(lines)
	mutate(agg)

	if err := h.cartRepo.Save(ctx, sessionID, agg.Lines()); err != nil {
		logger.Error("failed to save cart", "error", err)
		h.writeError(ctx, w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, cartResponse{Items: agg.Lines(), Count: agg.Count()})
}
