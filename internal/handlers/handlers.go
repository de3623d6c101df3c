package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vitalroasters/storefront/internal/cache"
	"github.com/vitalroasters/storefront/internal/cart"
	"github.com/vitalroasters/storefront/internal/catalog"
	"github.com/vitalroasters/storefront/internal/checkout"
	"github.com/vitalroasters/storefront/internal/config"
	"github.com/vitalroasters/storefront/internal/geo"
	"github.com/vitalroasters/storefront/internal/logging"
)

const maxRequestBodyBytes = 1 << 20 // 1 MB

var requestValidator = validator.New()

// Handlers provides the storefront's HTTP request handlers.
type Handlers struct {
	config        *config.Config
	catalogStore  *catalog.Store
	cacheProvider cache.Provider
	cartRepo      cart.Repository
	locator       *geo.Locator
	detector      *geo.Detector
	assembler     *checkout.Assembler
	logger        *slog.Logger
}

type Dependencies struct {
	Config        *config.Config
	CatalogStore  *catalog.Store
	CacheProvider cache.Provider
	CartRepo      cart.Repository
	Locator       *geo.Locator
	Detector      *geo.Detector
	Assembler     *checkout.Assembler
	Logger        *slog.Logger
}

func New(deps Dependencies) (*Handlers, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if deps.Config == nil {
		return nil, fmt.Errorf("handlers dependencies: config is required")
	}
	if deps.CatalogStore == nil {
		return nil, fmt.Errorf("handlers dependencies: catalogStore is required")
	}
	if deps.CacheProvider == nil {
		return nil, fmt.Errorf("handlers dependencies: cacheProvider is required")
	}
	if deps.CartRepo == nil {
		return nil, fmt.Errorf("handlers dependencies: cartRepo is required")
	}
	if deps.Locator == nil {
		return nil, fmt.Errorf("handlers dependencies: locator is required")
	}
	if deps.Detector == nil {
		return nil, fmt.Errorf("handlers dependencies: detector is required")
	}
	if deps.Assembler == nil {
		return nil, fmt.Errorf("handlers dependencies: assembler is required")
	}

	return &Handlers{
		config:        deps.Config,
		catalogStore:  deps.CatalogStore,
		cacheProvider: deps.CacheProvider,
		cartRepo:      deps.CartRepo,
		locator:       deps.Locator,
		detector:      deps.Detector,
		assembler:     deps.Assembler,
		logger:        logger.With("component", "handlers"),
	}, nil
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)

	// The catalog file is the only backing dependency worth probing.
	if _, err := h.catalogStore.Raw(); err != nil {
		logger.Error("catalog health check failed", "error", err)
		http.Error(w, "Catalog unhealthy", http.StatusServiceUnavailable)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (h *Handlers) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, h.logger)
}

func (h *Handlers) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.loggerFromContext(ctx).Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	h.writeJSON(ctx, w, status, map[string]string{"error": message})
}
