package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/vitalroasters/storefront/internal/cache"
	"github.com/vitalroasters/storefront/internal/cart"
	"github.com/vitalroasters/storefront/internal/catalog"
	"github.com/vitalroasters/storefront/internal/checkout"
	"github.com/vitalroasters/storefront/internal/config"
	"github.com/vitalroasters/storefront/internal/geo"
	"github.com/vitalroasters/storefront/internal/handlers"
)

type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	CacheProvider cache.Provider
	Handlers      *handlers.Handlers
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg)

	cacheProvider, err := cache.NewProvider(cache.Config{
		Provider:              cfg.CacheProvider,
		RedisConnectionString: cfg.RedisConnectionString,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache provider: %w", err)
	}

	catalogStore := catalog.NewStore(cfg.CatalogPath)
	if cat, loadErr := catalogStore.Load(); loadErr != nil {
		logger.Warn("catalog not loadable at startup", "path", cfg.CatalogPath, "error", loadErr)
	} else if validateErr := catalog.NewValidator().Validate(cat); validateErr != nil {
		// Serving continues; checkout surfaces per-line failures itself.
		logger.Warn("catalog failed validation", "path", cfg.CatalogPath, "error", validateErr)
	}

	locator := geo.NewLocator(cfg.ServiceRadiusKm)
	detector := geo.NewDetector(cfg.GeoIPEndpoint, locator, logger.With("component", "geo_detector"))
	cartRepo := cart.NewCacheRepository(cacheProvider)

	var creator checkout.SessionCreator
	if cfg.StripeEnabled() {
		creator = checkout.NewStripeSessionCreator(cfg.StripeSecretKey, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	}
	assembler := checkout.NewAssembler(catalogStore, creator, logger.With("component", "checkout"))

	h, err := handlers.New(handlers.Dependencies{
		Config:        cfg,
		CatalogStore:  catalogStore,
		CacheProvider: cacheProvider,
		CartRepo:      cartRepo,
		Locator:       locator,
		Detector:      detector,
		Assembler:     assembler,
		Logger:        logger,
	})
	if err != nil {
		closeCacheProvider(logger, cacheProvider)
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		Config:        cfg,
		Logger:        logger,
		CacheProvider: cacheProvider,
		Handlers:      h,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.CacheProvider != nil {
		closeCacheProvider(a.Logger, a.CacheProvider)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	format := strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	case "text", "":
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level: cfg.LogLevel,
		}))
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: cfg.LogLevel}))
}

func closeCacheProvider(logger *slog.Logger, provider cache.Provider) {
	if provider == nil {
		return
	}
	if err := provider.Close(); err != nil && logger != nil {
		logger.Warn("failed to close cache provider", "error", err)
	}
}
