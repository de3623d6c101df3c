package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/vitalroasters/storefront/internal/config"
	"github.com/vitalroasters/storefront/internal/handlers"
)

type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	handlers   *handlers.Handlers
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger, h *handlers.Handlers) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if h == nil {
		return nil, fmt.Errorf("handlers are required")
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		handlers: h,
	}

	router := s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return s, nil
}

func (s *Server) Run() error {
	s.logger.Info("server starting", "port", s.cfg.Port)

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Close(ctx context.Context) error {
	if s == nil || s.httpServer == nil {
		return nil
	}

	s.logger.Info("server shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) buildRouter() *mux.Router {
	h := s.handlers

	r := mux.NewRouter()
	r.Use(h.RequestLogger)
	r.Use(h.SecurityHeaders)

	r.HandleFunc("/health", h.Health).Methods("GET").Name("health")
	r.HandleFunc("/chat", h.Chat).Methods("POST").Name("chat")
	r.HandleFunc("/products", h.Products).Methods("GET").Name("products")
	r.HandleFunc("/regions", h.Regions).Methods("GET").Name("regions")
	r.HandleFunc("/regions/{name}", h.Region).Methods("GET").Name("regions.show")
	r.HandleFunc("/checkout", h.Checkout).Methods("POST").Name("checkout")

	r.HandleFunc("/location", h.Location).Methods("GET").Name("location")
	r.HandleFunc("/location", h.SetLocation).Methods("PUT").Name("location.set")
	r.HandleFunc("/location", h.ClearLocation).Methods("DELETE").Name("location.clear")

	r.HandleFunc("/cart", h.Cart).Methods("GET").Name("cart")
	r.HandleFunc("/cart", h.ClearCart).Methods("DELETE").Name("cart.clear")
	r.HandleFunc("/cart/items", h.AddCartItem).Methods("POST").Name("cart.items.add")
	r.HandleFunc("/cart/items/{id}", h.SetCartItemQuantity).Methods("PUT").Name("cart.items.set")
	r.HandleFunc("/cart/items/{id}/increment", h.IncrementCartItem).Methods("POST").Name("cart.items.increment")
	r.HandleFunc("/cart/items/{id}/decrement", h.DecrementCartItem).Methods("POST").Name("cart.items.decrement")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not Found"}`))
	})

	return r
}
