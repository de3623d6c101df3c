package catalog

// Package catalog loads and serves the product catalog.

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUnavailable is returned when the catalog file is missing or malformed.
var ErrUnavailable = errors.New("catalog unavailable")

type Catalog struct {
	Products []Product `json:"products" yaml:"products"`
}

type Product struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Variants   []Variant `json:"variants" yaml:"variants"`
	MapZoneKey string    `json:"map_zone_key,omitempty" yaml:"map_zone_key,omitempty"`
}

type Variant struct {
	Size  string          `json:"size" yaml:"size"`
	Price decimal.Decimal `json:"price" yaml:"price"`
	SKU   string          `json:"sku" yaml:"sku"`
}

// FindProduct returns the product with the given id, or nil.
func (c *Catalog) FindProduct(id string) *Product {
	if c == nil {
		return nil
	}
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// Store reads the catalog from a backing file. The catalog is small, so
// the file is re-read on every Load rather than cached.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() (*Catalog, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrUnavailable, s.path, err)
	}

	var catalog Catalog
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &catalog); err != nil {
			return nil, fmt.Errorf("%w: failed to parse YAML: %w", ErrUnavailable, err)
		}
	default:
		if err := json.Unmarshal(raw, &catalog); err != nil {
			return nil, fmt.Errorf("%w: failed to parse JSON: %w", ErrUnavailable, err)
		}
	}

	return &catalog, nil
}

// Raw returns the catalog file bytes exactly as stored, for serving the
// catalog endpoint without re-encoding.
func (s *Store) Raw() ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrUnavailable, s.path, err)
	}
	return raw, nil
}
