package catalog

import (
	"fmt"
	"strings"
)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Validate(catalog *Catalog) error {
	if catalog == nil {
		return fmt.Errorf("catalog is required")
	}
	if len(catalog.Products) == 0 {
		return fmt.Errorf("at least one product is required")
	}

	ids := make(map[string]bool)
	for i, product := range catalog.Products {
		if err := v.validateProduct(&product); err != nil {
			return fmt.Errorf("product %d validation failed: %w", i, err)
		}

		if ids[product.ID] {
			return fmt.Errorf("duplicate product id: %s", product.ID)
		}
		ids[product.ID] = true
	}

	return nil
}

func (v *Validator) validateProduct(product *Product) error {
	if strings.TrimSpace(product.ID) == "" {
		return fmt.Errorf("product id is required")
	}
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if len(product.Variants) == 0 {
		return fmt.Errorf("at least one variant is required")
	}

	skus := make(map[string]bool)
	for i, variant := range product.Variants {
		if strings.TrimSpace(variant.SKU) == "" {
			return fmt.Errorf("variant %d: sku is required", i)
		}
		if skus[variant.SKU] {
			return fmt.Errorf("duplicate SKU: %s", variant.SKU)
		}
		skus[variant.SKU] = true

		if variant.Price.IsNegative() {
			return fmt.Errorf("variant %s: price must be non-negative", variant.SKU)
		}
	}

	return nil
}
