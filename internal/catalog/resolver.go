package catalog

// ResolveVariant picks the variant a cart line refers to. Preference
// order: exact SKU match, then exact size match, then the product's first
// variant. Matching is case-sensitive; callers relying on the fallback
// get the product's default pricing.
func ResolveVariant(product *Product, sku, size string) *Variant {
	if product == nil {
		return nil
	}

	if sku != "" {
		for i := range product.Variants {
			if product.Variants[i].SKU == sku {
				return &product.Variants[i]
			}
		}
	}

	if size != "" {
		for i := range product.Variants {
			if product.Variants[i].Size == size {
				return &product.Variants[i]
			}
		}
	}

	if len(product.Variants) == 0 {
		return nil
	}
	return &product.Variants[0]
}
