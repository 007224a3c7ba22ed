package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
)

// SizeAttributeKey is the variant attribute whose values feed size filtering.
const SizeAttributeKey = "Size"

// EnrichedProduct is a product plus the aggregates derived from its variants
// for one target currency. It is computed per request and never persisted.
type EnrichedProduct struct {
	Product        models.Product
	Currency       enums.Currency
	MinPrice       decimal.Decimal
	MaxPrice       decimal.Decimal
	TotalStock     int
	Attributes     map[string][]string
	AvailableSizes []string
}

// Enrich derives the per-product summary from the variant collection.
//
// Price range only considers variants that carry a price for the target
// currency; a product with no priced variant reports 0 for both bounds.
// Attribute values are indexed as observed; sizes are additionally upper-cased
// so "m" and "M" collapse to one entry. A product without variants yields a
// fully zeroed summary, never an error.
func Enrich(product models.Product, currency enums.Currency) EnrichedProduct {
	enriched := EnrichedProduct{
		Product:        product,
		Currency:       currency,
		MinPrice:       decimal.Zero,
		MaxPrice:       decimal.Zero,
		TotalStock:     0,
		Attributes:     map[string][]string{},
		AvailableSizes: []string{},
	}

	attrSets := map[string]map[string]struct{}{}
	priced := false

	for _, variant := range product.Variants {
		enriched.TotalStock += variant.Stock

		if variant.Prices.Has(currency) {
			price := variant.Prices.Amount(currency)
			if !priced {
				enriched.MinPrice = price
				enriched.MaxPrice = price
				priced = true
			} else {
				if price.LessThan(enriched.MinPrice) {
					enriched.MinPrice = price
				}
				if price.GreaterThan(enriched.MaxPrice) {
					enriched.MaxPrice = price
				}
			}
		}

		for key, value := range variant.Attributes {
			set, ok := attrSets[key]
			if !ok {
				set = map[string]struct{}{}
				attrSets[key] = set
			}
			if key == SizeAttributeKey {
				value = strings.ToUpper(value)
			}
			set[value] = struct{}{}
		}
	}

	for key, set := range attrSets {
		values := make([]string, 0, len(set))
		for value := range set {
			values = append(values, value)
		}
		sort.Strings(values)
		enriched.Attributes[key] = values
	}

	if sizes, ok := enriched.Attributes[SizeAttributeKey]; ok {
		enriched.AvailableSizes = sizes
	}

	return enriched
}

// HasSize reports whether the product offers the size, ignoring case.
func (e EnrichedProduct) HasSize(size string) bool {
	size = strings.ToUpper(size)
	for _, candidate := range e.AvailableSizes {
		if candidate == size {
			return true
		}
	}
	return false
}
