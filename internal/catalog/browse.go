package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
)

// FilterSpec narrows the catalog grid. Zero-valued knobs are skipped.
type FilterSpec struct {
	SearchText  string
	CategoryIDs []string
	Sizes       []string
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	StockStatus *enums.StockStatus
}

// Browse runs the fixed filter-sort pipeline over the product list for one
// target currency and returns the ordered, enriched survivors. Each step
// narrows the previous step's output; pagination is the caller's concern.
//
// The output is always a subset of the input and the input slice is never
// mutated. Sorting is stable so ties keep their prior relative order.
func Browse(products []models.Product, spec FilterSpec, sortKey *enums.SortKey, currency enums.Currency) []EnrichedProduct {
	enriched := make([]EnrichedProduct, 0, len(products))
	for _, product := range products {
		enriched = append(enriched, Enrich(product, currency))
	}

	enriched = filterBySearch(enriched, spec.SearchText)
	enriched = filterByCategories(enriched, spec.CategoryIDs)
	enriched = filterBySizes(enriched, spec.Sizes)
	enriched = filterByPriceRange(enriched, spec.PriceMin, spec.PriceMax)
	enriched = filterByStock(enriched, spec.StockStatus)

	if sortKey != nil {
		sortProducts(enriched, *sortKey)
	}
	return enriched
}

func filterBySearch(in []EnrichedProduct, searchText string) []EnrichedProduct {
	needle := strings.ToLower(strings.TrimSpace(searchText))
	if needle == "" {
		return in
	}
	out := in[:0]
	for _, item := range in {
		if strings.Contains(strings.ToLower(item.Product.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}

func filterByCategories(in []EnrichedProduct, categoryIDs []string) []EnrichedProduct {
	if len(categoryIDs) == 0 {
		return in
	}
	allowed := make(map[string]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		allowed[id] = struct{}{}
	}
	out := in[:0]
	for _, item := range in {
		if _, ok := allowed[item.Product.CategoryID]; ok {
			out = append(out, item)
		}
	}
	return out
}

func filterBySizes(in []EnrichedProduct, sizes []string) []EnrichedProduct {
	if len(sizes) == 0 {
		return in
	}
	out := in[:0]
	for _, item := range in {
		for _, size := range sizes {
			if item.HasSize(size) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// filterByPriceRange evaluates the range against MinPrice, matching what the
// grid displays as the "from" price.
func filterByPriceRange(in []EnrichedProduct, min, max *decimal.Decimal) []EnrichedProduct {
	if min == nil && max == nil {
		return in
	}
	out := in[:0]
	for _, item := range in {
		if min != nil && item.MinPrice.LessThan(*min) {
			continue
		}
		if max != nil && item.MinPrice.GreaterThan(*max) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func filterByStock(in []EnrichedProduct, status *enums.StockStatus) []EnrichedProduct {
	if status == nil {
		return in
	}
	out := in[:0]
	for _, item := range in {
		switch *status {
		case enums.StockStatusReady:
			if item.TotalStock >= 1 {
				out = append(out, item)
			}
		case enums.StockStatusPreOrder:
			if item.TotalStock < 1 {
				out = append(out, item)
			}
		default:
			out = append(out, item)
		}
	}
	return out
}

func sortProducts(items []EnrichedProduct, key enums.SortKey) {
	switch key {
	case enums.SortKeyPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].MinPrice.LessThan(items[j].MinPrice)
		})
	case enums.SortKeyPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].MinPrice.GreaterThan(items[j].MinPrice)
		})
	case enums.SortKeyNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Product.CreatedAt.After(items[j].Product.CreatedAt)
		})
	case enums.SortKeyName:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Product.Name < items[j].Product.Name
		})
	}
}
