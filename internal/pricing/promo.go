package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
)

// ResolvePromo returns the quote for a variant given the promos that are
// already filtered to currently-active by the caller (flag set and now within
// the window). The resolver trusts that pre-filtering and does not re-check
// time windows itself.
//
// Reseller pricing and promo pricing never stack: a reseller always gets the
// base price back unchanged. For everyone else the first promo in iteration
// order carrying an active entry for the variant wins; callers establish
// precedence by ordering the slice (the promos service supplies
// newest-created-first). All amounts are read from the entry's authored
// per-currency values, never recomputed.
func ResolvePromo(basePrice decimal.Decimal, currency enums.Currency, productID, variantID uuid.UUID, activePromos []models.Promo, isReseller bool) Quote {
	if isReseller {
		return baseQuote(basePrice)
	}

	for _, promo := range activePromos {
		for _, product := range promo.Products {
			if product.ProductID != productID {
				continue
			}
			for _, entry := range product.Variants {
				if entry.VariantID != variantID || !entry.IsActive {
					continue
				}
				original := entry.OriginalPrices.Amount(currency)
				percentage := entry.DiscountPercentages.Amount(currency)
				return Quote{
					FinalPrice:         entry.DiscountedPrices.Amount(currency),
					OriginalPrice:      &original,
					HasDiscount:        percentage.GreaterThan(decimal.Zero),
					DiscountPercentage: percentage,
				}
			}
		}
	}

	return baseQuote(basePrice)
}
