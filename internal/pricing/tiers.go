package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
)

var oneHundred = decimal.NewFromInt(100)

// TierQuote is one applicable reseller tier priced against a base price.
type TierQuote struct {
	TierName        string
	MinimumQuantity int
	DiscountPercent decimal.Decimal
	UnitPrice       decimal.Decimal
}

// ResolveTiers filters a reseller's tiers to those matching the product's
// category and prices each against basePrice.
//
// Input order is preserved: admins order tiers for display, so the resolver
// must not re-sort by quantity. Tiers whose category match set does not
// contain the product's category are dropped silently.
func ResolveTiers(tiers []models.ResellerTier, categoryID string, basePrice decimal.Decimal) []TierQuote {
	quotes := make([]TierQuote, 0, len(tiers))
	for _, tier := range tiers {
		if !tier.CategoryMatch.Contains(categoryID) {
			continue
		}
		quotes = append(quotes, TierQuote{
			TierName:        tier.Name,
			MinimumQuantity: tier.MinQty,
			DiscountPercent: tier.DiscountPercent,
			UnitPrice:       tierUnitPrice(basePrice, tier.DiscountPercent),
		})
	}
	return quotes
}

// tierUnitPrice applies the percentage discount and rounds to whole units.
// Rounding half away from zero on a fractional base can land above the base
// for tiny discounts, so the result is capped at the base price.
func tierUnitPrice(basePrice, discountPercent decimal.Decimal) decimal.Decimal {
	discount := basePrice.Mul(discountPercent).Div(oneHundred)
	return decimal.Min(basePrice, basePrice.Sub(discount).Round(UnitPriceScale))
}
