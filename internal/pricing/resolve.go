package pricing

import (
	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Shopper is the role-resolved identity a pricing call runs for.
type Shopper struct {
	Role    enums.ShopperRole
	Profile *models.ResellerProfile
}

// IsReseller reports whether the reseller pricing path applies at all.
func (s Shopper) IsReseller() bool {
	return s.Role == enums.ShopperRoleReseller && s.Profile != nil
}

// VariantPricing is the full quote for one variant: the currency everything
// was computed in, the undiscounted base, the resolved quote, and the tier
// table when the reseller path applied.
type VariantPricing struct {
	Currency  enums.Currency
	BasePrice decimal.Decimal
	Quote     Quote
	Tiers     []TierQuote
}

// ResolveVariant runs the whole resolution pipeline for one variant: pick the
// effective currency, read the base price (absent key resolves to zero), then
// take exactly one of the two discount paths. Reseller tiers and promos are
// mutually exclusive; a reseller with applicable tiers gets the tier table and
// an undiscounted quote, everyone else goes through promo resolution.
func ResolveVariant(product models.Product, variant models.ProductVariant, shopper Shopper, selected enums.Currency, activePromos []models.Promo) VariantPricing {
	var matched []models.ResellerTier
	if shopper.IsReseller() && shopper.Profile.Category != nil {
		for _, tier := range shopper.Profile.Category.Tiers {
			if tier.CategoryMatch.Contains(product.CategoryID) {
				matched = append(matched, tier)
			}
		}
	}

	var resellerCurrency *enums.Currency
	if len(matched) > 0 {
		currency := shopper.Profile.Currency
		resellerCurrency = &currency
	}

	currency := EffectiveCurrency(shopper.Role, resellerCurrency, selected, variant.Prices)
	basePrice := variant.Prices.Amount(currency)

	pricing := VariantPricing{
		Currency:  currency,
		BasePrice: basePrice,
	}

	if shopper.IsReseller() {
		pricing.Quote = baseQuote(basePrice)
		pricing.Tiers = ResolveTiers(matched, product.CategoryID, basePrice)
		return pricing
	}

	pricing.Quote = ResolvePromo(basePrice, currency, product.ID, variant.ID, activePromos, false)
	return pricing
}
