package pricing

import (
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	"github.com/pawmarket/pawmarket-backend/pkg/types"
)

// EffectiveCurrency decides which currency a price computation runs in.
//
// Resellers with pricing data get their UI selection only when the variant is
// actually priced in it; otherwise they fall back to the currency assigned on
// their profile. Everyone else always gets the UI selection, even when the
// variant carries no price for it (the absent key then resolves to zero under
// the price-map default).
//
// resellerCurrency is nil when the shopper is not a reseller or no reseller
// pricing data exists for the product.
func EffectiveCurrency(role enums.ShopperRole, resellerCurrency *enums.Currency, selected enums.Currency, prices types.PriceMap) enums.Currency {
	if role == enums.ShopperRoleReseller && resellerCurrency != nil {
		if prices.Has(selected) {
			return selected
		}
		return *resellerCurrency
	}
	return selected
}
