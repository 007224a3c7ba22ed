package pricing

import (
	"github.com/shopspring/decimal"
)

// UnitPriceScale is the number of decimal places tier unit prices are rounded
// to. Storefront prices are whole currency units; rounding is half away from
// zero (shopspring's Round).
const UnitPriceScale = 0

// Quote is the price a shopper actually sees for one variant in one currency.
type Quote struct {
	FinalPrice         decimal.Decimal
	OriginalPrice      *decimal.Decimal
	HasDiscount        bool
	DiscountPercentage decimal.Decimal
}

// baseQuote is the undiscounted quote used whenever no promo applies.
func baseQuote(basePrice decimal.Decimal) Quote {
	return Quote{
		FinalPrice:         basePrice,
		OriginalPrice:      nil,
		HasDiscount:        false,
		DiscountPercentage: decimal.Zero,
	}
}
