package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	"github.com/pawmarket/pawmarket-backend/pkg/types"
)

func promoFor(productID, variantID uuid.UUID, active bool) models.Promo {
	return models.Promo{
		ID:   uuid.New(),
		Name: "Flash Sale",
		Products: []models.PromoProduct{{
			ProductID: productID,
			Variants: []models.PromoVariant{{
				VariantID:           variantID,
				IsActive:            active,
				OriginalPrices:      types.PriceMap{enums.CurrencyUSD: decimal.NewFromInt(25)},
				DiscountPercentages: types.PriceMap{enums.CurrencyUSD: decimal.NewFromInt(20)},
				DiscountedPrices:    types.PriceMap{enums.CurrencyUSD: decimal.NewFromInt(20)},
			}},
		}},
	}
}

func TestResolvePromoMatchingEntry(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	variantID := uuid.New()
	promos := []models.Promo{promoFor(productID, variantID, true)}

	quote := ResolvePromo(decimal.NewFromInt(25), enums.CurrencyUSD, productID, variantID, promos, false)

	if !quote.FinalPrice.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected final price 20, got %s", quote.FinalPrice)
	}
	if quote.OriginalPrice == nil || !quote.OriginalPrice.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected original price 25, got %v", quote.OriginalPrice)
	}
	if !quote.HasDiscount {
		t.Fatal("expected discount to apply")
	}
	if !quote.DiscountPercentage.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected 20%% discount, got %s", quote.DiscountPercentage)
	}
}

func TestResolvePromoResellerShortCircuits(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	variantID := uuid.New()
	promos := []models.Promo{promoFor(productID, variantID, true)}

	quote := ResolvePromo(decimal.NewFromInt(25), enums.CurrencyUSD, productID, variantID, promos, true)

	if !quote.FinalPrice.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected base price back for reseller, got %s", quote.FinalPrice)
	}
	if quote.HasDiscount || quote.OriginalPrice != nil {
		t.Fatalf("expected no discount for reseller, got %+v", quote)
	}
}

func TestResolvePromoNoMatchFallsThrough(t *testing.T) {
	t.Parallel()

	promos := []models.Promo{promoFor(uuid.New(), uuid.New(), true)}

	quote := ResolvePromo(decimal.NewFromInt(12), enums.CurrencyUSD, uuid.New(), uuid.New(), promos, false)

	if !quote.FinalPrice.Equal(decimal.NewFromInt(12)) {
		t.Fatalf("expected base price 12, got %s", quote.FinalPrice)
	}
	if quote.HasDiscount {
		t.Fatal("expected no discount without a matching entry")
	}
	if !quote.DiscountPercentage.IsZero() {
		t.Fatalf("expected zero percentage, got %s", quote.DiscountPercentage)
	}
}

func TestResolvePromoSkipsInactiveEntry(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	variantID := uuid.New()
	promos := []models.Promo{promoFor(productID, variantID, false)}

	quote := ResolvePromo(decimal.NewFromInt(25), enums.CurrencyUSD, productID, variantID, promos, false)

	if quote.HasDiscount {
		t.Fatal("inactive entry must not discount")
	}
}

func TestResolvePromoFirstMatchWins(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	variantID := uuid.New()

	first := promoFor(productID, variantID, true)
	second := promoFor(productID, variantID, true)
	second.Products[0].Variants[0].DiscountedPrices = types.PriceMap{enums.CurrencyUSD: decimal.NewFromInt(1)}

	quote := ResolvePromo(decimal.NewFromInt(25), enums.CurrencyUSD, productID, variantID, []models.Promo{first, second}, false)

	if !quote.FinalPrice.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected first promo to win, got %s", quote.FinalPrice)
	}
}

func TestResolvePromoZeroPercentEntryIsNotADiscount(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	variantID := uuid.New()
	promo := promoFor(productID, variantID, true)
	promo.Products[0].Variants[0].DiscountPercentages = types.PriceMap{enums.CurrencyUSD: decimal.Zero}

	quote := ResolvePromo(decimal.NewFromInt(25), enums.CurrencyUSD, productID, variantID, []models.Promo{promo}, false)

	if quote.HasDiscount {
		t.Fatal("zero percentage must report hasDiscount=false")
	}
}
