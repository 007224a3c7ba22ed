package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	"github.com/pawmarket/pawmarket-backend/pkg/types"
)

func testProductVariant() (models.Product, models.ProductVariant) {
	variant := models.ProductVariant{
		ID:  uuid.New(),
		SKU: "HARNESS-M",
		Prices: types.PriceMap{
			enums.CurrencyIDR: decimal.NewFromInt(150000),
			enums.CurrencyUSD: decimal.NewFromInt(12),
		},
	}
	product := models.Product{
		ID:         uuid.New(),
		CategoryID: "cat1",
		Name:       "Trail Harness",
		Variants:   []models.ProductVariant{variant},
	}
	return product, variant
}

func resellerShopper(currency enums.Currency, tiers ...models.ResellerTier) Shopper {
	return Shopper{
		Role: enums.ShopperRoleReseller,
		Profile: &models.ResellerProfile{
			Currency: currency,
			Category: &models.ResellerCategory{Name: "Distributor", Tiers: tiers},
		},
	}
}

func TestResolveVariantRetailNoPromo(t *testing.T) {
	t.Parallel()

	product, variant := testProductVariant()
	shopper := Shopper{Role: enums.ShopperRoleRetail}

	got := ResolveVariant(product, variant, shopper, enums.CurrencyUSD, nil)

	if got.Currency != enums.CurrencyUSD {
		t.Fatalf("expected USD, got %s", got.Currency)
	}
	if !got.Quote.FinalPrice.Equal(decimal.NewFromInt(12)) {
		t.Fatalf("expected final price 12, got %s", got.Quote.FinalPrice)
	}
	if got.Quote.HasDiscount {
		t.Fatal("expected no discount")
	}
	if len(got.Tiers) != 0 {
		t.Fatalf("retail shoppers never get tiers, got %d", len(got.Tiers))
	}
}

func TestResolveVariantRetailWithPromo(t *testing.T) {
	t.Parallel()

	product, variant := testProductVariant()
	promos := []models.Promo{promoFor(product.ID, variant.ID, true)}
	shopper := Shopper{Role: enums.ShopperRoleRetail}

	got := ResolveVariant(product, variant, shopper, enums.CurrencyUSD, promos)

	if !got.Quote.FinalPrice.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected promo price 20, got %s", got.Quote.FinalPrice)
	}
	if !got.Quote.HasDiscount {
		t.Fatal("expected promo discount")
	}
}

func TestResolveVariantResellerGetsTiersNotPromos(t *testing.T) {
	t.Parallel()

	product, variant := testProductVariant()
	promos := []models.Promo{promoFor(product.ID, variant.ID, true)}
	shopper := resellerShopper(enums.CurrencyUSD, models.ResellerTier{
		Name:            "Bulk",
		MinQty:          10,
		DiscountPercent: decimal.NewFromInt(15),
		CategoryMatch:   types.NewCategoryMatch("cat1"),
	})

	got := ResolveVariant(product, variant, shopper, enums.CurrencyUSD, promos)

	if got.Quote.HasDiscount {
		t.Fatal("promo must never stack onto reseller pricing")
	}
	if !got.Quote.FinalPrice.Equal(decimal.NewFromInt(12)) {
		t.Fatalf("expected undiscounted base 12, got %s", got.Quote.FinalPrice)
	}
	if len(got.Tiers) != 1 {
		t.Fatalf("expected one applicable tier, got %d", len(got.Tiers))
	}
	if !got.Tiers[0].UnitPrice.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected tier unit price 10 (15%% off 12, rounded), got %s", got.Tiers[0].UnitPrice)
	}
}

func TestResolveVariantResellerCurrencyFallback(t *testing.T) {
	t.Parallel()

	product, _ := testProductVariant()
	variant := models.ProductVariant{
		ID:     uuid.New(),
		SKU:    "HARNESS-L",
		Prices: types.PriceMap{enums.CurrencyIDR: decimal.NewFromInt(150000)},
	}
	shopper := resellerShopper(enums.CurrencySGD, models.ResellerTier{
		Name:            "Bulk",
		MinQty:          5,
		DiscountPercent: decimal.NewFromInt(10),
		CategoryMatch:   types.NewCategoryMatch("cat1"),
	})

	got := ResolveVariant(product, variant, shopper, enums.CurrencyUSD, nil)

	if got.Currency != enums.CurrencySGD {
		t.Fatalf("expected fallback to assigned SGD, got %s", got.Currency)
	}
	if !got.BasePrice.IsZero() {
		t.Fatalf("expected zero base under missing-key default, got %s", got.BasePrice)
	}
}

func TestResolveVariantResellerNoMatchingTiers(t *testing.T) {
	t.Parallel()

	product, variant := testProductVariant()
	shopper := resellerShopper(enums.CurrencySGD, models.ResellerTier{
		Name:            "Other",
		MinQty:          5,
		DiscountPercent: decimal.NewFromInt(10),
		CategoryMatch:   types.NewCategoryMatch("cat9"),
	})

	got := ResolveVariant(product, variant, shopper, enums.CurrencyUSD, nil)

	// No applicable tiers means no reseller pricing data for this product, so
	// the UI selection sticks even though the profile names another currency.
	if got.Currency != enums.CurrencyUSD {
		t.Fatalf("expected UI currency without tier data, got %s", got.Currency)
	}
	if len(got.Tiers) != 0 {
		t.Fatalf("expected empty tier list, got %d", len(got.Tiers))
	}
}
