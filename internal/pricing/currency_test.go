package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	"github.com/pawmarket/pawmarket-backend/pkg/types"
)

func TestEffectiveCurrencyRetailAlwaysUISelection(t *testing.T) {
	t.Parallel()

	prices := types.PriceMap{enums.CurrencyIDR: decimal.NewFromInt(150000)}

	got := EffectiveCurrency(enums.ShopperRoleRetail, nil, enums.CurrencyUSD, prices)
	if got != enums.CurrencyUSD {
		t.Fatalf("expected UI selection for retail, got %s", got)
	}
}

func TestEffectiveCurrencyResellerUsesSelectionWhenPriced(t *testing.T) {
	t.Parallel()

	assigned := enums.CurrencySGD
	prices := types.PriceMap{
		enums.CurrencyUSD: decimal.NewFromInt(12),
		enums.CurrencySGD: decimal.NewFromInt(16),
	}

	got := EffectiveCurrency(enums.ShopperRoleReseller, &assigned, enums.CurrencyUSD, prices)
	if got != enums.CurrencyUSD {
		t.Fatalf("expected UI selection when variant priced in it, got %s", got)
	}
}

func TestEffectiveCurrencyResellerFallsBackToAssigned(t *testing.T) {
	t.Parallel()

	assigned := enums.CurrencySGD
	prices := types.PriceMap{enums.CurrencyIDR: decimal.NewFromInt(150000)}

	got := EffectiveCurrency(enums.ShopperRoleReseller, &assigned, enums.CurrencyUSD, prices)
	if got != enums.CurrencySGD {
		t.Fatalf("expected fallback to assigned currency, got %s", got)
	}
	// The assigned currency is also unpriced; the quote then resolves to zero.
	if !prices.Amount(got).IsZero() {
		t.Fatalf("expected zero price under missing-key default, got %s", prices.Amount(got))
	}
}

func TestEffectiveCurrencyResellerWithoutPricingData(t *testing.T) {
	t.Parallel()

	prices := types.PriceMap{enums.CurrencyIDR: decimal.NewFromInt(150000)}

	got := EffectiveCurrency(enums.ShopperRoleReseller, nil, enums.CurrencyUSD, prices)
	if got != enums.CurrencyUSD {
		t.Fatalf("expected UI selection when no reseller data, got %s", got)
	}
}
