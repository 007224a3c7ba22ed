package types

import (
	"testing"

	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

func TestPriceMapAmountMissingKey(t *testing.T) {
	t.Parallel()

	prices := PriceMap{enums.CurrencyIDR: decimal.NewFromInt(150000)}

	if got := prices.Amount(enums.CurrencyIDR); !got.Equal(decimal.NewFromInt(150000)) {
		t.Fatalf("expected 150000, got %s", got)
	}
	if got := prices.Amount(enums.CurrencyUSD); !got.IsZero() {
		t.Fatalf("expected zero for missing currency, got %s", got)
	}

	var nilMap PriceMap
	if got := nilMap.Amount(enums.CurrencySGD); !got.IsZero() {
		t.Fatalf("expected zero for nil map, got %s", got)
	}
}

func TestPriceMapScanDropsUnknownCurrencies(t *testing.T) {
	t.Parallel()

	var prices PriceMap
	if err := prices.Scan([]byte(`{"USD":"12","XYZ":"5"}`)); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(prices) != 1 {
		t.Fatalf("expected unknown currency dropped, got %v", prices)
	}
	if !prices.Amount(enums.CurrencyUSD).Equal(decimal.NewFromInt(12)) {
		t.Fatalf("expected USD 12, got %s", prices.Amount(enums.CurrencyUSD))
	}
}

func TestPriceMapValueRejectsNegative(t *testing.T) {
	t.Parallel()

	prices := PriceMap{enums.CurrencyUSD: decimal.NewFromInt(-1)}
	if _, err := prices.Value(); err == nil {
		t.Fatal("expected error for negative amount")
	}
}

func TestPriceMapRoundTrip(t *testing.T) {
	t.Parallel()

	original := PriceMap{
		enums.CurrencyIDR: decimal.NewFromInt(250000),
		enums.CurrencyUSD: decimal.RequireFromString("19.90"),
	}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}

	var scanned PriceMap
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	for currency, amount := range original {
		if !scanned.Amount(currency).Equal(amount) {
			t.Fatalf("mismatch for %s: %s vs %s", currency, scanned.Amount(currency), amount)
		}
	}
}

func TestPriceMapCloneIsIndependent(t *testing.T) {
	t.Parallel()

	original := PriceMap{enums.CurrencyUSD: decimal.NewFromInt(10)}
	clone := original.Clone()
	clone[enums.CurrencyUSD] = decimal.NewFromInt(99)

	if !original.Amount(enums.CurrencyUSD).Equal(decimal.NewFromInt(10)) {
		t.Fatal("clone mutation leaked into original")
	}
}
