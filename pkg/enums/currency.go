package enums

import "fmt"

// Currency represents the monetary denominations the storefront can price in.
type Currency string

const (
	CurrencyIDR Currency = "IDR"
	CurrencyUSD Currency = "USD"
	CurrencySGD Currency = "SGD"
	CurrencyMYR Currency = "MYR"
)

var validCurrencies = []Currency{
	CurrencyIDR,
	CurrencyUSD,
	CurrencySGD,
	CurrencyMYR,
}

// Currencies returns every supported currency in declaration order.
func Currencies() []Currency {
	out := make([]Currency, len(validCurrencies))
	copy(out, validCurrencies)
	return out
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
