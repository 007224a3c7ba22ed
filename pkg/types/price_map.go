package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// PriceMap holds per-currency amounts for a variant, tier, or promo entry.
// Missing currencies are legal; Amount resolves them to zero.
type PriceMap map[enums.Currency]decimal.Decimal

// Amount returns the amount stored for the currency, or zero when the key is
// absent. Absent-key-means-zero is the storefront-wide default for unpriced
// currencies and is relied on by every pricing computation.
func (p PriceMap) Amount(currency enums.Currency) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	if amount, ok := p[currency]; ok {
		return amount
	}
	return decimal.Zero
}

// Has reports whether the currency key is present in the map.
func (p PriceMap) Has(currency enums.Currency) bool {
	_, ok := p[currency]
	return ok
}

// Clone returns an independent copy so callers can mutate safely.
func (p PriceMap) Clone() PriceMap {
	if p == nil {
		return nil
	}
	out := make(PriceMap, len(p))
	for currency, amount := range p {
		out[currency] = amount
	}
	return out
}

// Value implements driver.Valuer, serializing the map as JSONB.
func (p PriceMap) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	for currency, amount := range p {
		if !currency.IsValid() {
			return nil, fmt.Errorf("price map: unsupported currency %q", currency)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("price map: negative amount for %s", currency)
		}
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("price map: marshal: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for the JSONB price map column. Keys that are
// not recognized currencies are dropped so the engine only ever sees the
// closed currency set.
func (p *PriceMap) Scan(value any) error {
	if value == nil {
		*p = PriceMap{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("price map: unsupported scan type %T", value)
	}

	decoded := map[string]decimal.Decimal{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("price map: unmarshal: %w", err)
	}

	result := make(PriceMap, len(decoded))
	for key, amount := range decoded {
		currency, err := enums.ParseCurrency(key)
		if err != nil {
			continue
		}
		result[currency] = amount
	}
	*p = result
	return nil
}
