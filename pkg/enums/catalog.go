package enums

import "fmt"

// SortKey enumerates the orderings the catalog grid supports.
type SortKey string

const (
	SortKeyPriceLow  SortKey = "price-low"
	SortKeyPriceHigh SortKey = "price-high"
	SortKeyNewest    SortKey = "newest"
	SortKeyName      SortKey = "name"
)

var validSortKeys = []SortKey{
	SortKeyPriceLow,
	SortKeyPriceHigh,
	SortKeyNewest,
	SortKeyName,
}

// String implements fmt.Stringer.
func (k SortKey) String() string {
	return string(k)
}

// IsValid reports whether the value is a known SortKey.
func (k SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}

// StockStatus partitions products by whether any variant is on hand.
type StockStatus string

const (
	StockStatusReady    StockStatus = "Ready"
	StockStatusPreOrder StockStatus = "Pre-Order"
)

var validStockStatuses = []StockStatus{
	StockStatusReady,
	StockStatusPreOrder,
}

// String implements fmt.Stringer.
func (s StockStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StockStatus.
func (s StockStatus) IsValid() bool {
	for _, candidate := range validStockStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockStatus converts raw input into a StockStatus.
func ParseStockStatus(value string) (StockStatus, error) {
	for _, candidate := range validStockStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock status %q", value)
}
