package enums

import "fmt"

// ShopperRole distinguishes the pricing path a storefront visitor gets.
type ShopperRole string

const (
	ShopperRoleRetail   ShopperRole = "retail"
	ShopperRoleReseller ShopperRole = "reseller"
)

var validShopperRoles = []ShopperRole{
	ShopperRoleRetail,
	ShopperRoleReseller,
}

// String implements fmt.Stringer.
func (r ShopperRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ShopperRole.
func (r ShopperRole) IsValid() bool {
	for _, candidate := range validShopperRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseShopperRole converts raw input into a ShopperRole.
func ParseShopperRole(value string) (ShopperRole, error) {
	for _, candidate := range validShopperRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shopper role %q", value)
}
