package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pawmarket/pawmarket-backend/pkg/types"
)

// Promo is a time-boxed promotion over a set of product variants.
type Promo struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string         `gorm:"column:name;not null"`
	IsActive  bool           `gorm:"column:is_active;not null;default:false"`
	StartsAt  time.Time      `gorm:"column:starts_at;not null"`
	EndsAt    time.Time      `gorm:"column:ends_at;not null"`
	Products  []PromoProduct `gorm:"foreignKey:PromoID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// PromoProduct scopes a promo to one catalog product.
type PromoProduct struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PromoID   uuid.UUID      `gorm:"column:promo_id;type:uuid;not null;index"`
	ProductID uuid.UUID      `gorm:"column:product_id;type:uuid;not null;index"`
	Variants  []PromoVariant `gorm:"foreignKey:PromoProductID;constraint:OnDelete:CASCADE"`
}

// PromoVariant carries the per-currency prices precomputed when the promo was
// authored. The resolver reads them verbatim and never recomputes the discount.
type PromoVariant struct {
	ID                  uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PromoProductID      uuid.UUID      `gorm:"column:promo_product_id;type:uuid;not null;index"`
	VariantID           uuid.UUID      `gorm:"column:variant_id;type:uuid;not null;index"`
	IsActive            bool           `gorm:"column:is_active;not null;default:false"`
	OriginalPrices      types.PriceMap `gorm:"column:original_prices;type:jsonb;not null;default:'{}'"`
	DiscountPercentages types.PriceMap `gorm:"column:discount_percentages;type:jsonb;not null;default:'{}'"`
	DiscountedPrices    types.PriceMap `gorm:"column:discounted_prices;type:jsonb;not null;default:'{}'"`
}
