package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/pawmarket/pawmarket-backend/pkg/types"
)

// Product represents a catalog listing. Variants carry the sellable units.
type Product struct {
	ID                uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID        string           `gorm:"column:category_id;not null;index"`
	Name              string           `gorm:"column:name;not null"`
	MOQ               int              `gorm:"column:moq;not null;default:1"`
	ExclusiveEnabled  bool             `gorm:"column:exclusive_enabled;not null;default:false"`
	ExcludedCountries pq.StringArray   `gorm:"column:excluded_countries;type:text[]"`
	Tags              pq.StringArray   `gorm:"column:tags;type:text[]"`
	Variants          []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductVariant is one sellable unit of a product with per-currency prices.
type ProductVariant struct {
	ID         uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID  uuid.UUID          `gorm:"column:product_id;type:uuid;not null;index"`
	SKU        string             `gorm:"column:sku;not null"`
	Attributes types.AttributeMap `gorm:"column:attributes;type:jsonb;not null;default:'{}'"`
	Prices     types.PriceMap     `gorm:"column:prices;type:jsonb;not null;default:'{}'"`
	Stock      int                `gorm:"column:stock;not null;default:0"`
	Position   int                `gorm:"column:position;not null;default:0"`
	CreatedAt  time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
