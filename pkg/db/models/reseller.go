package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	"github.com/pawmarket/pawmarket-backend/pkg/types"
)

// ResellerCategory groups the discount tiers granted to a class of resellers.
type ResellerCategory struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string         `gorm:"column:name;not null"`
	Tiers     []ResellerTier `gorm:"foreignKey:ResellerCategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// ResellerTier is one quantity-gated discount rule. Position preserves the
// admin-specified evaluation/display order; it is not sorted by MinQty.
type ResellerTier struct {
	ID                 uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ResellerCategoryID uuid.UUID           `gorm:"column:reseller_category_id;type:uuid;not null;index"`
	Name               string              `gorm:"column:name;not null"`
	MinQty             int                 `gorm:"column:min_qty;not null"`
	DiscountPercent    decimal.Decimal     `gorm:"column:discount_percent;type:numeric(5,2);not null"`
	CategoryMatch      types.CategoryMatch `gorm:"column:category_match;type:jsonb;not null;default:'[]'"`
	Position           int                 `gorm:"column:position;not null;default:0"`
	CreatedAt          time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// ResellerProfile binds a reseller account to its currency and tier category.
type ResellerProfile struct {
	ID                 uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Currency           enums.Currency    `gorm:"column:currency;not null"`
	ResellerCategoryID uuid.UUID         `gorm:"column:reseller_category_id;type:uuid;not null;index"`
	Category           *ResellerCategory `gorm:"foreignKey:ResellerCategoryID"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
