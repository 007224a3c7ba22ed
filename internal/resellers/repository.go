package resellers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
)

// Repository handles reseller profile and tier persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindProfileByID loads a reseller profile with its category and the
// category's tiers in admin-specified order.
func (r *Repository) FindProfileByID(ctx context.Context, id uuid.UUID) (*models.ResellerProfile, error) {
	var profile models.ResellerProfile
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Category.Tiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&profile, "id = ?", id).
		Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateProfile inserts a reseller profile row.
func (r *Repository) CreateProfile(ctx context.Context, profile *models.ResellerProfile) (*models.ResellerProfile, error) {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateCategory inserts a reseller category with its tiers.
func (r *Repository) CreateCategory(ctx context.Context, category *models.ResellerCategory) (*models.ResellerCategory, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// ListTiersByCategory returns the category's tiers in admin-specified order.
func (r *Repository) ListTiersByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.ResellerTier, error) {
	var rows []models.ResellerTier
	err := r.db.WithContext(ctx).
		Where("reseller_category_id = ?", categoryID).
		Order("position ASC").
		Find(&rows).
		Error
	return rows, err
}
