package promos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
)

// Repository handles promotion persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns promos whose active flag is set and whose window covers
// the supplied instant, newest-created first. Product and variant entries are
// preloaded so the pricing path never goes back to the database per variant.
func (r *Repository) ListActive(ctx context.Context, at time.Time) ([]models.Promo, error) {
	var rows []models.Promo
	err := r.db.WithContext(ctx).
		Preload("Products").
		Preload("Products.Variants").
		Where("is_active = ? AND starts_at <= ? AND ends_at >= ?", true, at, at).
		Order("created_at DESC").
		Find(&rows).
		Error
	return rows, err
}

// FindByID loads a single promo with its product and variant entries.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Promo, error) {
	var promo models.Promo
	err := r.db.WithContext(ctx).
		Preload("Products").
		Preload("Products.Variants").
		First(&promo, "id = ?", id).
		Error
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

// CreatePromo inserts a promo with its product and variant entries.
func (r *Repository) CreatePromo(ctx context.Context, promo *models.Promo) (*models.Promo, error) {
	if err := r.db.WithContext(ctx).Create(promo).Error; err != nil {
		return nil, err
	}
	return promo, nil
}
