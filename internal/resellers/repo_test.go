package resellers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	"github.com/pawmarket/pawmarket-backend/pkg/types"
)

func setupResellersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	categories := `
CREATE TABLE IF NOT EXISTS reseller_categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	tiers := `
CREATE TABLE IF NOT EXISTS reseller_tiers (
  id TEXT PRIMARY KEY,
  reseller_category_id TEXT NOT NULL,
  name TEXT NOT NULL,
  min_qty INTEGER NOT NULL,
  discount_percent TEXT NOT NULL,
  category_match TEXT NOT NULL DEFAULT '[]',
  position INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	profiles := `
CREATE TABLE IF NOT EXISTS reseller_profiles (
  id TEXT PRIMARY KEY,
  currency TEXT NOT NULL,
  reseller_category_id TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(categories).Error)
	require.NoError(t, db.Exec(tiers).Error)
	require.NoError(t, db.Exec(profiles).Error)
	return db
}

func newCategory(t *testing.T, db *gorm.DB, name string) *models.ResellerCategory {
	t.Helper()

	category := &models.ResellerCategory{
		ID:   uuid.New(),
		Name: name,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func newTier(t *testing.T, db *gorm.DB, category *models.ResellerCategory, name string, minQty, position int, pct string, categoryIDs ...string) *models.ResellerTier {
	t.Helper()

	tier := &models.ResellerTier{
		ID:                 uuid.New(),
		ResellerCategoryID: category.ID,
		Name:               name,
		MinQty:             minQty,
		DiscountPercent:    decimal.RequireFromString(pct),
		CategoryMatch:      types.NewCategoryMatch(categoryIDs...),
		Position:           position,
	}
	require.NoError(t, db.Create(tier).Error)
	return tier
}

func TestRepositoryFindProfileByID(t *testing.T) {
	db := setupResellersTestDB(t)
	repo := NewRepository(db)

	category := newCategory(t, db, "Gold Partners")
	newTier(t, db, category, "Bulk 50", 50, 1, "12.50", "cat-dogs")
	newTier(t, db, category, "Bulk 10", 10, 0, "5.00", "cat-dogs", "cat-cats")

	profile := &models.ResellerProfile{
		ID:                 uuid.New(),
		Currency:           enums.CurrencyUSD,
		ResellerCategoryID: category.ID,
	}
	require.NoError(t, db.Create(profile).Error)

	got, err := repo.FindProfileByID(context.Background(), profile.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	require.Len(t, got.Category.Tiers, 2)

	assert.Equal(t, enums.CurrencyUSD, got.Currency)
	assert.Equal(t, "Bulk 10", got.Category.Tiers[0].Name)
	assert.Equal(t, "Bulk 50", got.Category.Tiers[1].Name)
	assert.True(t, got.Category.Tiers[0].CategoryMatch.Contains("cat-cats"))
	assert.True(t, got.Category.Tiers[1].DiscountPercent.Equal(decimal.RequireFromString("12.50")))
}

func TestRepositoryFindProfileByIDMissing(t *testing.T) {
	db := setupResellersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindProfileByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListTiersByCategoryOrder(t *testing.T) {
	db := setupResellersTestDB(t)
	repo := NewRepository(db)

	category := newCategory(t, db, "Silver Partners")
	newTier(t, db, category, "Mid", 25, 1, "8.00", "cat-dogs")
	newTier(t, db, category, "Top", 100, 2, "20.00", "cat-dogs")
	newTier(t, db, category, "Entry", 5, 0, "2.00", "cat-dogs")

	rows, err := repo.ListTiersByCategory(context.Background(), category.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Entry", rows[0].Name)
	assert.Equal(t, "Mid", rows[1].Name)
	assert.Equal(t, "Top", rows[2].Name)
}
