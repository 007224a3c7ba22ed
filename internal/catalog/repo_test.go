package catalog

import (
	"context"
	"testing"
	"time"

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

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// ListProducts reads the whole table, so each test gets its own
	// in-memory database instead of the shared one.
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL,
  name TEXT NOT NULL,
  moq INTEGER NOT NULL DEFAULT 1,
  exclusive_enabled INTEGER NOT NULL DEFAULT 0,
  excluded_countries TEXT,
  tags TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	variants := `
CREATE TABLE IF NOT EXISTS product_variants (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  sku TEXT NOT NULL,
  attributes TEXT NOT NULL DEFAULT '{}',
  prices TEXT NOT NULL DEFAULT '{}',
  stock INTEGER NOT NULL DEFAULT 0,
  position INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec(variants).Error)
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, categoryID string, created time.Time) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Name:       name,
		MOQ:        1,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedVariant(t *testing.T, db *gorm.DB, product *models.Product, sku string, position int, price int64) *models.ProductVariant {
	t.Helper()

	variant := &models.ProductVariant{
		ID:         uuid.New(),
		ProductID:  product.ID,
		SKU:        sku,
		Attributes: types.AttributeMap{"Size": "M"},
		Prices:     types.PriceMap{enums.CurrencyIDR: decimal.NewFromInt(price)},
		Stock:      3,
		Position:   position,
	}
	require.NoError(t, db.Create(variant).Error)
	return variant
}

func TestRepositoryListProducts(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	older := seedProduct(t, db, "Rope Toy", "cat-dogs", now.Add(-time.Hour))
	newer := seedProduct(t, db, "Catnip Mouse", "cat-cats", now)

	seedVariant(t, db, older, "ROPE-1", 1, 45000)
	seedVariant(t, db, older, "ROPE-0", 0, 40000)
	seedVariant(t, db, newer, "MOUSE-0", 0, 25000)

	rows, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, newer.ID, rows[0].ID)
	assert.Equal(t, older.ID, rows[1].ID)

	require.Len(t, rows[1].Variants, 2)
	assert.Equal(t, "ROPE-0", rows[1].Variants[0].SKU)
	assert.Equal(t, "ROPE-1", rows[1].Variants[1].SKU)
	assert.True(t, rows[1].Variants[0].Prices.Amount(enums.CurrencyIDR).Equal(decimal.NewFromInt(40000)))
}

func TestRepositoryFindProductByID(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	product := seedProduct(t, db, "Slow Feeder", "cat-dogs", time.Now())
	seedVariant(t, db, product, "FEED-0", 0, 95000)

	got, err := repo.FindProductByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Slow Feeder", got.Name)
	require.Len(t, got.Variants, 1)
	assert.Equal(t, "M", got.Variants[0].Attributes["Size"])
}

func TestRepositoryFindProductByIDMissing(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindProductByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
