package promos

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
	pkgerrors "github.com/pawmarket/pawmarket-backend/pkg/errors"
	"github.com/pawmarket/pawmarket-backend/pkg/logger"
)

// ActivePromosCacheKey stores the serialized active promo set in Redis.
const ActivePromosCacheKey = "pm:cache:promos:active"

// Service supplies the ordered active promo set to pricing callers.
//
// The returned slice is ordered newest-created first; the promo resolver takes
// the first matching entry, so this ordering is what makes a newer overlapping
// promo win.
type Service interface {
	ActivePromos(ctx context.Context, at time.Time) ([]models.Promo, error)
}

type activeLister interface {
	ListActive(ctx context.Context, at time.Time) ([]models.Promo, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type service struct {
	repo     activeLister
	cache    cacheStore
	cacheTTL time.Duration
	logg     *logger.Logger
}

// NewService constructs the promo service. The cache is optional; without it
// every call hits the database.
func NewService(repo activeLister, cache cacheStore, cacheTTL time.Duration, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("promo repository required")
	}
	return &service{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logg:     logg,
	}, nil
}

// ActivePromos returns the active promo set for the supplied instant. The
// cached set is reused within the TTL regardless of the instant; the TTL is
// kept short so a promo starting or ending mid-window is only briefly stale.
func (s *service) ActivePromos(ctx context.Context, at time.Time) ([]models.Promo, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	rows, err := s.repo.ListActive(ctx, at)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list active promos")
	}

	s.toCache(ctx, rows)
	return rows, nil
}

func (s *service) fromCache(ctx context.Context) ([]models.Promo, bool) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, ActivePromosCacheKey)
	if err != nil || raw == "" {
		return nil, false
	}
	var rows []models.Promo
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "decode cached promo set failed")
		}
		return nil, false
	}
	return rows, true
}

func (s *service) toCache(ctx context.Context, rows []models.Promo) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "encode promo set for cache failed")
		}
		return
	}
	if err := s.cache.Set(ctx, ActivePromosCacheKey, payload, s.cacheTTL); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "write promo cache failed")
	}
}
