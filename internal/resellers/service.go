package resellers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
	pkgerrors "github.com/pawmarket/pawmarket-backend/pkg/errors"
)

// Service exposes reseller profile lookups to the pricing paths.
type Service interface {
	GetProfile(ctx context.Context, profileID uuid.UUID) (*models.ResellerProfile, error)
}

type profileFinder interface {
	FindProfileByID(ctx context.Context, id uuid.UUID) (*models.ResellerProfile, error)
}

type service struct {
	repo profileFinder
}

// NewService constructs the reseller service.
func NewService(repo profileFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reseller repository required")
	}
	return &service{repo: repo}, nil
}

// GetProfile loads the profile with its category tiers in admin order.
// Tier category match sets are normalized on scan, so callers can test
// membership directly.
func (s *service) GetProfile(ctx context.Context, profileID uuid.UUID) (*models.ResellerProfile, error) {
	profile, err := s.repo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reseller profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load reseller profile")
	}
	return profile, nil
}
