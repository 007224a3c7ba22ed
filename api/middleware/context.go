package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawmarket/pawmarket-backend/pkg/enums"
)

type contextKey string

const (
	ctxShopperRole      contextKey = "shopper_role"
	ctxShopperProfileID contextKey = "reseller_profile_id"
	ctxShopperCountry   contextKey = "shopper_country"
)

// ShopperRoleFromContext returns the resolved role, defaulting to retail.
func ShopperRoleFromContext(ctx context.Context) enums.ShopperRole {
	if ctx != nil {
		if v, ok := ctx.Value(ctxShopperRole).(enums.ShopperRole); ok {
			return v
		}
	}
	return enums.ShopperRoleRetail
}

// ResellerProfileIDFromContext returns the profile reference, if present.
func ResellerProfileIDFromContext(ctx context.Context) *uuid.UUID {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxShopperProfileID).(uuid.UUID); ok {
		return &v
	}
	return nil
}

// ShopperCountryFromContext returns the shopper's country code, if present.
func ShopperCountryFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxShopperCountry).(string); ok {
		return v
	}
	return ""
}

// WithShopperRole injects the shopper role into the context.
func WithShopperRole(ctx context.Context, role enums.ShopperRole) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxShopperRole, role)
}

// WithResellerProfileID injects the reseller profile reference.
func WithResellerProfileID(ctx context.Context, id uuid.UUID) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxShopperProfileID, id)
}

// WithShopperCountry injects the shopper's country code.
func WithShopperCountry(ctx context.Context, country string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxShopperCountry, country)
}
