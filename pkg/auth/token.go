package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pawmarket/pawmarket-backend/pkg/config"
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// ShopperTokenClaims carry the shopper identity the catalog needs: the role
// and, for resellers, the profile holding currency and tier category.
type ShopperTokenClaims struct {
	ShopperID         uuid.UUID         `json:"shopper_id"`
	Role              enums.ShopperRole `json:"role"`
	ResellerProfileID *uuid.UUID        `json:"reseller_profile_id,omitempty"`
	jwt.RegisteredClaims
}

// ShopperTokenPayload is the input for minting a shopper token.
type ShopperTokenPayload struct {
	ShopperID         uuid.UUID
	Role              enums.ShopperRole
	ResellerProfileID *uuid.UUID
}

// MintShopperToken issues a signed JWT for the provided payload using the
// configured TTL.
func MintShopperToken(cfg config.JWTConfig, now time.Time, payload ShopperTokenPayload) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt secret is required")
	}
	if cfg.Issuer == "" {
		return "", fmt.Errorf("jwt issuer is required")
	}
	if cfg.ExpirationMinutes <= 0 {
		return "", fmt.Errorf("jwt expiration minutes must be positive")
	}
	if !payload.Role.IsValid() {
		return "", fmt.Errorf("invalid shopper role %q", payload.Role)
	}
	if payload.Role == enums.ShopperRoleReseller && payload.ResellerProfileID == nil {
		return "", fmt.Errorf("reseller token requires a profile reference")
	}

	claims := ShopperTokenClaims{
		ShopperID:         payload.ShopperID,
		Role:              payload.Role,
		ResellerProfileID: payload.ResellerProfileID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// ParseShopperToken validates the JWT string and returns typed claims.
func ParseShopperToken(cfg config.JWTConfig, tokenString string) (*ShopperTokenClaims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	claims := &ShopperTokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return nil, err
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("invalid shopper role %q", claims.Role)
	}
	return claims, nil
}
