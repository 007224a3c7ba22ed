package middleware

import (
	"net/http"
	"strings"

	pkgAuth "github.com/pawmarket/pawmarket-backend/pkg/auth"
	"github.com/pawmarket/pawmarket-backend/pkg/config"
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	"github.com/pawmarket/pawmarket-backend/pkg/logger"
)

// Shopper resolves the browsing identity for catalog reads. A bearer token
// upgrades the shopper to its minted role; absent or invalid credentials fall
// back to an anonymous retail shopper rather than rejecting the request.
func Shopper(cfg config.Config, logg *logger.Logger) func(http.Handler) http.Handler {
	countryHeader := cfg.Catalog.ShopperCountryHdr

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithShopperRole(r.Context(), enums.ShopperRoleRetail)

			if country := strings.TrimSpace(r.Header.Get(countryHeader)); country != "" {
				ctx = WithShopperCountry(ctx, strings.ToUpper(country))
			}

			if token := bearerToken(r); token != "" {
				claims, err := pkgAuth.ParseShopperToken(cfg.JWT, token)
				switch {
				case err != nil:
					if logg != nil {
						logg.Warn(ctx, "shopper token rejected, serving retail prices")
					}
				case claims.Role == enums.ShopperRoleReseller && claims.ResellerProfileID != nil:
					ctx = WithShopperRole(ctx, enums.ShopperRoleReseller)
					ctx = WithResellerProfileID(ctx, *claims.ResellerProfileID)
					if logg != nil {
						ctx = logg.WithFields(ctx, map[string]any{
							"shopper_role":        string(claims.Role),
							"reseller_profile_id": claims.ResellerProfileID.String(),
						})
					}
				default:
					ctx = WithShopperRole(ctx, enums.ShopperRoleRetail)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
