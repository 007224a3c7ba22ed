package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pawmarket/pawmarket-backend/api/middleware"
	"github.com/pawmarket/pawmarket-backend/api/responses"
	"github.com/pawmarket/pawmarket-backend/api/validators"
	"github.com/pawmarket/pawmarket-backend/internal/catalog"
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	pkgerrors "github.com/pawmarket/pawmarket-backend/pkg/errors"
	"github.com/pawmarket/pawmarket-backend/pkg/logger"
	"github.com/pawmarket/pawmarket-backend/pkg/metrics"
	"github.com/pawmarket/pawmarket-backend/pkg/pagination"
)

const maxSearchTextLen = 120

// CatalogBrowse serves the filtered, sorted, priced product grid.
func CatalogBrowse(svc catalog.Service, cm *metrics.CatalogMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		input, err := browseInputFromRequest(r)
		if err != nil {
			cm.IncBrowse("rejected")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		start := time.Now()
		result, err := svc.Browse(r.Context(), input)
		if err != nil {
			cm.IncBrowse("error")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sortLabel := "relevance"
		if input.SortKey != nil {
			sortLabel = input.SortKey.String()
		}
		cm.ObserveBrowse(sortLabel, time.Since(start))
		cm.IncBrowse("ok")
		cm.IncQuote(string(input.Shopper.Role))

		responses.WriteSuccess(w, result)
	}
}

// CatalogDetail serves a single product with per-variant quotes.
func CatalogDetail(svc catalog.Service, cm *metrics.CatalogMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		currency, err := currencyFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.ProductDetail(r.Context(), productID, shopperFromRequest(r), currency)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cm.IncQuote(string(shopperFromRequest(r).Role))
		responses.WriteSuccess(w, detail)
	}
}

type quoteRequest struct {
	SKU      string `json:"sku" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Currency string `json:"currency,omitempty"`
}

// CatalogQuote prices one variant at a quantity for the current shopper.
func CatalogQuote(svc catalog.Service, cm *metrics.CatalogMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var currency *enums.Currency
		if raw := strings.TrimSpace(payload.Currency); raw != "" {
			parsed, err := enums.ParseCurrency(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid currency"))
				return
			}
			currency = &parsed
		}

		shopper := shopperFromRequest(r)
		quote, err := svc.VariantQuote(r.Context(), catalog.QuoteInput{
			ProductID: productID,
			SKU:       payload.SKU,
			Quantity:  payload.Quantity,
			Shopper:   shopper,
			Currency:  currency,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cm.IncQuote(string(shopper.Role))
		responses.WriteSuccess(w, quote)
	}
}

func shopperFromRequest(r *http.Request) catalog.Shopper {
	ctx := r.Context()
	return catalog.Shopper{
		Role:              middleware.ShopperRoleFromContext(ctx),
		ResellerProfileID: middleware.ResellerProfileIDFromContext(ctx),
		Country:           middleware.ShopperCountryFromContext(ctx),
	}
}

func browseInputFromRequest(r *http.Request) (catalog.BrowseInput, error) {
	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return catalog.BrowseInput{}, err
	}
	offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1<<30)
	if err != nil {
		return catalog.BrowseInput{}, err
	}

	priceMin, err := validators.ParseQueryDecimal(r, "price_min")
	if err != nil {
		return catalog.BrowseInput{}, err
	}
	priceMax, err := validators.ParseQueryDecimal(r, "price_max")
	if err != nil {
		return catalog.BrowseInput{}, err
	}
	if priceMin != nil && priceMax != nil && priceMin.GreaterThan(*priceMax) {
		return catalog.BrowseInput{}, pkgerrors.New(pkgerrors.CodeValidation, "price_min exceeds price_max")
	}

	filters := catalog.FilterSpec{
		SearchText:  validators.SanitizeString(r.URL.Query().Get("q"), maxSearchTextLen),
		CategoryIDs: validators.ParseQueryCSV(r, "categories"),
		Sizes:       validators.ParseQueryCSV(r, "sizes"),
		PriceMin:    priceMin,
		PriceMax:    priceMax,
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("stock")); raw != "" {
		status, err := enums.ParseStockStatus(raw)
		if err != nil {
			return catalog.BrowseInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid stock filter")
		}
		filters.StockStatus = &status
	}

	var sortKey *enums.SortKey
	if raw := strings.TrimSpace(r.URL.Query().Get("sort")); raw != "" {
		key, err := enums.ParseSortKey(raw)
		if err != nil {
			return catalog.BrowseInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key")
		}
		sortKey = &key
	}

	currency, err := currencyFromRequest(r)
	if err != nil {
		return catalog.BrowseInput{}, err
	}

	return catalog.BrowseInput{
		Shopper:    shopperFromRequest(r),
		Filters:    filters,
		SortKey:    sortKey,
		Currency:   currency,
		Pagination: pagination.Params{Limit: limit, Offset: offset},
	}, nil
}

func currencyFromRequest(r *http.Request) (*enums.Currency, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("currency"))
	if raw == "" {
		return nil, nil
	}
	currency, err := enums.ParseCurrency(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid currency")
	}
	return &currency, nil
}
