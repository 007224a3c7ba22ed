package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pawmarket/pawmarket-backend/internal/pricing"
	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
	"github.com/pawmarket/pawmarket-backend/pkg/enums"
	pkgerrors "github.com/pawmarket/pawmarket-backend/pkg/errors"
	"github.com/pawmarket/pawmarket-backend/pkg/logger"
	"github.com/pawmarket/pawmarket-backend/pkg/pagination"
)

// Shopper identifies the caller for catalog reads. A zero value is a retail
// shopper with no country.
type Shopper struct {
	Role              enums.ShopperRole
	ResellerProfileID *uuid.UUID
	Country           string
}

// BrowseInput carries everything one catalog page request needs.
type BrowseInput struct {
	Shopper    Shopper
	Filters    FilterSpec
	SortKey    *enums.SortKey
	Currency   *enums.Currency
	Pagination pagination.Params
}

// QuoteInput asks for a priced line: one variant at a quantity.
type QuoteInput struct {
	ProductID uuid.UUID
	SKU       string
	Quantity  int
	Shopper   Shopper
	Currency  *enums.Currency
}

// Service exposes the storefront catalog read paths.
type Service interface {
	Browse(ctx context.Context, input BrowseInput) (*BrowseResultDTO, error)
	ProductDetail(ctx context.Context, productID uuid.UUID, shopper Shopper, currency *enums.Currency) (*ProductDetailDTO, error)
	VariantQuote(ctx context.Context, input QuoteInput) (*VariantQuoteDTO, error)
}

type productSource interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type promoSource interface {
	ActivePromos(ctx context.Context, at time.Time) ([]models.Promo, error)
}

type profileSource interface {
	GetProfile(ctx context.Context, profileID uuid.UUID) (*models.ResellerProfile, error)
}

type service struct {
	repo            productSource
	promos          promoSource
	resellers       profileSource
	defaultCurrency enums.Currency
	logg            *logger.Logger
	now             func() time.Time
}

// NewService constructs the catalog service.
func NewService(repo productSource, promos promoSource, resellers profileSource, defaultCurrency enums.Currency, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if promos == nil {
		return nil, fmt.Errorf("promo source required")
	}
	if resellers == nil {
		return nil, fmt.Errorf("reseller source required")
	}
	if !defaultCurrency.IsValid() {
		return nil, fmt.Errorf("invalid default currency %q", defaultCurrency)
	}
	return &service{
		repo:            repo,
		promos:          promos,
		resellers:       resellers,
		defaultCurrency: defaultCurrency,
		logg:            logg,
		now:             time.Now,
	}, nil
}

// Browse runs the filter-sort pipeline for one shopper and returns a page of
// grid entries, each carrying the quote for its cheapest variant.
func (s *service) Browse(ctx context.Context, input BrowseInput) (*BrowseResultDTO, error) {
	currency := s.currencyOrDefault(input.Currency)

	shopper, err := s.resolveShopper(ctx, input.Shopper)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog products")
	}
	products = visibleTo(products, input.Shopper.Country)

	activePromos, err := s.promosFor(ctx, shopper)
	if err != nil {
		return nil, err
	}

	enriched := Browse(products, input.Filters, input.SortKey, currency)
	total := len(enriched)
	start, end := pagination.Window(input.Pagination, total)

	items := make([]ProductSummaryDTO, 0, end-start)
	for _, entry := range enriched[start:end] {
		items = append(items, NewProductSummaryDTO(entry, s.fromQuote(entry, shopper, currency, activePromos)))
	}

	return &BrowseResultDTO{
		Items:  items,
		Total:  total,
		Limit:  pagination.NormalizeLimit(input.Pagination.Limit),
		Offset: pagination.NormalizeOffset(input.Pagination.Offset),
	}, nil
}

// ProductDetail returns one product with per-variant quotes for the shopper.
// Products excluded for the shopper's country read as not found.
func (s *service) ProductDetail(ctx context.Context, productID uuid.UUID, shopperInput Shopper, currencyInput *enums.Currency) (*ProductDetailDTO, error) {
	currency := s.currencyOrDefault(currencyInput)

	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if excludedForCountry(*product, shopperInput.Country) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	shopper, err := s.resolveShopper(ctx, shopperInput)
	if err != nil {
		return nil, err
	}

	activePromos, err := s.promosFor(ctx, shopper)
	if err != nil {
		return nil, err
	}

	enriched := Enrich(*product, currency)
	detail := &ProductDetailDTO{
		ProductSummaryDTO: NewProductSummaryDTO(enriched, s.fromQuote(enriched, shopper, currency, activePromos)),
		Variants:          make([]VariantDTO, 0, len(product.Variants)),
	}
	for _, variant := range product.Variants {
		resolved := pricing.ResolveVariant(*product, variant, shopper, currency, activePromos)
		detail.Variants = append(detail.Variants, NewVariantDTO(variant, resolved))
	}
	return detail, nil
}

// VariantQuote prices one variant at a quantity. Quantities below the product
// MOQ are raised to it with a warning rather than rejected, and resellers get
// the deepest tier whose minimum the quantity meets.
func (s *service) VariantQuote(ctx context.Context, input QuoteInput) (*VariantQuoteDTO, error) {
	currency := s.currencyOrDefault(input.Currency)

	product, err := s.repo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if excludedForCountry(*product, input.Shopper.Country) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	var variant *models.ProductVariant
	for i := range product.Variants {
		if product.Variants[i].SKU == input.SKU {
			variant = &product.Variants[i]
			break
		}
	}
	if variant == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
	}

	shopper, err := s.resolveShopper(ctx, input.Shopper)
	if err != nil {
		return nil, err
	}

	activePromos, err := s.promosFor(ctx, shopper)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	var warnings []string
	if quantity < product.MOQ {
		quantity = product.MOQ
		warnings = append(warnings, "quantity raised to the minimum order quantity")
	}

	resolved := pricing.ResolveVariant(*product, *variant, shopper, currency, activePromos)

	quote := resolved.Quote
	tier := selectTier(resolved.Tiers, quantity)
	if tier != nil {
		original := resolved.BasePrice
		quote = pricing.Quote{
			FinalPrice:         tier.UnitPrice,
			OriginalPrice:      &original,
			HasDiscount:        tier.UnitPrice.LessThan(original),
			DiscountPercentage: tier.DiscountPercent,
		}
	}

	dto := &VariantQuoteDTO{
		ProductID: product.ID,
		VariantID: variant.ID,
		SKU:       variant.SKU,
		Quantity:  quantity,
		Currency:  resolved.Currency.String(),
		UnitPrice: quote.FinalPrice,
		LineTotal: quote.FinalPrice.Mul(decimal.NewFromInt(int64(quantity))),
		Quote:     NewQuoteDTO(quote),
		Warnings:  warnings,
	}
	if tier != nil {
		t := TierQuoteDTO{
			TierName:        tier.TierName,
			MinimumQuantity: tier.MinimumQuantity,
			DiscountPercent: tier.DiscountPercent,
			UnitPrice:       tier.UnitPrice,
		}
		dto.Tier = &t
	}
	return dto, nil
}

// selectTier picks the deepest applicable tier: the highest minimum quantity
// the requested quantity still meets. Later tiers win ties so the admin order
// stays authoritative.
func selectTier(tiers []pricing.TierQuote, quantity int) *pricing.TierQuote {
	var selected *pricing.TierQuote
	for i := range tiers {
		tier := &tiers[i]
		if tier.MinimumQuantity > quantity {
			continue
		}
		if selected == nil || tier.MinimumQuantity >= selected.MinimumQuantity {
			selected = tier
		}
	}
	return selected
}

func (s *service) currencyOrDefault(currency *enums.Currency) enums.Currency {
	if currency != nil && currency.IsValid() {
		return *currency
	}
	return s.defaultCurrency
}

// resolveShopper loads the reseller profile when the claims reference one.
// A missing profile degrades to a retail shopper rather than failing the read.
func (s *service) resolveShopper(ctx context.Context, input Shopper) (pricing.Shopper, error) {
	shopper := pricing.Shopper{Role: input.Role}
	if input.Role != enums.ShopperRoleReseller || input.ResellerProfileID == nil {
		return shopper, nil
	}

	profile, err := s.resellers.GetProfile(ctx, *input.ResellerProfileID)
	if err != nil {
		if coded := pkgerrors.As(err); coded != nil && coded.Code() == pkgerrors.CodeNotFound {
			if s.logg != nil {
				s.logg.Warn(ctx, "reseller profile missing, serving retail pricing")
			}
			return pricing.Shopper{Role: enums.ShopperRoleRetail}, nil
		}
		return pricing.Shopper{}, err
	}
	shopper.Profile = profile
	return shopper, nil
}

// promosFor loads the active promo set for retail shoppers. Resellers never
// hit the promo path, so their reads skip the lookup entirely.
func (s *service) promosFor(ctx context.Context, shopper pricing.Shopper) ([]models.Promo, error) {
	if shopper.IsReseller() {
		return nil, nil
	}
	rows, err := s.promos.ActivePromos(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// fromQuote resolves the cheapest priced variant for the grid entry. Products
// with no variant priced in the browse currency carry no quote.
func (s *service) fromQuote(enriched EnrichedProduct, shopper pricing.Shopper, currency enums.Currency, activePromos []models.Promo) *QuoteDTO {
	var cheapest *models.ProductVariant
	for i := range enriched.Product.Variants {
		variant := &enriched.Product.Variants[i]
		if !variant.Prices.Has(currency) {
			continue
		}
		if cheapest == nil || variant.Prices.Amount(currency).LessThan(cheapest.Prices.Amount(currency)) {
			cheapest = variant
		}
	}
	if cheapest == nil {
		return nil
	}
	resolved := pricing.ResolveVariant(enriched.Product, *cheapest, shopper, currency, activePromos)
	quote := NewQuoteDTO(resolved.Quote)
	return &quote
}

// visibleTo drops products that exclude the shopper's country.
func visibleTo(products []models.Product, country string) []models.Product {
	if country == "" {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, product := range products {
		if excludedForCountry(product, country) {
			continue
		}
		out = append(out, product)
	}
	return out
}

func excludedForCountry(product models.Product, country string) bool {
	if !product.ExclusiveEnabled || country == "" {
		return false
	}
	for _, excluded := range product.ExcludedCountries {
		if strings.EqualFold(excluded, country) {
			return true
		}
	}
	return false
}
