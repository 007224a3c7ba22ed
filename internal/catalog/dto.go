package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pawmarket/pawmarket-backend/internal/pricing"
	"github.com/pawmarket/pawmarket-backend/pkg/db/models"
)

// QuoteDTO is the resolved price payload returned to clients.
type QuoteDTO struct {
	FinalPrice         decimal.Decimal  `json:"final_price"`
	OriginalPrice      *decimal.Decimal `json:"original_price,omitempty"`
	HasDiscount        bool             `json:"has_discount"`
	DiscountPercentage decimal.Decimal  `json:"discount_percentage"`
}

// TierQuoteDTO is one reseller tier priced for the detail view.
type TierQuoteDTO struct {
	TierName        string          `json:"tier_name"`
	MinimumQuantity int             `json:"minimum_quantity"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// VariantDTO is one sellable unit with its resolved pricing.
type VariantDTO struct {
	ID         uuid.UUID         `json:"id"`
	SKU        string            `json:"sku"`
	Attributes map[string]string `json:"attributes"`
	Stock      int               `json:"stock"`
	Currency   string            `json:"currency"`
	BasePrice  decimal.Decimal   `json:"base_price"`
	Quote      QuoteDTO          `json:"quote"`
	Tiers      []TierQuoteDTO    `json:"tiers,omitempty"`
}

// VariantQuoteDTO is one priced line: a variant at a normalized quantity.
type VariantQuoteDTO struct {
	ProductID uuid.UUID       `json:"product_id"`
	VariantID uuid.UUID       `json:"variant_id"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	Currency  string          `json:"currency"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	Quote     QuoteDTO        `json:"quote"`
	Tier      *TierQuoteDTO   `json:"tier,omitempty"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// ProductSummaryDTO is one catalog grid entry.
type ProductSummaryDTO struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	CategoryID     string              `json:"category_id"`
	MOQ            int                 `json:"moq"`
	Tags           []string            `json:"tags,omitempty"`
	Currency       string              `json:"currency"`
	MinPrice       decimal.Decimal     `json:"min_price"`
	MaxPrice       decimal.Decimal     `json:"max_price"`
	TotalStock     int                 `json:"total_stock"`
	AvailableSizes []string            `json:"available_sizes"`
	Attributes     map[string][]string `json:"attributes"`
	FromQuote      *QuoteDTO           `json:"from_quote,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

// ProductDetailDTO is the full product payload with per-variant quotes.
type ProductDetailDTO struct {
	ProductSummaryDTO
	Variants []VariantDTO `json:"variants"`
}

// BrowseResultDTO is one page of the filtered, sorted catalog.
type BrowseResultDTO struct {
	Items  []ProductSummaryDTO `json:"items"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// NewQuoteDTO maps a resolved quote to its response shape.
func NewQuoteDTO(quote pricing.Quote) QuoteDTO {
	return QuoteDTO{
		FinalPrice:         quote.FinalPrice,
		OriginalPrice:      quote.OriginalPrice,
		HasDiscount:        quote.HasDiscount,
		DiscountPercentage: quote.DiscountPercentage,
	}
}

// NewTierQuoteDTOs maps the resolved tier table.
func NewTierQuoteDTOs(tiers []pricing.TierQuote) []TierQuoteDTO {
	if len(tiers) == 0 {
		return nil
	}
	out := make([]TierQuoteDTO, 0, len(tiers))
	for _, tier := range tiers {
		out = append(out, TierQuoteDTO{
			TierName:        tier.TierName,
			MinimumQuantity: tier.MinimumQuantity,
			DiscountPercent: tier.DiscountPercent,
			UnitPrice:       tier.UnitPrice,
		})
	}
	return out
}

// NewVariantDTO maps a variant and its resolved pricing.
func NewVariantDTO(variant models.ProductVariant, resolved pricing.VariantPricing) VariantDTO {
	return VariantDTO{
		ID:         variant.ID,
		SKU:        variant.SKU,
		Attributes: variant.Attributes,
		Stock:      variant.Stock,
		Currency:   resolved.Currency.String(),
		BasePrice:  resolved.BasePrice,
		Quote:      NewQuoteDTO(resolved.Quote),
		Tiers:      NewTierQuoteDTOs(resolved.Tiers),
	}
}

// NewProductSummaryDTO maps an enriched product to its grid entry.
func NewProductSummaryDTO(enriched EnrichedProduct, fromQuote *QuoteDTO) ProductSummaryDTO {
	return ProductSummaryDTO{
		ID:             enriched.Product.ID,
		Name:           enriched.Product.Name,
		CategoryID:     enriched.Product.CategoryID,
		MOQ:            enriched.Product.MOQ,
		Tags:           append([]string{}, enriched.Product.Tags...),
		Currency:       enriched.Currency.String(),
		MinPrice:       enriched.MinPrice,
		MaxPrice:       enriched.MaxPrice,
		TotalStock:     enriched.TotalStock,
		AvailableSizes: enriched.AvailableSizes,
		Attributes:     enriched.Attributes,
		FromQuote:      fromQuote,
		CreatedAt:      enriched.Product.CreatedAt,
	}
}
