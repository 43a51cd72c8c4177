package transport

import (
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// defaultLimit applies when a bounded listing is requested without an
// explicit limit, so services always receive a concrete one.
const defaultLimit = 10

// PriceRangeRequest represents the strict price-range query. Unlike the
// filter endpoint, both bounds are mandatory and must parse as decimals.
type PriceRangeRequest struct {
	Min string `validate:"required"`
	Max string `validate:"required"`
}

// ProductHandler handles HTTP requests for product catalog reads
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/filter", h.FilterProducts)
		r.Get("/best-sellers", h.ListBestSellers)
		r.Get("/deal-of-the-day", h.ListDealsOfTheDay)
		r.Get("/price-range", h.ListProductsByPriceRange)
		r.Get("/category/{categoryID}", h.ListProductsByCategory)
		r.Get("/{id}", h.GetProductByID)
	})
}

// ListProducts handles the unconditional product listing
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetProducts(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// GetProductByID handles a single product lookup
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Debug("Invalid product ID", zap.String("id", chi.URLParam(r, "id")))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.GetProductByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// ListProductsByCategory handles the joined per-category listing
func (h *ProductHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	products, err := h.productService.GetProductsByCategoryID(r.Context(), categoryID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// ListBestSellers handles the bounded best-seller listing
func (h *ProductHandler) ListBestSellers(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.parseLimit(w, r)
	if !ok {
		return
	}

	products, err := h.productService.GetBestSellers(r.Context(), limit)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// ListDealsOfTheDay handles the bounded deal-of-the-day listing
func (h *ProductHandler) ListDealsOfTheDay(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.parseLimit(w, r)
	if !ok {
		return
	}

	products, err := h.productService.GetDealsOfTheDay(r.Context(), limit)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// ListProductsByPriceRange handles the strict price-range listing. Both
// bounds must be present and parse as exact decimals; malformed input is a
// validation error here, never silently dropped.
func (h *ProductHandler) ListProductsByPriceRange(w http.ResponseWriter, r *http.Request) {
	req := PriceRangeRequest{
		Min: strings.TrimSpace(r.URL.Query().Get("min")),
		Max: strings.TrimSpace(r.URL.Query().Get("max")),
	}

	if err := middleware.ValidateRequest(req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid price range")
		return
	}

	minPrice, err := decimal.NewFromString(req.Min)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "min must be a decimal number")
		return
	}

	maxPrice, err := decimal.NewFromString(req.Max)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "max must be a decimal number")
		return
	}

	products, err := h.productService.GetProductsByPriceRange(r.Context(), minPrice, maxPrice)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// FilterProducts handles the dynamic filter listing. Every criterion is
// optional; values pass through to the filter untouched, which also means
// malformed price bounds are dropped there rather than rejected here.
func (h *ProductHandler) FilterProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.ProductFilter{
		Category: optionalString(query.Get("category")),
		MinPrice: optionalString(query.Get("min_price")),
		MaxPrice: optionalString(query.Get("max_price")),
	}

	var ok bool
	if filter.IsBestSeller, ok = h.parseOptionalBool(w, query.Get("is_best_seller"), "is_best_seller"); !ok {
		return
	}
	if filter.IsDealOfTheDay, ok = h.parseOptionalBool(w, query.Get("is_deal_of_the_day"), "is_deal_of_the_day"); !ok {
		return
	}

	products, err := h.productService.GetProductsByFilter(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// parseLimit reads the optional limit query parameter, applying defaultLimit
// when absent. It writes the error response itself on malformed input.
func (h *ProductHandler) parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		h.logger.Debug("Invalid limit", zap.String("limit", raw))
		middleware.RespondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
		return 0, false
	}

	return limit, true
}

func (h *ProductHandler) parseOptionalBool(w http.ResponseWriter, raw, field string) (*bool, bool) {
	if raw == "" {
		return nil, true
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, field+" must be a boolean")
		return nil, false
	}

	return &value, true
}

// respondServiceError maps service error kinds onto HTTP statuses without
// leaking internal detail.
func (h *ProductHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch err {
	case service.ErrProductNotFound:
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
	case service.ErrCategoryNotFound:
		middleware.RespondWithError(w, http.StatusNotFound, "category not found")
	default:
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

func optionalString(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
