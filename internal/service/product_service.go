package service

import (
	"context"
	"errors"

	"storefront/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDatabase is the opaque kind every store-level fault is rewritten
	// into before it crosses the service boundary. The original cause is
	// logged at the point of detection and never surfaced to callers.
	ErrDatabase = errors.New("database error")
)

// ProductService defines the request-facing contract for the product catalog.
// Limit and price-range arguments arrive already defaulted and parsed; the
// boundary above this service owns that validation.
type ProductService interface {
	GetProducts(ctx context.Context) ([]ProductDTO, error)
	GetProductByID(ctx context.Context, id int) (*ProductDTO, error)
	GetProductsByCategoryID(ctx context.Context, categoryID int) ([]ProductDTO, error)
	GetBestSellers(ctx context.Context, limit int) ([]ProductDTO, error)
	GetDealsOfTheDay(ctx context.Context, limit int) ([]ProductDTO, error)
	GetProductsByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]ProductDTO, error)
	GetProductsByFilter(ctx context.Context, filter repository.ProductFilter) ([]ProductDTO, error)
}

type productService struct {
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetProducts returns the full flat product listing
func (s *productService) GetProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch products", zap.Error(err))
		return nil, ErrDatabase
	}

	return newProductDTOs(products), nil
}

// GetProductByID returns a single product or ErrProductNotFound
func (s *productService) GetProductByID(ctx context.Context, id int) (*ProductDTO, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to fetch product", zap.Int("product_id", id), zap.Error(err))
		return nil, ErrDatabase
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	dto := NewProductDTO(product)
	return &dto, nil
}

// GetProductsByCategoryID returns the joined listing for one category.
// An unknown category is an empty result, not an error.
func (s *productService) GetProductsByCategoryID(ctx context.Context, categoryID int) ([]ProductDTO, error) {
	products, err := s.productRepo.FindByCategoryID(ctx, categoryID)
	if err != nil {
		s.logger.Error("Failed to fetch products by category", zap.Int("category_id", categoryID), zap.Error(err))
		return nil, ErrDatabase
	}

	return newProductWithCategoryDTOs(products), nil
}

// GetBestSellers returns up to limit best-seller products
func (s *productService) GetBestSellers(ctx context.Context, limit int) ([]ProductDTO, error) {
	products, err := s.productRepo.FindBestSellers(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to fetch best sellers", zap.Error(err))
		return nil, ErrDatabase
	}

	return newProductDTOs(products), nil
}

// GetDealsOfTheDay returns up to limit deal-of-the-day products
func (s *productService) GetDealsOfTheDay(ctx context.Context, limit int) ([]ProductDTO, error) {
	products, err := s.productRepo.FindDealsOfTheDay(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to fetch deals of the day", zap.Error(err))
		return nil, ErrDatabase
	}

	return newProductDTOs(products), nil
}

// GetProductsByPriceRange returns products within the inclusive price range
func (s *productService) GetProductsByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]ProductDTO, error) {
	products, err := s.productRepo.FindByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		s.logger.Error("Failed to fetch products by price range",
			zap.String("min_price", minPrice.String()),
			zap.String("max_price", maxPrice.String()),
			zap.Error(err),
		)
		return nil, ErrDatabase
	}

	return newProductDTOs(products), nil
}

// GetProductsByFilter returns the joined listing matching the sparse filter
func (s *productService) GetProductsByFilter(ctx context.Context, filter repository.ProductFilter) ([]ProductDTO, error) {
	products, err := s.productRepo.FindByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to fetch products by filter", zap.Error(err))
		return nil, ErrDatabase
	}

	return newProductWithCategoryDTOs(products), nil
}
