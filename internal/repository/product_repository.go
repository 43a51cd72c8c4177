package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

const productColumns = `id, name, description, price, is_best_seller, is_deal_of_the_day, discount, category_id`

// ProductRepository defines the interface for product data access.
// Lookups that miss return a nil product and a nil error; only store-level
// faults are reported as errors.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	FindByCategoryID(ctx context.Context, categoryID int) ([]*domain.ProductWithCategory, error)
	FindBestSellers(ctx context.Context, limit int) ([]*domain.Product, error)
	FindDealsOfTheDay(ctx context.Context, limit int) ([]*domain.Product, error)
	FindByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*domain.Product, error)
	FindByFilter(ctx context.Context, filter ProductFilter) ([]*domain.ProductWithCategory, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// FindAll retrieves every product, including those without a valid category
func (r *productRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY id`, productColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindByID retrieves a product by primary key; a miss returns (nil, nil)
func (r *productRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product := &domain.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.IsBestSeller,
		&product.IsDealOfTheDay,
		&product.Discount,
		&product.CategoryID,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// FindByCategoryID retrieves the products of one category joined with the
// category name. An unknown or empty category yields an empty slice.
func (r *productRepository) FindByCategoryID(ctx context.Context, categoryID int) ([]*domain.ProductWithCategory, error) {
	query := productWithCategoryQuery + ` AND p.category_id = $1`

	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	defer rows.Close()

	return scanProductsWithCategory(rows)
}

// FindBestSellers retrieves up to limit products flagged as best sellers
func (r *productRepository) FindBestSellers(ctx context.Context, limit int) ([]*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE is_best_seller = TRUE ORDER BY id LIMIT $1`, productColumns)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list best sellers: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindDealsOfTheDay retrieves up to limit products flagged as deals of the day
func (r *productRepository) FindDealsOfTheDay(ctx context.Context, limit int) ([]*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE is_deal_of_the_day = TRUE ORDER BY id LIMIT $1`, productColumns)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals of the day: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindByPriceRange retrieves products with minPrice <= price <= maxPrice,
// inclusive on both bounds. The caller is responsible for bound ordering;
// minPrice > maxPrice simply matches nothing.
func (r *productRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE price BETWEEN $1 AND $2 ORDER BY id`, productColumns)

	rows, err := r.db.QueryContext(ctx, query, minPrice, maxPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by price range: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindByFilter executes the dynamic filter query composed by the filter.
// The query is always an inner join with categories, so products without a
// category never appear here.
func (r *productRepository) FindByFilter(ctx context.Context, filter ProductFilter) ([]*domain.ProductWithCategory, error) {
	query, args := filter.BuildQuery()

	rows, err := r.db.QueryContext(ctx, query+` ORDER BY p.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by filter: %w", err)
	}
	defer rows.Close()

	return scanProductsWithCategory(rows)
}

func scanProducts(rows *sql.Rows) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.IsBestSeller,
			&product.IsDealOfTheDay,
			&product.Discount,
			&product.CategoryID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

func scanProductsWithCategory(rows *sql.Rows) ([]*domain.ProductWithCategory, error) {
	products := []*domain.ProductWithCategory{}
	for rows.Next() {
		product := &domain.ProductWithCategory{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.IsBestSeller,
			&product.IsDealOfTheDay,
			&product.Discount,
			&product.CategoryID,
			&product.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product with category: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
