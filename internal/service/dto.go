package service

import (
	"storefront/internal/domain"
)

// ProductDTO is the outward product representation. Price and Discount are
// rendered as exact decimal strings so no precision is lost at the boundary.
// CategoryName is present only when the DTO was produced from a joined row.
type ProductDTO struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          string  `json:"price"`
	IsBestSeller   bool    `json:"is_best_seller"`
	IsDealOfTheDay bool    `json:"is_deal_of_the_day"`
	Discount       string  `json:"discount"`
	CategoryID     int     `json:"category_id"`
	CategoryName   *string `json:"category_name,omitempty"`
}

// CategoryDTO is the outward category representation
type CategoryDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewProductDTO maps a bare product row; CategoryName stays absent
func NewProductDTO(product *domain.Product) ProductDTO {
	return ProductDTO{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price.String(),
		IsBestSeller:   product.IsBestSeller,
		IsDealOfTheDay: product.IsDealOfTheDay,
		Discount:       product.Discount.String(),
		CategoryID:     product.CategoryID,
	}
}

// NewProductWithCategoryDTO maps a joined row, carrying the category name
func NewProductWithCategoryDTO(product *domain.ProductWithCategory) ProductDTO {
	dto := NewProductDTO(&product.Product)
	categoryName := product.CategoryName
	dto.CategoryName = &categoryName
	return dto
}

// NewCategoryDTO maps a category row
func NewCategoryDTO(category *domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:   category.ID,
		Name: category.Name,
	}
}

// newProductDTOs always allocates, so empty results serialize as [] and
// never as null.
func newProductDTOs(products []*domain.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, NewProductDTO(product))
	}
	return dtos
}

func newProductWithCategoryDTOs(products []*domain.ProductWithCategory) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, NewProductWithCategoryDTO(product))
	}
	return dtos
}
