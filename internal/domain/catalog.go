package domain

import (
	"github.com/shopspring/decimal"
)

// Product represents a row of the products table. Price and Discount are
// exact decimals; they must never pass through a float.
type Product struct {
	ID             int             `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Description    string          `json:"description" db:"description"`
	Price          decimal.Decimal `json:"price" db:"price"`
	IsBestSeller   bool            `json:"is_best_seller" db:"is_best_seller"`
	IsDealOfTheDay bool            `json:"is_deal_of_the_day" db:"is_deal_of_the_day"`
	Discount       decimal.Decimal `json:"discount" db:"discount"`
	CategoryID     int             `json:"category_id" db:"category_id"`
}

// Category represents a product category
type Category struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ProductWithCategory is the projection produced by queries that join
// products against categories. It is materialized per query and never stored.
type ProductWithCategory struct {
	Product
	CategoryName string `json:"category_name" db:"category_name"`
}
