package service

import (
	"encoding/json"
	"strings"
	"testing"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

func TestNewProductDTO_DecimalFieldsStaysExact(t *testing.T) {
	cases := []struct {
		price    string
		expected string
	}{
		{"9.99", "9.99"},
		{"0.1", "0.1"},
		{"1234567.89", "1234567.89"},
		{"0", "0"},
	}

	for _, tc := range cases {
		product := &domain.Product{
			ID:    1,
			Price: decimal.RequireFromString(tc.price),
		}
		dto := NewProductDTO(product)
		if dto.Price != tc.expected {
			t.Errorf("Price %s rendered as %q, expected %q", tc.price, dto.Price, tc.expected)
		}
	}
}

func TestNewProductWithCategoryDTO_RoundTripsFields(t *testing.T) {
	row := &domain.ProductWithCategory{
		Product: domain.Product{
			ID:             11,
			Name:           "Trail Mix",
			Description:    "Nuts and raisins",
			Price:          decimal.RequireFromString("25.5"),
			IsBestSeller:   false,
			IsDealOfTheDay: true,
			Discount:       decimal.RequireFromString("2.5"),
			CategoryID:     1,
		},
		CategoryName: "Snacks",
	}

	dto := NewProductWithCategoryDTO(row)

	if dto.ID != row.ID || dto.Name != row.Name || dto.Description != row.Description {
		t.Errorf("Scalar fields not preserved: %+v", dto)
	}
	if dto.Price != "25.5" || dto.Discount != "2.5" {
		t.Errorf("Decimal fields not preserved: price=%q discount=%q", dto.Price, dto.Discount)
	}
	if dto.IsDealOfTheDay != true || dto.IsBestSeller != false {
		t.Errorf("Flags not preserved: %+v", dto)
	}
	if dto.CategoryID != 1 {
		t.Errorf("CategoryID not preserved: %d", dto.CategoryID)
	}
	if dto.CategoryName == nil || *dto.CategoryName != "Snacks" {
		t.Errorf("Expected category name Snacks, got %v", dto.CategoryName)
	}
}

func TestProductDTO_CategoryNameOmittedFromJSONWhenAbsent(t *testing.T) {
	dto := NewProductDTO(&domain.Product{ID: 1, Price: decimal.RequireFromString("1.5")})

	body, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(body), "category_name") {
		t.Errorf("Absent category name must be omitted from JSON: %s", body)
	}
}

func TestNewProductDTOs_EmptyInputAllocates(t *testing.T) {
	dtos := newProductDTOs(nil)
	if dtos == nil {
		t.Fatal("Expected empty slice, got nil")
	}

	body, err := json.Marshal(dtos)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(body) != "[]" {
		t.Errorf("Empty sequence must serialize as [], got %s", body)
	}
}
