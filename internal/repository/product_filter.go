package repository

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// productWithCategoryQuery is the base query every dynamic filter folds onto.
// The trailing WHERE 1=1 lets each predicate append as "AND ..." without
// tracking whether it is the first one.
const productWithCategoryQuery = `
	SELECT p.id, p.name, p.description, p.price, p.is_best_seller, p.is_deal_of_the_day,
	       p.discount, p.category_id, c.name AS category_name
	FROM products p
	INNER JOIN categories c ON p.category_id = c.id
	WHERE 1=1`

// ProductFilter carries the optional search criteria for FindByFilter.
// A nil field contributes no predicate. An empty or whitespace-only Category
// is treated as absent. MinPrice and MaxPrice arrive as raw strings; a bound
// that does not parse as a decimal is dropped as if it had not been supplied,
// unlike the strict price-range endpoint which rejects such input.
type ProductFilter struct {
	Category       *string
	IsBestSeller   *bool
	IsDealOfTheDay *bool
	MinPrice       *string
	MaxPrice       *string
}

// BuildQuery composes the filtered join query and its positional parameters.
// Every user-supplied value is bound, never concatenated into the SQL text.
// Predicate order is fixed (category, best seller, deal of the day, min
// price, max price) so the generated query shape is deterministic.
func (f ProductFilter) BuildQuery() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(productWithCategoryQuery)
	args := []interface{}{}

	if f.Category != nil && strings.TrimSpace(*f.Category) != "" {
		args = append(args, "%"+*f.Category+"%")
		fmt.Fprintf(&sb, " AND c.name ILIKE $%d", len(args))
	}

	if f.IsBestSeller != nil {
		args = append(args, *f.IsBestSeller)
		fmt.Fprintf(&sb, " AND p.is_best_seller = $%d", len(args))
	}

	if f.IsDealOfTheDay != nil {
		args = append(args, *f.IsDealOfTheDay)
		fmt.Fprintf(&sb, " AND p.is_deal_of_the_day = $%d", len(args))
	}

	if minPrice, ok := parsePriceBound(f.MinPrice); ok {
		args = append(args, minPrice)
		fmt.Fprintf(&sb, " AND p.price >= $%d", len(args))
	}

	if maxPrice, ok := parsePriceBound(f.MaxPrice); ok {
		args = append(args, maxPrice)
		fmt.Fprintf(&sb, " AND p.price <= $%d", len(args))
	}

	return sb.String(), args
}

// parsePriceBound converts an optional raw price string into an exact
// decimal. Absent, blank, and unparseable values all report false.
func parsePriceBound(raw *string) (decimal.Decimal, bool) {
	if raw == nil {
		return decimal.Decimal{}, false
	}

	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return decimal.Decimal{}, false
	}

	bound, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return bound, true
}
