package fdc

import (
	"strings"

	"github.com/wellnest/backend/internal/domain"
)

// nutrientKinds maps each canonical nutrient kind to the lowercase keyword
// matched against upstream nutrient names. Matching is case-insensitive
// substring containment, first match in upstream order wins. That tie-break
// is inherently ambiguous ("Carbohydrate, by difference" vs other
// carbohydrate rows) and depends on upstream ordering staying stable; it is
// kept as-is rather than silently replaced with a different rule.
var nutrientKinds = []struct {
	keyword string
	field   func(*domain.FoodRecord) **float64
}{
	{"energy", func(r *domain.FoodRecord) **float64 { return &r.Calories }},
	{"protein", func(r *domain.FoodRecord) **float64 { return &r.Protein }},
	{"carbohydrate", func(r *domain.FoodRecord) **float64 { return &r.Carbohydrates }},
	{"total lipid", func(r *domain.FoodRecord) **float64 { return &r.Fat }},
	{"fiber", func(r *domain.FoodRecord) **float64 { return &r.Fiber }},
	{"sugars", func(r *domain.FoodRecord) **float64 { return &r.Sugar }},
	{"sodium", func(r *domain.FoodRecord) **float64 { return &r.Sodium }},
}

// Normalize maps one raw FDC record into a FoodRecord. Nutrient kinds with no
// matching upstream row stay nil (unknown, not zero). A matched negative value
// is also treated as unknown so normalized fields are never negative. The only
// error case is a record missing its identity fields.
func Normalize(food *domain.FDCFood) (*domain.FoodRecord, error) {
	if food == nil || food.FdcID == 0 || food.Description == "" {
		return nil, domain.ErrMalformedRecord
	}

	record := &domain.FoodRecord{
		FdcID:           food.FdcID,
		Description:     food.Description,
		BrandOwner:      food.BrandOwner,
		ServingSize:     food.ServingSize,
		ServingSizeUnit: food.ServingSizeUnit,
	}

	for _, kind := range nutrientKinds {
		if v := findNutrient(food.FoodNutrients, kind.keyword); v != nil && *v >= 0 {
			*kind.field(record) = v
		}
	}

	return record, nil
}

// findNutrient returns the amount of the first nutrient row whose name
// contains the keyword, or nil if none matches.
func findNutrient(nutrients []domain.FDCNutrient, keyword string) *float64 {
	for _, n := range nutrients {
		if strings.Contains(strings.ToLower(n.Name()), keyword) {
			return n.AmountValue()
		}
	}
	return nil
}

// Breakdown maps a raw detail record into the full unreduced nutrient list.
// Rows without an amount are reported as 0, matching the upstream convention
// for trace nutrients.
func Breakdown(food *domain.FDCFood) (*domain.FoodDetails, error) {
	if food == nil || food.FdcID == 0 || food.Description == "" {
		return nil, domain.ErrMalformedRecord
	}

	nutrients := make([]domain.NutrientAmount, 0, len(food.FoodNutrients))
	for _, n := range food.FoodNutrients {
		amount := 0.0
		if v := n.AmountValue(); v != nil {
			amount = *v
		}
		nutrients = append(nutrients, domain.NutrientAmount{
			Name:   n.Name(),
			Amount: amount,
			Unit:   n.Unit(),
		})
	}

	return &domain.FoodDetails{
		FdcID:       food.FdcID,
		Description: food.Description,
		Nutrients:   nutrients,
	}, nil
}
