package fdc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellnest/backend/internal/domain"
)

func fval(v float64) *float64 { return &v }

func flatNutrient(name string, value float64) domain.FDCNutrient {
	return domain.FDCNutrient{NutrientName: name, Value: fval(value), UnitName: "G"}
}

func nestedNutrient(name string, amount float64) domain.FDCNutrient {
	return domain.FDCNutrient{
		Nutrient: &domain.FDCNutrientMeta{Name: name, UnitName: "G"},
		Amount:   fval(amount),
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		food domain.FDCFood
		want domain.FoodRecord
	}{
		{
			name: "all seven kinds from search shape",
			food: domain.FDCFood{
				FdcID:       171688,
				Description: "Milk, whole",
				FoodNutrients: []domain.FDCNutrient{
					flatNutrient("Energy", 61),
					flatNutrient("Protein", 3.15),
					flatNutrient("Carbohydrate, by difference", 4.8),
					flatNutrient("Total lipid (fat)", 3.25),
					flatNutrient("Fiber, total dietary", 0),
					flatNutrient("Sugars, total including NLEA", 5.05),
					flatNutrient("Sodium, Na", 43),
				},
			},
			want: domain.FoodRecord{
				FdcID:         171688,
				Description:   "Milk, whole",
				Calories:      fval(61),
				Protein:       fval(3.15),
				Carbohydrates: fval(4.8),
				Fat:           fval(3.25),
				Fiber:         fval(0),
				Sugar:         fval(5.05),
				Sodium:        fval(43),
			},
		},
		{
			name: "detail shape with nested nutrient metadata",
			food: domain.FDCFood{
				FdcID:       168462,
				Description: "Apple, raw",
				FoodNutrients: []domain.FDCNutrient{
					nestedNutrient("Energy", 52),
					nestedNutrient("Carbohydrate, by difference", 13.8),
				},
			},
			want: domain.FoodRecord{
				FdcID:         168462,
				Description:   "Apple, raw",
				Calories:      fval(52),
				Carbohydrates: fval(13.8),
			},
		},
		{
			name: "unmatched kinds stay absent rather than zero",
			food: domain.FDCFood{
				FdcID:       1001,
				Description: "Olive oil",
				FoodNutrients: []domain.FDCNutrient{
					flatNutrient("Total lipid (fat)", 100),
				},
			},
			want: domain.FoodRecord{
				FdcID:       1001,
				Description: "Olive oil",
				Fat:         fval(100),
			},
		},
		{
			name: "no nutrient rows at all",
			food: domain.FDCFood{
				FdcID:       1002,
				Description: "Water",
			},
			want: domain.FoodRecord{
				FdcID:       1002,
				Description: "Water",
			},
		},
		{
			name: "matching is case-insensitive substring",
			food: domain.FDCFood{
				FdcID:       1003,
				Description: "Cheddar cheese",
				FoodNutrients: []domain.FDCNutrient{
					flatNutrient("ENERGY (Atwater General Factors)", 403),
					flatNutrient("protein", 24.9),
				},
			},
			want: domain.FoodRecord{
				FdcID:       1003,
				Description: "Cheddar cheese",
				Calories:    fval(403),
				Protein:     fval(24.9),
			},
		},
		{
			name: "first match in upstream order wins",
			food: domain.FDCFood{
				FdcID:       1004,
				Description: "Bread, white",
				FoodNutrients: []domain.FDCNutrient{
					flatNutrient("Carbohydrate, by difference", 49),
					flatNutrient("Carbohydrate, other", 2),
				},
			},
			want: domain.FoodRecord{
				FdcID:         1004,
				Description:   "Bread, white",
				Carbohydrates: fval(49),
			},
		},
		{
			name: "negative matched value is treated as unknown",
			food: domain.FDCFood{
				FdcID:       1005,
				Description: "Bad row",
				FoodNutrients: []domain.FDCNutrient{
					flatNutrient("Energy", -10),
					flatNutrient("Protein", 5),
				},
			},
			want: domain.FoodRecord{
				FdcID:       1005,
				Description: "Bad row",
				Protein:     fval(5),
			},
		},
		{
			name: "brand and serving info carried through",
			food: domain.FDCFood{
				FdcID:           2100,
				Description:     "Greek yogurt",
				BrandOwner:      "Chobani",
				ServingSize:     fval(150),
				ServingSizeUnit: "g",
			},
			want: domain.FoodRecord{
				FdcID:           2100,
				Description:     "Greek yogurt",
				BrandOwner:      "Chobani",
				ServingSize:     fval(150),
				ServingSizeUnit: "g",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(&tt.food)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestNormalize_NeverNegative(t *testing.T) {
	food := domain.FDCFood{
		FdcID:       1,
		Description: "x",
		FoodNutrients: []domain.FDCNutrient{
			flatNutrient("Energy", -1),
			flatNutrient("Protein", -0.5),
			flatNutrient("Sodium, Na", -100),
		},
	}

	got, err := Normalize(&food)
	require.NoError(t, err)

	for _, v := range []*float64{got.Calories, got.Protein, got.Carbohydrates, got.Fat, got.Fiber, got.Sugar, got.Sodium} {
		if v != nil {
			assert.GreaterOrEqual(t, *v, 0.0)
		}
	}
}

func TestNormalize_MalformedRecord(t *testing.T) {
	tests := []struct {
		name string
		food *domain.FDCFood
	}{
		{"nil record", nil},
		{"missing fdcId", &domain.FDCFood{Description: "no id"}},
		{"missing description", &domain.FDCFood{FdcID: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.food)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, domain.ErrMalformedRecord)
		})
	}
}

func TestBreakdown(t *testing.T) {
	food := domain.FDCFood{
		FdcID:       171688,
		Description: "Milk, whole",
		FoodNutrients: []domain.FDCNutrient{
			nestedNutrient("Energy", 61),
			nestedNutrient("Water", 88.1),
			{Nutrient: &domain.FDCNutrientMeta{Name: "Caffeine", UnitName: "MG"}}, // no amount reported
		},
	}

	got, err := Breakdown(&food)
	require.NoError(t, err)

	assert.Equal(t, 171688, got.FdcID)
	assert.Equal(t, "Milk, whole", got.Description)
	require.Len(t, got.Nutrients, 3)
	assert.Equal(t, domain.NutrientAmount{Name: "Energy", Amount: 61, Unit: "G"}, got.Nutrients[0])
	assert.Equal(t, domain.NutrientAmount{Name: "Water", Amount: 88.1, Unit: "G"}, got.Nutrients[1])
	// Rows with no reported amount come back as 0, not dropped.
	assert.Equal(t, domain.NutrientAmount{Name: "Caffeine", Amount: 0, Unit: "MG"}, got.Nutrients[2])
}

func TestBreakdown_MalformedRecord(t *testing.T) {
	got, err := Breakdown(&domain.FDCFood{FdcID: 7})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}
