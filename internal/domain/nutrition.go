package domain

// FoodRecord is a normalized food entry on a per-100g basis.
// Nutrient fields are pointers: nil means the upstream record did not report
// that nutrient, which is distinct from a reported zero. Coalescing nil to 0
// happens only at aggregation time, never here.
type FoodRecord struct {
	FdcID           int      `json:"fdcId"`
	Description     string   `json:"description"`
	BrandOwner      string   `json:"brandOwner,omitempty"`
	Calories        *float64 `json:"calories,omitempty"`
	Protein         *float64 `json:"protein,omitempty"`
	Carbohydrates   *float64 `json:"carbohydrates,omitempty"`
	Fat             *float64 `json:"fat,omitempty"`
	Fiber           *float64 `json:"fiber,omitempty"`
	Sugar           *float64 `json:"sugar,omitempty"`
	Sodium          *float64 `json:"sodium,omitempty"`
	ServingSize     *float64 `json:"servingSize,omitempty"`
	ServingSizeUnit string   `json:"servingSizeUnit,omitempty"`
}

// SearchPage is the result of one search call. It is transient and fully
// superseded by the next search.
type SearchPage struct {
	Foods       []FoodRecord `json:"foods"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
}

// FoodDetails is the full nutrient breakdown for one record, not reduced to
// the canonical kinds.
type FoodDetails struct {
	FdcID       int              `json:"fdcId"`
	Description string           `json:"description"`
	Nutrients   []NutrientAmount `json:"nutrients"`
}

// NutrientAmount is one (name, amount, unit) triple from a detail lookup.
type NutrientAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// FDCFood represents a raw food item from the USDA FoodData Central API.
type FDCFood struct {
	FdcID           int           `json:"fdcId"`
	Description     string        `json:"description"`
	BrandOwner      string        `json:"brandOwner,omitempty"`
	DataType        string        `json:"dataType,omitempty"`
	ServingSize     *float64      `json:"servingSize,omitempty"`
	ServingSizeUnit string        `json:"servingSizeUnit,omitempty"`
	FoodNutrients   []FDCNutrient `json:"foodNutrients"`
}

// FDCNutrient is a single nutrient row from FDC. The search endpoint reports
// a flat shape (nutrientName/value/unitName) while the detail endpoint nests
// the metadata (nutrient.name, amount). Both sets of fields are decoded and
// the accessors below pick whichever is populated.
type FDCNutrient struct {
	NutrientName string           `json:"nutrientName,omitempty"`
	Value        *float64         `json:"value,omitempty"`
	UnitName     string           `json:"unitName,omitempty"`
	Nutrient     *FDCNutrientMeta `json:"nutrient,omitempty"`
	Amount       *float64         `json:"amount,omitempty"`
}

// FDCNutrientMeta is the nested nutrient metadata used by the detail endpoint.
type FDCNutrientMeta struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	UnitName string `json:"unitName,omitempty"`
}

// Name returns the nutrient name regardless of which wire shape was decoded.
func (n FDCNutrient) Name() string {
	if n.Nutrient != nil && n.Nutrient.Name != "" {
		return n.Nutrient.Name
	}
	return n.NutrientName
}

// AmountValue returns the reported amount, or nil if neither shape carried one.
func (n FDCNutrient) AmountValue() *float64 {
	if n.Amount != nil {
		return n.Amount
	}
	return n.Value
}

// Unit returns the unit name regardless of wire shape.
func (n FDCNutrient) Unit() string {
	if n.Nutrient != nil && n.Nutrient.UnitName != "" {
		return n.Nutrient.UnitName
	}
	return n.UnitName
}

// FDCSearchResponse represents the raw response from the FDC search API.
type FDCSearchResponse struct {
	Foods       []FDCFood `json:"foods"`
	TotalHits   int       `json:"totalHits"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
}
