package domain

// Quote is one motivational quote.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Weather is a current-conditions snapshot with an activity suggestion.
type Weather struct {
	Condition   string `json:"condition"`
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
	Icon        string `json:"icon"`
}

// NutritionTip is a short actionable tip. Calories is set only for tips that
// reference a concrete food.
type NutritionTip struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Calories *int   `json:"calories,omitempty"`
	Type     string `json:"type"` // "hydration", "nutrition" or "exercise"
}
