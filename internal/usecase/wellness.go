package usecase

import (
	"math/rand"
	"sync"

	"github.com/wellnest/backend/internal/domain"
)

// WellnessService serves the app's motivational content: quotes, weather
// suggestions, nutrition tips and mood suggestions. The random source is
// injected so tests can pin the selection; rand.Rand is not safe for
// concurrent use, so draws are serialized.
type WellnessService struct {
	mutex sync.Mutex
	rng   *rand.Rand
}

// NewWellnessService creates a wellness service using the given random
// source.
func NewWellnessService(rng *rand.Rand) *WellnessService {
	return &WellnessService{rng: rng}
}

// Quote returns one motivational quote.
func (s *WellnessService) Quote() domain.Quote {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return quotes[s.rng.Intn(len(quotes))]
}

// Weather returns a current-conditions snapshot with an activity suggestion.
func (s *WellnessService) Weather() domain.Weather {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return weatherConditions[s.rng.Intn(len(weatherConditions))]
}

// Tips returns 2 or 3 nutrition tips drawn without repetition.
func (s *WellnessService) Tips() []domain.NutritionTip {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	count := 2 + s.rng.Intn(2)
	picked := s.rng.Perm(len(nutritionTips))[:count]

	tips := make([]domain.NutritionTip, 0, count)
	for _, i := range picked {
		tips = append(tips, nutritionTips[i])
	}
	return tips
}

// MoodSuggestions returns coping suggestions for a mood. Unknown moods fall
// back to the stressed list.
func (s *WellnessService) MoodSuggestions(mood string) []string {
	if suggestions, ok := moodSuggestions[mood]; ok {
		return suggestions
	}
	return moodSuggestions["stressed"]
}

var quotes = []domain.Quote{
	{Text: "The groundwork for all happiness is good health.", Author: "Leigh Hunt"},
	{Text: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn"},
	{Text: "Health is a state of complete harmony of the body, mind and spirit.", Author: "B.K.S. Iyengar"},
	{Text: "The first wealth is health.", Author: "Ralph Waldo Emerson"},
	{Text: "Your body can stand almost anything. It's your mind that you have to convince.", Author: "Unknown"},
	{Text: "A healthy outside starts from the inside.", Author: "Robert Urich"},
	{Text: "Exercise is king. Nutrition is queen. Put them together and you've got a kingdom.", Author: "Jack LaLanne"},
	{Text: "Wellness is the complete integration of body, mind, and spirit.", Author: "Greg Anderson"},
	{Text: "To keep the body in good health is a duty... otherwise we shall not be able to keep our mind strong and clear.", Author: "Buddha"},
}

var weatherConditions = []domain.Weather{
	{
		Condition:   "sunny",
		Temperature: 72,
		Description: "Sunny and warm",
		Suggestion:  "Perfect weather for outdoor activities! Consider a 30-minute walk or jog.",
		Icon:        "☀️",
	},
	{
		Condition:   "cloudy",
		Temperature: 65,
		Description: "Partly cloudy",
		Suggestion:  "Great weather for outdoor exercises. Maybe try some yoga in the park?",
		Icon:        "⛅",
	},
	{
		Condition:   "rainy",
		Temperature: 58,
		Description: "Light rain",
		Suggestion:  "Indoor day! Perfect time for meditation, stretching, or home workouts.",
		Icon:        "🌧️",
	},
	{
		Condition:   "cold",
		Temperature: 45,
		Description: "Cold and crisp",
		Suggestion:  "Bundle up for a brisk walk, or enjoy a warm herbal tea while doing indoor exercises.",
		Icon:        "🌡️",
	},
}

func calorieCount(n int) *int { return &n }

var nutritionTips = []domain.NutritionTip{
	{
		Title:   "Hydration Boost",
		Message: "Start your day with a glass of warm lemon water to boost metabolism and hydration.",
		Type:    "hydration",
	},
	{
		Title:    "Protein Power",
		Message:  "Include a palm-sized portion of protein in each meal to maintain stable energy levels.",
		Calories: calorieCount(150),
		Type:     "nutrition",
	},
	{
		Title:    "Green Fuel",
		Message:  "Add a handful of spinach to your smoothie for iron, folate, and antioxidants.",
		Calories: calorieCount(25),
		Type:     "nutrition",
	},
	{
		Title:    "Pre-Workout Snack",
		Message:  "Have a banana 30 minutes before exercise for quick, natural energy.",
		Calories: calorieCount(105),
		Type:     "exercise",
	},
	{
		Title:   "Evening Wind-Down",
		Message: "Chamomile tea before bed can improve sleep quality and reduce inflammation.",
		Type:    "hydration",
	},
	{
		Title:    "Omega-3 Boost",
		Message:  "Include walnuts or chia seeds in your breakfast for brain health and inflammation reduction.",
		Calories: calorieCount(180),
		Type:     "nutrition",
	},
	{
		Title:   "Mindful Eating",
		Message: "Eat slowly and chew thoroughly to improve digestion and feel more satisfied.",
		Type:    "nutrition",
	},
	{
		Title:    "Post-Workout Recovery",
		Message:  "Chocolate milk is an excellent post-workout recovery drink with the perfect protein-carb ratio.",
		Calories: calorieCount(160),
		Type:     "exercise",
	},
}

var moodSuggestions = map[string][]string{
	"happy": {
		"Keep the momentum going with a fun outdoor activity!",
		"Share your positive energy by helping someone today.",
		"Journal about what made you happy to remember later.",
	},
	"sad": {
		"Try 10 minutes of deep breathing or meditation.",
		"Listen to uplifting music or call a friend.",
		"Go for a gentle walk in nature if possible.",
	},
	"stressed": {
		"Practice the 4-7-8 breathing technique for instant calm.",
		"Take a 5-minute break to stretch or move your body.",
		"Write down your worries to get them out of your head.",
	},
	"energetic": {
		"Channel that energy into a workout or dance session!",
		"Tackle a task you've been putting off.",
		"Do some creative work or start a new project.",
	},
	"tired": {
		"Make sure you're staying hydrated throughout the day.",
		"Consider a 10-20 minute power nap if possible.",
		"Check if you need more sleep or better sleep quality.",
	},
}
