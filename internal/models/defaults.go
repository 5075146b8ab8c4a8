package models

// Category carries the display metadata for a fixed top-level category.
type Category struct {
	ID   CategoryID
	Name string
	Tips []string
}

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		{
			ID:   CategoryExercise,
			Name: "Exercise",
			Tips: []string{"Consistency is key!", "Don't forget to stretch.", "Stay hydrated during workouts."},
		},
		{
			ID:   CategoryHealth,
			Name: "Health",
			Tips: []string{"Eat more greens today.", "Limit sugar intake.", "Water is your best friend.", "Track your weight weekly."},
		},
		{
			ID:   CategoryStudy,
			Name: "Learning",
			Tips: []string{"Review yesterday's notes.", "Focus for 25 mins, break for 5.", "Practice makes perfect."},
		},
		{
			ID:   CategoryWork,
			Name: "Work",
			Tips: []string{"Clear your inbox.", "Prioritize the hardest task.", "Celebrate small wins."},
		},
	}
}

// CategoryByID looks up a fixed category.
func CategoryByID(id CategoryID) (Category, bool) {
	for _, c := range Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// DefaultSubCategories returns a fresh copy of the seed set every new
// document starts with.
func DefaultSubCategories() []SubCategory {
	return []SubCategory{
		{ID: "ex-run", CategoryID: CategoryExercise, Name: "Running", MeasureType: MeasureTime},
		{ID: "ex-gym", CategoryID: CategoryExercise, Name: "Gym", MeasureType: MeasureTime},

		{ID: "h-veg", CategoryID: CategoryHealth, Name: "Vegetarian Meal", MeasureType: MeasureText},
		{ID: "h-water", CategoryID: CategoryHealth, Name: "Drink Water", MeasureType: MeasureText},
		{ID: "h-weight", CategoryID: CategoryHealth, Name: "Body Weight", MeasureType: MeasureNumber, Unit: "kg"},
		{ID: "h-meal", CategoryID: CategoryHealth, Name: "Meal Log", MeasureType: MeasureText},

		{ID: "st-read", CategoryID: CategoryStudy, Name: "Reading", MeasureType: MeasureTime},
		{ID: "st-cpp", CategoryID: CategoryStudy, Name: "C++ Practice", MeasureType: MeasureTime},
		{ID: "st-lc", CategoryID: CategoryStudy, Name: "LeetCode", MeasureType: MeasureTime},

		{ID: "wk-meet", CategoryID: CategoryWork, Name: "Meetings", MeasureType: MeasureTime},
		{ID: "wk-deep", CategoryID: CategoryWork, Name: "Deep Work", MeasureType: MeasureTime},
		{ID: "wk-win", CategoryID: CategoryWork, Name: "Achievement", MeasureType: MeasureText},
		{ID: "wk-break", CategoryID: CategoryWork, Name: "Breakthrough", MeasureType: MeasureText},
	}
}

// CurrentVersion is the schema version stamped on every new or
// migrated document.
const CurrentVersion = 2

// NewAppData builds a fresh document for the given profile, seeded with
// the default subcategories and empty histories.
func NewAppData(user UserProfile) *AppData {
	return &AppData{
		Version:        CurrentVersion,
		SubCategories:  DefaultSubCategories(),
		Records:        []ActivityRecord{},
		Plans:          []Plan{},
		RecurringPlans: []RecurringPlan{},
		Moods:          []DailyMood{},
		User:           user,
	}
}
