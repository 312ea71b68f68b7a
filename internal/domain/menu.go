package domain

// Meals lists the dishes served on one day.
type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// DayMenu pairs a weekday name with its meals.
type DayMenu struct {
	Day   string `json:"day"`
	Meals Meals  `json:"meals"`
}
