package models

import (
	"errors"
	"fmt"
)

// MealType classifies a food entry.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// MealTypes lists the accepted meal types in menu order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// MaxCalories caps a single food entry.
const MaxCalories = 5000

// Timestamp layouts the tracker files have always used.
const (
	TrackerDateLayout = "January 02, 2006"
	TrackerTimeLayout = "15:04"
)

// FoodEntry is one logged food item. Date and Time keep their display form
// so the log groups and filters by the exact strings shown to the user.
type FoodEntry struct {
	ID       string   `json:"id"`
	Food     string   `json:"food"`
	Calories int      `json:"calories"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Meal     MealType `json:"meal_type"`
}

// Validate checks the caller-supplied fields. ID, Date, and Time are stamped
// by the service and are not validated here.
func (e FoodEntry) Validate() error {
	if e.Food == "" {
		return errors.New("food item is required")
	}
	if e.Calories <= 0 || e.Calories > MaxCalories {
		return fmt.Errorf("calories must be between 1 and %d", MaxCalories)
	}
	if !ValidMealType(e.Meal) {
		return fmt.Errorf("unknown meal type %q", e.Meal)
	}
	return nil
}

// ValidMealType reports whether m is one of the accepted meal types.
func ValidMealType(m MealType) bool {
	for _, t := range MealTypes {
		if m == t {
			return true
		}
	}
	return false
}
