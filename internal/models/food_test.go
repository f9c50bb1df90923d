package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFoodEntryValidate(t *testing.T) {
	valid := FoodEntry{Food: "Adobo", Calories: 450, Meal: MealLunch}

	tests := []struct {
		name    string
		mutate  func(*FoodEntry)
		wantErr string
	}{
		{
			name:   "valid entry",
			mutate: func(e *FoodEntry) {},
		},
		{
			name:    "empty food",
			mutate:  func(e *FoodEntry) { e.Food = "" },
			wantErr: "food item is required",
		},
		{
			name:    "zero calories",
			mutate:  func(e *FoodEntry) { e.Calories = 0 },
			wantErr: "calories must be between",
		},
		{
			name:    "negative calories",
			mutate:  func(e *FoodEntry) { e.Calories = -10 },
			wantErr: "calories must be between",
		},
		{
			name:    "calories above cap",
			mutate:  func(e *FoodEntry) { e.Calories = MaxCalories + 1 },
			wantErr: "calories must be between",
		},
		{
			name:    "unknown meal type",
			mutate:  func(e *FoodEntry) { e.Meal = "Brunch" },
			wantErr: "unknown meal type",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)

			err := e.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidMealType(t *testing.T) {
	for _, m := range MealTypes {
		require.True(t, ValidMealType(m), "expected %q to be valid", m)
	}
	require.False(t, ValidMealType("Brunch"))
	require.False(t, ValidMealType("breakfast"), "meal types are case-sensitive")
	require.False(t, ValidMealType(""))
}
