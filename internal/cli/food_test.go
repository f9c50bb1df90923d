package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eats-health/eats/internal/models"
	"github.com/eats-health/eats/internal/services"
)

func TestWriteFoodLog_TotalsAndMealSplit(t *testing.T) {
	entries := []models.FoodEntry{
		{ID: "id-1", Food: "Oats", Calories: 350, Date: "August 21, 2026", Time: "08:10", Meal: models.MealBreakfast},
		{ID: "id-2", Food: "Rice", Calories: 700, Date: "August 21, 2026", Time: "12:30", Meal: models.MealLunch},
		{ID: "id-3", Food: "Toast", Calories: 200, Date: "August 22, 2026", Time: "07:55", Meal: models.MealBreakfast},
	}

	var out bytes.Buffer
	require.NoError(t, writeFoodLog(&out, services.GroupFoodByDate(entries)))
	got := out.String()

	assert.Contains(t, got, "Total for August 21, 2026: 1050 calories")
	assert.Contains(t, got, "By meal: Breakfast 350, Lunch 700")
	assert.Contains(t, got, "Total for August 22, 2026: 200 calories")
	assert.Contains(t, got, "By meal: Breakfast 200")

	// Dates render in first-seen order, each with its own table header.
	assert.Less(t, strings.Index(got, "August 21, 2026"), strings.Index(got, "August 22, 2026"))
	assert.Equal(t, 2, strings.Count(got, "TIME"))
}

func TestMealSplit_MenuOrder(t *testing.T) {
	split := mealSplit(map[models.MealType]int{
		models.MealSnack:     90,
		models.MealBreakfast: 350,
		models.MealDinner:    600,
	})

	assert.Equal(t, "Breakfast 350, Dinner 600, Snack 90", split)
}
