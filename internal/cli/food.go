package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/eats-health/eats/internal/common"
	"github.com/eats-health/eats/internal/models"
	"github.com/eats-health/eats/internal/services"
)

// Log view filters shared by the food and sleep trackers.
const (
	viewToday      = "Today"
	viewAllTime    = "All Time"
	viewSelectDate = "Select Date"
)

var viewOptions = []string{viewToday, viewAllTime, viewSelectDate}

// mealOptions renders models.MealTypes as prompt choices.
func mealOptions() []string {
	opts := make([]string, len(models.MealTypes))
	for i, m := range models.MealTypes {
		opts[i] = string(m)
	}
	return opts
}

// AddFood prompts for a food item, calorie count, and meal type, then logs
// the entry stamped with the current date and time.
func (a *App) AddFood(ctx context.Context) error {
	item, err := GetSimpleText(a.reader, "Food item", os.Stdout)
	if err != nil {
		return err
	}
	if item == "" {
		fmt.Println("Please enter both food item and calories.")
		return nil
	}

	calories, err := GetInt(a.reader, "Calories", os.Stdout)
	if err != nil {
		log.Printf("error reading calories: %v", err)
		return err
	}

	meal, err := GetChoice(a.reader, "Meal", mealOptions(), os.Stdout)
	if err != nil {
		return err
	}

	entry, err := a.foodService.Add(ctx, item, calories, models.MealType(meal))
	if err != nil {
		log.Printf("error logging food entry: %v", err)
		return err
	}

	fmt.Printf("Logged %s (%d calories) as %s\n", entry.Food, entry.Calories, entry.Meal)
	return nil
}

// FoodLog shows entries for the selected period, summary metrics first, then
// one table per date with the calorie total and per-meal split under each.
func (a *App) FoodLog(ctx context.Context) error {
	entries, err := a.selectFoodEntries(ctx)
	if err != nil {
		log.Printf("error reading food log: %v", err)
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No food data available for the selected period.")
		return nil
	}

	fmt.Println("Your Food Logs")
	m := services.SummarizeFood(entries)
	fmt.Printf("Total Entries: %d\n", m.Entries)
	fmt.Printf("Total Calories: %d\n", m.TotalCalories)
	fmt.Printf("Average Calories per Meal: %.1f\n", m.AvgCalories)
	fmt.Printf("Most Frequent Meal: %s\n", m.TopMeal)

	return writeFoodLog(os.Stdout, services.GroupFoodByDate(entries))
}

// writeFoodLog renders each date's entries as a table followed by the
// date's calorie total and its split across meals.
func writeFoodLog(w io.Writer, days []services.DailyFoodLog) error {
	for _, day := range days {
		fmt.Fprintf(w, "\n%s\n", day.Date)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tMEAL\tFOOD\tCALORIES\tID")
		for _, e := range day.Entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", e.Time, e.Meal, e.Food, e.Calories, e.ID)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "Total for %s: %d calories\n", day.Date, day.TotalCalories)
		fmt.Fprintf(w, "By meal: %s\n", mealSplit(day.MealCalories))
	}
	return nil
}

// mealSplit formats per-meal calorie totals in menu order, skipping meals
// with no entries, e.g. "Breakfast 350, Lunch 700".
func mealSplit(mealCalories map[models.MealType]int) string {
	parts := make([]string, 0, len(mealCalories))
	for _, meal := range models.MealTypes {
		if calories, ok := mealCalories[meal]; ok {
			parts = append(parts, fmt.Sprintf("%s %d", meal, calories))
		}
	}
	return strings.Join(parts, ", ")
}

// selectFoodEntries applies the Today / All Time / Select Date filter.
func (a *App) selectFoodEntries(ctx context.Context) ([]models.FoodEntry, error) {
	view, err := GetChoice(a.reader, "View by", viewOptions, os.Stdout)
	if err != nil {
		return nil, err
	}

	switch view {
	case viewToday:
		return a.foodService.ListByDate(ctx, time.Now())
	case viewSelectDate:
		day, err := a.getDate()
		if err != nil {
			return nil, err
		}
		return a.foodService.ListByDate(ctx, day)
	default:
		return a.foodService.List(ctx)
	}
}

// getDate reads a calendar date in the tracker's display format. The layout
// string doubles as the example because it is itself a valid date.
func (a *App) getDate() (time.Time, error) {
	s, err := GetSimpleText(a.reader, "Enter date (e.g. "+models.TrackerDateLayout+")", os.Stdout)
	if err != nil {
		return time.Time{}, err
	}
	day, err := time.Parse(models.TrackerDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	return day, nil
}

// DeleteFood removes one food entry by its id (shown in the log view).
func (a *App) DeleteFood(ctx context.Context, id string) error {
	if err := a.foodService.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Println("No food entry with that id.")
			return nil
		}
		log.Printf("error deleting food entry: %v", err)
		return err
	}
	fmt.Println("Food entry deleted.")
	return nil
}

// ClearFood wipes the food log after an explicit confirmation.
func (a *App) ClearFood(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Are you sure you want to delete all food data?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.foodService.Clear(ctx); err != nil {
		log.Printf("error clearing food log: %v", err)
		return err
	}
	fmt.Println("All food data has been cleared!")
	return nil
}
