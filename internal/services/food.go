package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eats-health/eats/internal/logging"
	"github.com/eats-health/eats/internal/models"
	"github.com/eats-health/eats/internal/repositories/food"
)

// FoodService logs food entries and summarizes them for the log view.
type FoodService struct {
	repo   food.Repository
	logger logging.Logger
	now    func() time.Time
}

func NewFoodService(repo food.Repository, logger logging.Logger) *FoodService {
	return &FoodService{repo: repo, logger: logger, now: time.Now}
}

// Add validates, title-cases, stamps, and appends one food entry, returning
// the entry as stored.
func (s *FoodService) Add(ctx context.Context, item string, calories int, meal models.MealType) (models.FoodEntry, error) {
	now := s.now()
	entry := models.FoodEntry{
		ID:       uuid.NewString(),
		Food:     titleCase(item),
		Calories: calories,
		Date:     now.Format(models.TrackerDateLayout),
		Time:     now.Format(models.TrackerTimeLayout),
		Meal:     meal,
	}
	if err := entry.Validate(); err != nil {
		return models.FoodEntry{}, err
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return models.FoodEntry{}, err
	}

	s.logger.Info(ctx, "food entry logged", "food", entry.Food, "calories", entry.Calories)
	return entry, nil
}

// List returns every logged entry in log order.
func (s *FoodService) List(ctx context.Context) ([]models.FoodEntry, error) {
	return s.repo.GetAll(ctx)
}

// ListByDate returns the entries logged on day. Matching compares the stored
// display date, so it is exact for entries this application wrote.
func (s *FoodService) ListByDate(ctx context.Context, day time.Time) ([]models.FoodEntry, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	want := day.Format(models.TrackerDateLayout)
	matched := make([]models.FoodEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date == want {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Delete removes one entry by ID.
func (s *FoodService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "food entry deleted", "id", id)
	return nil
}

// Clear removes the whole food log.
func (s *FoodService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info(ctx, "food log cleared")
	return nil
}

// titleCase normalizes a food item name ("fried rice" -> "Fried Rice").
// cases.Title returns a stateful Caser, so a fresh one is built per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// FoodMetrics summarizes a set of food entries.
type FoodMetrics struct {
	Entries       int
	TotalCalories int
	AvgCalories   float64
	TopMeal       models.MealType
}

// SummarizeFood computes the headline numbers the food log shows. TopMeal is
// the most frequent meal type, with ties resolved in menu order.
func SummarizeFood(entries []models.FoodEntry) FoodMetrics {
	m := FoodMetrics{Entries: len(entries)}
	if len(entries) == 0 {
		return m
	}

	counts := make(map[models.MealType]int, len(models.MealTypes))
	for _, e := range entries {
		m.TotalCalories += e.Calories
		counts[e.Meal]++
	}
	m.AvgCalories = float64(m.TotalCalories) / float64(len(entries))

	best := -1
	for _, meal := range models.MealTypes {
		if counts[meal] > best {
			best = counts[meal]
			m.TopMeal = meal
		}
	}
	return m
}

// DailyFoodLog groups one date's entries with their calorie totals.
type DailyFoodLog struct {
	Date          string
	Entries       []models.FoodEntry
	TotalCalories int
	MealCalories  map[models.MealType]int
}

// GroupFoodByDate splits entries into per-date logs, keeping dates in
// first-seen order and entries in log order within each date.
func GroupFoodByDate(entries []models.FoodEntry) []DailyFoodLog {
	index := make(map[string]int, len(entries))
	days := make([]DailyFoodLog, 0, len(entries))

	for _, e := range entries {
		i, ok := index[e.Date]
		if !ok {
			i = len(days)
			index[e.Date] = i
			days = append(days, DailyFoodLog{
				Date:         e.Date,
				MealCalories: make(map[models.MealType]int, len(models.MealTypes)),
			})
		}
		days[i].Entries = append(days[i].Entries, e)
		days[i].TotalCalories += e.Calories
		days[i].MealCalories[e.Meal] += e.Calories
	}
	return days
}
