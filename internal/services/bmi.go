package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/eats-health/eats/internal/logging"
	"github.com/eats-health/eats/internal/models"
	"github.com/eats-health/eats/internal/repositories/bmi"
)

// CalculateBMI converts weight in kilograms and height in centimeters into a
// BMI value rounded to two decimals.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, errors.New("height must be greater than zero")
	}
	meters := heightCm / 100
	return math.Round(weightKg/(meters*meters)*100) / 100, nil
}

// ClassifyBMI buckets a BMI value and pairs it with the standing suggestion
// text. The ranges are half-open, so every value lands in exactly one bucket.
func ClassifyBMI(value float64) (classification, suggestion string) {
	switch {
	case value < 18.5:
		return "Underweight", "Consider increasing calorie intake and consult a nutritionist."
	case value < 25:
		return "Normal weight", "Maintain balanced diet and regular exercise."
	case value < 30:
		return "Overweight", "Focus on healthy diet, exercise, and consult a professional."
	default:
		return "Obese", "Consult a doctor to develop a weight loss plan."
	}
}

// BMIService records measurements and serves the history view.
type BMIService struct {
	repo   bmi.Repository
	logger logging.Logger
	now    func() time.Time
}

func NewBMIService(repo bmi.Repository, logger logging.Logger) *BMIService {
	return &BMIService{repo: repo, logger: logger, now: time.Now}
}

// Record computes and classifies the BMI for a measurement, stamps it with
// today's date, and appends it to the history.
func (s *BMIService) Record(ctx context.Context, weightKg, heightCm float64) (models.BMIRecord, error) {
	if weightKg <= 0 {
		return models.BMIRecord{}, errors.New("weight must be greater than zero")
	}

	value, err := CalculateBMI(weightKg, heightCm)
	if err != nil {
		return models.BMIRecord{}, err
	}
	classification, suggestion := ClassifyBMI(value)

	record := models.BMIRecord{
		Date:           s.now().Format(models.BMIDateLayout),
		Weight:         weightKg,
		Height:         heightCm,
		BMI:            value,
		Classification: classification,
		Suggestion:     suggestion,
	}

	if err := s.repo.Append(ctx, record); err != nil {
		return models.BMIRecord{}, err
	}

	s.logger.Info(ctx, "bmi recorded", "bmi", record.BMI, "classification", record.Classification)
	return record, nil
}

// History returns every recorded measurement, oldest first.
func (s *BMIService) History(ctx context.Context) ([]models.BMIRecord, error) {
	return s.repo.GetAll(ctx)
}
