// Package bmi persists BMI measurements as rows of a CSV history file.
package bmi

import (
	"context"

	"github.com/eats-health/eats/internal/models"
)

// Repository is the BMI history storage contract.
type Repository interface {
	// GetAll returns every measurement in file order, oldest first. A
	// missing file yields an empty slice.
	GetAll(ctx context.Context) ([]models.BMIRecord, error)

	// Append adds one measurement to the end of the history.
	Append(ctx context.Context, record models.BMIRecord) error
}
