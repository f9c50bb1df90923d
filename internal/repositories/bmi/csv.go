package bmi

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/eats-health/eats/internal/common"
	"github.com/eats-health/eats/internal/models"
)

// csvHeader matches the column layout the history file has always used.
var csvHeader = []string{"Date", "Weight (kg)", "Height (cm)", "BMI", "Classification", "Suggestion"}

// FileRepository appends measurements to a CSV file, writing the header row
// when it creates the file.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// GetAll implements Repository.
func (r *FileRepository) GetAll(ctx context.Context) ([]models.BMIRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.BMIRecord{}, nil
		}
		return nil, fmt.Errorf("%w: opening %s: %w", common.ErrStorage, r.path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", common.ErrStorage, r.path, err)
	}
	if len(rows) == 0 {
		return []models.BMIRecord{}, nil
	}

	// First row is the header.
	records := make([]models.BMIRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", common.ErrStorage, r.path, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Append implements Repository.
func (r *FileRepository) Append(ctx context.Context, record models.BMIRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(r.path); errors.Is(err, os.ErrNotExist) {
		writeHeader = true
	} else if err != nil {
		return fmt.Errorf("%w: stat %s: %w", common.ErrStorage, r.path, err)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", common.ErrStorage, r.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("%w: writing header: %w", common.ErrStorage, err)
		}
	}
	if err := w.Write(formatRow(record)); err != nil {
		return fmt.Errorf("%w: writing row: %w", common.ErrStorage, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flushing %s: %w", common.ErrStorage, r.path, err)
	}
	return nil
}

func formatRow(rec models.BMIRecord) []string {
	return []string{
		rec.Date,
		strconv.FormatFloat(rec.Weight, 'f', -1, 64),
		strconv.FormatFloat(rec.Height, 'f', -1, 64),
		strconv.FormatFloat(rec.BMI, 'f', -1, 64),
		rec.Classification,
		rec.Suggestion,
	}
}

func parseRow(row []string) (models.BMIRecord, error) {
	if len(row) != len(csvHeader) {
		return models.BMIRecord{}, fmt.Errorf("row has %d columns, want %d", len(row), len(csvHeader))
	}

	weight, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return models.BMIRecord{}, fmt.Errorf("bad weight %q: %w", row[1], err)
	}
	height, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return models.BMIRecord{}, fmt.Errorf("bad height %q: %w", row[2], err)
	}
	value, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return models.BMIRecord{}, fmt.Errorf("bad bmi %q: %w", row[3], err)
	}

	return models.BMIRecord{
		Date:           row[0],
		Weight:         weight,
		Height:         height,
		BMI:            value,
		Classification: row[4],
		Suggestion:     row[5],
	}, nil
}
