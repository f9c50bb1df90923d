package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eats-health/eats/internal/logging"
	"github.com/eats-health/eats/internal/models"
	"github.com/eats-health/eats/internal/repositories/sleep"
)

// SleepService logs nights of sleep and summarizes them.
type SleepService struct {
	repo   sleep.Repository
	logger logging.Logger
	now    func() time.Time
}

func NewSleepService(repo sleep.Repository, logger logging.Logger) *SleepService {
	return &SleepService{repo: repo, logger: logger, now: time.Now}
}

// Add validates, stamps, and appends one sleep entry, returning the entry as
// stored.
func (s *SleepService) Add(ctx context.Context, hours float64, quality models.SleepQuality) (models.SleepEntry, error) {
	now := s.now()
	entry := models.SleepEntry{
		ID:      uuid.NewString(),
		Date:    now.Format(models.TrackerDateLayout),
		Time:    now.Format(models.TrackerTimeLayout),
		Hours:   hours,
		Quality: quality,
	}
	if err := entry.Validate(); err != nil {
		return models.SleepEntry{}, err
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return models.SleepEntry{}, err
	}

	s.logger.Info(ctx, "sleep entry logged", "hours", entry.Hours, "quality", entry.Quality)
	return entry, nil
}

// List returns every logged entry in log order.
func (s *SleepService) List(ctx context.Context) ([]models.SleepEntry, error) {
	return s.repo.GetAll(ctx)
}

// ListByDate returns the entries logged on day.
func (s *SleepService) ListByDate(ctx context.Context, day time.Time) ([]models.SleepEntry, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	want := day.Format(models.TrackerDateLayout)
	matched := make([]models.SleepEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date == want {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Delete removes one entry by ID.
func (s *SleepService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "sleep entry deleted", "id", id)
	return nil
}

// Clear removes the whole sleep log.
func (s *SleepService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info(ctx, "sleep log cleared")
	return nil
}

// SleepMetrics summarizes a set of sleep entries.
type SleepMetrics struct {
	Entries    int
	TotalHours float64
	AvgHours   float64
	TopQuality models.SleepQuality
}

// SummarizeSleep computes the headline numbers the sleep log shows.
// TopQuality is the most frequent rating, with ties resolved in menu order.
func SummarizeSleep(entries []models.SleepEntry) SleepMetrics {
	m := SleepMetrics{Entries: len(entries)}
	if len(entries) == 0 {
		return m
	}

	counts := make(map[models.SleepQuality]int, len(models.SleepQualities))
	for _, e := range entries {
		m.TotalHours += e.Hours
		counts[e.Quality]++
	}
	m.AvgHours = m.TotalHours / float64(len(entries))

	best := -1
	for _, q := range models.SleepQualities {
		if counts[q] > best {
			best = counts[q]
			m.TopQuality = q
		}
	}
	return m
}
