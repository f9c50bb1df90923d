package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/eats-health/eats/internal/common"
	"github.com/eats-health/eats/internal/models"
	"github.com/eats-health/eats/internal/services"
)

// qualityOptions renders models.SleepQualities as prompt choices.
func qualityOptions() []string {
	opts := make([]string, len(models.SleepQualities))
	for i, q := range models.SleepQualities {
		opts[i] = string(q)
	}
	return opts
}

// AddSleep prompts for hours slept and a quality rating, then logs the entry
// stamped with the current date and time.
func (a *App) AddSleep(ctx context.Context) error {
	hours, err := GetFloat(a.reader, "Hours slept", os.Stdout)
	if err != nil {
		log.Printf("error reading hours: %v", err)
		return err
	}

	quality, err := GetChoice(a.reader, "Sleep quality", qualityOptions(), os.Stdout)
	if err != nil {
		return err
	}

	entry, err := a.sleepService.Add(ctx, hours, models.SleepQuality(quality))
	if err != nil {
		log.Printf("error logging sleep entry: %v", err)
		return err
	}

	fmt.Printf("Logged %.1f hours of sleep (%s)\n", entry.Hours, entry.Quality)
	return nil
}

// SleepLog shows entries for the selected period with summary metrics.
func (a *App) SleepLog(ctx context.Context) error {
	entries, err := a.selectSleepEntries(ctx)
	if err != nil {
		log.Printf("error reading sleep log: %v", err)
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No sleep data available for the selected period.")
		return nil
	}

	fmt.Println("Your Sleep Logs")
	m := services.SummarizeSleep(entries)
	fmt.Printf("Total Entries: %d\n", m.Entries)
	fmt.Printf("Total Hours: %.1f\n", m.TotalHours)
	fmt.Printf("Average Hours per Night: %.1f\n", m.AvgHours)
	fmt.Printf("Most Frequent Quality: %s\n", m.TopQuality)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTIME\tHOURS\tQUALITY\tID")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%s\n", e.Date, e.Time, e.Hours, e.Quality, e.ID)
	}
	return w.Flush()
}

// selectSleepEntries applies the Today / All Time / Select Date filter.
func (a *App) selectSleepEntries(ctx context.Context) ([]models.SleepEntry, error) {
	view, err := GetChoice(a.reader, "View by", viewOptions, os.Stdout)
	if err != nil {
		return nil, err
	}

	switch view {
	case viewToday:
		return a.sleepService.ListByDate(ctx, time.Now())
	case viewSelectDate:
		day, err := a.getDate()
		if err != nil {
			return nil, err
		}
		return a.sleepService.ListByDate(ctx, day)
	default:
		return a.sleepService.List(ctx)
	}
}

// DeleteSleep removes one sleep entry by its id (shown in the log view).
func (a *App) DeleteSleep(ctx context.Context, id string) error {
	if err := a.sleepService.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Println("No sleep entry with that id.")
			return nil
		}
		log.Printf("error deleting sleep entry: %v", err)
		return err
	}
	fmt.Println("Sleep entry deleted.")
	return nil
}

// ClearSleep wipes the sleep log after an explicit confirmation.
func (a *App) ClearSleep(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Are you sure you want to delete all sleep data?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.sleepService.Clear(ctx); err != nil {
		log.Printf("error clearing sleep log: %v", err)
		return err
	}
	fmt.Println("All sleep data has been cleared!")
	return nil
}
