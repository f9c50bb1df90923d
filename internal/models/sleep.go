package models

import (
	"errors"
	"fmt"
)

// SleepQuality rates a night of sleep.
type SleepQuality string

const (
	SleepPoor      SleepQuality = "Poor"
	SleepFair      SleepQuality = "Fair"
	SleepGood      SleepQuality = "Good"
	SleepExcellent SleepQuality = "Excellent"
)

// SleepQualities lists the accepted ratings in menu order.
var SleepQualities = []SleepQuality{SleepPoor, SleepFair, SleepGood, SleepExcellent}

// SleepEntry is one logged night of sleep.
type SleepEntry struct {
	ID      string       `json:"id"`
	Date    string       `json:"date"`
	Time    string       `json:"time"`
	Hours   float64      `json:"hours_slept"`
	Quality SleepQuality `json:"quality"`
}

// Validate checks the caller-supplied fields.
func (e SleepEntry) Validate() error {
	if e.Hours <= 0 || e.Hours > 24 {
		return errors.New("hours slept must be between 0 and 24")
	}
	if !ValidSleepQuality(e.Quality) {
		return fmt.Errorf("unknown sleep quality %q", e.Quality)
	}
	return nil
}

// ValidSleepQuality reports whether q is one of the accepted ratings.
func ValidSleepQuality(q SleepQuality) bool {
	for _, s := range SleepQualities {
		if q == s {
			return true
		}
	}
	return false
}
