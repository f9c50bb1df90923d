package cli

import (
	"context"
	"fmt"
	"log"
)

// Profile prints the session owner and how much data each tracker holds.
func (a *App) Profile(ctx context.Context) error {
	fmt.Printf("Logged in as: %s\n", a.userName)

	foods, err := a.foodService.List(ctx)
	if err != nil {
		log.Printf("error reading food log: %v", err)
		return err
	}
	sleeps, err := a.sleepService.List(ctx)
	if err != nil {
		log.Printf("error reading sleep log: %v", err)
		return err
	}
	measurements, err := a.bmiService.History(ctx)
	if err != nil {
		log.Printf("error reading bmi history: %v", err)
		return err
	}
	users, err := a.authService.UserCount(ctx)
	if err != nil {
		log.Printf("error counting users: %v", err)
		return err
	}

	fmt.Printf("Food entries: %d\n", len(foods))
	fmt.Printf("Sleep entries: %d\n", len(sleeps))
	fmt.Printf("BMI measurements: %d\n", len(measurements))
	fmt.Printf("Registered users: %d\n", users)
	return nil
}
