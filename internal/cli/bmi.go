package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
)

// RecordBMI prompts for weight and height, prints the computed BMI with its
// classification and recommendation, and saves the measurement to the
// history file.
func (a *App) RecordBMI(ctx context.Context) error {
	weight, err := GetFloat(a.reader, "Weight (kg)", os.Stdout)
	if err != nil {
		log.Printf("error reading weight: %v", err)
		return err
	}

	height, err := GetFloat(a.reader, "Height (cm)", os.Stdout)
	if err != nil {
		log.Printf("error reading height: %v", err)
		return err
	}

	if weight <= 0 || height <= 0 {
		fmt.Println("Please enter valid weight and height values.")
		return nil
	}

	record, err := a.bmiService.Record(ctx, weight, height)
	if err != nil {
		log.Printf("error recording bmi: %v", err)
		return err
	}

	fmt.Printf("Your BMI: %.1f\n", record.BMI)
	fmt.Printf("Classification: %s\n", record.Classification)
	fmt.Printf("Recommendation: %s\n", record.Suggestion)
	fmt.Println("BMI measurement saved!")
	return nil
}

// BMILog prints the measurement history, latest first in the headline and
// oldest first in the table, matching how the history has always been shown.
func (a *App) BMILog(ctx context.Context) error {
	records, err := a.bmiService.History(ctx)
	if err != nil {
		log.Printf("error reading bmi history: %v", err)
		return err
	}
	if len(records) == 0 {
		fmt.Println("No BMI measurements recorded yet.")
		return nil
	}

	fmt.Println("Your BMI History")
	latest := records[len(records)-1]
	fmt.Printf("Latest BMI: %.1f (%s, %.1f kg, %.1f cm)\n",
		latest.BMI, latest.Classification, latest.Weight, latest.Height)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tWEIGHT (KG)\tHEIGHT (CM)\tBMI\tCLASSIFICATION")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.2f\t%s\n", r.Date, r.Weight, r.Height, r.BMI, r.Classification)
	}
	return w.Flush()
}
