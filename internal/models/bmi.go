package models

// BMIDateLayout is the date stamp used by the BMI history file.
const BMIDateLayout = "2006-01-02"

// BMIRecord is one BMI measurement with its derived classification.
type BMIRecord struct {
	Date           string
	Weight         float64 // kilograms
	Height         float64 // centimeters
	BMI            float64
	Classification string
	Suggestion     string
}
