package cli

import (
	"fmt"
	"math/rand"
)

// quotes are the motivational lines the about page rotates through.
var quotes = []string{
	"Matulog ka nang maaga, 'wag ka magpupuyat magagalit ako >:(",
	"How was your day? Kaya pa?... Kaya 'yan!",
	"Uy nakita ko food intake mo. Kumain ka nang mabuti ha",
	"Fuel your body, nourish your soul, embrace health, find balance.",
	"Are you hungry right now? How about we cook a very healthy meal while I hug you from the back :3",
	"Dinner at olive garden? I'll pick you up by 8pm <33",
}

// About prints the application description and a random motivational quote.
func (a *App) About() error {
	fmt.Println("EatS: Tracking Your Health Journey")
	fmt.Println("Welcome to Your Personal Health Companion")
	fmt.Println()
	fmt.Println("EatS is a health tracking application created by first year Computer")
	fmt.Println("Engineering Students from Cavite State University. Our mission is to")
	fmt.Println("help you improve your health and fitness through better sleep,")
	fmt.Println("nutrition, and body awareness.")
	fmt.Println()
	fmt.Println("Explore our trackers: food, sleep, bmi")
	fmt.Println()
	fmt.Printf("%q\n", quotes[rand.Intn(len(quotes))])
	return nil
}
