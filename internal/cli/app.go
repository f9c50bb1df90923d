package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/eats-health/eats/internal/config"
	"github.com/eats-health/eats/internal/filex"
	"github.com/eats-health/eats/internal/logging"
	"github.com/eats-health/eats/internal/repositories/bmi"
	"github.com/eats-health/eats/internal/repositories/credentials"
	"github.com/eats-health/eats/internal/repositories/food"
	"github.com/eats-health/eats/internal/repositories/sleep"
	"github.com/eats-health/eats/internal/services"
)

// Tracker data file names inside the configured data directory.
const (
	foodDataFile  = "food_data.json"
	sleepDataFile = "sleep_data.json"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	authService  *services.AuthService
	foodService  *services.FoodService
	sleepService *services.SleepService
	bmiService   *services.BMIService
	userName     string
	reader       *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	credRepo, err := credentials.NewFileRepository(ctx, c.UsersFile, logger)
	if err != nil {
		log.Printf("error opening credential store: %s", err.Error())
		return nil, err
	}

	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		log.Printf("error preparing data directory: %s", err.Error())
		return nil, err
	}

	foodRepo := food.NewFileRepository(filepath.Join(dataDir, foodDataFile))
	sleepRepo := sleep.NewFileRepository(filepath.Join(dataDir, sleepDataFile))
	bmiRepo := bmi.NewFileRepository(c.BMIFile)

	return &App{
		config:       c,
		logger:       logger,
		authService:  services.NewAuthService(credRepo, logger),
		foodService:  services.NewFoodService(foodRepo, logger),
		sleepService: services.NewSleepService(sleepRepo, logger),
		bmiService:   services.NewBMIService(bmiRepo, logger),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
