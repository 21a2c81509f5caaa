package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"
	"time"

	"storefront/cmd"
	adapterhttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/inventoryrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/jobs"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultCompletionSchedule = "*/5 * * * *"

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(app, configs)
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		CompletionSchedule: goDotEnvVariable("COMPLETION_SCHEDULE"),
		CompletionAgeHours: goDotEnvVariable("COMPLETION_AGE_HOURS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&inventoryrepo.InventoryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startJobs(app cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	schedule := configs.CompletionSchedule
	if schedule == "" {
		schedule = defaultCompletionSchedule
	}

	ageHours, err := strconv.Atoi(configs.CompletionAgeHours)
	if err != nil || ageHours < 1 {
		ageHours = 24
	}

	jobManager := jobs.NewJobManager(
		app.CreateCompleteStaleOrdersCommandHandler(),
		schedule,
		time.Duration(ageHours)*time.Hour,
		logger,
	)

	if startErr := jobManager.StartAll(); startErr != nil {
		log.Fatalf("Failed to start background jobs: %v", startErr)
	}

	return jobManager
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := adapterhttp.NewServer(
		app.CreateCreateInventoryCommandHandler(),
		app.CreateUpdateInventoryCommandHandler(),
		app.CreateRemoveInventoryCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateEditOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateGetAllInventoriesQueryHandler(),
		app.CreateGetInventoryQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
