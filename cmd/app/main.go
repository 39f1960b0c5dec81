package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freight/cmd"
	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	seeded, err := app.CreateSeedReferenceDataCommandHandler().Handle(ctx, commands.NewSeedReferenceDataCommand())
	if err != nil {
		log.Fatalf("Error seeding reference data: %v", err)
	}
	logger.Info("Reference data seeded", "incoterms", seeded.Incoterms, "containers", seeded.Containers)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Variables already in the environment win over the file.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) {
	doc, err := httpin.LoadContract(ctx)
	if err != nil {
		log.Fatalf("Error loading API contract: %v", err)
	}

	e, err := httpin.NewEcho(app.CreateServer(), doc)
	if err != nil {
		log.Fatalf("Error building web server: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
