package main

import (
	"context"
	"log"

	"github.com/ingunnnaevdal/masterevaluering/internal/bootstrap"
	"github.com/ingunnnaevdal/masterevaluering/internal/config"
	"github.com/ingunnnaevdal/masterevaluering/internal/server"
	"github.com/ingunnnaevdal/masterevaluering/internal/tracer"
	"github.com/ingunnnaevdal/masterevaluering/pkg/database"
	"github.com/ingunnnaevdal/masterevaluering/pkg/dataset"
)

func main() {
	// 0. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Configuration
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is not set")
	}

	// 2. Dataset: unreadable or malformed input halts before anything serves
	data, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("Unable to load dataset: %v", err)
	}
	log.Printf("Dataset loaded: %d articles", data.Len())

	questions, err := config.LoadIntakeQuestions(cfg.Dataset.IntakeConfigPath)
	if err != nil {
		log.Fatalf("Unable to load intake questions: %v", err)
	}

	// 3. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := database.Migrate(gormDB); err != nil {
		log.Panicf("Unable to migrate database: %v", err)
	}

	// 4. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg, data, questions)
	defer container.Logger.Sync()

	// 5. Background consumer
	go func() {
		log.Println("Background: starting evaluation event consumer")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	// 6. Serve
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
