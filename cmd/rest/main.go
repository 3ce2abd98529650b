package main

import (
	"context"
	"log"

	"pricebook-be/internal/bootstrap"
	"pricebook-be/internal/config"
	"pricebook-be/internal/server"
	"pricebook-be/internal/tracer"
	"pricebook-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewSqliteDB(cfg.Database.Path)
	if err != nil {
		log.Panicf("Unable to open sqlite DB: %v", err)
	}
	if err := database.Migrate(gormDB); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
