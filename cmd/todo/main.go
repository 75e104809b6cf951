package main

import (
	"flag"
	"log"

	"github.com/aussiebroadwan/todo/internal/todo/app"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply database migrations and exit")
	flag.Parse()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if *migrateOnly {
		if err := app.Migrate(cfg); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		return
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
