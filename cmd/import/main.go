package main

import (
	"context"
	"log"
	"time"

	"mos-translator/internal/config"
	dbpostgres "mos-translator/internal/database/postgres"
	"mos-translator/internal/database/seeder"
)

// One-time setup: recreates the schema and imports occupations and
// skills from the data file. Run before starting the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	data, err := seeder.LoadDataFile(cfg.Importer.DataFile)
	if err != nil {
		log.Fatalf("failed to load data file: %v", err)
	}

	runner := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.SchemaSeeder{},
		seeder.DatasetSeeder{Data: data},
	}}
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("import failed: %v", err)
	}

	skillCount := 0
	for _, descs := range data.Skills {
		skillCount += len(descs)
	}
	log.Printf("import complete: %d occupations, %d skills from %s",
		len(data.Occupations), skillCount, cfg.Importer.DataFile)
}
